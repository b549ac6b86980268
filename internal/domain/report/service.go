package report

import "context"

// ReportService generates the two mutually exclusive report modes. Both fan
// out one attendance query per roster member and merge results in roster
// order.
type ReportService interface {
	Monthly(ctx context.Context, req MonthlyReportRequest) (MonthlyReport, error)
	Daily(ctx context.Context, req DailyReportRequest) (DailyReport, error)
}
