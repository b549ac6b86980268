package http

import (
	"net/http"
	"strconv"

	"github.com/infinithree/absensi-backend-go/internal/domain/report"
	"github.com/infinithree/absensi-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Monthly(w http.ResponseWriter, r *http.Request)
	Daily(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// Monthly implements ReportHandler. Query params: year, month.
func (h *ReportHandlerImpl) Monthly(w http.ResponseWriter, r *http.Request) {
	year, _ := strconv.Atoi(r.URL.Query().Get("year"))
	month, _ := strconv.Atoi(r.URL.Query().Get("month"))

	resp, err := h.reportService.Monthly(r.Context(), report.MonthlyReportRequest{
		Year:  year,
		Month: month,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Daily implements ReportHandler. Query param: date (YYYY-MM-DD).
func (h *ReportHandlerImpl) Daily(w http.ResponseWriter, r *http.Request) {
	resp, err := h.reportService.Daily(r.Context(), report.DailyReportRequest{
		Date: r.URL.Query().Get("date"),
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
