package dashboard

import "context"

// DashboardService computes the landing-page stats. SuperAdmin counts every
// user; the admin team counts Staff only.
type DashboardService interface {
	Stats(ctx context.Context, includeAllUsers bool) (Stats, error)
}
