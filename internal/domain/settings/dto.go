package settings

import (
	"github.com/infinithree/absensi-backend-go/internal/pkg/validator"
)

type UpdateShiftSettingsRequest struct {
	Morning      ShiftWindow `json:"morning"`
	Afternoon    ShiftWindow `json:"afternoon"`
	GraceMinutes int         `json:"grace_minutes"`
}

func (r *UpdateShiftSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	windows := []struct {
		field string
		value string
	}{
		{"morning.start", r.Morning.Start},
		{"morning.end", r.Morning.End},
		{"afternoon.start", r.Afternoon.Start},
		{"afternoon.end", r.Afternoon.End},
	}
	for _, w := range windows {
		if !validator.IsValidTimeOfDay(w.value) {
			errs = append(errs, validator.ValidationError{
				Field:   w.field,
				Message: "must be a valid HH:MM time",
			})
		}
	}

	if r.GraceMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "grace_minutes",
			Message: "grace_minutes must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateCompanyNameRequest struct {
	Name string `json:"name"`
}

func (r *UpdateCompanyNameRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RoleRequest struct {
	Role string `json:"role"`
}

func (r *RoleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Role) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
