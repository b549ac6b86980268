package attendance

import (
	"mime/multipart"
	"strings"

	"github.com/infinithree/absensi-backend-go/internal/pkg/validator"
)

type ClockInRequest struct {
	UserID     string                `json:"-"`
	SelfieURL  *string               `json:"-"`
	File       multipart.File        `json:"-"`
	FileHeader *multipart.FileHeader `json:"-"`
}

func (r *ClockInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	if r.FileHeader == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "selfie",
			Message: "selfie photo is required",
		})
	} else {
		filename := r.FileHeader.Filename
		ext := ""
		if idx := strings.LastIndex(filename, "."); idx >= 0 {
			ext = strings.ToLower(filename[idx:])
		}
		if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
			errs = append(errs, validator.ValidationError{
				Field:   "selfie",
				Message: "invalid file type: only jpg, jpeg, png allowed",
			})
		} else if r.FileHeader.Size > 10<<20 { // 10MB
			errs = append(errs, validator.ValidationError{
				Field:   "selfie",
				Message: "selfie photo size must not exceed 10MB",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceResponse struct {
	ID           string  `json:"id"`
	UserID       string  `json:"user_id"`
	UserName     string  `json:"user_name,omitempty"`
	Date         string  `json:"date"`
	ClockInTime  string  `json:"clock_in_time"`
	ClockOutTime *string `json:"clock_out_time,omitempty"`
	Status       string  `json:"status"`
	SelfieURL    *string `json:"selfie_url,omitempty"`
}

func ToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:          a.ID,
		UserID:      a.UserID,
		Date:        a.WorkDate.Format("2006-01-02"),
		ClockInTime: a.ClockIn.Format("2006-01-02 15:04:05"),
		Status:      a.Status,
		SelfieURL:   a.SelfieURL,
	}
	if a.UserName != nil {
		resp.UserName = *a.UserName
	}
	if a.ClockOut != nil {
		formatted := a.ClockOut.Format("2006-01-02 15:04:05")
		resp.ClockOutTime = &formatted
	}
	return resp
}

type TodayResponse struct {
	State  DayState            `json:"state"`
	Record *AttendanceResponse `json:"record,omitempty"`
}
