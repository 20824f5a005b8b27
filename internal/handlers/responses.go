package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/staffdeck/payroll_hr_app/internal/apperrors"
	"github.com/staffdeck/payroll_hr_app/internal/core/domain"
	ports "github.com/staffdeck/payroll_hr_app/internal/core/ports/services"
	"github.com/staffdeck/payroll_hr_app/internal/dto"
	"github.com/staffdeck/payroll_hr_app/internal/middleware"
)

// respondSuccess writes the success envelope.
func respondSuccess(c *gin.Context, status int, data any) {
	c.JSON(status, dto.Response{Success: true, Data: data})
}

// respondMessage writes a success envelope that only carries a message.
func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, dto.Response{Success: true, Message: message})
}

// respondBindingError writes a 400 envelope with per-field validation errors
// when the binding failure came from the validator.
func respondBindingError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]dto.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, dto.FieldError{
				Field:   fe.Field(),
				Message: "failed validation on " + fe.Tag(),
			})
		}
		c.JSON(http.StatusBadRequest, dto.Response{
			Success: false,
			Message: "validation failed",
			Errors:  gin.H{"code": apperrors.CodeValidationFailed, "fields": fields},
		})
		return
	}
	c.JSON(http.StatusBadRequest, dto.Response{
		Success: false,
		Message: "invalid request format",
		Errors:  gin.H{"code": apperrors.CodeValidationFailed},
	})
}

// exposeErrorDetail controls whether 500 envelopes carry the underlying
// error text. Set from config at route registration; off in production so
// internals never leak to clients.
var exposeErrorDetail bool

// respondError maps a service error onto the envelope. Unrecognized errors
// become a generic 500.
func respondError(c *gin.Context, err error) {
	if appErr, ok := apperrors.AsAppError(err); ok {
		c.JSON(appErr.Status, dto.Response{
			Success: false,
			Message: appErr.Message,
			Errors:  gin.H{"code": appErr.Code},
		})
		return
	}

	middleware.GetLoggerFromContext(c).Error("unhandled service error", slog.String("error", err.Error()))
	errs := gin.H{"code": apperrors.CodeInternalError}
	if exposeErrorDetail {
		errs["detail"] = err.Error()
	}
	c.JSON(http.StatusInternalServerError, dto.Response{
		Success: false,
		Message: "internal server error",
		Errors:  errs,
	})
}

// recordActivity emits one audit entry for the authenticated caller.
// Fire-and-forget: the recorder never blocks or fails the request.
func recordActivity(c *gin.Context, recorder ports.ActivityRecorderSvc, action, resource string, resourceID *string, detail string, status domain.ActivityStatus) {
	entry := domain.ActivityLog{
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID,
		Detail:     detail,
		Status:     status,
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
	}
	if user, ok := middleware.GetAuthUserFromContext(c); ok {
		entry.ActorID = user.UserID
		entry.ActorName = user.Name
		entry.ActorEmail = user.Email
	}
	recorder.Record(c.Request.Context(), entry)
}
