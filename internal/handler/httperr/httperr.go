package httperr

import (
	"context"
	"log/slog"
	"net/http"

	"peer-tutor-scheduler/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const (
	MsgOutcomeUnknown = "Operation outcome unknown; re-query before retrying"
	MsgInternal       = "Internal server error"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// StatusOf maps a scheduling error kind onto an HTTP status.
func StatusOf(err error) int {
	switch {
	case errs.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errs.Is(err, errs.ErrValidation):
		return http.StatusBadRequest
	case errs.Is(err, errs.ErrPastDate):
		return http.StatusUnprocessableEntity
	case errs.Is(err, errs.ErrNotFound):
		return http.StatusNotFound
	case errs.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errs.Is(err, errs.ErrSlotUnavailable),
		errs.Is(err, errs.ErrAlreadyClaimed),
		errs.Is(err, errs.ErrAlreadyResolved),
		errs.Is(err, errs.ErrInvalidTransition):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Abort answers with the status err maps to. Client errors expose the error
// text; timeouts and server errors get a fixed message.
func Abort(c *gin.Context, err error) {
	status := StatusOf(err)
	switch status {
	case http.StatusGatewayTimeout:
		AbortWithError(c, status, err, MsgOutcomeUnknown, nil)
	case http.StatusInternalServerError:
		slog.Error("request failed",
			slog.String("path", c.Request.URL.Path),
			slog.String("error", err.Error()),
			slog.Any("stack", errs.ExtractStackLines(err, 12)),
		)
		AbortWithError(c, status, err, MsgInternal, nil)
	default:
		AbortWithError(c, status, err, err.Error(), gin.H{"kind": kindName(err)})
	}
}

func kindName(err error) string {
	if k := errs.Kind(err); k != nil {
		return k.Error()
	}
	return ""
}
