package httperr

import (
	"errors"
	"net/http"

	"voucher-hub/internal/infra"
	"voucher-hub/internal/pkg/errs"

	"github.com/gin-gonic/gin"
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

// AbortWithUsecaseError maps usecase and controller errors onto HTTP
// statuses: cache misses are the caller's 404, feature gates are 501, and
// anything that went wrong against the remote controller is a 502.
func AbortWithUsecaseError(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, errs.ErrVoucherNotFound):
		AbortWithError(c, http.StatusNotFound, err, "Voucher not found", nil)
	case errors.Is(err, errs.ErrUnknownType):
		AbortWithError(c, http.StatusBadRequest, err, "Unknown voucher type", nil)
	case errors.Is(err, errs.ErrInvalidPassword):
		AbortWithError(c, http.StatusUnauthorized, err, "Password invalid", nil)
	case errors.Is(err, errs.ErrPrinterDisabled), errors.Is(err, errs.ErrMailerDisabled):
		AbortWithError(c, http.StatusNotImplemented, err, msg, nil)
	case isControllerError(err):
		AbortWithError(c, http.StatusBadGateway, err, msg, nil)
	default:
		AbortWithError(c, http.StatusInternalServerError, err, msg, nil)
	}
}

func isControllerError(err error) bool {
	var ce infra.ControllerError
	return errors.As(err, &ce)
}
