package httperr

import (
	"net/http"

	"storefront/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const InternalMessage = "Internal server error"

type Response struct {
	Status int    `json:"-"`
	Error  string `json:"error"`
	Detail any    `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status, Error: msg, Detail: detail}

	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort maps err onto the HTTP taxonomy. Only domain errors expose their
// message; everything else is a generic 500.
func Abort(c *gin.Context, err error) {
	status, msg := Classify(err)
	AbortWithError(c, status, err, msg, nil)
}

func Classify(err error) (int, string) {
	msg, ok := errs.PublicMessage(err)
	if !ok {
		return http.StatusInternalServerError, InternalMessage
	}
	switch errs.KindOf(err) {
	case errs.KindValidation:
		return http.StatusBadRequest, msg
	case errs.KindNotFound:
		return http.StatusNotFound, msg
	case errs.KindConflict:
		return http.StatusConflict, msg
	case errs.KindUnauthorized:
		return http.StatusUnauthorized, msg
	default:
		return http.StatusInternalServerError, InternalMessage
	}
}
