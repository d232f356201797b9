package response

import (
	"errors"
	"net/http"

	pkgErrors "reportlog-srv/pkg/errors"

	"github.com/gin-gonic/gin"
)

// OK writes a 200 response with the given data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: 0,
		Message:   "Success",
		Data:      data,
	})
}

// Error writes an error response. HTTPError values keep their status code and
// message; anything else becomes a 500 with a generic message.
func Error(c *gin.Context, err error) {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		c.JSON(httpErr.StatusCode, Resp{
			ErrorCode: httpErr.StatusCode,
			Message:   httpErr.Message,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   DefaultErrorMessage,
	})
}

// ErrorWithMap writes an error response resolved through the given mapping.
func ErrorWithMap(c *gin.Context, err error, mapping ErrorMapping) {
	for target, httpErr := range mapping {
		if errors.Is(err, target) {
			Error(c, httpErr)
			return
		}
	}
	Error(c, err)
}

// Unauthorized writes a 401 response.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Resp{
		ErrorCode: http.StatusUnauthorized,
		Message:   "Unauthorized",
	})
}

// PanicError writes a 500 response for a recovered panic.
func PanicError(c *gin.Context, recovered any) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   DefaultErrorMessage,
	})
}
