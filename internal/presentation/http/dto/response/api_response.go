package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eggmandi/ledger-api/pkg/apperror"
)

// errorBody is the JSON error shape the API exposes: a machine-readable kind
// plus an optional diagnostic message.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Error sends err with its status and wire kind. Unknown errors are reported
// as a 500 internal_error with the underlying message attached.
func Error(c *gin.Context, err error) {
	appErr := apperror.GetAppError(err)
	c.JSON(appErr.Status, errorBody{
		Error:   appErr.Kind,
		Message: appErr.Message,
	})
}

// NotFound sends the JSON 404 used for unmatched routes.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, errorBody{Error: "not_found"})
}
