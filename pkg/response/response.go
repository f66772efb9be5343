package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/stolovaya/canteen-api/pkg/errors"
)

// The API keeps the wire contract of the legacy canteen backend: responses
// are plain JSON objects and failures are {"error": "<message>"} bodies.
// Almost every endpoint reports errors with HTTP 200; only the parent
// linking endpoints carry real status codes.

// JSON sends a payload as-is.
func JSON(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Message sends a {"message": ...} body.
func Message(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

// SoftError reports a failure in the body while keeping HTTP 200.
func SoftError(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.JSON(http.StatusOK, gin.H{"error": appErr.Message})
}

// Error reports a failure using the status carried by the error.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.JSON(appErr.Status, gin.H{"error": appErr.Message})
}
