package response

import (
	"errors"

	"github.com/gin-gonic/gin"

	"esweb-http-service/internal/error/apperrors"
	"esweb-http-service/internal/error/code"
	"esweb-http-service/pkg/logger"
)

// JSON writes a success payload as-is.
func JSON(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, payload)
}

// Message writes the {"message": ...} success shape.
func Message(c *gin.Context, message string) {
	c.JSON(code.StatusOK, gin.H{"message": message})
}

// Fail writes the {"detail": ...} error shape for an error code.
func Fail(c *gin.Context, errCode int) {
	c.JSON(code.GetStatus(errCode), gin.H{"detail": code.GetMessage(errCode)})
}

// FailWithMessage writes the error shape with a custom message.
func FailWithMessage(c *gin.Context, errCode int, message string) {
	c.JSON(code.GetStatus(errCode), gin.H{"detail": message})
}

// HandleError is the single mapping point from service errors to transport
// responses. Classified errors translate via the code tables; anything
// unclassified is logged and surfaced as a generic internal failure.
func HandleError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		c.JSON(code.GetStatus(appErr.Code), gin.H{"detail": appErr.Message})
		return
	}

	logger.Error("unhandled error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	Fail(c, code.ErrUnknown)
}

// ParamError reports a malformed path or query parameter.
func ParamError(c *gin.Context, message string) {
	FailWithMessage(c, code.ErrInvalidID, message)
}

// BindError reports a request body that failed binding or validation.
func BindError(c *gin.Context, err error) {
	FailWithMessage(c, code.ErrBind, "Invalid request body: "+err.Error())
}

// Unauthorized reports a missing or invalid credential.
func Unauthorized(c *gin.Context) {
	Fail(c, code.ErrTokenInvalid)
}
