package access

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// RespondWithError maps typed access errors to their HTTP status and hides
// everything else behind a generic 500.
func RespondWithError(ctx *gin.Context, err error) {
	var accessErr *Error
	if errors.As(err, &accessErr) {
		ctx.JSON(accessErr.HTTPStatus(), gin.H{"error": accessErr.Message})
		return
	}

	ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
