package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/funopi/funopi-backend/internal/platform/apierr"
)

// RespondError maps a layered error onto its HTTP shape. Anything that is
// not an *apierr.Error is a bug or an outage and comes out as a 500.
func RespondError(c *gin.Context, err error) {
	var apiErr *apierr.Error
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.Status, gin.H{"error": apiErr.Error(), "code": apiErr.Code})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

func noStore(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
}
