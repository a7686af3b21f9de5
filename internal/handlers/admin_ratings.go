package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/funopi/funopi-backend/internal/services"
)

type AdminRatingsHandler struct {
	adminRatingsService services.AdminRatingsService
}

func NewAdminRatingsHandler(adminRatingsService services.AdminRatingsService) *AdminRatingsHandler {
	return &AdminRatingsHandler{adminRatingsService: adminRatingsService}
}

func (rh *AdminRatingsHandler) Summaries(c *gin.Context) {
	summaries, err := rh.adminRatingsService.Summaries(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}
	noStore(c)
	c.JSON(http.StatusOK, gin.H{"summaries": summaries})
}

func (rh *AdminRatingsHandler) Details(c *gin.Context) {
	site := c.Query("site")
	if site == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing site parameter"})
		return
	}
	details, err := rh.adminRatingsService.Details(c.Request.Context(), site)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ratings": details})
}

func (rh *AdminRatingsHandler) Export(c *gin.Context) {
	csv, filename, err := rh.adminRatingsService.ExportCSV(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv", csv)
}
