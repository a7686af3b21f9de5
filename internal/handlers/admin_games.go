package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/funopi/funopi-backend/internal/services"
)

type AdminGamesHandler struct {
	catalogService services.CatalogService
	previewService services.PreviewService
}

func NewAdminGamesHandler(catalogService services.CatalogService, previewService services.PreviewService) *AdminGamesHandler {
	return &AdminGamesHandler{catalogService: catalogService, previewService: previewService}
}

func (gh *AdminGamesHandler) List(c *gin.Context) {
	games, err := gh.catalogService.AdminList(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"games": games})
}

type gameRequest struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

func (gh *AdminGamesHandler) Create(c *gin.Context) {
	var req gameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid game payload"})
		return
	}
	games, err := gh.catalogService.Create(c.Request.Context(), req.Title, req.URL, req.Description)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"games": games})
}

func (gh *AdminGamesHandler) Update(c *gin.Context) {
	row, ok := rowParam(c)
	if !ok {
		return
	}
	var req gameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid game payload"})
		return
	}
	games, err := gh.catalogService.Update(c.Request.Context(), row, req.Title, req.URL, req.Description)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"games": games})
}

func (gh *AdminGamesHandler) Delete(c *gin.Context) {
	row, ok := rowParam(c)
	if !ok {
		return
	}
	games, err := gh.catalogService.Delete(c.Request.Context(), row)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"games": games})
}

type previewRequest struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

func (gh *AdminGamesHandler) Preview(c *gin.Context) {
	var req previewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid preview payload"})
		return
	}
	result, err := gh.previewService.Preview(c.Request.Context(), req.Title, req.URL)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Rows below the header start at 2; anything else is not an addressable
// catalog entry.
func rowParam(c *gin.Context) (int, bool) {
	row, err := strconv.Atoi(c.Param("row"))
	if err != nil || row < 2 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid row number"})
		return 0, false
	}
	return row, true
}
