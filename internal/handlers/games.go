package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/funopi/funopi-backend/internal/services"
)

type GamesHandler struct {
	catalogService services.CatalogService
}

func NewGamesHandler(catalogService services.CatalogService) *GamesHandler {
	return &GamesHandler{catalogService: catalogService}
}

// List serves the public catalog. It never fails: a store outage silently
// substitutes the fallback list, and the payload says which one you got.
func (gh *GamesHandler) List(c *gin.Context) {
	payload := gh.catalogService.Public(c.Request.Context())
	noStore(c)
	c.JSON(http.StatusOK, payload)
}
