package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/funopi/funopi-backend/internal/services"
)

type AdminStatsHandler struct {
	statsService services.StatsService
}

func NewAdminStatsHandler(statsService services.StatsService) *AdminStatsHandler {
	return &AdminStatsHandler{statsService: statsService}
}

func (sh *AdminStatsHandler) Get(c *gin.Context) {
	noStore(c)
	c.JSON(http.StatusOK, sh.statsService.Build(c.Request.Context()))
}
