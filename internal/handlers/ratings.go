package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/funopi/funopi-backend/internal/platform/apierr"
	"github.com/funopi/funopi-backend/internal/services"
)

type RatingsHandler struct {
	ratingService services.RatingService
}

func NewRatingsHandler(ratingService services.RatingService) *RatingsHandler {
	return &RatingsHandler{ratingService: ratingService}
}

func (rh *RatingsHandler) Get(c *gin.Context) {
	site := c.Query("site")
	if site == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing site parameter"})
		return
	}
	visitorID := c.Query("visitorId")
	if visitorID == "" {
		visitorID = c.Query("visitor")
	}
	details, err := rh.ratingService.Details(c.Request.Context(), site, visitorID)
	if err != nil {
		RespondError(c, err)
		return
	}
	noStore(c)
	c.JSON(http.StatusOK, details)
}

type submitRatingRequest struct {
	Site      string `json:"site"`
	Score     int    `json:"score"`
	VisitorID string `json:"visitorId"`
}

func (rh *RatingsHandler) Submit(c *gin.Context) {
	var req submitRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "score must be an integer between 1 and 5"})
		return
	}
	details, err := rh.ratingService.Submit(
		c.Request.Context(),
		req.Site,
		req.Score,
		req.VisitorID,
		c.GetHeader("User-Agent"),
	)
	if err != nil {
		if apierr.IsCode(err, apierr.CodeConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "visitorHasRated": true})
			return
		}
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, details)
}
