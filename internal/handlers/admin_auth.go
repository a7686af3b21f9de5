package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/funopi/funopi-backend/internal/services"
)

type AdminAuthHandler struct {
	sessionService services.SessionService
	cookieSecure   bool
}

func NewAdminAuthHandler(sessionService services.SessionService, cookieSecure bool) *AdminAuthHandler {
	return &AdminAuthHandler{sessionService: sessionService, cookieSecure: cookieSecure}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (ah *AdminAuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid credentials payload"})
		return
	}
	ok, err := ah.sessionService.ValidateCredentials(req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
		return
	}
	token, err := ah.sessionService.Issue(req.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "unable to start session"})
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(services.SessionCookieName, token,
		int(ah.sessionService.TTL().Seconds()), "/", "", ah.cookieSecure, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (ah *AdminAuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(services.SessionCookieName, "", -1, "/", "", ah.cookieSecure, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
