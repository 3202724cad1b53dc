package transport

import (
	"net/http"

	"github.com/ajiang05/vibeCheck/internal/service"
	"github.com/ajiang05/vibeCheck/internal/transport/middleware"
	"github.com/ajiang05/vibeCheck/internal/view"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ProfileHandler struct {
	profileService service.ProfileService
	cookie         SessionCookie
}

func NewProfileHandler(profileService service.ProfileService, cookie SessionCookie) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		cookie:         cookie,
	}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile := h.profileService.Open(c.Request.Context(), middleware.Session(c))
	if profile.State == service.ProfileUnauthenticated {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	c.JSON(http.StatusOK, view.NewProfileCard(profile))
}

func (h *ProfileHandler) SignOut(c *gin.Context) {
	if err := middleware.Session(c).SignOut(c.Request.Context()); err != nil {
		logrus.WithField("request_id", middleware.GetRequestID(c)).WithError(err).Error("Failed to sign out")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to sign out"})
		return
	}
	h.cookie.clear(c)

	c.JSON(http.StatusOK, gin.H{"status": "signed out"})
}
