package transport

import (
	"net/http"

	"github.com/ajiang05/vibeCheck/internal/entity"
	"github.com/ajiang05/vibeCheck/internal/service"
	"github.com/ajiang05/vibeCheck/internal/transport/middleware"
	"github.com/ajiang05/vibeCheck/internal/view"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// SessionCookie describes the access token cookie cleared on sign out.
type SessionCookie struct {
	Name   string
	Secure bool
}

func (sc SessionCookie) clear(c *gin.Context) {
	if sc.Name == "" {
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sc.Name, "", -1, "/", "", sc.Secure, true)
}

type PageHandler struct {
	feed           EventFeed
	profileService service.ProfileService
	cookie         SessionCookie
	loginURL       string
}

func NewPageHandler(feed EventFeed, profileService service.ProfileService, cookie SessionCookie, loginURL string) *PageHandler {
	return &PageHandler{
		feed:           feed,
		profileService: profileService,
		cookie:         cookie,
		loginURL:       loginURL,
	}
}

// Index renders the landing page. An unknown ?filter= value shows every
// event.
func (h *PageHandler) Index(c *gin.Context) {
	selector, err := entity.ParseSelector(c.Query("filter"))
	if err != nil {
		selector = entity.SelectorAll
	}

	events := service.Filter(h.feed.Snapshot().Events, selector)
	page := view.NewIndexPage(middleware.Session(c).Authenticated(), selector, events)

	c.HTML(http.StatusOK, "index.html", gin.H{"Page": page})
}

func (h *PageHandler) Search(c *gin.Context) {
	h.placeholder(c, "Search", view.PathSearch, "Search for parties, bars and clubs is coming soon.")
}

func (h *PageHandler) Map(c *gin.Context) {
	h.placeholder(c, "Map", view.PathMap, "The map of events near you is coming soon.")
}

func (h *PageHandler) placeholder(c *gin.Context, title, path, message string) {
	c.HTML(http.StatusOK, "placeholder.html", gin.H{
		"Title":   title,
		"Message": message,
		"Nav":     view.Navigation(path),
	})
}

func (h *PageHandler) Profile(c *gin.Context) {
	profile := h.profileService.Open(c.Request.Context(), middleware.Session(c))
	if profile.State == service.ProfileUnauthenticated {
		c.Redirect(http.StatusFound, view.PathAuth)
		return
	}

	c.HTML(http.StatusOK, "profile.html", gin.H{
		"Profile": view.NewProfileCard(profile),
		"Nav":     view.Navigation(view.PathProfile),
	})
}

// Auth hands off to the identity provider. Signed-in users go back to the
// landing page.
func (h *PageHandler) Auth(c *gin.Context) {
	if middleware.Session(c).Authenticated() {
		c.Redirect(http.StatusFound, view.PathDiscover)
		return
	}

	c.HTML(http.StatusOK, "auth.html", gin.H{"LoginURL": h.loginURL})
}

func (h *PageHandler) SignOut(c *gin.Context) {
	if err := middleware.Session(c).SignOut(c.Request.Context()); err != nil {
		logrus.WithField("request_id", middleware.GetRequestID(c)).WithError(err).Error("Failed to sign out")
	}
	h.cookie.clear(c)

	c.Redirect(http.StatusSeeOther, view.PathAuth)
}
