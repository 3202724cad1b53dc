package transport

import (
	"context"
	"errors"
	"net/http"

	"github.com/ajiang05/vibeCheck/internal/entity"
	"github.com/ajiang05/vibeCheck/internal/service"
	"github.com/ajiang05/vibeCheck/internal/transport/middleware"
	"github.com/ajiang05/vibeCheck/internal/view"

	"github.com/gin-gonic/gin"
)

// EventFeed is the part of *service.Feed the handlers read and refresh.
type EventFeed interface {
	Snapshot() service.Snapshot
	Get(id string) (entity.Event, error)
	Refresh(ctx context.Context) (service.LoadResult, bool)
}

type EventHandler struct {
	feed EventFeed
}

func NewEventHandler(feed EventFeed) *EventHandler {
	return &EventHandler{feed: feed}
}

func (h *EventHandler) GetAllEvents(c *gin.Context) {
	selector, err := entity.ParseSelector(c.Query("category"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snapshot := h.feed.Snapshot()
	cards := view.NewEventCards(service.Filter(snapshot.Events, selector))

	c.JSON(http.StatusOK, gin.H{
		"category": selector.String(),
		"source":   snapshot.Source,
		"count":    len(cards),
		"events":   cards,
	})
}

func (h *EventHandler) GetEvent(c *gin.Context) {
	event, err := h.feed.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, entity.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, view.NewEventCard(event))
}

// RefreshEvents reloads the feed for signed-in callers. The load outlives a
// client disconnect so an abandoned request cannot cancel a refresh other
// readers wait on.
func (h *EventHandler) RefreshEvents(c *gin.Context) {
	if !middleware.Session(c).Authenticated() {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	result, applied := h.feed.Refresh(context.WithoutCancel(c.Request.Context()))

	c.JSON(http.StatusOK, gin.H{
		"applied":     applied,
		"source":      result.Source,
		"count":       len(result.Events),
		"quarantined": result.Quarantined,
	})
}

func (h *EventHandler) GetNavigation(c *gin.Context) {
	c.JSON(http.StatusOK, view.Navigation(c.DefaultQuery("path", view.PathDiscover)))
}
