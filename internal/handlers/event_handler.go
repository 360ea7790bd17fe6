package handlers

import (
	"net/http"

	"frontdoor_backend/internal/middleware"
	"frontdoor_backend/internal/models"
	"frontdoor_backend/internal/services"
	"frontdoor_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	*BaseHandler
	eventService services.EventService
}

func NewEventHandler(base *BaseHandler, eventService services.EventService) *EventHandler {
	return &EventHandler{BaseHandler: base, eventService: eventService}
}

func (h *EventHandler) RegisterRoutes(r *gin.RouterGroup) {
	admin := r.Group("/admin/events")
	admin.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleAdmin))
	{
		admin.GET("", h.ListEvents)
	}
}

func (h *EventHandler) ListEvents(c *gin.Context) {
	var query dto.EventQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	resp, err := h.eventService.List(h.GetDB(c), &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
