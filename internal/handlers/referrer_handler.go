package handlers

import (
	"net/http"

	"frontdoor_backend/internal/middleware"
	"frontdoor_backend/internal/models"
	"frontdoor_backend/internal/services"
	"frontdoor_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ReferrerHandler struct {
	*BaseHandler
	referrerService services.ReferrerService
}

func NewReferrerHandler(base *BaseHandler, referrerService services.ReferrerService) *ReferrerHandler {
	return &ReferrerHandler{BaseHandler: base, referrerService: referrerService}
}

func (h *ReferrerHandler) RegisterRoutes(r *gin.RouterGroup) {
	public := r.Group("/referrers")
	{
		public.GET("/:address", h.GetReferrer)
	}

	protected := r.Group("/referrers")
	protected.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleReferrer))
	{
		protected.POST("/register", h.Register)
	}
}

func (h *ReferrerHandler) Register(c *gin.Context) {
	wallet, ok := h.RequireWallet(c)
	if !ok {
		return
	}

	var req dto.RegisterReferrerRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.referrerService.Register(h.GetDB(c), wallet, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReferrerHandler) GetReferrer(c *gin.Context) {
	resp, err := h.referrerService.Get(h.GetDB(c), c.Param("address"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
