package handlers

import (
	"net/http"

	"frontdoor_backend/internal/middleware"
	"frontdoor_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type EscrowHandler struct {
	*BaseHandler
	escrowService services.EscrowService
}

func NewEscrowHandler(base *BaseHandler, escrowService services.EscrowService) *EscrowHandler {
	return &EscrowHandler{BaseHandler: base, escrowService: escrowService}
}

func (h *EscrowHandler) RegisterRoutes(r *gin.RouterGroup) {
	claims := r.Group("/claims")
	claims.Use(middleware.AuthMiddleware())
	{
		claims.POST("", h.Claim)
		claims.GET("/my", h.GetMyClaimable)
	}
}

func (h *EscrowHandler) Claim(c *gin.Context) {
	wallet, ok := h.RequireWallet(c)
	if !ok {
		return
	}

	resp, err := h.escrowService.Claim(c.Request.Context(), h.GetDB(c), wallet)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *EscrowHandler) GetMyClaimable(c *gin.Context) {
	wallet, ok := h.RequireWallet(c)
	if !ok {
		return
	}

	resp, err := h.escrowService.GetClaimable(h.GetDB(c), wallet)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
