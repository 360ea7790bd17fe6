package handlers

import (
	"net/http"

	"frontdoor_backend/internal/middleware"
	"frontdoor_backend/internal/services"
	"frontdoor_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type FaucetHandler struct {
	*BaseHandler
	faucetService services.FaucetService
}

func NewFaucetHandler(base *BaseHandler, faucetService services.FaucetService) *FaucetHandler {
	return &FaucetHandler{BaseHandler: base, faucetService: faucetService}
}

func (h *FaucetHandler) RegisterRoutes(r *gin.RouterGroup) {
	faucet := r.Group("/faucet")
	faucet.Use(middleware.AuthMiddleware())
	{
		faucet.POST("/request", h.Request)
	}
}

func (h *FaucetHandler) Request(c *gin.Context) {
	wallet, ok := h.RequireWallet(c)
	if !ok {
		return
	}

	var req dto.FaucetRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.faucetService.Request(c.Request.Context(), h.GetDB(c), wallet, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
