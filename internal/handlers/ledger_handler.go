package handlers

import (
	"net/http"

	"frontdoor_backend/internal/ledger"
	"frontdoor_backend/internal/middleware"
	"frontdoor_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// LedgerHandler - тонкая REST-обертка над токен-леджером.
// Нужна dev/test-окружению с memory-леджером: балансы, allowance
// и approve без внешнего токен-сервиса.
type LedgerHandler struct {
	*BaseHandler
	ledger   ledger.Client
	treasury string
}

func NewLedgerHandler(base *BaseHandler, ledgerClient ledger.Client, treasury string) *LedgerHandler {
	return &LedgerHandler{BaseHandler: base, ledger: ledgerClient, treasury: treasury}
}

func (h *LedgerHandler) RegisterRoutes(r *gin.RouterGroup) {
	public := r.Group("/ledger")
	{
		public.GET("/balance/:address", h.GetBalance)
	}

	protected := r.Group("/ledger")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/approve", h.Approve)
		protected.GET("/allowance", h.GetAllowance)
	}
}

func (h *LedgerHandler) GetBalance(c *gin.Context) {
	address := c.Param("address")

	balance, err := h.ledger.BalanceOf(c.Request.Context(), address)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.BalanceResponse{Address: address, Balance: balance})
}

// Approve выдает казне право списать amount токенов вызывающего
func (h *LedgerHandler) Approve(c *gin.Context) {
	wallet, ok := h.RequireWallet(c)
	if !ok {
		return
	}

	var req dto.ApproveRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.ledger.Approve(c.Request.Context(), wallet, h.treasury, req.Amount); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.AllowanceResponse{
		Owner:     wallet,
		Spender:   h.treasury,
		Allowance: req.Amount,
	})
}

func (h *LedgerHandler) GetAllowance(c *gin.Context) {
	wallet, ok := h.RequireWallet(c)
	if !ok {
		return
	}

	allowance, err := h.ledger.Allowance(c.Request.Context(), wallet, h.treasury)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.AllowanceResponse{
		Owner:     wallet,
		Spender:   h.treasury,
		Allowance: allowance,
	})
}
