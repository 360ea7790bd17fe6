package handlers

import (
	"net/http"

	"frontdoor_backend/internal/middleware"
	"frontdoor_backend/internal/models"
	"frontdoor_backend/internal/services"
	"frontdoor_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// ReferralHandler обслуживает весь жизненный цикл реферала:
// регистрация реферером, подтверждение кандидатом, найм и выплата компанией.
type ReferralHandler struct {
	*BaseHandler
	referralService services.ReferralService
	hiringService   services.HiringService
	escrowService   services.EscrowService
}

func NewReferralHandler(
	base *BaseHandler,
	referralService services.ReferralService,
	hiringService services.HiringService,
	escrowService services.EscrowService,
) *ReferralHandler {
	return &ReferralHandler{
		BaseHandler:     base,
		referralService: referralService,
		hiringService:   hiringService,
		escrowService:   escrowService,
	}
}

func (h *ReferralHandler) RegisterRoutes(r *gin.RouterGroup) {
	public := r.Group("/referrals")
	{
		public.GET("/:referralId", h.GetReferral)
	}

	asReferrer := r.Group("/referrals")
	asReferrer.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleReferrer))
	{
		asReferrer.POST("", h.RegisterReferral)
	}

	asCandidate := r.Group("/referrals")
	asCandidate.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleCandidate))
	{
		asCandidate.POST("/:referralId/confirm", h.ConfirmReferral)
	}

	asCompany := r.Group("/referrals")
	asCompany.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleCompany))
	{
		asCompany.POST("/:referralId/hire", h.HireCandidate)
		asCompany.POST("/:referralId/disburse", h.DisburseBounty)
	}
}

func (h *ReferralHandler) RegisterReferral(c *gin.Context) {
	wallet, ok := h.RequireWallet(c)
	if !ok {
		return
	}

	var req dto.RegisterReferralRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.referralService.Register(h.GetDB(c), wallet, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ReferralHandler) GetReferral(c *gin.Context) {
	referralID, err := ParseParamInt64(c, "referralId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	resp, err := h.referralService.Get(h.GetDB(c), referralID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReferralHandler) ConfirmReferral(c *gin.Context) {
	wallet, ok := h.RequireWallet(c)
	if !ok {
		return
	}

	referralID, err := ParseParamInt64(c, "referralId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.ConfirmReferralRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.hiringService.Confirm(h.GetDB(c), wallet, referralID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReferralHandler) HireCandidate(c *gin.Context) {
	wallet, ok := h.RequireWallet(c)
	if !ok {
		return
	}

	referralID, err := ParseParamInt64(c, "referralId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	resp, err := h.hiringService.Hire(h.GetDB(c), wallet, referralID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReferralHandler) DisburseBounty(c *gin.Context) {
	wallet, ok := h.RequireWallet(c)
	if !ok {
		return
	}

	referralID, err := ParseParamInt64(c, "referralId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	resp, err := h.escrowService.Disburse(h.GetDB(c), wallet, referralID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
