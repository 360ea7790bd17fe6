package handlers

import (
	"net/http"

	"frontdoor_backend/internal/middleware"
	"frontdoor_backend/internal/models"
	"frontdoor_backend/internal/services"
	"frontdoor_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ReputationHandler struct {
	*BaseHandler
	reputationService services.ReputationService
}

func NewReputationHandler(base *BaseHandler, reputationService services.ReputationService) *ReputationHandler {
	return &ReputationHandler{BaseHandler: base, reputationService: reputationService}
}

func (h *ReputationHandler) RegisterRoutes(r *gin.RouterGroup) {
	public := r.Group("/reputation")
	{
		public.GET("/candidates/:address", h.GetCandidateReputation)
		public.GET("/companies/:address", h.GetCompanyReputation)
	}

	asCompany := r.Group("/reputation")
	asCompany.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleCompany))
	{
		asCompany.POST("/candidates", h.ScoreCandidate)
	}

	asCandidate := r.Group("/reputation")
	asCandidate.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleCandidate))
	{
		asCandidate.POST("/companies", h.ScoreCompany)
	}
}

func (h *ReputationHandler) ScoreCandidate(c *gin.Context) {
	wallet, ok := h.RequireWallet(c)
	if !ok {
		return
	}

	var req dto.ScoreCandidateRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.reputationService.ScoreCandidate(h.GetDB(c), wallet, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Score recorded"})
}

func (h *ReputationHandler) ScoreCompany(c *gin.Context) {
	wallet, ok := h.RequireWallet(c)
	if !ok {
		return
	}

	var req dto.ScoreCompanyRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.reputationService.ScoreCompany(h.GetDB(c), wallet, &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Score recorded"})
}

func (h *ReputationHandler) GetCandidateReputation(c *gin.Context) {
	resp, err := h.reputationService.GetCandidateReputation(h.GetDB(c), c.Param("address"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReputationHandler) GetCompanyReputation(c *gin.Context) {
	resp, err := h.reputationService.GetCompanyReputation(h.GetDB(c), c.Param("address"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
