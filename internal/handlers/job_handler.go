package handlers

import (
	"net/http"

	"frontdoor_backend/internal/middleware"
	"frontdoor_backend/internal/models"
	"frontdoor_backend/internal/services"
	"frontdoor_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	*BaseHandler
	jobService      services.JobService
	referralService services.ReferralService
}

func NewJobHandler(base *BaseHandler, jobService services.JobService, referralService services.ReferralService) *JobHandler {
	return &JobHandler{BaseHandler: base, jobService: jobService, referralService: referralService}
}

func (h *JobHandler) RegisterRoutes(r *gin.RouterGroup) {
	public := r.Group("/jobs")
	{
		public.GET("/:jobId", h.GetJob)
		public.GET("/:jobId/referrals", h.GetJobReferrals)
	}

	protected := r.Group("/jobs")
	protected.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleCompany))
	{
		protected.POST("", h.CreateJob)
	}
}

func (h *JobHandler) CreateJob(c *gin.Context) {
	wallet, ok := h.RequireWallet(c)
	if !ok {
		return
	}

	var req dto.CreateJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.jobService.Create(c.Request.Context(), h.GetDB(c), wallet, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *JobHandler) GetJob(c *gin.Context) {
	jobID, err := ParseParamInt64(c, "jobId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	resp, err := h.jobService.Get(h.GetDB(c), jobID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *JobHandler) GetJobReferrals(c *gin.Context) {
	jobID, err := ParseParamInt64(c, "jobId")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	resp, err := h.referralService.GetJobReferrals(h.GetDB(c), jobID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
