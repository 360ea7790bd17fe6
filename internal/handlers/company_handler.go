package handlers

import (
	"net/http"

	"frontdoor_backend/internal/middleware"
	"frontdoor_backend/internal/models"
	"frontdoor_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	*BaseHandler
	companyService services.CompanyService
}

func NewCompanyHandler(base *BaseHandler, companyService services.CompanyService) *CompanyHandler {
	return &CompanyHandler{BaseHandler: base, companyService: companyService}
}

func (h *CompanyHandler) RegisterRoutes(r *gin.RouterGroup) {
	public := r.Group("/companies")
	{
		public.GET("/:address", h.GetCompany)
		public.GET("/:address/jobs", h.GetCompanyJobs)
	}

	protected := r.Group("/companies")
	protected.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleCompany))
	{
		protected.POST("/register", h.Register)
	}
}

func (h *CompanyHandler) Register(c *gin.Context) {
	wallet, ok := h.RequireWallet(c)
	if !ok {
		return
	}

	resp, err := h.companyService.Register(h.GetDB(c), wallet)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CompanyHandler) GetCompany(c *gin.Context) {
	resp, err := h.companyService.Get(h.GetDB(c), c.Param("address"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CompanyHandler) GetCompanyJobs(c *gin.Context) {
	resp, err := h.companyService.GetJobs(h.GetDB(c), c.Param("address"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
