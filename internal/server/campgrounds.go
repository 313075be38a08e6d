package server

import (
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"

	campgrounddomain "github.com/campreserv/keepr/internal/campground/domain"
	"github.com/campreserv/keepr/internal/cancellation"
	"github.com/campreserv/keepr/internal/deposit"
)

type createCampgroundRequest struct {
	Name        string `json:"name" binding:"required"`
	Timezone    string `json:"timezone"`
	RequiresTax bool   `json:"requires_tax"`
}

// @Summary      Create Campground
// @Tags         campgrounds
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        request body createCampgroundRequest true "Create Campground Request"
// @Success      200  {object}  DataResponse
// @Router       /campgrounds [post]
func (s *Server) CreateCampground(c *gin.Context) {
	var req createCampgroundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	cg, err := s.campgroundSvc.Create(c.Request.Context(), campgrounddomain.CreateRequest{
		Name:        strings.TrimSpace(req.Name),
		Timezone:    strings.TrimSpace(req.Timezone),
		RequiresTax: req.RequiresTax,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, cg)
}

// @Summary      List Campgrounds
// @Tags         campgrounds
// @Produce      json
// @Success      200  {object}  ListResponse
// @Router       /campgrounds [get]
func (s *Server) ListCampgrounds(c *gin.Context) {
	list, err := s.campgroundSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondList(c, list)
}

// @Summary      Get Campground
// @Tags         campgrounds
// @Produce      json
// @Param        campground_id  path  string  true  "Campground ID"
// @Success      200  {object}  DataResponse
// @Router       /campgrounds/{campground_id} [get]
func (s *Server) GetCampground(c *gin.Context) {
	id, ok := pathID(c, "campground_id")
	if !ok {
		return
	}

	cg, err := s.campgroundSvc.Get(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, cg)
}

type patchPoliciesRequest struct {
	RequiresTax *bool `json:"requires_tax"`

	DepositRule       *deposit.Rule `json:"deposit_rule"`
	DepositPercentage *float64      `json:"deposit_percentage"`
	DepositFlatCents  *int64        `json:"deposit_flat_cents"`

	CancellationPolicyType *cancellation.PolicyType `json:"cancellation_policy_type"`
	CancellationWindow     *int                     `json:"cancellation_window_hours"`
	CancellationFeeType    *cancellation.FeeType    `json:"cancellation_fee_type"`
	CancellationFeeFlat    *int64                   `json:"cancellation_fee_flat_cents"`
	CancellationFeePercent *float64                 `json:"cancellation_fee_percent"`
	CancellationNotes      *string                  `json:"cancellation_notes"`
}

// @Summary      Patch Campground Policies
// @Description  Partially update deposit and cancellation configuration
// @Tags         campgrounds
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        campground_id  path  string  true  "Campground ID"
// @Param        request body patchPoliciesRequest true "Patch Policies Request"
// @Success      200  {object}  DataResponse
// @Failure      422  {object}  ErrorResponse
// @Router       /campgrounds/{campground_id}/policies [patch]
func (s *Server) PatchCampgroundPolicies(c *gin.Context) {
	id, ok := pathID(c, "campground_id")
	if !ok {
		return
	}

	var req patchPoliciesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	cg, err := s.campgroundSvc.PatchPolicies(c.Request.Context(), id, campgrounddomain.PatchPoliciesRequest{
		RequiresTax:       req.RequiresTax,
		DepositRule:       req.DepositRule,
		DepositPercentage: req.DepositPercentage,
		DepositFlatCents:  req.DepositFlatCents,
		PolicyType:        req.CancellationPolicyType,
		WindowHours:       req.CancellationWindow,
		FeeType:           req.CancellationFeeType,
		FeeFlatCents:      req.CancellationFeeFlat,
		FeePercent:        req.CancellationFeePercent,
		Notes:             req.CancellationNotes,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, cg)
}

type createSiteClassRequest struct {
	Name string `json:"name" binding:"required"`
}

// @Summary      Create Site Class
// @Tags         campgrounds
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        campground_id  path  string  true  "Campground ID"
// @Param        request body createSiteClassRequest true "Create Site Class Request"
// @Success      200  {object}  DataResponse
// @Router       /campgrounds/{campground_id}/site-classes [post]
func (s *Server) CreateSiteClass(c *gin.Context) {
	campgroundID, ok := pathID(c, "campground_id")
	if !ok {
		return
	}

	var req createSiteClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	class, err := s.campgroundSvc.CreateSiteClass(c.Request.Context(), campgroundID, strings.TrimSpace(req.Name))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, class)
}

type createSiteRequest struct {
	SiteClassID snowflake.ID `json:"site_class_id" binding:"required"`
	Name        string       `json:"name" binding:"required"`
}

// @Summary      Create Site
// @Tags         campgrounds
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        campground_id  path  string  true  "Campground ID"
// @Param        request body createSiteRequest true "Create Site Request"
// @Success      200  {object}  DataResponse
// @Router       /campgrounds/{campground_id}/sites [post]
func (s *Server) CreateSite(c *gin.Context) {
	campgroundID, ok := pathID(c, "campground_id")
	if !ok {
		return
	}

	var req createSiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	site, err := s.campgroundSvc.CreateSite(c.Request.Context(), campgrounddomain.CreateSiteRequest{
		CampgroundID: campgroundID,
		SiteClassID:  req.SiteClassID,
		Name:         strings.TrimSpace(req.Name),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, site)
}

// @Summary      List Sites
// @Tags         campgrounds
// @Produce      json
// @Param        campground_id  path  string  true  "Campground ID"
// @Success      200  {object}  ListResponse
// @Router       /campgrounds/{campground_id}/sites [get]
func (s *Server) ListSites(c *gin.Context) {
	campgroundID, ok := pathID(c, "campground_id")
	if !ok {
		return
	}

	sites, err := s.campgroundSvc.ListSites(c.Request.Context(), campgroundID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondList(c, sites)
}
