package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	feedomain "github.com/campreserv/keepr/internal/fee/domain"
)

type taxRuleRequest struct {
	Name        string                 `json:"name" binding:"required"`
	RatePercent float64                `json:"rate_percent"`
	AmountCents int64                  `json:"amount_cents"`
	AppliesTo   feedomain.TaxAppliesTo `json:"applies_to"`
	IsActive    *bool                  `json:"is_active"`
}

// @Summary      Create Tax Rule
// @Tags         tax-rules
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        campground_id  path  string  true  "Campground ID"
// @Param        request body taxRuleRequest true "Create Tax Rule Request"
// @Success      200  {object}  DataResponse
// @Failure      422  {object}  ErrorResponse
// @Router       /campgrounds/{campground_id}/tax-rules [post]
func (s *Server) CreateTaxRule(c *gin.Context) {
	campgroundID, ok := pathID(c, "campground_id")
	if !ok {
		return
	}

	var req taxRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	rule, err := s.feeSvc.CreateTaxRule(c.Request.Context(), feedomain.TaxRuleRequest{
		CampgroundID: campgroundID,
		Name:         strings.TrimSpace(req.Name),
		RatePercent:  req.RatePercent,
		AmountCents:  req.AmountCents,
		AppliesTo:    req.AppliesTo,
		IsActive:     req.IsActive,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, rule)
}

// @Summary      Update Tax Rule
// @Tags         tax-rules
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        campground_id  path  string  true  "Campground ID"
// @Param        id             path  string  true  "Tax Rule ID"
// @Param        request body taxRuleRequest true "Update Tax Rule Request"
// @Success      200  {object}  DataResponse
// @Router       /campgrounds/{campground_id}/tax-rules/{id} [patch]
func (s *Server) UpdateTaxRule(c *gin.Context) {
	campgroundID, ok := pathID(c, "campground_id")
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req taxRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	rule, err := s.feeSvc.UpdateTaxRule(c.Request.Context(), campgroundID, id, feedomain.TaxRuleRequest{
		CampgroundID: campgroundID,
		Name:         strings.TrimSpace(req.Name),
		RatePercent:  req.RatePercent,
		AmountCents:  req.AmountCents,
		AppliesTo:    req.AppliesTo,
		IsActive:     req.IsActive,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, rule)
}

// @Summary      List Tax Rules
// @Tags         tax-rules
// @Produce      json
// @Security     ApiKeyAuth
// @Param        campground_id  path  string  true  "Campground ID"
// @Success      200  {object}  ListResponse
// @Router       /campgrounds/{campground_id}/tax-rules [get]
func (s *Server) ListTaxRules(c *gin.Context) {
	campgroundID, ok := pathID(c, "campground_id")
	if !ok {
		return
	}

	rules, err := s.feeSvc.ListTaxRules(c.Request.Context(), campgroundID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondList(c, rules)
}

// @Summary      Delete Tax Rule
// @Tags         tax-rules
// @Produce      json
// @Security     ApiKeyAuth
// @Param        campground_id  path  string  true  "Campground ID"
// @Param        id             path  string  true  "Tax Rule ID"
// @Success      204  "No Content"
// @Router       /campgrounds/{campground_id}/tax-rules/{id} [delete]
func (s *Server) DeleteTaxRule(c *gin.Context) {
	campgroundID, ok := pathID(c, "campground_id")
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := s.feeSvc.DeleteTaxRule(c.Request.Context(), campgroundID, id); err != nil {
		AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary      Get Guest Fee Config
// @Tags         guest-fees
// @Produce      json
// @Security     ApiKeyAuth
// @Param        campground_id  path  string  true  "Campground ID"
// @Success      200  {object}  DataResponse
// @Router       /campgrounds/{campground_id}/guest-fees [get]
func (s *Server) GetGuestFeeConfig(c *gin.Context) {
	campgroundID, ok := pathID(c, "campground_id")
	if !ok {
		return
	}

	cfg, err := s.feeSvc.GetGuestFeeConfig(c.Request.Context(), campgroundID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, cfg)
}

type putGuestFeeConfigRequest struct {
	IncludedAdults   int   `json:"included_adults"`
	IncludedChildren int   `json:"included_children"`
	ExtraAdultCents  int64 `json:"extra_adult_cents"`
	ExtraChildCents  int64 `json:"extra_child_cents"`
	PetCents         int64 `json:"pet_cents"`
}

// @Summary      Put Guest Fee Config
// @Description  Replace the campground's per-guest fee configuration
// @Tags         guest-fees
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        campground_id  path  string  true  "Campground ID"
// @Param        request body putGuestFeeConfigRequest true "Guest Fee Config"
// @Success      200  {object}  DataResponse
// @Router       /campgrounds/{campground_id}/guest-fees [put]
func (s *Server) PutGuestFeeConfig(c *gin.Context) {
	campgroundID, ok := pathID(c, "campground_id")
	if !ok {
		return
	}

	var req putGuestFeeConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	cfg, err := s.feeSvc.PutGuestFeeConfig(c.Request.Context(), feedomain.GuestFeeConfig{
		CampgroundID:     campgroundID,
		IncludedAdults:   req.IncludedAdults,
		IncludedChildren: req.IncludedChildren,
		ExtraAdultCents:  req.ExtraAdultCents,
		ExtraChildCents:  req.ExtraChildCents,
		PetCents:         req.PetCents,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, cfg)
}

type upsellRequest struct {
	Name       string `json:"name" binding:"required"`
	PriceCents int64  `json:"price_cents"`
	Active     *bool  `json:"active"`
}

// @Summary      Create Upsell
// @Tags         upsells
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        campground_id  path  string  true  "Campground ID"
// @Param        request body upsellRequest true "Create Upsell Request"
// @Success      200  {object}  DataResponse
// @Router       /campgrounds/{campground_id}/upsells [post]
func (s *Server) CreateUpsell(c *gin.Context) {
	campgroundID, ok := pathID(c, "campground_id")
	if !ok {
		return
	}

	var req upsellRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	upsell, err := s.feeSvc.CreateUpsell(c.Request.Context(), feedomain.UpsellRequest{
		CampgroundID: campgroundID,
		Name:         strings.TrimSpace(req.Name),
		PriceCents:   req.PriceCents,
		Active:       req.Active,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, upsell)
}

// @Summary      List Upsells
// @Tags         upsells
// @Produce      json
// @Security     ApiKeyAuth
// @Param        campground_id  path  string  true  "Campground ID"
// @Success      200  {object}  ListResponse
// @Router       /campgrounds/{campground_id}/upsells [get]
func (s *Server) ListUpsells(c *gin.Context) {
	campgroundID, ok := pathID(c, "campground_id")
	if !ok {
		return
	}

	upsells, err := s.feeSvc.ListUpsells(c.Request.Context(), campgroundID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondList(c, upsells)
}

// @Summary      Delete Upsell
// @Tags         upsells
// @Produce      json
// @Security     ApiKeyAuth
// @Param        campground_id  path  string  true  "Campground ID"
// @Param        id             path  string  true  "Upsell ID"
// @Success      204  "No Content"
// @Router       /campgrounds/{campground_id}/upsells/{id} [delete]
func (s *Server) DeleteUpsell(c *gin.Context) {
	campgroundID, ok := pathID(c, "campground_id")
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := s.feeSvc.DeleteUpsell(c.Request.Context(), campgroundID, id); err != nil {
		AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
