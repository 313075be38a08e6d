package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	pricingdomain "github.com/campreserv/keepr/internal/pricing/domain"
)

type createPricingRuleRequest struct {
	Name            string                       `json:"name" binding:"required"`
	Trigger         pricingdomain.Trigger        `json:"trigger" binding:"required"`
	AdjustmentType  pricingdomain.AdjustmentType `json:"adjustment_type" binding:"required"`
	AdjustmentValue float64                      `json:"adjustment_value"`
	IsActive        *bool                        `json:"is_active"`
	Priority        *int                         `json:"priority"`
	Metadata        map[string]any               `json:"metadata"`
}

// @Summary      Create Pricing Rule
// @Description  Add a dynamic pricing rule for the campground
// @Tags         pricing-rules
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        campground_id  path  string  true  "Campground ID"
// @Param        request body createPricingRuleRequest true "Create Pricing Rule Request"
// @Success      200  {object}  DataResponse
// @Failure      422  {object}  ErrorResponse
// @Router       /campgrounds/{campground_id}/pricing-rules [post]
func (s *Server) CreatePricingRule(c *gin.Context) {
	campgroundID, ok := pathID(c, "campground_id")
	if !ok {
		return
	}

	var req createPricingRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	rule, err := s.pricingSvc.Create(c.Request.Context(), pricingdomain.CreateRequest{
		CampgroundID:    campgroundID,
		Name:            strings.TrimSpace(req.Name),
		Trigger:         req.Trigger,
		AdjustmentType:  req.AdjustmentType,
		AdjustmentValue: req.AdjustmentValue,
		IsActive:        req.IsActive,
		Priority:        req.Priority,
		Metadata:        req.Metadata,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, rule)
}

// @Summary      List Pricing Rules
// @Tags         pricing-rules
// @Produce      json
// @Security     ApiKeyAuth
// @Param        campground_id  path  string  true  "Campground ID"
// @Success      200  {object}  ListResponse
// @Router       /campgrounds/{campground_id}/pricing-rules [get]
func (s *Server) ListPricingRules(c *gin.Context) {
	campgroundID, ok := pathID(c, "campground_id")
	if !ok {
		return
	}

	rules, err := s.pricingSvc.List(c.Request.Context(), campgroundID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondList(c, rules)
}

// @Summary      Get Pricing Rule
// @Tags         pricing-rules
// @Produce      json
// @Security     ApiKeyAuth
// @Param        campground_id  path  string  true  "Campground ID"
// @Param        id             path  string  true  "Pricing Rule ID"
// @Success      200  {object}  DataResponse
// @Router       /campgrounds/{campground_id}/pricing-rules/{id} [get]
func (s *Server) GetPricingRule(c *gin.Context) {
	campgroundID, ok := pathID(c, "campground_id")
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	rule, err := s.pricingSvc.Get(c.Request.Context(), campgroundID, id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, rule)
}

type updatePricingRuleRequest struct {
	Name            *string                       `json:"name"`
	Trigger         *pricingdomain.Trigger        `json:"trigger"`
	AdjustmentType  *pricingdomain.AdjustmentType `json:"adjustment_type"`
	AdjustmentValue *float64                      `json:"adjustment_value"`
	IsActive        *bool                         `json:"is_active"`
	Priority        *int                          `json:"priority"`
}

// @Summary      Update Pricing Rule
// @Tags         pricing-rules
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        campground_id  path  string  true  "Campground ID"
// @Param        id             path  string  true  "Pricing Rule ID"
// @Param        request body updatePricingRuleRequest true "Update Pricing Rule Request"
// @Success      200  {object}  DataResponse
// @Router       /campgrounds/{campground_id}/pricing-rules/{id} [patch]
func (s *Server) UpdatePricingRule(c *gin.Context) {
	campgroundID, ok := pathID(c, "campground_id")
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req updatePricingRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	rule, err := s.pricingSvc.Update(c.Request.Context(), campgroundID, id, pricingdomain.UpdateRequest{
		Name:            req.Name,
		Trigger:         req.Trigger,
		AdjustmentType:  req.AdjustmentType,
		AdjustmentValue: req.AdjustmentValue,
		IsActive:        req.IsActive,
		Priority:        req.Priority,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, rule)
}

// @Summary      Delete Pricing Rule
// @Tags         pricing-rules
// @Produce      json
// @Security     ApiKeyAuth
// @Param        campground_id  path  string  true  "Campground ID"
// @Param        id             path  string  true  "Pricing Rule ID"
// @Success      204  "No Content"
// @Router       /campgrounds/{campground_id}/pricing-rules/{id} [delete]
func (s *Server) DeletePricingRule(c *gin.Context) {
	campgroundID, ok := pathID(c, "campground_id")
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := s.pricingSvc.Delete(c.Request.Context(), campgroundID, id); err != nil {
		AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
