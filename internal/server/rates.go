package server

import (
	"net/http"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"

	ratedomain "github.com/campreserv/keepr/internal/rate/domain"
)

type createRateRequest struct {
	SiteID           *snowflake.ID `json:"site_id"`
	SiteClassID      *snowflake.ID `json:"site_class_id"`
	StartDate        string        `json:"start_date" binding:"required"`
	EndDate          string        `json:"end_date" binding:"required"`
	NightlyRateCents int64         `json:"nightly_rate_cents" binding:"required"`
}

// @Summary      Create Rate Entry
// @Description  Configure a nightly rate for a site or a site class over a date range
// @Tags         rates
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        campground_id  path  string  true  "Campground ID"
// @Param        request body createRateRequest true "Create Rate Request"
// @Success      200  {object}  DataResponse
// @Failure      422  {object}  ErrorResponse
// @Router       /campgrounds/{campground_id}/rates [post]
func (s *Server) CreateRate(c *gin.Context) {
	campgroundID, ok := pathID(c, "campground_id")
	if !ok {
		return
	}

	var req createRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	entry, err := s.rateSvc.Create(c.Request.Context(), ratedomain.CreateRequest{
		CampgroundID:     campgroundID,
		SiteID:           req.SiteID,
		SiteClassID:      req.SiteClassID,
		StartDate:        start,
		EndDate:          end,
		NightlyRateCents: req.NightlyRateCents,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, entry)
}

// @Summary      List Rate Entries
// @Tags         rates
// @Produce      json
// @Security     ApiKeyAuth
// @Param        campground_id  path  string  true  "Campground ID"
// @Success      200  {object}  ListResponse
// @Router       /campgrounds/{campground_id}/rates [get]
func (s *Server) ListRates(c *gin.Context) {
	campgroundID, ok := pathID(c, "campground_id")
	if !ok {
		return
	}

	entries, err := s.rateSvc.List(c.Request.Context(), campgroundID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondList(c, entries)
}

// @Summary      Get Rate Entry
// @Tags         rates
// @Produce      json
// @Security     ApiKeyAuth
// @Param        campground_id  path  string  true  "Campground ID"
// @Param        id             path  string  true  "Rate Entry ID"
// @Success      200  {object}  DataResponse
// @Router       /campgrounds/{campground_id}/rates/{id} [get]
func (s *Server) GetRate(c *gin.Context) {
	campgroundID, ok := pathID(c, "campground_id")
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	entry, err := s.rateSvc.Get(c.Request.Context(), campgroundID, id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, entry)
}

// @Summary      Delete Rate Entry
// @Tags         rates
// @Produce      json
// @Security     ApiKeyAuth
// @Param        campground_id  path  string  true  "Campground ID"
// @Param        id             path  string  true  "Rate Entry ID"
// @Success      204  "No Content"
// @Router       /campgrounds/{campground_id}/rates/{id} [delete]
func (s *Server) DeleteRate(c *gin.Context) {
	campgroundID, ok := pathID(c, "campground_id")
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := s.rateSvc.Delete(c.Request.Context(), campgroundID, id); err != nil {
		AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
