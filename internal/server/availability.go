package server

import (
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
)

type availabilityCheckRequest struct {
	CampgroundID snowflake.ID `json:"campground_id" binding:"required"`
	Arrival      string       `json:"arrival" binding:"required"`
	Departure    string       `json:"departure" binding:"required"`
}

// @Summary      Check Availability
// @Description  List the campground's sites with their availability for a date range
// @Tags         availability
// @Accept       json
// @Produce      json
// @Param        request body availabilityCheckRequest true "Availability Check Request"
// @Success      200  {object}  DataResponse
// @Router       /availability/check [post]
func (s *Server) CheckAvailability(c *gin.Context) {
	var req availabilityCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	arrival, err := parseDate(req.Arrival)
	if err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	departure, err := parseDate(req.Departure)
	if err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	result, err := s.availabilitySvc.Check(c.Request.Context(), req.CampgroundID, arrival, departure)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, result)
}

type createMaintenanceBlockRequest struct {
	SiteID snowflake.ID `json:"site_id" binding:"required"`
	Start  string       `json:"start" binding:"required"`
	End    string       `json:"end" binding:"required"`
	Reason string       `json:"reason"`
}

// @Summary      Create Maintenance Block
// @Description  Take a site out of inventory for a date range
// @Tags         availability
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        campground_id  path  string  true  "Campground ID"
// @Param        request body createMaintenanceBlockRequest true "Create Maintenance Block Request"
// @Success      200  {object}  DataResponse
// @Router       /campgrounds/{campground_id}/maintenance-blocks [post]
func (s *Server) CreateMaintenanceBlock(c *gin.Context) {
	if _, ok := pathID(c, "campground_id"); !ok {
		return
	}

	var req createMaintenanceBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	start, err := parseDate(req.Start)
	if err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	end, err := parseDate(req.End)
	if err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	block, err := s.availabilitySvc.CreateMaintenanceBlock(c.Request.Context(), req.SiteID, start, end, strings.TrimSpace(req.Reason))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, block)
}
