package server

import (
	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"

	feedomain "github.com/campreserv/keepr/internal/fee/domain"
	quotedomain "github.com/campreserv/keepr/internal/quote/domain"
)

type quoteRequest struct {
	CampgroundID snowflake.ID        `json:"campground_id" binding:"required"`
	SiteID       snowflake.ID        `json:"site_id" binding:"required"`
	Arrival      string              `json:"arrival" binding:"required"`
	Departure    string              `json:"departure" binding:"required"`
	Occupants    feedomain.Occupants `json:"occupants"`
	UpsellIDs    []snowflake.ID      `json:"upsell_ids"`
}

// @Summary      Create Quote
// @Description  Price a prospective stay without reserving anything
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        request body quoteRequest true "Quote Request"
// @Success      200  {object}  DataResponse
// @Failure      422  {object}  ErrorResponse
// @Router       /quotes [post]
func (s *Server) CreateQuote(c *gin.Context) {
	var req quoteRequest
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

	quote, err := s.quoteSvc.Compute(c.Request.Context(), quotedomain.Request{
		CampgroundID: req.CampgroundID,
		SiteID:       req.SiteID,
		Arrival:      arrival,
		Departure:    departure,
		Occupants:    req.Occupants,
		UpsellIDs:    req.UpsellIDs,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, quote)
}

// @Summary      Get Quote
// @Description  Fetch a previously computed quote by its reference while it remains cached
// @Tags         quotes
// @Produce      json
// @Param        reference path string true "Quote Reference"
// @Success      200  {object}  DataResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /quotes/{reference} [get]
func (s *Server) GetQuote(c *gin.Context) {
	quote, err := s.quoteSvc.GetByReference(c.Request.Context(), c.Param("reference"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, quote)
}
