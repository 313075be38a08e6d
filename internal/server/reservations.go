package server

import (
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"

	feedomain "github.com/campreserv/keepr/internal/fee/domain"
	reservationdomain "github.com/campreserv/keepr/internal/reservation/domain"
)

type createReservationRequest struct {
	SiteID     snowflake.ID        `json:"site_id" binding:"required"`
	GuestName  string              `json:"guest_name" binding:"required"`
	GuestEmail string              `json:"guest_email" binding:"required"`
	Arrival    string              `json:"arrival" binding:"required"`
	Departure  string              `json:"departure" binding:"required"`
	Occupants  feedomain.Occupants `json:"occupants"`
	UpsellIDs  []snowflake.ID      `json:"upsell_ids"`
}

// @Summary      Create Reservation
// @Description  Quote the stay and book the site in one transaction
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Param        campground_id  path  string  true  "Campground ID"
// @Param        request body createReservationRequest true "Create Reservation Request"
// @Success      200  {object}  DataResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /campgrounds/{campground_id}/reservations [post]
func (s *Server) CreateReservation(c *gin.Context) {
	campgroundID, ok := pathID(c, "campground_id")
	if !ok {
		return
	}

	var req createReservationRequest
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

	res, err := s.reservationSvc.Create(c.Request.Context(), reservationdomain.CreateRequest{
		CampgroundID: campgroundID,
		SiteID:       req.SiteID,
		GuestName:    strings.TrimSpace(req.GuestName),
		GuestEmail:   strings.TrimSpace(req.GuestEmail),
		Arrival:      arrival,
		Departure:    departure,
		Occupants:    req.Occupants,
		UpsellIDs:    req.UpsellIDs,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, res)
}

// @Summary      Get Reservation
// @Tags         reservations
// @Produce      json
// @Param        campground_id  path  string  true  "Campground ID"
// @Param        id             path  string  true  "Reservation ID"
// @Success      200  {object}  DataResponse
// @Router       /campgrounds/{campground_id}/reservations/{id} [get]
func (s *Server) GetReservation(c *gin.Context) {
	campgroundID, ok := pathID(c, "campground_id")
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	res, err := s.reservationSvc.Get(c.Request.Context(), campgroundID, id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, res)
}

// @Summary      List Reservations
// @Tags         reservations
// @Produce      json
// @Security     ApiKeyAuth
// @Param        campground_id  path  string  true  "Campground ID"
// @Success      200  {object}  ListResponse
// @Router       /campgrounds/{campground_id}/reservations [get]
func (s *Server) ListReservations(c *gin.Context) {
	campgroundID, ok := pathID(c, "campground_id")
	if !ok {
		return
	}

	list, err := s.reservationSvc.List(c.Request.Context(), campgroundID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondList(c, list)
}

func (s *Server) transition(c *gin.Context, fn func(campgroundID, id snowflake.ID) (*reservationdomain.Reservation, error)) {
	campgroundID, ok := pathID(c, "campground_id")
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	res, err := fn(campgroundID, id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, res)
}

// @Summary      Confirm Reservation
// @Tags         reservations
// @Produce      json
// @Security     ApiKeyAuth
// @Param        campground_id  path  string  true  "Campground ID"
// @Param        id             path  string  true  "Reservation ID"
// @Success      200  {object}  DataResponse
// @Router       /campgrounds/{campground_id}/reservations/{id}/confirm [post]
func (s *Server) ConfirmReservation(c *gin.Context) {
	s.transition(c, func(campgroundID, id snowflake.ID) (*reservationdomain.Reservation, error) {
		return s.reservationSvc.Confirm(c.Request.Context(), campgroundID, id)
	})
}

// @Summary      Check In Reservation
// @Tags         reservations
// @Produce      json
// @Security     ApiKeyAuth
// @Param        campground_id  path  string  true  "Campground ID"
// @Param        id             path  string  true  "Reservation ID"
// @Success      200  {object}  DataResponse
// @Router       /campgrounds/{campground_id}/reservations/{id}/checkin [post]
func (s *Server) CheckInReservation(c *gin.Context) {
	s.transition(c, func(campgroundID, id snowflake.ID) (*reservationdomain.Reservation, error) {
		return s.reservationSvc.CheckIn(c.Request.Context(), campgroundID, id)
	})
}

// @Summary      Check Out Reservation
// @Tags         reservations
// @Produce      json
// @Security     ApiKeyAuth
// @Param        campground_id  path  string  true  "Campground ID"
// @Param        id             path  string  true  "Reservation ID"
// @Success      200  {object}  DataResponse
// @Router       /campgrounds/{campground_id}/reservations/{id}/checkout [post]
func (s *Server) CheckOutReservation(c *gin.Context) {
	s.transition(c, func(campgroundID, id snowflake.ID) (*reservationdomain.Reservation, error) {
		return s.reservationSvc.CheckOut(c.Request.Context(), campgroundID, id)
	})
}

type recordPaymentRequest struct {
	AmountCents int64 `json:"amount_cents" binding:"required,gt=0"`
}

// @Summary      Record Payment
// @Description  Record a captured deposit or balance payment
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        campground_id  path  string  true  "Campground ID"
// @Param        id             path  string  true  "Reservation ID"
// @Param        request body recordPaymentRequest true "Record Payment Request"
// @Success      200  {object}  DataResponse
// @Router       /campgrounds/{campground_id}/reservations/{id}/payments [post]
func (s *Server) RecordPayment(c *gin.Context) {
	campgroundID, ok := pathID(c, "campground_id")
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req recordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	res, err := s.reservationSvc.RecordPayment(c.Request.Context(), campgroundID, id, req.AmountCents)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, res)
}

// @Summary      Preview Cancellation
// @Description  Evaluate the snapshotted cancellation policy without mutating the reservation
// @Tags         reservations
// @Produce      json
// @Param        campground_id  path  string  true  "Campground ID"
// @Param        id             path  string  true  "Reservation ID"
// @Success      200  {object}  DataResponse
// @Router       /campgrounds/{campground_id}/reservations/{id}/cancel-preview [get]
func (s *Server) PreviewCancellation(c *gin.Context) {
	campgroundID, ok := pathID(c, "campground_id")
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	result, err := s.reservationSvc.PreviewCancellation(c.Request.Context(), campgroundID, id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, result)
}

// @Summary      Cancel Reservation
// @Description  Cancel and settle fee and refund per the snapshotted policy
// @Tags         reservations
// @Produce      json
// @Param        campground_id  path  string  true  "Campground ID"
// @Param        id             path  string  true  "Reservation ID"
// @Success      200  {object}  DataResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /campgrounds/{campground_id}/reservations/{id}/cancel [post]
func (s *Server) CancelReservation(c *gin.Context) {
	campgroundID, ok := pathID(c, "campground_id")
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	result, err := s.reservationSvc.Cancel(c.Request.Context(), campgroundID, id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, result)
}
