package server

import (
	"github.com/gin-gonic/gin"
)

// @Summary      List Revenue Forecasts
// @Tags         forecasts
// @Produce      json
// @Security     ApiKeyAuth
// @Param        campground_id  path  string  true  "Campground ID"
// @Success      200  {object}  ListResponse
// @Router       /campgrounds/{campground_id}/forecasts [get]
func (s *Server) ListForecasts(c *gin.Context) {
	campgroundID, ok := pathID(c, "campground_id")
	if !ok {
		return
	}

	rows, err := s.forecastSvc.List(c.Request.Context(), campgroundID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondList(c, rows)
}

// @Summary      Generate Revenue Forecast
// @Description  Recompute the forecast horizon on demand instead of waiting for the scheduler
// @Tags         forecasts
// @Produce      json
// @Security     ApiKeyAuth
// @Param        campground_id  path  string  true  "Campground ID"
// @Success      200  {object}  DataResponse
// @Router       /campgrounds/{campground_id}/forecasts/generate [post]
func (s *Server) GenerateForecast(c *gin.Context) {
	campgroundID, ok := pathID(c, "campground_id")
	if !ok {
		return
	}

	rows, err := s.forecastSvc.Generate(c.Request.Context(), campgroundID, s.cfg.Scheduler.ForecastHorizonDays)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, gin.H{"rows_written": rows})
}
