package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	availabilitydomain "github.com/campreserv/keepr/internal/availability/domain"
	campgrounddomain "github.com/campreserv/keepr/internal/campground/domain"
	"github.com/campreserv/keepr/internal/config"
	feedomain "github.com/campreserv/keepr/internal/fee/domain"
	forecastdomain "github.com/campreserv/keepr/internal/forecast/domain"
	"github.com/campreserv/keepr/internal/observability"
	pricingdomain "github.com/campreserv/keepr/internal/pricing/domain"
	quotedomain "github.com/campreserv/keepr/internal/quote/domain"
	ratedomain "github.com/campreserv/keepr/internal/rate/domain"
	reservationdomain "github.com/campreserv/keepr/internal/reservation/domain"
)

// Server holds the HTTP handler dependencies. Handlers are methods on
// Server; routing lives in Router.
type Server struct {
	cfg     config.Config
	log     *zap.Logger
	db      *gorm.DB
	metrics *observability.Metrics

	campgroundSvc   campgrounddomain.Service
	rateSvc         ratedomain.Service
	pricingSvc      pricingdomain.Service
	feeSvc          feedomain.Service
	quoteSvc        quotedomain.Service
	reservationSvc  reservationdomain.Service
	availabilitySvc availabilitydomain.Service
	forecastSvc     forecastdomain.Service
}

func NewServer(
	cfg config.Config,
	log *zap.Logger,
	db *gorm.DB,
	metrics *observability.Metrics,
	campgroundSvc campgrounddomain.Service,
	rateSvc ratedomain.Service,
	pricingSvc pricingdomain.Service,
	feeSvc feedomain.Service,
	quoteSvc quotedomain.Service,
	reservationSvc reservationdomain.Service,
	availabilitySvc availabilitydomain.Service,
	forecastSvc forecastdomain.Service,
) *Server {
	return &Server{
		cfg:             cfg,
		log:             log.Named("server"),
		db:              db,
		metrics:         metrics,
		campgroundSvc:   campgroundSvc,
		rateSvc:         rateSvc,
		pricingSvc:      pricingSvc,
		feeSvc:          feeSvc,
		quoteSvc:        quoteSvc,
		reservationSvc:  reservationSvc,
		availabilitySvc: availabilitySvc,
		forecastSvc:     forecastSvc,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(s.RequestID())
	r.Use(s.Tracing())
	r.Use(s.RequestLogger())

	corsCfg := cors.DefaultConfig()
	if len(s.cfg.HTTP.CORSOrigins) == 1 && s.cfg.HTTP.CORSOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = s.cfg.HTTP.CORSOrigins
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization", "X-Request-Id")
	r.Use(cors.New(corsCfg))

	r.GET("/healthz", s.Healthz)
	r.GET("/readyz", s.Readyz)
	r.GET("/metrics", s.Metrics())

	v1 := r.Group("/v1")

	// Guest-facing read paths need no credentials.
	v1.POST("/quotes", s.CreateQuote)
	v1.GET("/quotes/:reference", s.GetQuote)
	v1.POST("/availability/check", s.CheckAvailability)
	v1.GET("/campgrounds", s.ListCampgrounds)
	v1.GET("/campgrounds/:campground_id", s.GetCampground)
	v1.GET("/campgrounds/:campground_id/sites", s.ListSites)

	staff := v1.Group("", s.APIKeyRequired())

	staff.POST("/campgrounds", s.CreateCampground)
	staff.PATCH("/campgrounds/:campground_id/policies", s.PatchCampgroundPolicies)
	staff.POST("/campgrounds/:campground_id/site-classes", s.CreateSiteClass)
	staff.POST("/campgrounds/:campground_id/sites", s.CreateSite)

	staff.GET("/campgrounds/:campground_id/rates", s.ListRates)
	staff.POST("/campgrounds/:campground_id/rates", s.CreateRate)
	staff.GET("/campgrounds/:campground_id/rates/:id", s.GetRate)
	staff.DELETE("/campgrounds/:campground_id/rates/:id", s.DeleteRate)

	staff.GET("/campgrounds/:campground_id/pricing-rules", s.ListPricingRules)
	staff.POST("/campgrounds/:campground_id/pricing-rules", s.CreatePricingRule)
	staff.GET("/campgrounds/:campground_id/pricing-rules/:id", s.GetPricingRule)
	staff.PATCH("/campgrounds/:campground_id/pricing-rules/:id", s.UpdatePricingRule)
	staff.DELETE("/campgrounds/:campground_id/pricing-rules/:id", s.DeletePricingRule)

	staff.GET("/campgrounds/:campground_id/tax-rules", s.ListTaxRules)
	staff.POST("/campgrounds/:campground_id/tax-rules", s.CreateTaxRule)
	staff.PATCH("/campgrounds/:campground_id/tax-rules/:id", s.UpdateTaxRule)
	staff.DELETE("/campgrounds/:campground_id/tax-rules/:id", s.DeleteTaxRule)

	staff.GET("/campgrounds/:campground_id/guest-fees", s.GetGuestFeeConfig)
	staff.PUT("/campgrounds/:campground_id/guest-fees", s.PutGuestFeeConfig)

	staff.GET("/campgrounds/:campground_id/upsells", s.ListUpsells)
	staff.POST("/campgrounds/:campground_id/upsells", s.CreateUpsell)
	staff.DELETE("/campgrounds/:campground_id/upsells/:id", s.DeleteUpsell)

	v1.POST("/campgrounds/:campground_id/reservations", s.CreateReservation)
	v1.GET("/campgrounds/:campground_id/reservations/:id", s.GetReservation)
	v1.GET("/campgrounds/:campground_id/reservations/:id/cancel-preview", s.PreviewCancellation)
	v1.POST("/campgrounds/:campground_id/reservations/:id/cancel", s.CancelReservation)

	staff.GET("/campgrounds/:campground_id/reservations", s.ListReservations)
	staff.POST("/campgrounds/:campground_id/reservations/:id/confirm", s.ConfirmReservation)
	staff.POST("/campgrounds/:campground_id/reservations/:id/checkin", s.CheckInReservation)
	staff.POST("/campgrounds/:campground_id/reservations/:id/checkout", s.CheckOutReservation)
	staff.POST("/campgrounds/:campground_id/reservations/:id/payments", s.RecordPayment)

	staff.POST("/campgrounds/:campground_id/maintenance-blocks", s.CreateMaintenanceBlock)
	staff.GET("/campgrounds/:campground_id/forecasts", s.ListForecasts)
	staff.POST("/campgrounds/:campground_id/forecasts/generate", s.GenerateForecast)

	return r
}
