package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	availabilitydomain "github.com/campreserv/keepr/internal/availability/domain"
	campgrounddomain "github.com/campreserv/keepr/internal/campground/domain"
	"github.com/campreserv/keepr/internal/cancellation"
	"github.com/campreserv/keepr/internal/clock"
	quotedomain "github.com/campreserv/keepr/internal/quote/domain"
	reservationdomain "github.com/campreserv/keepr/internal/reservation/domain"
	"github.com/campreserv/keepr/internal/reservation/repository"
)

var testArrival = time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC)

func newTestService(t *testing.T, now time.Time) *Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&reservationdomain.Reservation{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return &Service{
		db:    db,
		log:   zap.NewNop(),
		clock: clock.Fixed{T: now},
		genID: node,
		repo:  repository.NewRepository(db),
	}
}

func insertReservation(t *testing.T, svc *Service, status reservationdomain.Status, createdAt time.Time) *reservationdomain.Reservation {
	t.Helper()

	flat := int64(2500)
	res := &reservationdomain.Reservation{
		ID:           svc.genID.Generate(),
		CampgroundID: 1,
		SiteID:       2,
		GuestName:    "Ada",
		GuestEmail:   "ada@example.com",
		Arrival:      testArrival,
		Departure:    testArrival.AddDate(0, 0, 3),
		Nights:       3,
		Status:       status,

		QuoteReference:  "01HZX0000000000000000000000",
		BaseTotalCents:  15000,
		TotalCents:      15000,
		DepositCents:    3750,
		FirstNightCents: 5000,
		PaidCents:       15000,

		Policy: cancellation.Policy{
			PolicyType:   cancellation.PolicyFlexible,
			WindowHours:  48,
			FeeType:      cancellation.FeeFlat,
			FeeFlatCents: &flat,
		},

		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	require.NoError(t, svc.repo.Insert(context.Background(), res))
	return res
}

func TestTransitionHappyPath(t *testing.T) {
	svc := newTestService(t, testArrival.Add(-24*time.Hour))
	ctx := context.Background()
	res := insertReservation(t, svc, reservationdomain.StatusPending, testArrival.AddDate(0, 0, -30))

	got, err := svc.Confirm(ctx, res.CampgroundID, res.ID)
	require.NoError(t, err)
	require.Equal(t, reservationdomain.StatusConfirmed, got.Status)

	got, err = svc.CheckIn(ctx, res.CampgroundID, res.ID)
	require.NoError(t, err)
	require.Equal(t, reservationdomain.StatusCheckedIn, got.Status)

	got, err = svc.CheckOut(ctx, res.CampgroundID, res.ID)
	require.NoError(t, err)
	require.Equal(t, reservationdomain.StatusCheckedOut, got.Status)
}

func TestTransitionRejectsSkippedStates(t *testing.T) {
	svc := newTestService(t, testArrival.Add(-24*time.Hour))
	ctx := context.Background()
	res := insertReservation(t, svc, reservationdomain.StatusPending, testArrival.AddDate(0, 0, -30))

	_, err := svc.CheckIn(ctx, res.CampgroundID, res.ID)
	require.ErrorIs(t, err, reservationdomain.ErrInvalidTransition)

	_, err = svc.CheckOut(ctx, res.CampgroundID, res.ID)
	require.ErrorIs(t, err, reservationdomain.ErrInvalidTransition)
}

func TestRecordPayment(t *testing.T) {
	svc := newTestService(t, testArrival.Add(-24*time.Hour))
	ctx := context.Background()
	res := insertReservation(t, svc, reservationdomain.StatusPending, testArrival.AddDate(0, 0, -30))

	got, err := svc.RecordPayment(ctx, res.CampgroundID, res.ID, 1000)
	require.NoError(t, err)
	require.Equal(t, int64(16000), got.PaidCents)

	_, err = svc.RecordPayment(ctx, res.CampgroundID, res.ID, 0)
	require.ErrorIs(t, err, reservationdomain.ErrInvalidReservation)
}

func TestCancelOutsideWindowRefundsInFull(t *testing.T) {
	svc := newTestService(t, testArrival.Add(-72*time.Hour))
	ctx := context.Background()
	res := insertReservation(t, svc, reservationdomain.StatusConfirmed, testArrival.AddDate(0, 0, -30))

	result, err := svc.Cancel(ctx, res.CampgroundID, res.ID)
	require.NoError(t, err)
	require.True(t, result.Evaluation.WithinFreeWindow)
	require.Equal(t, int64(0), result.Evaluation.FeeCents)
	require.Equal(t, int64(15000), result.Reservation.RefundedCents)
	require.Equal(t, reservationdomain.StatusCancelled, result.Reservation.Status)
	require.NotNil(t, result.Reservation.CancelledAt)
}

func TestCancelInsideWindowChargesFee(t *testing.T) {
	svc := newTestService(t, testArrival.Add(-24*time.Hour))
	ctx := context.Background()
	res := insertReservation(t, svc, reservationdomain.StatusConfirmed, testArrival.AddDate(0, 0, -30))

	result, err := svc.Cancel(ctx, res.CampgroundID, res.ID)
	require.NoError(t, err)
	require.False(t, result.Evaluation.WithinFreeWindow)
	require.Equal(t, int64(2500), result.Reservation.CancellationFeeCents)
	require.Equal(t, int64(12500), result.Reservation.RefundedCents)
}

func TestPreviewCancellationDoesNotMutate(t *testing.T) {
	svc := newTestService(t, testArrival.Add(-24*time.Hour))
	ctx := context.Background()
	res := insertReservation(t, svc, reservationdomain.StatusConfirmed, testArrival.AddDate(0, 0, -30))

	preview, err := svc.PreviewCancellation(ctx, res.CampgroundID, res.ID)
	require.NoError(t, err)
	require.Equal(t, int64(2500), preview.Evaluation.FeeCents)

	reloaded, err := svc.Get(ctx, res.CampgroundID, res.ID)
	require.NoError(t, err)
	require.Equal(t, reservationdomain.StatusConfirmed, reloaded.Status)
	require.Equal(t, int64(0), reloaded.CancellationFeeCents)
}

func TestCancelRejectedAfterCheckIn(t *testing.T) {
	svc := newTestService(t, testArrival.Add(-24*time.Hour))
	ctx := context.Background()
	res := insertReservation(t, svc, reservationdomain.StatusCheckedIn, testArrival.AddDate(0, 0, -30))

	_, err := svc.Cancel(ctx, res.CampgroundID, res.ID)
	require.ErrorIs(t, err, reservationdomain.ErrInvalidCancellationState)

	_, err = svc.PreviewCancellation(ctx, res.CampgroundID, res.ID)
	require.ErrorIs(t, err, reservationdomain.ErrInvalidCancellationState)
}

func TestExpirePendingBefore(t *testing.T) {
	now := testArrival.Add(-72 * time.Hour)
	svc := newTestService(t, now)
	ctx := context.Background()

	stale := insertReservation(t, svc, reservationdomain.StatusPending, now.Add(-time.Hour))
	fresh := insertReservation(t, svc, reservationdomain.StatusPending, now.Add(-time.Minute))
	confirmed := insertReservation(t, svc, reservationdomain.StatusConfirmed, now.Add(-time.Hour))

	expired, err := svc.ExpirePendingBefore(ctx, now.Add(-30*time.Minute))
	require.NoError(t, err)
	require.Equal(t, 1, expired)

	got, err := svc.Get(ctx, stale.CampgroundID, stale.ID)
	require.NoError(t, err)
	require.Equal(t, reservationdomain.StatusCancelled, got.Status)
	require.Equal(t, int64(15000), got.RefundedCents)

	got, err = svc.Get(ctx, fresh.CampgroundID, fresh.ID)
	require.NoError(t, err)
	require.Equal(t, reservationdomain.StatusPending, got.Status)

	got, err = svc.Get(ctx, confirmed.CampgroundID, confirmed.ID)
	require.NoError(t, err)
	require.Equal(t, reservationdomain.StatusConfirmed, got.Status)
}

func TestGetUnknownReservation(t *testing.T) {
	svc := newTestService(t, testArrival)

	_, err := svc.Get(context.Background(), 1, snowflake.ID(999))
	require.ErrorIs(t, err, reservationdomain.ErrReservationNotFound)
}

type stubQuoteSvc struct {
	quotedomain.Service
	quote *quotedomain.Quote
}

func (s stubQuoteSvc) Compute(context.Context, quotedomain.Request) (*quotedomain.Quote, error) {
	return s.quote, nil
}

type stubCampgroundSvc struct {
	campgrounddomain.Service
	cg *campgrounddomain.Campground
}

func (s stubCampgroundSvc) Get(context.Context, snowflake.ID) (*campgrounddomain.Campground, error) {
	return s.cg, nil
}

func TestCreateRejectsMaintenanceBlockedSite(t *testing.T) {
	svc := newTestService(t, testArrival.AddDate(0, 0, -30))
	require.NoError(t, svc.db.AutoMigrate(&availabilitydomain.MaintenanceBlock{}))

	svc.quoteSvc = stubQuoteSvc{quote: &quotedomain.Quote{
		Reference:      "01HZX0000000000000000000001",
		CampgroundID:   1,
		SiteID:         2,
		Arrival:        testArrival,
		Departure:      testArrival.AddDate(0, 0, 3),
		Nights:         3,
		BaseTotalCents: 15000,
		TotalCents:     15000,
	}}
	svc.campgroundSvc = stubCampgroundSvc{cg: &campgrounddomain.Campground{ID: 1, Name: "Pine Hollow"}}

	block := &availabilitydomain.MaintenanceBlock{
		ID:        99,
		SiteID:    2,
		StartDate: testArrival.AddDate(0, 0, 1),
		EndDate:   testArrival.AddDate(0, 0, 1),
		Reason:    "water line repair",
	}
	require.NoError(t, svc.db.Create(block).Error)

	_, err := svc.Create(context.Background(), reservationdomain.CreateRequest{
		CampgroundID: 1,
		SiteID:       2,
		GuestName:    "Ada",
		Arrival:      testArrival,
		Departure:    testArrival.AddDate(0, 0, 3),
	})
	require.ErrorIs(t, err, reservationdomain.ErrSiteUnavailable)
}
