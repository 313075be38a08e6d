package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"

	"github.com/campreserv/keepr/internal/cancellation"
	feedomain "github.com/campreserv/keepr/internal/fee/domain"
)

type CreateRequest struct {
	CampgroundID snowflake.ID
	SiteID       snowflake.ID
	GuestName    string
	GuestEmail   string
	Arrival      time.Time
	Departure    time.Time
	Occupants    feedomain.Occupants
	UpsellIDs    []snowflake.ID
}

type CancelResult struct {
	Reservation *Reservation            `json:"reservation"`
	Evaluation  cancellation.Evaluation `json:"evaluation"`
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Reservation, error)
	Get(ctx context.Context, campgroundID, id snowflake.ID) (*Reservation, error)
	List(ctx context.Context, campgroundID snowflake.ID) ([]Reservation, error)

	Confirm(ctx context.Context, campgroundID, id snowflake.ID) (*Reservation, error)
	CheckIn(ctx context.Context, campgroundID, id snowflake.ID) (*Reservation, error)
	CheckOut(ctx context.Context, campgroundID, id snowflake.ID) (*Reservation, error)

	// RecordPayment adds a captured amount (deposit or balance) to the
	// reservation. The gateway integration lives outside this core.
	RecordPayment(ctx context.Context, campgroundID, id snowflake.ID, amountCents int64) (*Reservation, error)

	// PreviewCancellation evaluates the snapshotted policy without
	// mutating anything. Safe for guest-facing refund previews.
	PreviewCancellation(ctx context.Context, campgroundID, id snowflake.ID) (*CancelResult, error)

	Cancel(ctx context.Context, campgroundID, id snowflake.ID) (*CancelResult, error)

	// ExpirePendingBefore cancels pending holds created before the
	// cutoff. Scheduler entry point.
	ExpirePendingBefore(ctx context.Context, cutoff time.Time) (int, error)
}
