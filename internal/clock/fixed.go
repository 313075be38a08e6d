package clock

import (
	"context"
	"time"
)

// Fixed returns the same instant on every call. Test helper.
type Fixed struct{ T time.Time }

func (f Fixed) Now(ctx context.Context) time.Time { return f.T }
