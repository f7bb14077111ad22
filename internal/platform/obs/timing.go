package obs

import (
	"context"
	"log"
	"time"
)

type ctxKey string

const DeskIDKey ctxKey = "desk_id"

// Time logs the duration and outcome of one circulation operation.
// Usage: defer obs.Time(ctx, "checkout")(&err)
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()

	deskID, _ := ctx.Value(DeskIDKey).(string)

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			log.Printf("desk=%s op=%s dur=%dms err=%v", deskID, name, dur.Milliseconds(), *errp)
			return
		}
		log.Printf("desk=%s op=%s dur=%dms", deskID, name, dur.Milliseconds())
	}
}
