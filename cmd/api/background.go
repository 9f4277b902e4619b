package main

import (
	"context"
	"time"
)

// releaseExpiredHoldsEvery15Mins frees slots held by unpaid offline bookings
// that were never settled at the counter.
func (app *application) releaseExpiredHoldsEvery15Mins() {
	const holdDuration = 2 * time.Hour

	release := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		released, err := app.store.Bookings.ReleaseExpiredHolds(ctx, holdDuration)
		if err != nil {
			app.logger.Errorf("Error releasing expired holds: %v", err)
			return
		}
		if released > 0 {
			app.logger.Infof("Released %d expired slot holds at %s", released, time.Now().Format(time.RFC1123))
		}
	}

	go func() {
		ticker := time.NewTicker(15 * time.Minute)
		defer ticker.Stop()

		// Run once immediately
		release()

		for range ticker.C {
			release()
		}
	}()
}
