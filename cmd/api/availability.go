package main

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"courtside/internal/analytics"
	"courtside/internal/store"

	"github.com/go-chi/chi/v5"
)

// courtAvailabilityHandler godoc
//
//	@Summary		Availability grid
//	@Description	Builds the per-court availability grid for the court's venue on one date (?date=YYYY-MM-DD, defaults to today in the venue timezone). A slot counts as booked when its booked flag is set or it has any booking attached.
//	@Tags			courts
//	@Produce		json
//	@Param			courtID	path		int		true	"Court ID"
//	@Param			date	query		string	false	"Date (YYYY-MM-DD)"
//	@Success		200		{object}	analytics.Grid
//	@Failure		400		{object}	ErrorBadRequestResponse	"Bad request"
//	@Failure		404		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/courts/{courtID}/availability [get]
func (app *application) courtAvailabilityHandler(w http.ResponseWriter, r *http.Request) {
	courtID, err := strconv.ParseInt(chi.URLParam(r, "courtID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	ctx := r.Context()

	court, err := app.store.Courts.GetByID(ctx, courtID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	seller := getSellerFromContext(r)
	owns, err := app.store.Venues.IsOwner(ctx, court.VenueID, seller.ID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	if !owns {
		app.forbiddenResponse(w, r)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		dateStr = time.Now().In(app.venueTZ).Format("2006-01-02")
	}
	date, err := time.ParseInLocation("2006-01-02", dateStr, app.venueTZ)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	venue, err := app.store.Venues.GetByID(ctx, court.VenueID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	slots, err := app.store.Slots.ListByVenueAndDate(ctx, court.VenueID, date)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	grid := analytics.AvailabilityGrid(toEngineVenue(venue, slots), dateStr)

	if err := app.jsonResponse(w, http.StatusOK, grid); err != nil {
		app.internalServerError(w, r, err)
	}
}

// toEngineVenue regroups flat slot rows under their courts the way the
// availability engine expects.
func toEngineVenue(venue *store.Venue, slots []store.SlotRow) analytics.Venue {
	byCourt := make(map[int64]*analytics.Court)
	order := make([]int64, 0)

	for _, s := range slots {
		court, ok := byCourt[s.CourtID]
		if !ok {
			court = &analytics.Court{
				ID:   strconv.FormatInt(s.CourtID, 10),
				Name: s.CourtName,
			}
			byCourt[s.CourtID] = court
			order = append(order, s.CourtID)
		}
		court.Slots = append(court.Slots, analytics.Slot{
			ID:           strconv.FormatInt(s.ID, 10),
			Date:         s.Date,
			StartTime:    s.StartAt,
			EndTime:      s.EndAt,
			Price:        s.Price,
			Booked:       s.Booked,
			BookingCount: s.BookingCount,
		})
	}

	ev := analytics.Venue{
		ID:     strconv.FormatInt(venue.ID, 10),
		Title:  venue.Title,
		Sports: venue.Sports,
		Courts: make([]analytics.Court, 0, len(order)),
	}
	for _, id := range order {
		ev.Courts = append(ev.Courts, *byCourt[id])
	}
	return ev
}
