package main

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// listCourtsHandler godoc
//
//	@Summary		List venue courts
//	@Description	Courts of a venue, for the offline-booking court picker.
//	@Tags			courts
//	@Produce		json
//	@Param			venueID	path		int	true	"Venue ID"
//	@Success		200		{array}		store.Court
//	@Failure		500		{object}	ErrorInternalServerResponse	"Internal Server Error"
//	@Security		ApiKeyAuth
//	@Router			/venues/{venueID}/courts [get]
func (app *application) listCourtsHandler(w http.ResponseWriter, r *http.Request) {
	venueID, err := strconv.ParseInt(chi.URLParam(r, "venueID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	courts, err := app.store.Courts.ListByVenue(r.Context(), venueID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, courts); err != nil {
		app.internalServerError(w, r, err)
	}
}
