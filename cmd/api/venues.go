package main

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"courtside/internal/catalog"
	"courtside/internal/store"

	"github.com/go-chi/chi/v5"
)

// listVenuesHandler godoc
//
//	@Summary		List the seller's venues
//	@Description	Returns every venue owned by the authenticated seller, for the venue selector and sport distribution.
//	@Tags			venues
//	@Produce		json
//	@Success		200	{array}		store.Venue
//	@Failure		500	{object}	ErrorInternalServerResponse	"Internal Server Error"
//	@Security		ApiKeyAuth
//	@Router			/venues [get]
func (app *application) listVenuesHandler(w http.ResponseWriter, r *http.Request) {
	seller := getSellerFromContext(r)

	venues, err := app.store.Venues.ListByOwner(r.Context(), seller.ID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, venues); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getVenueHandler godoc
//
//	@Summary		Get one venue
//	@Tags			venues
//	@Produce		json
//	@Param			venueID	path		int	true	"Venue ID"
//	@Success		200		{object}	store.Venue
//	@Failure		404		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/venues/{venueID} [get]
func (app *application) getVenueHandler(w http.ResponseWriter, r *http.Request) {
	venueID, err := strconv.ParseInt(chi.URLParam(r, "venueID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	venue, err := app.store.Venues.GetByID(r.Context(), venueID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, venue); err != nil {
		app.internalServerError(w, r, err)
	}
}

type UpdateVenuePayload struct {
	Title       *string  `json:"title" validate:"omitempty,min=1,max=120"`
	Description *string  `json:"description" validate:"omitempty,max=2000"`
	Location    *string  `json:"location" validate:"omitempty,max=255"`
	OpenAt      *string  `json:"open_at" validate:"omitempty,len=5"`
	CloseAt     *string  `json:"close_at" validate:"omitempty,len=5"`
	Sports      []string `json:"sports" validate:"omitempty,min=1,dive,min=1"`
	Amenities   []string `json:"amenities" validate:"omitempty,dive,min=1"`
}

// updateVenueHandler godoc
//
//	@Summary		Update venue information
//	@Description	Partially updates venue metadata. Sports and amenities must come from the catalog option lists.
//	@Tags			venues
//	@Accept			json
//	@Produce		json
//	@Param			venueID	path		int					true	"Venue ID"
//	@Param			payload	body		UpdateVenuePayload	true	"Fields to update"
//	@Success		200		{object}	map[string]string
//	@Failure		400		{object}	ErrorBadRequestResponse	"Bad request"
//	@Failure		404		{object}	error
//	@Security		ApiKeyAuth
//	@Router			/venues/{venueID} [patch]
func (app *application) updateVenueHandler(w http.ResponseWriter, r *http.Request) {
	venueID, err := strconv.ParseInt(chi.URLParam(r, "venueID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var payload UpdateVenuePayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	for _, s := range payload.Sports {
		if !catalog.ValidSport(s) {
			app.badRequestResponse(w, r, fmt.Errorf("unknown sport %q", s))
			return
		}
	}
	for _, a := range payload.Amenities {
		if !catalog.ValidAmenity(a) {
			app.badRequestResponse(w, r, fmt.Errorf("unknown amenity %q", a))
			return
		}
	}

	updates := map[string]interface{}{}
	if payload.Title != nil {
		updates["title"] = *payload.Title
	}
	if payload.Description != nil {
		updates["description"] = *payload.Description
	}
	if payload.Location != nil {
		updates["location"] = *payload.Location
	}
	if payload.OpenAt != nil {
		updates["open_at"] = *payload.OpenAt
	}
	if payload.CloseAt != nil {
		updates["close_at"] = *payload.CloseAt
	}
	if payload.Sports != nil {
		updates["sports"] = payload.Sports
	}
	if payload.Amenities != nil {
		updates["amenities"] = payload.Amenities
	}

	if len(updates) == 0 {
		app.badRequestResponse(w, r, errors.New("no fields to update"))
		return
	}

	if err := app.store.Venues.Update(r.Context(), venueID, updates); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, map[string]string{"message": "venue updated"}); err != nil {
		app.internalServerError(w, r, err)
	}
}

// uploadVenuePhotoHandler godoc
//
//	@Summary		Upload venue photos
//	@Description	Accepts multipart form files under "photos" and stores them on Cloudinary.
//	@Tags			venues
//	@Accept			mpfd
//	@Produce		json
//	@Param			venueID	path		int	true	"Venue ID"
//	@Success		201		{object}	map[string][]string
//	@Failure		400		{object}	ErrorBadRequestResponse	"Bad request"
//	@Security		ApiKeyAuth
//	@Router			/venues/{venueID}/photos [post]
func (app *application) uploadVenuePhotoHandler(w http.ResponseWriter, r *http.Request) {
	venueID, err := strconv.ParseInt(chi.URLParam(r, "venueID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil { // 10mb
		app.badRequestResponse(w, r, err)
		return
	}

	files := r.MultipartForm.File["photos"]
	if len(files) == 0 {
		app.badRequestResponse(w, r, errors.New("no photos provided"))
		return
	}

	urls, err := app.uploadImagesWithVenueID(files, venueID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	ctx := r.Context()
	for _, u := range urls {
		if err := app.store.Venues.AddPhotoURL(ctx, venueID, u); err != nil {
			app.internalServerError(w, r, err)
			return
		}
	}

	if err := app.jsonResponse(w, http.StatusCreated, map[string][]string{"photo_urls": urls}); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deleteVenuePhotoHandler godoc
//
//	@Summary		Delete a venue photo
//	@Description	Removes the photo URL from the venue and destroys the Cloudinary asset.
//	@Tags			venues
//	@Produce		json
//	@Param			venueID		path		int		true	"Venue ID"
//	@Param			photo_url	query		string	true	"Photo URL to delete"
//	@Success		200			{object}	map[string]string
//	@Failure		400			{object}	ErrorBadRequestResponse	"Bad request"
//	@Security		ApiKeyAuth
//	@Router			/venues/{venueID}/photos [delete]
func (app *application) deleteVenuePhotoHandler(w http.ResponseWriter, r *http.Request) {
	venueID, err := strconv.ParseInt(chi.URLParam(r, "venueID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	photoURL := r.URL.Query().Get("photo_url")
	if photoURL == "" {
		app.badRequestResponse(w, r, errors.New("photo_url query parameter is required"))
		return
	}

	if err := app.store.Venues.RemovePhotoURL(r.Context(), venueID, photoURL); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.deletePhotoFromCloudinary(photoURL); err != nil {
		// the DB row is already clean; log and keep going
		app.logger.Errorw("error deleting photo from cloudinary", "error", err, "url", photoURL)
	}

	if err := app.jsonResponse(w, http.StatusOK, map[string]string{"message": "photo deleted"}); err != nil {
		app.internalServerError(w, r, err)
	}
}
