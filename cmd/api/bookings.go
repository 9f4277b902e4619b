package main

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"courtside/internal/analytics"
	"courtside/internal/mailer"
	"courtside/internal/notifications"
	"courtside/internal/params"
	"courtside/internal/store"

	"github.com/go-chi/chi/v5"
)

// BookingListItem is one row of the bookings page, with the amount actually
// collected for the receipt column.
type BookingListItem struct {
	store.BookingRow
	AmountPaid float64 `json:"amount_paid"`
}

// BookingListResponse is the paged bookings page payload.
type BookingListResponse struct {
	Bookings   []BookingListItem `json:"bookings"`
	Pagination params.Pagination `json:"pagination"`
}

// listBookingsHandler godoc
//
//	@Summary		List venue bookings
//	@Description	Paged booking list for a venue, most recent slot first, optionally narrowed by booking source (online, offline, playo, other).
//	@Tags			bookings
//	@Produce		json
//	@Param			venueID	path		int		true	"Venue ID"
//	@Param			source	query		string	false	"Booking source filter"
//	@Param			page	query		int		false	"Page number"
//	@Param			limit	query		int		false	"Page size (max 50)"
//	@Success		200		{object}	BookingListResponse
//	@Failure		500		{object}	ErrorInternalServerResponse	"Internal Server Error"
//	@Security		ApiKeyAuth
//	@Router			/venues/{venueID}/bookings [get]
func (app *application) listBookingsHandler(w http.ResponseWriter, r *http.Request) {
	venueID, err := strconv.ParseInt(chi.URLParam(r, "venueID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	p := params.ParsePagination(r.URL.Query())

	filter := store.BookingFilter{
		Limit:  p.Limit,
		Offset: p.Offset,
	}
	if source := r.URL.Query().Get("source"); source != "" {
		filter.Source = &source
	}

	rows, total, err := app.store.Bookings.List(r.Context(), venueID, filter)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	p.ComputeMeta(total)

	items := make([]BookingListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, BookingListItem{
			BookingRow: row,
			AmountPaid: analytics.PaymentAmount(toEngineBooking(row)),
		})
	}

	resp := BookingListResponse{
		Bookings:   items,
		Pagination: p,
	}

	if err := app.jsonResponse(w, http.StatusOK, resp); err != nil {
		app.internalServerError(w, r, err)
	}
}

type CreateOfflineBookingPayload struct {
	SlotID          int64   `json:"slot_id" validate:"required"`
	CustomerName    string  `json:"customer_name" validate:"required,min=1,max=100"`
	CustomerPhone   string  `json:"customer_phone" validate:"required,phone"`
	Amount          float64 `json:"amount" validate:"required,gt=0"`
	BookingSource   string  `json:"booking_source" validate:"required,oneof=offline playo other"`
	Notes           *string `json:"notes" validate:"omitempty,max=500"`
	PaymentReceived bool    `json:"payment_received"`
}

// OfflineBookingResponse carries the receipt handed back to the seller.
type OfflineBookingResponse struct {
	BookingID     int64  `json:"booking_id"`
	ReceiptNumber string `json:"receipt_number"`
	PublicCode    string `json:"public_code"`
}

// createOfflineBookingHandler godoc
//
//	@Summary		Record an offline booking
//	@Description	Books a free slot on behalf of a walk-in or external-platform customer. Fails with 409 when the slot is already taken. Push notification and receipt email are sent best effort.
//	@Tags			bookings
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		CreateOfflineBookingPayload	true	"Booking details"
//	@Success		201		{object}	OfflineBookingResponse
//	@Failure		400		{object}	ErrorBadRequestResponse		"Bad request"
//	@Failure		409		{object}	error						"Slot already booked"
//	@Failure		500		{object}	ErrorInternalServerResponse	"Internal Server Error"
//	@Security		ApiKeyAuth
//	@Router			/bookings/offline [post]
func (app *application) createOfflineBookingHandler(w http.ResponseWriter, r *http.Request) {
	var payload CreateOfflineBookingPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	seller := getSellerFromContext(r)
	ctx := r.Context()

	slot, err := app.store.Slots.GetByID(ctx, payload.SlotID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	court, err := app.store.Courts.GetByID(ctx, slot.CourtID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	owns, err := app.store.Venues.IsOwner(ctx, court.VenueID, seller.ID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	if !owns {
		app.forbiddenResponse(w, r)
		return
	}

	venue, err := app.store.Venues.GetByID(ctx, court.VenueID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	paymentType := int16(analytics.PaymentPending)
	if payload.PaymentReceived {
		paymentType = int16(analytics.PaymentFull)
	}

	receipt := app.codes.ReceiptNumber(seller.ID)
	publicCode, err := app.codes.PublicCode(seller.ID, payload.SlotID, time.Now().Unix()/60)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	booking := &store.OfflineBooking{
		SlotID:        payload.SlotID,
		SellerID:      seller.ID,
		CustomerName:  payload.CustomerName,
		CustomerPhone: payload.CustomerPhone,
		Amount:        payload.Amount,
		PaymentType:   paymentType,
		Source:        payload.BookingSource,
		Notes:         payload.Notes,
		ReceiptNumber: receipt,
		PublicCode:    publicCode,
	}

	if err := app.store.Bookings.CreateOffline(ctx, booking); err != nil {
		switch {
		case errors.Is(err, store.ErrConflict):
			app.conflictResponse(w, r, err)
		case errors.Is(err, store.ErrNotFound):
			app.notFoundResponse(w, r, err)
		default:
			app.internalServerError(w, r, err)
		}
		return
	}

	app.notifyOfflineBooking(seller, booking, slot, venue.Title)

	resp := OfflineBookingResponse{
		BookingID:     booking.ID,
		ReceiptNumber: receipt,
		PublicCode:    publicCode,
	}

	if err := app.jsonResponse(w, http.StatusCreated, resp); err != nil {
		app.internalServerError(w, r, err)
	}
}

// notifyOfflineBooking fans out the push notification and receipt email.
// Both are best effort: the booking is already committed.
func (app *application) notifyOfflineBooking(seller *store.Seller, booking *store.OfflineBooking, slot *store.SlotRow, venueTitle string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		err := notifications.SendBookingNotification(
			ctx, app.push, app.store, seller.ID,
			notifications.BookingOffline, booking.ReceiptNumber, slot.CourtName,
		)
		if err != nil {
			app.logger.Errorw("error sending booking push notification", "error", err)
		}
	}()

	go func() {
		vars := struct {
			Receipt      string
			CustomerName string
			VenueName    string
			CourtName    string
			Date         string
			StartTime    string
			EndTime      string
			Amount       float64
			FromName     string
		}{
			Receipt:      booking.ReceiptNumber,
			CustomerName: booking.CustomerName,
			VenueName:    venueTitle,
			CourtName:    slot.CourtName,
			Date:         slot.Date,
			StartTime:    slot.StartAt,
			EndTime:      slot.EndAt,
			Amount:       booking.Amount,
			FromName:     mailer.FromName,
		}

		status, err := app.mailer.Send(mailer.BookingReceiptTemplate, seller.Name, seller.Email, vars)
		if err != nil {
			app.logger.Errorw("error sending booking receipt email", "error", err)
			return
		}
		app.logger.Infow("booking receipt email sent", "status code", status)
	}()
}
