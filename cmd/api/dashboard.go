package main

import (
	"net/http"
	"strconv"
	"time"

	"courtside/internal/analytics"
	"courtside/internal/store"

	"github.com/go-chi/chi/v5"
)

// DashboardResponse is the aggregated metrics payload for one venue.
type DashboardResponse struct {
	Today             analytics.TodayStats      `json:"today"`
	WeeklyRevenue     analytics.RevenueStats    `json:"weekly_revenue"`
	Monthly           analytics.MonthlyStats    `json:"monthly"`
	PopularTimeSlots  []analytics.TimeSlotCount `json:"popular_time_slots"`
	SportDistribution []analytics.SportShare    `json:"sport_distribution"`
	RecentBookings    []analytics.Booking       `json:"recent_bookings"`
}

// toEngineBooking maps a flattened store row onto the analytics record shape.
func toEngineBooking(row store.BookingRow) analytics.Booking {
	name := ""
	if row.CustomerName != nil {
		name = *row.CustomerName
	}

	return analytics.Booking{
		ID:           strconv.FormatInt(row.ID, 10),
		CreatedAt:    row.CreatedAt,
		PaymentType:  analytics.PaymentType(row.PaymentType),
		CustomerName: name,
		VenueName:    row.VenueName,
		CourtName:    row.CourtName,
		Slot: analytics.Slot{
			ID:        strconv.FormatInt(row.SlotID, 10),
			Date:      row.SlotDate,
			StartTime: row.StartAt,
			EndTime:   row.EndAt,
			Price:     row.Price,
		},
	}
}

// dashboardHandler godoc
//
//	@Summary		Venue dashboard metrics
//	@Description	Aggregates the venue's bookings into today's count, weekly revenue, monthly totals, the popular time-slot histogram, sport distribution across the seller's venues and the three most recent bookings.
//	@Tags			dashboard
//	@Produce		json
//	@Param			venueID	path		int	true	"Venue ID"
//	@Success		200		{object}	DashboardResponse
//	@Failure		500		{object}	ErrorInternalServerResponse	"Internal Server Error"
//	@Security		ApiKeyAuth
//	@Router			/venues/{venueID}/dashboard [get]
func (app *application) dashboardHandler(w http.ResponseWriter, r *http.Request) {
	venueID, err := strconv.ParseInt(chi.URLParam(r, "venueID"), 10, 64)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	seller := getSellerFromContext(r)
	ctx := r.Context()
	now := time.Now().In(app.venueTZ)

	// Zero since: the monthly card also reports all-time totals.
	rows, err := app.store.Bookings.ListFlattened(ctx, venueID, time.Time{})
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	bookings := make([]analytics.Booking, 0, len(rows))
	for _, row := range rows {
		bookings = append(bookings, toEngineBooking(row))
	}

	venues, err := app.store.Venues.ListByOwner(ctx, seller.ID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	engineVenues := make([]analytics.Venue, 0, len(venues))
	for _, v := range venues {
		engineVenues = append(engineVenues, analytics.Venue{
			ID:     strconv.FormatInt(v.ID, 10),
			Title:  v.Title,
			Sports: v.Sports,
		})
	}

	resp := DashboardResponse{
		Today:             analytics.TodayBookings(bookings, now, app.venueTZ),
		WeeklyRevenue:     analytics.WeeklyRevenue(bookings, now, app.venueTZ),
		Monthly:           analytics.MonthlyTotals(bookings, now, app.venueTZ),
		PopularTimeSlots:  analytics.PopularTimeSlots(bookings, now, app.venueTZ),
		SportDistribution: analytics.SportDistribution(engineVenues),
		RecentBookings:    analytics.Recent(bookings, 3),
	}

	if err := app.jsonResponse(w, http.StatusOK, resp); err != nil {
		app.internalServerError(w, r, err)
	}
}
