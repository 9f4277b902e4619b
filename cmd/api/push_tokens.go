package main

import (
	"encoding/json"
	"net/http"
)

type RegisterPushTokenPayload struct {
	Token      string          `json:"token" validate:"required"`
	DeviceInfo json.RawMessage `json:"device_info"`
}

// registerPushTokenHandler godoc
//
//	@Summary		Register a push token
//	@Description	Registers or refreshes an Expo push token for the authenticated seller's device.
//	@Tags			push-tokens
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		RegisterPushTokenPayload	true	"Token and device info"
//	@Success		201		{object}	map[string]string
//	@Failure		400		{object}	ErrorBadRequestResponse	"Bad request"
//	@Security		ApiKeyAuth
//	@Router			/push-tokens [post]
func (app *application) registerPushTokenHandler(w http.ResponseWriter, r *http.Request) {
	var payload RegisterPushTokenPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	seller := getSellerFromContext(r)

	if err := app.store.PushTokens.AddOrUpdate(r.Context(), seller.ID, payload.Token, payload.DeviceInfo); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusCreated, map[string]string{"message": "push token registered"}); err != nil {
		app.internalServerError(w, r, err)
	}
}

type RemovePushTokenPayload struct {
	Token string `json:"token" validate:"required"`
}

// removePushTokenHandler godoc
//
//	@Summary		Remove a push token
//	@Tags			push-tokens
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		RemovePushTokenPayload	true	"Token to remove"
//	@Success		200		{object}	map[string]string
//	@Failure		400		{object}	ErrorBadRequestResponse	"Bad request"
//	@Security		ApiKeyAuth
//	@Router			/push-tokens [delete]
func (app *application) removePushTokenHandler(w http.ResponseWriter, r *http.Request) {
	var payload RemovePushTokenPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	seller := getSellerFromContext(r)

	if err := app.store.PushTokens.Remove(r.Context(), seller.ID, payload.Token); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, map[string]string{"message": "push token removed"}); err != nil {
		app.internalServerError(w, r, err)
	}
}
