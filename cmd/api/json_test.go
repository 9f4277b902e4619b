package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func newTestApplication() *application {
	return &application{
		logger: zap.NewNop().Sugar(),
	}
}

func TestWriteJSONError(t *testing.T) {
	rr := httptest.NewRecorder()

	if err := writeJSONError(rr, http.StatusNotFound, "not found"); err != nil {
		t.Fatalf("writeJSONError returned error: %v", err)
	}

	if rr.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Status  int    `json:"status"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body.Success {
		t.Error("success = true, want false")
	}
	if body.Message != "not found" {
		t.Errorf("message = %q, want %q", body.Message, "not found")
	}
	if body.Status != http.StatusNotFound {
		t.Errorf("status field = %d, want %d", body.Status, http.StatusNotFound)
	}
}

func TestJSONResponseEnvelope(t *testing.T) {
	app := newTestApplication()
	rr := httptest.NewRecorder()

	if err := app.jsonResponse(rr, http.StatusOK, map[string]int{"count": 3}); err != nil {
		t.Fatalf("jsonResponse returned error: %v", err)
	}

	var body struct {
		Data map[string]int `json:"data"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body.Data["count"] != 3 {
		t.Errorf("data.count = %d, want 3", body.Data["count"])
	}
}

func TestReadJSONRejectsUnknownFields(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"slot_id": 1, "bogus": true}`))

	var payload struct {
		SlotID int64 `json:"slot_id"`
	}
	if err := readJSON(rr, req, &payload); err == nil {
		t.Error("expected error for unknown field, got nil")
	}
}

func TestPhoneValidation(t *testing.T) {
	type probe struct {
		Phone string `validate:"required,phone"`
	}

	tests := []struct {
		phone string
		valid bool
	}{
		{"9841234567", true},
		{"6123456789", true},
		{"1234567890", false}, // bad leading digit
		{"98412345", false},   // too short
		{"98412345678", false},
		{"abcdefghij", false},
		{"", false},
	}

	for _, tt := range tests {
		err := Validate.Struct(probe{Phone: tt.phone})
		if (err == nil) != tt.valid {
			t.Errorf("phone %q: valid = %v, want %v", tt.phone, err == nil, tt.valid)
		}
	}
}
