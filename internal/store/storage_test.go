package store

import (
	"errors"
	"testing"
)

func TestSlotTakenIsConflict(t *testing.T) {
	if !errors.Is(ErrSlotTaken, ErrConflict) {
		t.Error("ErrSlotTaken should unwrap to ErrConflict so handlers can map one sentinel to 409")
	}
	if errors.Is(ErrSlotTaken, ErrNotFound) {
		t.Error("ErrSlotTaken must not match ErrNotFound")
	}
}
