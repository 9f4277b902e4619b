package codes

import (
	"strings"
	"testing"
)

func TestReceiptNumberFormat(t *testing.T) {
	g, err := NewGenerator("test-secret")
	if err != nil {
		t.Fatal(err)
	}

	n := g.ReceiptNumber(42)
	parts := strings.Split(n, "-")
	if len(parts) != 3 || parts[0] != "CRT" {
		t.Fatalf("receipt number %q not in CRT-XXXX-XXXX form", n)
	}
	if len(parts[1]) != 4 || len(parts[2]) != 4 {
		t.Fatalf("receipt number segments wrong length: %q", n)
	}

	// Nonce must make repeated calls distinct.
	if g.ReceiptNumber(42) == n {
		t.Fatal("two receipt numbers for the same seller collided")
	}
}

func TestPublicCodeRoundTrip(t *testing.T) {
	g, err := NewGenerator("test-secret")
	if err != nil {
		t.Fatal(err)
	}

	code, err := g.PublicCode(7, 1234, 987654)
	if err != nil {
		t.Fatal(err)
	}
	if len(code) < 8 {
		t.Fatalf("code %q shorter than minimum length", code)
	}

	sellerID, slotID, minute, err := g.DecodePublicCode(code)
	if err != nil {
		t.Fatal(err)
	}
	if sellerID != 7 || slotID != 1234 || minute != 987654 {
		t.Fatalf("round trip gave (%d, %d, %d)", sellerID, slotID, minute)
	}
}

func TestDecodeForeignCode(t *testing.T) {
	g, _ := NewGenerator("secret-a")
	other, _ := NewGenerator("secret-b")

	code, err := g.PublicCode(1, 2, 3)
	if err != nil {
		t.Fatal(err)
	}
	if _, _, _, err := other.DecodePublicCode(code); err == nil {
		t.Fatal("code minted with another salt decoded cleanly")
	}
}
