// Package codes produces the human-facing identifiers printed on booking
// receipts: a receipt number the seller reads out over the phone and a short
// public code customers can use to look a booking up without exposing raw
// database ids.
package codes

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base32"
	"fmt"
	"strings"

	"github.com/google/uuid"
	hashids "github.com/speps/go-hashids/v2"
)

type Generator struct {
	secret string
	hid    *hashids.HashID
}

func NewGenerator(secret string) (*Generator, error) {
	hd := hashids.NewData()
	hd.Salt = secret
	hd.MinLength = 8
	hd.Alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789" // no 0/O, 1/I

	hid, err := hashids.NewWithData(hd)
	if err != nil {
		return nil, err
	}
	return &Generator{secret: secret, hid: hid}, nil
}

// ReceiptNumber builds a receipt number like CRT-7K2M-A41B. The HMAC tag ties
// it to the seller without being guessable; the uuid nonce keeps repeated
// bookings by the same seller distinct.
func (g *Generator) ReceiptNumber(sellerID int64) string {
	nonce := uuid.NewString()

	mac := hmac.New(sha256.New, []byte(g.secret))
	fmt.Fprintf(mac, "seller:%d|nonce:%s", sellerID, nonce)

	sum := mac.Sum(nil)
	tag := base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(sum)

	return fmt.Sprintf(
		"CRT-%s-%s",
		strings.ToUpper(tag[:4]),
		strings.ToUpper(strings.ReplaceAll(nonce, "-", "")[:4]),
	)
}

// PublicCode encodes the seller, slot and booking minute into a short opaque
// lookup code.
func (g *Generator) PublicCode(sellerID, slotID, minute int64) (string, error) {
	return g.hid.EncodeInt64([]int64{sellerID, slotID, minute})
}

// DecodePublicCode reverses PublicCode. Unknown or foreign codes error.
func (g *Generator) DecodePublicCode(code string) (sellerID, slotID, minute int64, err error) {
	parts, err := g.hid.DecodeInt64WithError(code)
	if err != nil {
		return 0, 0, 0, err
	}
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("unexpected code shape")
	}
	return parts[0], parts[1], parts[2], nil
}
