package analytics

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
)

var priceJunk = regexp.MustCompile(`[^0-9.]`)

// NormalizePrice reduces whatever shape the upstream feed put in a price
// field to a plain number. Accepted: any numeric kind, a numeric string with
// optional currency glyph and thousands separators ("₹1,500"), a json.Number,
// or a {value: n} object decoded as a map. Anything else, and anything that
// fails to parse to a finite number, is 0. It never panics.
func NormalizePrice(price any) float64 {
	switch v := price.(type) {
	case nil:
		return 0
	case float64:
		return finiteOrZero(v)
	case float32:
		return finiteOrZero(float64(v))
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case uint:
		return float64(v)
	case uint32:
		return float64(v)
	case uint64:
		return float64(v)
	case json.Number:
		return parsePriceString(v.String())
	case string:
		return parsePriceString(v)
	case map[string]any:
		if inner, ok := v["value"]; ok {
			return NormalizePrice(inner)
		}
		return 0
	default:
		return 0
	}
}

func parsePriceString(s string) float64 {
	s = priceJunk.ReplaceAllString(s, "")
	if s == "" {
		return 0
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return finiteOrZero(n)
}

func finiteOrZero(n float64) float64 {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	return n
}

// PaymentAmount is the amount actually collected at booking time: half the
// slot price for a 50% advance booking, the full price otherwise. Revenue
// metrics deliberately do not use this; they report full slot prices.
func PaymentAmount(b Booking) float64 {
	price := NormalizePrice(b.Slot.Price)
	if b.PaymentType == PaymentPartial {
		return price * 0.5
	}
	return price
}
