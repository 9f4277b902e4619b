package notifications

import (
	"testing"

	"github.com/9ssi7/exponent"
)

func TestExpoAdapterIsPushSender(t *testing.T) {
	var sender PushSender = NewExpoAdapter(exponent.NewClient())
	if sender == nil {
		t.Fatal("NewExpoAdapter returned nil sender")
	}
}
