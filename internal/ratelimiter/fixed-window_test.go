package ratelimiter

import (
	"testing"
	"time"
)

func TestFixedWindowAllow(t *testing.T) {
	rl := NewFixedWindowLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		if ok, _ := rl.Allow("10.0.0.1"); !ok {
			t.Fatalf("request %d under the limit was denied", i+1)
		}
	}

	ok, retry := rl.Allow("10.0.0.1")
	if ok {
		t.Fatal("request over the limit was allowed")
	}
	if retry != time.Minute {
		t.Fatalf("retry hint = %v, want the window length", retry)
	}

	// Another client has its own counter.
	if ok, _ := rl.Allow("10.0.0.2"); !ok {
		t.Fatal("separate client was throttled by the first client's count")
	}
}
