package ratelimit

import (
	"testing"
	"time"
)

func TestAllowRejectsRapidDoubleSubmission(t *testing.T) {
	limiter := NewInMemoryLimiter(1, time.Hour, 1)

	if !limiter.Allow("post") {
		t.Fatal("expected first submission allowed")
	}
	if limiter.Allow("post") {
		t.Fatal("expected immediate second submission rejected")
	}
}

func TestAllowIsPerFlow(t *testing.T) {
	limiter := NewInMemoryLimiter(1, time.Hour, 1)

	if !limiter.Allow("post") {
		t.Fatal("expected post flow allowed")
	}
	// Exhausting one flow must not block the others.
	if !limiter.Allow("short") {
		t.Fatal("expected short flow unaffected")
	}
	if !limiter.Allow("story") {
		t.Fatal("expected story flow unaffected")
	}
}

func TestAllowRecoversAfterWindow(t *testing.T) {
	limiter := NewInMemoryLimiter(1, 20*time.Millisecond, 1)

	if !limiter.Allow("post") {
		t.Fatal("expected first submission allowed")
	}
	if limiter.Allow("post") {
		t.Fatal("expected second submission rejected inside the window")
	}

	time.Sleep(25 * time.Millisecond)
	if !limiter.Allow("post") {
		t.Fatal("expected submission allowed after the window")
	}
}
