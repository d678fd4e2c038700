package services

import (
	"testing"
	"time"
)

func TestTodayAtUsesLocation(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		t.Skipf("zoneinfo unavailable: %v", err)
	}
	now := time.Date(2026, time.March, 9, 20, 30, 0, 0, time.UTC)

	if got := TodayAt(now, time.UTC).String(); got != "2026-03-09" {
		t.Fatalf("expected UTC day 2026-03-09, got %s", got)
	}
	if got := TodayAt(now, tokyo).String(); got != "2026-03-10" {
		t.Fatalf("expected Tokyo day 2026-03-10, got %s", got)
	}
}

func TestResolveLocation(t *testing.T) {
	fallback := time.FixedZone("fallback", 3600)

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "empty uses fallback", raw: "", want: "fallback"},
		{name: "unknown uses fallback", raw: "Mars/Olympus", want: "fallback"},
		{name: "valid zone", raw: " UTC ", want: "UTC"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			if got := ResolveLocation(testCase.raw, fallback).String(); got != testCase.want {
				t.Fatalf("ResolveLocation(%q) = %q, want %q", testCase.raw, got, testCase.want)
			}
		})
	}

	if got := ResolveLocation("", nil); got != time.UTC {
		t.Fatalf("expected UTC when fallback is nil, got %v", got)
	}
}

func TestParseOptionalDate(t *testing.T) {
	empty, err := ParseOptionalDate("  ")
	if err != nil || empty != nil {
		t.Fatalf("expected nil date for blank input, got %v, %v", empty, err)
	}

	parsed, err := ParseOptionalDate("2026-02-28")
	if err != nil || parsed == nil || parsed.String() != "2026-02-28" {
		t.Fatalf("expected parsed date, got %v, %v", parsed, err)
	}

	if _, err := ParseOptionalDate("2026-02-30"); err == nil {
		t.Fatalf("expected error for impossible date")
	}
}
