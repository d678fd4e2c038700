package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	t.Parallel()

	parsed, err := ParseDate(" 2026-02-28 ")
	if err != nil {
		t.Fatalf("ParseDate returned error: %v", err)
	}
	if parsed.String() != "2026-02-28" {
		t.Fatalf("ParseDate = %s, want 2026-02-28", parsed)
	}

	for _, raw := range []string{"", "2026-02-30", "28.02.2026", "2026-2-28"} {
		if _, err := ParseDate(raw); err == nil {
			t.Fatalf("ParseDate(%q) expected error", raw)
		}
	}
}

func TestDateInUsesLocationCalendar(t *testing.T) {
	t.Parallel()

	instant := time.Date(2026, time.March, 10, 23, 30, 0, 0, time.UTC)
	tokyo := time.FixedZone("UTC+9", 9*60*60)

	if got := DateIn(instant, time.UTC).String(); got != "2026-03-10" {
		t.Fatalf("DateIn UTC = %s, want 2026-03-10", got)
	}
	if got := DateIn(instant, tokyo).String(); got != "2026-03-11" {
		t.Fatalf("DateIn UTC+9 = %s, want 2026-03-11", got)
	}
	if got := DateIn(instant, nil).String(); got != "2026-03-10" {
		t.Fatalf("DateIn nil location = %s, want 2026-03-10", got)
	}
}

func TestDateAddDaysCrossesMonthAndYear(t *testing.T) {
	t.Parallel()

	if got := NewDate(2026, time.March, 1).AddDays(-1).String(); got != "2026-02-28" {
		t.Fatalf("AddDays(-1) = %s, want 2026-02-28", got)
	}
	if got := NewDate(2025, time.December, 31).AddDays(1).String(); got != "2026-01-01" {
		t.Fatalf("AddDays(1) = %s, want 2026-01-01", got)
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	t.Parallel()

	payload := struct {
		Start Date `json:"start"`
		End   Date `json:"end"`
	}{Start: NewDate(2026, time.January, 5)}

	encoded, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(encoded) != `{"start":"2026-01-05","end":null}` {
		t.Fatalf("unexpected json %s", encoded)
	}

	if err := json.Unmarshal([]byte(`{"start":"2026-01-06","end":null}`), &payload); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !payload.Start.Equal(NewDate(2026, time.January, 6)) || !payload.End.IsZero() {
		t.Fatalf("unexpected decoded dates %+v", payload)
	}

	if err := json.Unmarshal([]byte(`{"start":"06/01/2026"}`), &payload); err == nil {
		t.Fatal("expected error for non ISO date")
	}
}

func TestDateScan(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  any
		want string
	}{
		{name: "text", src: "2026-03-04", want: "2026-03-04"},
		{name: "bytes", src: []byte("2026-03-04"), want: "2026-03-04"},
		{name: "timestamp text", src: "2026-03-04 00:00:00+00:00", want: "2026-03-04"},
		{name: "time", src: time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC), want: "2026-03-04"},
		{name: "null", src: nil, want: ""},
	}

	for _, test := range tests {
		var date Date
		if err := date.Scan(test.src); err != nil {
			t.Fatalf("%s: Scan returned error: %v", test.name, err)
		}
		if date.String() != test.want {
			t.Fatalf("%s: Scan = %q, want %q", test.name, date.String(), test.want)
		}
	}

	var date Date
	if err := date.Scan(42); err == nil {
		t.Fatal("expected error for unsupported type")
	}

	value, err := NewDate(2026, time.March, 4).Value()
	if err != nil || value != "2026-03-04" {
		t.Fatalf("Value = %v, %v", value, err)
	}
	if value, _ := (Date{}).Value(); value != nil {
		t.Fatalf("zero Value = %v, want nil", value)
	}
}
