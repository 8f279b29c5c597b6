package date

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2025-08-28", want: New(2025, time.August, 28)},
		{in: "2025-8-2", want: New(2025, time.August, 2)}, // permissive format
		{in: "2025-13-01", wantErr: true},
		{in: "today", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := Parse(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("Parse(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDate_Add_NormalizesAcrossMonths(t *testing.T) {
	d := New(2025, time.January, 31)
	if got, want := d.Add(1), New(2025, time.February, 1); got != want {
		t.Errorf("Add(1) = %v, want %v", got, want)
	}
	if got, want := d.Add(-31), New(2024, time.December, 31); got != want {
		t.Errorf("Add(-31) = %v, want %v", got, want)
	}
}

func TestDate_Sub(t *testing.T) {
	a := New(2025, time.March, 1)
	b := New(2025, time.February, 26)
	if got := a.Sub(b); got != 3 {
		t.Errorf("Sub() = %d, want 3", got)
	}
	if got := b.Sub(a); got != -3 {
		t.Errorf("Sub() = %d, want -3", got)
	}
}

func TestDate_JSONRoundTrip(t *testing.T) {
	d := New(2025, time.July, 4)

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal() returned an unexpected error: %v", err)
	}
	if got, want := string(data), `"2025-07-04"`; got != want {
		t.Errorf("Marshal() = %s, want %s", got, want)
	}

	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() returned an unexpected error: %v", err)
	}
	if back != d {
		t.Errorf("round trip = %v, want %v", back, d)
	}
}

func TestDate_IsZero(t *testing.T) {
	var zero Date
	if !zero.IsZero() {
		t.Error("zero Date should report IsZero")
	}
	if Today().IsZero() {
		t.Error("Today() should not report IsZero")
	}
}
