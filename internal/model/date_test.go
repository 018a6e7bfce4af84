package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateUnmarshalFormats(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{`"2030-01-01"`, false},
		{`"2030-01-01T12:30:00Z"`, false},
		{`"2030-01-01 12:30:00"`, false},
		{`""`, false}, // empty means unset
		{`"not-a-date"`, true},
		{`"01/02/2030"`, true},
		{`12345`, true},
	}

	for _, tt := range tests {
		var d Date
		err := json.Unmarshal([]byte(tt.input), &d)
		if (err != nil) != tt.wantErr {
			t.Errorf("Unmarshal(%s) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}
}

func TestDateRoundTrip(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"2030-06-15"`), &d); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	out, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(out) != `"2030-06-15T00:00:00Z"` {
		t.Errorf("expected RFC 3339 output, got %s", out)
	}
}

func TestDateScanVariants(t *testing.T) {
	now := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	var d Date
	if err := d.Scan(now); err != nil {
		t.Fatalf("Scan(time.Time): %v", err)
	}
	if !d.Equal(now) {
		t.Errorf("expected %v, got %v", now, d.Time)
	}

	if err := d.Scan("2030-01-01"); err != nil {
		t.Fatalf("Scan(string): %v", err)
	}

	if err := d.Scan(42); err == nil {
		t.Error("expected error scanning int")
	}
}

func TestDateListRoundTrip(t *testing.T) {
	list := DateList{
		NewDate(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)),
		NewDate(time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)),
	}

	value, err := list.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}

	var got DateList
	if err := got.Scan(value); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 dates, got %d", len(got))
	}
	if !got[0].Equal(list[0].Time) || !got[1].Equal(list[1].Time) {
		t.Errorf("round-trip mismatch: %v != %v", got, list)
	}
}

func TestDateListScanEmpty(t *testing.T) {
	var got DateList
	if err := got.Scan(nil); err != nil {
		t.Fatalf("Scan(nil): %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty list, got %v", got)
	}

	if err := got.Scan("[]"); err != nil {
		t.Fatalf("Scan(\"[]\"): %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty list, got %v", got)
	}
}
