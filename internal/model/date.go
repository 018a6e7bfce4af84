package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// dateLayouts are the accepted input formats for date fields. Clients send
// either a bare date from a date picker or a full RFC 3339 timestamp.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006-01-02 15:04:05",
}

// Date is a date field that accepts both "2006-01-02" and RFC 3339 JSON input
// and serializes as RFC 3339. It stores as DATETIME in SQLite.
type Date struct {
	time.Time
}

// NewDate creates a Date from a time.Time.
func NewDate(t time.Time) Date {
	return Date{Time: t}
}

// ParseDate parses a date string using the accepted layouts.
func ParseDate(s string) (Date, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Date{Time: t}, nil
		}
	}
	return Date{}, fmt.Errorf("invalid date %q", s)
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return json.Marshal("")
	}
	return json.Marshal(d.Format(time.RFC3339))
}

// Value implements driver.Valuer so dates bind as DATETIME parameters.
func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}

// Scan implements sql.Scanner. The driver hands back time.Time for DATETIME
// columns, but strings are handled too for robustness.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = Date{Time: v}
		return nil
	case string:
		parsed, err := ParseDate(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("scanning date: %w", err)
		}
		*d = parsed
		return nil
	case []byte:
		return d.Scan(string(v))
	default:
		return fmt.Errorf("scanning date: unsupported type %T", src)
	}
}

// DateList is a list of dates stored as a JSON array in a TEXT column.
type DateList []Date

// Value implements driver.Valuer, encoding the list as JSON text.
func (l DateList) Value() (driver.Value, error) {
	if l == nil {
		l = DateList{}
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("encoding date list: %w", err)
	}
	return string(data), nil
}

// Scan implements sql.Scanner, decoding a JSON array of dates.
func (l *DateList) Scan(src any) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		*l = DateList{}
		return nil
	case string:
		data = []byte(v)
	case []byte:
		data = v
	default:
		return fmt.Errorf("scanning date list: unsupported type %T", src)
	}
	if len(data) == 0 {
		*l = DateList{}
		return nil
	}
	if err := json.Unmarshal(data, l); err != nil {
		return fmt.Errorf("decoding date list: %w", err)
	}
	return nil
}
