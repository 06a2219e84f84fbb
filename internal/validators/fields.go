package validators

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// DateValue accepts either a full RFC3339 timestamp or a plain
// YYYY-MM-DD date. An empty string leaves the value unset.
type DateValue struct {
	time.Time
}

func (d *DateValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("invalid date: %q", s)
}

// TimePtr returns the parsed time, or nil when no value was supplied.
func (d *DateValue) TimePtr() *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}
	t := d.Time
	return &t
}

// YearValue accepts a number or a numeric string. Empty or non-numeric
// input leaves the value unset so the field is dropped from the record.
type YearValue struct {
	value *int
}

func (y *YearValue) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(strings.Trim(string(data), `"`))
	if s == "" || s == "null" {
		return nil
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	y.value = &n
	return nil
}

// IntPtr returns the parsed year, or nil when no usable value was supplied.
func (y *YearValue) IntPtr() *int {
	if y == nil {
		return nil
	}
	return y.value
}
