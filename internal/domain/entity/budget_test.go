package entity

import (
	"testing"
	"time"
)

func TestMonthKeyString(t *testing.T) {
	cases := []struct {
		name     string
		key      MonthKey
		expected string
	}{
		{"march", MonthKey{Year: 2026, Month: time.March}, "2026_3"},
		{"december", MonthKey{Year: 2025, Month: time.December}, "2025_12"},
		{"january", MonthKey{Year: 2027, Month: time.January}, "2027_1"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.key.String(); got != tc.expected {
				t.Errorf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}
