package pkgbuild

import (
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{0, "0 seconds"},
		{time.Second, "1 second"},
		{1500 * time.Millisecond, "1.5 seconds"},
		{15 * time.Second, "15 seconds"},
		{75 * time.Second, "1 min and 15 seconds"},
		{75200 * time.Millisecond, "1 min and 15.2 seconds"},
		{2 * time.Minute, "2 mins and 0 seconds"},
		{time.Hour, "1 hour and 0 seconds"},
		{time.Hour + time.Minute + time.Second, "1 hour, 1 min, and 1 second"},
		{2*time.Hour + 30*time.Minute, "2 hours, 30 mins, and 0 seconds"},
	}
	for _, c := range cases {
		if got := formatDuration(c.d); got != c.want {
			t.Errorf("formatDuration(%v) = %q, want %q", c.d, got, c.want)
		}
	}
}

func TestPluralize(t *testing.T) {
	if got := pluralize("second", 1.0); got != "second" {
		t.Errorf("pluralize(1.0) = %q", got)
	}
	if got := pluralize("second", 1.04); got != "second" {
		t.Errorf("near-one counts read as singular, got %q", got)
	}
	if got := pluralize("second", 0.5); got != "seconds" {
		t.Errorf("pluralize(0.5) = %q", got)
	}
	if got := pluralize("second", 2); got != "seconds" {
		t.Errorf("pluralize(2) = %q", got)
	}
}
