package timezone_test

import (
	"testing"
	"time"

	"frontdesk/shared/timezone"
)

func TestTimezoneInit(t *testing.T) {
	now := timezone.Now()
	if now.IsZero() {
		t.Error("Now() returned zero time")
	}
}

func TestTimezoneWithStandardLocation(t *testing.T) {
	utcTime := time.Now().UTC()
	appTime := timezone.ToAppTime(utcTime)

	if appTime.Location() == nil {
		t.Error("Expected converted time to have a location")
	}
}

func TestTimezoneParseAndFormat(t *testing.T) {
	parsed, err := timezone.Parse("2006-01-02", "2024-01-01")
	if err != nil {
		t.Errorf("Parse() failed: %v", err)
	}

	if parsed == (time.Time{}) {
		t.Error("Parse() returned a zero time")
	}

	formatted := timezone.Format(parsed, "2006-01-02")
	if formatted != "2024-01-01" {
		t.Errorf("Format() returned %s, expected 2024-01-01", formatted)
	}
}
