package apiclient

import (
	"bytes"
	"fmt"
	"time"
)

// The backend serialises LocalDateTime without a zone.
const localDateTimeLayout = "2006-01-02T15:04:05.999999999"

var timestampLayouts = []string{
	time.RFC3339Nano,
	localDateTimeLayout,
	"2006-01-02T15:04:05",
}

// Timestamp decodes the backend's createdAt/updatedAt values.
type Timestamp struct {
	time.Time
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		t.Time = time.Time{}
		return nil
	}
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("timestamp: expected string, got %s", data)
	}
	raw := string(data[1 : len(data)-1])
	if raw == "" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("timestamp: unrecognised format %q", raw)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + t.Format(localDateTimeLayout) + `"`), nil
}

// Display renders the timestamp for pages.
func (t Timestamp) Display() string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02 15:04")
}
