package dateutil

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		format  string
		want    string
		wantErr bool
	}{
		{"iso date", "YYYY-MM-DD", "2006-01-02", false},
		{"timestamp", "YYYY-MM-DD HH:mm:ss", "2006-01-02 15:04:05", false},
		{"european", "DD/MM/YYYY", "02/01/2006", false},
		{"long month", "MMMM D, YYYY", "January 2, 2006", false},
		{"short month", "MMM D YY", "Jan 2 06", false},
		{"single digit tokens", "M/D", "1/2", false},
		{"bracket escape", "[generated] YYYY", "generated 2006", false},
		{"bracket with tokens inside", "[DD] DD", "DD 02", false},
		{"literal passthrough", "YYYY ~ HH", "2006 ~ 15", false},
		{"empty", "", "", true},
		{"unclosed bracket", "[generated YYYY", "", true},
		{"too long", strings.Repeat("Y", MaxDateFormatLength+1), "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.format)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidDateFormat) {
					t.Errorf("error = %v, want ErrInvalidDateFormat", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.format, got, tt.want)
			}
		})
	}
}

func TestStamp(t *testing.T) {
	t.Parallel()

	ref := time.Date(2026, time.August, 26, 9, 5, 7, 0, time.UTC)

	tests := []struct {
		name   string
		format string
		want   string
	}{
		{"default on empty", "", "2026-08-26 09:05:07"},
		{"iso preset", "iso", "2026-08-26"},
		{"timestamp preset", "timestamp", "2026-08-26 09:05:07"},
		{"european preset", "european", "26/08/2026"},
		{"us preset", "US", "08/26/2026"},
		{"long preset", "long", "August 26, 2026"},
		{"explicit format", "DD.MM.YY", "26.08.26"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Stamp(tt.format, ref)
			if err != nil {
				t.Fatalf("Stamp: %v", err)
			}
			if got != tt.want {
				t.Errorf("Stamp(%q) = %q, want %q", tt.format, got, tt.want)
			}
		})
	}

	t.Run("invalid format surfaces", func(t *testing.T) {
		if _, err := Stamp("[oops", ref); !errors.Is(err, ErrInvalidDateFormat) {
			t.Errorf("error = %v, want ErrInvalidDateFormat", err)
		}
	})
}
