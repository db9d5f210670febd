package datetime

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name     string
		dateStr  string
		expected string
		wantErr  bool
	}{
		{
			name:     "Valid date",
			dateStr:  "2024-01-01",
			expected: "2024-01-01",
		},
		{
			name:     "Surrounding whitespace",
			dateStr:  "  2024-02-29 ",
			expected: "2024-02-29",
		},
		{
			name:    "Month only",
			dateStr: "2024-01",
			wantErr: true,
		},
		{
			name:    "Invalid day",
			dateStr: "2023-02-29",
			wantErr: true,
		},
		{
			name:    "Empty",
			dateStr: "",
			wantErr: true,
		},
		{
			name:    "Slash separated",
			dateStr: "2024/01/01",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseDate(tt.dateStr)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseDate(%q) expected error, got %v", tt.dateStr, result)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) unexpected error: %v", tt.dateStr, err)
			}
			if FormatDate(result) != tt.expected {
				t.Errorf("ParseDate() = %s, expected %s", FormatDate(result), tt.expected)
			}
			if result.Location() != time.UTC {
				t.Errorf("ParseDate() location = %v, expected UTC", result.Location())
			}
		})
	}
}

func TestMustParseDatePanic(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Expected MustParseDate to panic with invalid date")
		}
	}()

	MustParseDate("invalid-date")
}

func TestFormatDisplayDate(t *testing.T) {
	got := FormatDisplayDate(MustParseDate("2024-01-03"))
	if got != "Jan 03, 2024" {
		t.Errorf("FormatDisplayDate() = %q, expected %q", got, "Jan 03, 2024")
	}
}

func TestTruncate(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*60*60)
	in := time.Date(2024, 3, 5, 23, 30, 0, 0, loc)
	got := Truncate(in)
	if !got.Equal(MustParseDate("2024-03-05")) {
		t.Errorf("Truncate() = %v, expected 2024-03-05 UTC", got)
	}
}
