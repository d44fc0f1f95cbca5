package dateutils

import "testing"

func TestToISO(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"2025-04-15", "2025-04-15"},
		{"15.04.2025", "2025-04-15"},
		{"2025-04-15T10:30:00Z", "2025-04-15"},
		{"2025-04-15 10:30:00", "2025-04-15"},
		{"", ""},
		{"not-a-date", "not-a-date"}, // returned unchanged
	}

	for _, tt := range tests {
		if got := ToISO(tt.input); got != tt.expected {
			t.Errorf("ToISO(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestParseDateFailure(t *testing.T) {
	if _, err := ParseDate("31-31-31"); err == nil {
		t.Error("expected an error for an unparsable date")
	}
}

func TestPreferred(t *testing.T) {
	if got := Preferred("2025-04-10", "2025-04-12"); got != "2025-04-12" {
		t.Errorf("value date should win, got %q", got)
	}
	if got := Preferred("2025-04-10", ""); got != "2025-04-10" {
		t.Errorf("booking date should be kept when value date is absent, got %q", got)
	}
	if got := Preferred("", "2025-04-12"); got != "2025-04-12" {
		t.Errorf("value date should be kept when booking date is absent, got %q", got)
	}
}
