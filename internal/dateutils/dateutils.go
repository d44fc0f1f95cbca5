// Package dateutils provides date handling for aggregator payloads. The
// canonical ledger stores ISO 8601 dates.
package dateutils

import (
	"fmt"
	"strings"
	"time"
)

// DateLayoutISO is the canonical date layout used throughout the ledger.
const DateLayoutISO = "2006-01-02"

// CommonFormats is the list of layouts observed in aggregator and snapshot
// data, tried in order when parsing.
var CommonFormats = []string{
	DateLayoutISO,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"02.01.2006",
	"02/01/2006",
}

// ParseDate attempts to parse a date string using the common formats.
func ParseDate(dateStr string) (time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	for _, format := range CommonFormats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}

// ToISO normalizes a date string to ISO 8601. Unparsable input is returned
// unchanged so that malformed records never lose information.
func ToISO(dateStr string) string {
	if strings.TrimSpace(dateStr) == "" {
		return ""
	}
	t, err := ParseDate(dateStr)
	if err != nil {
		return dateStr
	}
	return t.Format(DateLayoutISO)
}

// Preferred picks the effective date for a transaction: the value date wins
// over the booking date when both are present, otherwise whichever exists.
func Preferred(bookingDate, valueDate string) string {
	if strings.TrimSpace(valueDate) != "" {
		return valueDate
	}
	return bookingDate
}
