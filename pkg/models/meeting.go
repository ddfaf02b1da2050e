package models

import "fmt"

// DocType classifies a document link found on a meeting page.
type DocType string

const (
	TypeAgenda  DocType = "agenda"
	TypeMinutes DocType = "minutes"
	TypePacket  DocType = "packet"
	TypeOther   DocType = "other"
)

// FileLink is a downloadable document discovered on a meeting page.
type FileLink struct {
	URL  string  // absolute URL
	Type DocType // inferred from the URL structure
}

// Meeting represents one meeting from a yearly listing page.
type Meeting struct {
	ID   int    // numeric ID from the listing page link
	Date string // MMDDYYYY, or "" when the page had no parseable date
}

// Label returns the filename component for the meeting: the MMDDYYYY date
// when one was parsed, otherwise a deterministic "id<ID>" fallback so files
// from the same meeting still share a unique, stable prefix.
func (m Meeting) Label() string {
	if m.Date != "" {
		return m.Date
	}
	return fmt.Sprintf("id%d", m.ID)
}
