// Package ics builds minimal iCalendar (RFC 5545) documents.
// Only the subset needed for exporting appointment bookings is supported:
// a single VCALENDAR with all-plain-text VEVENT entries.
package ics

import (
	"fmt"
	"strings"
	"time"
)

const (
	prodID     = "-//SMC-AppointmentService//Bookings//EN"
	dtFormat   = "20060102T150405Z"
	dateFormat = "20060102"
)

// Event is a single calendar event.
type Event struct {
	UID         string
	Summary     string
	Description string
	Location    string
	Start       time.Time
	End         time.Time
}

// Build renders a VCALENDAR document with the given events.
// Lines are CRLF-terminated as required by RFC 5545.
func Build(events []Event) (string, error) {
	var b strings.Builder

	writeLine(&b, "BEGIN:VCALENDAR")
	writeLine(&b, "VERSION:2.0")
	writeLine(&b, "PRODID:"+prodID)
	writeLine(&b, "CALSCALE:GREGORIAN")
	writeLine(&b, "METHOD:PUBLISH")

	now := time.Now().UTC()
	for i, e := range events {
		if e.UID == "" {
			return "", fmt.Errorf("ics: event %d has empty UID", i)
		}
		if e.Start.IsZero() || e.End.IsZero() {
			return "", fmt.Errorf("ics: event %s has zero start or end time", e.UID)
		}
		if e.End.Before(e.Start) {
			return "", fmt.Errorf("ics: event %s ends before it starts", e.UID)
		}

		writeLine(&b, "BEGIN:VEVENT")
		writeLine(&b, "UID:"+escape(e.UID))
		writeLine(&b, "DTSTAMP:"+now.Format(dtFormat))
		writeLine(&b, "DTSTART:"+e.Start.UTC().Format(dtFormat))
		writeLine(&b, "DTEND:"+e.End.UTC().Format(dtFormat))
		writeLine(&b, "SUMMARY:"+escape(e.Summary))
		if e.Description != "" {
			writeLine(&b, "DESCRIPTION:"+escape(e.Description))
		}
		if e.Location != "" {
			writeLine(&b, "LOCATION:"+escape(e.Location))
		}
		writeLine(&b, "END:VEVENT")
	}

	writeLine(&b, "END:VCALENDAR")
	return b.String(), nil
}

func writeLine(b *strings.Builder, line string) {
	b.WriteString(line)
	b.WriteString("\r\n")
}

// escape escapes text per RFC 5545 section 3.3.11.
func escape(s string) string {
	r := strings.NewReplacer(
		"\\", "\\\\",
		";", "\\;",
		",", "\\,",
		"\r\n", "\\n",
		"\n", "\\n",
	)
	return r.Replace(s)
}
