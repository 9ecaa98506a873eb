// Package invite renders iCalendar invitations for booked appointments.
package invite

import (
	"fmt"
	"strings"
	"time"
)

const (
	stampFormat = "20060102T150405Z"
	lineLimit   = 75
	productID   = "-//gocar//appointments//EN"
)

type Event struct {
	AppointmentID string
	Summary       string
	Description   string
	Location      string
	Organizer     string
	Start         time.Time
	End           time.Time
	Created       time.Time
	Canceled      bool
}

// FileName is the object name the invite of appointmentID is stored under.
func FileName(appointmentID string) string {
	return appointmentID + ".ics"
}

func escape(value string) string {
	replacer := strings.NewReplacer(`\`, `\\`, ";", `\;`, ",", `\,`, "\r\n", `\n`, "\n", `\n`)

	return replacer.Replace(value)
}

// fold splits content lines longer than 75 octets as RFC 5545 requires.
func fold(line string) string {
	if len(line) <= lineLimit {
		return line
	}

	var b strings.Builder

	width := 0

	for _, r := range line {
		size := len(string(r))
		if width+size > lineLimit {
			b.WriteString("\r\n ")

			width = 1
		}

		b.WriteRune(r)

		width += size
	}

	return b.String()
}

// Build renders ev as a single-event VCALENDAR.
func Build(ev Event) []byte {
	method, status := "REQUEST", "CONFIRMED"
	if ev.Canceled {
		method, status = "CANCEL", "CANCELLED"
	}

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:" + productID,
		"CALSCALE:GREGORIAN",
		"METHOD:" + method,
		"BEGIN:VEVENT",
		fmt.Sprintf("UID:%s@gocar", ev.AppointmentID),
		"DTSTAMP:" + ev.Created.UTC().Format(stampFormat),
		"DTSTART:" + ev.Start.UTC().Format(stampFormat),
		"DTEND:" + ev.End.UTC().Format(stampFormat),
		"SUMMARY:" + escape(ev.Summary),
		"STATUS:" + status,
	}

	if ev.Description != "" {
		lines = append(lines, "DESCRIPTION:"+escape(ev.Description))
	}

	if ev.Location != "" {
		lines = append(lines, "LOCATION:"+escape(ev.Location))
	}

	if ev.Organizer != "" {
		lines = append(lines, "ORGANIZER:mailto:"+ev.Organizer)
	}

	lines = append(lines, "END:VEVENT", "END:VCALENDAR")

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(fold(line))
		b.WriteString("\r\n")
	}

	return []byte(b.String())
}
