// Package calendar builds iCalendar (.ics) invites for tour appointments,
// compatible with Google Calendar, Outlook and Apple Calendar.
package calendar

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/kcoproperties/leasing-api/internal/mailer"
)

const icsTimeLayout = "20060102T150405"

// Invite renders a METHOD:REQUEST VCALENDAR for a one-hour tour slot.
// Tour dates and times are plain wall-clock strings; they are emitted
// literally with no zone designator or UTC conversion.
func Invite(tour mailer.TourEmail, co mailer.Company, now time.Time) (string, error) {
	start, err := time.Parse("2006-01-02 15:04", tour.TourDate+" "+tour.TourTime)
	if err != nil {
		return "", fmt.Errorf("invalid tour date/time %q %q: %w", tour.TourDate, tour.TourTime, err)
	}
	end := start.Add(time.Hour)

	uid := fmt.Sprintf("tour-%d-%s@%s", now.UnixMilli(), randomToken(9), co.Domain)

	unitInfo := ""
	if tour.UnitNumber != "" {
		unitInfo = "\nUnit: " + tour.UnitNumber
	}
	description := fmt.Sprintf(
		"Property Tour at %s%s\n\nAddress: %s\n\nNumber of attendees: %d\n\nPlease arrive 5 minutes early. If you need to reschedule, please contact us at %s.",
		tour.PropertyName, unitInfo, tour.PropertyAddress, tour.NumberOfPeople, co.Phone,
	)

	summary := "Property Tour: " + tour.PropertyName
	if tour.UnitNumber != "" {
		summary += " - Unit " + tour.UnitNumber
	}

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//" + co.Name + "//Tour Scheduler//EN",
		"CALSCALE:GREGORIAN",
		"METHOD:REQUEST",
		"BEGIN:VEVENT",
		"UID:" + uid,
		"DTSTAMP:" + now.Format(icsTimeLayout),
		"DTSTART:" + start.Format(icsTimeLayout),
		"DTEND:" + end.Format(icsTimeLayout),
		"SUMMARY:" + summary,
		"DESCRIPTION:" + strings.ReplaceAll(description, "\n", `\n`),
		"LOCATION:" + tour.PropertyName + ", " + tour.PropertyAddress,
		"STATUS:CONFIRMED",
		"SEQUENCE:0",
		"ORGANIZER;CN=" + co.Name + ":mailto:" + co.Email,
		"ATTENDEE;CN=" + tour.AttendeeName + ";RSVP=TRUE:mailto:" + tour.AttendeeEmail,
		"END:VEVENT",
		"END:VCALENDAR",
	}
	return strings.Join(lines, "\r\n"), nil
}

const tokenAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

func randomToken(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = tokenAlphabet[rand.Intn(len(tokenAlphabet))]
	}
	return string(b)
}
