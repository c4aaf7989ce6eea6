package mailer

import (
	"strings"
	"testing"
)

func sampleTour() TourEmail {
	return TourEmail{
		PropertyName:    "Maple Court Apartments",
		PropertyAddress: "456 Maple Ct, Springfield, IL 62704",
		TourDate:        "2025-12-01",
		TourTime:        "14:30",
		AttendeeName:    "Jordan Lee",
		AttendeeEmail:   "jordan@example.com",
		NumberOfPeople:  2,
	}
}

func testCompany() Company {
	return Company{
		Name:    "KCO Properties",
		Address: "123 Main Street, Springfield, IL 62704",
		Phone:   "(217) 555-0100",
		Email:   "info@kcoproperties.com",
		Domain:  "kcoproperties.com",
	}
}

func TestConfirmationSubject(t *testing.T) {
	got := ConfirmationSubject(sampleTour())
	want := "Tour Confirmation - Maple Court Apartments on Dec 1, 2025"
	if got != want {
		t.Fatalf("subject = %q, want %q", got, want)
	}
}

func TestConfirmationSubjectWithUnit(t *testing.T) {
	tour := sampleTour()
	tour.UnitNumber = "3B"
	got := ConfirmationSubject(tour)
	want := "Tour Confirmation - Maple Court Apartments Unit 3B on Dec 1, 2025"
	if got != want {
		t.Fatalf("subject = %q, want %q", got, want)
	}
}

func TestReminderSubject(t *testing.T) {
	got := ReminderSubject(sampleTour())
	want := "Reminder: Property Tour Tomorrow at Maple Court Apartments"
	if got != want {
		t.Fatalf("subject = %q, want %q", got, want)
	}
}

func TestConfirmationHTMLContents(t *testing.T) {
	tour := sampleTour()
	html := ConfirmationHTML(tour, testCompany())

	for _, want := range []string{
		"Hi Jordan Lee,",
		"Maple Court Apartments",
		"456 Maple Ct, Springfield, IL 62704",
		"Monday, December 1, 2025",
		"2:30 PM",
		"2 people",
		"Calendar invite attached",
		"scheduling a tour with KCO Properties",
		"mailto:info@kcoproperties.com",
		"123 Main Street, Springfield, IL 62704",
		"(217) 555-0100",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("confirmation html missing %q", want)
		}
	}
	if strings.Contains(html, "Unit:") {
		t.Error("confirmation html shows unit row without a unit number")
	}
}

func TestConfirmationHTMLSingularAttendee(t *testing.T) {
	tour := sampleTour()
	tour.NumberOfPeople = 1
	html := ConfirmationHTML(tour, testCompany())
	if !strings.Contains(html, "1 person") {
		t.Error("expected singular attendee wording")
	}
}

func TestReminderHTMLContents(t *testing.T) {
	tour := sampleTour()
	tour.UnitNumber = "3B"
	html := ReminderHTML(tour, testCompany())

	for _, want := range []string{
		"Hi Jordan Lee,",
		"<strong>Unit:</strong> 3B",
		"tour is scheduled for tomorrow",
		"Monday, December 1, 2025",
		"2:30 PM",
		"Valid photo ID",
		"call us at (217) 555-0100",
		"mailto:info@kcoproperties.com",
		"KCO Properties Team",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("reminder html missing %q", want)
		}
	}
}
