package mailer

import (
	"fmt"
	"time"
)

// Company is the sender identity stamped into outbound email bodies and
// the calendar invite organizer line. Populated from COMPANY_* env config.
type Company struct {
	Name    string
	Address string
	Phone   string
	Email   string
	Domain  string
}

// TourEmail carries everything the tour emails need, denormalized so the
// templates never reach back into the database.
type TourEmail struct {
	PropertyName    string
	PropertyAddress string
	TourDate        string // "2006-01-02"
	TourTime        string // "15:04"
	AttendeeName    string
	AttendeeEmail   string
	NumberOfPeople  int
	UnitNumber      string
}

// When returns the tour's wall-clock moment. Dates and times are stored as
// plain strings and interpreted literally, so the zone here is only a
// placeholder and never rendered.
func (t TourEmail) When() time.Time {
	ts, err := time.Parse("2006-01-02 15:04", t.TourDate+" "+t.TourTime)
	if err != nil {
		return time.Time{}
	}
	return ts
}

func (t TourEmail) unitSuffix() string {
	if t.UnitNumber == "" {
		return ""
	}
	return " Unit " + t.UnitNumber
}

func ConfirmationSubject(t TourEmail) string {
	return fmt.Sprintf("Tour Confirmation - %s%s on %s", t.PropertyName, t.unitSuffix(), t.When().Format("Jan 2, 2006"))
}

func ReminderSubject(t TourEmail) string {
	return fmt.Sprintf("Reminder: Property Tour Tomorrow at %s", t.PropertyName)
}

func ConfirmationHTML(t TourEmail, co Company) string {
	unitInfo := ""
	if t.UnitNumber != "" {
		unitInfo = fmt.Sprintf(`<p style="color: #666666; margin: 5px 0; font-size: 14px;"><strong>Unit:</strong> %s</p>`, t.UnitNumber)
	}
	when := t.When()

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>Tour Confirmation - %s</title>
</head>
<body style="margin: 0; padding: 0; font-family: Arial, sans-serif; background-color: #f5f5f5;">
  <table width="100%%" cellpadding="0" cellspacing="0" style="background-color: #f5f5f5; padding: 20px;">
    <tr><td align="center">
      <table width="600" cellpadding="0" cellspacing="0" style="background-color: #ffffff; border-radius: 8px; overflow: hidden;">
        <tr>
          <td style="background: linear-gradient(135deg, #0B2545 0%%, #13315C 100%%); padding: 40px 30px; text-align: center;">
            <h1 style="color: #ffffff; margin: 0; font-size: 28px;">Tour Confirmed!</h1>
            <p style="color: #70C4ED; margin: 10px 0 0 0; font-size: 16px;">We look forward to showing you around</p>
          </td>
        </tr>
        <tr>
          <td style="padding: 40px 30px;">
            <p style="color: #333333; font-size: 16px; line-height: 1.6;">Hi %s,</p>
            <p style="color: #333333; font-size: 16px; line-height: 1.6;">Thank you for scheduling a tour with %s! Your tour has been confirmed for the following date and time:</p>
            <table width="100%%" cellpadding="0" cellspacing="0" style="background-color: #f8f9fa; border-left: 4px solid #70C4ED; border-radius: 4px; margin-bottom: 30px;">
              <tr><td style="padding: 25px;">
                <h2 style="color: #0B2545; margin: 0 0 15px 0; font-size: 20px;">%s</h2>
                %s
                <p style="color: #666666; margin: 5px 0; font-size: 14px;"><strong>Address:</strong> %s</p>
                <p style="color: #666666; margin: 5px 0; font-size: 14px;"><strong>Date:</strong> %s</p>
                <p style="color: #666666; margin: 5px 0; font-size: 14px;"><strong>Time:</strong> %s</p>
                <p style="color: #666666; margin: 5px 0; font-size: 14px;"><strong>Attendees:</strong> %d %s</p>
              </td></tr>
            </table>
            <table width="100%%" cellpadding="0" cellspacing="0" style="background-color: #E8F4F8; border-radius: 4px; margin-bottom: 30px;">
              <tr><td style="padding: 20px; text-align: center;">
                <p style="color: #0B2545; margin: 0; font-size: 14px;">📅 <strong>Calendar invite attached</strong> - Add this tour to your calendar so you don't forget!</p>
              </td></tr>
            </table>
            <p style="color: #333333; font-size: 16px; line-height: 1.6;">If you need to reschedule or cancel, please contact us as soon as possible at <a href="mailto:%s" style="color: #70C4ED;">%s</a>.</p>
            <p style="color: #333333; font-size: 16px; line-height: 1.6;">See you soon!<br><strong>%s Team</strong></p>
          </td>
        </tr>
        <tr>
          <td style="padding: 30px; background-color: #f8f9fa; border-top: 1px solid #e0e0e0;">
            <p style="margin: 0; color: #666; font-size: 14px; text-align: center;">%s<br>%s<br>%s | %s</p>
          </td>
        </tr>
      </table>
    </td></tr>
  </table>
</body>
</html>`,
		co.Name,
		t.AttendeeName,
		co.Name,
		t.PropertyName,
		unitInfo,
		t.PropertyAddress,
		when.Format("Monday, January 2, 2006"),
		when.Format("3:04 PM"),
		t.NumberOfPeople, people(t.NumberOfPeople),
		co.Email, co.Email,
		co.Name,
		co.Name, co.Address, co.Phone, co.Email,
	)
}

func ReminderHTML(t TourEmail, co Company) string {
	unitInfo := ""
	if t.UnitNumber != "" {
		unitInfo = fmt.Sprintf(`<p style="margin: 0 0 10px 0; color: #555;"><strong>Unit:</strong> %s</p>`, t.UnitNumber)
	}
	when := t.When()

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <title>Tour Reminder</title>
</head>
<body style="margin: 0; padding: 0; font-family: Arial, sans-serif; background-color: #f4f4f4;">
  <table role="presentation" style="width: 100%%; border-collapse: collapse;">
    <tr><td align="center" style="padding: 40px 0;">
      <table role="presentation" style="width: 600px; border-collapse: collapse; background-color: #ffffff;">
        <tr>
          <td style="padding: 40px 40px 30px 40px; background: linear-gradient(135deg, #0B2545 0%%, #13315C 100%%);">
            <h1 style="margin: 0; color: #ffffff; font-size: 28px;">Tour Reminder</h1>
            <p style="margin: 10px 0 0 0; color: #70C4ED; font-size: 16px;">Your property tour is tomorrow!</p>
          </td>
        </tr>
        <tr>
          <td style="padding: 40px;">
            <p style="margin: 0 0 20px 0; color: #333; font-size: 16px; line-height: 1.6;">Hi %s,</p>
            <p style="margin: 0 0 20px 0; color: #333; font-size: 16px; line-height: 1.6;">This is a friendly reminder that your property tour is scheduled for tomorrow. We're looking forward to showing you around!</p>
            <div style="background-color: #f8f9fa; border-left: 4px solid #70C4ED; padding: 20px; margin: 30px 0;">
              <h2 style="margin: 0 0 15px 0; color: #0B2545; font-size: 20px;">Tour Details</h2>
              <p style="margin: 0 0 10px 0; color: #555;"><strong>Property:</strong> %s</p>
              %s
              <p style="margin: 0 0 10px 0; color: #555;"><strong>Address:</strong> %s</p>
              <p style="margin: 0 0 10px 0; color: #555;"><strong>Date:</strong> %s</p>
              <p style="margin: 0 0 10px 0; color: #555;"><strong>Time:</strong> %s</p>
              <p style="margin: 0; color: #555;"><strong>Number of People:</strong> %d</p>
            </div>
            <p style="margin: 20px 0; color: #333; font-size: 16px; line-height: 1.6;"><strong>What to bring:</strong></p>
            <ul style="margin: 0 0 20px 0; padding-left: 20px; color: #555; line-height: 1.8;">
              <li>Valid photo ID</li>
              <li>Any questions you'd like to ask</li>
              <li>Comfortable walking shoes</li>
            </ul>
            <p style="margin: 20px 0; color: #333; font-size: 16px; line-height: 1.6;">If you need to reschedule or cancel, please contact us as soon as possible at <a href="mailto:%s" style="color: #70C4ED; text-decoration: none;">%s</a> or call us at %s.</p>
            <p style="margin: 30px 0 0 0; color: #333; font-size: 16px; line-height: 1.6;">See you tomorrow!<br><strong>%s Team</strong></p>
          </td>
        </tr>
        <tr>
          <td style="padding: 30px 40px; background-color: #f8f9fa; border-top: 1px solid #e0e0e0;">
            <p style="margin: 0; color: #666; font-size: 14px; text-align: center;">%s<br>%s<br>%s | %s</p>
          </td>
        </tr>
      </table>
    </td></tr>
  </table>
</body>
</html>`,
		t.AttendeeName,
		t.PropertyName,
		unitInfo,
		t.PropertyAddress,
		when.Format("Monday, January 2, 2006"),
		when.Format("3:04 PM"),
		t.NumberOfPeople,
		co.Email, co.Email, co.Phone,
		co.Name,
		co.Name, co.Address, co.Phone, co.Email,
	)
}

func people(n int) string {
	if n == 1 {
		return "person"
	}
	return "people"
}
