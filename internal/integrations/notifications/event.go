package notifications

import (
	"fmt"
	"strings"
	"time"
)

// RoutingKeyBookingCreated ключ маршрутизации события создания бронирования
const RoutingKeyBookingCreated = "booking.created"

// BookingCreatedEvent событие о созданном бронировании. Потребитель (сервис
// рассылки) рендерит из него письмо подтверждения с вложением календаря.
type BookingCreatedEvent struct {
	BookingID    int64     `json:"bookingId"`
	Reference    string    `json:"reference"`
	ActivityName string    `json:"activityName"`
	StartAt      time.Time `json:"startAt"`
	EndAt        time.Time `json:"endAt"`
	Size         int       `json:"size"`
	AddOns       []string  `json:"addOns"`
	TotalCents   int64     `json:"totalCents"`
	Recipient    string    `json:"recipient"`
	ICS          string    `json:"ics"`
}

// BuildICS рендерит вложение календаря для события.
// Формат перенесён из письма подтверждения: один VEVENT, UID — номер брони.
func BuildICS(event *BookingCreatedEvent) string {
	const icsTimeLayout = "20060102T150405Z"

	var b strings.Builder
	b.WriteString("BEGIN:VCALENDAR\r\n")
	b.WriteString("VERSION:2.0\r\n")
	b.WriteString("PRODID:-//Hart van Eindhoven//Booking//EN\r\n")
	b.WriteString("BEGIN:VEVENT\r\n")
	fmt.Fprintf(&b, "UID:%s@hartvaneindhoven.nl\r\n", event.Reference)
	fmt.Fprintf(&b, "DTSTAMP:%s\r\n", event.StartAt.UTC().Format(icsTimeLayout))
	fmt.Fprintf(&b, "DTSTART:%s\r\n", event.StartAt.UTC().Format(icsTimeLayout))
	fmt.Fprintf(&b, "DTEND:%s\r\n", event.EndAt.UTC().Format(icsTimeLayout))
	fmt.Fprintf(&b, "SUMMARY:%s - Hart van Eindhoven\r\n", escapeICSText(event.ActivityName))
	fmt.Fprintf(&b, "DESCRIPTION:Reservation %s for %d guests\r\n", event.Reference, event.Size)
	b.WriteString("LOCATION:Hart van Eindhoven\r\n")
	b.WriteString("END:VEVENT\r\n")
	b.WriteString("END:VCALENDAR\r\n")

	return b.String()
}

// escapeICSText экранирует спецсимволы текстовых значений по RFC 5545
func escapeICSText(s string) string {
	replacer := strings.NewReplacer(
		"\\", "\\\\",
		";", "\\;",
		",", "\\,",
		"\n", "\\n",
	)
	return replacer.Replace(s)
}
