package notifier

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// reservationDuration длительность события в календаре гостя
const reservationDuration = 90 * time.Minute

// icsTimestampLayout формат таймстемпов iCalendar (UTC)
const icsTimestampLayout = "20060102T150405Z"

// buildICS генерирует iCalendar-приглашение для брони:
// событие на 1.5 часа с напоминанием за час
func buildICS(res *domain.Reservation, settings *domain.VenueSettings, now time.Time) string {
	start := slotStart(res)
	end := start.Add(reservationDuration)

	restaurantName := defaultIfEmpty(settings.RestaurantName, "Restaurante")

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//SMC//ReservationService//EN",
		"BEGIN:VEVENT",
		fmt.Sprintf("UID:%s@reservations", res.ID),
		fmt.Sprintf("DTSTAMP:%s", now.UTC().Format(icsTimestampLayout)),
		fmt.Sprintf("DTSTART:%s", start.UTC().Format(icsTimestampLayout)),
		fmt.Sprintf("DTEND:%s", end.UTC().Format(icsTimestampLayout)),
		fmt.Sprintf("SUMMARY:Reserva en %s", restaurantName),
		fmt.Sprintf("DESCRIPTION:Reserva para %d personas. Código: %s", res.Guests, res.ID),
		fmt.Sprintf("LOCATION:%s", settings.Address),
		"BEGIN:VALARM",
		"TRIGGER:-PT60M",
		"ACTION:DISPLAY",
		"DESCRIPTION:Recordatorio de reserva en 1 hora",
		"END:VALARM",
		"END:VEVENT",
		"END:VCALENDAR",
	}

	return strings.Join(lines, "\r\n")
}

// slotStart собирает момент начала брони из даты и времени слота
func slotStart(res *domain.Reservation) time.Time {
	parsed, err := time.Parse(domain.TimeFormat, res.TimeSlot.String())
	if err != nil {
		return res.Date
	}
	return time.Date(
		res.Date.Year(), res.Date.Month(), res.Date.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, res.Date.Location(),
	)
}
