package notifier

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
)

// spanishMonths названия месяцев для подстановки %dateMonth%
// Гостевые письма заведение шлёт на испанском
var spanishMonths = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// templateVars собирает значения подстановок для шаблона письма
// Подстановка буквальная и регистрозависимая, неизвестные токены
// остаются в тексте как есть
func templateVars(res *domain.Reservation, settings *domain.VenueSettings) map[string]string {
	shortID := res.ID
	if idx := strings.IndexByte(shortID, '-'); idx > 0 {
		shortID = shortID[:idx]
	}

	return map[string]string{
		"%firstName%":      res.FirstName,
		"%lastName%":       res.LastName,
		"%guests%":         fmt.Sprintf("%d", res.Guests),
		"%date%":           res.Date.Format("02/01/2006"),
		"%dateDay%":        fmt.Sprintf("%d", res.Date.Day()),
		"%dateMonth%":      spanishMonths[res.Date.Month()-1],
		"%dateYear%":       fmt.Sprintf("%d", res.Date.Year()),
		"%time%":           res.TimeSlot.String(),
		"%restaurantName%": defaultIfEmpty(settings.RestaurantName, "Restaurante"),
		"%id%":             strings.ToUpper(shortID),
		"%address%":        settings.Address,
		"%allergies%":      ptr.Deref(res.Allergies, "Ninguna"),
		"%notes%":          ptr.Deref(res.Notes, "Ninguna"),
		"%phone%":          ptr.Deref(res.Phone, ""),
	}
}

// renderTemplate выполняет буквальную замену токенов в тексте шаблона
func renderTemplate(template string, vars map[string]string) string {
	pairs := make([]string, 0, len(vars)*2)
	for token, value := range vars {
		pairs = append(pairs, token, value)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

// adminNotice служебное уведомление администратору: короткая сводка
// по брони вместо гостевого шаблона
func adminNotice(res *domain.Reservation) (subject, body string) {
	subject = fmt.Sprintf("Nueva Reserva: %s (%d pax)", res.FirstName, res.Guests)
	body = fmt.Sprintf("Nueva reserva de %s %s para el %s a las %s.",
		res.FirstName, res.LastName, res.Date.Format("02/01/2006"), res.TimeSlot)
	return subject, body
}

func defaultIfEmpty(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
