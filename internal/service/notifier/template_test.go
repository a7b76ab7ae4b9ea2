package notifier

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/ptr"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

func testReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:        "a1b2c3d4-e5f6-7890-abcd-ef1234567890",
		Date:      time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC),
		TimeSlot:  types.TimeString("13:30"),
		Shift:     domain.ShiftLunch,
		Guests:    4,
		FirstName: "María",
		LastName:  "García",
		Email:     "maria@example.com",
		Status:    domain.StatusConfirmed,
	}
}

func TestTemplateVars(t *testing.T) {
	res := testReservation()
	res.Allergies = ptr.Ptr("frutos secos")
	settings := &domain.VenueSettings{
		RestaurantName: "Casa Pepe",
		Address:        "Calle Mayor 1",
	}

	vars := templateVars(res, settings)

	assert.Equal(t, "María", vars["%firstName%"])
	assert.Equal(t, "García", vars["%lastName%"])
	assert.Equal(t, "4", vars["%guests%"])
	assert.Equal(t, "14/06/2025", vars["%date%"])
	assert.Equal(t, "14", vars["%dateDay%"])
	assert.Equal(t, "junio", vars["%dateMonth%"])
	assert.Equal(t, "2025", vars["%dateYear%"])
	assert.Equal(t, "13:30", vars["%time%"])
	assert.Equal(t, "Casa Pepe", vars["%restaurantName%"])
	assert.Equal(t, "A1B2C3D4", vars["%id%"])
	assert.Equal(t, "Calle Mayor 1", vars["%address%"])
	assert.Equal(t, "frutos secos", vars["%allergies%"])
	assert.Equal(t, "Ninguna", vars["%notes%"])
}

func TestTemplateVars_Defaults(t *testing.T) {
	res := testReservation()
	settings := &domain.VenueSettings{}

	vars := templateVars(res, settings)

	assert.Equal(t, "Restaurante", vars["%restaurantName%"])
	assert.Equal(t, "Ninguna", vars["%allergies%"])
	assert.Equal(t, "Ninguna", vars["%notes%"])
	assert.Equal(t, "", vars["%phone%"])
}

func TestRenderTemplate(t *testing.T) {
	vars := map[string]string{
		"%firstName%": "Ana",
		"%guests%":    "2",
	}

	out := renderTemplate("Hola %firstName%, mesa para %guests%. %unknown%", vars)

	assert.Equal(t, "Hola Ana, mesa para 2. %unknown%", out)
}

func TestRenderTemplate_CaseSensitive(t *testing.T) {
	vars := map[string]string{"%firstName%": "Ana"}

	out := renderTemplate("%FIRSTNAME% %firstName%", vars)

	assert.Equal(t, "%FIRSTNAME% Ana", out)
}

func TestBuildICS(t *testing.T) {
	res := testReservation()
	settings := &domain.VenueSettings{
		RestaurantName: "Casa Pepe",
		Address:        "Calle Mayor 1",
	}
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	ics := buildICS(res, settings, now)

	require.Contains(t, ics, "BEGIN:VCALENDAR")
	assert.Contains(t, ics, "UID:a1b2c3d4-e5f6-7890-abcd-ef1234567890@reservations")
	assert.Contains(t, ics, "DTSTAMP:20250610T120000Z")
	assert.Contains(t, ics, "DTSTART:20250614T133000Z")
	assert.Contains(t, ics, "DTEND:20250614T150000Z")
	assert.Contains(t, ics, "SUMMARY:Reserva en Casa Pepe")
	assert.Contains(t, ics, "LOCATION:Calle Mayor 1")
	assert.Contains(t, ics, "TRIGGER:-PT60M")
}
