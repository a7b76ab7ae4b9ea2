package reservation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

func TestBlockingStatuses_OnlyActiveStatusesOccupyCapacity(t *testing.T) {
	statuses := blockingStatuses()

	assert.Equal(t, []string{
		string(domain.StatusPending),
		string(domain.StatusConfirmed),
	}, statuses)
	assert.NotContains(t, statuses, string(domain.StatusCanceled))
}
