package domain

// Default configuration values
const (
	DefaultSlotCapacity        = 10
	DefaultSlotIntervalMinutes = 30
)

// Business validation constants
const (
	MinGuests          = 1
	MaxGuests          = 20
	MaxNameLength      = 100
	MaxNotesLength     = 500
	MaxAllergiesLength = 500
	MinSlotInterval    = 5
	MaxSlotInterval    = 240
	MaxSlotsPerWindow  = 200 // предохранитель от кривой конфигурации окна
	WeekdaysPerWeek    = 7
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// BlockingStatuses список статусов, занимающих вместимость слота
// Используется при подсчёте занятости при выдаче доступности и создании брони
var BlockingStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
}
