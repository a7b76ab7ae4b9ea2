package models

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Request модели

// TimeWindowPayload окно обслуживания в запросах и ответах.
// В переопределениях на дату отсутствующее окно (null) наследует
// недельный шаблон, а пустое ("" / "") закрывает смену на эту дату
type TimeWindowPayload struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// DaySchedulePayload один день недельного шаблона
type DaySchedulePayload struct {
	Weekday int                `json:"weekday"` // 0=воскресенье ... 6=суббота
	IsOpen  bool               `json:"isOpen"`
	Lunch   *TimeWindowPayload `json:"lunch,omitempty"`
	Dinner  *TimeWindowPayload `json:"dinner,omitempty"`
}

// UpdateWeeklyScheduleRequest запрос на полную замену недельного шаблона
type UpdateWeeklyScheduleRequest struct {
	Days []DaySchedulePayload `json:"days"`
}

// ToDomain конвертирует запрос в доменный недельный шаблон
func (r *UpdateWeeklyScheduleRequest) ToDomain() domain.WeeklySchedule {
	schedule := make(domain.WeeklySchedule, 0, len(r.Days))
	for _, day := range r.Days {
		entry := domain.WeeklyScheduleEntry{
			Weekday: day.Weekday,
			IsOpen:  day.IsOpen,
		}
		if day.Lunch != nil {
			entry.Lunch = day.Lunch.toDomainWindow()
		}
		if day.Dinner != nil {
			entry.Dinner = day.Dinner.toDomainWindow()
		}
		schedule = append(schedule, entry)
	}
	return schedule
}

// UpsertSpecialDayRequest запрос на создание/обновление переопределения на дату
type UpsertSpecialDayRequest struct {
	Date     string             `json:"date"` // "2025-12-24"
	IsClosed bool               `json:"isClosed"`
	Lunch    *TimeWindowPayload `json:"lunch,omitempty"`
	Dinner   *TimeWindowPayload `json:"dinner,omitempty"`
}

// ToDomain конвертирует запрос в доменное переопределение
func (r *UpsertSpecialDayRequest) ToDomain() (*domain.SpecialDayOverride, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: expected format %s", r.Date, domain.DateFormat)
	}

	override := &domain.SpecialDayOverride{
		Date:     date,
		IsClosed: r.IsClosed,
	}
	if r.Lunch != nil {
		w := r.Lunch.toDomainWindow()
		override.Lunch = &w
	}
	if r.Dinner != nil {
		w := r.Dinner.toDomainWindow()
		override.Dinner = &w
	}
	return override, nil
}

func (p *TimeWindowPayload) toDomainWindow() domain.TimeWindow {
	return domain.TimeWindow{
		Start: types.TimeString(p.Start),
		End:   types.TimeString(p.End),
	}
}

// Response модели

// WeeklyScheduleResponse недельный шаблон целиком
type WeeklyScheduleResponse struct {
	Days []DaySchedulePayload `json:"days"`
}

// SpecialDayResponse одно переопределение на дату
type SpecialDayResponse struct {
	ID        int64              `json:"id"`
	Date      string             `json:"date"`
	IsClosed  bool               `json:"isClosed"`
	Lunch     *TimeWindowPayload `json:"lunch,omitempty"`
	Dinner    *TimeWindowPayload `json:"dinner,omitempty"`
	CreatedAt string             `json:"createdAt"`
	UpdatedAt string             `json:"updatedAt"`
}

// SpecialDayListResponse список переопределений
type SpecialDayListResponse struct {
	SpecialDays []SpecialDayResponse `json:"specialDays"`
}

// FromDomainWeeklySchedule конвертирует доменный шаблон в ответ
func FromDomainWeeklySchedule(schedule domain.WeeklySchedule) *WeeklyScheduleResponse {
	days := make([]DaySchedulePayload, 0, len(schedule))
	for _, entry := range schedule {
		day := DaySchedulePayload{
			Weekday: entry.Weekday,
			IsOpen:  entry.IsOpen,
		}
		if !entry.Lunch.IsZero() {
			day.Lunch = fromDomainWindow(entry.Lunch)
		}
		if !entry.Dinner.IsZero() {
			day.Dinner = fromDomainWindow(entry.Dinner)
		}
		days = append(days, day)
	}
	return &WeeklyScheduleResponse{Days: days}
}

// FromDomainSpecialDay конвертирует доменное переопределение в ответ
func FromDomainSpecialDay(override *domain.SpecialDayOverride) *SpecialDayResponse {
	resp := &SpecialDayResponse{
		ID:        override.ID,
		Date:      override.Date.Format(domain.DateFormat),
		IsClosed:  override.IsClosed,
		CreatedAt: override.CreatedAt.Format(time.RFC3339),
		UpdatedAt: override.UpdatedAt.Format(time.RFC3339),
	}
	if override.Lunch != nil {
		resp.Lunch = fromDomainWindow(*override.Lunch)
	}
	if override.Dinner != nil {
		resp.Dinner = fromDomainWindow(*override.Dinner)
	}
	return resp
}

// FromDomainSpecialDayList конвертирует список переопределений в ответ
func FromDomainSpecialDayList(overrides []*domain.SpecialDayOverride) *SpecialDayListResponse {
	list := make([]SpecialDayResponse, 0, len(overrides))
	for _, override := range overrides {
		list = append(list, *FromDomainSpecialDay(override))
	}
	return &SpecialDayListResponse{SpecialDays: list}
}

func fromDomainWindow(w domain.TimeWindow) *TimeWindowPayload {
	return &TimeWindowPayload{
		Start: w.Start.String(),
		End:   w.End.String(),
	}
}
