package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid reservation status")

	// ErrInvalidDate возвращается при некорректной дате
	ErrInvalidDate = errors.New("invalid date")
)

// Request модели

// ListReservationsRequest запрос на выборку бронирований админом
type ListReservationsRequest struct {
	Date   *string `json:"date,omitempty"`   // "2025-06-14" (опционально)
	Status *string `json:"status,omitempty"` // Фильтр по статусу (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListReservationsRequest) ToDomainFilter() (domain.ReservationsFilter, error) {
	var filter domain.ReservationsFilter

	if r.Date != nil {
		date, err := time.Parse(domain.DateFormat, *r.Date)
		if err != nil {
			return filter, ErrInvalidDate
		}
		filter.Date = &date
	}

	if r.Status != nil {
		status := domain.ReservationStatus(*r.Status)
		if !status.IsValid() {
			return filter, ErrInvalidStatus
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID        string  `json:"id"`
	Date      string  `json:"date"`     // "2025-06-14"
	TimeSlot  string  `json:"timeSlot"` // "13:30"
	Shift     string  `json:"shift"`
	Guests    int     `json:"guests"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone,omitempty"`
	Allergies *string `json:"allergies,omitempty"`
	Notes     *string `json:"notes,omitempty"`
	Status    string  `json:"status"`
	EmailSent bool    `json:"emailSent"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

// ReservationListResponse список бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	Total        int                   `json:"total"`
}

// FromDomainReservation конвертирует доменное бронирование в ответ
func FromDomainReservation(res *domain.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:        res.ID,
		Date:      res.Date.Format(domain.DateFormat),
		TimeSlot:  res.TimeSlot.String(),
		Shift:     string(res.Shift),
		Guests:    res.Guests,
		FirstName: res.FirstName,
		LastName:  res.LastName,
		Email:     res.Email,
		Phone:     res.Phone,
		Allergies: res.Allergies,
		Notes:     res.Notes,
		Status:    string(res.Status),
		EmailSent: res.EmailSent,
		CreatedAt: res.CreatedAt.Format(time.RFC3339),
		UpdatedAt: res.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainReservationList конвертирует список бронирований в ответ
func FromDomainReservationList(list []*domain.Reservation) *ReservationListResponse {
	reservations := make([]ReservationResponse, 0, len(list))
	for _, res := range list {
		reservations = append(reservations, *FromDomainReservation(res))
	}
	return &ReservationListResponse{
		Reservations: reservations,
		Total:        len(reservations),
	}
}
