package dto

import (
	"time"

	"github.com/hugohenrick/turismo-backend/internal/domain/booking"
)

// BookingRequest representa os dados para criação de uma reserva
type BookingRequest struct {
	HospitalityID string    `json:"hospitalityID" binding:"required,min=1"`
	StartDate     time.Time `json:"startDate" binding:"required"`
	EndDate       time.Time `json:"endDate" binding:"required"`
	TicketCount   int       `json:"ticketCount" binding:"omitempty,gte=1,lte=100"`
}

// BookingResponse representa uma reserva na resposta
type BookingResponse struct {
	ID            string    `json:"id"`
	HospitalityID string    `json:"hospitalityID"`
	StartDate     time.Time `json:"startDate"`
	EndDate       time.Time `json:"endDate"`
	User          string    `json:"user"`
	TicketCount   int       `json:"ticketCount"`
	CreatedOn     time.Time `json:"createdOn"`
}

// ToBookingResponse converte uma reserva do domínio para o DTO de resposta
func ToBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:            b.ID,
		HospitalityID: b.HospitalityID,
		StartDate:     b.StartDate,
		EndDate:       b.EndDate,
		User:          b.UserID,
		TicketCount:   b.TicketCount,
		CreatedOn:     b.CreatedOn,
	}
}

// ToBookingResponseList converte uma lista de reservas do domínio
func ToBookingResponseList(bookings []booking.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, ToBookingResponse(&bookings[i]))
	}
	return out
}
