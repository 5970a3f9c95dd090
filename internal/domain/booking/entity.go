package booking

import "time"

// Booking representa uma reserva de um usuário em um estabelecimento
type Booking struct {
	ID            string    `json:"id" firestore:"-"`
	HospitalityID string    `json:"hospitalityID" firestore:"hospitalityID"`
	StartDate     time.Time `json:"startDate" firestore:"startDate"`
	EndDate       time.Time `json:"endDate" firestore:"endDate"`
	UserID        string    `json:"user" firestore:"user"`
	TicketCount   int       `json:"ticketCount" firestore:"ticketCount"`
	CreatedOn     time.Time `json:"createdOn" firestore:"createdOn"`
}

// BelongsTo verifica se a reserva pertence ao usuário informado
func (b *Booking) BelongsTo(userID string) bool {
	return b.UserID == userID
}
