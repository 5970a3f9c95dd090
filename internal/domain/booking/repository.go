package booking

import "context"

// Repository define a interface para operações de persistência de reservas
type Repository interface {
	// Create persiste uma nova reserva
	Create(ctx context.Context, b *Booking) error

	// FindByID busca uma reserva pelo ID
	FindByID(ctx context.Context, id string) (*Booking, error)

	// FindByUser retorna as reservas de um usuário, da mais recente
	// para a mais antiga
	FindByUser(ctx context.Context, userID string) ([]Booking, error)

	// Delete remove uma reserva
	Delete(ctx context.Context, id string) error
}
