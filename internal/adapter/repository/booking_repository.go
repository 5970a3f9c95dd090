package repository

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/hugohenrick/turismo-backend/internal/domain/booking"
)

// Erros específicos do repositório de reservas
var (
	ErrBookingNotFound = errors.New("reserva não encontrada")
)

// Coleção do Firestore para reservas
const bookingsCollection = "bookings"

// FirestoreBookingRepository implementa booking.Repository usando o Firestore
type FirestoreBookingRepository struct {
	client *firestore.Client
}

// NewFirestoreBookingRepository cria uma nova instância de FirestoreBookingRepository
func NewFirestoreBookingRepository(client *firestore.Client) *FirestoreBookingRepository {
	return &FirestoreBookingRepository{
		client: client,
	}
}

func (r *FirestoreBookingRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(bookingsCollection)
}

// Create implementa booking.Repository.Create
func (r *FirestoreBookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	_, err := r.collection().Doc(b.ID).Create(ctx, b)
	if err != nil {
		return fmt.Errorf("falha ao criar reserva: %w", err)
	}
	return nil
}

// FindByID implementa booking.Repository.FindByID
func (r *FirestoreBookingRepository) FindByID(ctx context.Context, id string) (*booking.Booking, error) {
	snap, err := r.collection().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("falha ao buscar reserva: %w", err)
	}

	var b booking.Booking
	if err := snap.DataTo(&b); err != nil {
		return nil, fmt.Errorf("falha ao decodificar reserva: %w", err)
	}
	b.ID = snap.Ref.ID

	return &b, nil
}

// FindByUser implementa booking.Repository.FindByUser
func (r *FirestoreBookingRepository) FindByUser(ctx context.Context, userID string) ([]booking.Booking, error) {
	query := r.collection().
		Where("user", "==", userID).
		OrderBy("createdOn", firestore.Desc)

	iter := query.Documents(ctx)
	defer iter.Stop()

	out := []booking.Booking{}
	for {
		snap, err := iter.Next()
		if err != nil {
			if err == iterator.Done {
				break
			}
			return nil, fmt.Errorf("falha ao listar reservas: %w", err)
		}

		var b booking.Booking
		if err := snap.DataTo(&b); err != nil {
			return nil, fmt.Errorf("falha ao decodificar reserva: %w", err)
		}
		b.ID = snap.Ref.ID
		out = append(out, b)
	}

	return out, nil
}

// Delete implementa booking.Repository.Delete
func (r *FirestoreBookingRepository) Delete(ctx context.Context, id string) error {
	ref := r.collection().Doc(id)

	// O Delete do Firestore não falha para documentos inexistentes;
	// verificar a existência antes para sinalizar não encontrado
	if _, err := ref.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrBookingNotFound
		}
		return fmt.Errorf("falha ao buscar reserva: %w", err)
	}

	if _, err := ref.Delete(ctx); err != nil {
		return fmt.Errorf("falha ao remover reserva: %w", err)
	}

	return nil
}
