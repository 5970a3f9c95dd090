package repository

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/hugohenrick/turismo-backend/internal/domain/user"
)

// Erros específicos do repositório de usuários
var (
	ErrUserNotFound       = errors.New("usuário não encontrado")
	ErrUserDuplicateEmail = errors.New("já existe um usuário com este email")
)

// Coleção do Firestore para usuários
const usersCollection = "users"

// FirestoreUserRepository implementa user.Repository usando o Firestore
type FirestoreUserRepository struct {
	client *firestore.Client
}

// NewFirestoreUserRepository cria uma nova instância de FirestoreUserRepository
func NewFirestoreUserRepository(client *firestore.Client) *FirestoreUserRepository {
	return &FirestoreUserRepository{
		client: client,
	}
}

func (r *FirestoreUserRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(usersCollection)
}

// Create implementa user.Repository.Create
func (r *FirestoreUserRepository) Create(ctx context.Context, u *user.User) error {
	// Garantir unicidade do email antes de gravar
	if _, err := r.FindByEmail(ctx, u.Email); err == nil {
		return ErrUserDuplicateEmail
	} else if !errors.Is(err, ErrUserNotFound) {
		return err
	}

	if _, err := r.collection().Doc(u.ID).Create(ctx, u); err != nil {
		return fmt.Errorf("falha ao criar usuário: %w", err)
	}

	return nil
}

// FindByID implementa user.Repository.FindByID
func (r *FirestoreUserRepository) FindByID(ctx context.Context, id string) (*user.User, error) {
	snap, err := r.collection().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("falha ao buscar usuário: %w", err)
	}

	var u user.User
	if err := snap.DataTo(&u); err != nil {
		return nil, fmt.Errorf("falha ao decodificar usuário: %w", err)
	}
	u.ID = snap.Ref.ID

	return &u, nil
}

// FindByEmail implementa user.Repository.FindByEmail
func (r *FirestoreUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	iter := r.collection().Where("email", "==", email).Limit(1).Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if err != nil {
		if err == iterator.Done {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("falha ao buscar usuário por email: %w", err)
	}

	var u user.User
	if err := snap.DataTo(&u); err != nil {
		return nil, fmt.Errorf("falha ao decodificar usuário: %w", err)
	}
	u.ID = snap.Ref.ID

	return &u, nil
}
