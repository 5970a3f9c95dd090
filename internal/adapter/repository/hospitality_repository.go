package repository

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/hugohenrick/turismo-backend/internal/domain/hospitality"
)

// Erros específicos do repositório de estabelecimentos
var (
	ErrHospitalityNotFound = errors.New("estabelecimento não encontrado")
)

// Coleção do Firestore para estabelecimentos
const hospitalityCollection = "hospitality"

// FirestoreHospitalityRepository implementa hospitality.Repository usando o Firestore
type FirestoreHospitalityRepository struct {
	client *firestore.Client
}

// NewFirestoreHospitalityRepository cria uma nova instância de FirestoreHospitalityRepository
func NewFirestoreHospitalityRepository(client *firestore.Client) *FirestoreHospitalityRepository {
	return &FirestoreHospitalityRepository{
		client: client,
	}
}

func (r *FirestoreHospitalityRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(hospitalityCollection)
}

// Create implementa hospitality.Repository.Create
func (r *FirestoreHospitalityRepository) Create(ctx context.Context, h *hospitality.Hospitality) error {
	_, err := r.collection().Doc(h.ID).Create(ctx, h)
	if err != nil {
		return fmt.Errorf("falha ao criar estabelecimento: %w", err)
	}
	return nil
}

// FindByID implementa hospitality.Repository.FindByID
func (r *FirestoreHospitalityRepository) FindByID(ctx context.Context, id string) (*hospitality.Hospitality, error) {
	snap, err := r.collection().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrHospitalityNotFound
		}
		return nil, fmt.Errorf("falha ao buscar estabelecimento: %w", err)
	}

	var h hospitality.Hospitality
	if err := snap.DataTo(&h); err != nil {
		return nil, fmt.Errorf("falha ao decodificar estabelecimento: %w", err)
	}
	h.ID = snap.Ref.ID

	return &h, nil
}

// FindAll implementa hospitality.Repository.FindAll
func (r *FirestoreHospitalityRepository) FindAll(ctx context.Context) ([]hospitality.Hospitality, error) {
	iter := r.collection().Documents(ctx)
	defer iter.Stop()

	out := []hospitality.Hospitality{}
	for {
		snap, err := iter.Next()
		if err != nil {
			if err == iterator.Done {
				break
			}
			return nil, fmt.Errorf("falha ao listar estabelecimentos: %w", err)
		}

		var h hospitality.Hospitality
		if err := snap.DataTo(&h); err != nil {
			return nil, fmt.Errorf("falha ao decodificar estabelecimento: %w", err)
		}
		h.ID = snap.Ref.ID
		out = append(out, h)
	}

	return out, nil
}

// Update implementa hospitality.Repository.Update. Somente os campos
// preenchidos são alterados no documento.
func (r *FirestoreHospitalityRepository) Update(ctx context.Context, id string, update *hospitality.Update) (*hospitality.Hospitality, error) {
	updates := []firestore.Update{}
	if update.Type != nil {
		updates = append(updates, firestore.Update{Path: "type", Value: string(*update.Type)})
	}
	if update.Name != nil {
		updates = append(updates, firestore.Update{Path: "name", Value: *update.Name})
	}
	if update.Description != nil {
		updates = append(updates, firestore.Update{Path: "description", Value: *update.Description})
	}

	if len(updates) > 0 {
		if _, err := r.collection().Doc(id).Update(ctx, updates); err != nil {
			if status.Code(err) == codes.NotFound {
				return nil, ErrHospitalityNotFound
			}
			return nil, fmt.Errorf("falha ao atualizar estabelecimento: %w", err)
		}
	}

	return r.FindByID(ctx, id)
}

// Delete implementa hospitality.Repository.Delete
func (r *FirestoreHospitalityRepository) Delete(ctx context.Context, id string) error {
	ref := r.collection().Doc(id)

	if _, err := ref.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrHospitalityNotFound
		}
		return fmt.Errorf("falha ao buscar estabelecimento: %w", err)
	}

	if _, err := ref.Delete(ctx); err != nil {
		return fmt.Errorf("falha ao remover estabelecimento: %w", err)
	}

	return nil
}
