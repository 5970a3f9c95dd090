package database

import (
	"context"
	"errors"
	"fmt"
	"os"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"
)

// NewFirestoreClient cria um cliente do Firestore a partir de variáveis
// de ambiente.
//
// FIREBASE_PROJECT_ID é obrigatória. FIREBASE_CREDENTIALS pode apontar
// para o arquivo JSON da service account; na sua ausência o cliente usa
// as Application Default Credentials (GOOGLE_APPLICATION_CREDENTIALS).
func NewFirestoreClient(ctx context.Context) (*firestore.Client, error) {
	projectID := os.Getenv("FIREBASE_PROJECT_ID")
	if projectID == "" {
		return nil, errors.New("FIREBASE_PROJECT_ID não configurada")
	}

	var opts []option.ClientOption
	if credentials := os.Getenv("FIREBASE_CREDENTIALS"); credentials != "" {
		if _, err := os.Stat(credentials); err != nil {
			return nil, fmt.Errorf("arquivo de credenciais não encontrado: %w", err)
		}
		opts = append(opts, option.WithCredentialsFile(credentials))
	}

	client, err := firestore.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar cliente do Firestore: %w", err)
	}

	return client, nil
}
