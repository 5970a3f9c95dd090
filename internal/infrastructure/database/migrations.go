package database

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// migrationDatabaseURL monta a URL do banco usada pelas migrações
func migrationDatabaseURL() string {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		// Construir a URL do banco a partir das variáveis individuais
		dbURL = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
			getEnvOrDefault("DB_USER", "postgres"),
			getEnvOrDefault("DB_PASSWORD", "postgres"),
			getEnvOrDefault("DB_HOST", "localhost"),
			getEnvOrDefault("DB_PORT", "5432"),
			getEnvOrDefault("DB_NAME", "turismo"),
			getEnvOrDefault("DB_SSLMODE", "disable"),
		)
	}
	return dbURL
}

// RunMigrations aplica as migrações pendentes do banco relacional,
// necessário apenas quando CHAT_STORE_DRIVER=postgres
func RunMigrations() error {
	m, err := migrate.New("file://migrations", migrationDatabaseURL())
	if err != nil {
		return fmt.Errorf("erro ao criar migrate: %v", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("erro ao aplicar migrações: %v", err)
	}

	log.Println("Migrações aplicadas com sucesso")
	return nil
}

// RollbackMigration desfaz a última migração aplicada
func RollbackMigration() error {
	m, err := migrate.New("file://migrations", migrationDatabaseURL())
	if err != nil {
		return fmt.Errorf("erro ao criar migrate: %v", err)
	}
	defer m.Close()

	if err := m.Steps(-1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("erro ao desfazer migração: %v", err)
	}

	log.Println("Migração desfeita com sucesso")
	return nil
}
