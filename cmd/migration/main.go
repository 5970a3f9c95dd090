package main

import (
	"log"
	"os"

	"github.com/hugohenrick/turismo-backend/internal/infrastructure/database"
	"github.com/joho/godotenv"
)

func main() {
	// Carregar variáveis de ambiente
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: Arquivo .env não encontrado: %v", err)
	}

	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	switch command {
	case "up":
		if err := database.RunMigrations(); err != nil {
			log.Fatalf("Erro ao aplicar migrações: %v", err)
		}
	case "down":
		if err := database.RollbackMigration(); err != nil {
			log.Fatalf("Erro ao desfazer migração: %v", err)
		}
	default:
		log.Fatalf("Comando desconhecido: %s (use 'up' ou 'down')", command)
	}
}
