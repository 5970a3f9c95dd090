package chat

import (
	"context"
	"errors"
	"time"
)

// Erros retornados pelas implementações de Repository
var (
	// ErrSessionNotFound é retornado quando a sessão não existe
	ErrSessionNotFound = errors.New("sessão não encontrada")
	// ErrSessionExists é retornado quando já existe sessão com o mesmo ID
	ErrSessionExists = errors.New("já existe uma sessão com este ID")
)

// Repository define a interface de persistência das sessões do chatbot.
// O repositório é o único dono do estado persistido: os chamadores
// recebem sempre uma cópia dos dados, nunca uma referência viva.
type Repository interface {
	// CreateSession grava uma nova sessão com o histórico inicial.
	// Retorna ErrSessionExists se o ID já estiver em uso.
	CreateSession(ctx context.Context, session *Session) error

	// GetSession retorna a sessão completa (incluindo mensagens de
	// sistema). Retorna ErrSessionNotFound se o ID for desconhecido.
	GetSession(ctx context.Context, id string) (*Session, error)

	// ReplaceHistory sobrescreve o histórico completo da sessão e
	// atualiza o UpdatedAt em uma única escrita. Retorna
	// ErrSessionNotFound se a sessão não existir.
	//
	// O fluxo de continuação faz leitura-modificação-escrita sem token
	// de versão: duas continuações concorrentes na mesma sessão leem o
	// mesmo histórico e a segunda escrita sobrescreve os appends da
	// primeira (lost update). Limitação conhecida e aceita.
	ReplaceHistory(ctx context.Context, id string, history History, updatedAt time.Time) error
}

// Completer é o serviço externo de geração de texto: recebe um prompt
// único e devolve o texto gerado ou uma falha.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
