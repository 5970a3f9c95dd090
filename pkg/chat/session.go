package chat

import "time"

// Session representa uma sessão de conversa do chatbot.
//
// Invariantes mantidos pelo Service:
//   - o histórico nunca é vazio após a criação e a primeira mensagem é
//     sempre do tipo system (única no histórico);
//   - mensagens são apenas adicionadas ao final, nunca removidas ou
//     alteradas;
//   - UpdatedAt é igual ao timestamp da última mensagem adicionada.
type Session struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	History   History   `json:"history"`
}
