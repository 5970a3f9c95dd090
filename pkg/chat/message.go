package chat

import "time"

// MessageType identifica o autor de uma mensagem do histórico
type MessageType string

// Constantes para MessageType
const (
	MessageTypeSystem    MessageType = "system"    // Prompt de sistema (interno)
	MessageTypeUser      MessageType = "user"      // Mensagem enviada pelo usuário
	MessageTypeAssistant MessageType = "assistant" // Resposta gerada pelo assistente
)

// Message representa uma mensagem no histórico de uma sessão do chatbot.
// Uma vez adicionada ao histórico, a mensagem não é mais alterada.
type Message struct {
	Type      MessageType `json:"type" firestore:"type"`
	Message   string      `json:"message" firestore:"message"`
	Timestamp time.Time   `json:"timestamp" firestore:"timestamp"`
}

// History é a sequência ordenada de mensagens de uma sessão (append-only)
type History []Message

// Append retorna um novo histórico com a mensagem adicionada ao final.
// O histórico recebido não é modificado: o slice retornado nunca
// compartilha o array de entrada.
func (h History) Append(m Message) History {
	out := make(History, 0, len(h)+1)
	out = append(out, h...)
	return append(out, m)
}

// PublicView retorna a projeção externa do histórico, sem as mensagens
// de sistema. O prompt de sistema é mecanismo interno de controle, não
// conteúdo da conversa. Aplicar duas vezes produz o mesmo resultado.
func (h History) PublicView() History {
	out := make(History, 0, len(h))
	for _, m := range h {
		if m.Type != MessageTypeSystem {
			out = append(out, m)
		}
	}
	return out
}

// SystemText retorna o texto da primeira mensagem de sistema do
// histórico. Pelo invariante da sessão existe exatamente uma, no índice
// zero; havendo mais de uma, vale a primeira.
func (h History) SystemText() (string, bool) {
	for _, m := range h {
		if m.Type == MessageTypeSystem {
			return m.Message, true
		}
	}
	return "", false
}

// Equal compara dois históricos elemento a elemento (tipo, texto e
// timestamp)
func (h History) Equal(other History) bool {
	if len(h) != len(other) {
		return false
	}
	for i := range h {
		if h[i].Type != other[i].Type ||
			h[i].Message != other[i].Message ||
			!h[i].Timestamp.Equal(other[i].Timestamp) {
			return false
		}
	}
	return true
}
