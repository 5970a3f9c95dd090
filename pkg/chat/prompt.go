package chat

import (
	"os"
	"strings"
	"sync"
)

// Prompt de sistema usado quando o arquivo não existe ou está vazio
const systemPromptFallback = "Você é um assistente de turismo prestativo. Forneça respostas objetivas e factuais."

const (
	systemPromptEnv         = "SYSTEM_PROMPT_FILE"
	systemPromptDefaultPath = "system_prompt.txt"
)

var (
	systemPromptOnce   sync.Once
	systemPromptCached string
)

// SystemPrompt retorna o prompt de sistema do processo. O texto é lido
// uma única vez do arquivo apontado por SYSTEM_PROMPT_FILE (ou de
// system_prompt.txt no diretório de trabalho) e fica em cache pelo
// tempo de vida do processo; leituras concorrentes são seguras.
func SystemPrompt() string {
	systemPromptOnce.Do(func() {
		systemPromptCached = loadSystemPrompt()
	})
	return systemPromptCached
}

func loadSystemPrompt() string {
	path := os.Getenv(systemPromptEnv)
	if path == "" {
		path = systemPromptDefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return systemPromptFallback
	}

	content := strings.TrimSpace(string(data))
	if content == "" {
		return systemPromptFallback
	}
	return content
}

// BuildPrompt monta o prompt único enviado ao serviço de geração:
// o texto de sistema do histórico (ou defaultSystem na sua ausência),
// a transcrição da conversa em linhas "User:"/"Assistant:" na ordem
// original e o sufixo "Assistant:" que induz a próxima resposta.
func BuildPrompt(history History, defaultSystem string) string {
	system := defaultSystem
	if text, ok := history.SystemText(); ok {
		system = text
	}

	var lines []string
	for _, m := range history {
		switch m.Type {
		case MessageTypeUser:
			lines = append(lines, "User: "+m.Message)
		case MessageTypeAssistant:
			lines = append(lines, "Assistant: "+m.Message)
		}
	}

	return system + "\n\n" + strings.Join(lines, "\n") + "\nAssistant:"
}
