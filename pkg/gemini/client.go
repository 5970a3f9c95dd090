// Package gemini implementa o cliente REST da API Google Generative
// Language (Gemini) usada como serviço de geração de texto do chatbot.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/hugohenrick/turismo-backend/pkg/logger"
)

const (
	defaultEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent"
	defaultModel    = "gemini-2.5-flash"
)

// Client é o cliente da API de geração de conteúdo do Gemini.
//
// A ausência da chave de API não impede a construção do cliente: o
// backend precisa subir mesmo sem a chave configurada e a falha só
// acontece (e é absorvida pelo chamador) no momento da chamada.
type Client struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
	logger   logger.Logger
}

// NewClient cria um novo cliente a partir das variáveis de ambiente
// GOOGLE_API_KEY e GEMINI_MODEL
func NewClient(log logger.Logger) *Client {
	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = defaultModel
	}

	return &Client{
		apiKey:   os.Getenv("GOOGLE_API_KEY"),
		model:    model,
		endpoint: fmt.Sprintf(defaultEndpoint, model),
		client:   &http.Client{},
		logger:   log,
	}
}

// Estruturas de requisição/resposta do endpoint generateContent
type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// Complete envia o prompt ao modelo e retorna o texto gerado.
// Implementa chat.Completer.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("GOOGLE_API_KEY não configurada")
	}

	reqBody := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	}

	reqJSON, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("erro ao serializar requisição: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewBuffer(reqJSON))
	if err != nil {
		return "", fmt.Errorf("erro ao criar requisição HTTP: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", c.apiKey)

	c.logger.Debug("enviando requisição para a API Gemini", "model", c.model)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("erro na chamada da API Gemini: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("erro ao ler resposta da API Gemini: %w", err)
	}

	var response generateResponse
	if err := json.Unmarshal(respBody, &response); err != nil {
		return "", fmt.Errorf("erro ao decodificar resposta da API Gemini: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if response.Error != nil {
			return "", fmt.Errorf("API Gemini retornou %d: %s", resp.StatusCode, response.Error.Message)
		}
		return "", fmt.Errorf("API Gemini retornou status %d", resp.StatusCode)
	}

	if len(response.Candidates) == 0 || len(response.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("resposta da API Gemini sem candidatos")
	}

	var sb strings.Builder
	for _, p := range response.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", fmt.Errorf("API Gemini retornou texto vazio")
	}

	return text, nil
}
