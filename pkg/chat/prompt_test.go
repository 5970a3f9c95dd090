package chat

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt(testHistory(), "padrão")

	// O texto de sistema do histórico tem precedência sobre o padrão
	assert.Equal(t, "sistema\n\nUser: pergunta\nAssistant: resposta\nAssistant:", prompt)
}

func TestBuildPromptWithoutSystemMessage(t *testing.T) {
	prompt := BuildPrompt(testHistory().PublicView(), "padrão")
	assert.Equal(t, "padrão\n\nUser: pergunta\nAssistant: resposta\nAssistant:", prompt)
}

func TestLoadSystemPromptFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompt.txt")
	require.NoError(t, os.WriteFile(path, []byte("  Seja breve.\n"), 0o600))
	t.Setenv(systemPromptEnv, path)

	assert.Equal(t, "Seja breve.", loadSystemPrompt())
}

func TestLoadSystemPromptMissingFile(t *testing.T) {
	t.Setenv(systemPromptEnv, filepath.Join(t.TempDir(), "nao-existe.txt"))

	assert.Equal(t, systemPromptFallback, loadSystemPrompt())
}

func TestLoadSystemPromptEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompt.txt")
	require.NoError(t, os.WriteFile(path, []byte("   \n\t\n"), 0o600))
	t.Setenv(systemPromptEnv, path)

	assert.Equal(t, systemPromptFallback, loadSystemPrompt())
}
