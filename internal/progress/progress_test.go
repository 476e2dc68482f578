package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	tests := []struct {
		status   string
		stage    string
		progress int
	}{
		{"started", "Cadastro iniciado", 10},
		{"docs_review", "Documentos em análise", 55},
		{"identity_check", "Verificação de identidade", 70},
		{"approved", "Conta aprovada", 95},
		{"completed", "Concluído", 100},
		{"rejected", "Reprovado", 100},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			stage, percent, ok := Map(tt.status)
			assert.True(t, ok)
			assert.Equal(t, tt.stage, stage)
			assert.Equal(t, tt.progress, percent)
		})
	}
}

func TestMapUnknownStatus(t *testing.T) {
	for _, status := range []string{"", "archived", "DOCS_REVIEW"} {
		stage, percent, ok := Map(status)
		assert.False(t, ok, "status %q", status)
		assert.Empty(t, stage)
		assert.Zero(t, percent)
	}
}
