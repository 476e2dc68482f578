// Package progress maps verification statuses to display stages.
package progress

// Step is the display stage and completion percentage for a status.
type Step struct {
	Stage    string
	Progress int
}

// steps is the static status table for the account verification flow.
var steps = map[string]Step{
	"started":           {Stage: "Cadastro iniciado", Progress: 10},
	"active":            {Stage: "Conversa ativa", Progress: 25},
	"docs_pending":      {Stage: "Aguardando documentos", Progress: 40},
	"docs_review":       {Stage: "Documentos em análise", Progress: 55},
	"identity_check":    {Stage: "Verificação de identidade", Progress: 70},
	"pending_approval":  {Stage: "Aguardando aprovação", Progress: 85},
	"approved":          {Stage: "Conta aprovada", Progress: 95},
	"completed":         {Stage: "Concluído", Progress: 100},
	"rejected":          {Stage: "Reprovado", Progress: 100},
	"manual_review":     {Stage: "Análise manual", Progress: 60},
	"awaiting_customer": {Stage: "Aguardando cliente", Progress: 45},
}

// Map resolves a status to its stage and progress. Unknown statuses report
// ok=false so callers can skip the derived transaction entirely.
func Map(status string) (stage string, percent int, ok bool) {
	step, ok := steps[status]
	if !ok {
		return "", 0, false
	}
	return step.Stage, step.Progress, true
}
