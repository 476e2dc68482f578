// Package demo provides the static fallback conversation dataset used to keep
// the dashboard populated when live traffic is sparse.
package demo

import (
	"time"

	"github.com/bahuan-coding/carla-ops-api/internal/model"
)

var base = time.Date(2026, time.March, 14, 9, 0, 0, 0, time.UTC)

// Conversations returns the fallback dataset, newest first. Every ID carries
// the demo prefix so downstream consumers can distinguish synthetic records.
func Conversations() []model.ConversationSummary {
	agent := "ana.lima"
	return []model.ConversationSummary{
		{
			ID:            model.DemoIDPrefix + "maria",
			Name:          "Maria Santos",
			Phone:         "+502 555 01234",
			Channel:       model.ChannelWhatsApp,
			Product:       "Conta Digital",
			Status:        "docs_review",
			UnreadCount:   2,
			LastMessage:   "Acabei de enviar a foto do documento, consegue verificar?",
			LastMessageAt: base,
			Tags:          []string{"onboarding"},
			AIEnabled:     true,
			Transaction: &model.Transaction{
				ID:       "txn_" + model.DemoIDPrefix + "maria",
				Name:     "Conta Digital",
				Status:   "docs_review",
				Stage:    "Documentos em análise",
				Progress: 55,
			},
		},
		{
			ID:            model.DemoIDPrefix + "joao",
			Name:          "João Pereira",
			Phone:         "+502 555 09876",
			Channel:       model.ChannelWhatsApp,
			Product:       "Cartão de Crédito",
			Status:        "pending_approval",
			UnreadCount:   0,
			LastMessage:   "Perfeito, fico no aguardo então. Obrigado!",
			LastMessageAt: base.Add(-35 * time.Minute),
			Tags:          []string{"vip"},
			AIEnabled:     true,
			Transaction: &model.Transaction{
				ID:       "txn_" + model.DemoIDPrefix + "joao",
				Name:     "Cartão de Crédito",
				Status:   "pending_approval",
				Stage:    "Aguardando aprovação",
				Progress: 85,
			},
		},
		{
			ID:            model.DemoIDPrefix + "carla",
			Name:          "Carla Mendes",
			Phone:         "+502 555 04455",
			Channel:       model.ChannelWeb,
			Product:       "Conta Digital",
			Status:        "identity_check",
			UnreadCount:   1,
			LastMessage:   "A selfie não está passando na validação, o que eu faço?",
			LastMessageAt: base.Add(-2 * time.Hour),
			Tags:          []string{},
			AIEnabled:     false,
			AssignedAgent: &agent,
			Transaction: &model.Transaction{
				ID:       "txn_" + model.DemoIDPrefix + "carla",
				Name:     "Conta Digital",
				Status:   "identity_check",
				Stage:    "Verificação de identidade",
				Progress: 70,
			},
		},
		{
			ID:            model.DemoIDPrefix + "rafael",
			Name:          "Rafael Costa",
			Phone:         "+502 555 07788",
			Channel:       model.ChannelWhatsApp,
			Product:       "Empréstimo Pessoal",
			Status:        "awaiting_customer",
			UnreadCount:   0,
			LastMessage:   "Vou conferir as taxas e te respondo amanhã.",
			LastMessageAt: base.Add(-26 * time.Hour),
			Tags:          []string{"credito"},
			AIEnabled:     true,
			Transaction: &model.Transaction{
				ID:       "txn_" + model.DemoIDPrefix + "rafael",
				Name:     "Empréstimo Pessoal",
				Status:   "awaiting_customer",
				Stage:    "Aguardando cliente",
				Progress: 45,
			},
		},
		{
			ID:            model.DemoIDPrefix + "fernanda",
			Name:          "Fernanda Oliveira",
			Phone:         "+502 555 02211",
			Channel:       model.ChannelEmail,
			Product:       "Conta Digital",
			Status:        "completed",
			UnreadCount:   0,
			LastMessage:   "Conta aberta com sucesso, muito obrigada pela ajuda!",
			LastMessageAt: base.Add(-3 * 24 * time.Hour),
			Tags:          []string{"onboarding", "concluido"},
			AIEnabled:     true,
			Transaction: &model.Transaction{
				ID:       "txn_" + model.DemoIDPrefix + "fernanda",
				Name:     "Conta Digital",
				Status:   "completed",
				Stage:    "Concluído",
				Progress: 100,
			},
		},
		{
			ID:            model.DemoIDPrefix + "lucas",
			Name:          "Lucas Almeida",
			Phone:         "+502 555 06633",
			Channel:       model.ChannelWhatsApp,
			Product:       "Conta Digital",
			Status:        "docs_pending",
			UnreadCount:   3,
			LastMessage:   "Quais documentos eu preciso enviar para abrir a conta?",
			LastMessageAt: base.Add(-4 * 24 * time.Hour),
			Tags:          []string{},
			AIEnabled:     true,
			Transaction: &model.Transaction{
				ID:       "txn_" + model.DemoIDPrefix + "lucas",
				Name:     "Conta Digital",
				Status:   "docs_pending",
				Stage:    "Aguardando documentos",
				Progress: 40,
			},
		},
	}
}
