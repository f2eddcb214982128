package service

import (
	"strings"
	"testing"

	"financing-calculator/domain"
)

func TestGenerateAlternativeExplanation_FallbackWhenDisabled(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	service := NewAIService()

	alternative := domain.FinancingAlternative{
		ID: domain.IDCreditSufficient, Kind: domain.KindCreditSufficient,
		Title: "Crédito Suficiente", Credit: 70000, Rate: 0.42, TermDays: 90,
	}

	explanation := service.GenerateAlternativeExplanation(alternative, "Agrícola Moderna S.L.", false)
	if explanation == "" {
		t.Fatalf("expected fixed fallback explanation when the service is disabled")
	}
	if !strings.Contains(explanation, "Crédito Suficiente") {
		t.Errorf("expected alternative title in fallback: %q", explanation)
	}
	if !strings.Contains(explanation, "cliente actual") {
		t.Errorf("expected client type in fallback: %q", explanation)
	}
	if !strings.Contains(explanation, "un interés del 0.42%") {
		t.Errorf("expected rate in fallback: %q", explanation)
	}
}

func TestGenerateAlternativeExplanation_FallbackLabelsDiscount(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	service := NewAIService()

	alternative := domain.FinancingAlternative{
		ID: domain.IDEarlyPaymentDiscount, Kind: domain.KindEarlyPaymentDiscount,
		Title: "Descuento por Pronto Pago", Credit: 100000, Rate: 0.83,
		IsDiscount: true, TermDays: 30,
	}

	explanation := service.GenerateAlternativeExplanation(alternative, "Nordwind AG", true)
	if !strings.Contains(explanation, "un descuento por pronto pago del 0.83%") {
		t.Errorf("expected discount label in fallback: %q", explanation)
	}
	if !strings.Contains(explanation, "nuevo cliente") {
		t.Errorf("expected new-client type in fallback: %q", explanation)
	}
}
