package service

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"financing-calculator/domain"
	"financing-calculator/mail"
	"financing-calculator/repository"
)

type NotificationService struct {
	sender         mail.Sender
	geography      repository.GeographyRepository
	aiService      *AIService
	creditDeptAddr string
	crmAddr        string
}

// NewNotificationService creates the composer for the selected
// alternative. creditDeptAddr recibe las operaciones que requieren
// aprobación; crmAddr el resto.
func NewNotificationService(
	sender mail.Sender,
	geography repository.GeographyRepository,
	creditDeptAddr string,
	crmAddr string,
) *NotificationService {
	return &NotificationService{
		sender:         sender,
		geography:      geography,
		aiService:      NewAIService(),
		creditDeptAddr: creditDeptAddr,
		crmAddr:        crmAddr,
	}
}

// Compose construye el correo para la alternativa elegida. No lo envía.
func (s *NotificationService) Compose(req domain.NotificationRequest) (domain.Notification, error) {
	if req.LegalName == "" {
		return domain.Notification{}, errors.New("complete todos los campos requeridos")
	}
	if req.Alternative.Title == "" {
		return domain.Notification{}, errors.New("alternativa no seleccionada")
	}

	to := s.crmAddr
	switch {
	case req.IsNewClient,
		req.Alternative.Kind == domain.KindEscalation,
		req.Alternative.Kind == domain.KindIncreaseCredit:
		to = s.creditDeptAddr
	}

	subject := fmt.Sprintf("Solicitud de Financiación: %s - %s", req.LegalName, req.Alternative.Title)

	var b strings.Builder
	if req.IsNewClient {
		b.WriteString("Solicitud de financiación para nuevo cliente:\n\n")
		b.WriteString(fmt.Sprintf("- Cliente: %s\n", req.LegalName))
		b.WriteString(fmt.Sprintf("- País: %s\n", req.Country))
		b.WriteString(fmt.Sprintf("- %s: %s\n", s.geography.TaxIDLabel(req.Country), req.TaxID))
	} else {
		b.WriteString("Solicitud de financiación para cliente actual:\n\n")
		b.WriteString(fmt.Sprintf("- Cliente: %s\n", req.LegalName))
		b.WriteString(fmt.Sprintf("- Código de Cliente: %s\n", req.ClientCode))
		b.WriteString(fmt.Sprintf("- NIF/CIF: %s\n", req.TaxID))
	}

	b.WriteString(fmt.Sprintf("- Alternativa seleccionada: %s\n", req.Alternative.Title))

	if req.Alternative.Credit > 0 {
		b.WriteString(fmt.Sprintf("- Crédito: %s €\n", formatEuro(req.Alternative.Credit)))
	} else {
		b.WriteString("- Crédito: a definir\n")
	}

	rateLabel := "Interés"
	if req.Alternative.IsDiscount {
		rateLabel = "Descuento"
	}
	b.WriteString(fmt.Sprintf("- %s: %.2f%%\n", rateLabel, req.Alternative.Rate))

	b.WriteString(fmt.Sprintf("- Término de Pago: %dD\n", req.Alternative.TermDays))
	if req.Alternative.Note != "" {
		b.WriteString(fmt.Sprintf("- Observaciones: %s\n", req.Alternative.Note))
	}

	if explanation := s.aiService.GenerateAlternativeExplanation(req.Alternative, req.LegalName, req.IsNewClient); explanation != "" {
		b.WriteString("\n")
		b.WriteString(explanation)
		b.WriteString("\n")
	}

	return domain.Notification{To: to, Subject: subject, Body: b.String()}, nil
}

// Notify compone el correo y lo entrega al colaborador de envío. Un
// fallo en la entrega se reporta; el correo compuesto se devuelve
// igualmente.
func (s *NotificationService) Notify(req domain.NotificationRequest) (domain.Notification, error) {
	notification, err := s.Compose(req)
	if err != nil {
		return domain.Notification{}, err
	}
	if err := s.sender.Send(notification); err != nil {
		log.Printf("Warning: mail handoff failed: %v", err)
		return notification, fmt.Errorf("no se pudo entregar la notificación: %w", err)
	}
	return notification, nil
}

var esPrinter = message.NewPrinter(language.Spanish)

// formatEuro formatea un importe al estilo es-ES: punto como separador
// de miles y coma decimal.
func formatEuro(value float64) string {
	return esPrinter.Sprintf("%.2f", value)
}
