package service

import (
	"errors"
	"fmt"
	"log"

	"financing-calculator/domain"
	"financing-calculator/repository"
)

type ProjectService struct {
	conditions   repository.ConditionRepository
	calculations repository.CalculationRepository
}

// NewProjectService creates the long-term project financing calculator.
func NewProjectService(
	conditions repository.ConditionRepository,
	calculations repository.CalculationRepository,
) *ProjectService {
	return &ProjectService{conditions: conditions, calculations: calculations}
}

// Conditions lista las condiciones de todos los programas de
// financiación disponibles.
func (s *ProjectService) Conditions() []domain.Condition {
	return s.conditions.All()
}

// Calculate calcula el aporte, el crédito, el interés total y las
// opciones de pago de un proyecto.
func (s *ProjectService) Calculate(input domain.ProjectInput) (domain.ProjectResult, error) {

	// Validar entrada
	if input.LegalName == "" || input.Address == "" || input.TaxID == "" || input.DueDate == "" {
		return domain.ProjectResult{}, errors.New("complete todos los campos requeridos")
	}
	if input.Amount <= 0 {
		return domain.ProjectResult{}, errors.New("importe del proyecto inválido")
	}
	if input.ProposedRate < 0 || input.ProposedRate > MaxProjectRate {
		return domain.ProjectResult{}, fmt.Errorf("interés inválido: debe estar entre 0%% y %.0f%%", MaxProjectRate)
	}

	label := fmt.Sprintf("Program-%d", input.TermMonths)
	condition, err := s.conditions.FindByLabel(label)
	if err != nil {
		return domain.ProjectResult{}, fmt.Errorf("%w: %s", domain.ErrProgramaNoEncontrado, label)
	}

	if input.Amount < condition.MinAmount {
		return domain.ProjectResult{}, fmt.Errorf(
			"%w: el importe del proyecto no alcanza el mínimo de %.2f € para %s",
			domain.ErrImporteMinimo, condition.MinAmount, label)
	}

	// El formulario precarga el interés recomendado del programa.
	rate := input.ProposedRate
	if rate == 0 {
		rate = condition.Rate
	}

	downPayment := input.Amount * condition.MinDownPayment
	creditAmount := input.Amount - downPayment
	totalInterest := (rate / 100) * (float64(input.TermMonths) / 12) * creditAmount
	totalPayable := creditAmount + totalInterest

	result := domain.ProjectResult{
		LegalName:     input.LegalName,
		Address:       input.Address,
		TaxID:         input.TaxID,
		Amount:        input.Amount,
		DownPayment:   roundTo2Decimals(downPayment),
		CreditAmount:  roundTo2Decimals(creditAmount),
		TotalInterest: roundTo2Decimals(totalInterest),
		TotalPayable:  roundTo2Decimals(totalPayable),
		Plans:         installmentPlans(input.TermMonths, totalPayable),
	}

	if err := s.calculations.Save("proyectos", input, result); err != nil {
		log.Printf("Warning: failed to save calculation: %v", err)
	}

	return result, nil
}

// installmentPlans depende únicamente del plazo del programa.
func installmentPlans(termMonths int, totalPayable float64) []domain.InstallmentPlan {
	plan := func(label string, count int) domain.InstallmentPlan {
		return domain.InstallmentPlan{
			Label:  label,
			Count:  count,
			Amount: roundTo2Decimals(totalPayable / float64(count)),
		}
	}

	switch termMonths {
	case 12:
		return []domain.InstallmentPlan{
			plan("Trimestral", 4),
			plan("Semestral", 2),
			plan("50% a los 9 meses y 50% a los 12 meses", 2),
		}
	case 18:
		return []domain.InstallmentPlan{
			plan("Trimestral", 6),
			plan("Semestral", 3),
		}
	case 24:
		return []domain.InstallmentPlan{
			plan("Trimestral", 8),
			plan("Semestral", 4),
		}
	}
	return nil
}
