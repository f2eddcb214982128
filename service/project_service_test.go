package service

import (
	"errors"
	"strings"
	"testing"

	"financing-calculator/domain"
	"financing-calculator/repository"
)

func newProjectService(calcs *MockCalculationRepository) *ProjectService {
	return NewProjectService(repository.NewConditionRepositoryMemory(), calcs)
}

func projectInput() domain.ProjectInput {
	return domain.ProjectInput{
		LegalName:    "Invernaderos del Sureste S.A.",
		Address:      "Polígono Industrial Oeste, Murcia",
		TaxID:        "A11223344",
		Amount:       25000,
		TermMonths:   18,
		ProposedRate: 4.25,
		DueDate:      "2027-06-30",
	}
}

func TestCalculateProject_Program18(t *testing.T) {
	mockRepo := &MockCalculationRepository{}
	service := newProjectService(mockRepo)

	result, err := service.Calculate(projectInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.DownPayment != 5000 {
		t.Errorf("expected down payment 5000, got %.2f", result.DownPayment)
	}
	if result.CreditAmount != 20000 {
		t.Errorf("expected credit 20000, got %.2f", result.CreditAmount)
	}
	// 0.0425 × (18/12) × 20000 = 1275
	if result.TotalInterest != 1275 {
		t.Errorf("expected total interest 1275, got %.2f", result.TotalInterest)
	}
	if result.TotalPayable != 21275 {
		t.Errorf("expected total payable 21275, got %.2f", result.TotalPayable)
	}

	if len(result.Plans) != 2 {
		t.Fatalf("expected 2 installment plans, got %d", len(result.Plans))
	}
	quarterly := result.Plans[0]
	if quarterly.Count != 6 || quarterly.Amount != 3545.83 {
		t.Errorf("expected 6 quarterly installments of 3545.83, got %d × %.2f", quarterly.Count, quarterly.Amount)
	}
	semiannual := result.Plans[1]
	if semiannual.Count != 3 || semiannual.Amount != 7091.67 {
		t.Errorf("expected 3 semiannual installments of 7091.67, got %d × %.2f", semiannual.Count, semiannual.Amount)
	}

	if !mockRepo.SaveCalled {
		t.Errorf("expected repository Save to be called")
	}
}

func TestCalculateProject_Program12Plans(t *testing.T) {
	service := newProjectService(&MockCalculationRepository{})

	input := projectInput()
	input.TermMonths = 12
	input.ProposedRate = 3.5

	result, err := service.Calculate(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Plans) != 3 {
		t.Fatalf("expected 3 installment plans, got %d", len(result.Plans))
	}
	if result.Plans[2].Count != 2 {
		t.Errorf("expected split plan with 2 installments, got %d", result.Plans[2].Count)
	}
	if !strings.Contains(result.Plans[2].Label, "50%") {
		t.Errorf("expected 50/50 split plan label, got %q", result.Plans[2].Label)
	}
}

func TestCalculateProject_BelowMinimum(t *testing.T) {
	mockRepo := &MockCalculationRepository{}
	service := newProjectService(mockRepo)

	input := projectInput()
	input.TermMonths = 12
	input.Amount = 5000

	_, err := service.Calculate(input)
	if !errors.Is(err, domain.ErrImporteMinimo) {
		t.Fatalf("expected ErrImporteMinimo, got %v", err)
	}
	if !strings.Contains(err.Error(), "10000.00") {
		t.Errorf("expected minimum amount in message, got %q", err.Error())
	}
	if !strings.Contains(err.Error(), "Program-12") {
		t.Errorf("expected program label in message, got %q", err.Error())
	}
	if mockRepo.SaveCalled {
		t.Errorf("repository Save should NOT be called")
	}
}

func TestCalculateProject_AtMinimum(t *testing.T) {
	service := newProjectService(&MockCalculationRepository{})

	input := projectInput()
	input.TermMonths = 12
	input.Amount = 10000

	if _, err := service.Calculate(input); err != nil {
		t.Errorf("expected amount at the minimum to be accepted, got %v", err)
	}
}

func TestCalculateProject_UnknownProgram(t *testing.T) {
	service := newProjectService(&MockCalculationRepository{})

	input := projectInput()
	input.TermMonths = 36

	_, err := service.Calculate(input)
	if !errors.Is(err, domain.ErrProgramaNoEncontrado) {
		t.Fatalf("expected ErrProgramaNoEncontrado, got %v", err)
	}
	if !strings.Contains(err.Error(), "Program-36") {
		t.Errorf("expected program label in message, got %q", err.Error())
	}
}

func TestCalculateProject_RateFallback(t *testing.T) {
	service := newProjectService(&MockCalculationRepository{})

	input := projectInput()
	input.TermMonths = 12
	input.Amount = 10000
	input.ProposedRate = 0

	result, err := service.Calculate(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Sin interés propuesto se usa el recomendado del programa (3.5%):
	// 0.035 × 1 × 8500 = 297.50
	if result.TotalInterest != 297.5 {
		t.Errorf("expected total interest 297.50, got %.2f", result.TotalInterest)
	}
}

func TestCalculateProject_MissingFields(t *testing.T) {
	service := newProjectService(&MockCalculationRepository{})

	input := projectInput()
	input.Address = ""

	if _, err := service.Calculate(input); err == nil {
		t.Errorf("expected error for missing address")
	}

	input = projectInput()
	input.DueDate = ""

	if _, err := service.Calculate(input); err == nil {
		t.Errorf("expected error for missing due date")
	}
}

func TestProjectConditions(t *testing.T) {
	service := newProjectService(&MockCalculationRepository{})

	conditions := service.Conditions()
	if len(conditions) != 3 {
		t.Fatalf("expected 3 programs, got %d", len(conditions))
	}
	if conditions[1].Label != "Program-18" || conditions[1].MinAmount != 20000 {
		t.Errorf("unexpected Program-18 conditions: %+v", conditions[1])
	}
}
