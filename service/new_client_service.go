package service

import (
	"errors"
	"log"
	"math"

	json "github.com/goccy/go-json"

	"financing-calculator/domain"
	"financing-calculator/repository"
)

type NewClientService struct {
	geography    repository.GeographyRepository
	calculations repository.CalculationRepository
	cache        repository.CacheRepository
}

// NewNewClientService creates the calculator for prospective clients.
func NewNewClientService(
	geography repository.GeographyRepository,
	calculations repository.CalculationRepository,
	cache repository.CacheRepository,
) *NewClientService {
	return &NewClientService{
		geography:    geography,
		calculations: calculations,
		cache:        cache,
	}
}

// Catalog expone el catálogo geográfico con el que se rellenan los
// desplegables de área, país e identificación fiscal.
func (s *NewClientService) Catalog() domain.GeographyCatalog {
	return s.geography.Catalog()
}

// Calculate produce las alternativas de financiación para un cliente
// nuevo: exactamente tres, o una sola si el término se deriva.
func (s *NewClientService) Calculate(
	input domain.NewClientInput,
) (domain.FinancingResult, error) {

	// Validar entrada
	if input.LegalName == "" || input.TaxID == "" || input.Area == "" || input.Country == "" {
		return domain.FinancingResult{}, errors.New("complete todos los campos requeridos")
	}
	if input.SalesPotential <= 0 {
		return domain.FinancingResult{}, errors.New("potencial de ventas inválido")
	}
	if err := validateTerm(input.RequestedTerm); err != nil {
		return domain.FinancingResult{}, err
	}

	key, hasKey := cacheKey("nuevos_clientes", input)
	if hasKey {
		if cached, ok := s.cache.Get(key); ok {
			var result domain.FinancingResult
			if err := json.Unmarshal([]byte(cached), &result); err == nil {
				return result, nil
			}
		}
	}

	result := domain.FinancingResult{Alternatives: generateNewClient(input)}

	if hasKey {
		if data, err := json.Marshal(result); err == nil {
			if err := s.cache.Set(key, string(data)); err != nil {
				log.Printf("Warning: failed to cache calculation: %v", err)
			}
		}
	}

	if err := s.calculations.Save("nuevos_clientes", input, result); err != nil {
		log.Printf("Warning: failed to save calculation: %v", err)
	}

	return result, nil
}

// resolveArea deduce el área efectiva a partir del país y del área
// capturada en el formulario.
func resolveArea(country, area string) domain.GeographicArea {
	if country == "España" || country == "Spain" {
		return domain.AreaSpain
	}
	switch area {
	case "UE", "EU", "Europa", "Europe":
		return domain.AreaEU
	}
	return domain.AreaExport
}

func generateNewClient(input domain.NewClientInput) []domain.FinancingAlternative {

	if input.RequestedTerm >= EscalationTermMin {
		return []domain.FinancingAlternative{escalationAlternative(input.RequestedTerm)}
	}

	area := resolveArea(input.Country, input.Area)
	standardTerm := standardTermDays(area)
	factor := riskFactorNewClient(input.Concentration)

	requestedCredit := math.Ceil(newClientCredit(input.SalesPotential, factor, input.RequestedTerm))
	requestedRate := float64(input.RequestedTerm-standardTerm) / CommercialYearDays * TermRateSlope * 100

	requested := domain.FinancingAlternative{
		ID:         domain.IDRequestedTerm,
		Kind:       domain.KindRequestedTerm,
		Title:      "Término Solicitado",
		Credit:     requestedCredit,
		Rate:       roundTo2Decimals(math.Abs(requestedRate)),
		IsDiscount: requestedRate < 0,
		TermDays:   input.RequestedTerm,
	}
	if requested.IsDiscount {
		requested.Note = "Descuento por pronto pago aplicado al término solicitado."
	}

	standardCredit := math.Ceil(newClientCredit(input.SalesPotential, factor, standardTerm))
	standard := domain.FinancingAlternative{
		ID:       domain.IDStandardTerm,
		Kind:     domain.KindStandardTerm,
		Title:    "Término Estándar",
		Credit:   standardCredit,
		Rate:     0,
		TermDays: standardTerm,
	}

	immediateRate := math.Abs(float64(0-standardTerm) / CommercialYearDays * TermRateSlope * 100)
	immediate := domain.FinancingAlternative{
		ID:         domain.IDImmediatePayment,
		Kind:       domain.KindImmediatePayment,
		Title:      "Pago Inmediato (0 Días)",
		Credit:     math.Round(ImmediatePaymentCreditShare * standardCredit),
		Rate:       roundTo2Decimals(immediateRate),
		IsDiscount: true,
		TermDays:   0,
		Note:       "Descuento condicionado al crédito disponible.",
	}

	return []domain.FinancingAlternative{requested, standard, immediate}
}

func newClientCredit(salesPotential, factor float64, termDays int) float64 {
	return salesPotential / (factor*((CommercialYearDays/float64(termDays))-1) + 1)
}
