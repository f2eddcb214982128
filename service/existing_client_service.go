package service

import (
	"errors"
	"fmt"
	"log"
	"math"

	json "github.com/goccy/go-json"

	"financing-calculator/domain"
	"financing-calculator/repository"
)

// roundTo2Decimals redondea un float64 a 2 decimales
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

// cacheKey serializa la entrada para usarla como clave de caché. Las
// entradas idénticas producen siempre el mismo resultado.
func cacheKey(prefix string, input any) (string, bool) {
	data, err := json.Marshal(input)
	if err != nil {
		return "", false
	}
	return prefix + ":" + string(data), true
}

type ExistingClientService struct {
	clients      repository.ClientRepository
	calculations repository.CalculationRepository
	cache        repository.CacheRepository
}

// NewExistingClientService creates the calculator for existing clients.
func NewExistingClientService(
	clients repository.ClientRepository,
	calculations repository.CalculationRepository,
	cache repository.CacheRepository,
) *ExistingClientService {
	return &ExistingClientService{
		clients:      clients,
		calculations: calculations,
		cache:        cache,
	}
}

// LookupClient carga los datos del maestro de clientes para rellenar la
// solicitud.
func (s *ExistingClientService) LookupClient(code string) (domain.Client, error) {
	if code == "" {
		return domain.Client{}, errors.New("código de cliente inválido")
	}
	return s.clients.FindByCode(code)
}

// Calculate produce las alternativas de financiación para un cliente
// actual.
func (s *ExistingClientService) Calculate(
	input domain.ExistingClientInput,
) (domain.FinancingResult, error) {

	// Validar entrada
	if input.ClientCode == "" || input.LegalName == "" {
		return domain.FinancingResult{}, errors.New("complete todos los campos requeridos")
	}
	if input.SalesPotential <= 0 {
		return domain.FinancingResult{}, errors.New("potencial de ventas inválido")
	}
	if err := validateTerm(input.RequestedTerm); err != nil {
		return domain.FinancingResult{}, err
	}

	key, hasKey := cacheKey("clientes_actuales", input)
	if hasKey {
		if cached, ok := s.cache.Get(key); ok {
			var result domain.FinancingResult
			if err := json.Unmarshal([]byte(cached), &result); err == nil {
				return result, nil
			}
		}
	}

	result := domain.FinancingResult{Alternatives: s.generate(input)}

	if hasKey {
		if data, err := json.Marshal(result); err == nil {
			if err := s.cache.Set(key, string(data)); err != nil {
				log.Printf("Warning: failed to cache calculation: %v", err)
			}
		}
	}

	// Guardar el resultado (no crítico si falla)
	if err := s.calculations.Save("clientes_actuales", input, result); err != nil {
		log.Printf("Warning: failed to save calculation: %v", err)
	}

	return result, nil
}

func validateTerm(term int) error {
	if term < MinPaymentTermDays || term > MaxPaymentTermDays || term%PaymentTermStep != 0 {
		return fmt.Errorf("término de pago inválido: debe ser múltiplo de %d entre %d y %d días",
			PaymentTermStep, MinPaymentTermDays, MaxPaymentTermDays)
	}
	return nil
}

func (s *ExistingClientService) generate(input domain.ExistingClientInput) []domain.FinancingAlternative {

	// Términos de 240D y 270D no se calculan: se derivan.
	if input.RequestedTerm >= EscalationTermMin {
		return []domain.FinancingAlternative{escalationAlternative(input.RequestedTerm)}
	}

	currentCredit := input.InsuredCredit + input.CompanyCredit
	standardTerm := standardTermDays(input.Area)
	factor := riskFactorExistingClient(input.Concentration)

	// Crédito necesario para soportar el potencial de ventas al
	// término solicitado.
	requiredCredit := input.SalesPotential /
		(factor*((CommercialYearDays/float64(input.RequestedTerm))-1) + 1)

	premium := UninsuredRiskPremium
	if input.InsuredCredit > 0 {
		premium = 0
	}
	rate := termRate(input.RequestedTerm, input.Area, premium)

	if rate < 0 {
		// El término solicitado queda por debajo de la base del área:
		// la operación se remunera, no se financia.
		return []domain.FinancingAlternative{{
			ID:         domain.IDEarlyPaymentDiscount,
			Kind:       domain.KindEarlyPaymentDiscount,
			Title:      "Descuento por Pronto Pago",
			Credit:     currentCredit,
			Rate:       roundTo2Decimals(math.Abs(rate)),
			IsDiscount: true,
			TermDays:   input.RequestedTerm,
		}}
	}

	var alternatives []domain.FinancingAlternative

	if requiredCredit <= currentCredit {
		alternatives = append(alternatives, domain.FinancingAlternative{
			ID:       domain.IDCreditSufficient,
			Kind:     domain.KindCreditSufficient,
			Title:    "Crédito Suficiente",
			Credit:   currentCredit,
			Rate:     roundTo2Decimals(rate),
			TermDays: input.RequestedTerm,
			Note: fmt.Sprintf("El crédito actual de %.0f € cubre el potencial de ventas al término de %dD.",
				currentCredit, input.RequestedTerm),
		})

		if input.Concentration == domain.ConcentrationConcentrated && currentCredit > input.SalesPotential {
			adjusted := input.RequestedTerm + 60
			alternatives = append(alternatives, domain.FinancingAlternative{
				ID:       domain.IDAdjustedTerm,
				Kind:     domain.KindAdjustedTerm,
				Title:    "Término de Pago Ajustado",
				Credit:   currentCredit,
				Rate:     0,
				TermDays: adjusted,
				Note:     fmt.Sprintf("Por la concentración de compras se ofrece ampliar el término a %dD.", adjusted),
			})
		}

		if input.RequestedTerm != input.CurrentTerm && input.Concentration != domain.ConcentrationConcentrated {
			alternatives = append(alternatives, domain.FinancingAlternative{
				ID:       domain.IDTermChange,
				Kind:     domain.KindTermChange,
				Title:    "Cambio de Término de Pago",
				Credit:   currentCredit,
				Rate:     roundTo2Decimals(rate),
				TermDays: input.RequestedTerm,
				Note: fmt.Sprintf("Solicitar el cambio del término actual de %dD al término de %dD.",
					input.CurrentTerm, input.RequestedTerm),
			})
		}

		return alternatives
	}

	alternatives = append(alternatives, domain.FinancingAlternative{
		ID:       domain.IDCreditInsufficient,
		Kind:     domain.KindCreditInsufficient,
		Title:    "Crédito Insuficiente",
		Credit:   currentCredit,
		Rate:     roundTo2Decimals(rate),
		TermDays: input.RequestedTerm,
		Note: fmt.Sprintf("El crédito actual de %.0f € no cubre el potencial de ventas al término de %dD.",
			currentCredit, input.RequestedTerm),
	})

	increased := math.Ceil(requiredCredit)
	alternatives = append(alternatives, domain.FinancingAlternative{
		ID:       domain.IDIncreaseCredit,
		Kind:     domain.KindIncreaseCredit,
		Title:    "Ampliar Crédito",
		Credit:   increased,
		Rate:     roundTo2Decimals(rate),
		TermDays: input.RequestedTerm,
		Note:     fmt.Sprintf("Se necesita un crédito de %.0f € para soportar el potencial de ventas.", increased),
	})

	adjusted := adjustTerm(currentCredit, input.SalesPotential, input.Concentration, standardTerm)
	adjustedRate := termRate(adjusted, input.Area, premium)
	alternatives = append(alternatives, domain.FinancingAlternative{
		ID:         domain.IDReduceTerm,
		Kind:       domain.KindReduceTerm,
		Title:      "Reducir Término de Pago",
		Credit:     currentCredit,
		Rate:       roundTo2Decimals(math.Abs(adjustedRate)),
		IsDiscount: adjusted < baseTermDays(input.Area),
		TermDays:   adjusted,
		Note:       fmt.Sprintf("Con el crédito actual la operación es viable a %dD.", adjusted),
	})

	return alternatives
}

// termRate es el interés (en %) por la desviación del término sobre la
// base del área, más la prima de riesgo. Negativo significa descuento.
func termRate(termDays int, area domain.GeographicArea, premium float64) float64 {
	base := baseTermDays(area)
	return (float64(termDays-base)/CommercialYearDays*TermRateSlope + premium) * 100
}

func escalationAlternative(requestedTerm int) domain.FinancingAlternative {
	return domain.FinancingAlternative{
		ID:       domain.IDEscalation,
		Kind:     domain.KindEscalation,
		Title:    "Contactar con Departamento de Créditos",
		Credit:   0,
		Rate:     0,
		TermDays: requestedTerm,
		Note: fmt.Sprintf("El término solicitado de %dD requiere la aprobación del Departamento de Créditos.",
			requestedTerm),
	}
}
