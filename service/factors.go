package service

import (
	"math"

	"financing-calculator/domain"
)

// Las dos escalas de factor de riesgo son política comercial: la de
// clientes actuales y la de nuevos clientes usan los mismos códigos de
// concentración con valores distintos. No deben unificarse.

func riskFactorExistingClient(c domain.PurchaseConcentration) float64 {
	switch c {
	case domain.ConcentrationLinear:
		return 1.0
	case domain.ConcentrationMixed:
		return 0.85
	case domain.ConcentrationConcentrated:
		return 0.7
	default:
		return 0.8
	}
}

func riskFactorNewClient(c domain.PurchaseConcentration) float64 {
	switch c {
	case domain.ConcentrationLinear:
		return 0.75
	case domain.ConcentrationMixed:
		return 0.35
	case domain.ConcentrationConcentrated:
		return 0.0
	default:
		return 0.5
	}
}

func areaFactor(area domain.GeographicArea) float64 {
	switch area {
	case domain.AreaSpain:
		return 1.0
	case domain.AreaEU:
		return 0.9
	case domain.AreaExport:
		return 0.7
	default:
		return 0.8
	}
}

// standardTermDays es el término de pago por defecto del área.
func standardTermDays(area domain.GeographicArea) int {
	switch area {
	case domain.AreaSpain:
		return 60
	case domain.AreaEU:
		return 90
	case domain.AreaExport:
		return 120
	default:
		return 60
	}
}

// baseTermDays es la base del cálculo de interés. A diferencia del
// término estándar, un área desconocida no tiene base.
func baseTermDays(area domain.GeographicArea) int {
	switch area {
	case domain.AreaSpain:
		return 60
	case domain.AreaEU:
		return 90
	case domain.AreaExport:
		return 120
	default:
		return 0
	}
}

// adjustTerm calcula el término de pago con el que el crédito actual
// soporta el potencial de ventas. El resultado de la fórmula se trunca
// al múltiplo de 30 inferior y se acota a [30, 360].
func adjustTerm(currentCredit, salesPotential float64, c domain.PurchaseConcentration, standardTerm int) int {
	if c == domain.ConcentrationConcentrated {
		if salesPotential > currentCredit {
			return 0
		}
		return standardTerm + 60
	}

	factor := riskFactorExistingClient(c)
	if currentCredit <= 0 || factor <= 0 {
		return MinPaymentTermDays
	}

	term := CommercialYearDays / (((salesPotential - currentCredit) / (currentCredit * factor)) + 1)
	days := int(math.Floor(term/PaymentTermStep)) * PaymentTermStep
	if days < MinPaymentTermDays {
		return MinPaymentTermDays
	}
	if days > MaxAdjustedTermDays {
		return MaxAdjustedTermDays
	}
	return days
}
