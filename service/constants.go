package service

const (
	MinPaymentTermDays = 30
	MaxPaymentTermDays = 270
	PaymentTermStep    = 30

	// Términos que se derivan al Departamento de Créditos en lugar de
	// calcularse.
	EscalationTermMin = 240

	MaxAdjustedTermDays = 360
	CommercialYearDays  = 360

	// Recargo anualizado aplicado por cada día de desviación sobre el
	// término base del área.
	TermRateSlope = 0.05

	// Prima de riesgo cuando el cliente no tiene crédito asegurado.
	UninsuredRiskPremium = 0.01

	// Fracción del crédito a término estándar ofrecida en pago inmediato.
	ImmediatePaymentCreditShare = 0.8

	MaxProjectRate = 10.0
)
