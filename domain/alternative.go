package domain

// AlternativeKind identifica la rama de negocio que produjo una
// alternativa. El enrutado posterior (notificaciones) decide por Kind,
// nunca por el id numérico.
type AlternativeKind string

const (
	KindEscalation           AlternativeKind = "escalation"
	KindCreditSufficient     AlternativeKind = "credit_sufficient"
	KindCreditInsufficient   AlternativeKind = "credit_insufficient"
	KindIncreaseCredit       AlternativeKind = "increase_credit"
	KindReduceTerm           AlternativeKind = "reduce_term"
	KindEarlyPaymentDiscount AlternativeKind = "early_payment_discount"
	KindAdjustedTerm         AlternativeKind = "adjusted_term"
	KindTermChange           AlternativeKind = "term_change"
	KindRequestedTerm        AlternativeKind = "requested_term"
	KindStandardTerm         AlternativeKind = "standard_term"
	KindImmediatePayment     AlternativeKind = "immediate_payment"
)

// Ids estables por rama, conservados por compatibilidad con el
// formulario histórico. No son una secuencia.
const (
	IDCreditSufficient     = 1
	IDCreditInsufficient   = 2
	IDIncreaseCredit       = 3
	IDReduceTerm           = 4
	IDEarlyPaymentDiscount = 5
	IDAdjustedTerm         = 6
	IDTermChange           = 7

	IDRequestedTerm    = 1
	IDStandardTerm     = 2
	IDImmediatePayment = 3

	IDEscalation = 99
)

// FinancingAlternative es una opción de financiación calculada.
// Rate es siempre no negativo; IsDiscount distingue descuento por
// pronto pago de interés. Credit en 0 significa "a definir".
// TermDays en 0 es un término real de pago inmediato (0 días) y se
// serializa siempre.
type FinancingAlternative struct {
	ID         int             `json:"id"`
	Kind       AlternativeKind `json:"kind"`
	Title      string          `json:"title"`
	Credit     float64         `json:"credito"`
	Rate       float64         `json:"interes"`
	IsDiscount bool            `json:"es_descuento"`
	TermDays   int             `json:"termino_pago"`
	Note       string          `json:"note,omitempty"`
}

// FinancingResult agrupa las alternativas ofrecidas, en el orden en que
// deben presentarse.
type FinancingResult struct {
	Alternatives []FinancingAlternative `json:"alternativas"`
}
