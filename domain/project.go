package domain

type ProjectInput struct {
	LegalName    string  `json:"razon_social"`
	Address      string  `json:"direccion"`
	TaxID        string  `json:"nif"`
	Amount       float64 `json:"importe_proyecto"`
	TermMonths   int     `json:"plazo_meses"` // 12, 18 o 24
	ProposedRate float64 `json:"interes"`
	DueDate      string  `json:"fecha_vencimiento"`
}

type InstallmentPlan struct {
	Label  string  `json:"tipo"`
	Count  int     `json:"cuotas"`
	Amount float64 `json:"cuota"`
}

type ProjectResult struct {
	LegalName     string            `json:"razon_social"`
	Address       string            `json:"direccion"`
	TaxID         string            `json:"nif"`
	Amount        float64           `json:"importe_proyecto"`
	DownPayment   float64           `json:"importe_aporte"`
	CreditAmount  float64           `json:"importe_credito"`
	TotalInterest float64           `json:"interes_total"`
	TotalPayable  float64           `json:"importe_total"`
	Plans         []InstallmentPlan `json:"opciones_pago"`
}

// Condition son las condiciones de un programa de financiación de
// proyectos, identificado por su etiqueta (Program-12, Program-18,
// Program-24).
type Condition struct {
	Label          string  `json:"programa" db:"programa"`
	Rate           float64 `json:"interes" db:"interes"`
	MinAmount      float64 `json:"min_importe" db:"min_importe"`
	MinDownPayment float64 `json:"min_aporte" db:"min_aporte"`
}
