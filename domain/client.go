package domain

// Client es un registro del maestro de clientes actuales.
type Client struct {
	Code          string         `json:"codigo" db:"codigo"`
	LegalName     string         `json:"razon_social" db:"razon_social"`
	TaxID         string         `json:"nif" db:"nif"`
	Area          GeographicArea `json:"area" db:"area"`
	InsuredCredit float64        `json:"credito_asegurado" db:"credito_asegurado"`
	CompanyCredit float64        `json:"credito_empresa" db:"credito_empresa"`
	CurrentTerm   int            `json:"termino_pago" db:"termino_pago"`
}

type ExistingClientInput struct {
	ClientCode     string                `json:"codigo"`
	LegalName      string                `json:"razon_social"`
	TaxID          string                `json:"nif"`
	SalesPotential float64               `json:"potencial_ventas"`
	InsuredCredit  float64               `json:"credito_asegurado"`
	CompanyCredit  float64               `json:"credito_empresa"`
	RequestedTerm  int                   `json:"termino_pago"`
	CurrentTerm    int                   `json:"termino_actual"`
	Area           GeographicArea        `json:"area"`
	Concentration  PurchaseConcentration `json:"concentracion_compras"`
}

// NewClientInput describe un cliente potencial sin historial de
// crédito. Area llega tal cual se capturó en el formulario y se
// resuelve junto con el país.
type NewClientInput struct {
	LegalName      string                `json:"razon_social"`
	TaxID          string                `json:"cif"`
	Area           string                `json:"area"`
	Country        string                `json:"pais"`
	SalesPotential float64               `json:"potencial_ventas"`
	RequestedTerm  int                   `json:"termino_pago"`
	Concentration  PurchaseConcentration `json:"concentracion_compras"`
}
