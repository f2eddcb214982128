package domain

// GeographicArea determina el término de pago estándar y la base del
// cálculo de interés.
type GeographicArea string

const (
	AreaSpain  GeographicArea = "España"
	AreaEU     GeographicArea = "UE"
	AreaExport GeographicArea = "Export"
)

// PurchaseConcentration describe cómo se reparten las compras anuales
// del cliente a lo largo del año.
type PurchaseConcentration string

const (
	ConcentrationLinear       PurchaseConcentration = "A" // ventas lineales
	ConcentrationMixed        PurchaseConcentration = "B" // entre 40% y 80% en 2 meses
	ConcentrationConcentrated PurchaseConcentration = "C" // mayor o igual a 80% en 2 meses
)

// GeographyCatalog relaciona cada área geográfica con sus países y cada
// país con la etiqueta de su identificación fiscal.
type GeographyCatalog struct {
	Areas       []GeographicArea            `json:"areas"`
	Countries   map[GeographicArea][]string `json:"paises"`
	TaxIDLabels map[string]string           `json:"codigo_fiscal"`
}
