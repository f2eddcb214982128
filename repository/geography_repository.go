package repository

import "financing-calculator/domain"

// GeographyRepository es el catálogo de áreas geográficas, países y
// etiquetas de identificación fiscal.
type GeographyRepository interface {
	Catalog() domain.GeographyCatalog
	TaxIDLabel(country string) string
}

// GeographyRepositoryMemory sirve el catálogo fijo por defecto, usado
// cuando no hay un catálogo externo cargado.
type GeographyRepositoryMemory struct {
	catalog domain.GeographyCatalog
}

func NewGeographyRepositoryMemory() *GeographyRepositoryMemory {
	return &GeographyRepositoryMemory{
		catalog: domain.GeographyCatalog{
			Areas: []domain.GeographicArea{domain.AreaSpain, domain.AreaEU, domain.AreaExport},
			Countries: map[domain.GeographicArea][]string{
				domain.AreaSpain:  {"España"},
				domain.AreaEU:     {"Alemania", "Francia", "Italia", "Portugal", "Otros UE"},
				domain.AreaExport: {"Estados Unidos", "México", "Marruecos", "China", "Otros Export"},
			},
			TaxIDLabels: map[string]string{
				"España":         "CIF/NIF",
				"Alemania":       "Tax ID",
				"Francia":        "SIRET",
				"Italia":         "Codice Fiscale",
				"Portugal":       "NIF",
				"Estados Unidos": "EIN",
				"México":         "RFC",
				"Marruecos":      "ICE",
				"China":          "TIN",
				"Otros UE":       "VAT Number",
				"Otros Export":   "Tax ID",
			},
		},
	}
}

func (r *GeographyRepositoryMemory) Catalog() domain.GeographyCatalog {
	return r.catalog
}

// TaxIDLabel devuelve la etiqueta fiscal del país, o la genérica si el
// país no está en el catálogo.
func (r *GeographyRepositoryMemory) TaxIDLabel(country string) string {
	if label, ok := r.catalog.TaxIDLabels[country]; ok {
		return label
	}
	return "NIF/CIF"
}
