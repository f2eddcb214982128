package repository

import "financing-calculator/domain"

// ClientRepositoryMemory is an in-memory implementation of
// ClientRepository, seeded with the demo roster.
type ClientRepositoryMemory struct {
	clients map[string]domain.Client
}

// NewClientRepositoryMemory creates a roster with the demo clients.
func NewClientRepositoryMemory() *ClientRepositoryMemory {
	seed := []domain.Client{
		{
			Code:          "100001",
			LegalName:     "Agrícola Moderna S.L.",
			TaxID:         "B12345678",
			Area:          domain.AreaSpain,
			InsuredCredit: 50000,
			CompanyCredit: 20000,
			CurrentTerm:   60,
		},
		{
			Code:          "100002",
			LegalName:     "Riegos Europeos GmbH",
			TaxID:         "X87654321",
			Area:          domain.AreaEU,
			InsuredCredit: 75000,
			CompanyCredit: 25000,
			CurrentTerm:   90,
		},
		{
			Code:          "100003",
			LegalName:     "Desert Irrigation LLC",
			TaxID:         "Y65432109",
			Area:          domain.AreaExport,
			InsuredCredit: 100000,
			CompanyCredit: 0,
			CurrentTerm:   120,
		},
	}

	clients := make(map[string]domain.Client, len(seed))
	for _, c := range seed {
		clients[c.Code] = c
	}
	return &ClientRepositoryMemory{clients: clients}
}

func (r *ClientRepositoryMemory) FindByCode(code string) (domain.Client, error) {
	client, ok := r.clients[code]
	if !ok {
		return domain.Client{}, domain.ErrClienteNoEncontrado
	}
	return client, nil
}
