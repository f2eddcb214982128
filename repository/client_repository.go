package repository

import "financing-calculator/domain"

// ClientRepository es el maestro de clientes actuales. FindByCode
// devuelve domain.ErrClienteNoEncontrado cuando el código no existe.
type ClientRepository interface {
	FindByCode(code string) (domain.Client, error)
}
