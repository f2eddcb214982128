package domain

import "errors"

// Fallos de consulta, distintos de los fallos de validación. Se
// comparan con errors.Is en la capa HTTP.
var (
	ErrClienteNoEncontrado  = errors.New("cliente no encontrado")
	ErrProgramaNoEncontrado = errors.New("programa de financiación no encontrado")
	ErrImporteMinimo        = errors.New("importe inferior al mínimo del programa")
)
