package repository

import "time"

// CalculationRecord es una entrada del histórico de cálculos.
type CalculationRecord struct {
	ID        string
	Kind      string
	Input     any
	Result    any
	CreatedAt time.Time
}

// CalculationRepository guarda el histórico de cálculos realizados. Un
// fallo al guardar no debe interrumpir el cálculo.
type CalculationRepository interface {
	Save(kind string, input any, result any) error
}
