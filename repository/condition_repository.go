package repository

import "financing-calculator/domain"

// ConditionRepository es el catálogo de condiciones de los programas de
// financiación de proyectos. FindByLabel devuelve
// domain.ErrProgramaNoEncontrado cuando la etiqueta no existe.
type ConditionRepository interface {
	FindByLabel(label string) (domain.Condition, error)
	All() []domain.Condition
}
