package repository

import "financing-calculator/domain"

// ConditionRepositoryMemory holds the program conditions in memory,
// seeded with the standard catalog.
type ConditionRepositoryMemory struct {
	conditions []domain.Condition
}

// NewConditionRepositoryMemory creates the catalog with the standard
// Program-12/18/24 conditions.
func NewConditionRepositoryMemory() *ConditionRepositoryMemory {
	return &ConditionRepositoryMemory{
		conditions: []domain.Condition{
			{Label: "Program-12", Rate: 3.5, MinAmount: 10000, MinDownPayment: 0.15},
			{Label: "Program-18", Rate: 4.25, MinAmount: 20000, MinDownPayment: 0.20},
			{Label: "Program-24", Rate: 5.0, MinAmount: 30000, MinDownPayment: 0.25},
		},
	}
}

func (r *ConditionRepositoryMemory) FindByLabel(label string) (domain.Condition, error) {
	for _, c := range r.conditions {
		if c.Label == label {
			return c, nil
		}
	}
	return domain.Condition{}, domain.ErrProgramaNoEncontrado
}

func (r *ConditionRepositoryMemory) All() []domain.Condition {
	out := make([]domain.Condition, len(r.conditions))
	copy(out, r.conditions)
	return out
}
