package repository

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// CalculationRepositoryMemory is an in-memory implementation of
// CalculationRepository.
type CalculationRepositoryMemory struct {
	mu      sync.Mutex
	records []CalculationRecord
}

// NewCalculationRepositoryMemory creates a new in-memory calculation
// history.
func NewCalculationRepositoryMemory() *CalculationRepositoryMemory {
	return &CalculationRepositoryMemory{
		records: []CalculationRecord{},
	}
}

// Save stores the calculation in memory under a fresh record id.
func (r *CalculationRepositoryMemory) Save(kind string, input any, result any) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = append(r.records, CalculationRecord{
		ID:        uuid.New().String(),
		Kind:      kind,
		Input:     input,
		Result:    result,
		CreatedAt: time.Now().UTC(),
	})
	return nil
}

// Records devuelve una copia del histórico.
func (r *CalculationRepositoryMemory) Records() []CalculationRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]CalculationRecord, len(r.records))
	copy(out, r.records)
	return out
}
