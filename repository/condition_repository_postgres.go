package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"

	"financing-calculator/domain"
)

// ConditionRepositoryPostgres reads the program condition catalog from
// PostgreSQL.
type ConditionRepositoryPostgres struct {
	db *sqlx.DB
}

func NewConditionRepositoryPostgres(db *sqlx.DB) *ConditionRepositoryPostgres {
	return &ConditionRepositoryPostgres{db: db}
}

func (r *ConditionRepositoryPostgres) FindByLabel(label string) (domain.Condition, error) {
	var condition domain.Condition
	err := r.db.Get(&condition,
		`SELECT programa, interes, min_importe, min_aporte
		   FROM condiciones_programa
		  WHERE programa = $1`, label)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Condition{}, domain.ErrProgramaNoEncontrado
	}
	if err != nil {
		return domain.Condition{}, fmt.Errorf("failed to load program %s: %w", label, err)
	}
	return condition, nil
}

func (r *ConditionRepositoryPostgres) All() []domain.Condition {
	var conditions []domain.Condition
	err := r.db.Select(&conditions,
		`SELECT programa, interes, min_importe, min_aporte
		   FROM condiciones_programa
		  ORDER BY programa`)
	if err != nil {
		log.Printf("Warning: failed to list program conditions: %v", err)
		return nil
	}
	return conditions
}
