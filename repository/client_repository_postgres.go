package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"financing-calculator/domain"
)

// ClientRepositoryPostgres reads the client roster from PostgreSQL.
type ClientRepositoryPostgres struct {
	db *sqlx.DB
}

func NewClientRepositoryPostgres(db *sqlx.DB) *ClientRepositoryPostgres {
	return &ClientRepositoryPostgres{db: db}
}

func (r *ClientRepositoryPostgres) FindByCode(code string) (domain.Client, error) {
	var client domain.Client
	err := r.db.Get(&client,
		`SELECT codigo, razon_social, nif, area, credito_asegurado, credito_empresa, termino_pago
		   FROM clientes
		  WHERE codigo = $1`, code)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Client{}, domain.ErrClienteNoEncontrado
	}
	if err != nil {
		return domain.Client{}, fmt.Errorf("failed to load client %s: %w", code, err)
	}
	return client, nil
}
