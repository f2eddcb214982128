package http

import (
	"errors"
	"net/http"

	"financing-calculator/domain"
)

// writeServiceError traduce el fallo del servicio a un estado HTTP:
// 404 para consultas sin resultado, 400 para el resto (validación y
// umbrales de importe).
func writeServiceError(w http.ResponseWriter, err error) {
	status := http.StatusBadRequest
	if errors.Is(err, domain.ErrClienteNoEncontrado) || errors.Is(err, domain.ErrProgramaNoEncontrado) {
		status = http.StatusNotFound
	}
	http.Error(w, err.Error(), status)
}
