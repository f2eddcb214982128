package http

import (
	"log"
	"net/http"
	"strings"

	json "github.com/goccy/go-json"

	"financing-calculator/domain"
	"financing-calculator/service"
)

type NewClientHandler struct {
	service *service.NewClientService
}

func NewNewClientHandler(service *service.NewClientService) *NewClientHandler {
	return &NewClientHandler{service: service}
}

func (h *NewClientHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	contentType := r.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return
	}

	var input domain.NewClientInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Printf("Error decoding request body: %v", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.Calculate(input)
	if err != nil {
		log.Printf("Error calculating financing: %v", err)
		writeServiceError(w, err)
		return
	}

	writeJSON(w, result)
}

// GeographyCatalog devuelve las áreas, los países por área y las
// etiquetas de identificación fiscal.
func (h *NewClientHandler) GeographyCatalog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, h.service.Catalog())
}
