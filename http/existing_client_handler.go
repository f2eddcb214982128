package http

import (
	"bytes"
	"log"
	"net/http"
	"strings"

	json "github.com/goccy/go-json"

	"financing-calculator/domain"
	"financing-calculator/service"
)

type ExistingClientHandler struct {
	service *service.ExistingClientService
}

func NewExistingClientHandler(service *service.ExistingClientService) *ExistingClientHandler {
	return &ExistingClientHandler{service: service}
}

func (h *ExistingClientHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Validar Content-Type
	contentType := r.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return
	}

	var input domain.ExistingClientInput
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

// LookupClient busca un cliente en el maestro por código.
func (h *ExistingClientHandler) LookupClient(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	code := r.URL.Query().Get("codigo")
	client, err := h.service.LookupClient(code)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, client)
}

// writeJSON codifica en buffer primero para no escribir cabeceras si la
// codificación falla.
func writeJSON(w http.ResponseWriter, payload any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		log.Printf("Error encoding response: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("Error writing response: %v", err)
	}
}
