package http

import (
	"log"
	"net/http"

	json "github.com/goccy/go-json"

	"financing-calculator/domain"
	"financing-calculator/service"
)

type NotificationHandler struct {
	service *service.NotificationService
}

func NewNotificationHandler(service *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// NotifyResponse informa del resultado de la entrega. Un fallo en la
// entrega no es un error del cálculo: el correo compuesto se devuelve
// igualmente.
type NotifyResponse struct {
	Sent         bool                `json:"enviado"`
	Notification domain.Notification `json:"notificacion"`
	Error        string              `json:"error,omitempty"`
}

func (h *NotificationHandler) Notify(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req domain.NotificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("Error decoding request body: %v", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	notification, err := h.service.Notify(req)
	if err != nil && notification == (domain.Notification{}) {
		// La composición falló: no hay nada que entregar.
		writeServiceError(w, err)
		return
	}

	response := NotifyResponse{Sent: err == nil, Notification: notification}
	if err != nil {
		response.Error = err.Error()
	}

	writeJSON(w, response)
}
