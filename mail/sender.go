package mail

import (
	"log"

	"financing-calculator/domain"
)

// Sender entrega una notificación ya compuesta. El motor de cálculo no
// envía correo: delega en esta interfaz.
type Sender interface {
	Send(notification domain.Notification) error
}

// ConsoleSender escribe el correo en el log en lugar de enviarlo. Es la
// implementación por defecto cuando no hay un sistema de correo
// configurado.
type ConsoleSender struct{}

func NewConsoleSender() *ConsoleSender {
	return &ConsoleSender{}
}

func (s *ConsoleSender) Send(notification domain.Notification) error {
	log.Printf("Correo preparado para %s: %s\n%s", notification.To, notification.Subject, notification.Body)
	return nil
}
