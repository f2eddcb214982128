package domain

// Notification es el correo ya compuesto. El motor no lo envía; lo
// entrega a un colaborador de correo.
type Notification struct {
	To      string `json:"para"`
	Subject string `json:"asunto"`
	Body    string `json:"cuerpo"`
}

// NotificationRequest es la alternativa elegida junto con los datos de
// la solicitud original.
type NotificationRequest struct {
	Alternative FinancingAlternative `json:"alternativa"`
	LegalName   string               `json:"razon_social"`
	ClientCode  string               `json:"codigo"`
	Country     string               `json:"pais"`
	TaxID       string               `json:"nif"`
	IsNewClient bool                 `json:"nuevo_cliente"`
}
