package service

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	json "github.com/goccy/go-json"

	"financing-calculator/domain"
)

type AIService struct {
	apiKey     string
	apiURL     string
	enabled    bool
	httpClient *http.Client
}

type OpenAIRequest struct {
	Model     string    `json:"model"`
	Messages  []Message `json:"messages"`
	MaxTokens int       `json:"max_tokens,omitempty"`
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type OpenAIResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

func NewAIService() *AIService {
	apiKey := os.Getenv("OPENAI_API_KEY")
	enabled := apiKey != ""

	return &AIService{
		apiKey:  apiKey,
		apiURL:  "https://api.openai.com/v1/chat/completions",
		enabled: enabled,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// GenerateAlternativeExplanation genera una explicación de la
// alternativa elegida para incluirla en la notificación. Sin servicio
// habilitado, o si la llamada falla, devuelve la explicación fija.
func (s *AIService) GenerateAlternativeExplanation(
	alternative domain.FinancingAlternative,
	legalName string,
	isNewClient bool,
) string {
	if !s.enabled {
		return s.generateFallbackExplanation(alternative, legalName, isNewClient)
	}

	clientType := "cliente actual"
	if isNewClient {
		clientType = "nuevo cliente"
	}

	rateLabel := "interés"
	if alternative.IsDiscount {
		rateLabel = "descuento por pronto pago"
	}

	prompt := fmt.Sprintf(`Analiza esta alternativa de financiación comercial y genera una explicación breve para el gestor que tramitará la solicitud.

CONTEXTO:
- Cliente: %s (%s)
- Alternativa seleccionada: %s
- Crédito: %.2f €
- %s: %.2f%%
- Término de pago: %dD

INSTRUCCIONES:
1. Explica en qué consiste la alternativa y qué implica para la relación comercial con el cliente.
2. Menciona el crédito y el %s con sus cifras exactas.
3. Sé claro y profesional.

Genera una explicación de 2-3 oraciones en español.`,
		legalName, clientType,
		alternative.Title,
		alternative.Credit,
		rateLabel, alternative.Rate,
		alternative.TermDays,
		rateLabel)

	explanation, err := s.callLLM(prompt)
	if err != nil {
		log.Printf("Error calling AI service for alternative explanation: %v", err)
		return s.generateFallbackExplanation(alternative, legalName, isNewClient)
	}

	return explanation
}

func (s *AIService) generateFallbackExplanation(
	alternative domain.FinancingAlternative,
	legalName string,
	isNewClient bool,
) string {
	clientType := "cliente actual"
	if isNewClient {
		clientType = "nuevo cliente"
	}

	rateLabel := "un interés"
	if alternative.IsDiscount {
		rateLabel = "un descuento por pronto pago"
	}

	return fmt.Sprintf("La alternativa \"%s\" para %s (%s) contempla un crédito de %.2f € con %s del %.2f%% a un término de pago de %dD. Revise las condiciones con el cliente antes de tramitar la solicitud.",
		alternative.Title, legalName, clientType,
		alternative.Credit, rateLabel, alternative.Rate, alternative.TermDays)
}

func (s *AIService) callLLM(prompt string) (string, error) {
	reqBody := OpenAIRequest{
		Model: "gpt-4o-mini",
		Messages: []Message{
			{
				Role:    "system",
				Content: "Eres un asesor de crédito comercial de una empresa industrial española. Redactas explicaciones claras y precisas en español sobre alternativas de financiación a clientes: límites de crédito, términos de pago, intereses y descuentos por pronto pago. Tus explicaciones ayudan al equipo comercial a tramitar solicitudes de financiación.",
			},
			{
				Role:    "user",
				Content: prompt,
			},
		},
		MaxTokens: 200,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest("POST", s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", s.apiKey))

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	var openAIResp OpenAIResponse
	if err := json.NewDecoder(resp.Body).Decode(&openAIResp); err != nil {
		return "", err
	}

	if len(openAIResp.Choices) == 0 {
		return "", fmt.Errorf("no response from AI")
	}

	return openAIResp.Choices[0].Message.Content, nil
}
