package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"financing-calculator/repository"
	"financing-calculator/service"
)

func newTestProjectHandler() *ProjectHandler {
	svc := service.NewProjectService(
		repository.NewConditionRepositoryMemory(),
		repository.NewCalculationRepositoryMemory(),
	)
	return NewProjectHandler(svc)
}

func TestProjectHandler_OK(t *testing.T) {
	handler := newTestProjectHandler()

	body := []byte(`{
		"razon_social": "Invernaderos del Sureste S.A.",
		"direccion": "Polígono Industrial Oeste, Murcia",
		"nif": "A11223344",
		"importe_proyecto": 25000,
		"plazo_meses": 18,
		"interes": 4.25,
		"fecha_vencimiento": "2027-06-30"
	}`)

	req := httptest.NewRequest(http.MethodPost, "/financing/project", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	handler.Calculate(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("opciones_pago")) {
		t.Errorf("expected installment plans in response: %s", w.Body.String())
	}
}

func TestProjectHandler_UnknownProgramIs404(t *testing.T) {
	handler := newTestProjectHandler()

	body := []byte(`{
		"razon_social": "Invernaderos del Sureste S.A.",
		"direccion": "Polígono Industrial Oeste, Murcia",
		"nif": "A11223344",
		"importe_proyecto": 25000,
		"plazo_meses": 36,
		"interes": 4.25,
		"fecha_vencimiento": "2027-06-30"
	}`)

	req := httptest.NewRequest(http.MethodPost, "/financing/project", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	handler.Calculate(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestProjectHandler_BelowMinimumIs400(t *testing.T) {
	handler := newTestProjectHandler()

	body := []byte(`{
		"razon_social": "Invernaderos del Sureste S.A.",
		"direccion": "Polígono Industrial Oeste, Murcia",
		"nif": "A11223344",
		"importe_proyecto": 5000,
		"plazo_meses": 12,
		"interes": 3.5,
		"fecha_vencimiento": "2027-06-30"
	}`)

	req := httptest.NewRequest(http.MethodPost, "/financing/project", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	handler.Calculate(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("Program-12")) {
		t.Errorf("expected program label in error: %s", w.Body.String())
	}
}

func TestProjectHandler_Conditions(t *testing.T) {
	handler := newTestProjectHandler()

	req := httptest.NewRequest(http.MethodGet, "/catalog/conditions", nil)
	w := httptest.NewRecorder()

	handler.Conditions(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("Program-24")) {
		t.Errorf("expected program catalog in response: %s", w.Body.String())
	}
}
