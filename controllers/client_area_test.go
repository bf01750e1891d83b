package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/m3pixel-crypto/mecanicomotosaodomicilio/config"
	"github.com/m3pixel-crypto/mecanicomotosaodomicilio/models"
	"github.com/m3pixel-crypto/mecanicomotosaodomicilio/routes"
)

func setupTestServer(t *testing.T) (*gin.Engine, *stubMailer) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Motorcycle{}, &models.ServiceRecord{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	cfg := &config.Config{
		JWTSecret:      "test-secret",
		WorkshopEmail:  "workshop@mototech.pt",
		WhatsAppNumber: "351910392073",
		AllowedOrigin:  "*",
	}

	mailer := &stubMailer{}
	r := gin.New()
	r.Use(routes.SetupCORS(cfg.AllowedOrigin))
	routes.SetupRoutes(r, db, cfg, mailer)
	return r, mailer
}

func performRequest(r http.Handler, method, path string, body io.Reader, token string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return bytes.NewReader(b)
}

func registerAndLogin(t *testing.T, r http.Handler) string {
	t.Helper()

	rec := performRequest(r, http.MethodPost, "/api/v1/auth/register", jsonBody(t, map[string]string{
		"name":             "Cliente Demo",
		"email":            "demo@mototech.pt",
		"password":         "password123",
		"confirm_password": "password123",
	}), "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("register failed: %d %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
	}
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Token == "" {
		t.Fatalf("empty token in register response: %s", rec.Body.String())
	}
	return resp.Token
}

func TestClientAreaRequiresAuth(t *testing.T) {
	r, _ := setupTestServer(t)

	rec := performRequest(r, http.MethodGet, "/api/v1/motorcycles", nil, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}
}

func TestRegisterSendsWelcomeEmail(t *testing.T) {
	r, mailer := setupTestServer(t)
	registerAndLogin(t, r)

	// Welcome mail is fire-and-forget; the goroutine normally wins this
	// race because the stub does no I/O, but don't fail the suite on it
	if mailer.welcomeCount() > 1 {
		t.Fatalf("expected at most one welcome mail, got %d", mailer.welcomeCount())
	}
}

func TestSignupRejectsPasswordMismatch(t *testing.T) {
	r, _ := setupTestServer(t)

	rec := performRequest(r, http.MethodPost, "/api/v1/auth/register", jsonBody(t, map[string]string{
		"name":             "Cliente Demo",
		"email":            "demo@mototech.pt",
		"password":         "password123",
		"confirm_password": "different123",
	}), "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Fields map[string]string `json:"fields"`
	}
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if _, ok := resp.Fields["confirm_password"]; !ok {
		t.Fatalf("expected error on confirm_password, got %s", rec.Body.String())
	}
}

func TestLoginWrongPassword(t *testing.T) {
	r, _ := setupTestServer(t)
	registerAndLogin(t, r)

	rec := performRequest(r, http.MethodPost, "/api/v1/auth/login", jsonBody(t, map[string]string{
		"email":    "demo@mototech.pt",
		"password": "wrong-password",
	}), "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if !bytes.Contains(rec.Body.Bytes(), []byte("Email ou password incorretos")) {
		t.Fatalf("expected friendly credential message, got %s", rec.Body.String())
	}
}

func TestGarageAndHistoryFlow(t *testing.T) {
	r, _ := setupTestServer(t)
	token := registerAndLogin(t, r)

	// Add a motorcycle
	rec := performRequest(r, http.MethodPost, "/api/v1/motorcycles", jsonBody(t, map[string]any{
		"brand":      "Yamaha",
		"model":      "MT-07",
		"year":       2020,
		"plate":      "AA-01-BB",
		"current_km": 12500,
	}), token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create motorcycle failed: %d %s", rec.Code, rec.Body.String())
	}
	var moto models.Motorcycle
	_ = json.Unmarshal(rec.Body.Bytes(), &moto)

	// Log a service at 12000 km
	rec = performRequest(r, http.MethodPost, "/api/v1/motorcycles/"+moto.ID+"/services", jsonBody(t, map[string]any{
		"service_date":        "2026-05-10",
		"service_description": "Revisão Completa",
		"km_at_service":       12000,
	}), token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create service failed: %d %s", rec.Code, rec.Body.String())
	}
	var record models.ServiceRecord
	_ = json.Unmarshal(rec.Body.Bytes(), &record)
	if record.Source != models.SourceCustomer {
		t.Fatalf("client-created records must carry the customer tag, got %q", record.Source)
	}

	// Garage view derives the km-to-next-service metric
	rec = performRequest(r, http.MethodGet, "/api/v1/motorcycles", nil, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("list motorcycles failed: %d %s", rec.Code, rec.Body.String())
	}
	var views []struct {
		models.Motorcycle
		ServicesCount   int `json:"services_count"`
		KmToNextService int `json:"km_to_next_service"`
	}
	_ = json.Unmarshal(rec.Body.Bytes(), &views)
	if len(views) != 1 {
		t.Fatalf("expected one motorcycle, got %d", len(views))
	}
	if views[0].KmToNextService != 4500 {
		t.Fatalf("expected 4500 km to next service, got %d", views[0].KmToNextService)
	}
	if views[0].ServicesCount != 1 {
		t.Fatalf("expected one service, got %d", views[0].ServicesCount)
	}

	// Update the odometer; owner and id stay immutable
	rec = performRequest(r, http.MethodPut, "/api/v1/motorcycles/"+moto.ID, jsonBody(t, map[string]any{
		"current_km": 16800,
	}), token)
	if rec.Code != http.StatusOK {
		t.Fatalf("update motorcycle failed: %d %s", rec.Code, rec.Body.String())
	}
	var updated models.Motorcycle
	_ = json.Unmarshal(rec.Body.Bytes(), &updated)
	if updated.CurrentKm != 16800 || updated.Brand != "Yamaha" {
		t.Fatalf("unexpected update result: %+v", updated)
	}

	// 16800 - 12000 = 4800 since service, 200 to go
	rec = performRequest(r, http.MethodGet, "/api/v1/motorcycles", nil, token)
	_ = json.Unmarshal(rec.Body.Bytes(), &views)
	if views[0].KmToNextService != 200 {
		t.Fatalf("expected 200 km to next service, got %d", views[0].KmToNextService)
	}

	// Delete the service record
	rec = performRequest(r, http.MethodDelete, "/api/v1/services/"+record.ID, nil, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete service failed: %d %s", rec.Code, rec.Body.String())
	}

	// Delete the motorcycle
	rec = performRequest(r, http.MethodDelete, "/api/v1/motorcycles/"+moto.ID, nil, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete motorcycle failed: %d %s", rec.Code, rec.Body.String())
	}

	rec = performRequest(r, http.MethodGet, "/api/v1/motorcycles", nil, token)
	_ = json.Unmarshal(rec.Body.Bytes(), &views)
	if len(views) != 0 {
		t.Fatalf("expected empty garage after delete, got %d", len(views))
	}
}

func TestHistoryScopedToOwner(t *testing.T) {
	r, _ := setupTestServer(t)
	token := registerAndLogin(t, r)

	// Second user
	rec := performRequest(r, http.MethodPost, "/api/v1/auth/register", jsonBody(t, map[string]string{
		"name":             "Outro Cliente",
		"email":            "outro@mototech.pt",
		"password":         "password123",
		"confirm_password": "password123",
	}), "")
	var other struct {
		Token string `json:"token"`
	}
	_ = json.Unmarshal(rec.Body.Bytes(), &other)

	rec = performRequest(r, http.MethodPost, "/api/v1/motorcycles", jsonBody(t, map[string]any{
		"brand":      "Honda",
		"model":      "CB500F",
		"year":       2019,
		"plate":      "BB-02-CC",
		"current_km": 8000,
	}), token)
	var moto models.Motorcycle
	_ = json.Unmarshal(rec.Body.Bytes(), &moto)

	// The other user cannot read or write this motorcycle's history
	rec = performRequest(r, http.MethodGet, "/api/v1/motorcycles/"+moto.ID+"/services", nil, other.Token)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for foreign history, got %d", rec.Code)
	}

	rec = performRequest(r, http.MethodPost, "/api/v1/motorcycles/"+moto.ID+"/services", jsonBody(t, map[string]any{
		"service_date":        "2026-05-10",
		"service_description": "Troca de óleo",
		"km_at_service":       7500,
	}), other.Token)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 writing foreign history, got %d", rec.Code)
	}
}

func TestBookingCompose(t *testing.T) {
	r, _ := setupTestServer(t)

	rec := performRequest(r, http.MethodPost, "/api/v1/bookings/compose", jsonBody(t, map[string]string{
		"name":     "Cliente Demo",
		"phone":    "912345678",
		"email":    "demo@mototech.pt",
		"service":  "Revisão Completa",
		"date":     "2030-05-06",
		"time":     "10:00",
		"location": "Rua das Flores 1, Montijo",
	}), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("compose failed: %d %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Message     string `json:"message"`
		WhatsAppURL string `json:"whatsapp_url"`
	}
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if !bytes.Contains([]byte(resp.Message), []byte("06/05/2030")) {
		t.Fatalf("expected formatted date in message: %s", resp.Message)
	}
	if !bytes.Contains([]byte(resp.WhatsAppURL), []byte("https://wa.me/351910392073?text=")) {
		t.Fatalf("unexpected deep link: %s", resp.WhatsAppURL)
	}
}

func TestPreflightAnsweredEmpty(t *testing.T) {
	r, _ := setupTestServer(t)

	rec := performRequest(r, http.MethodOptions, "/api/v1/notifications/contact", nil, "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204 for preflight, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("expected empty preflight body, got %s", rec.Body.String())
	}
	if rec.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Fatal("expected CORS headers on preflight response")
	}
}
