package relay

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/fire_reporting_system/internal/config"
	"github.com/shenikar/fire_reporting_system/internal/models"
	"github.com/shenikar/fire_reporting_system/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestWorker собирает Worker без Redis: тесты зовут Deliver напрямую
func newTestWorker(t *testing.T, cfg *config.Config) *Worker {
	t.Helper()
	if cfg.RelayTimeout == 0 {
		cfg.RelayTimeout = 5 * time.Second
	}
	return NewWorker(nil, logger.NewSilent(), cfg)
}

func newTestReport() *models.FireReport {
	return &models.FireReport{
		ID:          uuid.New(),
		Severity:    models.SeverityMajor,
		Description: "Warehouse on fire",
		Location: models.Location{
			Latitude:  23.8103,
			Longitude: 90.4125,
			Address:   "Mirpur, Dhaka",
		},
		PeopleTrapped:         models.TriStateUnknown,
		HasHazardousMaterials: models.TriStateUnknown,
		Language:              models.LanguageEnglish,
		CreatedAt:             time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC),
	}
}

func TestDeliver_PrimarySuccess(t *testing.T) {
	// Подготовка
	var primaryCalls, fallbackCalls atomic.Int32

	primary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		primaryCalls.Add(1)

		var payload sheetPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "sheet-1", payload.SpreadsheetID)
		assert.Len(t, payload.Data, 14)

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(sheetResponse{Status: "success"})
	}))
	defer primary.Close()

	fallback := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fallbackCalls.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer fallback.Close()

	worker := newTestWorker(t, &config.Config{
		SheetsScriptURL:    primary.URL,
		SpreadsheetID:      "sheet-1",
		FallbackWebhookURL: fallback.URL,
	})

	// Действие
	worker.Deliver(context.Background(), newTestReport())

	// Проверки
	assert.Equal(t, int32(1), primaryCalls.Load())
	assert.Equal(t, int32(0), fallbackCalls.Load())
}

func TestDeliver_FallbackAfterPrimaryFailure(t *testing.T) {
	// Подготовка
	var fallbackCalls atomic.Int32
	report := newTestReport()

	primary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer primary.Close()

	fallback := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fallbackCalls.Add(1)

		// Запасной вебхук получает необработанный отчет, а не строку таблицы
		var received models.FireReport
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		assert.Equal(t, report.ID, received.ID)
		assert.Equal(t, report.Description, received.Description)

		w.WriteHeader(http.StatusOK)
	}))
	defer fallback.Close()

	worker := newTestWorker(t, &config.Config{
		SheetsScriptURL:    primary.URL,
		SpreadsheetID:      "sheet-1",
		FallbackWebhookURL: fallback.URL,
	})

	// Действие
	worker.Deliver(context.Background(), report)

	// Проверки
	assert.Equal(t, int32(1), fallbackCalls.Load())
}

func TestDeliver_FallbackWhenPrimaryRejects(t *testing.T) {
	// Подготовка
	// Скрипт таблицы отвечает 200, но со статусом error в теле
	var fallbackCalls atomic.Int32

	primary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(sheetResponse{Status: "error", Message: "bad row"})
	}))
	defer primary.Close()

	fallback := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fallbackCalls.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer fallback.Close()

	worker := newTestWorker(t, &config.Config{
		SheetsScriptURL:    primary.URL,
		SpreadsheetID:      "sheet-1",
		FallbackWebhookURL: fallback.URL,
	})

	// Действие
	worker.Deliver(context.Background(), newTestReport())

	// Проверки
	assert.Equal(t, int32(1), fallbackCalls.Load())
}

func TestDeliver_UnparseableBodyIsProvisionalSuccess(t *testing.T) {
	// Подготовка
	var fallbackCalls atomic.Int32

	primary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<html>redirect page</html>"))
	}))
	defer primary.Close()

	fallback := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fallbackCalls.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer fallback.Close()

	worker := newTestWorker(t, &config.Config{
		SheetsScriptURL:    primary.URL,
		SpreadsheetID:      "sheet-1",
		FallbackWebhookURL: fallback.URL,
	})

	// Действие
	worker.Deliver(context.Background(), newTestReport())

	// Проверки
	assert.Equal(t, int32(0), fallbackCalls.Load())
}

func TestDeliver_FallbackSignature(t *testing.T) {
	// Подготовка
	var signature atomic.Value

	fallback := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		signature.Store(r.Header.Get("X-Webhook-Signature"))
		w.WriteHeader(http.StatusOK)
	}))
	defer fallback.Close()

	worker := newTestWorker(t, &config.Config{
		FallbackWebhookURL: fallback.URL,
		WebhookSecret:      "test-secret",
	})
	report := newTestReport()

	// Действие
	worker.Deliver(context.Background(), report)

	// Проверки
	payload, err := json.Marshal(report)
	require.NoError(t, err)
	assert.Equal(t, generateHMACSHA256(payload, "test-secret"), signature.Load())
}

func TestDeliver_NeverRaisesOnTotalFailure(t *testing.T) {
	// Подготовка
	// Оба эндпоинта сконфигурированы, но недоступны
	worker := newTestWorker(t, &config.Config{
		SheetsScriptURL:    "http://127.0.0.1:1/sheets",
		SpreadsheetID:      "sheet-1",
		FallbackWebhookURL: "http://127.0.0.1:1/webhook",
		RelayTimeout:       time.Second,
	})

	// Действие и проверки
	assert.NotPanics(t, func() {
		worker.Deliver(context.Background(), newTestReport())
	})
}

func TestDeliver_NoEndpointsConfigured(t *testing.T) {
	// Подготовка
	worker := newTestWorker(t, &config.Config{})

	// Действие и проверки
	assert.NotPanics(t, func() {
		worker.Deliver(context.Background(), newTestReport())
	})
}
