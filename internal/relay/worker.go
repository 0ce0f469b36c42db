package relay

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/fire_reporting_system/internal/config"
	"github.com/shenikar/fire_reporting_system/internal/models"
	"github.com/sirupsen/logrus"
)

// sheetPayload - тело запроса к основному эндпоинту таблицы
type sheetPayload struct {
	SpreadsheetID string   `json:"spreadsheetId"`
	Data          []string `json:"data"`
}

// sheetResponse - тело ответа скрипта таблицы. Ответ может быть
// нечитаемым: скрипт отдает его не всегда.
type sheetResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Worker доставляет отчеты из очереди во внешние хранилища.
// Порядок доставки фиксирован: сначала основной эндпоинт таблицы,
// при любом его сбое - один запрос на запасной вебхук. Больше одного
// запасного перехода нет, все сбои логируются и не всплывают наверх.
type Worker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
}

func NewWorker(redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config) *Worker {
	return &Worker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.RelayTimeout,
		},
	}
}

// Start запускает горутину обработки очереди доставки
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Starting report delivery worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping report delivery worker.")
				return
			default:
				// BRPOP - блокирующее извлечение из правой части очереди,
				// 0 означает бесконечное ожидание
				result, err := w.redisClient.BRPop(ctx, 0, deliveryQueueKey).Result()
				if err != nil {
					if errors.Is(err, context.Canceled) {
						continue
					}
					w.logger.WithError(err).Error("Failed to pop report from delivery queue")
					time.Sleep(w.cfg.RelayTimeout)
					continue
				}

				// result[0] - ключ, result[1] - значение
				var report models.FireReport
				if err := json.Unmarshal([]byte(result[1]), &report); err != nil {
					w.logger.WithError(err).Error("Failed to unmarshal report from delivery queue")
					continue
				}

				w.Deliver(ctx, &report)
			}
		}
	}()
}

// Deliver выполняет доставку одного отчета. Никогда не возвращает
// ошибку: отчет уже подтвержден пользователю, сбой доставки может
// только попасть в лог.
func (w *Worker) Deliver(ctx context.Context, report *models.FireReport) {
	log := w.logger.WithFields(logrus.Fields{
		"component": "relay",
		"report_id": report.ID,
	})
	log.Debug("Delivering report...")

	if w.cfg.SheetsScriptURL == "" && w.cfg.FallbackWebhookURL == "" {
		log.Warn("No delivery endpoints configured. Skipping report delivery.")
		return
	}

	if w.cfg.SheetsScriptURL != "" {
		if err := w.deliverPrimary(ctx, report); err == nil {
			log.Info("Report delivered to primary endpoint.")
			return
		} else {
			log.WithError(err).Warn("Primary delivery failed, trying fallback webhook")
		}
	}

	if w.cfg.FallbackWebhookURL == "" {
		log.Error("Report delivery failed and no fallback webhook is configured.")
		return
	}

	if err := w.deliverFallback(ctx, report); err != nil {
		log.WithError(err).Error("Fallback delivery failed, report is lost")
		return
	}
	log.Info("Report delivered to fallback webhook.")
}

// deliverPrimary отправляет строку таблицы на основной эндпоинт.
// Ответ 2xx с нечитаемым телом считается условным успехом: скрипт
// таблицы не всегда отдает читаемый ответ.
func (w *Worker) deliverPrimary(ctx context.Context, report *models.FireReport) error {
	payload, err := json.Marshal(sheetPayload{
		SpreadsheetID: w.cfg.SpreadsheetID,
		Data:          SheetRow(report),
	})
	if err != nil {
		return fmt.Errorf("relay: failed to marshal sheet payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.SheetsScriptURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("relay: failed to create primary request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("relay: primary request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("relay: primary endpoint returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return nil
	}

	var parsed sheetResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		// Нечитаемое тело при 2xx - условный успех
		w.logger.WithField("report_id", report.ID).Debug("Primary endpoint response is not parseable, assuming success")
		return nil
	}
	if parsed.Status == "error" {
		return fmt.Errorf("relay: primary endpoint rejected the report: %s", parsed.Message)
	}
	return nil
}

// deliverFallback отправляет необработанный отчет на запасной вебхук
func (w *Worker) deliverFallback(ctx context.Context, report *models.FireReport) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("relay: failed to marshal report: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.cfg.FallbackWebhookURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("relay: failed to create fallback request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	// Добавляем HMAC подпись, если WEBHOOK_SECRET задан
	if w.cfg.WebhookSecret != "" {
		req.Header.Set("X-Webhook-Signature", generateHMACSHA256(payload, w.cfg.WebhookSecret))
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("relay: fallback request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("relay: fallback webhook returned status %d", resp.StatusCode)
	}
	return nil
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data []byte, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}
