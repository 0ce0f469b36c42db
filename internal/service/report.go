package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/fire_reporting_system/internal/models"
	"github.com/shenikar/fire_reporting_system/internal/relay"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=report.go -destination=mocks/mock_report.go -package=mocks

// ErrEmptyDescription возвращается при попытке отправить отчет без описания
var ErrEmptyDescription = errors.New("service: report description is required")

// ReportRepository определяет контракт для работы с бд отчетов
type ReportRepository interface {
	Create(ctx context.Context, report *models.FireReport) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.FireReport, error)
	List(ctx context.Context, page, pageSize int) ([]*models.FireReport, error)
	GetReportFromCache(ctx context.Context, id uuid.UUID) (*models.FireReport, error)
	SetReportCache(ctx context.Context, report *models.FireReport) error
}

// GuidanceClient определяет контракт AI-помощника. Операции не
// возвращают ошибок: сбой завершается запасным текстом или
// безопасным уровнем серьезности.
type GuidanceClient interface {
	Ask(ctx context.Context, clientID, question string, lang models.Language) string
	ClassifySeverity(ctx context.Context, clientID, description string) models.Severity
	GenerateGuidance(ctx context.Context, clientID, description string, severity models.Severity, location string, lang models.Language) string
}

// QuotaReader отдает остаток дневного лимита вызовов
type QuotaReader interface {
	Remaining(ctx context.Context, clientID string) (int, bool, error)
}

// CredentialWriter управляет пользовательским ключом API
type CredentialWriter interface {
	SetOverride(ctx context.Context, clientID, value string) error
	ClearOverride(ctx context.Context, clientID string) error
}

// SubmitInput - сырые поля формы отчета. Обязательное поле только
// описание, все остальные могут отсутствовать.
type SubmitInput struct {
	Description           string
	Latitude              *float64
	Longitude             *float64
	ManualAddress         string
	MediaURL              string
	FireSource            string
	PeopleTrapped         models.TriState
	BuildingType          string
	FloorNumber           string
	HasHazardousMaterials models.TriState
	HazardousTypes        []string
	AccessibilityIssues   []string
	ContactNumber         string
	Language              models.Language
}

// SubmitResult - собранный отчет вместе с инструкциями по безопасности
type SubmitResult struct {
	Report   *models.FireReport
	Guidance string
}

// QuotaStatus - остаток дневного лимита для ответа клиенту
type QuotaStatus struct {
	Remaining int
	Unlimited bool
}

// ReportService определяет контракт бизнес-логики отчетов о пожарах
type ReportService interface {
	SubmitReport(ctx context.Context, clientID string, input SubmitInput) (*SubmitResult, error)
	GetReport(ctx context.Context, id uuid.UUID) (*models.FireReport, error)
	ListReports(ctx context.Context, page, pageSize int) ([]*models.FireReport, error)
	AskAssistant(ctx context.Context, clientID, question string, lang models.Language) string
	RemainingQuota(ctx context.Context, clientID string) (QuotaStatus, error)
	SetAPIKey(ctx context.Context, clientID, key string) error
	ClearAPIKey(ctx context.Context, clientID string) error
}

type reportService struct {
	repo        ReportRepository
	guidance    GuidanceClient
	quota       QuotaReader
	credentials CredentialWriter
	publisher   relay.Publisher
	logger      *logrus.Logger
	now         func() time.Time
}

func NewReportService(repo ReportRepository, guidance GuidanceClient, quota QuotaReader, credentials CredentialWriter, publisher relay.Publisher, logger *logrus.Logger) ReportService {
	return &reportService{
		repo:        repo,
		guidance:    guidance,
		quota:       quota,
		credentials: credentials,
		publisher:   publisher,
		logger:      logger,
		now:         time.Now,
	}
}

// SubmitReport собирает неизменяемый отчет из полей формы: классифицирует
// серьезность, присваивает ID и время создания, сохраняет отчет и ставит
// его в очередь доставки. Постановка в очередь и сохранение не влияют на
// ответ пользователю: отчет возвращается даже при их сбое.
func (s *reportService) SubmitReport(ctx context.Context, clientID string, input SubmitInput) (*SubmitResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "report",
		"method":  "SubmitReport",
	})

	description := strings.TrimSpace(input.Description)
	if description == "" {
		log.Warn("Rejected report with empty description")
		return nil, ErrEmptyDescription
	}

	log.Info("Assembling a new fire report")
	severity := s.guidance.ClassifySeverity(ctx, clientID, description)

	location := models.Location{}
	if input.Latitude != nil && input.Longitude != nil {
		location.Latitude = *input.Latitude
		location.Longitude = *input.Longitude
		location.Address = input.ManualAddress
	} else {
		// Координат от устройства нет: нулевая точка и ручной адрес
		location.Address = input.ManualAddress
		if location.Address == "" {
			location.Address = "Unknown"
		}
	}

	report := &models.FireReport{
		ID:                    uuid.New(),
		Severity:              severity,
		Description:           description,
		Location:              location,
		MediaURL:              input.MediaURL,
		FireSource:            input.FireSource,
		PeopleTrapped:         normalizeTriState(input.PeopleTrapped),
		BuildingType:          input.BuildingType,
		FloorNumber:           input.FloorNumber,
		HasHazardousMaterials: normalizeTriState(input.HasHazardousMaterials),
		HazardousTypes:        input.HazardousTypes,
		AccessibilityIssues:   input.AccessibilityIssues,
		ContactNumber:         input.ContactNumber,
		Language:              normalizeLanguage(input.Language),
		CreatedAt:             s.now().UTC(),
	}

	if err := s.repo.Create(ctx, report); err != nil {
		// Локальное сохранение - не причина отклонять отчет:
		// доставка во внешнее хранилище все равно отправится
		log.WithError(err).Error("Failed to store fire report locally")
	}

	guidanceText := s.guidance.GenerateGuidance(ctx, clientID, description, severity, locationLabel(report.Location), report.Language)

	// Доставка во внешнее хранилище идет в фоне и никогда не
	// блокирует и не отменяет подтверждение пользователю
	if err := s.publisher.Publish(ctx, report); err != nil {
		log.WithError(err).Error("Failed to enqueue fire report for delivery")
	}

	log.WithFields(logrus.Fields{
		"report_id": report.ID,
		"severity":  report.Severity,
	}).Info("Fire report submitted")

	return &SubmitResult{
		Report:   report,
		Guidance: guidanceText,
	}, nil
}

// GetReport получает отчет по ID, сначала из кеша, затем из бд
func (s *reportService) GetReport(ctx context.Context, id uuid.UUID) (*models.FireReport, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "report",
		"method":    "GetReport",
		"report_id": id,
	})

	cached, err := s.repo.GetReportFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to read report cache")
	}
	if cached != nil {
		return cached, nil
	}

	report, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get fire report from repository")
		return nil, fmt.Errorf("service: could not get fire report: %w", err)
	}

	if err := s.repo.SetReportCache(ctx, report); err != nil {
		log.WithError(err).Warn("Failed to cache fire report")
	}
	return report, nil
}

// ListReports возвращает список отчетов с пагинацией
func (s *reportService) ListReports(ctx context.Context, page, pageSize int) ([]*models.FireReport, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":   "report",
		"method":    "ListReports",
		"page":      page,
		"page_size": pageSize,
	})

	reports, err := s.repo.List(ctx, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list fire reports from repository")
		return nil, fmt.Errorf("service: could not list fire reports: %w", err)
	}

	log.WithField("count", len(reports)).Info("Fire reports listed successfully")
	return reports, nil
}

// AskAssistant передает свободный вопрос помощнику
func (s *reportService) AskAssistant(ctx context.Context, clientID, question string, lang models.Language) string {
	return s.guidance.Ask(ctx, clientID, question, normalizeLanguage(lang))
}

// RemainingQuota возвращает остаток дневного лимита вызовов
func (s *reportService) RemainingQuota(ctx context.Context, clientID string) (QuotaStatus, error) {
	remaining, unlimited, err := s.quota.Remaining(ctx, clientID)
	if err != nil {
		return QuotaStatus{}, fmt.Errorf("service: could not read quota: %w", err)
	}
	return QuotaStatus{Remaining: remaining, Unlimited: unlimited}, nil
}

// SetAPIKey сохраняет пользовательский ключ API; пустое значение снимает его
func (s *reportService) SetAPIKey(ctx context.Context, clientID, key string) error {
	if err := s.credentials.SetOverride(ctx, clientID, key); err != nil {
		return fmt.Errorf("service: could not store API key: %w", err)
	}
	return nil
}

// ClearAPIKey удаляет пользовательский ключ API
func (s *reportService) ClearAPIKey(ctx context.Context, clientID string) error {
	if err := s.credentials.ClearOverride(ctx, clientID); err != nil {
		return fmt.Errorf("service: could not clear API key: %w", err)
	}
	return nil
}

// normalizeTriState приводит незаполненное поле к "unknown"
func normalizeTriState(t models.TriState) models.TriState {
	if t == "" {
		return models.TriStateUnknown
	}
	return t
}

// normalizeLanguage приводит незаполненный язык к английскому
func normalizeLanguage(lang models.Language) models.Language {
	if lang == models.LanguageBangla {
		return models.LanguageBangla
	}
	return models.LanguageEnglish
}

// locationLabel строит человекочитаемое описание места для промпта
func locationLabel(loc models.Location) string {
	if loc.Address != "" {
		return loc.Address
	}
	return fmt.Sprintf("%g, %g", loc.Latitude, loc.Longitude)
}
