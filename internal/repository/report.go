package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/fire_reporting_system/internal/models"
	"github.com/shenikar/fire_reporting_system/internal/service"
)

const (
	reportCacheKeyPrefix = "fire:report_cache:"
	reportCacheTTL       = 10 * time.Minute
)

type ReportRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewReportRepository(db *pgxpool.Pool, redisClient *redis.Client) service.ReportRepository {
	return &ReportRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// Create сохраняет новый отчет о пожаре в бд
func (r *ReportRepository) Create(ctx context.Context, report *models.FireReport) error {
	query := `
		INSERT INTO fire_reports (
			id, severity, description, latitude, longitude, address,
			media_url, fire_source, people_trapped, building_type, floor_number,
			has_hazardous_materials, hazardous_types, accessibility_issues,
			contact_number, language, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err := r.db.Exec(ctx, query,
		report.ID,
		report.Severity,
		report.Description,
		report.Location.Latitude,
		report.Location.Longitude,
		report.Location.Address,
		report.MediaURL,
		report.FireSource,
		report.PeopleTrapped,
		report.BuildingType,
		report.FloorNumber,
		report.HasHazardousMaterials,
		report.HazardousTypes,
		report.AccessibilityIssues,
		report.ContactNumber,
		report.Language,
		report.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create fire report: %w", err)
	}
	return nil
}

// GetByID возвращает отчет по его UUID
func (r *ReportRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.FireReport, error) {
	report := &models.FireReport{}
	query := `
		SELECT
			id, severity, description, latitude, longitude, address,
			media_url, fire_source, people_trapped, building_type, floor_number,
			has_hazardous_materials, hazardous_types, accessibility_issues,
			contact_number, language, created_at
		FROM fire_reports
		WHERE id = $1;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&report.ID,
		&report.Severity,
		&report.Description,
		&report.Location.Latitude,
		&report.Location.Longitude,
		&report.Location.Address,
		&report.MediaURL,
		&report.FireSource,
		&report.PeopleTrapped,
		&report.BuildingType,
		&report.FloorNumber,
		&report.HasHazardousMaterials,
		&report.HazardousTypes,
		&report.AccessibilityIssues,
		&report.ContactNumber,
		&report.Language,
		&report.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("fire report with id %s not found", id)
		}
		return nil, fmt.Errorf("failed to get fire report by id: %w", err)
	}
	return report, nil
}

// List возвращает отчеты с пагинацией, новые первыми
func (r *ReportRepository) List(ctx context.Context, page, pageSize int) ([]*models.FireReport, error) {
	offset := (page - 1) * pageSize
	query := `
		SELECT
			id, severity, description, latitude, longitude, address,
			media_url, fire_source, people_trapped, building_type, floor_number,
			has_hazardous_materials, hazardous_types, accessibility_issues,
			contact_number, language, created_at
		FROM fire_reports
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.db.Query(ctx, query, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list fire reports: %w", err)
	}
	defer rows.Close()

	var reports []*models.FireReport
	for rows.Next() {
		report := &models.FireReport{}
		if err := rows.Scan(
			&report.ID,
			&report.Severity,
			&report.Description,
			&report.Location.Latitude,
			&report.Location.Longitude,
			&report.Location.Address,
			&report.MediaURL,
			&report.FireSource,
			&report.PeopleTrapped,
			&report.BuildingType,
			&report.FloorNumber,
			&report.HasHazardousMaterials,
			&report.HazardousTypes,
			&report.AccessibilityIssues,
			&report.ContactNumber,
			&report.Language,
			&report.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan fire report row: %w", err)
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate fire report rows: %w", err)
	}
	return reports, nil
}

// GetReportFromCache возвращает отчет из кеша Redis, (nil, nil) при промахе
func (r *ReportRepository) GetReportFromCache(ctx context.Context, id uuid.UUID) (*models.FireReport, error) {
	payload, err := r.redisClient.Get(ctx, reportCacheKeyPrefix+id.String()).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get fire report from cache: %w", err)
	}

	report := &models.FireReport{}
	if err := json.Unmarshal([]byte(payload), report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached fire report: %w", err)
	}
	return report, nil
}

// SetReportCache кладет отчет в кеш Redis
func (r *ReportRepository) SetReportCache(ctx context.Context, report *models.FireReport) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal fire report for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, reportCacheKeyPrefix+report.ID.String(), payload, reportCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache fire report: %w", err)
	}
	return nil
}
