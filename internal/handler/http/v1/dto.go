package v1

import (
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/fire_reporting_system/internal/models"
)

// SubmitReportRequest DTO для отправки отчета о пожаре.
// Обязательно только описание, все остальные поля могут отсутствовать.
// @Description DTO для отправки отчета о пожаре
type SubmitReportRequest struct {
	Description           string          `json:"description" validate:"required"`
	Latitude              *float64        `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude             *float64        `json:"longitude,omitempty" validate:"omitempty,longitude"`
	ManualAddress         string          `json:"manual_address,omitempty" validate:"max=512"`
	MediaURL              string          `json:"media_url,omitempty" validate:"omitempty,url"`
	FireSource            string          `json:"fire_source,omitempty" validate:"max=255"`
	PeopleTrapped         models.TriState `json:"people_trapped,omitempty"`
	BuildingType          string          `json:"building_type,omitempty" validate:"max=255"`
	FloorNumber           string          `json:"floor_number,omitempty" validate:"max=32"`
	HasHazardousMaterials models.TriState `json:"has_hazardous_materials,omitempty"`
	HazardousTypes        []string        `json:"hazardous_types,omitempty"`
	AccessibilityIssues   []string        `json:"accessibility_issues,omitempty"`
	ContactNumber         string          `json:"contact_number,omitempty" validate:"max=32"`
	Language              string          `json:"language,omitempty" validate:"omitempty,oneof=en bn"`
}

// ReportResponse DTO для ответа с информацией об отчете
// @Description DTO для ответа с информацией об отчете
type ReportResponse struct {
	ID                    uuid.UUID       `json:"id"`
	Severity              models.Severity `json:"severity"`
	Description           string          `json:"description"`
	Latitude              float64         `json:"latitude"`
	Longitude             float64         `json:"longitude"`
	Address               string          `json:"address,omitempty"`
	MediaURL              string          `json:"media_url,omitempty"`
	FireSource            string          `json:"fire_source,omitempty"`
	PeopleTrapped         models.TriState `json:"people_trapped"`
	BuildingType          string          `json:"building_type,omitempty"`
	FloorNumber           string          `json:"floor_number,omitempty"`
	HasHazardousMaterials models.TriState `json:"has_hazardous_materials"`
	HazardousTypes        []string        `json:"hazardous_types,omitempty"`
	AccessibilityIssues   []string        `json:"accessibility_issues,omitempty"`
	ContactNumber         string          `json:"contact_number,omitempty"`
	Language              models.Language `json:"language,omitempty"`
	CreatedAt             time.Time       `json:"created_at"`
}

// SubmitReportResponse DTO для ответа на отправку отчета.
// Вместе с отчетом возвращается остаток дневного лимита помощника.
// @Description DTO для ответа на отправку отчета
type SubmitReportResponse struct {
	Report   *ReportResponse `json:"report"`
	Guidance string          `json:"guidance"`
	Quota    QuotaResponse   `json:"quota"`
}

// AskRequest DTO для свободного вопроса помощнику
// @Description DTO для свободного вопроса помощнику
type AskRequest struct {
	Question string `json:"question" validate:"required"`
	Language string `json:"language,omitempty" validate:"omitempty,oneof=en bn"`
}

// AskResponse DTO для ответа помощника
// @Description DTO для ответа помощника
type AskResponse struct {
	Answer string `json:"answer"`
}

// QuotaResponse DTO для остатка дневного лимита
// @Description DTO для остатка дневного лимита
type QuotaResponse struct {
	Remaining int  `json:"remaining"`
	Unlimited bool `json:"unlimited"`
}

// SetAPIKeyRequest DTO для установки пользовательского ключа API.
// Пустое значение снимает переопределение.
// @Description DTO для установки пользовательского ключа API
type SetAPIKeyRequest struct {
	APIKey string `json:"api_key"`
}
