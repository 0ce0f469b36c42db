package models

import (
	"time"

	"github.com/google/uuid"
)

// Language - язык ответов помощника
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageBangla  Language = "bn"
)

// Location - координаты и адрес места пожара
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address,omitempty"`
}

// FireReport - отчет о пожаре. Создается один раз при отправке формы
// и после этого не изменяется.
type FireReport struct {
	ID                    uuid.UUID `json:"id"`
	Severity              Severity  `json:"severity"`
	Description           string    `json:"description"`
	Location              Location  `json:"location"`
	MediaURL              string    `json:"media_url,omitempty"`
	FireSource            string    `json:"fire_source,omitempty"`
	PeopleTrapped         TriState  `json:"people_trapped"`
	BuildingType          string    `json:"building_type,omitempty"`
	FloorNumber           string    `json:"floor_number,omitempty"`
	HasHazardousMaterials TriState  `json:"has_hazardous_materials"`
	HazardousTypes        []string  `json:"hazardous_types,omitempty"`
	AccessibilityIssues   []string  `json:"accessibility_issues,omitempty"`
	ContactNumber         string    `json:"contact_number,omitempty"`
	Language              Language  `json:"language,omitempty"`
	CreatedAt             time.Time `json:"created_at"`
}
