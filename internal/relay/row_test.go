package relay

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/fire_reporting_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSheetRow_FullReport(t *testing.T) {
	// Подготовка
	report := &models.FireReport{
		ID:          uuid.New(),
		Severity:    models.SeverityCritical,
		Description: "Warehouse on fire",
		Location: models.Location{
			Latitude:  23.8103,
			Longitude: 90.4125,
			Address:   "Mirpur, Dhaka",
		},
		MediaURL:              "https://example.com/photo.jpg",
		FireSource:            "Electrical short circuit",
		PeopleTrapped:         models.TriStateYes,
		BuildingType:          "Warehouse",
		FloorNumber:           "3",
		HasHazardousMaterials: models.TriStateNo,
		HazardousTypes:        []string{"Gas cylinder", "Chemicals"},
		AccessibilityIssues:   []string{"Narrow road"},
		ContactNumber:         "+8801700000000",
		Language:              models.LanguageEnglish,
		CreatedAt:             time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC),
	}

	// Действие
	row := SheetRow(report)

	// Проверки
	require.Len(t, row, 14)
	assert.Equal(t, []string{
		"2026-03-14T10:30:00Z",
		"critical",
		"Warehouse on fire",
		"Mirpur, Dhaka",
		"23.8103,90.4125",
		"Electrical short circuit",
		"Yes",
		"Warehouse",
		"3",
		"No",
		"Gas cylinder, Chemicals",
		"Narrow road",
		"+8801700000000",
		"https://example.com/photo.jpg",
	}, row)
}

func TestSheetRow_EmptyOptionalFields(t *testing.T) {
	// Подготовка
	// Заполнено только обязательное описание, все прочее пусто
	report := &models.FireReport{
		ID:          uuid.New(),
		Severity:    models.SeverityMinor,
		Description: "Small fire",
		CreatedAt:   time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC),
	}

	// Действие
	row := SheetRow(report)

	// Проверки
	require.Len(t, row, 14)
	assert.Equal(t, "Unknown", row[3])
	assert.Equal(t, "0,0", row[4])
	assert.Equal(t, "Not specified", row[5])
	assert.Equal(t, "Unknown", row[6])
	assert.Equal(t, "Not specified", row[7])
	assert.Equal(t, "Not specified", row[8])
	assert.Equal(t, "Unknown", row[9])
	assert.Equal(t, "", row[10])
	assert.Equal(t, "", row[11])
	assert.Equal(t, "Not provided", row[12])
	assert.Equal(t, "No image", row[13])
}

func TestSheetRow_TimestampIsUTC(t *testing.T) {
	// Подготовка
	dhaka := time.FixedZone("BST", 6*60*60)
	report := &models.FireReport{
		ID:          uuid.New(),
		Severity:    models.SeverityMajor,
		Description: "Fire",
		CreatedAt:   time.Date(2026, 3, 14, 16, 30, 0, 0, dhaka),
	}

	// Действие
	row := SheetRow(report)

	// Проверки
	assert.Equal(t, "2026-03-14T10:30:00Z", row[0])
}
