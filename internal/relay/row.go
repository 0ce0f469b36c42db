package relay

import (
	"fmt"
	"strings"
	"time"

	"github.com/shenikar/fire_reporting_system/internal/models"
)

// Значения-заполнители для пустых необязательных полей.
// Скрипт на принимающей стороне показывает их как есть.
const (
	notSpecified = "Not specified"
	notProvided  = "Not provided"
	noImage      = "No image"
	unknownPlace = "Unknown"
)

// SheetRow разворачивает отчет в плоскую строку из 14 колонок.
// Порядок колонок фиксирован и обязан совпадать с порядком,
// который ожидает принимающий скрипт таблицы.
func SheetRow(report *models.FireReport) []string {
	address := report.Location.Address
	if address == "" {
		address = unknownPlace
	}

	return []string{
		report.CreatedAt.UTC().Format(time.RFC3339),
		string(report.Severity),
		report.Description,
		address,
		fmt.Sprintf("%g,%g", report.Location.Latitude, report.Location.Longitude),
		orDefault(report.FireSource, notSpecified),
		report.PeopleTrapped.Label(),
		orDefault(report.BuildingType, notSpecified),
		orDefault(report.FloorNumber, notSpecified),
		report.HasHazardousMaterials.Label(),
		strings.Join(report.HazardousTypes, ", "),
		strings.Join(report.AccessibilityIssues, ", "),
		orDefault(report.ContactNumber, notProvided),
		orDefault(report.MediaURL, noImage),
	}
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
