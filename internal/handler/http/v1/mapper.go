package v1

import (
	"github.com/shenikar/fire_reporting_system/internal/models"
	"github.com/shenikar/fire_reporting_system/internal/service"
)

// DTOToSubmitInput преобразует DTO отправки отчета в входные данные сервиса
func DTOToSubmitInput(dto SubmitReportRequest) service.SubmitInput {
	return service.SubmitInput{
		Description:           dto.Description,
		Latitude:              dto.Latitude,
		Longitude:             dto.Longitude,
		ManualAddress:         dto.ManualAddress,
		MediaURL:              dto.MediaURL,
		FireSource:            dto.FireSource,
		PeopleTrapped:         dto.PeopleTrapped,
		BuildingType:          dto.BuildingType,
		FloorNumber:           dto.FloorNumber,
		HasHazardousMaterials: dto.HasHazardousMaterials,
		HazardousTypes:        dto.HazardousTypes,
		AccessibilityIssues:   dto.AccessibilityIssues,
		ContactNumber:         dto.ContactNumber,
		Language:              models.Language(dto.Language),
	}
}

// ModelToReportResponse преобразует доменную модель в DTO для ответа
func ModelToReportResponse(model *models.FireReport) *ReportResponse {
	return &ReportResponse{
		ID:                    model.ID,
		Severity:              model.Severity,
		Description:           model.Description,
		Latitude:              model.Location.Latitude,
		Longitude:             model.Location.Longitude,
		Address:               model.Location.Address,
		MediaURL:              model.MediaURL,
		FireSource:            model.FireSource,
		PeopleTrapped:         model.PeopleTrapped,
		BuildingType:          model.BuildingType,
		FloorNumber:           model.FloorNumber,
		HasHazardousMaterials: model.HasHazardousMaterials,
		HazardousTypes:        model.HazardousTypes,
		AccessibilityIssues:   model.AccessibilityIssues,
		ContactNumber:         model.ContactNumber,
		Language:              model.Language,
		CreatedAt:             model.CreatedAt,
	}
}

// ModelsToReportResponses преобразует слайс моделей в слайс DTO
func ModelsToReportResponses(models []*models.FireReport) []*ReportResponse {
	responses := make([]*ReportResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToReportResponse(model)
	}
	return responses
}
