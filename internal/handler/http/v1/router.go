package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршруты отчетов о пожарах
	reports := api.Group("/reports")
	{
		reports.POST("", h.submitReport)
		reports.GET("", h.listReports)
		reports.GET("/:id", h.getReport)
	}

	// Маршрут свободных вопросов помощнику
	api.POST("/assistant/ask", h.askAssistant)

	// Маршруты лимита и пользовательского ключа API
	api.GET("/quota", h.getQuota)
	api.PUT("/settings/api-key", h.setAPIKey)
	api.DELETE("/settings/api-key", h.clearAPIKey)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
