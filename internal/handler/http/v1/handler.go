package v1

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/fire_reporting_system/internal/config"
	"github.com/shenikar/fire_reporting_system/internal/models"
	"github.com/shenikar/fire_reporting_system/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	reportService service.ReportService
	logger        *logrus.Logger
	validate      *validator.Validate
	cfg           *config.Config
}

func NewHandler(reportService service.ReportService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		reportService: reportService,
		logger:        logger,
		validate:      validator.New(),
		cfg:           cfg,
	}
}

// clientID определяет, под каким идентификатором вести ключ и лимит
// клиента: заголовок X-Client-ID, иначе API-ключ из middleware,
// иначе общий идентификатор.
func clientID(c *gin.Context) string {
	if id := strings.TrimSpace(c.GetHeader("X-Client-ID")); id != "" {
		return id
	}
	if id := c.GetString(clientIDContextKey); id != "" {
		return id
	}
	return "default"
}

// @Summary Submit a fire report
// @Description Submit a fire emergency report. Severity is classified automatically and localized safety guidance is returned.
// @Tags Reports
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param report body SubmitReportRequest true "Fire report submission"
// @Success 201 {object} SubmitReportResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports [post]
func (h *Handler) submitReport(c *gin.Context) {
	var input SubmitReportRequest
	log := h.logger.WithField("method", "submitReport")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.reportService.SubmitReport(c.Request.Context(), clientID(c), DTOToSubmitInput(input))
	if err != nil {
		if errors.Is(err, service.ErrEmptyDescription) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "description is required"})
			return
		}
		log.WithError(err).Error("Failed to submit report in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	// Остаток лимита отдаем вместе с подтверждением; сбой чтения
	// лимита не отменяет уже принятый отчет
	quota, err := h.reportService.RemainingQuota(c.Request.Context(), clientID(c))
	if err != nil {
		log.WithError(err).Warn("Failed to read remaining quota for submit response")
	}

	c.JSON(http.StatusCreated, SubmitReportResponse{
		Report:   ModelToReportResponse(result.Report),
		Guidance: result.Guidance,
		Quota: QuotaResponse{
			Remaining: quota.Remaining,
			Unlimited: quota.Unlimited,
		},
	})
}

// @Summary Get a list of fire reports
// @Description Get a paginated list of submitted fire reports, newest first.
// @Tags Reports
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(10)
// @Success 200 {array} ReportResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports [get]
func (h *Handler) listReports(c *gin.Context) {
	log := h.logger.WithField("method", "listReports")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	reports, err := h.reportService.ListReports(c.Request.Context(), page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list reports from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToReportResponses(reports))
}

// @Summary Get fire report by ID
// @Description Get a single fire report by its ID.
// @Tags Reports
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Report ID"
// @Success 200 {object} ReportResponse
// @Failure 400 {object} map[string]string "Invalid report ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Report not found"
// @Router /reports/{id} [get]
func (h *Handler) getReport(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report ID"})
		return
	}
	log := h.logger.WithField("method", "getReport").WithField("id", id)

	report, err := h.reportService.GetReport(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get report from service")
		c.JSON(http.StatusNotFound, gin.H{"error": "report not found"})
		return
	}
	c.JSON(http.StatusOK, ModelToReportResponse(report))
}

// @Summary Ask the crisis assistant
// @Description Ask the assistant a free-form question about a fire emergency. The answer is localized and never fails: on any error a safety fallback message is returned.
// @Tags Assistant
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param question body AskRequest true "Free-form question"
// @Success 200 {object} AskResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /assistant/ask [post]
func (h *Handler) askAssistant(c *gin.Context) {
	var input AskRequest
	log := h.logger.WithField("method", "askAssistant")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	answer := h.reportService.AskAssistant(c.Request.Context(), clientID(c), input.Question, models.Language(input.Language))
	c.JSON(http.StatusOK, AskResponse{Answer: answer})
}

// @Summary Get remaining daily quota
// @Description Get the remaining number of assistant calls for today. Unlimited when a custom API key is set.
// @Tags Settings
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} QuotaResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /quota [get]
func (h *Handler) getQuota(c *gin.Context) {
	log := h.logger.WithField("method", "getQuota")

	status, err := h.reportService.RemainingQuota(c.Request.Context(), clientID(c))
	if err != nil {
		log.WithError(err).Error("Failed to get quota from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, QuotaResponse{
		Remaining: status.Remaining,
		Unlimited: status.Unlimited,
	})
}

// @Summary Set a custom Gemini API key
// @Description Store a custom Gemini API key for this client. Calls with a custom key are not counted against the daily quota. An empty value clears the key.
// @Tags Settings
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param key body SetAPIKeyRequest true "Custom API key; empty clears the override"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /settings/api-key [put]
func (h *Handler) setAPIKey(c *gin.Context) {
	var input SetAPIKeyRequest
	log := h.logger.WithField("method", "setAPIKey")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.reportService.SetAPIKey(c.Request.Context(), clientID(c), input.APIKey); err != nil {
		log.WithError(err).Error("Failed to set API key in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Clear the custom Gemini API key
// @Description Remove the custom Gemini API key for this client, reverting to the built-in key with the daily quota.
// @Tags Settings
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /settings/api-key [delete]
func (h *Handler) clearAPIKey(c *gin.Context) {
	log := h.logger.WithField("method", "clearAPIKey")

	if err := h.reportService.ClearAPIKey(c.Request.Context(), clientID(c)); err != nil {
		log.WithError(err).Error("Failed to clear API key in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
