package guidance

import (
	"context"

	"github.com/shenikar/fire_reporting_system/internal/models"
	"github.com/sirupsen/logrus"
)

// CredentialSource отдает активный ключ API и признак пользовательского ключа
type CredentialSource interface {
	ActiveKey(ctx context.Context, clientID string) (string, error)
	HasOverride(ctx context.Context, clientID string) (bool, error)
}

// UsageGovernor учитывает дневной лимит вызовов встроенного ключа
type UsageGovernor interface {
	Exhausted(ctx context.Context, clientID string) (bool, error)
	RecordCall(ctx context.Context, clientID string) error
}

// Client - клиент генерации текста вокруг Gemini. Три операции: свободные
// вопросы, классификация серьезности и инструкции по принятому отчету.
// Ни одна из них не возвращает ошибку вызывающему: любой сбой
// завершается запасным текстом или безопасным уровнем серьезности.
type Client struct {
	generator   TextGenerator
	credentials CredentialSource
	governor    UsageGovernor
	logger      *logrus.Logger
}

func NewClient(generator TextGenerator, credentials CredentialSource, governor UsageGovernor, logger *logrus.Logger) *Client {
	return &Client{
		generator:   generator,
		credentials: credentials,
		governor:    governor,
		logger:      logger,
	}
}

// Ask отвечает на свободный вопрос пользователя.
// При исчерпанном лимите возвращает локализованное сообщение о лимите
// без сетевого вызова, при сбое транспорта - запасной текст.
func (c *Client) Ask(ctx context.Context, clientID, question string, lang models.Language) string {
	log := c.logger.WithFields(logrus.Fields{
		"component": "guidance",
		"method":    "Ask",
	})

	allowed, metered := c.admit(ctx, clientID, log)
	if !allowed {
		return LimitReachedMessage(lang)
	}

	apiKey, err := c.credentials.ActiveKey(ctx, clientID)
	if err != nil {
		log.WithError(err).Error("Failed to resolve API key")
		return UnavailableMessage(lang)
	}

	answer, err := c.generator.Generate(ctx, apiKey, question, crisisBotInstruction, 0.7)
	if err != nil {
		log.WithError(err).Error("Assistant request failed")
		return UnavailableMessage(lang)
	}

	c.meter(ctx, clientID, metered, log)
	return answer
}

// ClassifySeverity определяет уровень серьезности по описанию.
// Любой сбой (лимит, сеть, неконфигурированный ключ, нечитаемый ответ)
// завершается уровнем "major": переоценить опасность безопаснее,
// чем недооценить.
func (c *Client) ClassifySeverity(ctx context.Context, clientID, description string) models.Severity {
	log := c.logger.WithFields(logrus.Fields{
		"component": "guidance",
		"method":    "ClassifySeverity",
	})

	allowed, metered := c.admit(ctx, clientID, log)
	if !allowed {
		log.Warn("Daily usage limit reached for severity classification")
		return models.SeverityMajor
	}

	apiKey, err := c.credentials.ActiveKey(ctx, clientID)
	if err != nil {
		log.WithError(err).Error("Failed to resolve API key")
		return models.SeverityMajor
	}

	answer, err := c.generator.Generate(ctx, apiKey, severityPrompt(description), "", 0.3)
	if err != nil {
		log.WithError(err).Error("Severity classification failed")
		return models.SeverityMajor
	}

	c.meter(ctx, clientID, metered, log)
	return models.ParseSeverity(answer)
}

// GenerateGuidance формирует локализованные инструкции по безопасности
// для принятого отчета. При сбое возвращает запасной текст с указанием
// немедленно позвонить в пожарную службу.
func (c *Client) GenerateGuidance(ctx context.Context, clientID, description string, severity models.Severity, location string, lang models.Language) string {
	log := c.logger.WithFields(logrus.Fields{
		"component": "guidance",
		"method":    "GenerateGuidance",
	})

	allowed, metered := c.admit(ctx, clientID, log)
	if !allowed {
		return LimitReachedMessage(lang)
	}

	apiKey, err := c.credentials.ActiveKey(ctx, clientID)
	if err != nil {
		log.WithError(err).Error("Failed to resolve API key")
		return UnavailableMessage(lang)
	}

	text, err := c.generator.Generate(ctx, apiKey, guidancePrompt(description, severity, location, lang), crisisBotInstruction, 0.7)
	if err != nil {
		log.WithError(err).Error("Guidance generation failed")
		return UnavailableMessage(lang)
	}

	c.meter(ctx, clientID, metered, log)
	return text
}

// admit решает, можно ли выполнять сетевой вызов, и нужно ли его
// учитывать в лимите. Ошибка проверки лимита не блокирует запрос:
// лимит - защита от злоупотребления, а не критичный инвариант.
func (c *Client) admit(ctx context.Context, clientID string, log *logrus.Entry) (allowed, metered bool) {
	hasOverride, err := c.credentials.HasOverride(ctx, clientID)
	if err != nil {
		log.WithError(err).Warn("Failed to check API key override, assuming default key")
	}
	if hasOverride {
		return true, false
	}

	exhausted, err := c.governor.Exhausted(ctx, clientID)
	if err != nil {
		log.WithError(err).Warn("Failed to check usage limit, allowing the call")
		return true, true
	}
	if exhausted {
		return false, false
	}
	return true, true
}

// meter учитывает успешный вызов со встроенным ключом
func (c *Client) meter(ctx context.Context, clientID string, metered bool, log *logrus.Entry) {
	if !metered {
		return
	}
	if err := c.governor.RecordCall(ctx, clientID); err != nil {
		log.WithError(err).Warn("Failed to record API call")
	}
}
