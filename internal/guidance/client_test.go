package guidance

import (
	"context"
	"errors"
	"testing"

	"github.com/shenikar/fire_reporting_system/internal/credentials"
	"github.com/shenikar/fire_reporting_system/internal/guidance/mocks"
	"github.com/shenikar/fire_reporting_system/internal/models"
	"github.com/shenikar/fire_reporting_system/internal/quota"
	"github.com/shenikar/fire_reporting_system/internal/storage"
	"github.com/shenikar/fire_reporting_system/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestClient собирает клиента поверх хранилища в памяти и мока
// генератора текста. Лимит и ключи настоящие, сеть подменена.
func newTestClient(t *testing.T, budget int) (*Client, *mocks.MockTextGenerator, *credentials.Store, *quota.Governor) {
	t.Helper()
	ctrl := gomock.NewController(t)
	generatorMock := mocks.NewMockTextGenerator(ctrl)

	kv := storage.NewMemoryKeyValue()
	creds := credentials.NewStore(kv, "built-in-key")
	governor := quota.NewGovernor(kv, creds, budget, logger.NewSilent())

	client := NewClient(generatorMock, creds, governor, logger.NewSilent())
	return client, generatorMock, creds, governor
}

func TestAsk_Success(t *testing.T) {
	// Подготовка
	client, generatorMock, _, governor := newTestClient(t, 5)
	ctx := context.Background()

	// Ожидания
	generatorMock.EXPECT().
		Generate(ctx, "built-in-key", "What should I do during a fire?", crisisBotInstruction, float32(0.7)).
		Return("Stay low and call 199.", nil).
		Times(1)

	// Действие
	answer := client.Ask(ctx, "client-1", "What should I do during a fire?", models.LanguageEnglish)

	// Проверки
	assert.Equal(t, "Stay low and call 199.", answer)

	remaining, unlimited, err := governor.Remaining(ctx, "client-1")
	require.NoError(t, err)
	assert.False(t, unlimited)
	assert.Equal(t, 4, remaining)
}

func TestAsk_FallbackOnGeneratorError(t *testing.T) {
	// Подготовка
	client, generatorMock, _, governor := newTestClient(t, 5)
	ctx := context.Background()

	// Ожидания
	generatorMock.EXPECT().
		Generate(ctx, "built-in-key", gomock.Any(), crisisBotInstruction, float32(0.7)).
		Return("", errors.New("network down")).
		Times(1)

	// Действие
	answer := client.Ask(ctx, "client-1", "help", models.LanguageEnglish)

	// Проверки
	assert.Equal(t, UnavailableMessage(models.LanguageEnglish), answer)

	// Неудачный вызов не учитывается в лимите
	remaining, _, err := governor.Remaining(ctx, "client-1")
	require.NoError(t, err)
	assert.Equal(t, 5, remaining)
}

func TestAsk_LimitReachedWithoutNetworkCall(t *testing.T) {
	// Подготовка
	client, generatorMock, _, governor := newTestClient(t, 1)
	ctx := context.Background()
	require.NoError(t, governor.RecordCall(ctx, "client-1"))

	// Ожидания
	generatorMock.EXPECT().
		Generate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Times(0)

	// Действие
	answer := client.Ask(ctx, "client-1", "help", models.LanguageBangla)

	// Проверки
	assert.Equal(t, LimitReachedMessage(models.LanguageBangla), answer)
}

func TestAsk_OverrideKeyIsUnmetered(t *testing.T) {
	// Подготовка
	client, generatorMock, creds, governor := newTestClient(t, 5)
	ctx := context.Background()
	require.NoError(t, creds.SetOverride(ctx, "client-1", "user-key"))

	// Ожидания
	generatorMock.EXPECT().
		Generate(ctx, "user-key", gomock.Any(), crisisBotInstruction, float32(0.7)).
		Return("answer", nil).
		Times(10)

	// Действие
	// С собственным ключом дневной лимит не действует
	for i := 0; i < 10; i++ {
		answer := client.Ask(ctx, "client-1", "help", models.LanguageEnglish)
		assert.Equal(t, "answer", answer)
	}

	// Проверки
	_, unlimited, err := governor.Remaining(ctx, "client-1")
	require.NoError(t, err)
	assert.True(t, unlimited)
}

func TestClassifySeverity_ParsesAnswer(t *testing.T) {
	// Подготовка
	client, generatorMock, _, _ := newTestClient(t, 5)
	ctx := context.Background()

	tests := []struct {
		name     string
		answer   string
		expected models.Severity
	}{
		{name: "critical answer", answer: "CRITICAL", expected: models.SeverityCritical},
		{name: "major answer", answer: "Major.", expected: models.SeverityMajor},
		{name: "minor answer", answer: "minor", expected: models.SeverityMinor},
		{name: "critical wins over major", answer: "critical, not just major", expected: models.SeverityCritical},
		{name: "unrecognized answer defaults to minor", answer: "I cannot tell", expected: models.SeverityMinor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Ожидания
			generatorMock.EXPECT().
				Generate(ctx, "built-in-key", gomock.Any(), "", float32(0.3)).
				Return(tt.answer, nil).
				Times(1)

			// Действие
			severity := client.ClassifySeverity(ctx, "client-1", "smoke from the kitchen")

			// Проверки
			assert.Equal(t, tt.expected, severity)
		})
	}
}

func TestClassifySeverity_MajorOnGeneratorError(t *testing.T) {
	// Подготовка
	client, generatorMock, _, _ := newTestClient(t, 5)
	ctx := context.Background()

	// Ожидания
	generatorMock.EXPECT().
		Generate(ctx, "built-in-key", gomock.Any(), "", float32(0.3)).
		Return("", errors.New("network down")).
		Times(1)

	// Действие
	severity := client.ClassifySeverity(ctx, "client-1", "smoke from the kitchen")

	// Проверки
	assert.Equal(t, models.SeverityMajor, severity)
}

func TestClassifySeverity_MajorWhenLimitReached(t *testing.T) {
	// Подготовка
	client, generatorMock, _, governor := newTestClient(t, 1)
	ctx := context.Background()
	require.NoError(t, governor.RecordCall(ctx, "client-1"))

	// Ожидания
	generatorMock.EXPECT().
		Generate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Times(0)

	// Действие
	severity := client.ClassifySeverity(ctx, "client-1", "smoke from the kitchen")

	// Проверки
	assert.Equal(t, models.SeverityMajor, severity)
}

func TestGenerateGuidance_Success(t *testing.T) {
	// Подготовка
	client, generatorMock, _, _ := newTestClient(t, 5)
	ctx := context.Background()
	prompt := guidancePrompt("burning warehouse", models.SeverityCritical, "Mirpur, Dhaka", models.LanguageBangla)

	// Ожидания
	generatorMock.EXPECT().
		Generate(ctx, "built-in-key", prompt, crisisBotInstruction, float32(0.7)).
		Return("1. Evacuate now.", nil).
		Times(1)

	// Действие
	text := client.GenerateGuidance(ctx, "client-1", "burning warehouse", models.SeverityCritical, "Mirpur, Dhaka", models.LanguageBangla)

	// Проверки
	assert.Equal(t, "1. Evacuate now.", text)
}

func TestGenerateGuidance_FallbackOnGeneratorError(t *testing.T) {
	// Подготовка
	client, generatorMock, _, _ := newTestClient(t, 5)
	ctx := context.Background()

	// Ожидания
	generatorMock.EXPECT().
		Generate(ctx, "built-in-key", gomock.Any(), crisisBotInstruction, float32(0.7)).
		Return("", errors.New("network down")).
		Times(1)

	// Действие
	text := client.GenerateGuidance(ctx, "client-1", "burning warehouse", models.SeverityMajor, "Mirpur, Dhaka", models.LanguageEnglish)

	// Проверки
	assert.Equal(t, UnavailableMessage(models.LanguageEnglish), text)
}
