package guidance

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"
)

// GeminiGenerator - реализация TextGenerator поверх Gemini API.
// Клиент создается на каждый вызов, потому что ключ может быть
// переопределен пользователем между запросами.
type GeminiGenerator struct {
	model   string
	timeout time.Duration
}

func NewGeminiGenerator(model string, timeout time.Duration) *GeminiGenerator {
	if model == "" {
		model = "gemini-2.5-flash"
	}
	return &GeminiGenerator{
		model:   model,
		timeout: timeout,
	}
}

// Generate выполняет один запрос генерации с ограничением по времени.
// Один вызов - одна попытка, без ретраев: при сбое вызывающий
// подставляет запасной текст.
func (g *GeminiGenerator) Generate(ctx context.Context, apiKey, prompt, systemInstruction string, temperature float32) (string, error) {
	if apiKey == "" {
		return "", fmt.Errorf("guidance: gemini api key is not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("guidance: failed to create gemini client: %w", err)
	}

	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](temperature),
	}
	if systemInstruction != "" {
		cfg.SystemInstruction = genai.NewContentFromText(systemInstruction, genai.RoleUser)
	}

	resp, err := client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("guidance: gemini request failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("guidance: gemini returned an empty response")
	}
	return text, nil
}
