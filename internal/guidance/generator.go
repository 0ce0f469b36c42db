package guidance

import "context"

//go:generate mockgen -source=generator.go -destination=mocks/mock_generator.go -package=mocks

// TextGenerator - граница внешней AI-возможности: одна операция
// "сгенерируй текст по промпту". Ключ передается на каждый вызов,
// потому что активный ключ может меняться между запросами.
type TextGenerator interface {
	Generate(ctx context.Context, apiKey, prompt, systemInstruction string, temperature float32) (string, error)
}
