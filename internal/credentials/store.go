package credentials

import (
	"context"
	"fmt"
	"strings"

	"github.com/shenikar/fire_reporting_system/internal/storage"
)

const overrideKeyPrefix = "fire:custom_api_key:"

// Store управляет активным ключом Gemini API: пользовательский ключ
// имеет приоритет над встроенным. Значения ключей никогда не логируются.
type Store struct {
	kv         storage.KeyValue
	defaultKey string
}

func NewStore(kv storage.KeyValue, defaultKey string) *Store {
	return &Store{
		kv:         kv,
		defaultKey: defaultKey,
	}
}

// ActiveKey возвращает пользовательский ключ, если он задан, иначе
// встроенный. Пустая строка означает, что сервис не сконфигурирован -
// вызывающий обязан обработать это сам, а не падать.
func (s *Store) ActiveKey(ctx context.Context, clientID string) (string, error) {
	override, err := s.kv.Get(ctx, overrideKeyPrefix+clientID)
	if err != nil {
		return "", fmt.Errorf("credentials: failed to read override key: %w", err)
	}
	if override != "" {
		return override, nil
	}
	return s.defaultKey, nil
}

// HasOverride сообщает, задан ли пользовательский ключ
func (s *Store) HasOverride(ctx context.Context, clientID string) (bool, error) {
	override, err := s.kv.Get(ctx, overrideKeyPrefix+clientID)
	if err != nil {
		return false, fmt.Errorf("credentials: failed to read override key: %w", err)
	}
	return override != "", nil
}

// SetOverride сохраняет пользовательский ключ. Пустое значение или
// строка из пробелов снимает переопределение и возвращает встроенный ключ.
func (s *Store) SetOverride(ctx context.Context, clientID, value string) error {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return s.ClearOverride(ctx, clientID)
	}
	if err := s.kv.Set(ctx, overrideKeyPrefix+clientID, trimmed); err != nil {
		return fmt.Errorf("credentials: failed to store override key: %w", err)
	}
	return nil
}

// ClearOverride удаляет пользовательский ключ
func (s *Store) ClearOverride(ctx context.Context, clientID string) error {
	if err := s.kv.Remove(ctx, overrideKeyPrefix+clientID); err != nil {
		return fmt.Errorf("credentials: failed to remove override key: %w", err)
	}
	return nil
}
