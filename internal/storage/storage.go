package storage

import "context"

// KeyValue - абстракция над долговременным key-value хранилищем.
// Хранилище ключей и счетчиков использования пробрасывается через этот
// интерфейс, чтобы тесты работали без реального Redis.
type KeyValue interface {
	// Get возвращает значение по ключу. Отсутствующий ключ - ("", nil).
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
