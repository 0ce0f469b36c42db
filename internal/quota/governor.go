package quota

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/shenikar/fire_reporting_system/internal/storage"
	"github.com/sirupsen/logrus"
)

const (
	usageCountKeyPrefix = "fire:daily_usage:"
	usageDateKeyPrefix  = "fire:usage_date:"

	dateLayout = "2006-01-02"
)

// OverrideChecker сообщает, использует ли клиент собственный ключ API.
// Вызовы с собственным ключом не учитываются в лимите.
type OverrideChecker interface {
	HasOverride(ctx context.Context, clientID string) (bool, error)
}

// Governor ведет дневной счетчик вызовов Gemini для встроенного ключа.
// Смена суток определяется лениво при чтении и записи, фоновых таймеров нет.
// Лимит защищает от злоупотребления, а не от обхода: клиент со сменой
// часов устройства его обойдет, и это принятое ограничение.
type Governor struct {
	kv        storage.KeyValue
	overrides OverrideChecker
	budget    int
	logger    *logrus.Logger
	now       func() time.Time
}

func NewGovernor(kv storage.KeyValue, overrides OverrideChecker, budget int, logger *logrus.Logger) *Governor {
	return &Governor{
		kv:        kv,
		overrides: overrides,
		budget:    budget,
		logger:    logger,
		now:       time.Now,
	}
}

// WithClock подменяет источник времени. Нужен тестам смены суток.
func (g *Governor) WithClock(now func() time.Time) *Governor {
	g.now = now
	return g
}

// Remaining возвращает остаток вызовов на сегодня. Если у клиента
// задан собственный ключ - unlimited=true и остаток не имеет смысла.
func (g *Governor) Remaining(ctx context.Context, clientID string) (int, bool, error) {
	hasOverride, err := g.overrides.HasOverride(ctx, clientID)
	if err != nil {
		return 0, false, fmt.Errorf("quota: failed to check override: %w", err)
	}
	if hasOverride {
		return 0, true, nil
	}

	count, err := g.todayCount(ctx, clientID)
	if err != nil {
		return 0, false, err
	}

	remaining := g.budget - count
	if remaining < 0 {
		remaining = 0
	}
	return remaining, false, nil
}

// Exhausted возвращает true, когда дневной лимит исчерпан.
// Для клиента с собственным ключом всегда false.
func (g *Governor) Exhausted(ctx context.Context, clientID string) (bool, error) {
	remaining, unlimited, err := g.Remaining(ctx, clientID)
	if err != nil {
		return false, err
	}
	if unlimited {
		return false, nil
	}
	return remaining == 0, nil
}

// RecordCall увеличивает счетчик за сегодня. Вызов с собственным
// ключом не учитывается.
func (g *Governor) RecordCall(ctx context.Context, clientID string) error {
	hasOverride, err := g.overrides.HasOverride(ctx, clientID)
	if err != nil {
		return fmt.Errorf("quota: failed to check override: %w", err)
	}
	if hasOverride {
		return nil
	}

	count, err := g.todayCount(ctx, clientID)
	if err != nil {
		return err
	}

	today := g.now().Format(dateLayout)
	if err := g.kv.Set(ctx, usageDateKeyPrefix+clientID, today); err != nil {
		return fmt.Errorf("quota: failed to store usage date: %w", err)
	}
	if err := g.kv.Set(ctx, usageCountKeyPrefix+clientID, strconv.Itoa(count+1)); err != nil {
		return fmt.Errorf("quota: failed to store usage count: %w", err)
	}
	return nil
}

// todayCount читает счетчик и лениво сбрасывает его при смене суток
func (g *Governor) todayCount(ctx context.Context, clientID string) (int, error) {
	today := g.now().Format(dateLayout)

	storedDate, err := g.kv.Get(ctx, usageDateKeyPrefix+clientID)
	if err != nil {
		return 0, fmt.Errorf("quota: failed to read usage date: %w", err)
	}

	if storedDate != today {
		// Новый день: сбрасываем счетчик
		if err := g.kv.Set(ctx, usageDateKeyPrefix+clientID, today); err != nil {
			return 0, fmt.Errorf("quota: failed to reset usage date: %w", err)
		}
		if err := g.kv.Set(ctx, usageCountKeyPrefix+clientID, "0"); err != nil {
			return 0, fmt.Errorf("quota: failed to reset usage count: %w", err)
		}
		return 0, nil
	}

	stored, err := g.kv.Get(ctx, usageCountKeyPrefix+clientID)
	if err != nil {
		return 0, fmt.Errorf("quota: failed to read usage count: %w", err)
	}
	if stored == "" {
		return 0, nil
	}

	count, err := strconv.Atoi(stored)
	if err != nil {
		// Испорченное значение счетчика трактуем как пустой счетчик
		g.logger.WithField("client_id", clientID).Warn("Malformed usage counter, resetting to zero")
		return 0, nil
	}
	return count, nil
}
