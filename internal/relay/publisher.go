package relay

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/fire_reporting_system/internal/models"
)

//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks

const deliveryQueueKey = "fire_report_deliveries"

// Publisher - интерфейс постановки отчета в очередь доставки.
// Доставка выполняется в фоне и никогда не влияет на ответ пользователю.
type Publisher interface {
	Publish(ctx context.Context, report *models.FireReport) error
}

// RedisPublisher - реализация Publisher, использующая очередь в Redis
type RedisPublisher struct {
	redisClient *redis.Client
}

func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish кладет отчет в очередь доставки
func (p *RedisPublisher) Publish(ctx context.Context, report *models.FireReport) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("relay: failed to marshal report: %w", err)
	}

	// LPUSH добавляет отчет в левую часть списка (очереди)
	if err := p.redisClient.LPush(ctx, deliveryQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("relay: failed to enqueue report: %w", err)
	}
	return nil
}
