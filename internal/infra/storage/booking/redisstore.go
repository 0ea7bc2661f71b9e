package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// RedisStore хранит бронирования в одном redis hash: поле = id записи,
// значение = JSON записи. Ключ лениво появляется при первой записи.
type RedisStore struct {
	client *redis.Client
	key    string
	logger Logger
}

// NewRedisStore создает redis хранилище
func NewRedisStore(client *redis.Client, key string, logger Logger) *RedisStore {
	return &RedisStore{client: client, key: key, logger: logger}
}

// LoadAll читает все бронирования из hash.
// Поврежденные поля удаляются из хранилища вместо отказа в обслуживании.
// Записи без date восстанавливаются из timestamp и сохраняются обратно.
func (s *RedisStore) LoadAll(ctx context.Context) ([]*domain.BookingRecord, error) {
	fields, err := s.client.HGetAll(ctx, s.key).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: hgetall %s: %v", ErrLoad, s.key, err)
	}

	records := make([]*domain.BookingRecord, 0, len(fields))
	for id, raw := range fields {
		var rec domain.BookingRecord
		if err := json.Unmarshal([]byte(raw), &rec); err != nil {
			s.logger.Warn("redisstore: dropping corrupted record %s: %v", id, err)
			if err := s.client.HDel(ctx, s.key, id).Err(); err != nil {
				s.logger.Error("redisstore: failed to drop corrupted record %s: %v", id, err)
			}
			continue
		}
		if rec.BackfillDate() {
			s.logger.Info("redisstore: backfilled date for record %s", rec.ID)
			if err := s.put(ctx, &rec); err != nil {
				return nil, err
			}
		}
		records = append(records, &rec)
	}

	// HGetAll не гарантирует порядок, сортируем по id (монотонный по времени)
	sort.Slice(records, func(i, j int) bool {
		return records[i].ID < records[j].ID
	})

	return records, nil
}

// SaveAll целиком заменяет содержимое hash переданной коллекцией
func (s *RedisStore) SaveAll(ctx context.Context, records []*domain.BookingRecord) error {
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, s.key)
		for _, rec := range records {
			data, err := json.Marshal(rec)
			if err != nil {
				return fmt.Errorf("marshal record %s: %w", rec.ID, err)
			}
			pipe.HSet(ctx, s.key, rec.ID, data)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: replace %s: %v", ErrSave, s.key, err)
	}
	return nil
}

func (s *RedisStore) put(ctx context.Context, rec *domain.BookingRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("%w: marshal record %s: %v", ErrSave, rec.ID, err)
	}
	if err := s.client.HSet(ctx, s.key, rec.ID, data).Err(); err != nil {
		return fmt.Errorf("%w: hset %s: %v", ErrSave, rec.ID, err)
	}
	return nil
}
