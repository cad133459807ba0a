package caching

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// CacheService caches computed report payloads per tenant. Reports are
// recomputed from raw transactions on every miss, so a cache failure only
// costs latency, never correctness: read/write problems degrade to a miss.
type CacheService interface {
	// Report caching; payload is the JSON-serialized report response
	GetReport(ctx context.Context, tenantID uuid.UUID, report, rangeKey string) ([]byte, error)
	SetReport(ctx context.Context, tenantID uuid.UUID, report, rangeKey string, payload interface{}, ttl time.Duration) error
	InvalidateTenantReports(ctx context.Context, tenantID uuid.UUID) error

	// Generic string operations
	SetString(ctx context.Context, key string, value string, ttl time.Duration) error
	GetString(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error

	Ping(ctx context.Context) error
}

type redisCacheService struct {
	client *redis.Client
}

func NewRedisCacheService(addr, password string, db int) CacheService {
	// Accept redis://host:port URLs as plain addresses too
	parsedAddr := addr
	if strings.HasPrefix(addr, "redis://") || strings.HasPrefix(addr, "rediss://") {
		if hostPort := strings.TrimPrefix(strings.TrimPrefix(addr, "redis://"), "rediss://"); hostPort != addr {
			parsedAddr = hostPort
		}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     parsedAddr,
		Password: password,
		DB:       db,
	})

	if pingErr := client.Ping(context.Background()).Err(); pingErr != nil {
		log.Printf("WARN: Redis ping failed on initialization: %v (address: %s)", pingErr, parsedAddr)
	}

	return &redisCacheService{client: client}
}

func reportKey(tenantID uuid.UUID, report, rangeKey string) string {
	return fmt.Sprintf("dairybook:report:%s:%s:%s", tenantID.String(), report, rangeKey)
}

func (s *redisCacheService) GetReport(ctx context.Context, tenantID uuid.UUID, report, rangeKey string) ([]byte, error) {
	data, err := s.client.Get(ctx, reportKey(tenantID, report, rangeKey)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		log.Printf("WARN: report cache read failed: %v", err)
		return nil, nil
	}
	return data, nil
}

func (s *redisCacheService) SetReport(ctx context.Context, tenantID uuid.UUID, report, rangeKey string, payload interface{}, ttl time.Duration) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, reportKey(tenantID, report, rangeKey), data, ttl).Err(); err != nil {
		log.Printf("WARN: report cache write failed: %v", err)
	}
	return nil
}

// InvalidateTenantReports drops every cached report for the tenant; any
// transaction mutation can change every derived summary.
func (s *redisCacheService) InvalidateTenantReports(ctx context.Context, tenantID uuid.UUID) error {
	pattern := fmt.Sprintf("dairybook:report:%s:*", tenantID.String())
	iter := s.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := s.client.Del(ctx, iter.Val()).Err(); err != nil {
			log.Printf("WARN: failed to delete cache key %s: %v", iter.Val(), err)
		}
	}
	return iter.Err()
}

func (s *redisCacheService) SetString(ctx context.Context, key string, value string, ttl time.Duration) error {
	return s.client.Set(ctx, key, value, ttl).Err()
}

func (s *redisCacheService) GetString(ctx context.Context, key string) (string, error) {
	return s.client.Get(ctx, key).Result()
}

func (s *redisCacheService) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}

func (s *redisCacheService) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
