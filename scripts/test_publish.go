// +build ignore

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type PositionFix struct {
	ID        string    `json:"id"`
	Lat       float64   `json:"lat"`
	Lon       float64   `json:"lon"`
	Timestamp time.Time `json:"timestamp"`
	Tracked   bool      `json:"tracked"`
	Zone      string    `json:"zone,omitempty"`
}

type FixIngestEvent struct {
	BatchID    uuid.UUID     `json:"batch_id"`
	Source     string        `json:"source"`
	Fixes      []PositionFix `json:"fixes"`
	ObservedAt time.Time     `json:"observed_at"`
}

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	count := flag.Int("count", 5, "Number of dark fixes to publish")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	// Проверка подключения
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Тестовый батч: тёмный кластер в Беринговом море
	now := time.Now().UTC()
	fixes := make([]PositionFix, 0, *count)
	for i := 0; i < *count; i++ {
		fixes = append(fixes, PositionFix{
			ID:        fmt.Sprintf("test-dark-%d", i),
			Lat:       54.5 + float64(i)*0.02,
			Lon:       -165.0,
			Timestamp: now,
			Tracked:   false,
			Zone:      "alaska_bering_sea",
		})
	}

	event := FixIngestEvent{
		BatchID:    uuid.New(),
		Source:     "test-publisher",
		Fixes:      fixes,
		ObservedAt: now,
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	// Публикация в стрим
	result, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: "stream:fixes:ingest",
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("✅ Event published successfully!\n")
	fmt.Printf("   Stream: stream:fixes:ingest\n")
	fmt.Printf("   Message ID: %s\n", result)
	fmt.Printf("   Batch ID: %s\n", event.BatchID)
	fmt.Printf("   Fixes: %d dark fixes around 54.5N 165W\n", len(fixes))
	fmt.Printf("\nQuery them back: curl 'localhost:8080/api/v1/hotspots?min_vessels=3'\n")
}
