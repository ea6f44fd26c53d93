package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	DB "Backend-KidCheckin/src/database"
	"Backend-KidCheckin/src/models"
)

var Ctx = context.Background()

const todayTotalsTTL = 5 * time.Minute

func totalsKey(date string) string {
	return fmt.Sprintf("today_totals:%s", date)
}

// CacheTodayTotals stores the dashboard counters for a date. No-op when Redis
// is not available (development mode).
func CacheTodayTotals(date string, totals *models.TodayTotals) {
	client := DB.RedisClient
	if client == nil {
		return
	}
	payload, err := json.Marshal(totals)
	if err != nil {
		return
	}
	_ = client.Set(Ctx, totalsKey(date), payload, todayTotalsTTL).Err()
}

// GetCachedTodayTotals returns the cached counters for a date, or nil on a
// cache miss or when Redis is not available.
func GetCachedTodayTotals(date string) *models.TodayTotals {
	client := DB.RedisClient
	if client == nil {
		return nil
	}
	payload, err := client.Get(Ctx, totalsKey(date)).Bytes()
	if err != nil {
		return nil
	}
	var totals models.TodayTotals
	if err := json.Unmarshal(payload, &totals); err != nil {
		return nil
	}
	return &totals
}

// InvalidateTodayTotals drops the cached counters for a date after a check-in
// mutates its summary.
func InvalidateTodayTotals(date string) {
	client := DB.RedisClient
	if client == nil {
		return
	}
	_ = client.Del(Ctx, totalsKey(date)).Err()
}
