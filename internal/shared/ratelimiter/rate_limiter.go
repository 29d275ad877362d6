// Package ratelimiter は固定ウィンドウ方式の流量制限を提供します。
package ratelimiter

import (
	"sync"
	"time"
)

// RateLimiter は interval ごとに最大 limit 回の操作を許可します。
// 複数のゴルーチンから安全に使用できます。
type RateLimiter struct {
	mu        sync.Mutex
	limit     int           // ウィンドウあたりの上限
	interval  time.Duration // どの単位でリセットするか
	count     int
	lastReset time.Time
	now       func() time.Time
}

// NewRateLimiter は新しいRateLimiterのインスタンスを生成します。
// limit が0以下の場合は常に許可します。
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:     limit,
		interval:  interval,
		lastReset: time.Now(),
		now:       time.Now,
	}
}

// Allow は上限に達していなければカウントを進めて true を返します。
// 上限に達している場合は、次のウィンドウまでの残り時間を返します。
func (rl *RateLimiter) Allow() (bool, time.Duration) {
	if rl.limit <= 0 {
		return true, 0
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	// interval を過ぎたらカウントリセット
	if now.Sub(rl.lastReset) >= rl.interval {
		rl.count = 0
		rl.lastReset = now
	}
	if rl.count >= rl.limit {
		return false, rl.interval - now.Sub(rl.lastReset)
	}
	rl.count++
	return true, 0
}
