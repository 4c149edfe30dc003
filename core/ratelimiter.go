package core

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// UploadRateLimiter 图床API限流器
// 限制: 60次/分钟 且 5次/秒
type UploadRateLimiter struct {
	perSecond *rate.Limiter // 5次/秒限制
	perMinute *rate.Limiter // 60次/分钟限制
}

// NewUploadRateLimiter 创建图床API限流器
func NewUploadRateLimiter() *UploadRateLimiter {
	return &UploadRateLimiter{
		// 5次/秒，burst设为5允许短时突发
		perSecond: rate.NewLimiter(rate.Limit(5), 5),

		// 60次/分钟 = 1次/秒，burst设为10允许初始突发
		perMinute: rate.NewLimiter(rate.Every(time.Minute/60), 10),
	}
}

// Wait 等待直到可以执行图床API请求
// 必须同时满足两个限流器的条件
func (l *UploadRateLimiter) Wait(ctx context.Context) error {
	if err := l.perSecond.Wait(ctx); err != nil {
		return err
	}
	return l.perMinute.Wait(ctx)
}
