// AngelaMos | 2026
// handler.go

package admin

import (
	"context"
	"database/sql"
	"net/http"
	"runtime"

	"github.com/redis/go-redis/v9"

	"github.com/carterperez-dev/om-backend/internal/core"
	"github.com/carterperez-dev/om-backend/internal/middleware"
	"github.com/carterperez-dev/om-backend/internal/user"
)

const recentUsersLimit = 10

type UserStats interface {
	Counts(ctx context.Context) (user.Counts, error)
	ListRecent(ctx context.Context, limit int) ([]user.User, error)
}

type MoodStats interface {
	Count(ctx context.Context) (int, error)
}

type Handler struct {
	users      UserStats
	moods      MoodStats
	dbStats    func() sql.DBStats
	redisStats func() *redis.PoolStats
	dbPing     func(ctx context.Context) error
	redisPing  func(ctx context.Context) error
}

type HandlerConfig struct {
	Users      UserStats
	Moods      MoodStats
	DBStats    func() sql.DBStats
	RedisStats func() *redis.PoolStats
	DBPing     func(ctx context.Context) error
	RedisPing  func(ctx context.Context) error
}

func NewHandler(cfg HandlerConfig) *Handler {
	return &Handler{
		users:      cfg.Users,
		moods:      cfg.Moods,
		dbStats:    cfg.DBStats,
		redisStats: cfg.RedisStats,
		dbPing:     cfg.DBPing,
		redisPing:  cfg.RedisPing,
	}
}

func (h *Handler) Routes() []middleware.Route {
	return []middleware.Route{
		{
			Method:  http.MethodGet,
			Pattern: "/admin/stats",
			Access:  middleware.AdminOnly,
			Handler: h.GetDashboardStats,
		},
		{
			Method:  http.MethodGet,
			Pattern: "/admin/system",
			Access:  middleware.AdminOnly,
			Handler: h.GetSystemStats,
		},
	}
}

func (h *Handler) GetDashboardStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	counts, err := h.users.Counts(ctx)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	totalMoods, err := h.moods.Count(ctx)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	recent, err := h.users.ListRecent(ctx, recentUsersLimit)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, DashboardStatsResponse{
		TotalUsers:  counts.Total,
		ProUsers:    counts.Pro,
		TotalMoods:  totalMoods,
		RecentUsers: user.ToRecentUserResponseList(recent),
	})
}

func (h *Handler) GetSystemStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	core.OK(w, SystemStatsResponse{
		Database: DatabaseStatus{
			Healthy: probe(ctx, h.dbPing),
			Stats:   h.getDBStats(),
		},
		Redis: RedisStatus{
			Healthy: probe(ctx, h.redisPing),
			Stats:   h.getRedisStats(),
		},
		Runtime: readRuntimeStats(),
	})
}

func probe(ctx context.Context, ping func(ctx context.Context) error) bool {
	if ping == nil {
		return false
	}
	return ping(ctx) == nil
}

func readRuntimeStats() RuntimeStats {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	return RuntimeStats{
		GoVersion:    runtime.Version(),
		NumGoroutine: runtime.NumGoroutine(),
		NumCPU:       runtime.NumCPU(),
		MemAlloc:     memStats.Alloc,
		NumGC:        memStats.NumGC,
	}
}

func (h *Handler) getDBStats() *DBPoolStats {
	if h.dbStats == nil {
		return nil
	}

	stats := h.dbStats()
	return &DBPoolStats{
		MaxOpenConnections: stats.MaxOpenConnections,
		OpenConnections:    stats.OpenConnections,
		InUse:              stats.InUse,
		Idle:               stats.Idle,
		WaitCount:          stats.WaitCount,
		WaitDuration:       stats.WaitDuration.String(),
		MaxIdleClosed:      stats.MaxIdleClosed,
		MaxLifetimeClosed:  stats.MaxLifetimeClosed,
	}
}

func (h *Handler) getRedisStats() *RedisPoolStats {
	if h.redisStats == nil {
		return nil
	}

	stats := h.redisStats()
	return &RedisPoolStats{
		Hits:       stats.Hits,
		Misses:     stats.Misses,
		Timeouts:   stats.Timeouts,
		TotalConns: stats.TotalConns,
		IdleConns:  stats.IdleConns,
	}
}
