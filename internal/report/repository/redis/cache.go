package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"reportlog-srv/internal/model"
	"reportlog-srv/internal/report/repository"
)

// listCacheTTL keeps listings fresh enough for a polling viewer while
// absorbing repeated page loads.
const listCacheTTL = 5 * time.Second

// listCacheKey - One key per caller-visible listing page.
func listCacheKey(opts repository.ListReportsOptions) string {
	groups := make([]string, 0, len(opts.CallerGroups))
	for _, g := range opts.CallerGroups {
		groups = append(groups, fmt.Sprintf("%d", g))
	}
	sort.Strings(groups)

	return fmt.Sprintf("reports:list:%s:%s:%s:%d:%d",
		strings.Join(groups, ","), opts.Status, opts.Category, opts.Limit, opts.Offset)
}

func (r *implCacheRepository) GetList(ctx context.Context, opts repository.ListReportsOptions) ([]model.ReportRecord, bool) {
	data, err := r.redis.Get(ctx, listCacheKey(opts))
	if err != nil {
		return nil, false
	}

	var records []model.ReportRecord
	if err := json.Unmarshal([]byte(data), &records); err != nil {
		r.l.Errorf(ctx, "report.repository.redis.GetList: Failed to unmarshal cached records: %v", err)
		return nil, false
	}

	return records, true
}

func (r *implCacheRepository) SetList(ctx context.Context, opts repository.ListReportsOptions, records []model.ReportRecord) {
	data, err := json.Marshal(records)
	if err != nil {
		r.l.Errorf(ctx, "report.repository.redis.SetList: Failed to marshal records: %v", err)
		return
	}

	if err := r.redis.Set(ctx, listCacheKey(opts), data, listCacheTTL); err != nil {
		r.l.Errorf(ctx, "report.repository.redis.SetList: Failed to save to cache: %v", err)
	}
}

// Invalidate - Drop every cached listing page. Called after each upsert so a
// viewer never waits longer than one TTL to see a new record.
func (r *implCacheRepository) Invalidate(ctx context.Context) {
	client := r.redis.GetClient()

	var cursor uint64
	for {
		keys, nextCursor, err := client.Scan(ctx, cursor, "reports:list:*", 100).Result()
		if err != nil {
			r.l.Errorf(ctx, "report.repository.redis.Invalidate: Failed to scan cache: %v", err)
			return
		}
		if len(keys) > 0 {
			if err := client.Del(ctx, keys...).Err(); err != nil {
				r.l.Errorf(ctx, "report.repository.redis.Invalidate: Failed to delete keys: %v", err)
				return
			}
		}
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
}
