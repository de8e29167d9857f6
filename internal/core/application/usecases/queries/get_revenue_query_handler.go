package queries

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"fooddelivery/internal/core/domain/services"

	"gorm.io/gorm"
)

// GetRevenueQueryHandler computes the revenue series. It never fails: any
// internal error degrades the response to the fixed zero-filled daily
// series, because the dashboard chart must always render.
type GetRevenueQueryHandler struct {
	db       *gorm.DB
	calendar services.RevenueCalendar
	logger   *slog.Logger
	now      func() time.Time
}

// NewGetRevenueQueryHandler creates a handler for revenue queries.
func NewGetRevenueQueryHandler(db *gorm.DB, logger *slog.Logger) GetRevenueQueryHandler {
	return GetRevenueQueryHandler{
		db:       db,
		calendar: services.NewRevenueCalendar(),
		logger:   logger.With("component", "revenue_query"),
		now:      time.Now,
	}
}

// Handle anchors the series on the most recent matching order, sums totals
// per bucket window, and returns the series oldest bucket first.
func (h GetRevenueQueryHandler) Handle(ctx context.Context, query GetRevenueQuery) GetRevenueQueryResponse {
	if err := query.Validate(); err != nil {
		h.logger.ErrorContext(ctx, "Revenue query degraded to empty series", "error", err)
		return h.emptyDailySeries()
	}

	anchor, err := h.anchorTime(ctx, query)
	if err != nil {
		h.logger.ErrorContext(ctx, "Revenue query degraded to empty series", "error", err)
		return h.emptyDailySeries()
	}

	buckets := h.calendar.Buckets(query.Granularity(), anchor)
	points, err := h.sumBuckets(ctx, query, buckets)
	if err != nil {
		h.logger.ErrorContext(ctx, "Revenue query degraded to empty series", "error", err)
		return h.emptyDailySeries()
	}

	return GetRevenueQueryResponse{
		Granularity: query.Granularity().String(),
		Points:      points,
	}
}

// anchorTime returns the creation time of the most recent matching order,
// or the current time when no orders exist.
func (h GetRevenueQueryHandler) anchorTime(ctx context.Context, query GetRevenueQuery) (time.Time, error) {
	tx := h.db.WithContext(ctx).Table("orders")
	if query.RestaurantID() != nil {
		tx = tx.Where("restaurant_id = ?", query.RestaurantID().Bytes())
	}

	var anchor time.Time
	err := tx.Select("created_at").Order("created_at DESC").Limit(1).Row().Scan(&anchor)
	if errors.Is(err, sql.ErrNoRows) {
		return h.now(), nil
	}
	if err != nil {
		return time.Time{}, err
	}
	return anchor, nil
}

// sumBuckets loads (created_at, total) pairs covering the whole series span
// and folds them into the bucket windows.
func (h GetRevenueQueryHandler) sumBuckets(
	ctx context.Context,
	query GetRevenueQuery,
	buckets []services.Bucket,
) ([]RevenuePoint, error) {
	span := struct{ start, end time.Time }{buckets[0].Start, buckets[len(buckets)-1].End}

	tx := h.db.WithContext(ctx).Table("orders").
		Where("created_at >= ? AND created_at < ?", span.start, span.end)
	if query.RestaurantID() != nil {
		tx = tx.Where("restaurant_id = ?", query.RestaurantID().Bytes())
	}

	rows, err := tx.Select("created_at, total").Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sums := make([]int64, len(buckets))
	for rows.Next() {
		var createdAt time.Time
		var total int64
		if err = rows.Scan(&createdAt, &total); err != nil {
			return nil, err
		}
		for i, bucket := range buckets {
			if bucket.Contains(createdAt) {
				sums[i] += total
				break
			}
		}
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	points := make([]RevenuePoint, 0, len(buckets))
	for i, bucket := range buckets {
		points = append(points, RevenuePoint{
			Label:   bucket.Label,
			Tooltip: bucket.Tooltip,
			Revenue: sums[i],
		})
	}
	return points, nil
}

// emptyDailySeries is the degraded fallback: the fixed 7-slot daily shape
// with zero revenue and no dates.
func (h GetRevenueQueryHandler) emptyDailySeries() GetRevenueQueryResponse {
	labels := services.DailyLabels()
	points := make([]RevenuePoint, 0, len(labels))
	for i := len(labels) - 1; i >= 0; i-- {
		points = append(points, RevenuePoint{
			Label:   labels[i],
			Tooltip: "no data",
		})
	}
	return GetRevenueQueryResponse{
		Granularity: services.Daily.String(),
		Points:      points,
	}
}
