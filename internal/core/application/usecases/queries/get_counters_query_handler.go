package queries

import (
	"context"

	"fooddelivery/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetCountersQueryHandler computes the dashboard counters from the database.
type GetCountersQueryHandler struct {
	db *gorm.DB
}

// NewGetCountersQueryHandler creates a handler for counter queries.
func NewGetCountersQueryHandler(db *gorm.DB) GetCountersQueryHandler {
	return GetCountersQueryHandler{db: db}
}

// Handle counts orders per status and folds the per-status counts into the
// running and requests totals.
func (h GetCountersQueryHandler) Handle(
	ctx context.Context,
	query GetCountersQuery,
) (GetCountersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCountersQueryResponse{}, err
	}

	tx := h.db.WithContext(ctx).Table("orders")
	if query.RestaurantID() != nil {
		tx = tx.Where("restaurant_id = ?", query.RestaurantID().Bytes())
	}

	rows, err := tx.Select("status, COUNT(*)").Group("status").Rows()
	if err != nil {
		return GetCountersQueryResponse{}, err
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var status string
		var count int64
		if err = rows.Scan(&status, &count); err != nil {
			return GetCountersQueryResponse{}, err
		}
		counts[status] = count
	}
	if err = rows.Err(); err != nil {
		return GetCountersQueryResponse{}, err
	}

	var resp GetCountersQueryResponse
	for _, status := range query.RunningStatuses() {
		resp.Running += counts[status.String()]
	}
	resp.Requests = counts[order.Pending.String()]

	return resp, nil
}
