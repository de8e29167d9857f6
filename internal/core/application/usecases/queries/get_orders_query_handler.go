package queries

import (
	"context"
	"encoding/json"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler lists orders from the database, newest first.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order listing queries.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the listing with the query's filters applied.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx).Table("orders")
	if query.Status() != nil {
		tx = tx.Where("status = ?", query.Status().String())
	}
	if query.UserID() != "" {
		tx = tx.Where("user_id = ?", query.UserID())
	}
	if query.ShipperID() != nil {
		tx = tx.Where("shipper_id = ?", query.ShipperID().Bytes())
	}
	if query.RestaurantID() != nil {
		tx = tx.Where("restaurant_id = ?", query.RestaurantID().Bytes())
	}

	rows, err := tx.Select(orderColumns).Order("created_at DESC").Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	for rows.Next() {
		resp, scanErr := scanOrderRow(rows.Scan)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// orderColumns is the projection shared by the listing and single-order
// queries; scanOrderRow must match it column for column.
const orderColumns = `
	id, number,
	user_id, user_name, user_phone,
	items,
	subtotal, delivery_fee, service_fee, total,
	delivery_address, note, estimated_delivery_time,
	status, shipper_id, shipper_name,
	restaurant_id, restaurant_name, restaurant_address,
	created_at, updated_at`

// scanOrderRow maps one projected row into an OrderResponse.
func scanOrderRow(scan func(dest ...any) error) (OrderResponse, error) {
	var (
		id           uuid.UUID
		shipperID    *uuid.UUID
		restaurantID *uuid.UUID
		itemsRaw     []byte
		resp         OrderResponse
		createdAt    time.Time
		updatedAt    time.Time
	)

	err := scan(
		&id, &resp.Number,
		&resp.UserID, &resp.UserName, &resp.UserPhone,
		&itemsRaw,
		&resp.Subtotal, &resp.DeliveryFee, &resp.ServiceFee, &resp.Total,
		&resp.DeliveryAddress, &resp.Note, &resp.EstimatedDeliveryTime,
		&resp.Status, &shipperID, &resp.ShipperName,
		&restaurantID, &resp.RestaurantName, &resp.RestaurantAddress,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return OrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}
	resp.ID = orderID

	if shipperID != nil {
		resp.ShipperID = shipperID.String()
	}
	if restaurantID != nil {
		resp.RestaurantID = restaurantID.String()
	}

	items := make([]OrderItemResponse, 0)
	if len(itemsRaw) > 0 {
		if err = json.Unmarshal(itemsRaw, &items); err != nil {
			return OrderResponse{}, err
		}
	}
	resp.Items = items
	resp.CreatedAt = createdAt
	resp.UpdatedAt = updatedAt

	return resp, nil
}
