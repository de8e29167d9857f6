// Package queries contains read-side operations of the CQRS split. Query
// handlers read the database directly and return display-ready responses;
// they never go through the aggregates or mutate state.
package queries

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery lists orders, newest first, optionally narrowed by status,
// customer, shipper, or restaurant. All filter parameters arrive as wire
// strings and are parsed by the constructor; an empty string means no filter.
type GetOrdersQuery struct { //nolint:recvcheck //using for validation
	status       *order.Status
	userID       string
	shipperID    *kernel.UUID
	restaurantID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a listing query from raw filter values.
func NewGetOrdersQuery(status, userID, shipperID, restaurantID string) (GetOrdersQuery, error) {
	q := GetOrdersQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}

	if status != "" {
		parsed, err := order.StatusFromString(status)
		if err != nil {
			return GetOrdersQuery{}, err
		}
		q.status = &parsed
	}
	if shipperID != "" {
		parsed, err := kernel.UUIDFromString(shipperID)
		if err != nil {
			return GetOrdersQuery{}, err
		}
		q.shipperID = &parsed
	}
	if restaurantID != "" {
		parsed, err := kernel.UUIDFromString(restaurantID)
		if err != nil {
			return GetOrdersQuery{}, err
		}
		q.restaurantID = &parsed
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Status returns the status filter, or nil for all statuses.
func (q GetOrdersQuery) Status() *order.Status { return q.status }

// UserID returns the customer filter, possibly empty.
func (q GetOrdersQuery) UserID() string { return q.userID }

// ShipperID returns the shipper filter, or nil.
func (q GetOrdersQuery) ShipperID() *kernel.UUID { return q.shipperID }

// RestaurantID returns the restaurant filter, or nil.
func (q GetOrdersQuery) RestaurantID() *kernel.UUID { return q.restaurantID }

// OrderItemResponse is one line item of an order response.
type OrderItemResponse struct {
	FoodID     string `json:"foodId,omitempty"`
	Name       string `json:"name"`
	Image      string `json:"image,omitempty"`
	Size       string `json:"size,omitempty"`
	Quantity   int    `json:"quantity"`
	Price      int64  `json:"price"`
	TotalPrice int64  `json:"totalPrice"`
}

// OrderResponse is the display shape of an order shared by the listing and
// single-order queries.
type OrderResponse struct {
	ID                    kernel.UUID         `json:"id"`
	Number                string              `json:"orderNumber"`
	UserID                string              `json:"userId"`
	UserName              string              `json:"userName"`
	UserPhone             string              `json:"userPhone,omitempty"`
	Items                 []OrderItemResponse `json:"items"`
	Subtotal              int64               `json:"subtotal"`
	DeliveryFee           int64               `json:"deliveryFee"`
	ServiceFee            int64               `json:"serviceFee"`
	Total                 int64               `json:"total"`
	DeliveryAddress       string              `json:"deliveryAddress"`
	Note                  string              `json:"note,omitempty"`
	EstimatedDeliveryTime string              `json:"estimatedDeliveryTime"`
	Status                string              `json:"status"`
	ShipperID             string              `json:"shipperId,omitempty"`
	ShipperName           string              `json:"shipperName,omitempty"`
	RestaurantID          string              `json:"restaurantId,omitempty"`
	RestaurantName        string              `json:"restaurantName"`
	RestaurantAddress     string              `json:"restaurantAddress"`
	CreatedAt             time.Time           `json:"createdAt"`
	UpdatedAt             time.Time           `json:"updatedAt"`
}
