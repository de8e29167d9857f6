// Package orderrepo persists order aggregates with GORM. Line items are
// stored as a jsonb document inside the order row: they are an ordering-time
// snapshot, never queried relationally, and always loaded with their order.
package orderrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO maps the order aggregate to the orders table. The status is
// stored as its string name so conditional updates and ad hoc SQL stay
// readable, and created_at is indexed for the time-bucketed analytics.
type OrderDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number string    `gorm:"uniqueIndex"`

	UserID    string `gorm:"index"`
	UserName  string
	UserPhone string

	Items ItemsDTO `gorm:"type:jsonb;serializer:json"`

	Subtotal    int64
	DeliveryFee int64
	ServiceFee  int64
	Total       int64

	DeliveryAddress       string
	Note                  string
	EstimatedDeliveryTime string

	Status      string     `gorm:"index"`
	ShipperID   *uuid.UUID `gorm:"type:uuid;index"`
	ShipperName string

	RestaurantID      *uuid.UUID `gorm:"type:uuid;index"`
	RestaurantName    string
	RestaurantAddress string

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemsDTO is the jsonb document holding the order's line items.
type ItemsDTO []ItemDTO

// GormDataType tells GORM the column type for the serialized items.
func (ItemsDTO) GormDataType() string {
	return "jsonb"
}

// ItemDTO is one serialized line item. The food id is kept as a string so
// legacy lines without a catalog reference serialize as an empty value.
type ItemDTO struct {
	FoodID     string `json:"foodId,omitempty"`
	Name       string `json:"name"`
	Image      string `json:"image,omitempty"`
	Size       string `json:"size,omitempty"`
	Quantity   int    `json:"quantity"`
	Price      int64  `json:"price"`
	TotalPrice int64  `json:"totalPrice"`
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make(ItemsDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		var foodID string
		if id := item.FoodID(); id != nil {
			foodID = id.String()
		}
		items = append(items, ItemDTO{
			FoodID:     foodID,
			Name:       item.Name(),
			Image:      item.Image(),
			Size:       item.Size(),
			Quantity:   item.Quantity(),
			Price:      item.Price(),
			TotalPrice: item.TotalPrice(),
		})
	}

	return OrderDTO{
		ID:                    aggregate.ID().Bytes(),
		Number:                aggregate.Number(),
		UserID:                aggregate.Customer().ID(),
		UserName:              aggregate.Customer().Name(),
		UserPhone:             aggregate.Customer().Phone(),
		Items:                 items,
		Subtotal:              aggregate.Pricing().Subtotal(),
		DeliveryFee:           aggregate.Pricing().DeliveryFee(),
		ServiceFee:            aggregate.Pricing().ServiceFee(),
		Total:                 aggregate.Pricing().Total(),
		DeliveryAddress:       aggregate.DeliveryAddress(),
		Note:                  aggregate.Note(),
		EstimatedDeliveryTime: aggregate.EstimatedDeliveryTime(),
		Status:                aggregate.Status().String(),
		ShipperID:             uuidPtrToRaw(aggregate.Shipper()),
		ShipperName:           aggregate.ShipperName(),
		RestaurantID:          uuidPtrToRaw(aggregate.Restaurant()),
		RestaurantName:        aggregate.RestaurantName(),
		RestaurantAddress:     aggregate.RestaurantAddress(),
		CreatedAt:             aggregate.CreatedAt(),
		UpdatedAt:             aggregate.UpdatedAt(),
	}
}

// toDomain converts a database row back into an order aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	customer, err := order.NewCustomer(dto.UserID, dto.UserName, dto.UserPhone)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		var foodID *kernel.UUID
		if itemDTO.FoodID != "" {
			fid, fidErr := kernel.UUIDFromString(itemDTO.FoodID)
			if fidErr != nil {
				return nil, fidErr
			}
			foodID = &fid
		}
		items = append(items, order.RestoreItem(
			foodID,
			itemDTO.Name,
			itemDTO.Image,
			itemDTO.Size,
			itemDTO.Quantity,
			itemDTO.Price,
			itemDTO.TotalPrice,
		))
	}

	shipperID, err := rawToUUIDPtr(dto.ShipperID)
	if err != nil {
		return nil, err
	}
	restaurantID, err := rawToUUIDPtr(dto.RestaurantID)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.Number,
		customer,
		items,
		order.RestorePricing(dto.Subtotal, dto.DeliveryFee, dto.ServiceFee, dto.Total),
		dto.DeliveryAddress,
		dto.Note,
		dto.EstimatedDeliveryTime,
		status,
		shipperID,
		dto.ShipperName,
		restaurantID,
		dto.RestaurantName,
		dto.RestaurantAddress,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}

func uuidPtrToRaw(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func rawToUUIDPtr(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
