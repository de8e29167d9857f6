// Package foodrepo reads the menu catalog with GORM. The order core treats
// foods as reference data and never writes this table.
package foodrepo

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FoodDTO maps a menu item row.
type FoodDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string
	Image        string
	Price        int64
	Category     string
	RestaurantID *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName overrides GORM's default naming to use "foods".
func (FoodDTO) TableName() string {
	return "foods"
}

// GormFoodRepository implements FoodRepository using GORM.
type GormFoodRepository struct {
	db *gorm.DB
}

// NewGormFoodRepository creates a new GORM food repository.
func NewGormFoodRepository(db *gorm.DB) *GormFoodRepository {
	return &GormFoodRepository{db: db}
}

// Get retrieves a food by id.
func (r *GormFoodRepository) Get(ctx context.Context, id kernel.UUID) (ports.Food, error) {
	if err := id.Validate(); err != nil {
		return ports.Food{}, err
	}

	var dto FoodDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Food{}, errs.NewObjectNotFoundError("food", id.String())
		}
		return ports.Food{}, err
	}

	return toDomain(dto)
}

func toDomain(dto FoodDTO) (ports.Food, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.Food{}, err
	}

	var restaurantID *kernel.UUID
	if dto.RestaurantID != nil {
		rid, ridErr := kernel.UUIDFromBytes((*dto.RestaurantID)[:])
		if ridErr != nil {
			return ports.Food{}, ridErr
		}
		restaurantID = &rid
	}

	return ports.Food{
		ID:           id,
		Name:         dto.Name,
		Image:        dto.Image,
		Price:        dto.Price,
		Category:     dto.Category,
		RestaurantID: restaurantID,
	}, nil
}
