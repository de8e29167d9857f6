package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetTopFoodsQueryHandler ranks foods by total ordered quantity. Line items
// live in the orders' jsonb document, so the ranking unnests them in SQL
// and joins the foods table for display attributes. Lines without a food
// reference and lines whose food no longer exists are skipped.
type GetTopFoodsQueryHandler struct {
	db *gorm.DB
}

// NewGetTopFoodsQueryHandler creates a handler for top-food queries.
func NewGetTopFoodsQueryHandler(db *gorm.DB) GetTopFoodsQueryHandler {
	return GetTopFoodsQueryHandler{db: db}
}

// Handle executes the ranking. The result holds at most Limit entries and
// may be shorter when fewer foods were ever ordered.
func (h GetTopFoodsQueryHandler) Handle(ctx context.Context, query GetTopFoodsQuery) ([]TopFoodResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	args := []any{}
	scope := ""
	if query.RestaurantID() != nil {
		scope = "AND o.restaurant_id = ?"
		args = append(args, query.RestaurantID().Bytes())
	}
	args = append(args, query.Limit())

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			f.id,
			f.name,
			f.image,
			f.price,
			f.category,
			f.restaurant_id,
			SUM((item->>'quantity')::bigint) AS quantity
		FROM orders o,
			jsonb_array_elements(o.items) AS item
		JOIN foods f ON f.id = (item->>'foodId')::uuid
		WHERE COALESCE(item->>'foodId', '') <> ''
		`+scope+`
		GROUP BY f.id, f.name, f.image, f.price, f.category, f.restaurant_id
		ORDER BY quantity DESC
		LIMIT ?
	`, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	foods := make([]TopFoodResponse, 0, query.Limit())
	for rows.Next() {
		var id uuid.UUID
		var restaurantID *uuid.UUID
		var food TopFoodResponse
		if err = rows.Scan(&id, &food.Name, &food.Image, &food.Price, &food.Category, &restaurantID, &food.Quantity); err != nil {
			return nil, err
		}
		food.FoodID = id.String()
		if restaurantID != nil {
			rid := restaurantID.String()
			food.RestaurantID = &rid
		}
		foods = append(foods, food)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return foods, nil
}
