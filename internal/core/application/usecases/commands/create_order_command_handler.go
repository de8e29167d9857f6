package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles checkout. It builds a Pending order,
// captures the restaurant snapshot from the first line's food, persists the
// order, and emits the PENDING notification.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   Notifier
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, notifier Notifier) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the checkout command and returns the created order.
// The restaurant lookup is opportunistic: when it fails the order keeps its
// placeholder snapshot, because checkout must not break on reference data.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	customer, err := order.NewCustomer(cmd.UserID(), cmd.UserName(), cmd.UserPhone())
	if err != nil {
		return nil, err
	}

	items, err := buildItems(cmd.Items())
	if err != nil {
		return nil, err
	}

	pricing, err := order.NewPricing(cmd.Subtotal(), cmd.DeliveryFee(), cmd.ServiceFee(), cmd.Total())
	if err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(
		kernel.NewUUID(),
		order.NewOrderNumber(),
		customer,
		items,
		pricing,
		cmd.DeliveryAddress(),
		cmd.Note(),
		cmd.EstimatedDeliveryTime(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	attachRestaurant(ctx, uow, newOrder)

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.Emit(ctx, newOrder.Number(), order.Pending)
	return newOrder, nil
}

// buildItems converts checkout lines into domain items. An empty food id
// yields a line without a catalog reference; a malformed one is rejected.
func buildItems(lines []CreateOrderItem) ([]order.Item, error) {
	items := make([]order.Item, 0, len(lines))
	for _, line := range lines {
		var foodID *kernel.UUID
		if line.FoodID != "" {
			id, err := kernel.UUIDFromString(line.FoodID)
			if err != nil {
				return nil, err
			}
			foodID = &id
		}

		item, err := order.NewItem(foodID, line.Name, line.Image, line.Size, line.Quantity, line.Price)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// attachRestaurant resolves the restaurant snapshot through the first item
// that carries a food reference. Lookup failures leave the placeholder
// snapshot in place.
func attachRestaurant(ctx context.Context, uow OrderUoW, newOrder *order.Order) {
	var firstFoodID *kernel.UUID
	for _, item := range newOrder.Items() {
		if item.FoodID() != nil {
			firstFoodID = item.FoodID()
			break
		}
	}
	if firstFoodID == nil {
		return
	}

	food, err := uow.FoodRepository().Get(ctx, *firstFoodID)
	if err != nil || food.RestaurantID == nil {
		return
	}

	restaurant, err := uow.RestaurantRepository().Get(ctx, *food.RestaurantID)
	if err != nil {
		return
	}

	_ = newOrder.AttachRestaurant(restaurant.ID, restaurant.Name, restaurant.Address)
}
