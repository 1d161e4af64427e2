package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/Astemirdum/bookcourier/bookcourier/internal/errs"
	"github.com/Astemirdum/bookcourier/bookcourier/internal/model"
)

// transitions lists the statuses reachable from each non-terminal status.
var transitions = map[model.OrderStatus][]model.OrderStatus{
	model.OrderPending: {model.OrderCancelled, model.OrderShipped},
	model.OrderShipped: {model.OrderDelivered},
}

func canTransition(from, to model.OrderStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CreateOrder places a pending, unpaid order for principal.
func (s *Service) CreateOrder(ctx context.Context, principal string, req model.CreateOrderRequest) (model.InsertResult, error) {
	bookID, userEmail := strings.TrimSpace(req.BookID), strings.TrimSpace(req.UserEmail)
	switch {
	case bookID == "":
		return model.InsertResult{}, errs.Validation("bookId is required")
	case userEmail == "":
		return model.InsertResult{}, errs.Validation("userEmail is required")
	case userEmail != principal:
		return model.InsertResult{}, errs.Forbidden("userEmail must match the authenticated user")
	case !validID(bookID):
		return model.InsertResult{}, errs.NotFound("book not found")
	}

	book, err := s.repo.GetBook(ctx, bookID)
	if err != nil {
		return model.InsertResult{}, err
	}

	order := model.Order{
		ID:            uuid.NewString(),
		BookID:        book.ID,
		BookTitle:     req.BookTitle,
		Price:         req.Price,
		UserName:      req.UserName,
		UserEmail:     userEmail,
		Phone:         req.Phone,
		Address:       req.Address,
		OrderStatus:   model.OrderPending,
		PaymentStatus: model.PaymentUnpaid,
		OrderDate:     s.now(),
	}
	if order.BookTitle == "" {
		order.BookTitle = book.Title
	}
	if order.Price == 0 {
		order.Price = book.Price
	}
	if err := s.repo.CreateOrder(ctx, order); err != nil {
		return model.InsertResult{}, err
	}
	s.publish(ctx, model.EventOrderCreated, order.ID, principal)
	return model.Inserted(order.ID), nil
}

func (s *Service) ListOrders(ctx context.Context, email string) ([]model.Order, error) {
	if email == "" {
		return nil, errs.Validation("email is required")
	}
	return s.repo.ListOrders(ctx, email)
}

func (s *Service) ListAllOrders(ctx context.Context) ([]model.Order, error) {
	return s.repo.ListOrders(ctx, "")
}

// OrderOwner returns the email of the user who placed the order.
func (s *Service) OrderOwner(ctx context.Context, id string) (string, error) {
	if !validID(id) {
		return "", errs.NotFound("order not found")
	}
	order, err := s.repo.GetOrder(ctx, id)
	if err != nil {
		return "", err
	}
	return order.UserEmail, nil
}

// CancelOrder moves a pending order to cancelled. Ownership is checked by the caller.
func (s *Service) CancelOrder(ctx context.Context, principal, id string) (model.UpdateResult, error) {
	if !validID(id) {
		return model.UpdateResult{}, errs.NotFound("order not found")
	}
	order, err := s.repo.GetOrder(ctx, id)
	if err != nil {
		return model.UpdateResult{}, err
	}
	if order.OrderStatus != model.OrderPending {
		return model.UpdateResult{}, errs.InvalidTransition("only pending orders can be cancelled, order is %s", order.OrderStatus)
	}
	if err := s.move(ctx, id, model.OrderPending, model.OrderCancelled); err != nil {
		return model.UpdateResult{}, err
	}
	s.publish(ctx, model.EventOrderCancelled, id, principal)
	return model.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

// AdvanceOrder moves an order to shipped or delivered. Advancing to the
// current status changes nothing and reports modifiedCount 0.
func (s *Service) AdvanceOrder(ctx context.Context, principal, id string, target model.OrderStatus) (model.UpdateResult, error) {
	if target != model.OrderShipped && target != model.OrderDelivered {
		return model.UpdateResult{}, errs.Validation("status must be one of [shipped delivered]")
	}
	if !validID(id) {
		return model.UpdateResult{}, errs.NotFound("order not found")
	}
	order, err := s.repo.GetOrder(ctx, id)
	if err != nil {
		return model.UpdateResult{}, err
	}
	if order.OrderStatus == target {
		return model.UpdateResult{
			Acknowledged: true,
			MatchedCount: 1,
			Message:      "order is already " + string(target),
		}, nil
	}
	if !canTransition(order.OrderStatus, target) {
		return model.UpdateResult{}, errs.InvalidTransition("cannot move order from %s to %s", order.OrderStatus, target)
	}
	if err := s.move(ctx, id, order.OrderStatus, target); err != nil {
		return model.UpdateResult{}, err
	}
	s.publish(ctx, model.EventOrderStatusChanged, id, principal)
	return model.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func (s *Service) move(ctx context.Context, id string, from, to model.OrderStatus) error {
	moved, err := s.repo.UpdateOrderStatus(ctx, id, from, to)
	if err != nil {
		return err
	}
	if !moved {
		return errs.InvalidTransition("order is no longer %s", from)
	}
	return nil
}
