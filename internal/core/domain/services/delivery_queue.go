package services

import (
	"fmt"

	"orderdesk/internal/pkg/errs"
)

// Direction moves an order one place towards the head (up) or the tail (down)
// of the delivery queue.
type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

// ParseDirection validates raw input.
func ParseDirection(raw string) (Direction, error) {
	d := Direction(raw)
	if d != Up && d != Down {
		return "", errs.NewValueIsInvalidErrorWithCause("direction", fmt.Errorf("%q is neither up nor down", raw))
	}
	return d, nil
}

func (d Direction) offset() int {
	if d == Up {
		return -1
	}
	return 1
}

// DeliveryQueue reorders a delivery list held as order ids, head first.
//
// Example:
//
//	queue := services.NewDeliveryQueue()
//	next, moved, err := queue.Move([]int64{10, 11, 12}, 12, services.Up)
//	// next == []int64{10, 12, 11}, moved == true
type DeliveryQueue struct{}

// NewDeliveryQueue creates a DeliveryQueue.
func NewDeliveryQueue() DeliveryQueue {
	return DeliveryQueue{}
}

// Move swaps orderID with its neighbour in the given direction and returns the
// new list. The input slice is never modified.
//
// Returns:
//   - moved == false and an unchanged copy when the order is already at the
//     boundary it is moving towards
//   - errs.ErrObjectNotFound when orderID is not in the list
//   - a validation error for an unknown direction or duplicate ids
func (DeliveryQueue) Move(ids []int64, orderID int64, direction Direction) ([]int64, bool, error) {
	if _, err := ParseDirection(string(direction)); err != nil {
		return nil, false, err
	}

	index := -1
	seen := make(map[int64]struct{}, len(ids))
	for i, id := range ids {
		if _, dup := seen[id]; dup {
			return nil, false, errs.NewValueIsInvalidErrorWithCause("order_ids", fmt.Errorf("order %d is listed twice", id))
		}
		seen[id] = struct{}{}
		if id == orderID {
			index = i
		}
	}
	if index == -1 {
		return nil, false, errs.NewObjectNotFoundError("order", orderID)
	}

	next := make([]int64, len(ids))
	copy(next, ids)

	target := index + direction.offset()
	if target < 0 || target >= len(next) {
		return next, false, nil
	}

	next[index], next[target] = next[target], next[index]
	return next, true, nil
}
