// Package transition holds the order status state machine.
//
// The legal graph is declared once in rules. Decide looks a (current, requested)
// pair up in that table; pairs that are not listed are rejected with the reason
// registered for the requested status.
//
//	pending ──> paid ──> shipped ──> delivered
//	   │          │                      │
//	   └──────────┴──────> cancelled <───┘
package transition

import (
	"github.com/avGenie/go-order-tracker/internal/app/entity"
	usecase "github.com/avGenie/go-order-tracker/internal/app/usecase/errors"
)

type Kind int

const (
	Rejected Kind = iota
	Apply
	NoOp
)

func (k Kind) String() string {
	switch k {
	case Apply:
		return "apply"
	case NoOp:
		return "noop"
	default:
		return "rejected"
	}
}

type Outcome struct {
	Kind   Kind
	Reason string
}

// Err returns the validation error for a rejected outcome and nil otherwise.
func (o Outcome) Err() error {
	if o.Kind != Rejected {
		return nil
	}

	return usecase.NewValidationError(o.Reason)
}

// rules is keyed by the requested status, then by the current one.
var rules = map[entity.OrderStatus]map[entity.OrderStatus]Kind{
	entity.StatusPaid: {
		entity.StatusPending: Apply,
		entity.StatusPaid:    NoOp,
	},
	entity.StatusShipped: {
		entity.StatusPaid:    Apply,
		entity.StatusShipped: NoOp,
	},
	entity.StatusDelivered: {
		entity.StatusShipped:   Apply,
		entity.StatusDelivered: NoOp,
	},
	entity.StatusCancelled: {
		entity.StatusPending:   Apply,
		entity.StatusPaid:      Apply,
		entity.StatusDelivered: Apply,
		entity.StatusCancelled: NoOp,
	},
}

// pending has no entry in rules: nothing can be moved back to it, itself included.
var rejectReasons = map[entity.OrderStatus]string{
	entity.StatusPending:   "Cannot mark order as pending",
	entity.StatusPaid:      "Cannot mark order as paid unless pending",
	entity.StatusShipped:   "Cannot ship order that isn't paid",
	entity.StatusDelivered: "Cannot deliver order that isn't shipped",
	entity.StatusCancelled: "Cannot cancel an order that is shipped",
}

const unknownStatusReason = "Invalid status"

// Decide judges a requested status change without touching any order.
func Decide(current, requested entity.OrderStatus) Outcome {
	if kind, ok := rules[requested][current]; ok {
		return Outcome{Kind: kind}
	}

	reason, ok := rejectReasons[requested]
	if !ok {
		reason = unknownStatusReason
	}

	return Outcome{
		Kind:   Rejected,
		Reason: reason,
	}
}
