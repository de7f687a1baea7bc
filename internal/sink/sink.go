package sink

import (
	"context"

	"github.com/Lumos-Labs-HQ/airgen/internal/entity"
)

// Sink delivers one batch of records of a single kind.
type Sink interface {
	Submit(ctx context.Context, kind entity.Kind, batch []entity.Record) error
}

// Endpoint maps a kind to its API path. Bank, Payment, Refund and Request
// are no longer routed by the operations API.
func Endpoint(kind entity.Kind) (string, error) {
	switch kind {
	case entity.User:
		return "/users", nil
	case entity.Employee:
		return "/employees", nil
	case entity.Flight:
		return "/flights", nil
	case entity.Passenger:
		return "/passengers", nil
	case entity.Plane:
		return "/planes", nil
	case entity.CreditCard:
		return "/creditcards", nil
	default:
		return "", &entity.UnsupportedKindError{Kind: kind, Op: "submit"}
	}
}

// Routable reports whether kind has an endpoint.
func Routable(kind entity.Kind) bool {
	_, err := Endpoint(kind)
	return err == nil
}
