package entity

import (
	"strconv"
	"strings"
)

// Kind is the closed set of records the generator knows about.
type Kind int

const (
	User Kind = iota
	Employee
	Flight
	Passenger
	Plane
	CreditCard
	Payment
	Refund
	Bank
	Request
)

var kindNames = [...]string{
	User:       "user",
	Employee:   "employee",
	Flight:     "flight",
	Passenger:  "passenger",
	Plane:      "plane",
	CreditCard: "creditcard",
	Payment:    "payment",
	Refund:     "refund",
	Bank:       "bank",
	Request:    "request",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

func (k Kind) Valid() bool {
	return k >= 0 && int(k) < len(kindNames)
}

func AllKinds() []Kind {
	kinds := make([]Kind, len(kindNames))
	for i := range kindNames {
		kinds[i] = Kind(i)
	}
	return kinds
}

func KindNames() []string {
	names := make([]string, len(kindNames))
	copy(names, kindNames[:])
	return names
}

// ParseKind resolves a user supplied name, ignoring case and surrounding space.
func ParseKind(name string) (Kind, error) {
	needle := strings.ToLower(strings.TrimSpace(name))
	for i, n := range kindNames {
		if n == needle {
			return Kind(i), nil
		}
	}
	return 0, &UnknownKindError{Name: name}
}
