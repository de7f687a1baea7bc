package scheme

import (
	"context"
	"fmt"

	"github.com/Lumos-Labs-HQ/airgen/internal/entity"
)

// Counts sets the size of each step of the standard scheme.
type Counts struct {
	Users      int
	Employees  int
	Planes     int
	Flights    int
	Passengers int
}

func (c Counts) Validate() error {
	for _, count := range []struct {
		name string
		n    int
	}{
		{"users", c.Users},
		{"employees", c.Employees},
		{"planes", c.Planes},
		{"flights", c.Flights},
		{"passengers", c.Passengers},
	} {
		if count.n < 0 {
			return fmt.Errorf("%s count must not be negative, got %d", count.name, count.n)
		}
	}
	return nil
}

type Options struct {
	// Seed drives reference sampling. Zero picks a time based seed.
	Seed int64
	// SeatCapacity is used for a flight whose plane has no capacity.
	SeatCapacity int
}

// flightNumberAttempts bounds how often a colliding flight number is redrawn.
const flightNumberAttempts = 16

// Standard returns the engine for the canonical dependency order:
// users, credit cards, employees, planes, flights, passengers.
func Standard(factory *entity.Factory, counts Counts, opts Options) (*Engine, error) {
	if err := counts.Validate(); err != nil {
		return nil, err
	}

	steps := []Step{
		{Kind: entity.User, Size: counts.Users, Build: buildMany(factory, entity.User, counts.Users)},
		{Kind: entity.CreditCard, Size: counts.Users, Build: buildCreditCards(factory), Requires: []entity.Kind{entity.User}},
	}
	if counts.Employees > 0 {
		steps = append(steps, Step{Kind: entity.Employee, Size: counts.Employees, Build: buildMany(factory, entity.Employee, counts.Employees)})
	}
	steps = append(steps,
		Step{Kind: entity.Plane, Size: counts.Planes, Build: buildMany(factory, entity.Plane, counts.Planes)},
		Step{Kind: entity.Flight, Size: counts.Flights, Build: buildFlights(factory, counts.Flights), Requires: []entity.Kind{entity.Plane}},
		Step{Kind: entity.Passenger, Size: counts.Passengers, Build: buildPassengers(factory, counts.Passengers), Requires: []entity.Kind{entity.Flight, entity.CreditCard}},
	)

	steps, err := Order(steps)
	if err != nil {
		return nil, err
	}

	return NewEngine(opts.Seed, NewSeatAllocator(opts.SeatCapacity), steps...), nil
}

func buildMany(factory *entity.Factory, kind entity.Kind, n int) BuildFunc {
	return func(ctx context.Context, e *Engine) ([]entity.Record, error) {
		return factory.CreateMany(kind, n, nil)
	}
}

// buildCreditCards issues one card per user, in the user's name.
func buildCreditCards(factory *entity.Factory) BuildFunc {
	return func(ctx context.Context, e *Engine) ([]entity.Record, error) {
		users := e.Output(entity.User)
		cards := make([]entity.Record, 0, len(users))
		for _, user := range users {
			name, _ := user.String("name")
			surname, _ := user.String("surname")
			card, err := factory.CreateOne(entity.CreditCard, entity.Record{
				"card_holder_name":    name,
				"card_holder_surname": surname,
			})
			if err != nil {
				return nil, err
			}
			cards = append(cards, card)
		}
		return cards, nil
	}
}

// buildFlights flies each flight with a sampled plane. The plane's capacity
// becomes the flight's seat count.
func buildFlights(factory *entity.Factory, n int) BuildFunc {
	return func(ctx context.Context, e *Engine) ([]entity.Record, error) {
		flights := make([]entity.Record, 0, n)
		used := make(map[string]bool, n)

		for i := 0; i < n; i++ {
			plane, err := e.Pick(entity.Flight, entity.Plane)
			if err != nil {
				return nil, err
			}
			registration, ok := plane.String("registration")
			if !ok {
				return nil, fmt.Errorf("plane record has no registration")
			}

			var flight entity.Record
			for attempt := 0; attempt < flightNumberAttempts; attempt++ {
				flight, err = factory.CreateOne(entity.Flight, entity.Record{"plane_registration": registration})
				if err != nil {
					return nil, err
				}
				if number, _ := flight.String("flight_number"); !used[number] {
					break
				}
			}

			number, _ := flight.String("flight_number")
			if used[number] {
				return nil, fmt.Errorf("could not draw a unique flight number after %d attempts", flightNumberAttempts)
			}
			used[number] = true

			if capacity, ok := plane.Int("capacity"); ok && capacity > 0 {
				e.Seats().SetCapacity(number, capacity)
			}
			flights = append(flights, flight)
		}
		return flights, nil
	}
}

// buildPassengers books each passenger on a sampled flight, in the next free
// seat of that flight, paying with a sampled credit card.
func buildPassengers(factory *entity.Factory, n int) BuildFunc {
	return func(ctx context.Context, e *Engine) ([]entity.Record, error) {
		passengers := make([]entity.Record, 0, n)

		for i := 0; i < n; i++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			flight, err := e.Pick(entity.Passenger, entity.Flight)
			if err != nil {
				return nil, err
			}
			card, err := e.Pick(entity.Passenger, entity.CreditCard)
			if err != nil {
				return nil, err
			}

			number, _ := flight.String("flight_number")
			seat, err := e.Seats().Next(number)
			if err != nil {
				return nil, err
			}
			cardNumber, _ := card.String("card_number")

			passenger, err := factory.CreateOne(entity.Passenger, entity.Record{
				"flight_number":      number,
				"seat":               seat,
				"credit_card_number": cardNumber,
			})
			if err != nil {
				return nil, err
			}
			passengers = append(passengers, passenger)
		}
		return passengers, nil
	}
}
