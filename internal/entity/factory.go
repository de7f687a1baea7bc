package entity

import (
	"fmt"

	"github.com/Lumos-Labs-HQ/airgen/internal/faker"
)

// Factory builds records of any generatable Kind from fake field values.
type Factory struct {
	fake *faker.Faker
}

func NewFactory(f *faker.Faker) *Factory {
	return &Factory{fake: f}
}

// CreateOne generates a single record and applies overrides on top of it.
func (f *Factory) CreateOne(kind Kind, overrides Record) (Record, error) {
	typed, err := f.generate(kind)
	if err != nil {
		return nil, err
	}

	rec, err := ToRecord(typed)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s record: %w", kind, err)
	}

	if len(overrides) == 0 {
		return rec, nil
	}
	return Merge(rec, overrides), nil
}

// CreateMany generates count records, each with the same overrides applied.
func (f *Factory) CreateMany(kind Kind, count int, overrides Record) ([]Record, error) {
	if !f.Supports(kind) {
		return nil, &UnsupportedKindError{Kind: kind, Op: "generate"}
	}
	if count < 0 {
		return nil, fmt.Errorf("invalid amount %d for %s: must not be negative", count, kind)
	}

	batch := make([]Record, 0, count)
	for i := 0; i < count; i++ {
		rec, err := f.CreateOne(kind, overrides)
		if err != nil {
			return nil, err
		}
		batch = append(batch, rec)
	}
	return batch, nil
}

// Supports reports whether kind has a generator.
func (f *Factory) Supports(kind Kind) bool {
	return kind.Valid() && kind != Request
}

func (f *Factory) generate(kind Kind) (any, error) {
	switch kind {
	case User:
		return f.user(), nil
	case Employee:
		return f.employee(), nil
	case Flight:
		return f.flight(), nil
	case Passenger:
		return f.passenger(), nil
	case Plane:
		return f.plane(), nil
	case CreditCard:
		return f.creditCard(), nil
	case Payment:
		return f.payment(), nil
	case Refund:
		return f.refund(), nil
	case Bank:
		return f.bank(), nil
	default:
		return nil, &UnsupportedKindError{Kind: kind, Op: "generate"}
	}
}

func (f *Factory) user() UserRecord {
	now := faker.FormatTime(f.fake.Now())
	return UserRecord{
		Name:               f.fake.Name(),
		Surname:            f.fake.Surname(),
		Username:           f.fake.Username(),
		Email:              f.fake.Email(),
		PasswordHash:       f.fake.SHA256(),
		Salt:               f.fake.SHA1(),
		Phone:              f.fake.Phone(),
		Gender:             f.fake.Gender(),
		BirthDate:          faker.FormatTime(f.fake.BirthDate()),
		LastLogin:          now,
		LastPasswordChange: now,
	}
}

func (f *Factory) employee() EmployeeEnvelope {
	return EmployeeEnvelope{Employee: EmployeeRecord{
		EmployeeID:       f.fake.EmployeeID(),
		Name:             f.fake.Name(),
		Surname:          f.fake.Surname(),
		Email:            f.fake.Email(),
		Phone:            f.fake.Phone(),
		Address:          f.fake.Address(),
		Gender:           f.fake.Gender(),
		BirthDate:        faker.FormatTime(f.fake.BirthDate()),
		HireDate:         faker.FormatTime(f.fake.HireDate()),
		Position:         f.fake.JobTitle(),
		Role:             f.fake.Role(),
		Salary:           f.fake.Salary(),
		Status:           f.fake.Status(),
		EmergencyContact: f.fake.FullName(),
		EmergencyPhone:   f.fake.Phone(),
		ProfileImageURL:  f.fake.ImageURL(),
		PasswordHash:     f.fake.SHA256(),
		Salt:             f.fake.SHA1(),
	}}
}

func (f *Factory) flight() FlightRecord {
	departure := f.fake.FutureDate()
	arrival := departure.Add(f.fake.Hours(1, 12))
	return FlightRecord{
		FlightNumber:          f.fake.FlightNumber(),
		DepartureAirport:      f.fake.DepartureAirport(),
		DestinationAirport:    f.fake.DestinationAirport(),
		DepartureDatetime:     faker.FormatTime(departure),
		ArrivalDatetime:       faker.FormatTime(arrival),
		DepartureGateNumber:   f.fake.Gate(),
		DestinationGateNumber: f.fake.Gate(),
		PlaneRegistration:     f.fake.PlaneRegistration(),
		Status:                f.fake.FlightStatus(),
		Price:                 f.fake.Amount(100, 2000),
	}
}

func (f *Factory) passenger() PassengerRecord {
	return PassengerRecord{
		NationalID:       f.fake.NationalID(),
		PNRNo:            f.fake.PNR(),
		FlightNumber:     f.fake.FlightNumber(),
		CreditCardNumber: f.fake.CardNumber(),
		BaggageAllowance: f.fake.BaggageAllowance(),
		BaggageID:        f.fake.BaggageID(),
		FareType:         f.fake.FareType(),
		Seat:             0,
		Meal:             f.fake.Meal(),
		ExtraBaggage:     f.fake.ExtraBaggage(),
		CheckIn:          f.fake.Bool(),
		Name:             f.fake.Name(),
		Surname:          f.fake.Surname(),
		Email:            f.fake.Email(),
		Phone:            f.fake.Phone(),
		Gender:           f.fake.Gender(),
		BirthDate:        faker.FormatTime(f.fake.BirthDate()),
		CIPMember:        f.fake.Bool(),
		VIPMember:        f.fake.Bool(),
		Disabled:         f.fake.Bool(),
		Child:            f.fake.Bool(),
	}
}

func (f *Factory) plane() PlaneRecord {
	return PlaneRecord{
		Registration: f.fake.PlaneRegistration(),
		Model:        f.fake.PlaneModel(),
		Manufacturer: f.fake.Manufacturer(),
		Capacity:     f.fake.Capacity(),
		Status:       f.fake.Status(),
	}
}

func (f *Factory) creditCard() CreditCardRecord {
	return CreditCardRecord{
		CardNumber:        f.fake.CardNumber(),
		CardHolderName:    f.fake.Name(),
		CardHolderSurname: f.fake.Surname(),
		ExpirationMonth:   f.fake.ExpirationMonth(),
		ExpirationYear:    f.fake.ExpirationYear(),
		CVV:               f.fake.CVV(),
		CardType:          f.fake.CardType(),
		Amount:            f.fake.Amount(1000, 100000),
		Currency:          currency,
	}
}

func (f *Factory) payment() PaymentRecord {
	return PaymentRecord{
		PaymentID:     f.fake.UUID(),
		UserID:        f.fake.UUID(),
		Amount:        f.fake.Amount(10, 5000),
		Currency:      currency,
		PaymentMethod: f.fake.PaymentMethod(),
		Status:        f.fake.Status(),
	}
}

func (f *Factory) refund() RefundRecord {
	return RefundRecord{
		RefundID:  f.fake.UUID(),
		PaymentID: f.fake.UUID(),
		Amount:    f.fake.Amount(10, 5000),
		Currency:  currency,
		Reason:    f.fake.Sentence(20),
		Status:    f.fake.Status(),
	}
}

func (f *Factory) bank() BankRecord {
	return BankRecord{
		ID:                f.fake.UUID(),
		CardNumber:        f.fake.CardNumber(),
		CardHolderName:    f.fake.Name(),
		CardHolderSurname: f.fake.Surname(),
		ExpirationMonth:   f.fake.ExpirationMonth(),
		ExpirationYear:    f.fake.ExpirationYear(),
		CVV:               f.fake.CVV(),
		CardType:          f.fake.CardType(),
		Amount:            f.fake.Amount(1000, 100000),
		Currency:          currency,
		IssuerBank:        f.fake.Company(),
		Status:            f.fake.Status(),
		CreatedAt:         faker.FormatTime(f.fake.Now()),
	}
}
