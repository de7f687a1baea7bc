package faker

import (
	"crypto/sha1"
	"crypto/sha256"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"
)

// TimeLayout is the timestamp format accepted by the operations API.
const TimeLayout = "2006-01-02T15:04:05Z"

var (
	genders        = []string{"male", "female"}
	statuses       = []string{"active", "inactive"}
	roles          = []string{"hr", "admin", "flight_planner", "passenger_services", "ground_services"}
	flightStatuses = []string{"scheduled", "delayed", "cancelled", "departed", "arrived"}
	meals          = []string{"standard", "vegetarian", "vegan", "halal", "kosher"}
	fareTypes      = []string{"economy", "business", "first"}
	cardTypes      = []string{"visa", "mastercard"}
	carriers       = []string{"TK", "PC", "XQ", "J2"}
	departures     = []string{"IST", "SAW", "ESB", "AYT", "ADB"}
	destinations   = []string{"LHR", "CDG", "FRA", "JFK", "DXB"}
	terminals      = []string{"A", "B", "C", "D"}
	planeModels    = []string{"737", "747", "777", "787", "A320", "A330", "A350", "A380"}
	manufacturers  = []string{"Boeing", "Airbus"}
	paymentMethods = []string{"credit_card", "debit_card", "bank_transfer", "paypal"}
)

type Faker struct {
	fake *gofakeit.Faker
	now  func() time.Time
}

// New returns a Faker seeded with seed. A zero seed picks a random one.
func New(seed int64) *Faker {
	return &Faker{
		fake: gofakeit.New(seed),
		now:  time.Now,
	}
}

// WithClock pins the reference time used for relative dates.
func (f *Faker) WithClock(now func() time.Time) *Faker {
	f.now = now
	return f
}

func FormatTime(t time.Time) string {
	return t.UTC().Truncate(time.Second).Format(TimeLayout)
}

func (f *Faker) Now() time.Time {
	return f.now()
}

func (f *Faker) Phone() string {
	return f.fake.Numerify("+905#########")
}

func (f *Faker) Gender() string       { return f.fake.RandomString(genders) }
func (f *Faker) Status() string       { return f.fake.RandomString(statuses) }
func (f *Faker) Role() string         { return f.fake.RandomString(roles) }
func (f *Faker) FlightStatus() string { return f.fake.RandomString(flightStatuses) }
func (f *Faker) Meal() string         { return f.fake.RandomString(meals) }
func (f *Faker) FareType() string     { return f.fake.RandomString(fareTypes) }
func (f *Faker) CardType() string     { return f.fake.RandomString(cardTypes) }
func (f *Faker) PaymentMethod() string {
	return f.fake.RandomString(paymentMethods)
}

func (f *Faker) BirthDate() time.Time {
	now := f.now()
	return f.fake.DateRange(now.AddDate(-100, 0, 0), now.AddDate(-18, 0, 0))
}

func (f *Faker) HireDate() time.Time {
	now := f.now()
	return f.fake.DateRange(now.AddDate(-2, 0, 0), now)
}

// FutureDate returns an instant within the next 30 days.
func (f *Faker) FutureDate() time.Time {
	now := f.now()
	return f.fake.DateRange(now, now.AddDate(0, 0, 30))
}

func (f *Faker) Hours(min, max int) time.Duration {
	return time.Duration(f.fake.Number(min, max)) * time.Hour
}

func (f *Faker) BaggageAllowance() int { return f.fake.Number(0, 30) }
func (f *Faker) ExtraBaggage() int     { return f.fake.Number(0, 2) }
func (f *Faker) Salary() int           { return f.fake.Number(30000, 150000) }

func (f *Faker) BaggageID() string {
	return strings.ToUpper(f.fake.Lexify("??")) + f.fake.Numerify("########")
}

func (f *Faker) PNR() string {
	return strings.ToUpper(f.fake.Lexify("??????"))
}

func (f *Faker) EmployeeID() string {
	return f.fake.Numerify("EMP####")
}

func (f *Faker) FlightNumber() string {
	return fmt.Sprintf("%s%d", f.fake.RandomString(carriers), f.fake.Number(100, 9999))
}

func (f *Faker) DepartureAirport() string   { return f.fake.RandomString(departures) }
func (f *Faker) DestinationAirport() string { return f.fake.RandomString(destinations) }

func (f *Faker) Gate() string {
	return fmt.Sprintf("%s%d", f.fake.RandomString(terminals), f.fake.Number(1, 30))
}

// PlaneRegistration uses the Turkish civil aircraft prefix.
func (f *Faker) PlaneRegistration() string {
	return fmt.Sprintf("TC-%d", f.fake.Number(10000, 99999))
}

func (f *Faker) PlaneModel() string   { return f.fake.RandomString(planeModels) }
func (f *Faker) Manufacturer() string { return f.fake.RandomString(manufacturers) }
func (f *Faker) Capacity() int        { return f.fake.Number(100, 500) }

func (f *Faker) CardNumber() string { return f.fake.Numerify("################") }
func (f *Faker) CVV() string        { return f.fake.Numerify("###") }
func (f *Faker) NationalID() string { return f.fake.Numerify("###########") }

func (f *Faker) ExpirationMonth() int { return f.fake.Number(1, 12) }

func (f *Faker) ExpirationYear() int {
	return f.now().Year() + f.fake.Number(1, 5)
}

func (f *Faker) UUID() string     { return f.fake.UUID() }
func (f *Faker) Name() string     { return f.fake.FirstName() }
func (f *Faker) Surname() string  { return f.fake.LastName() }
func (f *Faker) FullName() string { return f.fake.Name() }
func (f *Faker) Email() string    { return f.fake.Email() }
func (f *Faker) Username() string { return f.fake.Username() }
func (f *Faker) Company() string  { return f.fake.Company() }
func (f *Faker) JobTitle() string { return f.fake.JobTitle() }
func (f *Faker) Bool() bool       { return f.fake.Bool() }

func (f *Faker) Address() string {
	return f.fake.Address().Address
}

func (f *Faker) ImageURL() string {
	return f.fake.ImageURL(256, 256)
}

func (f *Faker) Sentence(words int) string {
	return f.fake.Sentence(words)
}

// SHA256 and SHA1 hash a random token so seeded runs stay reproducible.
func (f *Faker) SHA256() string {
	return fmt.Sprintf("%x", sha256.Sum256([]byte(f.fake.UUID())))
}

func (f *Faker) SHA1() string {
	return fmt.Sprintf("%x", sha1.Sum([]byte(f.fake.UUID())))
}

// Amount returns a value in [min, max] rounded to two decimals.
func (f *Faker) Amount(min, max float64) float64 {
	return math.Round(f.fake.Float64Range(min, max)*100) / 100
}
