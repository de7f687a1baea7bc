package entity

type UserRecord struct {
	Name               string `json:"name"`
	Surname            string `json:"surname"`
	Username           string `json:"username"`
	Email              string `json:"email"`
	PasswordHash       string `json:"password_hash"`
	Salt               string `json:"salt"`
	Phone              string `json:"phone"`
	Gender             string `json:"gender"`
	BirthDate          string `json:"birth_date"`
	LastLogin          string `json:"last_login"`
	LastPasswordChange string `json:"last_password_change"`
}

type EmployeeRecord struct {
	EmployeeID       string `json:"employee_id"`
	Name             string `json:"name"`
	Surname          string `json:"surname"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Address          string `json:"address"`
	Gender           string `json:"gender"`
	BirthDate        string `json:"birth_date"`
	HireDate         string `json:"hire_date"`
	Position         string `json:"position"`
	Role             string `json:"role"`
	Salary           int    `json:"salary"`
	Status           string `json:"status"`
	EmergencyContact string `json:"emergency_contact"`
	EmergencyPhone   string `json:"emergency_phone"`
	ProfileImageURL  string `json:"profile_image_url"`
	PasswordHash     string `json:"password_hash"`
	Salt             string `json:"salt"`
}

// EmployeeEnvelope is the shape the employees endpoint accepts.
type EmployeeEnvelope struct {
	Employee EmployeeRecord `json:"employee"`
}

type FlightRecord struct {
	FlightNumber          string  `json:"flight_number"`
	DepartureAirport      string  `json:"departure_airport"`
	DestinationAirport    string  `json:"destination_airport"`
	DepartureDatetime     string  `json:"departure_datetime"`
	ArrivalDatetime       string  `json:"arrival_datetime"`
	DepartureGateNumber   string  `json:"departure_gate_number"`
	DestinationGateNumber string  `json:"destination_gate_number"`
	PlaneRegistration     string  `json:"plane_registration"`
	Status                string  `json:"status"`
	Price                 float64 `json:"price"`
}

type PassengerRecord struct {
	NationalID       string `json:"national_id"`
	PNRNo            string `json:"pnr_no"`
	FlightNumber     string `json:"flight_number"`
	CreditCardNumber string `json:"credit_card_number"`
	BaggageAllowance int    `json:"baggage_allowance"`
	BaggageID        string `json:"baggage_id"`
	FareType         string `json:"fare_type"`
	Seat             int    `json:"seat"`
	Meal             string `json:"meal"`
	ExtraBaggage     int    `json:"extra_baggage"`
	CheckIn          bool   `json:"check_in"`
	Name             string `json:"name"`
	Surname          string `json:"surname"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Gender           string `json:"gender"`
	BirthDate        string `json:"birth_date"`
	CIPMember        bool   `json:"cip_member"`
	VIPMember        bool   `json:"vip_member"`
	Disabled         bool   `json:"disabled"`
	Child            bool   `json:"child"`
}

type PlaneRecord struct {
	Registration string `json:"registration"`
	Model        string `json:"model"`
	Manufacturer string `json:"manufacturer"`
	Capacity     int    `json:"capacity"`
	Status       string `json:"status"`
}

type CreditCardRecord struct {
	CardNumber        string  `json:"card_number"`
	CardHolderName    string  `json:"card_holder_name"`
	CardHolderSurname string  `json:"card_holder_surname"`
	ExpirationMonth   int     `json:"expiration_month"`
	ExpirationYear    int     `json:"expiration_year"`
	CVV               string  `json:"cvv"`
	CardType          string  `json:"card_type"`
	Amount            float64 `json:"amount"`
	Currency          string  `json:"currency"`
}

type PaymentRecord struct {
	PaymentID     string  `json:"payment_id"`
	UserID        string  `json:"user_id"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	PaymentMethod string  `json:"payment_method"`
	Status        string  `json:"status"`
}

type RefundRecord struct {
	RefundID  string  `json:"refund_id"`
	PaymentID string  `json:"payment_id"`
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	Reason    string  `json:"reason"`
	Status    string  `json:"status"`
}

type BankRecord struct {
	ID                string  `json:"id"`
	CardNumber        string  `json:"card_number"`
	CardHolderName    string  `json:"card_holder_name"`
	CardHolderSurname string  `json:"card_holder_surname"`
	ExpirationMonth   int     `json:"expiration_month"`
	ExpirationYear    int     `json:"expiration_year"`
	CVV               string  `json:"cvv"`
	CardType          string  `json:"card_type"`
	Amount            float64 `json:"amount"`
	Currency          string  `json:"currency"`
	IssuerBank        string  `json:"issuer_bank"`
	Status            string  `json:"status"`
	CreatedAt         string  `json:"created_at"`
}

const currency = "TRY"
