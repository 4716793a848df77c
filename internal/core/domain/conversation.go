package domain

import "github.com/google/uuid"

// StateKind discriminates ConversationState values.
type StateKind int

const (
	StateRegistrationName StateKind = iota + 1
	StateRegistrationPhone
	StateRegistrationEmail
	StateRegistrationLanguage
	StateSellerName
	StateSellerPhone
	StateSellerBrand
	StateSellerProducts
	StateSearching
	StateOrderAddress
	StateOrderPayment
	StateChangingLanguage
	StateConfirmClearCart
)

var stateKindNames = map[StateKind]string{
	StateRegistrationName:     "registration:name",
	StateRegistrationPhone:    "registration:phone",
	StateRegistrationEmail:    "registration:email",
	StateRegistrationLanguage: "registration:language",
	StateSellerName:           "seller:name",
	StateSellerPhone:          "seller:phone",
	StateSellerBrand:          "seller:brand",
	StateSellerProducts:       "seller:products",
	StateSearching:            "searching",
	StateOrderAddress:         "order:address",
	StateOrderPayment:         "order:payment",
	StateChangingLanguage:     "changing_language",
	StateConfirmClearCart:     "confirm_clear_cart",
}

func (k StateKind) String() string {
	if name, ok := stateKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ConversationState is an in-flight wizard step. Idle is represented by a nil state.
// Each concrete type carries the answers collected so far.
type ConversationState interface {
	Kind() StateKind
}

type RegistrationName struct{}

type RegistrationPhone struct {
	Name string
}

type RegistrationEmail struct {
	Name  string
	Phone string
}

type RegistrationLanguage struct {
	Name  string
	Phone string
	Email string
}

type SellerName struct{}

type SellerPhone struct {
	Name string
}

type SellerBrand struct {
	Name  string
	Phone string
}

type SellerProducts struct {
	Name  string
	Phone string
	Brand string
}

type Searching struct{}

type OrderAddress struct{}

// OrderPayment holds the delivery details collected before the payment method is chosen.
type OrderPayment struct {
	Address   string
	Latitude  *float64
	Longitude *float64
}

type ChangingLanguage struct{}

// ConfirmClearCart targets a specific user's cart.
type ConfirmClearCart struct {
	UserID uuid.UUID
}

func (RegistrationName) Kind() StateKind     { return StateRegistrationName }
func (RegistrationPhone) Kind() StateKind    { return StateRegistrationPhone }
func (RegistrationEmail) Kind() StateKind    { return StateRegistrationEmail }
func (RegistrationLanguage) Kind() StateKind { return StateRegistrationLanguage }
func (SellerName) Kind() StateKind           { return StateSellerName }
func (SellerPhone) Kind() StateKind          { return StateSellerPhone }
func (SellerBrand) Kind() StateKind          { return StateSellerBrand }
func (SellerProducts) Kind() StateKind       { return StateSellerProducts }
func (Searching) Kind() StateKind            { return StateSearching }
func (OrderAddress) Kind() StateKind         { return StateOrderAddress }
func (OrderPayment) Kind() StateKind         { return StateOrderPayment }
func (ChangingLanguage) Kind() StateKind     { return StateChangingLanguage }
func (ConfirmClearCart) Kind() StateKind     { return StateConfirmClearCart }
