package factory

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/randalmurphal/creational/pkg/creational/registry"
)

// Payment processes an amount and produces a receipt. Callers obtain
// implementations through NewPayment only; the concrete processors are
// unexported.
type Payment interface {
	// Method returns the payment method name, e.g. "card".
	Method() string

	// Process charges the amount and returns a receipt.
	Process(amount float64) (Receipt, error)
}

// Receipt records a completed payment.
type Receipt struct {
	ID     string
	Method string
	Amount float64
}

// String formats the receipt for display.
func (r Receipt) String() string {
	return fmt.Sprintf("%s payment of %.2f (receipt %s)", r.Method, r.Amount, r.ID)
}

type cardPayment struct{}

func (cardPayment) Method() string { return "card" }

func (p cardPayment) Process(amount float64) (Receipt, error) {
	if amount <= 0 {
		return Receipt{}, fmt.Errorf("card payment: amount must be positive, got %.2f", amount)
	}
	return Receipt{ID: uuid.NewString(), Method: p.Method(), Amount: amount}, nil
}

type upiPayment struct{}

func (upiPayment) Method() string { return "upi" }

func (p upiPayment) Process(amount float64) (Receipt, error) {
	if amount <= 0 {
		return Receipt{}, fmt.Errorf("upi payment: amount must be positive, got %.2f", amount)
	}
	return Receipt{ID: uuid.NewString(), Method: p.Method(), Amount: amount}, nil
}

type netBankingPayment struct{}

func (netBankingPayment) Method() string { return "netbanking" }

func (p netBankingPayment) Process(amount float64) (Receipt, error) {
	if amount <= 0 {
		return Receipt{}, fmt.Errorf("netbanking payment: amount must be positive, got %.2f", amount)
	}
	return Receipt{ID: uuid.NewString(), Method: p.Method(), Amount: amount}, nil
}

// paymentConstructors maps method names to constructors. The constructor
// indirection keeps concrete types out of the package API.
var paymentConstructors = registry.New[string, func() Payment]()

func init() {
	paymentConstructors.Register("card", func() Payment { return cardPayment{} })
	paymentConstructors.Register("upi", func() Payment { return upiPayment{} })
	paymentConstructors.Register("netbanking", func() Payment { return netBankingPayment{} })
}

// RegisterPayment adds a constructor for a payment method, replacing any
// existing registration.
func RegisterPayment(method string, construct func() Payment) {
	paymentConstructors.Register(method, construct)
}

// NewPayment returns a processor for the given method.
func NewPayment(method string) (Payment, error) {
	construct, ok := paymentConstructors.Get(method)
	if !ok {
		err := fmt.Errorf("%w: %q", ErrUnknownPaymentMethod, method)
		observeCreation(method, "payment", err)
		return nil, err
	}
	observeCreation(method, "payment", nil)
	return construct(), nil
}

// PaymentMethods returns the registered method names in unspecified order.
func PaymentMethods() []string {
	return paymentConstructors.Keys()
}
