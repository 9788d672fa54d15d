// Package factory provides factory-method and abstract-factory constructors
// for the notification and payment product families.
package factory

import (
	"errors"
	"fmt"

	"github.com/randalmurphal/creational/pkg/creational/registry"
)

// Sentinel errors for factory selection.
var (
	// ErrUnknownNotificationKind indicates no factory is registered for
	// the requested notification kind.
	ErrUnknownNotificationKind = errors.New("unknown notification kind")

	// ErrUnknownPaymentMethod indicates no constructor is registered for
	// the requested payment method.
	ErrUnknownPaymentMethod = errors.New("unknown payment method")
)

// Sender delivers an already-formatted message.
type Sender interface {
	Send(message string) (string, error)
}

// Formatter prepares a message for a specific channel.
type Formatter interface {
	Format(message string) string
}

// NotificationFactory creates a matched family of Sender and Formatter.
// A family's products are designed to work together; mixing products from
// different families is a caller bug this interface exists to prevent.
type NotificationFactory interface {
	NewSender() Sender
	NewFormatter() Formatter
}

// Email family.

type emailSender struct{}

func (emailSender) Send(message string) (string, error) {
	return "EMAIL SENT: " + message, nil
}

type emailFormatter struct{}

func (emailFormatter) Format(message string) string {
	return "[EMAIL] " + message
}

// EmailFactory creates the email product family.
type EmailFactory struct{}

// NewSender implements NotificationFactory.
func (EmailFactory) NewSender() Sender { return emailSender{} }

// NewFormatter implements NotificationFactory.
func (EmailFactory) NewFormatter() Formatter { return emailFormatter{} }

// SMS family.

type smsSender struct{}

func (smsSender) Send(message string) (string, error) {
	return "SMS SENT: " + message, nil
}

type smsFormatter struct{}

func (smsFormatter) Format(message string) string {
	return "[SMS] " + message
}

// SMSFactory creates the SMS product family.
type SMSFactory struct{}

// NewSender implements NotificationFactory.
func (SMSFactory) NewSender() Sender { return smsSender{} }

// NewFormatter implements NotificationFactory.
func (SMSFactory) NewFormatter() Formatter { return smsFormatter{} }

// notificationFactories maps kind names to their factories. Additional
// families may be registered at init time by other packages.
var notificationFactories = registry.New[string, NotificationFactory]()

func init() {
	notificationFactories.Register("email", EmailFactory{})
	notificationFactories.Register("sms", SMSFactory{})
}

// RegisterNotificationFactory adds a factory for a kind, replacing any
// existing registration.
func RegisterNotificationFactory(kind string, f NotificationFactory) {
	notificationFactories.Register(kind, f)
}

// ForKind returns the factory registered for a notification kind.
func ForKind(kind string) (NotificationFactory, error) {
	f, ok := notificationFactories.Get(kind)
	if !ok {
		err := fmt.Errorf("%w: %q", ErrUnknownNotificationKind, kind)
		observeCreation(kind, "notification", err)
		return nil, err
	}
	observeCreation(kind, "notification", nil)
	return f, nil
}

// NotificationKinds returns the registered kind names in unspecified order.
func NotificationKinds() []string {
	return notificationFactories.Keys()
}

// App is the client side of the abstract factory: it composes a sender and
// formatter from one family and never touches concrete product types.
type App struct {
	sender    Sender
	formatter Formatter
}

// NewApp builds a client from a factory's product family.
func NewApp(f NotificationFactory) *App {
	return &App{
		sender:    f.NewSender(),
		formatter: f.NewFormatter(),
	}
}

// Notify formats and sends a message, returning the delivery receipt line.
func (a *App) Notify(message string) (string, error) {
	return a.sender.Send(a.formatter.Format(message))
}

// notificationApps caches one App per kind. Apps are stateless once built,
// so sharing one per kind is safe.
var notificationApps = registry.New[string, *App]()

// AppFor returns the shared client for a notification kind, building it
// lazily on first use. All callers for the same kind get the same *App.
// An unknown kind errors on every call; nothing is cached for it.
func AppFor(kind string) (*App, error) {
	return notificationApps.GetOrCreateErr(kind, func() (*App, error) {
		f, err := ForKind(kind)
		if err != nil {
			return nil, err
		}
		return NewApp(f), nil
	})
}
