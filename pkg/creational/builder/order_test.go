package builder

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMinimalOrder(t *testing.T) {
	order, err := NewOrderBuilder("Datchu").
		AddItem("Masala Dosa").
		Build()
	require.NoError(t, err)

	assert.Equal(t, "Datchu", order.Restaurant())
	assert.Equal(t, []string{"Masala Dosa"}, order.Items())
	assert.Empty(t, order.Address())
	assert.False(t, order.Contactless())
	assert.True(t, order.ScheduledTime().IsZero())

	_, err = uuid.Parse(order.ID())
	assert.NoError(t, err)
}

func TestBuildFullOrder(t *testing.T) {
	at := time.Now().Add(2 * time.Hour)

	order, err := NewOrderBuilder("Saravana Bhavan").
		AddItem("Idli").
		AddItem("Filter Coffee").
		DeliverTo("12 Beach Rd, Chennai").
		WithCoupon("FIRST50").
		WithInstructions("ring twice").
		Contactless().
		ScheduleFor(at).
		Build()
	require.NoError(t, err)

	assert.Equal(t, []string{"Idli", "Filter Coffee"}, order.Items())
	assert.Equal(t, "12 Beach Rd, Chennai", order.Address())
	assert.Equal(t, "FIRST50", order.Coupon())
	assert.Equal(t, "ring twice", order.Instructions())
	assert.True(t, order.Contactless())
	assert.Equal(t, at, order.ScheduledTime())
}

func TestBuildRequiresRestaurant(t *testing.T) {
	_, err := NewOrderBuilder("  ").
		AddItem("Vada").
		Build()
	assert.ErrorIs(t, err, ErrRestaurantRequired)
}

func TestBuildRequiresItems(t *testing.T) {
	_, err := NewOrderBuilder("Datchu").Build()
	assert.ErrorIs(t, err, ErrNoItems)
}

func TestBuildRejectsBlankItem(t *testing.T) {
	_, err := NewOrderBuilder("Datchu").
		AddItem("").
		Build()
	assert.Error(t, err)
}

func TestScheduleForRejectsPast(t *testing.T) {
	b := NewOrderBuilder("Datchu").AddItem("Dosa")
	b.now = func() time.Time { return time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC) }

	_, err := b.ScheduleFor(time.Date(2025, 12, 31, 12, 0, 0, 0, time.UTC)).Build()
	assert.ErrorIs(t, err, ErrScheduledInPast)
}

func TestBuildCollectsAllErrors(t *testing.T) {
	_, err := NewOrderBuilder("").Build()
	require.Error(t, err)

	// Both the missing restaurant and the missing items are reported
	assert.ErrorIs(t, err, ErrRestaurantRequired)
	assert.ErrorIs(t, err, ErrNoItems)
}

func TestOrderImmutability(t *testing.T) {
	order, err := NewOrderBuilder("Datchu").
		AddItem("Dosa").
		Build()
	require.NoError(t, err)

	// Mutating the returned slice must not affect the order
	items := order.Items()
	items[0] = "changed"
	assert.Equal(t, []string{"Dosa"}, order.Items())
}

func TestEachBuildGetsFreshID(t *testing.T) {
	b := NewOrderBuilder("Datchu").AddItem("Dosa")

	first, err := b.Build()
	require.NoError(t, err)

	second, err := b.Build()
	require.NoError(t, err)

	assert.NotEqual(t, first.ID(), second.ID())
	assert.Equal(t, first.Items(), second.Items())
}

func TestOrderString(t *testing.T) {
	order, err := NewOrderBuilder("Datchu").
		AddItem("Dosa").
		AddItem("Coffee").
		Build()
	require.NoError(t, err)

	assert.Contains(t, order.String(), "Datchu")
	assert.Contains(t, order.String(), "Dosa, Coffee")
}
