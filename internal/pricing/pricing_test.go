package pricing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCalculateScenario(t *testing.T) {
	lines := []Line{
		{UnitPrice: 10.00, Quantity: 2},
		{UnitPrice: 5.00, Quantity: 1},
	}

	got := Calculate(lines)
	require.Equal(t, 25.00, got.Subtotal)
	require.Equal(t, 1.25, got.Tax)
	require.Equal(t, 5.00, got.DeliveryFee)
	require.Equal(t, 31.25, got.Total)
}

func TestCalculateTaxRate(t *testing.T) {
	got := Calculate([]Line{{UnitPrice: 100.00, Quantity: 1}})
	require.Equal(t, 5.00, got.Tax)
}

func TestFreeDeliveryBoundary(t *testing.T) {
	atThreshold := Calculate([]Line{{UnitPrice: 50.00, Quantity: 1}})
	require.Equal(t, 5.00, atThreshold.DeliveryFee)

	overThreshold := Calculate([]Line{{UnitPrice: 50.01, Quantity: 1}})
	require.Equal(t, 0.00, overThreshold.DeliveryFee)
}

func TestCalculateIdempotent(t *testing.T) {
	lines := []Line{
		{UnitPrice: 12.75, Quantity: 3},
		{UnitPrice: 4.20, Quantity: 2},
	}

	first := Calculate(lines)
	second := Calculate(lines)
	require.Equal(t, first, second)
}

func TestTotalInvariant(t *testing.T) {
	cases := [][]Line{
		{{UnitPrice: 9.99, Quantity: 1}},
		{{UnitPrice: 3.33, Quantity: 7}},
		{{UnitPrice: 19.95, Quantity: 2}, {UnitPrice: 0.55, Quantity: 4}},
		{{UnitPrice: 100.00, Quantity: 10}},
	}

	for _, lines := range cases {
		got := Calculate(lines)
		require.Equal(t,
			Cents(got.Subtotal)+Cents(got.Tax)+Cents(got.DeliveryFee),
			Cents(got.Total),
		)
	}
}

func TestCalculateNoLines(t *testing.T) {
	got := Calculate(nil)
	require.Equal(t, 0.00, got.Subtotal)
	require.Equal(t, 5.00, got.DeliveryFee)
	require.Equal(t, 5.00, got.Total)
}

func TestLineTotal(t *testing.T) {
	require.Equal(t, 20.00, LineTotal(10.00, 2))
	require.Equal(t, 38.25, LineTotal(12.75, 3))
}
