package pricing

import "math"

// Business constants. Tax is a flat 5%, delivery is free once the
// subtotal exceeds 50.00.
const (
	TaxRatePercent             = 5
	DeliveryFeeCents           = 500
	FreeDeliveryThresholdCents = 5000
)

type Line struct {
	UnitPrice float64
	Quantity  int
}

type Totals struct {
	Subtotal    float64
	Tax         float64
	DeliveryFee float64
	Total       float64
}

// Cents converts a currency amount to integer cents with half-up
// rounding. All totals math happens in cents so repeated recomputation
// over the same lines yields identical results.
func Cents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func Amount(cents int64) float64 {
	return float64(cents) / 100
}

// Calculate derives order totals from its lines. Pure and idempotent:
// the caller persists the result as a single update.
func Calculate(lines []Line) Totals {
	var subtotal int64
	for _, l := range lines {
		subtotal += Cents(l.UnitPrice) * int64(l.Quantity)
	}

	tax := (subtotal*TaxRatePercent + 50) / 100

	fee := int64(DeliveryFeeCents)
	if subtotal > FreeDeliveryThresholdCents {
		fee = 0
	}

	return Totals{
		Subtotal:    Amount(subtotal),
		Tax:         Amount(tax),
		DeliveryFee: Amount(fee),
		Total:       Amount(subtotal + tax + fee),
	}
}

// LineTotal is the snapshot price of a single order line.
func LineTotal(unitPrice float64, quantity int) float64 {
	return Amount(Cents(unitPrice) * int64(quantity))
}
