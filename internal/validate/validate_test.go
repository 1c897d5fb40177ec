package validate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRequired(t *testing.T) {
	e := Errors{}
	Required(e, "customer_name", "")
	Required(e, "customer_phone", "123456")
	require.True(t, e.Any())
	require.Len(t, e["customer_name"], 1)
	require.Empty(t, e["customer_phone"])
}

func TestEmail(t *testing.T) {
	e := Errors{}
	Email(e, "customer_email", "not-an-email")
	Email(e, "email", "guest@example.com")
	require.Len(t, e["customer_email"], 1)
	require.Empty(t, e["email"])
}

func TestOneOf(t *testing.T) {
	e := Errors{}
	OneOf(e, "payment_method", "bitcoin", []string{"card", "cod"})
	OneOf(e, "status", "confirmed", []string{"pending", "confirmed", "cancelled"})
	require.Len(t, e["payment_method"], 1)
	require.Empty(t, e["status"])
}

func TestDateAfterToday(t *testing.T) {
	e := Errors{}
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	Date(e, "reservation_date", tomorrow, true)
	require.Empty(t, e)

	Date(e, "reservation_date", time.Now().Format("2006-01-02"), true)
	require.Len(t, e["reservation_date"], 1)

	Date(e, "bad_date", "28-08-2026", true)
	require.Len(t, e["bad_date"], 1)
}

func TestTimeOfDay(t *testing.T) {
	e := Errors{}
	TimeOfDay(e, "reservation_time", "19:30")
	require.Empty(t, e)
	TimeOfDay(e, "reservation_time", "7pm")
	require.Len(t, e["reservation_time"], 1)
}

func TestIntBetween(t *testing.T) {
	e := Errors{}
	IntBetween(e, "guests", 0, 1, 20)
	IntBetween(e, "guests_ok", 4, 1, 20)
	require.Len(t, e["guests"], 1)
	require.Empty(t, e["guests_ok"])
}
