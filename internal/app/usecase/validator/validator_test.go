package validator

import (
	"strings"
	"testing"
	"time"

	"github.com/avGenie/go-order-tracker/internal/app/entity"
	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
)

func TestCustomerIDValidation(t *testing.T) {
	tests := []struct {
		name       string
		customerID string
		want       bool
	}{
		{name: "upper case hex", customerID: "user-A1B2C3D4", want: true},
		{name: "lower case hex", customerID: "user-a1b2c3d4", want: true},
		{name: "mixed case hex", customerID: "user-aB12Cd34", want: true},
		{name: "empty", customerID: "", want: false},
		{name: "missing prefix", customerID: "A1B2C3D4", want: false},
		{name: "upper case prefix", customerID: "USER-A1B2C3D4", want: false},
		{name: "seven hex chars", customerID: "user-A1B2C3D", want: false},
		{name: "nine hex chars", customerID: "user-A1B2C3D45", want: false},
		{name: "non hex char", customerID: "user-A1B2C3DG", want: false},
		{name: "leading space", customerID: " user-A1B2C3D4", want: false},
		{name: "trailing newline", customerID: "user-A1B2C3D4\n", want: false},
		{name: "source example", customerID: "CUST-123", want: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, CustomerIDValidation(test.customerID))
		})
	}
}

func TestCustomerIDValidationGenerated(t *testing.T) {
	for i := 0; i < 100; i++ {
		valid := "user-" + gofakeit.DigitN(8)
		assert.True(t, CustomerIDValidation(valid), valid)

		invalid := []string{
			"user-" + gofakeit.DigitN(7),
			"user-" + gofakeit.DigitN(9),
			gofakeit.UUID(),
			strings.ToUpper(valid),
			gofakeit.Username() + "-" + gofakeit.DigitN(8),
		}
		for _, value := range invalid {
			assert.False(t, CustomerIDValidation(value), value)
		}
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Time
		ok    bool
	}{
		{
			name:  "date only",
			value: "2024-01-31",
			want:  time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC),
			ok:    true,
		},
		{
			name:  "date time utc",
			value: "2024-01-31T10:20:30Z",
			want:  time.Date(2024, time.January, 31, 10, 20, 30, 0, time.UTC),
			ok:    true,
		},
		{
			name:  "date time with offset",
			value: "2024-01-31T10:20:30+02:00",
			want:  time.Date(2024, time.January, 31, 8, 20, 30, 0, time.UTC),
			ok:    true,
		},
		{
			name:  "date time with fraction",
			value: "2024-01-31T10:20:30.5Z",
			want:  time.Date(2024, time.January, 31, 10, 20, 30, 500000000, time.UTC),
			ok:    true,
		},
		{
			name:  "empty",
			value: "",
			ok:    false,
		},
		{
			name:  "blank",
			value: "   ",
			ok:    false,
		},
		{
			name:  "garbage",
			value: "not-a-date",
			ok:    false,
		},
		{
			name:  "relative now",
			value: "now",
			ok:    false,
		},
		{
			name:  "relative yesterday",
			value: "yesterday",
			ok:    false,
		},
		{
			name:  "relative tomorrow upper case",
			value: " Tomorrow ",
			ok:    false,
		},
		{
			name:  "month out of range",
			value: "2024-13-45",
			ok:    false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, ok := ParseDate(test.value)

			assert.Equal(t, test.ok, ok)
			if test.ok {
				assert.True(t, test.want.Equal(got), "want %s, got %s", test.want, got)
			}
		})
	}
}

func TestParseOrderStatus(t *testing.T) {
	for _, status := range entity.OrderStatuses() {
		t.Run(status.String(), func(t *testing.T) {
			got, ok := ParseOrderStatus(status.String())

			assert.True(t, ok)
			assert.Equal(t, status, got)
		})
	}

	for _, value := range []string{"", "PAID", "confirmed", " pending"} {
		t.Run("invalid "+value, func(t *testing.T) {
			_, ok := ParseOrderStatus(value)
			assert.False(t, ok)
		})
	}
}
