package handlers_test

import (
	"testing"

	"github.com/SscSPs/stallchain/internal/handlers"
	"github.com/gin-gonic/gin/binding"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type peakWindowBody struct {
	Start string `binding:"required,hhmm"`
}

type amountBody struct {
	Amount decimal.Decimal `binding:"gt=0,lte=1000"`
}

func TestValidators(t *testing.T) {
	require.NoError(t, handlers.RegisterValidators())

	t.Run("hhmm", func(t *testing.T) {
		for _, v := range []string{"00:00", "09:30", "19:05", "23:59"} {
			assert.NoError(t, binding.Validator.ValidateStruct(peakWindowBody{Start: v}), v)
		}
		for _, v := range []string{"24:00", "9:30", "12:60", "noon", "12:3O"} {
			assert.Error(t, binding.Validator.ValidateStruct(peakWindowBody{Start: v}), v)
		}
	})

	t.Run("decimal bounds", func(t *testing.T) {
		tests := []struct {
			amount string
			valid  bool
		}{
			{"0.01", true},
			{"1000", true},
			{"0", false},
			{"-3.5", false},
			{"1000.01", false},
		}
		for _, tt := range tests {
			err := binding.Validator.ValidateStruct(amountBody{Amount: decimal.RequireFromString(tt.amount)})
			assert.Equal(t, tt.valid, err == nil, tt.amount)
		}
	})
}
