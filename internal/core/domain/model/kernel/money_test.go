package kernel_test

import (
	"encoding/json"
	"testing"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyArithmetic(t *testing.T) {
	price := kernel.MoneyFromInt(79)
	discount, err := kernel.ParseMoney("4.50")
	require.NoError(t, err)

	assert.Equal(t, "158.00", price.Times(2).String())
	assert.Equal(t, "74.50", price.Sub(discount).String())
	assert.Equal(t, "-79.00", price.Times(-1).String())
	assert.Equal(t, "0.00", price.Times(0).String())
	assert.True(t, kernel.MoneyFromInt(5).Equal(kernel.NewMoney(kernel.MoneyFromInt(5).Decimal)))
}

func TestParseMoneyRejectsGarbage(t *testing.T) {
	_, err := kernel.ParseMoney("abc")
	require.ErrorIs(t, err, errs.ErrValidation)
}

func TestMoneyJSON(t *testing.T) {
	t.Run("accepts numbers and strings", func(t *testing.T) {
		var payload struct {
			A kernel.Money `json:"a"`
			B kernel.Money `json:"b"`
		}
		require.NoError(t, json.Unmarshal([]byte(`{"a": 99, "b": "12.345"}`), &payload))
		assert.Equal(t, "99.00", payload.A.String())
		assert.Equal(t, "12.35", payload.B.String())
	})

	t.Run("marshals as fixed string", func(t *testing.T) {
		b, err := json.Marshal(kernel.MoneyFromInt(79))
		require.NoError(t, err)
		assert.JSONEq(t, `"79.00"`, string(b))
	})
}

func TestMoneyScan(t *testing.T) {
	var m kernel.Money
	require.NoError(t, m.Scan(int64(99)))
	assert.Equal(t, "99.00", m.String())

	require.NoError(t, m.Scan(79.5))
	assert.Equal(t, "79.50", m.String())

	require.NoError(t, m.Scan([]byte("10.10")))
	assert.Equal(t, "10.10", m.String())
}
