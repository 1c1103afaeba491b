package order_test

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"eats/internal/core/domain/model/order"
	"eats/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	assert.Equal(t, 0, int(order.Unknown))
	assert.Equal(t, 1, int(order.Pending))
	assert.Equal(t, 5, int(order.Delivered))
	assert.Equal(t, []order.Status{order.Pending, order.Cooking, order.Cooked, order.PickedUp, order.Delivered}, order.Statuses())
}

func TestStatus_Validate(t *testing.T) {
	for _, status := range order.Statuses() {
		t.Run(fmt.Sprintf("should validate %s status", status), func(t *testing.T) {
			require.NoError(t, status.Validate())
		})
	}

	t.Run("should reject Unknown and out of range values", func(t *testing.T) {
		for _, status := range []order.Status{order.Unknown, order.Status(-1), order.Status(6)} {
			err := status.Validate()

			require.Error(t, err)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
			assert.Contains(t, err.Error(), "status is invalid")
		}
	})
}

func TestParseStatus(t *testing.T) {
	t.Run("should parse names case-insensitively", func(t *testing.T) {
		s, err := order.ParseStatus(" pickedup ")

		require.NoError(t, err)
		assert.Equal(t, order.PickedUp, s)
	})

	t.Run("should parse every status name in any case", func(t *testing.T) {
		for _, want := range order.Statuses() {
			for _, name := range []string{want.String(), strings.ToUpper(want.String()), strings.ToLower(want.String())} {
				got, err := order.ParseStatus(name)

				require.NoError(t, err, name)
				assert.Equal(t, want, got, name)
			}
		}
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		_, err := order.ParseStatus("Cancelled")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should not accept Unknown", func(t *testing.T) {
		_, err := order.ParseStatus("Unknown")

		require.Error(t, err)
	})
}

func TestStatus_JSON(t *testing.T) {
	var body struct {
		Status order.Status `json:"status"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"status":"Cooked"}`), &body))
	assert.Equal(t, order.Cooked, body.Status)

	out, err := json.Marshal(body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"Cooked"}`, string(out))

	require.Error(t, json.Unmarshal([]byte(`{"status":"Burnt"}`), &body))
}
