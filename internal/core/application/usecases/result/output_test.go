package result_test

import (
	"encoding/json"
	"testing"

	"eats/internal/core/application/usecases/result"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputJSON(t *testing.T) {
	type data struct {
		ID string `json:"id"`
	}

	ok, err := json.Marshal(result.Success(data{ID: "42"}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true,"data":{"id":"42"}}`, string(ok))

	failed, err := json.Marshal(result.Failure[data]("Order not found"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":false,"error":"Order not found"}`, string(failed))
}
