//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// DtoMap turns a request DTO into its JSON object form and applies muts to it.
func DtoMap(t *testing.T, v any, muts ...func(map[string]any)) map[string]any {
	t.Helper()

	raw, err := json.Marshal(v)
	require.NoError(t, err, "marshal %T", v)

	m := make(map[string]any)
	require.NoError(t, json.Unmarshal(raw, &m), "%T is not a JSON object", v)

	for _, mut := range muts {
		mut(m)
	}
	return m
}
