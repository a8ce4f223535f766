//go:build unit || e2e

// Package testutil builds malformed request bodies from valid DTOs.
package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

type Mutation func(map[string]any)

// JSONMap round-trips v through JSON so tests can break individual fields.
func JSONMap(t *testing.T, v any, muts ...Mutation) map[string]any {
	t.Helper()

	raw, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))

	for _, mut := range muts {
		mut(m)
	}
	return m
}

func Set(key string, value any) Mutation {
	return func(m map[string]any) { m[key] = value }
}

func Drop(key string) Mutation {
	return func(m map[string]any) { delete(m, key) }
}
