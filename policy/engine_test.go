package policy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPolicy(t *testing.T) {
	ctx := context.Background()
	engine, err := NewEngine(ctx, DefaultPolicy)
	require.NoError(t, err)

	cases := []struct {
		name     string
		role     string
		resource string
		want     string
	}{
		{"admin on admin resource", "admin", "admin", "allow"},
		{"user on admin resource", "user", "admin", "deny"},
		{"user on chat resource", "user", "chat", "allow"},
		{"anonymous on chat resource", "", "chat", "allow"},
		{"anonymous on admin resource", "", "admin", "deny"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			decision, err := engine.Evaluate(ctx, map[string]interface{}{
				"role":     tc.role,
				"resource": tc.resource,
			})
			require.NoError(t, err)
			assert.Equal(t, tc.want, decision)
		})
	}
}

func TestNewEngineRejectsBadPolicy(t *testing.T) {
	_, err := NewEngine(context.Background(), "this is not rego")
	assert.Error(t, err)
}
