package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"host":    "localhost",
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"stripe": map[string]any{
			"secretKey": "",
		},
	}

	tests := []struct {
		name     string
		rawKey   string
		expected string
	}{
		{
			name:     "aligns segment casing with existing yaml keys",
			rawKey:   "POSTGRES_SSLMODE",
			expected: "postgres.sslMode",
		},
		{
			name:     "matches camelCase parent keys",
			rawKey:   "SECRETKEY_ACCESS",
			expected: "secretKey.access",
		},
		{
			name:     "nested stripe key",
			rawKey:   "STRIPE_SECRETKEY",
			expected: "stripe.secretKey",
		},
		{
			name:     "unknown keys fall back to lowercase",
			rawKey:   "UNKNOWN_SETTING",
			expected: "unknown.setting",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, canonicalizeEnvKey(tt.rawKey, existing))
		})
	}
}

func TestNormalizeToken(t *testing.T) {
	assert.Equal(t, "sslmode", normalizeToken("sslMode"))
	assert.Equal(t, "secretkey", normalizeToken("secret_key"))
	assert.Equal(t, "", normalizeToken("__"))
}
