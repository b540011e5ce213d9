package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"ledger": map[string]any{
			"seedOnStart":        true,
			"recentTransactions": 5,
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"http": map[string]any{
			"maxRequestBodySize": "100KB",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "LEDGER_SEEDONSTART", want: "ledger.seedOnStart"},
		{envKey: "LEDGER_RECENTTRANSACTIONS", want: "ledger.recentTransactions"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "HTTP_MAXREQUESTBODYSIZE", want: "http.maxRequestBodySize"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, bcryptDefaultCost, cfg.Auth.BcryptCost)
	assert.Equal(t, defaultAccessTTL, cfg.Auth.AccessTTL)
	require.NotNil(t, cfg.Ledger)
	assert.Equal(t, defaultRecentTransactions, cfg.Ledger.RecentTransactions)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Auth:   &AuthConfig{BcryptCost: 4, AccessTTL: time.Hour},
		Ledger: &LedgerConfig{RecentTransactions: 20},
	}
	applyDefaults(cfg)

	assert.Equal(t, 4, cfg.Auth.BcryptCost)
	assert.Equal(t, time.Hour, cfg.Auth.AccessTTL)
	assert.Equal(t, 20, cfg.Ledger.RecentTransactions)
}

func TestLedgerConfig_Location(t *testing.T) {
	var nilCfg *LedgerConfig
	loc, err := nilCfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	loc, err = (&LedgerConfig{Timezone: "UTC"}).Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())

	_, err = (&LedgerConfig{Timezone: "Not/AZone"}).Location()
	assert.Error(t, err)
}
