package configs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrustedProxiesDefaultIsPrivateOnly(t *testing.T) {
	t.Setenv("TRUSTED_PROXIES", "")

	got := TrustedProxies()
	assert.NotContains(t, got, "0.0.0.0/0", "the default must not trust arbitrary clients")
	assert.Contains(t, got, "127.0.0.1")
	assert.Contains(t, got, "10.0.0.0/8")
}

func TestTrustedProxiesFromEnv(t *testing.T) {
	t.Setenv("TRUSTED_PROXIES", " 100.64.0.0/10 , 203.0.113.7 ,")

	assert.Equal(t, []string{"100.64.0.0/10", "203.0.113.7"}, TrustedProxies())
}
