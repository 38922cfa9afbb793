package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(configs []EndpointConfig) *Limiter {
	return NewLimiter(&Config{
		Enabled:         true,
		DefaultLimit:    100,
		DefaultWindow:   time.Minute,
		CleanupInterval: 0, // no cleanup goroutine in tests
		Whitelist:       make(map[string]bool),
		Blacklist:       make(map[string]bool),
		EndpointConfigs: configs,
	})
}

func TestTokenBucket_AllowsUpToCapacity(t *testing.T) {
	bucket := newTokenBucket(3, 0.0001)

	assert.True(t, bucket.allow())
	assert.True(t, bucket.allow())
	assert.True(t, bucket.allow())
	assert.False(t, bucket.allow())
}

func TestLimiter_EnforcesBurst(t *testing.T) {
	limiter := newTestLimiter([]EndpointConfig{
		{Path: "/evaluate", Method: "POST", Limit: 60, Window: time.Hour, Burst: 2},
	})
	defer limiter.Stop()

	allowed, info := limiter.Allow("1.2.3.4", "/evaluate", "POST")
	require.True(t, allowed)
	assert.Equal(t, 60, info.Limit)

	allowed, _ = limiter.Allow("1.2.3.4", "/evaluate", "POST")
	require.True(t, allowed)

	allowed, info = limiter.Allow("1.2.3.4", "/evaluate", "POST")
	require.False(t, allowed)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestLimiter_ClientsAreIndependent(t *testing.T) {
	limiter := newTestLimiter([]EndpointConfig{
		{Path: "/evaluate", Method: "POST", Limit: 60, Window: time.Hour, Burst: 1},
	})
	defer limiter.Stop()

	allowed, _ := limiter.Allow("1.1.1.1", "/evaluate", "POST")
	require.True(t, allowed)
	allowed, _ = limiter.Allow("1.1.1.1", "/evaluate", "POST")
	require.False(t, allowed)

	// A different client still has a full bucket
	allowed, _ = limiter.Allow("2.2.2.2", "/evaluate", "POST")
	assert.True(t, allowed)
}

func TestLimiter_DisabledAllowsEverything(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := limiter.Allow("1.2.3.4", "/evaluate", "POST")
		require.True(t, allowed)
	}
}

func TestLimiter_WhitelistBypassesLimits(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1,
		DefaultWindow: time.Hour,
		Whitelist:     map[string]bool{"10.0.0.1": true},
		Blacklist:     make(map[string]bool),
	})
	defer limiter.Stop()

	for i := 0; i < 10; i++ {
		allowed, _ := limiter.Allow("10.0.0.1", "/evaluate", "POST")
		require.True(t, allowed)
	}
}

func TestLimiter_BlacklistAlwaysDenies(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		Whitelist:     make(map[string]bool),
		Blacklist:     map[string]bool{"6.6.6.6": true},
	})
	defer limiter.Stop()

	allowed, _ := limiter.Allow("6.6.6.6", "/evaluate", "POST")
	assert.False(t, allowed)
}

func TestMatchEndpoint_HealthIsUnlimited(t *testing.T) {
	config := MatchEndpoint("/health", "GET", DefaultEndpointConfigs())
	require.NotNil(t, config)
	assert.Equal(t, 0, config.Limit)
}

func TestMatchEndpoint_ExactAndPrefix(t *testing.T) {
	configs := []EndpointConfig{
		{Path: "/evaluate", Method: "POST", Limit: 10, Window: time.Minute},
		{Path: "/batch/", Method: "POST", Limit: 5, Window: time.Minute},
	}

	exact := MatchEndpoint("/evaluate", "POST", configs)
	require.NotNil(t, exact)
	assert.Equal(t, 10, exact.Limit)

	prefix := MatchEndpoint("/batch/resumes", "POST", configs)
	require.NotNil(t, prefix)
	assert.Equal(t, 5, prefix.Limit)

	assert.Nil(t, MatchEndpoint("/evaluate", "GET", configs))
	assert.Nil(t, MatchEndpoint("/other", "POST", configs))
}

func TestParseIPList(t *testing.T) {
	result := parseIPList("1.1.1.1, 2.2.2.2 ,")
	assert.True(t, result["1.1.1.1"])
	assert.True(t, result["2.2.2.2"])
	assert.Len(t, result, 2)

	assert.Empty(t, parseIPList(""))
}
