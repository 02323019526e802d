package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvAsFloat(t *testing.T) {
	t.Setenv("TEST_FLOAT_SET", "2500.5")
	t.Setenv("TEST_FLOAT_BAD", "not-a-number")

	assert.Equal(t, 2500.5, GetEnvAsFloat("TEST_FLOAT_SET", 1000))
	assert.Equal(t, 1000.0, GetEnvAsFloat("TEST_FLOAT_BAD", 1000))
	assert.Equal(t, 1000.0, GetEnvAsFloat("TEST_FLOAT_UNSET", 1000))
}

func TestLoadConfigAlertDefaults(t *testing.T) {
	t.Setenv("ALERT_MIN_REVENUE", "")
	t.Setenv("ALERT_MAX_COUPON_USAGE_PERCENT", "")
	configs := loadConfigFromEnv()
	assert.Equal(t, 1000.0, configs.Alerts.MinRevenue)
	assert.Equal(t, 80.0, configs.Alerts.MaxCouponUsagePercent)

	t.Setenv("ALERT_MIN_REVENUE", "1500")
	t.Setenv("ALERT_MAX_COUPON_USAGE_PERCENT", "65.5")
	configs = loadConfigFromEnv()
	assert.Equal(t, 1500.0, configs.Alerts.MinRevenue)
	assert.Equal(t, 65.5, configs.Alerts.MaxCouponUsagePercent)
}
