package usecase

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/picmoney/dashboard-api/internal/pkg/models"
)

func TestCouponValidationSummary(t *testing.T) {
	uc := newTestUC(t, sampleSnapshot())

	summary, err := uc.CouponValidationSummary(context.Background(), models.FilterSpec{})

	require.NoError(t, err)
	require.Len(t, summary, 2)

	for _, row := range summary {
		assert.Equal(t, row.TotalCoupons, row.ValidatedCoupons)
		assert.Zero(t, row.PendingCoupons)
		assert.Equal(t, 100.00, row.ValidationRate)
	}

	cashback := summary[0]
	assert.Equal(t, "Cashback", cashback.Type)
	assert.Equal(t, 30.00, cashback.TotalRevenue)
	assert.Equal(t, 3.00, cashback.TotalPayout)
	assert.Equal(t, 30.00, cashback.AvgCouponValue)
}

func TestPayoutTracking(t *testing.T) {
	uc := newTestUC(t, sampleSnapshot())

	records, err := uc.PayoutTracking(context.Background(), models.FilterSpec{})

	require.NoError(t, err)
	require.Len(t, records, 2)

	top := records[0]
	assert.Equal(t, "2025-08", top.Month)
	assert.Equal(t, "Livraria Sul", top.Store)
	assert.Equal(t, 3.00, top.TotalPayout)
	assert.Equal(t, 30.00, top.Revenue)
	assert.Equal(t, 10.00, top.PayoutRate)
	assert.Equal(t, 3.00, top.AvgPayoutPerTransaction)
	assert.Equal(t, "Pago", top.Status)

	assert.Equal(t, "Padaria Central", records[1].Store)
	assert.Equal(t, 3.00, records[1].TotalPayout)
}

func TestPayoutTrackingRepeatCallsReturnIdenticalJSON(t *testing.T) {
	// equal payouts across several month/store pairs force the secondary
	// sort keys; the composite grouping map must not leak iteration order
	records := []models.Transaction{
		{Date: "2025-07-01", CouponValue: 10, Commission: 1, StoreName: "Mercado Norte"},
		{Date: "2025-07-02", CouponValue: 10, Commission: 1, StoreName: "Padaria Central"},
		{Date: "2025-08-01", CouponValue: 10, Commission: 1, StoreName: "Livraria Sul"},
		{Date: "2025-08-02", CouponValue: 10, Commission: 1, StoreName: "Banca Leste"},
	}
	uc := newTestUC(t, &models.Snapshot{Transactions: records})
	filter := models.FilterSpec{}

	first, err := uc.PayoutTracking(context.Background(), filter)
	require.NoError(t, err)
	second, err := uc.PayoutTracking(context.Background(), filter)
	require.NoError(t, err)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, firstJSON, secondJSON)
}
