package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/picmoney/dashboard-api/internal/pkg/models"
)

func TestOperatingMargin(t *testing.T) {
	uc := newTestUC(t, sampleSnapshot())

	margin, err := uc.OperatingMargin(context.Background(), models.FilterSpec{})

	require.NoError(t, err)
	assert.Equal(t, 60.00, margin.TotalRevenue)
	assert.Equal(t, 6.00, margin.TotalCosts)
	assert.Equal(t, 90.00, margin.OperatingMargin)

	require.Len(t, margin.Monthly, 1)
	month := margin.Monthly[0]
	assert.Equal(t, "2025-08", month.Month)
	assert.Equal(t, 60.00, month.Revenue)
	assert.Equal(t, 6.00, month.Costs)
	assert.Equal(t, 90.00, month.Margin)
	assert.Equal(t, 3, month.Transactions)
}

func TestOperatingMarginEmptySetIsZero(t *testing.T) {
	uc := newTestUC(t, &models.Snapshot{})

	margin, err := uc.OperatingMargin(context.Background(), models.FilterSpec{})

	require.NoError(t, err)
	assert.Zero(t, margin.TotalRevenue)
	assert.Zero(t, margin.OperatingMargin)
	assert.Empty(t, margin.Monthly)
}

func TestNetRevenue(t *testing.T) {
	uc := newTestUC(t, sampleSnapshot())

	net, err := uc.NetRevenue(context.Background(), models.FilterSpec{})

	require.NoError(t, err)
	assert.Equal(t, 60.00, net.Summary.TotalGrossRevenue)
	assert.Equal(t, 6.00, net.Summary.TotalCosts)
	assert.Equal(t, 54.00, net.Summary.TotalNetRevenue)
	assert.Equal(t, 90.00, net.Summary.OverallMargin)

	require.Len(t, net.ByType, 2)
	// descending by net revenue
	assert.Equal(t, "Cashback", net.ByType[0].Type)
	assert.Equal(t, 27.00, net.ByType[0].NetRevenue)
	assert.Equal(t, "Desconto", net.ByType[1].Type)
	assert.Equal(t, 27.00, net.ByType[1].NetRevenue)
}

func TestCouponPerformanceByType(t *testing.T) {
	uc := newTestUC(t, sampleSnapshot())

	performance, err := uc.CouponPerformanceByType(context.Background(), models.FilterSpec{})

	require.NoError(t, err)
	require.Len(t, performance, 2)

	// Cashback has the larger total value and sorts first
	cashback := performance[0]
	assert.Equal(t, "Cashback", cashback.Type)
	assert.Equal(t, 30.00, cashback.TotalValue)
	assert.Equal(t, 1, cashback.TotalTransactions)
	assert.Equal(t, 30.00, cashback.AvgTicket)
	assert.Equal(t, 10.00, cashback.CommissionRate)

	desconto := performance[1]
	assert.Equal(t, "Desconto", desconto.Type)
	assert.Equal(t, 2, desconto.UniqueCustomers)
	assert.Equal(t, 1, desconto.UniqueStores)
}
