package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/picmoney/dashboard-api/internal/pkg/models"
)

func TestTopCategories(t *testing.T) {
	uc := newTestUC(t, sampleSnapshot())

	categories, err := uc.TopCategories(context.Background(), models.FilterSpec{})

	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, models.CategorySummary{Category: "Alimentação", Count: 2, Value: 30.00}, categories[0])
	assert.Equal(t, models.CategorySummary{Category: "Varejo", Count: 1, Value: 30.00}, categories[1])
}

func TestTopCategoriesCapsAtTen(t *testing.T) {
	var records []models.Transaction
	for i := 0; i < 15; i++ {
		records = append(records, models.Transaction{
			Date:          "2025-08-01",
			CouponValue:   float64(i + 1),
			StoreCategory: fmt.Sprintf("Categoria %02d", i),
		})
	}
	uc := newTestUC(t, &models.Snapshot{Transactions: records})

	categories, err := uc.TopCategories(context.Background(), models.FilterSpec{})

	require.NoError(t, err)
	assert.Len(t, categories, 10)
	assert.Equal(t, 15.00, categories[0].Value)
}

func TestStorePerformanceRankingRanksAreContiguous(t *testing.T) {
	uc := newTestUC(t, sampleSnapshot())

	ranking, err := uc.StorePerformanceRanking(context.Background(), models.FilterSpec{})

	require.NoError(t, err)
	require.Len(t, ranking, 2)
	for i, row := range ranking {
		assert.Equal(t, i+1, row.Rank)
	}

	top := ranking[0]
	assert.Equal(t, "Padaria Central", top.Store)
	assert.Equal(t, "Alimentação", top.Category)
	// ranking revenue is the commission sum, not coupon value
	assert.Equal(t, 3.00, top.Revenue)
	assert.Equal(t, 2, top.Count)
	assert.Equal(t, 15.00, top.AvgTicket)
}

func TestStorePerformanceRankingContiguousAfterFilter(t *testing.T) {
	uc := newTestUC(t, sampleSnapshot())

	ranking, err := uc.StorePerformanceRanking(context.Background(), models.FilterSpec{Category: "Varejo"})

	require.NoError(t, err)
	require.Len(t, ranking, 1)
	assert.Equal(t, 1, ranking[0].Rank)
	assert.Equal(t, "Livraria Sul", ranking[0].Store)
}

func TestRevenueByRegion(t *testing.T) {
	uc := newTestUC(t, sampleSnapshot())

	regions, err := uc.RevenueByRegion(context.Background(), models.FilterSpec{})

	require.NoError(t, err)
	require.Len(t, regions, 2)
	assert.Equal(t, models.RegionRevenue{Region: "Centro", Revenue: 30.00}, regions[0])
	assert.Equal(t, models.RegionRevenue{Region: "Moema", Revenue: 30.00}, regions[1])
}

func TestDetailedCategoryAnalysis(t *testing.T) {
	uc := newTestUC(t, sampleSnapshot())

	analysis, err := uc.DetailedCategoryAnalysis(context.Background(), models.FilterSpec{})

	require.NoError(t, err)
	require.Len(t, analysis, 2)

	food := analysis[0]
	assert.Equal(t, "Alimentação", food.Category)
	assert.Equal(t, 30.00, food.Revenue)
	assert.Equal(t, 2, food.Transactions)
	assert.Equal(t, 15.00, food.AvgTicket)
	assert.Equal(t, 1, food.UniqueStores)
	assert.Equal(t, 2, food.UniqueCustomers)
	assert.Equal(t, 3.00, food.Commission)
	assert.Equal(t, 50.00, food.RevenueParticipation)
	assert.InDelta(t, 66.67, food.TransactionParticipation, 0.001)
}
