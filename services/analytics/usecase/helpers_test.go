package usecase

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/picmoney/dashboard-api/internal/pkg/models"
	"github.com/picmoney/dashboard-api/services/analytics/mocks"
)

func newTestUC(t *testing.T, snapshot *models.Snapshot) *AnalyticsUC {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockDatasetRepo(ctrl)
	repo.EXPECT().GetSnapshot().Return(snapshot).AnyTimes()
	cfg := &models.Config{Geo: models.GeoConfig{CellPrecision: 6}}
	return NewAnalyticsUC(repo, cfg)
}

func day(t *testing.T, s string) *time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return &d
}

// three transactions across two days, used by most aggregation tests
func sampleTransactions() []models.Transaction {
	return []models.Transaction{
		{
			Date: "2025-08-01", Time: "09:30", CapturedAt: "2025-08-01 09:30:00",
			CouponValue: 10, Commission: 1, CouponType: "Desconto",
			StoreName: "Padaria Central", StoreCategory: "Alimentação",
			Neighborhood: "Centro", Phone: "11999990001", Age: "34", Gender: "Feminino",
		},
		{
			Date: "2025-08-01", Time: "14:10", CapturedAt: "2025-08-01 14:10:00",
			CouponValue: 20, Commission: 2, CouponType: "Desconto",
			StoreName: "Padaria Central", StoreCategory: "Alimentação",
			Neighborhood: "Centro", Phone: "11999990002", Age: "abc", Gender: "Masculino",
		},
		{
			Date: "2025-08-02", Time: "20:45", CapturedAt: "2025-08-02 20:45:00",
			CouponValue: 30, Commission: 3, CouponType: "Cashback",
			StoreName: "Livraria Sul", StoreCategory: "Varejo",
			Neighborhood: "Moema", Phone: "11999990001", Age: "52", Gender: "Feminino",
		},
	}
}

func sampleSnapshot() *models.Snapshot {
	return &models.Snapshot{
		Transactions: sampleTransactions(),
		Stores: []models.Store{
			{Name: "Padaria Central", Address: "Rua A, 10", Category: "Padaria", Latitude: "-23.5505", Longitude: "-46.6333"},
			{Name: "Livraria Sul", Address: "Rua B, 20", Category: "", Latitude: "not-a-number", Longitude: "-46.60"},
		},
		Pedestrians: []models.Pedestrian{
			{Latitude: "-23.5505", Longitude: "-46.6333", HasApp: true, Place: "Av. Paulista", Date: "2025-08-01", Time: "09:00"},
			{Latitude: "-23.5506", Longitude: "-46.6334", HasApp: false, Place: "Av. Paulista", Date: "2025-08-01", Time: "09:05"},
			{Latitude: "bogus", Longitude: "-46.6334", HasApp: true, Place: "Av. Paulista", Date: "2025-08-01", Time: "09:10"},
		},
		LoadedAt: time.Date(2025, 8, 10, 12, 0, 0, 0, time.UTC),
	}
}
