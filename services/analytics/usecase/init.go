package usecase

import (
	"github.com/picmoney/dashboard-api/internal/pkg/models"
	"github.com/picmoney/dashboard-api/services/analytics"
)

type AnalyticsUC struct {
	datasetRepo analytics.DatasetRepo
	cfg         *models.Config
}

// NewAnalyticsUC creates a new analytics usecase instance
func NewAnalyticsUC(
	datasetRepo analytics.DatasetRepo,
	cfg *models.Config,
) *AnalyticsUC {
	return &AnalyticsUC{
		datasetRepo: datasetRepo,
		cfg:         cfg,
	}
}
