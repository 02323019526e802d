package analytics

import (
	"github.com/picmoney/dashboard-api/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/picmoney/dashboard-api/services/analytics DatasetRepo

// DatasetRepo provides access to the immutable startup snapshot
type DatasetRepo interface {
	GetSnapshot() *models.Snapshot
}
