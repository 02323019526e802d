package usecase

import (
	"context"
	"sort"

	"github.com/picmoney/dashboard-api/internal/pkg/models"
	"github.com/picmoney/dashboard-api/internal/utils"
)

// PedestrianHeatmap projects the pedestrian samples for the map layer.
// Samples with unparsable coordinates are dropped; when appOnly is set only
// app holders are included. Every point carries unit weight.
func (uc *AnalyticsUC) PedestrianHeatmap(ctx context.Context, appOnly bool) ([]models.HeatmapPoint, error) {
	pedestrians := uc.datasetRepo.GetSnapshot().Pedestrians

	points := make([]models.HeatmapPoint, 0, len(pedestrians))
	for _, p := range pedestrians {
		if appOnly && !p.HasApp {
			continue
		}
		lat, ok := utils.ParseCoordinate(p.Latitude)
		if !ok {
			continue
		}
		lon, ok := utils.ParseCoordinate(p.Longitude)
		if !ok {
			continue
		}
		points = append(points, models.HeatmapPoint{
			Latitude:  lat,
			Longitude: lon,
			Weight:    1,
			Place:     p.Place,
			HasApp:    p.HasApp,
			Date:      p.Date,
			Time:      p.Time,
		})
	}
	return points, nil
}

// StoreLocations projects the store table for the map layer, dropping rows
// without valid coordinates.
func (uc *AnalyticsUC) StoreLocations(ctx context.Context) ([]models.StoreLocation, error) {
	stores := uc.datasetRepo.GetSnapshot().Stores

	locations := make([]models.StoreLocation, 0, len(stores))
	for _, s := range stores {
		lat, ok := utils.ParseCoordinate(s.Latitude)
		if !ok {
			continue
		}
		lon, ok := utils.ParseCoordinate(s.Longitude)
		if !ok {
			continue
		}
		locations = append(locations, models.StoreLocation{
			Name:      s.Name,
			Address:   s.Address,
			Latitude:  lat,
			Longitude: lon,
			Category:  utils.OrDefault(s.Category, "Não informado"),
		})
	}
	return locations, nil
}

// geohash cells are 1 to 12 characters long
const maxCellPrecision = 12

// PedestrianDensity aggregates pedestrian samples into geohash cells at the
// given precision. A precision outside the geohash domain falls back to the
// configured default. Each cell reports its center, sample count, app holders
// and app penetration as a 2-decimal percentage. Cells sort by sample count
// descending so the densest areas come first.
func (uc *AnalyticsUC) PedestrianDensity(ctx context.Context, precision uint, appOnly bool) ([]models.DensityCell, error) {
	if precision == 0 || precision > maxCellPrecision {
		precision = uc.cfg.Geo.CellPrecision
	}
	pedestrians := uc.datasetRepo.GetSnapshot().Pedestrians

	type cellStats struct {
		samples    int
		appHolders int
	}
	cells := make(map[string]*cellStats)
	for _, p := range pedestrians {
		if appOnly && !p.HasApp {
			continue
		}
		lat, ok := utils.ParseCoordinate(p.Latitude)
		if !ok {
			continue
		}
		lon, ok := utils.ParseCoordinate(p.Longitude)
		if !ok {
			continue
		}
		cell := utils.EncodeCell(lat, lon, precision)
		stats, ok := cells[cell]
		if !ok {
			stats = &cellStats{}
			cells[cell] = stats
		}
		stats.samples++
		if p.HasApp {
			stats.appHolders++
		}
	}

	result := make([]models.DensityCell, 0, len(cells))
	for cell, stats := range cells {
		center := utils.CellCenter(cell)
		result = append(result, models.DensityCell{
			Cell:        cell,
			Latitude:    center.Latitude,
			Longitude:   center.Longitude,
			Samples:     stats.samples,
			AppHolders:  stats.appHolders,
			Penetration: utils.RatioPercent(float64(stats.appHolders), float64(stats.samples)),
		})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Samples != result[j].Samples {
			return result[i].Samples > result[j].Samples
		}
		return result[i].Cell < result[j].Cell
	})
	return result, nil
}
