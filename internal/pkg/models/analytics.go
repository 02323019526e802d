package models

import (
	"time"
)

// GeneralStats is the scalar summary over the filtered transaction set
type GeneralStats struct {
	TotalTransactions int     `json:"totalTransactions"`
	TotalRevenue      float64 `json:"totalRevenue"`
	AvgTicket         float64 `json:"avgTicket"`
	TotalCommission   float64 `json:"totalCommission"`
	UniqueStores      int     `json:"uniqueStores"`
	UniqueCustomers   int     `json:"uniqueCustomers"`
}

// TimeSeriesPoint is one calendar day of the transactions-over-time series
type TimeSeriesPoint struct {
	Date        string  `json:"date"`
	Count       int     `json:"count"`
	Value       float64 `json:"value"`
	Commission  float64 `json:"commission"`
	ActiveUsers int     `json:"activeUsers"`
}

// CategorySummary is one row of the top-categories ranking
type CategorySummary struct {
	Category string  `json:"category"`
	Count    int     `json:"count"`
	Value    float64 `json:"value"`
}

// CouponTypeShare is one slice of the coupon-type distribution. Percent is a
// whole number; the distribution intentionally rounds coarser than currency.
type CouponTypeShare struct {
	Type    string  `json:"type"`
	Count   int     `json:"count"`
	Value   float64 `json:"value"`
	Percent int     `json:"percent"`
}

// StoreRanking is one row of the store performance ranking
type StoreRanking struct {
	Rank      int     `json:"rank"`
	Store     string  `json:"store"`
	Category  string  `json:"category"`
	Revenue   float64 `json:"revenue"`
	Count     int     `json:"count"`
	AvgTicket float64 `json:"avgTicket"`
}

// RegionRevenue is one neighborhood's revenue total
type RegionRevenue struct {
	Region  string  `json:"region"`
	Revenue float64 `json:"revenue"`
}

// CustomerSegment is a per-transaction demographic projection
type CustomerSegment struct {
	Age       int     `json:"age"`
	AvgTicket float64 `json:"avgTicket"`
	Gender    string  `json:"gender"`
}

// HourCount is one bucket of the 24-hour transaction distribution
type HourCount struct {
	Hour         string `json:"hour"`
	Transactions int    `json:"transactions"`
}

// HourBucket is one cell of a weekday row in the peak-hours matrix
type HourBucket struct {
	Hour    int `json:"hour"`
	Coupons int `json:"coupons"`
}

// WeekdayHours is one weekday row of the 7x24 peak-hours matrix
type WeekdayHours struct {
	Day   string       `json:"day"`
	Hours []HourBucket `json:"hours"`
}

// PeriodStats is one day-period bucket (morning/afternoon/evening/overnight)
type PeriodStats struct {
	Period          string  `json:"period"`
	Transactions    int     `json:"transactions"`
	Revenue         float64 `json:"revenue"`
	AvgTicket       float64 `json:"avgTicket"`
	UniqueCustomers int     `json:"uniqueCustomers"`
	Percentage      float64 `json:"percentage"`
}

// DailyParticipation is one day of the participation series
type DailyParticipation struct {
	Date              string  `json:"date"`
	Transactions      int     `json:"transactions"`
	Revenue           float64 `json:"revenue"`
	AvgTicket         float64 `json:"avgTicket"`
	UniqueCustomers   int     `json:"uniqueCustomers"`
	UniqueStores      int     `json:"uniqueStores"`
	ParticipationRate float64 `json:"participationRate"`
}

// HeatmapPoint is one pedestrian sample projected for the heatmap
type HeatmapPoint struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
	Weight    int     `json:"weight"`
	Place     string  `json:"place"`
	HasApp    bool    `json:"hasApp"`
	Date      string  `json:"date"`
	Time      string  `json:"time"`
}

// StoreLocation is one store projected for the locations map
type StoreLocation struct {
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
	Category  string  `json:"category"`
}

// DensityCell is one geohash cell of the pedestrian density aggregation
type DensityCell struct {
	Cell        string  `json:"cell"`
	Latitude    float64 `json:"lat"`
	Longitude   float64 `json:"lon"`
	Samples     int     `json:"samples"`
	AppHolders  int     `json:"appHolders"`
	Penetration float64 `json:"penetration"`
}

// MonthlyMargin is one month of the operating-margin breakdown
type MonthlyMargin struct {
	Month        string  `json:"month"`
	Revenue      float64 `json:"revenue"`
	Costs        float64 `json:"costs"`
	Margin       float64 `json:"margin"`
	Transactions int     `json:"transactions"`
}

// OperatingMargin is the operating-margin report
type OperatingMargin struct {
	TotalRevenue    float64         `json:"totalRevenue"`
	TotalCosts      float64         `json:"totalCosts"`
	OperatingMargin float64         `json:"operatingMargin"`
	Monthly         []MonthlyMargin `json:"monthlyData"`
}

// NetRevenueSummary is the overall net-revenue totals
type NetRevenueSummary struct {
	TotalGrossRevenue float64 `json:"totalGrossRevenue"`
	TotalCosts        float64 `json:"totalCosts"`
	TotalNetRevenue   float64 `json:"totalNetRevenue"`
	OverallMargin     float64 `json:"overallMargin"`
}

// NetRevenueByType is net revenue broken down for one coupon type
type NetRevenueByType struct {
	Type         string  `json:"type"`
	GrossRevenue float64 `json:"grossRevenue"`
	Costs        float64 `json:"costs"`
	NetRevenue   float64 `json:"netRevenue"`
	Transactions int     `json:"transactions"`
	Margin       float64 `json:"margin"`
}

// NetRevenue is the net-revenue report
type NetRevenue struct {
	Summary NetRevenueSummary  `json:"summary"`
	ByType  []NetRevenueByType `json:"byType"`
}

// CouponTypePerformance is the per-type performance report row
type CouponTypePerformance struct {
	Type              string  `json:"type"`
	TotalValue        float64 `json:"totalValue"`
	TotalTransactions int     `json:"totalTransactions"`
	AvgTicket         float64 `json:"avgTicket"`
	TotalCommission   float64 `json:"totalCommission"`
	CommissionRate    float64 `json:"commissionRate"`
	UniqueCustomers   int     `json:"uniqueCustomers"`
	UniqueStores      int     `json:"uniqueStores"`
}

// TypeUsage is one coupon type's usage within a single day
type TypeUsage struct {
	Type  string  `json:"type"`
	Count int     `json:"count"`
	Value float64 `json:"value"`
}

// UsageTrendPoint is one day of the per-type usage trend
type UsageTrendPoint struct {
	Date  string      `json:"date"`
	Types []TypeUsage `json:"types"`
}

// CategoryAnalysis is one row of the detailed category analysis
type CategoryAnalysis struct {
	Category                 string  `json:"category"`
	Revenue                  float64 `json:"revenue"`
	Transactions             int     `json:"transactions"`
	AvgTicket                float64 `json:"avgTicket"`
	UniqueStores             int     `json:"uniqueStores"`
	UniqueCustomers          int     `json:"uniqueCustomers"`
	Commission               float64 `json:"commission"`
	RevenueParticipation     float64 `json:"revenueParticipation"`
	TransactionParticipation float64 `json:"transactionParticipation"`
}

// CouponValidationSummary is the per-type validation roll-up. The datasets
// carry no validation state, so every captured coupon counts as validated.
type CouponValidationSummary struct {
	Type             string  `json:"type"`
	TotalCoupons     int     `json:"totalCoupons"`
	ValidatedCoupons int     `json:"validatedCoupons"`
	PendingCoupons   int     `json:"pendingCoupons"`
	ValidationRate   float64 `json:"validationRate"`
	TotalRevenue     float64 `json:"totalRevenue"`
	TotalPayout      float64 `json:"totalPayout"`
	AvgCouponValue   float64 `json:"avgCouponValue"`
}

// PayoutRecord is one month/store payout row. Status is always "paid"; there
// is no payout workflow in the source data.
type PayoutRecord struct {
	Month                   string  `json:"month"`
	Store                   string  `json:"store"`
	TotalPayout             float64 `json:"totalPayout"`
	Transactions            int     `json:"transactions"`
	Revenue                 float64 `json:"revenue"`
	PayoutRate              float64 `json:"payoutRate"`
	AvgPayoutPerTransaction float64 `json:"avgPayoutPerTransaction"`
	Status                  string  `json:"status"`
}

// FilterOptions holds the distinct values offered to the dashboard filters
type FilterOptions struct {
	Categories    []string `json:"categories"`
	Neighborhoods []string `json:"neighborhoods"`
	CouponTypes   []string `json:"couponTypes"`
}

// RecordCounts holds per-dataset record totals
type RecordCounts struct {
	Transactions int `json:"transactions"`
	Stores       int `json:"stores"`
	Customers    int `json:"customers"`
	Pedestrians  int `json:"pedestrians"`
}

// Status is the process liveness report
type Status struct {
	Status     string       `json:"status"`
	Timestamp  time.Time    `json:"timestamp"`
	DataLoaded bool         `json:"dataLoaded"`
	LoadedAt   time.Time    `json:"loadedAt"`
	Records    RecordCounts `json:"records"`
}

// AlertSettings holds the dashboard alerting thresholds
type AlertSettings struct {
	MinRevenue            float64 `json:"minRevenue"`
	MaxCouponUsagePercent float64 `json:"maxCouponUsagePercent"`
}
