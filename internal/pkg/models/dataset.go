package models

import (
	"time"
)

// Transaction represents one coupon-capture event from the transactions dataset.
// CouponValue and Commission are coerced to 0 at load time when malformed; Date,
// Time and Age keep their raw CSV text because the aggregation rules decide
// per-operation whether a bad value excludes the record or defaults.
type Transaction struct {
	Date          string  // data, calendar day (2006-01-02)
	Time          string  // hora, time of day (15:04 or 15:04:05)
	CapturedAt    string  // data_transacao, full capture timestamp
	CouponValue   float64 // valor_cupom
	Commission    float64 // repasse_picmoney, platform payout
	CouponType    string  // tipo_cupom
	StoreName     string  // nome_estabelecimento
	StoreCategory string  // categoria_estabelecimento
	Neighborhood  string  // bairro_estabelecimento
	Phone         string  // celular, customer join key
	Age           string  // idade, overlaid from the customer record on join
	Gender        string  // sexo, overlaid from the customer record on join
}

// Store represents a physical establishment from the stores dataset.
// Coordinates stay raw; projections drop rows that fail to parse.
type Store struct {
	Name      string // nome_loja
	Address   string // endereco_loja
	Category  string // tipo_loja
	Latitude  string
	Longitude string
}

// Customer represents one row of the customers dataset
type Customer struct {
	Phone  string // celular
	Name   string // nome
	Age    string // idade
	Gender string // sexo
}

// Pedestrian represents a foot-traffic sample from the pedestrians dataset
type Pedestrian struct {
	Latitude  string
	Longitude string
	HasApp    bool   // possui_app_picmoney
	Place     string // local
	Date      string // data
	Time      string // horario
}

// Snapshot is the immutable in-memory copy of all four datasets, built once at
// startup. Transactions are already enriched with customer fields.
type Snapshot struct {
	Transactions []Transaction
	Stores       []Store
	Customers    []Customer
	Pedestrians  []Pedestrian
	LoadedAt     time.Time
}
