package repository

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/picmoney/dashboard-api/internal/pkg/logger"
	"github.com/picmoney/dashboard-api/internal/pkg/models"
	"github.com/picmoney/dashboard-api/internal/utils"
)

// DatasetRepo loads the four CSV datasets once and serves the resulting
// immutable snapshot for the process lifetime. A restart is the only refresh
// mechanism.
type DatasetRepo struct {
	snapshot *models.Snapshot
}

// NewDatasetRepo reads all four datasets and builds the enriched snapshot.
// Any missing or unreadable file is a fatal condition for the caller; the
// analytics engine has no degraded mode without its data.
func NewDatasetRepo(cfg *models.Config) (*DatasetRepo, error) {
	snapshot, err := load(cfg.Data)
	if err != nil {
		return nil, err
	}
	return &DatasetRepo{snapshot: snapshot}, nil
}

// GetSnapshot returns the startup snapshot
func (r *DatasetRepo) GetSnapshot() *models.Snapshot {
	return r.snapshot
}

func load(cfg models.DataConfig) (*models.Snapshot, error) {
	transactions, err := readTable(filepath.Join(cfg.Dir, cfg.TransactionsFile))
	if err != nil {
		return nil, fmt.Errorf("loading transactions: %w", err)
	}
	stores, err := readTable(filepath.Join(cfg.Dir, cfg.StoresFile))
	if err != nil {
		return nil, fmt.Errorf("loading stores: %w", err)
	}
	customers, err := readTable(filepath.Join(cfg.Dir, cfg.CustomersFile))
	if err != nil {
		return nil, fmt.Errorf("loading customers: %w", err)
	}
	pedestrians, err := readTable(filepath.Join(cfg.Dir, cfg.PedestriansFile))
	if err != nil {
		return nil, fmt.Errorf("loading pedestrians: %w", err)
	}

	customerRecords := buildCustomers(customers)
	snapshot := &models.Snapshot{
		Transactions: joinCustomers(buildTransactions(transactions), customerRecords),
		Stores:       buildStores(stores),
		Customers:    customerRecords,
		Pedestrians:  buildPedestrians(pedestrians),
		LoadedAt:     models.Now(),
	}

	logger.Info("Datasets loaded",
		logger.Int("transactions", len(snapshot.Transactions)),
		logger.Int("stores", len(snapshot.Stores)),
		logger.Int("customers", len(snapshot.Customers)),
		logger.Int("pedestrians", len(snapshot.Pedestrians)),
	)

	return snapshot, nil
}

// table is a CSV file parsed into header-addressed rows
type table struct {
	index map[string]int
	rows  [][]string
}

// get returns the named column of a row, empty when the column is absent
func (t *table) get(row []string, column string) string {
	idx, ok := t.index[column]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func readTable(path string) (*table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // ragged rows resolve per-field to ""
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header of %s: %w", path, err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		rows = append(rows, row)
	}

	return &table{index: index, rows: rows}, nil
}

func buildTransactions(t *table) []models.Transaction {
	out := make([]models.Transaction, 0, len(t.rows))
	for _, row := range t.rows {
		out = append(out, models.Transaction{
			Date:          t.get(row, "data"),
			Time:          t.get(row, "hora"),
			CapturedAt:    t.get(row, "data_transacao"),
			CouponValue:   utils.ParseFloatOrZero(t.get(row, "valor_cupom")),
			Commission:    utils.ParseFloatOrZero(t.get(row, "repasse_picmoney")),
			CouponType:    t.get(row, "tipo_cupom"),
			StoreName:     t.get(row, "nome_estabelecimento"),
			StoreCategory: t.get(row, "categoria_estabelecimento"),
			Neighborhood:  t.get(row, "bairro_estabelecimento"),
			Phone:         t.get(row, "celular"),
			Age:           t.get(row, "idade"),
			Gender:        t.get(row, "sexo"),
		})
	}
	return out
}

func buildStores(t *table) []models.Store {
	out := make([]models.Store, 0, len(t.rows))
	for _, row := range t.rows {
		out = append(out, models.Store{
			Name:      t.get(row, "nome_loja"),
			Address:   t.get(row, "endereco_loja"),
			Category:  t.get(row, "tipo_loja"),
			Latitude:  t.get(row, "latitude"),
			Longitude: t.get(row, "longitude"),
		})
	}
	return out
}

func buildCustomers(t *table) []models.Customer {
	out := make([]models.Customer, 0, len(t.rows))
	for _, row := range t.rows {
		out = append(out, models.Customer{
			Phone:  t.get(row, "celular"),
			Name:   t.get(row, "nome"),
			Age:    t.get(row, "idade"),
			Gender: t.get(row, "sexo"),
		})
	}
	return out
}

func buildPedestrians(t *table) []models.Pedestrian {
	out := make([]models.Pedestrian, 0, len(t.rows))
	for _, row := range t.rows {
		out = append(out, models.Pedestrian{
			Latitude:  t.get(row, "latitude"),
			Longitude: t.get(row, "longitude"),
			HasApp:    strings.EqualFold(t.get(row, "possui_app_picmoney"), "true"),
			Place:     t.get(row, "local"),
			Date:      t.get(row, "data"),
			Time:      t.get(row, "horario"),
		})
	}
	return out
}

// joinCustomers enriches each transaction with the demographic fields of the
// customer sharing its phone number. Customer fields take precedence on a
// match; duplicates in the customer file resolve last-write-wins. The join
// never drops or duplicates transactions.
func joinCustomers(transactions []models.Transaction, customers []models.Customer) []models.Transaction {
	byPhone := make(map[string]models.Customer, len(customers))
	for _, c := range customers {
		if c.Phone != "" {
			byPhone[c.Phone] = c
		}
	}

	out := make([]models.Transaction, len(transactions))
	for i, t := range transactions {
		if c, ok := byPhone[t.Phone]; ok {
			t.Age = c.Age
			t.Gender = c.Gender
		}
		out[i] = t
	}
	return out
}
