package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/picmoney/dashboard-api/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func fixtureConfig(dir string) *models.Config {
	cfg := &models.Config{}
	cfg.Data = models.DataConfig{
		Dir:              dir,
		TransactionsFile: "transacoes.csv",
		StoresFile:       "lojas.csv",
		CustomersFile:    "players.csv",
		PedestriansFile:  "pedestres.csv",
	}
	return cfg
}

func writeAllFixtures(t *testing.T, dir string) {
	writeFixture(t, dir, "transacoes.csv",
		"data,hora,valor_cupom,repasse_picmoney,tipo_cupom,nome_estabelecimento,categoria_estabelecimento,bairro_estabelecimento,celular\n"+
			"2025-07-01,10:30,10.50,1.05,Desconto,Loja A,Restaurante,Centro,119001\n"+
			"2025-07-02,14:00,20.00,2.00,Cashback,Loja B,Moda,Moema,119002\n"+
			"2025-07-03,19:45,abc,,Desconto,Loja A,Restaurante,Centro,119999\n")
	writeFixture(t, dir, "lojas.csv",
		"nome_loja,endereco_loja,tipo_loja,latitude,longitude\n"+
			"Loja A,Rua X 1,Restaurante,-23.55,-46.63\n"+
			"Loja B,Rua Y 2,Moda,nope,-46.64\n")
	writeFixture(t, dir, "players.csv",
		"celular,nome,idade,sexo\n"+
			"119001,Ana,34,Feminino\n"+
			"119002,Bruno,28,Masculino\n"+
			"119002,Bruna,29,Feminino\n")
	writeFixture(t, dir, "pedestres.csv",
		"latitude,longitude,possui_app_picmoney,local,data,horario\n"+
			"-23.55,-46.63,True,Paulista,2025-07-01,09:00\n"+
			"-23.56,-46.64,False,Centro,2025-07-01,10:00\n")
}

func TestNewDatasetRepo(t *testing.T) {
	dir := t.TempDir()
	writeAllFixtures(t, dir)

	repo, err := NewDatasetRepo(fixtureConfig(dir))
	require.NoError(t, err)

	snapshot := repo.GetSnapshot()
	require.NotNil(t, snapshot)
	assert.False(t, snapshot.LoadedAt.IsZero())

	assert.Len(t, snapshot.Transactions, 3)
	assert.Len(t, snapshot.Stores, 2)
	assert.Len(t, snapshot.Customers, 3)
	assert.Len(t, snapshot.Pedestrians, 2)
}

func TestNewDatasetRepo_MissingFile(t *testing.T) {
	dir := t.TempDir()
	writeAllFixtures(t, dir)
	require.NoError(t, os.Remove(filepath.Join(dir, "transacoes.csv")))

	repo, err := NewDatasetRepo(fixtureConfig(dir))
	assert.Error(t, err)
	assert.Nil(t, repo)
}

func TestCustomerJoin(t *testing.T) {
	dir := t.TempDir()
	writeAllFixtures(t, dir)

	repo, err := NewDatasetRepo(fixtureConfig(dir))
	require.NoError(t, err)

	transactions := repo.GetSnapshot().Transactions

	t.Run("customer fields overlay transaction", func(t *testing.T) {
		assert.Equal(t, "34", transactions[0].Age)
		assert.Equal(t, "Feminino", transactions[0].Gender)
	})

	t.Run("duplicate customers resolve last-write-wins", func(t *testing.T) {
		assert.Equal(t, "29", transactions[1].Age)
		assert.Equal(t, "Feminino", transactions[1].Gender)
	})

	t.Run("unmatched transaction passes through unchanged", func(t *testing.T) {
		assert.Empty(t, transactions[2].Age)
		assert.Empty(t, transactions[2].Gender)
	})
}

func TestMalformedNumericFieldsDefaultToZero(t *testing.T) {
	dir := t.TempDir()
	writeAllFixtures(t, dir)

	repo, err := NewDatasetRepo(fixtureConfig(dir))
	require.NoError(t, err)

	third := repo.GetSnapshot().Transactions[2]
	assert.Equal(t, 0.0, third.CouponValue)
	assert.Equal(t, 0.0, third.Commission)
}

func TestPedestrianAppFlag(t *testing.T) {
	dir := t.TempDir()
	writeAllFixtures(t, dir)

	repo, err := NewDatasetRepo(fixtureConfig(dir))
	require.NoError(t, err)

	pedestrians := repo.GetSnapshot().Pedestrians
	assert.True(t, pedestrians[0].HasApp)
	assert.False(t, pedestrians[1].HasApp)
}
