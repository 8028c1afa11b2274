package report_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/report"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

type stubQueryRepo struct {
	rows       []entity.ProductDetail
	lastFilter repository.ProductFilter
}

func (s *stubQueryRepo) List(filter repository.ProductFilter) ([]entity.ProductDetail, error) {
	s.lastFilter = filter
	return s.rows, nil
}

func (s *stubQueryRepo) Get(int64) (*entity.ProductDetail, error) { return nil, nil }

type stubGenerator struct {
	gotRows []entity.ProductDetail
	gotAt   time.Time
}

func (s *stubGenerator) GenerateStockReport(_ context.Context, rows []entity.ProductDetail, at time.Time) ([]byte, error) {
	s.gotRows = rows
	s.gotAt = at
	return []byte("%PDF-1.7 stub"), nil
}

func TestGenerate_PasaFiltrosYFilasAlGenerador(t *testing.T) {
	repo := &stubQueryRepo{rows: []entity.ProductDetail{
		{ID: 1, GarmentCode: "CAM-01", GarmentName: "Camisa", Color: "azul", Quantity: 10},
	}}
	gen := &stubGenerator{}
	uc := report.NewStockReportUseCase(repo, gen)

	out, err := uc.Generate(context.Background(), "camisa", 1)
	require.NoError(t, err)

	assert.Equal(t, []byte("%PDF-1.7 stub"), out)
	assert.Equal(t, "camisa", repo.lastFilter.Search)
	assert.Equal(t, 1, repo.lastFilter.MinQuantity)
	require.Len(t, gen.gotRows, 1)
	assert.Equal(t, "CAM-01", gen.gotRows[0].GarmentCode)
	assert.False(t, gen.gotAt.IsZero())
}

func TestGenerate_MinQuantityNegativoSeNormaliza(t *testing.T) {
	repo := &stubQueryRepo{}
	uc := report.NewStockReportUseCase(repo, &stubGenerator{})

	_, err := uc.Generate(context.Background(), "", -5)
	require.NoError(t, err)
	assert.Equal(t, 0, repo.lastFilter.MinQuantity)
}
