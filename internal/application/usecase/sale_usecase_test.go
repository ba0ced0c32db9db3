package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/punto-venta/internal/application/usecase"
	"github.com/tu-usuario/punto-venta/internal/domain"
	"github.com/tu-usuario/punto-venta/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake en memoria del repositorio de ventas
// ──────────────────────────────────────────────────────────────────────────────

type memSaleRepo struct {
	sales map[int64]*entity.Sale
	items []*entity.SaleItem
}

func newMemSaleRepo() *memSaleRepo {
	return &memSaleRepo{sales: make(map[int64]*entity.Sale)}
}

func (r *memSaleRepo) CreateSale(sale *entity.Sale) (int64, error) {
	id := int64(len(r.sales) + 1)
	cp := *sale
	cp.ID = id
	r.sales[id] = &cp
	return id, nil
}

func (r *memSaleRepo) CreateItem(item *entity.SaleItem) error {
	cp := *item
	r.items = append(r.items, &cp)
	return nil
}

func (r *memSaleRepo) GetByID(saleID int64) (*entity.Sale, error) {
	s, ok := r.sales[saleID]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *memSaleRepo) GetItemsBySaleID(saleID int64) ([]*entity.SaleItem, error) {
	var out []*entity.SaleItem
	for _, it := range r.items {
		if it.SaleID == saleID {
			ci := *it
			out = append(out, &ci)
		}
	}
	return out, nil
}

func (r *memSaleRepo) ListByDateRange(start, end time.Time) ([]*entity.Sale, error) {
	return nil, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Lecturas del libro de ventas
// ──────────────────────────────────────────────────────────────────────────────

func TestSale_GetByID(t *testing.T) {
	repo := newMemSaleRepo()
	fecha := time.Date(2026, 3, 15, 14, 30, 45, 0, time.Local)
	saleID, err := repo.CreateSale(&entity.Sale{
		TotalAmount:   decimal.RequireFromString("190.00"),
		PaymentMethod: entity.PaymentCash,
		Date:          fecha,
		CashierID:     "CAJERO01",
	})
	require.NoError(t, err)

	uc := usecase.NewSaleUseCase(repo)
	got, err := uc.GetByID(saleID)
	require.NoError(t, err)
	assert.Equal(t, saleID, got.SaleID)
	assert.True(t, got.TotalAmount.Equal(decimal.RequireFromString("190.00")))
	assert.Equal(t, "2026-03-15 14:30:45", got.SaleDate)
	assert.Equal(t, "CAJERO01", got.CashierID)
}

func TestSale_GetByID_NoExiste(t *testing.T) {
	uc := usecase.NewSaleUseCase(newMemSaleRepo())
	_, err := uc.GetByID(999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSale_Detail_ConLineasCongeladas(t *testing.T) {
	repo := newMemSaleRepo()
	saleID, _ := repo.CreateSale(&entity.Sale{
		TotalAmount:   decimal.RequireFromString("190.00"),
		PaymentMethod: entity.PaymentMpesa,
		Date:          time.Now(),
		CashierID:     "CAJERO01",
	})
	require.NoError(t, repo.CreateItem(&entity.SaleItem{
		SaleID:      saleID,
		ProductID:   "P001",
		ProductName: "Coca-Cola 500ml",
		PriceAtSale: decimal.RequireFromString("60.00"),
		Quantity:    2,
		Subtotal:    decimal.RequireFromString("120.00"),
	}))
	require.NoError(t, repo.CreateItem(&entity.SaleItem{
		SaleID:      saleID,
		ProductID:   "P002",
		ProductName: "Pan Blanco",
		PriceAtSale: decimal.RequireFromString("70.00"),
		Quantity:    1,
		Subtotal:    decimal.RequireFromString("70.00"),
	}))

	uc := usecase.NewSaleUseCase(repo)
	detail, err := uc.Detail(saleID)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentMpesa, detail.PaymentMethod)
	require.Len(t, detail.Items, 2)

	// Las líneas traen la copia congelada al momento de la venta, no el
	// estado actual del catálogo.
	assert.Equal(t, "Coca-Cola 500ml", detail.Items[0].ProductName)
	assert.True(t, detail.Items[0].PriceAtSale.Equal(decimal.RequireFromString("60.00")))
	assert.True(t, detail.Items[0].Subtotal.Equal(decimal.RequireFromString("120.00")))
}

func TestSale_Detail_NoExiste(t *testing.T) {
	uc := usecase.NewSaleUseCase(newMemSaleRepo())
	_, err := uc.Detail(12345)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
