package usecase

import (
	"strings"
	"time"

	"github.com/tu-usuario/punto-venta/internal/application/dto"
	"github.com/tu-usuario/punto-venta/internal/domain"
	"github.com/tu-usuario/punto-venta/internal/domain/entity"
	"github.com/tu-usuario/punto-venta/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD del catálogo. El stock solo baja aquí por
// edición explícita; el descuento por venta es del motor de checkout.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto nuevo. Retorna ErrDuplicate si el ID ya existe y
// ErrInvalidInput con precio <= 0 o stock negativo.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	id := strings.ToUpper(strings.TrimSpace(in.ProductID))
	name := strings.TrimSpace(in.Name)
	if id == "" || name == "" {
		return nil, domain.ErrInvalidInput
	}
	if !in.Price.IsPositive() || in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:        id,
		Name:      name,
		Price:     in.Price,
		Stock:     in.Stock,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto. Retorna ErrNotFound si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// Update reemplaza nombre, precio y stock. Retorna ErrNotFound si no existe.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || !in.Price.IsPositive() || in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	product.Name = name
	product.Price = in.Price
	product.Stock = in.Stock
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto. Retorna ErrNotFound si no existe. Las líneas
// de ventas históricas conservan su copia congelada de nombre y precio.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// Search busca por id o nombre (subcadena, case-insensitive).
func (uc *ProductUseCase) Search(query string) (*dto.ProductListResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.Search(query)
	if err != nil {
		return nil, err
	}
	return toProductList(list), nil
}

// List lista el catálogo con paginación.
func (uc *ProductUseCase) List(page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toProductList(list), nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Stock:     p.Stock,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func toProductList(list []*entity.Product) *dto.ProductListResponse {
	out := &dto.ProductListResponse{Items: make([]dto.ProductResponse, 0, len(list))}
	for _, p := range list {
		out.Items = append(out.Items, *toProductResponse(p))
	}
	return out
}
