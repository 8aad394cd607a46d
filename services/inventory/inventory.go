package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	inventoryRepo "barberbook/database/repository/inventory"
	"barberbook/models"

	"github.com/google/uuid"
)

// LowStockThreshold is the quantity at or below which a product is flagged
// for restocking.
const LowStockThreshold = 5

// ErrNotFound is returned when no product matches the query for the barber.
var ErrNotFound = errors.New("product not found")

// InventoryService manages a barber's stock of retail and consumable items.
type InventoryService interface {
	AddProduct(ctx context.Context, product models.Product) (*models.Product, error)
	ListProducts(ctx context.Context, barberID string) ([]models.Product, error)
	ListLowStock(ctx context.Context, barberID string) ([]models.Product, error)
	UpdateProduct(ctx context.Context, barberID, id string, updates map[string]interface{}) error
	RemoveProduct(ctx context.Context, barberID, id string) error
}

// DefaultInventoryService is the production implementation.
type DefaultInventoryService struct {
	Repo inventoryRepo.InventoryRepository
}

var updatableProductFields = map[string]bool{
	"name":     true,
	"quantity": true,
	"unitCost": true,
	"supplier": true,
}

func (s *DefaultInventoryService) AddProduct(ctx context.Context, product models.Product) (*models.Product, error) {
	product.Name = strings.TrimSpace(product.Name)
	if product.BarberID == "" {
		return nil, fmt.Errorf("missing barber id")
	}
	if product.Name == "" {
		return nil, fmt.Errorf("product name is required")
	}
	if product.Quantity < 0 {
		return nil, fmt.Errorf("quantity must not be negative")
	}
	if product.UnitCost < 0 {
		return nil, fmt.Errorf("unit cost must not be negative")
	}

	now := time.Now().UTC()
	product.ID = uuid.New().String()
	product.CreatedAt = now
	product.UpdatedAt = now
	if err := s.Repo.Create(ctx, &product); err != nil {
		return nil, fmt.Errorf("failed to add product: %w", err)
	}
	return &product, nil
}

func (s *DefaultInventoryService) ListProducts(ctx context.Context, barberID string) ([]models.Product, error) {
	products, err := s.Repo.ListByBarber(ctx, barberID)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

// ListLowStock returns products whose quantity has fallen to the restock
// threshold or below.
func (s *DefaultInventoryService) ListLowStock(ctx context.Context, barberID string) ([]models.Product, error) {
	products, err := s.Repo.ListBelowQuantity(ctx, barberID, LowStockThreshold)
	if err != nil {
		return nil, fmt.Errorf("failed to list low-stock products: %w", err)
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

func (s *DefaultInventoryService) UpdateProduct(ctx context.Context, barberID, id string, updates map[string]interface{}) error {
	fields := make(map[string]any, len(updates)+1)
	for k, v := range updates {
		if !updatableProductFields[k] {
			return fmt.Errorf("field %q cannot be updated", k)
		}
		fields[k] = v
	}
	if len(fields) == 0 {
		return fmt.Errorf("no updatable fields provided")
	}
	fields["updatedAt"] = time.Now().UTC()

	if err := s.Repo.Update(ctx, barberID, id, fields); err != nil {
		if errors.Is(err, inventoryRepo.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update product: %w", err)
	}
	return nil
}

func (s *DefaultInventoryService) RemoveProduct(ctx context.Context, barberID, id string) error {
	if err := s.Repo.Delete(ctx, barberID, id); err != nil {
		if errors.Is(err, inventoryRepo.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to remove product: %w", err)
	}
	return nil
}
