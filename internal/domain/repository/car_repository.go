// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"carhub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrCarNotFound is returned when no car has the requested id.
var ErrCarNotFound = errors.New("car not found")

// CarRepository persists car documents. Implementations exist for PostgreSQL
// and MongoDB; both must honour the same semantics.
type CarRepository interface {
	// Create persists a fully populated car, including its generated ID.
	Create(ctx context.Context, car *entity.Car) error

	// FindByID returns ErrCarNotFound when no car has the id.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Car, error)

	// FindByOwner lists the owner's cars in store-native order.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Car, error)

	// SearchByOwner lists the owner's cars whose title, description, company,
	// car type or dealer contains query, ignoring case. query is matched
	// literally, never as a pattern.
	SearchByOwner(ctx context.Context, ownerID uuid.UUID, query string) ([]*entity.Car, error)

	// Update writes only the fields set in patch and returns the stored car.
	Update(ctx context.Context, id uuid.UUID, patch *entity.CarPatch) (*entity.Car, error)

	// ReplaceImages overwrites the image list and returns the stored car.
	ReplaceImages(ctx context.Context, id uuid.UUID, images []string) (*entity.Car, error)

	// Delete returns ErrCarNotFound when nothing was deleted.
	Delete(ctx context.Context, id uuid.UUID) error
}
