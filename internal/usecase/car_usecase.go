package usecase

import (
	"context"

	"carhub/internal/domain/entity"
	"carhub/internal/domain/service"

	"github.com/google/uuid"
)

// CreateCarInput carries a new listing and its images in upload order.
type CreateCarInput struct {
	Title       string
	Description string
	Company     string
	CarType     string
	Dealer      string
	Images      []service.ImageFile
}

// UpdateCarInput is a partial update. Nil or empty fields are left unchanged.
// Tag fields only take effect when Company is set.
type UpdateCarInput struct {
	Title       *string
	Description *string
	Company     *string
	CarType     *string
	Dealer      *string
}

// CarUsecase manages car listings on behalf of their owner. Car IDs arrive as
// raw strings from the transport and are validated here.
type CarUsecase interface {
	CreateCar(ctx context.Context, ownerID uuid.UUID, input *CreateCarInput) (*entity.Car, error)

	// GetCar reports a car owned by someone else exactly like a missing one.
	GetCar(ctx context.Context, ownerID uuid.UUID, carID string) (*entity.Car, error)

	ListMyCars(ctx context.Context, ownerID uuid.UUID) ([]*entity.Car, error)

	SearchCars(ctx context.Context, ownerID uuid.UUID, query string) ([]*entity.Car, error)

	UpdateCar(ctx context.Context, ownerID uuid.UUID, carID string, input *UpdateCarInput) (*entity.Car, error)

	// UploadImages appends images to the end of the car's image list.
	UploadImages(ctx context.Context, ownerID uuid.UUID, carID string, images []service.ImageFile) (*entity.Car, error)

	// DeleteImage removes the first occurrence of imageURL from the car.
	DeleteImage(ctx context.Context, ownerID uuid.UUID, carID, imageURL string) (*entity.Car, error)

	DeleteCar(ctx context.Context, ownerID uuid.UUID, carID string) error
}
