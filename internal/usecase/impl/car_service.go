package impl

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"carhub/config"
	deliverycontext "carhub/internal/delivery/context"
	"carhub/internal/domain/constants"
	"carhub/internal/domain/entity"
	domainerrors "carhub/internal/domain/errors"
	"carhub/internal/domain/repository"
	"carhub/internal/domain/service"
	"carhub/internal/errors"
	"carhub/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

type carService struct {
	carRepo    repository.CarRepository
	imageStore service.ImageStore
	publisher  service.EventPublisher
	validate   *validator.Validate
	logger     *slog.Logger
	now        func() time.Time

	folder                string
	maxImages             int
	enforceImageOwnership bool
	limitOnAppend         bool
	purgeRemovedImages    bool
}

// CarServiceParams holds dependencies for CarService, injected by Fx.
type CarServiceParams struct {
	fx.In

	CarRepo    repository.CarRepository
	ImageStore service.ImageStore
	Publisher  service.EventPublisher `optional:"true"`
	Config     *config.Config
	Logger     *slog.Logger
}

// NewCarService builds the car use case. The image policy comes from the cars
// and imageStore config sections.
func NewCarService(params CarServiceParams) usecase.CarUsecase {
	srv := &carService{
		carRepo:            params.CarRepo,
		imageStore:         params.ImageStore,
		publisher:          params.Publisher,
		validate:           validator.New(validator.WithRequiredStructEnabled()),
		logger:             params.Logger,
		now:                time.Now,
		folder:             constants.DefaultImageFolder,
		maxImages:          constants.DefaultMaxImages,
		limitOnAppend:      true,
		purgeRemovedImages: true,
	}

	if cfg := params.Config; cfg != nil {
		if cfg.ImageStore != nil && cfg.ImageStore.Folder != "" {
			srv.folder = cfg.ImageStore.Folder
		}
		if cfg.Cars != nil {
			if cfg.Cars.MaxImages > 0 {
				srv.maxImages = cfg.Cars.MaxImages
			}
			srv.enforceImageOwnership = cfg.Cars.EnforceImageOwnership
			srv.limitOnAppend = cfg.Cars.LimitOnAppend()
			srv.purgeRemovedImages = cfg.Cars.PurgeOnRemove()
		}
	}

	return srv
}

func (srv *carService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *carService) CreateCar(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateCarInput) (*entity.Car, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("missing car details")
	}

	if missing := missingCreateFields(input); len(missing) > 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails(
			"please provide full car details, including images; missing: " + strings.Join(missing, ", "))
	}
	if len(input.Images) > srv.maxImages {
		return nil, domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("images: at most %d allowed", srv.maxImages))
	}

	now := srv.now()
	car := &entity.Car{
		ID:          uuid.New(),
		Title:       input.Title,
		Description: input.Description,
		Tags: entity.CarTags{
			Company: input.Company,
			CarType: input.CarType,
			Dealer:  input.Dealer,
		},
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	// Reject bad text fields before anything reaches the image store.
	if err := srv.validateCar(car); err != nil {
		return nil, err
	}

	urls, err := srv.uploadAll(ctx, input.Images)
	if err != nil {
		return nil, err
	}
	car.Images = urls

	if err := srv.carRepo.Create(ctx, car); err != nil {
		srv.log(ctx).Error("Failed to persist car", slog.Any("error", err), slog.Int("uploadedImages", len(urls)))

		return nil, domainerrors.NewDatabaseExecuteError(err, "create car")
	}

	srv.log(ctx).Info("Car created", slog.String("carID", car.ID.String()), slog.Int("images", len(car.Images)))
	srv.publish(ctx, service.CarEventCreated, car, car.Images)

	return car, nil
}

func (srv *carService) GetCar(ctx context.Context, ownerID uuid.UUID, carID string) (*entity.Car, error) {
	id, err := parseCarID(carID)
	if err != nil {
		return nil, err
	}

	return srv.loadOwnedCar(ctx, ownerID, id)
}

func (srv *carService) ListMyCars(ctx context.Context, ownerID uuid.UUID) ([]*entity.Car, error) {
	cars, err := srv.carRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "list cars")
	}

	return cars, nil
}

func (srv *carService) SearchCars(ctx context.Context, ownerID uuid.UUID, query string) ([]*entity.Car, error) {
	if query == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("please provide a valid search query")
	}

	cars, err := srv.carRepo.SearchByOwner(ctx, ownerID, query)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "search cars")
	}

	return cars, nil
}

func (srv *carService) UpdateCar(ctx context.Context, ownerID uuid.UUID, carID string, input *usecase.UpdateCarInput) (*entity.Car, error) {
	id, err := parseCarID(carID)
	if err != nil {
		return nil, err
	}

	car, err := srv.loadOwnedCar(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	patch := buildCarPatch(car, input)
	if patch.IsEmpty() {
		return car, nil
	}

	merged := *car
	patch.ApplyTo(&merged)
	if err := srv.validateCar(&merged); err != nil {
		return nil, err
	}

	updated, err := srv.carRepo.Update(ctx, id, patch)
	if err != nil {
		return nil, srv.mapStoreError(err, "update car")
	}

	srv.publish(ctx, service.CarEventUpdated, updated, nil)

	return updated, nil
}

func (srv *carService) UploadImages(ctx context.Context, ownerID uuid.UUID, carID string, images []service.ImageFile) (*entity.Car, error) {
	id, err := parseCarID(carID)
	if err != nil {
		return nil, err
	}
	if len(images) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("at least one image is required")
	}

	car, err := srv.loadCarForImages(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if srv.limitOnAppend && len(car.Images)+len(images) > srv.maxImages {
		return nil, domainerrors.ErrImageLimitExceeded.WithDetails(
			fmt.Sprintf("car has %d images, adding %d exceeds the limit of %d", len(car.Images), len(images), srv.maxImages))
	}

	urls, err := srv.uploadAll(ctx, images)
	if err != nil {
		return nil, err
	}

	updated, err := srv.carRepo.ReplaceImages(ctx, id, append(slices.Clone(car.Images), urls...))
	if err != nil {
		return nil, srv.mapStoreError(err, "append car images")
	}

	srv.publish(ctx, service.CarEventImagesAdded, updated, urls)

	return updated, nil
}

func (srv *carService) DeleteImage(ctx context.Context, ownerID uuid.UUID, carID, imageURL string) (*entity.Car, error) {
	id, err := parseCarID(carID)
	if err != nil {
		return nil, err
	}
	if imageURL == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("car ID and image URL are required")
	}

	car, err := srv.loadCarForImages(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	remaining := *car
	if !remaining.RemoveImage(imageURL) {
		return nil, domainerrors.ErrImageNotFound.WrapMessage("delete image")
	}

	updated, err := srv.carRepo.ReplaceImages(ctx, id, remaining.Images)
	if err != nil {
		return nil, srv.mapStoreError(err, "remove car image")
	}

	// A duplicate URL still on the car shares the stored object.
	if srv.purgeRemovedImages && !slices.Contains(updated.Images, imageURL) {
		srv.purgeImage(ctx, imageURL)
	}

	srv.publish(ctx, service.CarEventImageRemoved, updated, []string{imageURL})

	return updated, nil
}

func (srv *carService) DeleteCar(ctx context.Context, ownerID uuid.UUID, carID string) error {
	id, err := parseCarID(carID)
	if err != nil {
		return err
	}

	car, err := srv.loadOwnedCar(ctx, ownerID, id)
	if err != nil {
		return err
	}

	if err := srv.carRepo.Delete(ctx, id); err != nil {
		return srv.mapStoreError(err, "delete car")
	}

	// Stored images stay in the bucket; the event lists them for cleanup.
	srv.publish(ctx, service.CarEventDeleted, car, car.Images)

	return nil
}

// loadOwnedCar fetches a car and hides cars of other owners behind ErrCarAccessDenied.
func (srv *carService) loadOwnedCar(ctx context.Context, ownerID, id uuid.UUID) (*entity.Car, error) {
	car, err := srv.carRepo.FindByID(ctx, id)
	if err != nil {
		return nil, srv.mapStoreError(err, "find car")
	}

	if !car.IsOwnedBy(ownerID) {
		srv.log(ctx).Warn("Car access denied",
			slog.String("carID", id.String()),
			slog.String("userID", ownerID.String()))

		return nil, domainerrors.ErrCarAccessDenied.WrapMessage("car belongs to another user")
	}

	return car, nil
}

// loadCarForImages applies the owner check only when image ownership is enforced.
func (srv *carService) loadCarForImages(ctx context.Context, ownerID, id uuid.UUID) (*entity.Car, error) {
	if srv.enforceImageOwnership {
		return srv.loadOwnedCar(ctx, ownerID, id)
	}

	car, err := srv.carRepo.FindByID(ctx, id)
	if err != nil {
		return nil, srv.mapStoreError(err, "find car")
	}

	return car, nil
}

// uploadAll uploads files one at a time and stops at the first failure.
// Files uploaded before the failure are left in the store.
func (srv *carService) uploadAll(ctx context.Context, files []service.ImageFile) ([]string, error) {
	urls := make([]string, 0, len(files))
	for i, file := range files {
		url, err := srv.imageStore.Upload(ctx, file, srv.folder)
		if err != nil {
			srv.log(ctx).Error("Image upload failed",
				slog.Int("index", i),
				slog.String("file", file.Name),
				slog.Int("alreadyUploaded", len(urls)),
				slog.Any("error", err))

			return nil, errors.Wrap(domainerrors.ErrImageUploadFailed, err.Error())
		}
		urls = append(urls, url)
	}

	return urls, nil
}

func (srv *carService) purgeImage(ctx context.Context, imageURL string) {
	publicID := srv.imageStore.PublicID(imageURL)
	if publicID == "" {
		srv.log(ctx).Warn("Removed image is not managed by the image store", slog.String("url", imageURL))

		return
	}

	if err := srv.imageStore.DeleteByIDs(ctx, []string{publicID}); err != nil {
		srv.log(ctx).Warn("Failed to delete image from image store",
			slog.String("publicID", publicID),
			slog.Any("error", err))
	}
}

func (srv *carService) publish(ctx context.Context, eventType string, car *entity.Car, images []string) {
	if srv.publisher == nil {
		return
	}

	event := &service.CarEvent{
		Type:       eventType,
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		CarID:      car.ID.String(),
		OwnerID:    car.OwnerID.String(),
		Images:     images,
		OccurredAt: srv.now(),
	}

	if err := srv.publisher.PublishCarEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish car event",
			slog.String("type", eventType),
			slog.String("carID", event.CarID),
			slog.Any("error", err))
	}
}

func (srv *carService) validateCar(car *entity.Car) error {
	if err := srv.validate.Struct(car); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(describeValidationError(err))
	}
	if len(car.Images) > srv.maxImages {
		return domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("images: at most %d allowed", srv.maxImages))
	}

	return nil
}

func (srv *carService) mapStoreError(err error, op string) error {
	if errors.Is(err, repository.ErrCarNotFound) {
		return domainerrors.ErrCarNotFound.WrapMessage(op)
	}

	return domainerrors.NewDatabaseExecuteError(err, op)
}

// buildCarPatch keeps only non-empty fields. Tags change only when Company
// is supplied; CarType and Dealer then fall back to the stored values.
func buildCarPatch(car *entity.Car, input *usecase.UpdateCarInput) *entity.CarPatch {
	patch := &entity.CarPatch{}
	if input == nil {
		return patch
	}

	if present(input.Title) {
		patch.Title = input.Title
	}
	if present(input.Description) {
		patch.Description = input.Description
	}

	if present(input.Company) {
		tags := car.Tags
		tags.Company = *input.Company
		if present(input.CarType) {
			tags.CarType = *input.CarType
		}
		if present(input.Dealer) {
			tags.Dealer = *input.Dealer
		}
		patch.Tags = &tags
	}

	return patch
}

func present(s *string) bool {
	return s != nil && *s != ""
}

func missingCreateFields(input *usecase.CreateCarInput) []string {
	var missing []string
	for _, f := range []struct {
		name  string
		value string
	}{
		{"title", input.Title},
		{"description", input.Description},
		{"company", input.Company},
		{"carType", input.CarType},
		{"dealer", input.Dealer},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	if len(input.Images) == 0 {
		missing = append(missing, "images")
	}

	return missing
}

func parseCarID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid car id")
	}

	return id, nil
}

func describeValidationError(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		field := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s: %s=%s", field, fe.Tag(), fe.Param()))
		} else {
			parts = append(parts, fmt.Sprintf("%s: %s", field, fe.Tag()))
		}
	}

	return strings.Join(parts, "; ")
}
