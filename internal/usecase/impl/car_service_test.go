package impl

import (
	"context"
	"strings"
	"testing"

	"carhub/config"
	"carhub/internal/domain/constants"
	"carhub/internal/domain/entity"
	domainerrors "carhub/internal/domain/errors"
	"carhub/internal/domain/repository"
	"carhub/internal/domain/service"
	mockRepo "carhub/internal/mocks/repository"
	mockSvc "carhub/internal/mocks/service"
	"carhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// carServiceFixtures holds all test dependencies for car service tests.
type carServiceFixtures struct {
	service    usecase.CarUsecase
	carRepo    *mockRepo.MockCarRepository
	imageStore *mockSvc.MockImageStore
	publisher  *mockSvc.MockEventPublisher
}

func createTestCarService(t *testing.T, cars *config.CarsConfig) carServiceFixtures {
	carRepo := mockRepo.NewMockCarRepository(t)
	imageStore := mockSvc.NewMockImageStore(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	if cars == nil {
		cars = &config.CarsConfig{}
	}
	cfg := &config.Config{
		Cars:       cars,
		ImageStore: &config.ImageStoreConfig{Folder: "cars"},
	}

	svc := NewCarService(CarServiceParams{
		CarRepo:    carRepo,
		ImageStore: imageStore,
		Publisher:  publisher,
		Config:     cfg,
		Logger:     newDiscardLogger(),
	})

	return carServiceFixtures{
		service:    svc,
		carRepo:    carRepo,
		imageStore: imageStore,
		publisher:  publisher,
	}
}

// allowEvents accepts any published event; tests that care assert on them explicitly.
func (fx carServiceFixtures) allowEvents() {
	fx.publisher.EXPECT().PublishCarEvent(mock.Anything, mock.Anything).Return(nil).Maybe()
}

func boolRef(b bool) *bool { return &b }

func strRef(s string) *string { return &s }

func imageFile(name string) service.ImageFile {
	return service.ImageFile{Name: name, ContentType: "image/jpeg", Reader: strings.NewReader(name)}
}

func fileNamed(name string) any {
	return mock.MatchedBy(func(f service.ImageFile) bool { return f.Name == name })
}

func newStoredCar(owner uuid.UUID, images ...string) *entity.Car {
	return &entity.Car{
		ID:          uuid.New(),
		Title:       "Sedan",
		Description: "Clean car",
		Tags:        entity.CarTags{Company: "Toyota", CarType: "Sedan", Dealer: "ABC Motors"},
		Images:      images,
		OwnerID:     owner,
	}
}

func validCreateInput(files ...service.ImageFile) *usecase.CreateCarInput {
	return &usecase.CreateCarInput{
		Title:       "Sedan",
		Description: "Clean car",
		Company:     "Toyota",
		CarType:     "Sedan",
		Dealer:      "ABC Motors",
		Images:      files,
	}
}

func assertAppCode(t *testing.T, err error, code string) {
	t.Helper()

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %v", err)
	assert.Equal(t, code, appErr.ErrorCode())
}

func TestCarService_CreateCar_Success(t *testing.T) {
	fx := createTestCarService(t, nil)
	ctx := context.Background()
	owner := uuid.New()

	fx.imageStore.EXPECT().Upload(ctx, fileNamed("f1.jpg"), "cars").Return("https://img/cars/1.jpg", nil).Once()
	fx.imageStore.EXPECT().Upload(ctx, fileNamed("f2.jpg"), "cars").Return("https://img/cars/2.jpg", nil).Once()
	fx.carRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Car")).Return(nil)
	fx.publisher.EXPECT().
		PublishCarEvent(ctx, mock.MatchedBy(func(e *service.CarEvent) bool {
			return e.Type == service.CarEventCreated && len(e.Images) == 2
		})).
		Return(nil)

	car, err := fx.service.CreateCar(ctx, owner, validCreateInput(imageFile("f1.jpg"), imageFile("f2.jpg")))

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, car.ID)
	assert.Equal(t, owner, car.OwnerID)
	assert.Equal(t, "Sedan", car.Title)
	assert.Equal(t, entity.CarTags{Company: "Toyota", CarType: "Sedan", Dealer: "ABC Motors"}, car.Tags)
	assert.Equal(t, []string{"https://img/cars/1.jpg", "https://img/cars/2.jpg"}, car.Images)
	assert.False(t, car.CreatedAt.IsZero())
}

func TestCarService_DefaultsWithoutConfig(t *testing.T) {
	carRepo := mockRepo.NewMockCarRepository(t)
	imageStore := mockSvc.NewMockImageStore(t)
	svc := NewCarService(CarServiceParams{
		CarRepo:    carRepo,
		ImageStore: imageStore,
		Logger:     newDiscardLogger(),
	})
	ctx := context.Background()
	owner := uuid.New()

	imageStore.EXPECT().Upload(ctx, fileNamed("a.jpg"), constants.DefaultImageFolder).Return("https://img/cars/a.jpg", nil).Once()
	carRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Car")).Return(nil).Once()

	car, err := svc.CreateCar(ctx, owner, validCreateInput(imageFile("a.jpg")))
	require.NoError(t, err)
	assert.Equal(t, []string{"https://img/cars/a.jpg"}, car.Images)

	tooMany := make([]service.ImageFile, constants.DefaultMaxImages+1)
	for i := range tooMany {
		tooMany[i] = imageFile("x.jpg")
	}
	_, err = svc.CreateCar(ctx, owner, validCreateInput(tooMany...))
	assertAppCode(t, err, "VALIDATION_FAILED")
}

func TestCarService_CreateCar_ValidationErrors(t *testing.T) {
	tooMany := make([]service.ImageFile, 11)
	for i := range tooMany {
		tooMany[i] = imageFile("f.jpg")
	}

	tests := []struct {
		name  string
		input *usecase.CreateCarInput
	}{
		{name: "nil input", input: nil},
		{name: "missing title", input: func() *usecase.CreateCarInput {
			in := validCreateInput(imageFile("f.jpg"))
			in.Title = ""

			return in
		}()},
		{name: "missing dealer", input: func() *usecase.CreateCarInput {
			in := validCreateInput(imageFile("f.jpg"))
			in.Dealer = ""

			return in
		}()},
		{name: "no images", input: validCreateInput()},
		{name: "title too long", input: func() *usecase.CreateCarInput {
			in := validCreateInput(imageFile("f.jpg"))
			in.Title = strings.Repeat("a", 31)

			return in
		}()},
		{name: "description too long", input: func() *usecase.CreateCarInput {
			in := validCreateInput(imageFile("f.jpg"))
			in.Description = strings.Repeat("d", 501)

			return in
		}()},
		{name: "too many images", input: validCreateInput(tooMany...)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCarService(t, nil)

			car, err := fx.service.CreateCar(context.Background(), uuid.New(), tt.input)

			assert.Nil(t, car)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestCarService_CreateCar_TitleLimitCountsCharacters(t *testing.T) {
	fx := createTestCarService(t, nil)
	fx.allowEvents()
	ctx := context.Background()

	input := validCreateInput(imageFile("f.jpg"))
	input.Title = strings.Repeat("車", 30)

	fx.imageStore.EXPECT().Upload(ctx, mock.Anything, "cars").Return("https://img/cars/1.jpg", nil)
	fx.carRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)

	_, err := fx.service.CreateCar(ctx, uuid.New(), input)
	assert.NoError(t, err)
}

func TestCarService_CreateCar_UploadFailureAborts(t *testing.T) {
	fx := createTestCarService(t, nil)
	ctx := context.Background()

	fx.imageStore.EXPECT().Upload(ctx, fileNamed("f1.jpg"), "cars").Return("https://img/cars/1.jpg", nil).Once()
	fx.imageStore.EXPECT().Upload(ctx, fileNamed("f2.jpg"), "cars").Return("", errors.New("bucket unavailable")).Once()

	car, err := fx.service.CreateCar(ctx, uuid.New(),
		validCreateInput(imageFile("f1.jpg"), imageFile("f2.jpg"), imageFile("f3.jpg")))

	assert.Nil(t, car)
	assert.True(t, errors.Is(err, domainerrors.ErrImageUploadFailed))
	fx.carRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	fx.imageStore.AssertNumberOfCalls(t, "Upload", 2)
}

func TestCarService_CreateCar_StoreError(t *testing.T) {
	fx := createTestCarService(t, nil)
	ctx := context.Background()

	fx.imageStore.EXPECT().Upload(ctx, mock.Anything, "cars").Return("https://img/cars/1.jpg", nil)
	fx.carRepo.EXPECT().Create(ctx, mock.Anything).Return(errors.New("connection refused"))

	_, err := fx.service.CreateCar(ctx, uuid.New(), validCreateInput(imageFile("f1.jpg")))

	assertAppCode(t, err, "DATABASE_EXECUTE_FAILED")
}

func TestCarService_GetCar(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	stored := newStoredCar(owner, "https://img/cars/1.jpg")

	t.Run("owner gets car", func(t *testing.T) {
		fx := createTestCarService(t, nil)
		fx.carRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)

		car, err := fx.service.GetCar(ctx, owner, stored.ID.String())
		require.NoError(t, err)
		assert.Equal(t, stored, car)
	})

	t.Run("malformed id", func(t *testing.T) {
		fx := createTestCarService(t, nil)

		_, err := fx.service.GetCar(ctx, owner, "not-a-uuid")
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})

	t.Run("missing car", func(t *testing.T) {
		fx := createTestCarService(t, nil)
		fx.carRepo.EXPECT().FindByID(ctx, stored.ID).Return(nil, repository.ErrCarNotFound)

		_, err := fx.service.GetCar(ctx, owner, stored.ID.String())
		assert.True(t, errors.Is(err, domainerrors.ErrCarNotFound))
	})

	t.Run("other owner sees not found", func(t *testing.T) {
		fx := createTestCarService(t, nil)
		fx.carRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)

		car, err := fx.service.GetCar(ctx, uuid.New(), stored.ID.String())
		assert.Nil(t, car)
		assert.True(t, errors.Is(err, domainerrors.ErrCarAccessDenied))
		assertAppCode(t, err, "CAR_NOT_FOUND")
	})
}

func TestCarService_NonOwnerIsRejectedEverywhere(t *testing.T) {
	ctx := context.Background()
	stored := newStoredCar(uuid.New())
	intruder := uuid.New()

	fx := createTestCarService(t, nil)
	fx.carRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)

	_, err := fx.service.UpdateCar(ctx, intruder, stored.ID.String(), &usecase.UpdateCarInput{Title: strRef("Mine now")})
	assert.True(t, errors.Is(err, domainerrors.ErrCarAccessDenied))

	err = fx.service.DeleteCar(ctx, intruder, stored.ID.String())
	assert.True(t, errors.Is(err, domainerrors.ErrCarAccessDenied))

	fx.carRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	fx.carRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestCarService_ListMyCars(t *testing.T) {
	fx := createTestCarService(t, nil)
	ctx := context.Background()
	owner := uuid.New()
	cars := []*entity.Car{newStoredCar(owner), newStoredCar(owner)}

	fx.carRepo.EXPECT().FindByOwner(ctx, owner).Return(cars, nil)

	got, err := fx.service.ListMyCars(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, cars, got)
}

func TestCarService_SearchCars(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	t.Run("empty query", func(t *testing.T) {
		fx := createTestCarService(t, nil)

		_, err := fx.service.SearchCars(ctx, owner, "")
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})

	t.Run("scoped to caller", func(t *testing.T) {
		fx := createTestCarService(t, nil)
		match := newStoredCar(owner)
		fx.carRepo.EXPECT().SearchByOwner(ctx, owner, "toyota").Return([]*entity.Car{match}, nil)

		got, err := fx.service.SearchCars(ctx, owner, "toyota")
		require.NoError(t, err)
		assert.Equal(t, []*entity.Car{match}, got)
	})

	t.Run("store failure", func(t *testing.T) {
		fx := createTestCarService(t, nil)
		fx.carRepo.EXPECT().SearchByOwner(ctx, owner, "x").Return(nil, errors.New("timeout"))

		_, err := fx.service.SearchCars(ctx, owner, "x")
		assertAppCode(t, err, "DATABASE_EXECUTE_FAILED")
	})
}

func TestCarService_UpdateCar_TitleOnly(t *testing.T) {
	fx := createTestCarService(t, nil)
	fx.allowEvents()
	ctx := context.Background()
	owner := uuid.New()
	stored := newStoredCar(owner)

	updated := *stored
	updated.Title = "Coupe"

	fx.carRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)
	fx.carRepo.EXPECT().
		Update(ctx, stored.ID, mock.MatchedBy(func(p *entity.CarPatch) bool {
			return p.Title != nil && *p.Title == "Coupe" && p.Description == nil && p.Tags == nil
		})).
		Return(&updated, nil)

	car, err := fx.service.UpdateCar(ctx, owner, stored.ID.String(), &usecase.UpdateCarInput{Title: strRef("Coupe")})

	require.NoError(t, err)
	assert.Equal(t, "Coupe", car.Title)
	assert.Equal(t, stored.Tags, car.Tags)
}

func TestCarService_UpdateCar_TagsWithoutCompanyAreIgnored(t *testing.T) {
	fx := createTestCarService(t, nil)
	ctx := context.Background()
	owner := uuid.New()
	stored := newStoredCar(owner)

	fx.carRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)

	car, err := fx.service.UpdateCar(ctx, owner, stored.ID.String(), &usecase.UpdateCarInput{
		CarType: strRef("SUV"),
		Dealer:  strRef("XYZ Cars"),
	})

	require.NoError(t, err)
	assert.Equal(t, entity.CarTags{Company: "Toyota", CarType: "Sedan", Dealer: "ABC Motors"}, car.Tags)
	fx.carRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestCarService_UpdateCar_CompanyUnlocksTags(t *testing.T) {
	fx := createTestCarService(t, nil)
	fx.allowEvents()
	ctx := context.Background()
	owner := uuid.New()
	stored := newStoredCar(owner)

	wantTags := entity.CarTags{Company: "Honda", CarType: "SUV", Dealer: "ABC Motors"}
	updated := *stored
	updated.Tags = wantTags

	fx.carRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)
	fx.carRepo.EXPECT().
		Update(ctx, stored.ID, mock.MatchedBy(func(p *entity.CarPatch) bool {
			return p.Tags != nil && *p.Tags == wantTags && p.Title == nil
		})).
		Return(&updated, nil)

	car, err := fx.service.UpdateCar(ctx, owner, stored.ID.String(), &usecase.UpdateCarInput{
		Company: strRef("Honda"),
		CarType: strRef("SUV"),
		Dealer:  strRef(""),
	})

	require.NoError(t, err)
	assert.Equal(t, wantTags, car.Tags)
}

func TestCarService_UpdateCar_RevalidatesMergedCar(t *testing.T) {
	fx := createTestCarService(t, nil)
	ctx := context.Background()
	owner := uuid.New()
	stored := newStoredCar(owner)

	fx.carRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)

	_, err := fx.service.UpdateCar(ctx, owner, stored.ID.String(), &usecase.UpdateCarInput{
		Description: strRef(strings.Repeat("d", 501)),
	})

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	fx.carRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestCarService_UpdateCar_DeletedMeanwhile(t *testing.T) {
	fx := createTestCarService(t, nil)
	ctx := context.Background()
	owner := uuid.New()
	stored := newStoredCar(owner)

	fx.carRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)
	fx.carRepo.EXPECT().Update(ctx, stored.ID, mock.Anything).Return(nil, repository.ErrCarNotFound)

	_, err := fx.service.UpdateCar(ctx, owner, stored.ID.String(), &usecase.UpdateCarInput{Title: strRef("Coupe")})
	assert.True(t, errors.Is(err, domainerrors.ErrCarNotFound))
}

func nineImages() []string {
	images := make([]string, 9)
	for i := range images {
		images[i] = "https://img/cars/" + uuid.NewString() + ".jpg"
	}

	return images
}

func TestCarService_UploadImages_LegacyAppendIsUnbounded(t *testing.T) {
	fx := createTestCarService(t, &config.CarsConfig{EnforceImageLimitOnAppend: boolRef(false)})
	fx.allowEvents()
	ctx := context.Background()
	owner := uuid.New()
	stored := newStoredCar(owner, nineImages()...)

	fx.carRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)
	fx.imageStore.EXPECT().Upload(ctx, mock.Anything, "cars").Return("https://img/cars/new.jpg", nil).Times(3)
	fx.carRepo.EXPECT().
		ReplaceImages(ctx, stored.ID, mock.AnythingOfType("[]string")).
		RunAndReturn(func(_ context.Context, id uuid.UUID, images []string) (*entity.Car, error) {
			out := *stored
			out.Images = images

			return &out, nil
		})

	car, err := fx.service.UploadImages(ctx, owner, stored.ID.String(),
		[]service.ImageFile{imageFile("a"), imageFile("b"), imageFile("c")})

	require.NoError(t, err)
	assert.Len(t, car.Images, 12)
	assert.Equal(t, stored.Images, car.Images[:9])
}

func TestCarService_UploadImages_RejectsOverCapacity(t *testing.T) {
	fx := createTestCarService(t, nil)
	ctx := context.Background()
	owner := uuid.New()
	stored := newStoredCar(owner, nineImages()...)

	fx.carRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)

	car, err := fx.service.UploadImages(ctx, owner, stored.ID.String(),
		[]service.ImageFile{imageFile("a"), imageFile("b"), imageFile("c")})

	assert.Nil(t, car)
	assert.True(t, errors.Is(err, domainerrors.ErrImageLimitExceeded))
	assertAppCode(t, err, "IMAGE_LIMIT_EXCEEDED")
	fx.imageStore.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
}

func TestCarService_UploadImages_AppendsInOrder(t *testing.T) {
	fx := createTestCarService(t, nil)
	ctx := context.Background()
	owner := uuid.New()
	stored := newStoredCar(owner, "https://img/cars/old.jpg")
	want := []string{"https://img/cars/old.jpg", "https://img/cars/a.jpg", "https://img/cars/b.jpg"}

	fx.carRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)
	fx.imageStore.EXPECT().Upload(ctx, fileNamed("a"), "cars").Return(want[1], nil).Once()
	fx.imageStore.EXPECT().Upload(ctx, fileNamed("b"), "cars").Return(want[2], nil).Once()
	fx.carRepo.EXPECT().ReplaceImages(ctx, stored.ID, want).Return(&entity.Car{ID: stored.ID, OwnerID: owner, Images: want}, nil)
	fx.publisher.EXPECT().
		PublishCarEvent(ctx, mock.MatchedBy(func(e *service.CarEvent) bool {
			return e.Type == service.CarEventImagesAdded && len(e.Images) == 2
		})).
		Return(errors.New("broker down"))

	car, err := fx.service.UploadImages(ctx, owner, stored.ID.String(), []service.ImageFile{imageFile("a"), imageFile("b")})

	require.NoError(t, err, "publish failures must not fail the operation")
	assert.Equal(t, want, car.Images)
}

func TestCarService_UploadImages_Ownership(t *testing.T) {
	ctx := context.Background()
	stored := newStoredCar(uuid.New())
	someoneElse := uuid.New()

	t.Run("not checked by default", func(t *testing.T) {
		fx := createTestCarService(t, nil)
		fx.allowEvents()
		fx.carRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)
		fx.imageStore.EXPECT().Upload(ctx, mock.Anything, "cars").Return("https://img/cars/x.jpg", nil)
		fx.carRepo.EXPECT().ReplaceImages(ctx, stored.ID, []string{"https://img/cars/x.jpg"}).Return(stored, nil)

		_, err := fx.service.UploadImages(ctx, someoneElse, stored.ID.String(), []service.ImageFile{imageFile("x")})
		assert.NoError(t, err)
	})

	t.Run("enforced when configured", func(t *testing.T) {
		fx := createTestCarService(t, &config.CarsConfig{EnforceImageOwnership: true})
		fx.carRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)

		_, err := fx.service.UploadImages(ctx, someoneElse, stored.ID.String(), []service.ImageFile{imageFile("x")})
		assert.True(t, errors.Is(err, domainerrors.ErrCarAccessDenied))
	})
}

func TestCarService_UploadImages_Validation(t *testing.T) {
	fx := createTestCarService(t, nil)
	ctx := context.Background()

	_, err := fx.service.UploadImages(ctx, uuid.New(), uuid.NewString(), nil)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	_, err = fx.service.UploadImages(ctx, uuid.New(), "", []service.ImageFile{imageFile("x")})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestCarService_UploadImages_MissingCar(t *testing.T) {
	fx := createTestCarService(t, nil)
	ctx := context.Background()
	id := uuid.New()

	fx.carRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrCarNotFound)

	_, err := fx.service.UploadImages(ctx, uuid.New(), id.String(), []service.ImageFile{imageFile("x")})
	assert.True(t, errors.Is(err, domainerrors.ErrCarNotFound))
}

func TestCarService_DeleteImage_RemovesFirstOccurrenceOnly(t *testing.T) {
	fx := createTestCarService(t, nil)
	fx.allowEvents()
	ctx := context.Background()
	owner := uuid.New()
	dup := "https://img/cars/dup.jpg"
	other := "https://img/cars/other.jpg"
	stored := newStoredCar(owner, dup, other, dup)

	fx.carRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)
	fx.carRepo.EXPECT().
		ReplaceImages(ctx, stored.ID, []string{other, dup}).
		Return(&entity.Car{ID: stored.ID, OwnerID: owner, Images: []string{other, dup}}, nil)

	car, err := fx.service.DeleteImage(ctx, owner, stored.ID.String(), dup)

	require.NoError(t, err)
	assert.Equal(t, []string{other, dup}, car.Images)
	assert.Equal(t, []string{dup, other, dup}, stored.Images, "loaded car must not be mutated in place")
	fx.imageStore.AssertNotCalled(t, "PublicID", mock.Anything)
	fx.imageStore.AssertNotCalled(t, "DeleteByIDs", mock.Anything, mock.Anything)
}

func TestCarService_DeleteImage_PurgesLastReference(t *testing.T) {
	fx := createTestCarService(t, nil)
	fx.allowEvents()
	ctx := context.Background()
	owner := uuid.New()
	dup := "https://img/cars/dup.jpg"
	stored := newStoredCar(owner, dup, dup)

	fx.carRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil).Times(2)
	fx.carRepo.EXPECT().
		ReplaceImages(ctx, stored.ID, []string{dup}).
		Return(&entity.Car{ID: stored.ID, OwnerID: owner, Images: []string{dup}}, nil).Once()

	_, err := fx.service.DeleteImage(ctx, owner, stored.ID.String(), dup)
	require.NoError(t, err)
	fx.imageStore.AssertNotCalled(t, "DeleteByIDs", mock.Anything, mock.Anything)

	stored.Images = []string{dup}
	fx.carRepo.EXPECT().
		ReplaceImages(ctx, stored.ID, []string{}).
		Return(&entity.Car{ID: stored.ID, OwnerID: owner, Images: []string{}}, nil).Once()
	fx.imageStore.EXPECT().PublicID(dup).Return("cars/dup")
	fx.imageStore.EXPECT().DeleteByIDs(ctx, []string{"cars/dup"}).Return(nil)

	car, err := fx.service.DeleteImage(ctx, owner, stored.ID.String(), dup)

	require.NoError(t, err)
	assert.Empty(t, car.Images)
}

func TestCarService_DeleteImage_PurgeFailureIsBestEffort(t *testing.T) {
	fx := createTestCarService(t, nil)
	fx.allowEvents()
	ctx := context.Background()
	owner := uuid.New()
	url := "https://img/cars/a.jpg"
	stored := newStoredCar(owner, url)

	fx.carRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)
	fx.carRepo.EXPECT().ReplaceImages(ctx, stored.ID, []string{}).Return(&entity.Car{ID: stored.ID, Images: []string{}}, nil)
	fx.imageStore.EXPECT().PublicID(url).Return("cars/a")
	fx.imageStore.EXPECT().DeleteByIDs(ctx, []string{"cars/a"}).Return(errors.New("permission denied"))

	car, err := fx.service.DeleteImage(ctx, owner, stored.ID.String(), url)

	require.NoError(t, err)
	assert.Empty(t, car.Images)
}

func TestCarService_DeleteImage_PurgeDisabled(t *testing.T) {
	fx := createTestCarService(t, &config.CarsConfig{PurgeRemovedImages: boolRef(false)})
	fx.allowEvents()
	ctx := context.Background()
	owner := uuid.New()
	url := "https://img/cars/a.jpg"
	stored := newStoredCar(owner, url)

	fx.carRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)
	fx.carRepo.EXPECT().ReplaceImages(ctx, stored.ID, []string{}).Return(&entity.Car{ID: stored.ID}, nil)

	_, err := fx.service.DeleteImage(ctx, owner, stored.ID.String(), url)

	require.NoError(t, err)
	fx.imageStore.AssertNotCalled(t, "DeleteByIDs", mock.Anything, mock.Anything)
}

func TestCarService_DeleteImage_Errors(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	stored := newStoredCar(owner, "https://img/cars/a.jpg")

	t.Run("unknown url", func(t *testing.T) {
		fx := createTestCarService(t, nil)
		fx.carRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)

		_, err := fx.service.DeleteImage(ctx, owner, stored.ID.String(), "https://img/cars/zzz.jpg")
		assert.True(t, errors.Is(err, domainerrors.ErrImageNotFound))
		assertAppCode(t, err, "IMAGE_NOT_FOUND")
	})

	t.Run("missing url", func(t *testing.T) {
		fx := createTestCarService(t, nil)

		_, err := fx.service.DeleteImage(ctx, owner, stored.ID.String(), "")
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})

	t.Run("missing car", func(t *testing.T) {
		fx := createTestCarService(t, nil)
		fx.carRepo.EXPECT().FindByID(ctx, stored.ID).Return(nil, repository.ErrCarNotFound)

		_, err := fx.service.DeleteImage(ctx, owner, stored.ID.String(), "https://img/cars/a.jpg")
		assert.True(t, errors.Is(err, domainerrors.ErrCarNotFound))
	})

	t.Run("ownership enforced when configured", func(t *testing.T) {
		fx := createTestCarService(t, &config.CarsConfig{EnforceImageOwnership: true})
		fx.carRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)

		_, err := fx.service.DeleteImage(ctx, uuid.New(), stored.ID.String(), "https://img/cars/a.jpg")
		assert.True(t, errors.Is(err, domainerrors.ErrCarAccessDenied))
	})
}

func TestCarService_DeleteCar_LeavesImagesInStore(t *testing.T) {
	fx := createTestCarService(t, nil)
	ctx := context.Background()
	owner := uuid.New()
	stored := newStoredCar(owner, "https://img/cars/a.jpg")

	fx.carRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)
	fx.carRepo.EXPECT().Delete(ctx, stored.ID).Return(nil)
	fx.publisher.EXPECT().
		PublishCarEvent(ctx, mock.MatchedBy(func(e *service.CarEvent) bool {
			return e.Type == service.CarEventDeleted && e.CarID == stored.ID.String() && len(e.Images) == 1
		})).
		Return(nil)

	require.NoError(t, fx.service.DeleteCar(ctx, owner, stored.ID.String()))
	fx.imageStore.AssertNotCalled(t, "DeleteByIDs", mock.Anything, mock.Anything)
}

func TestCarService_Scenario_CreateForeignGetDeleteGet(t *testing.T) {
	fx := createTestCarService(t, nil)
	fx.allowEvents()
	ctx := context.Background()
	u1, u2 := uuid.New(), uuid.New()

	var saved *entity.Car
	deleted := false

	fx.imageStore.EXPECT().Upload(ctx, fileNamed("f1"), "cars").Return("https://img/cars/url1", nil)
	fx.imageStore.EXPECT().Upload(ctx, fileNamed("f2"), "cars").Return("https://img/cars/url2", nil)
	fx.carRepo.EXPECT().Create(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, car *entity.Car) error {
			saved = car

			return nil
		})
	fx.carRepo.EXPECT().FindByID(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, id uuid.UUID) (*entity.Car, error) {
			if saved == nil || deleted || saved.ID != id {
				return nil, repository.ErrCarNotFound
			}

			return saved, nil
		})
	fx.carRepo.EXPECT().Delete(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, id uuid.UUID) error {
			deleted = true

			return nil
		})

	car, err := fx.service.CreateCar(ctx, u1, &usecase.CreateCarInput{
		Title:       "Sedan",
		Description: "Clean car",
		Company:     "Toyota",
		CarType:     "Sedan",
		Dealer:      "ABC Motors",
		Images:      []service.ImageFile{imageFile("f1"), imageFile("f2")},
	})
	require.NoError(t, err)
	assert.Equal(t, "Sedan", car.Title)
	assert.Equal(t, []string{"https://img/cars/url1", "https://img/cars/url2"}, car.Images)
	assert.Equal(t, u1, car.OwnerID)

	_, err = fx.service.GetCar(ctx, u2, car.ID.String())
	assert.True(t, errors.Is(err, domainerrors.ErrCarAccessDenied))

	require.NoError(t, fx.service.DeleteCar(ctx, u1, car.ID.String()))

	_, err = fx.service.GetCar(ctx, u1, car.ID.String())
	assert.True(t, errors.Is(err, domainerrors.ErrCarNotFound))
}
