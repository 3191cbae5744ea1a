package postgres

import (
	"context"
	"strings"
	"time"

	"carhub/internal/domain/entity"
	"carhub/internal/domain/repository"
	"carhub/internal/infra/persistence/model"
	"carhub/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// searchCondition matches the query against every free-text column. Gen has no
// ILIKE builder, so it is applied on the underlying statement. LIKE uses
// backslash as its escape character by default in PostgreSQL.
const searchCondition = "title ILIKE ? OR description ILIKE ? OR company ILIKE ? OR car_type ILIKE ? OR dealer ILIKE ?"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type carRepository struct {
	q   *query.Query
	now func() time.Time
}

// NewCarRepository returns the PostgreSQL car store.
func NewCarRepository(db *gorm.DB) repository.CarRepository {
	return &carRepository{q: query.Use(db), now: time.Now}
}

func (repo *carRepository) Create(ctx context.Context, car *entity.Car) error {
	carM := fromCarDomain(car)

	if err := repo.q.CarModel.WithContext(ctx).Create(carM); err != nil {
		return errors.Wrap(err, "failed to insert car")
	}

	car.CreatedAt = carM.CreatedAt
	car.UpdatedAt = carM.UpdatedAt

	return nil
}

func (repo *carRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Car, error) {
	carM, err := repo.q.CarModel.WithContext(ctx).
		Where(repo.q.CarModel.ID.Eq(id)).
		First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCarNotFound
		}

		return nil, errors.Wrap(err, "failed to find car by id")
	}

	return toCarDomain(carM), nil
}

func (repo *carRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Car, error) {
	carModels, err := repo.q.CarModel.WithContext(ctx).
		Where(repo.q.CarModel.OwnerID.Eq(ownerID)).
		Order(repo.q.CarModel.CreatedAt).
		Find()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cars by owner")
	}

	return toCarDomainList(carModels), nil
}

// SearchByOwner runs a case-insensitive substring match. LIKE metacharacters in
// term are escaped so it always matches literally.
func (repo *carRepository) SearchByOwner(ctx context.Context, ownerID uuid.UUID, term string) ([]*entity.Car, error) {
	pattern := "%" + escapeLike(term) + "%"

	var carModels []*model.CarModel
	err := repo.q.CarModel.WithContext(ctx).
		Where(repo.q.CarModel.OwnerID.Eq(ownerID)).
		Order(repo.q.CarModel.CreatedAt).
		UnderlyingDB().
		Where(searchCondition, pattern, pattern, pattern, pattern, pattern).
		Find(&carModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to search cars")
	}

	return toCarDomainList(carModels), nil
}

func (repo *carRepository) Update(ctx context.Context, id uuid.UUID, patch *entity.CarPatch) (*entity.Car, error) {
	return repo.updateColumns(ctx, id, patchColumns(patch))
}

func (repo *carRepository) ReplaceImages(ctx context.Context, id uuid.UUID, images []string) (*entity.Car, error) {
	if images == nil {
		images = []string{}
	}

	return repo.updateColumns(ctx, id, map[string]any{
		"images": datatypes.JSONSlice[string](images),
	})
}

// updateColumns writes columns plus updated_at in one statement and reads the
// stored row back through RETURNING.
func (repo *carRepository) updateColumns(ctx context.Context, id uuid.UUID, columns map[string]any) (*entity.Car, error) {
	columns["updated_at"] = repo.now()

	var carM model.CarModel
	result := repo.q.CarModel.WithContext(ctx).
		Where(repo.q.CarModel.ID.Eq(id)).
		UnderlyingDB().
		Model(&carM).
		Clauses(clause.Returning{}).
		Updates(columns)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to update car")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrCarNotFound
	}

	return toCarDomain(&carM), nil
}

func (repo *carRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := repo.q.CarModel.WithContext(ctx).
		Where(repo.q.CarModel.ID.Eq(id)).
		Delete()
	if err != nil {
		return errors.Wrap(err, "failed to delete car")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCarNotFound
	}

	return nil
}

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// patchColumns maps the set fields of patch onto column names.
func patchColumns(patch *entity.CarPatch) map[string]any {
	columns := make(map[string]any, 6)
	if patch == nil {
		return columns
	}

	if patch.Title != nil {
		columns["title"] = *patch.Title
	}
	if patch.Description != nil {
		columns["description"] = *patch.Description
	}
	if patch.Tags != nil {
		columns["company"] = patch.Tags.Company
		columns["car_type"] = patch.Tags.CarType
		columns["dealer"] = patch.Tags.Dealer
	}

	return columns
}

// --- Mapper Functions ---

func toCarDomain(data *model.CarModel) *entity.Car {
	if data == nil {
		return nil
	}

	images := []string(data.Images)
	if images == nil {
		images = []string{}
	}

	return &entity.Car{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		Tags: entity.CarTags{
			Company: data.Company,
			CarType: data.CarType,
			Dealer:  data.Dealer,
		},
		Images:    images,
		OwnerID:   data.OwnerID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toCarDomainList(models []*model.CarModel) []*entity.Car {
	cars := make([]*entity.Car, 0, len(models))
	for _, carM := range models {
		cars = append(cars, toCarDomain(carM))
	}

	return cars
}

func fromCarDomain(data *entity.Car) *model.CarModel {
	if data == nil {
		return nil
	}

	images := data.Images
	if images == nil {
		images = []string{}
	}

	return &model.CarModel{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		Company:     data.Tags.Company,
		CarType:     data.Tags.CarType,
		Dealer:      data.Tags.Dealer,
		Images:      datatypes.JSONSlice[string](images),
		OwnerID:     data.OwnerID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
