package mongo

import (
	"context"
	"regexp"
	"time"

	"carhub/internal/domain/entity"
	"carhub/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// searchFields are the document fields matched by SearchByOwner.
var searchFields = []string{"title", "description", "tags.company", "tags.carType", "tags.dealer"}

// carDocument is the stored shape of a car. The id is the car UUID as a string.
type carDocument struct {
	ID          string          `bson:"_id"`
	Title       string          `bson:"title"`
	Description string          `bson:"description"`
	Tags        carTagsDocument `bson:"tags"`
	Images      []string        `bson:"images"`
	Owner       string          `bson:"owner"`
	CreatedAt   time.Time       `bson:"createdAt"`
	UpdatedAt   time.Time       `bson:"updatedAt"`
}

type carTagsDocument struct {
	Company string `bson:"company"`
	CarType string `bson:"carType"`
	Dealer  string `bson:"dealer"`
}

type carRepository struct {
	coll *mongo.Collection
	now  func() time.Time
}

// NewCarRepository returns the MongoDB car store backed by coll.
func NewCarRepository(coll *mongo.Collection) repository.CarRepository {
	return &carRepository{coll: coll, now: time.Now}
}

// EnsureIndexes creates the owner index used by list and search.
func EnsureIndexes(ctx context.Context, coll *mongo.Collection) error {
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "owner", Value: 1}, {Key: "createdAt", Value: 1}},
		Options: options.Index().SetName("idx_cars_owner_created"),
	})

	return errors.Wrap(err, "failed to create car indexes")
}

func (repo *carRepository) Create(ctx context.Context, car *entity.Car) error {
	if _, err := repo.coll.InsertOne(ctx, fromCarDomain(car)); err != nil {
		return errors.Wrap(err, "failed to insert car")
	}

	return nil
}

func (repo *carRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Car, error) {
	var doc carDocument
	if err := repo.coll.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrCarNotFound
		}

		return nil, errors.Wrap(err, "failed to find car by id")
	}

	return toCarDomain(&doc)
}

func (repo *carRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Car, error) {
	return repo.find(ctx, bson.M{"owner": ownerID.String()})
}

func (repo *carRepository) SearchByOwner(ctx context.Context, ownerID uuid.UUID, query string) ([]*entity.Car, error) {
	return repo.find(ctx, searchFilter(ownerID, query))
}

func (repo *carRepository) Update(ctx context.Context, id uuid.UUID, patch *entity.CarPatch) (*entity.Car, error) {
	return repo.set(ctx, id, patchFields(patch))
}

func (repo *carRepository) ReplaceImages(ctx context.Context, id uuid.UUID, images []string) (*entity.Car, error) {
	if images == nil {
		images = []string{}
	}

	return repo.set(ctx, id, bson.M{"images": images})
}

func (repo *carRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := repo.coll.DeleteOne(ctx, bson.M{"_id": id.String()})
	if err != nil {
		return errors.Wrap(err, "failed to delete car")
	}
	if result.DeletedCount == 0 {
		return repository.ErrCarNotFound
	}

	return nil
}

func (repo *carRepository) find(ctx context.Context, filter bson.M) ([]*entity.Car, error) {
	cursor, err := repo.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to query cars")
	}

	var docs []carDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode cars")
	}

	cars := make([]*entity.Car, 0, len(docs))
	for i := range docs {
		car, err := toCarDomain(&docs[i])
		if err != nil {
			return nil, err
		}
		cars = append(cars, car)
	}

	return cars, nil
}

// set applies $set with fields plus updatedAt and returns the document after the update.
func (repo *carRepository) set(ctx context.Context, id uuid.UUID, fields bson.M) (*entity.Car, error) {
	fields["updatedAt"] = repo.now()

	var doc carDocument
	err := repo.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id.String()},
		bson.M{"$set": fields},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrCarNotFound
		}

		return nil, errors.Wrap(err, "failed to update car")
	}

	return toCarDomain(&doc)
}

// searchFilter scopes to the owner and matches query literally and
// case-insensitively against every free-text field.
func searchFilter(ownerID uuid.UUID, query string) bson.M {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}

	or := make(bson.A, 0, len(searchFields))
	for _, field := range searchFields {
		or = append(or, bson.M{field: pattern})
	}

	return bson.M{
		"owner": ownerID.String(),
		"$or":   or,
	}
}

func patchFields(patch *entity.CarPatch) bson.M {
	fields := bson.M{}
	if patch == nil {
		return fields
	}

	if patch.Title != nil {
		fields["title"] = *patch.Title
	}
	if patch.Description != nil {
		fields["description"] = *patch.Description
	}
	if patch.Tags != nil {
		fields["tags"] = carTagsDocument{
			Company: patch.Tags.Company,
			CarType: patch.Tags.CarType,
			Dealer:  patch.Tags.Dealer,
		}
	}

	return fields
}

func toCarDomain(doc *carDocument) (*entity.Car, error) {
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "car document has invalid id %q", doc.ID)
	}
	owner, err := uuid.Parse(doc.Owner)
	if err != nil {
		return nil, errors.Wrapf(err, "car %s has invalid owner %q", doc.ID, doc.Owner)
	}

	images := doc.Images
	if images == nil {
		images = []string{}
	}

	return &entity.Car{
		ID:          id,
		Title:       doc.Title,
		Description: doc.Description,
		Tags: entity.CarTags{
			Company: doc.Tags.Company,
			CarType: doc.Tags.CarType,
			Dealer:  doc.Tags.Dealer,
		},
		Images:    images,
		OwnerID:   owner,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}, nil
}

func fromCarDomain(car *entity.Car) *carDocument {
	images := car.Images
	if images == nil {
		images = []string{}
	}

	return &carDocument{
		ID:          car.ID.String(),
		Title:       car.Title,
		Description: car.Description,
		Tags: carTagsDocument{
			Company: car.Tags.Company,
			CarType: car.Tags.CarType,
			Dealer:  car.Tags.Dealer,
		},
		Images:    images,
		Owner:     car.OwnerID.String(),
		CreatedAt: car.CreatedAt,
		UpdatedAt: car.UpdatedAt,
	}
}
