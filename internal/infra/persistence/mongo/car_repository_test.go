package mongo

import (
	"regexp"
	"testing"
	"time"

	"carhub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestSearchFilter(t *testing.T) {
	owner := uuid.New()

	filter := searchFilter(owner, "f-150 (v8)")

	assert.Equal(t, owner.String(), filter["owner"])

	or, ok := filter["$or"].(bson.A)
	require.True(t, ok)
	require.Len(t, or, len(searchFields))

	for i, field := range searchFields {
		clause, ok := or[i].(bson.M)
		require.True(t, ok)

		regex, ok := clause[field].(primitive.Regex)
		require.True(t, ok, "field %s", field)
		assert.Equal(t, "i", regex.Options)

		re := regexp.MustCompile("(?i)" + regex.Pattern)
		assert.True(t, re.MatchString("Ford F-150 (V8) pickup"))
		assert.False(t, re.MatchString("Ford F-150 V8"), "parentheses must match literally")
	}
}

func TestSearchFilter_MetacharactersAreLiteral(t *testing.T) {
	regex := searchFilter(uuid.New(), ".*")["$or"].(bson.A)[0].(bson.M)["title"].(primitive.Regex)

	re := regexp.MustCompile("(?i)" + regex.Pattern)
	assert.False(t, re.MatchString("Sedan"))
	assert.True(t, re.MatchString("glob .* pattern"))
}

func TestPatchFields(t *testing.T) {
	title := "Coupe"

	assert.Equal(t, bson.M{"title": "Coupe"}, patchFields(&entity.CarPatch{Title: &title}))
	assert.Equal(t,
		bson.M{"tags": carTagsDocument{Company: "Honda", CarType: "SUV", Dealer: "XYZ"}},
		patchFields(&entity.CarPatch{Tags: &entity.CarTags{Company: "Honda", CarType: "SUV", Dealer: "XYZ"}}))
	assert.Empty(t, patchFields(nil))
}

func TestCarDocument_BSONLayout(t *testing.T) {
	car := &entity.Car{
		ID:          uuid.New(),
		Title:       "Sedan",
		Description: "Clean",
		Tags:        entity.CarTags{Company: "Toyota", CarType: "Sedan", Dealer: "ABC"},
		Images:      []string{"https://img/1.jpg"},
		OwnerID:     uuid.New(),
		CreatedAt:   time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		UpdatedAt:   time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	raw, err := bson.Marshal(fromCarDomain(car))
	require.NoError(t, err)

	doc := bson.Raw(raw)
	assert.Equal(t, car.ID.String(), doc.Lookup("_id").StringValue())
	assert.Equal(t, car.OwnerID.String(), doc.Lookup("owner").StringValue())
	assert.Equal(t, "Sedan", doc.Lookup("tags", "carType").StringValue())

	var decoded carDocument
	require.NoError(t, bson.Unmarshal(raw, &decoded))

	back, err := toCarDomain(&decoded)
	require.NoError(t, err)
	assert.Equal(t, car, back)
}

func TestToCarDomain_InvalidID(t *testing.T) {
	_, err := toCarDomain(&carDocument{ID: "507f1f77bcf86cd799439011", Owner: uuid.NewString()})
	assert.Error(t, err)
}
