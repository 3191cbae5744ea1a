package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"carhub/config"
	"carhub/internal/domain/entity"
	"carhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type capturedQuery struct {
	sql  string
	vars []any
}

// dryRunDB returns a PostgreSQL handle that builds statements without a server
// and records every query it would have sent.
func dryRunDB(t *testing.T) (*gorm.DB, *[]capturedQuery) {
	t.Helper()

	db, err := gorm.Open(gormpg.New(gormpg.Config{
		DSN: "host=localhost user=carhub dbname=carhub sslmode=disable",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               logger.Discard,
	})
	require.NoError(t, err)

	var captured []capturedQuery
	err = db.Callback().Query().After("gorm:query").Register("carhub:capture", func(tx *gorm.DB) {
		captured = append(captured, capturedQuery{
			sql:  tx.Statement.SQL.String(),
			vars: append([]any(nil), tx.Statement.Vars...),
		})
	})
	require.NoError(t, err)

	return db, &captured
}

func TestCarRepository_SearchByOwnerSQL(t *testing.T) {
	db, captured := dryRunDB(t)
	repo := NewCarRepository(db)
	owner := uuid.New()

	cars, err := repo.SearchByOwner(context.Background(), owner, "50%")
	require.NoError(t, err)
	assert.Empty(t, cars)

	require.Len(t, *captured, 1)
	query := (*captured)[0]

	// Owner scope ANDed with one parenthesised OR over every searchable column.
	assert.Regexp(t,
		`WHERE "cars"\."owner_id" = \$1 AND \(title ILIKE \$2 OR description ILIKE \$3 OR company ILIKE \$4 OR car_type ILIKE \$5 OR dealer ILIKE \$6\)`,
		query.sql)
	assert.Regexp(t, `ORDER BY \S*created_at`, query.sql)

	require.Len(t, query.vars, 6)
	assert.Equal(t, owner, query.vars[0])
	for _, v := range query.vars[1:] {
		assert.Equal(t, `%50\%%`, v)
	}
}

func TestCarRepository_FindByOwnerSQL(t *testing.T) {
	db, captured := dryRunDB(t)
	repo := NewCarRepository(db)
	owner := uuid.New()

	cars, err := repo.FindByOwner(context.Background(), owner)
	require.NoError(t, err)
	assert.Empty(t, cars)

	require.Len(t, *captured, 1)
	assert.Regexp(t, `WHERE "cars"\."owner_id" = \$1 ORDER BY \S*created_at`, (*captured)[0].sql)
	assert.NotContains(t, (*captured)[0].sql, "ILIKE")
}

func TestEscapeLike(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "toyota", want: "toyota"},
		{in: "100%", want: `100\%`},
		{in: "a_b", want: `a\_b`},
		{in: `c:\path`, want: `c:\\path`},
		{in: `%_\`, want: `\%\_\\`},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, escapeLike(tt.in))
		})
	}
}

func TestPatchColumns(t *testing.T) {
	title := "Coupe"

	t.Run("title only", func(t *testing.T) {
		cols := patchColumns(&entity.CarPatch{Title: &title})
		assert.Equal(t, map[string]any{"title": "Coupe"}, cols)
	})

	t.Run("tags write all three columns", func(t *testing.T) {
		cols := patchColumns(&entity.CarPatch{Tags: &entity.CarTags{Company: "Honda", CarType: "SUV", Dealer: "XYZ"}})
		assert.Equal(t, map[string]any{"company": "Honda", "car_type": "SUV", "dealer": "XYZ"}, cols)
	})

	t.Run("nil patch", func(t *testing.T) {
		assert.Empty(t, patchColumns(nil))
	})
}

func TestCarMappers_NilImagesBecomeEmptyArray(t *testing.T) {
	car := &entity.Car{
		ID:      uuid.New(),
		Title:   "Sedan",
		Tags:    entity.CarTags{Company: "Toyota", CarType: "Sedan", Dealer: "ABC"},
		OwnerID: uuid.New(),
	}

	carM := fromCarDomain(car)
	assert.NotNil(t, carM.Images)
	assert.Equal(t, "Toyota", carM.Company)

	back := toCarDomain(&model.CarModel{ID: car.ID, OwnerID: car.OwnerID})
	assert.Equal(t, []string{}, back.Images)
}

func TestGormSlogLogger_Trace(t *testing.T) {
	var buf bytes.Buffer
	gormLogger := newGormSlogLogger(slog.New(slog.NewTextHandler(&buf, nil)), &config.Config{})
	sqlFn := func() (string, int64) { return "SELECT 1", 1 }
	ctx := context.Background()

	gormLogger.Trace(ctx, time.Now(), sqlFn, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String(), "record not found is not logged")

	gormLogger.Trace(ctx, time.Now(), sqlFn, nil)
	assert.Empty(t, buf.String(), "fast queries are not logged at warn level")

	gormLogger.Trace(ctx, time.Now(), sqlFn, errors.New("syntax error"))
	assert.Contains(t, buf.String(), "GORM query failed")
	assert.Contains(t, buf.String(), "syntax error")

	buf.Reset()
	gormLogger.Trace(ctx, time.Now().Add(-time.Second), sqlFn, nil)
	assert.Contains(t, buf.String(), "GORM slow query")

	buf.Reset()
	gormLogger.LogMode(logger.Silent).Trace(ctx, time.Now(), sqlFn, errors.New("boom"))
	assert.Empty(t, buf.String())
}
