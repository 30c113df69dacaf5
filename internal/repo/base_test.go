package repo

import (
	"context"
	"errors"
	"testing"
	"time"

	pkgerrors "github.com/angelmondragon/clubhouse-backend/pkg/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type widget struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	Sort      int
	IsActive  bool
	UpdatedAt time.Time
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:repo_" + uuid.NewString() + "?mode=memory&cache=shared"
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	require.NoError(t, conn.AutoMigrate(&widget{}))
	return conn
}

func TestNewBaseStoresConnection(t *testing.T) {
	db := newTestDB(t)
	base := NewBase(db)

	if base.db != db {
		t.Fatalf("expected base db to match provided connection")
	}
}

func TestBaseDB_BindsContext(t *testing.T) {
	db := newTestDB(t)
	base := NewBase(db)

	ctx := context.WithValue(context.Background(), struct{}{}, "value")
	withCtx := base.DB(ctx)

	if withCtx == nil {
		t.Fatalf("expected non-nil DB when context provided")
	}
	if withCtx.Statement == nil {
		t.Fatalf("expected statement created after WithContext")
	}
	if withCtx.Statement.Context != ctx {
		t.Fatalf("expected context to flow through, got %v", withCtx.Statement.Context)
	}

	withoutCtx := base.DB(nil)
	if withoutCtx != db {
		t.Fatalf("expected nil context to return raw connection")
	}
	if base.WithTx(nil).db != db {
		t.Fatalf("expected nil tx to keep the original connection")
	}
}

func TestCRUDLifecycle(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	crud := NewCRUD[widget](newTestDB(t))

	a := &widget{ID: uuid.New(), Name: "a", Sort: 2, IsActive: true}
	b := &widget{ID: uuid.New(), Name: "b", Sort: 1}
	require.NoError(t, crud.Create(ctx, a))
	require.NoError(t, crud.Create(ctx, b))

	rows, err := crud.List(ctx, Query{Order: []string{"sort ASC"}})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "b", rows[0].Name)

	active, err := crud.List(ctx, Query{Where: "is_active = ?", Args: []any{true}})
	require.NoError(t, err)
	require.Len(t, active, 1)

	n, err := crud.Count(ctx, Query{Order: []string{"sort ASC"}, Limit: 1})
	require.NoError(t, err)
	require.EqualValues(t, 2, n)

	require.NoError(t, crud.Update(ctx, b.ID, map[string]any{"name": "bee", "is_active": true}))
	got, err := crud.FindByID(ctx, b.ID)
	require.NoError(t, err)
	require.Equal(t, "bee", got.Name)
	require.True(t, got.IsActive)

	require.NoError(t, crud.Update(ctx, b.ID, nil))
	require.ErrorIs(t, crud.Update(ctx, uuid.New(), map[string]any{"name": "x"}), gorm.ErrRecordNotFound)
	require.ErrorIs(t, crud.Update(ctx, uuid.New(), nil), gorm.ErrRecordNotFound)

	require.NoError(t, crud.Delete(ctx, a.ID))
	require.ErrorIs(t, crud.Delete(ctx, a.ID), gorm.ErrRecordNotFound)

	one, err := crud.FindOne(ctx, Query{Where: "name = ?", Args: []any{"bee"}})
	require.NoError(t, err)
	require.Equal(t, b.ID, one.ID)
}

func TestMapError(t *testing.T) {
	t.Parallel()

	require.NoError(t, MapError(nil, "op"))
	require.True(t, pkgerrors.IsCode(MapError(gorm.ErrRecordNotFound, "op"), pkgerrors.CodeNotFound))
	require.True(t, pkgerrors.IsCode(MapError(errors.New("UNIQUE constraint failed: news_posts.slug"), "op"), pkgerrors.CodeConflict))
	require.True(t, pkgerrors.IsCode(MapError(errors.New("disk full"), "op"), pkgerrors.CodeInternal))

	typed := pkgerrors.New(pkgerrors.CodeValidation, "bad")
	require.Same(t, typed, MapError(typed, "op"))
}
