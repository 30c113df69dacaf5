package news

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/angelmondragon/clubhouse-backend/internal/media"
	"github.com/angelmondragon/clubhouse-backend/pkg/db/models"
	"github.com/angelmondragon/clubhouse-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/clubhouse-backend/pkg/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var baseTime = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (Service, *gorm.DB) {
	t.Helper()
	dsn := "file:news_" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.MediaAsset{}, &models.NewsPost{}))
	svc, err := NewService(NewRepository(db), media.NewURLResolver("https://cdn.club.test/"))
	require.NoError(t, err)
	return svc, db
}

func publishedAt(days int) *time.Time {
	ts := baseTime.AddDate(0, 0, days)
	return &ts
}

func TestListPublishedPagesNewestFirst(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService(t)

	for i := 0; i < 5; i++ {
		_, err := svc.Create(ctx, CreatePostInput{
			Slug:        "post-" + string(rune('a'+i)),
			Title:       "Post",
			ContentHTML: "<p>body</p>",
			PublishedAt: publishedAt(i),
		})
		require.NoError(t, err)
	}
	_, err := svc.Create(ctx, CreatePostInput{Slug: "draft", Title: "Draft", ContentHTML: "<p>wip</p>"})
	require.NoError(t, err)

	page, err := svc.ListPublished(ctx, 2, 2)
	require.NoError(t, err)
	require.Equal(t, 2, page.Page)
	require.Equal(t, 2, page.PageSize)
	require.EqualValues(t, 5, page.Total)
	require.Len(t, page.Items, 2)
	require.Equal(t, "post-c", page.Items[0].Slug)
	require.Equal(t, "post-b", page.Items[1].Slug)

	page, err = svc.ListPublished(ctx, 0, 100)
	require.NoError(t, err)
	require.Equal(t, 1, page.Page)
	require.Equal(t, 30, page.PageSize)
	require.Len(t, page.Items, 5)
}

func TestGetBySlugHidesDrafts(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, db := newTestService(t)

	hero := &models.MediaAsset{Type: enums.MediaTypeImage, Path: "/news/hero.jpg"}
	require.NoError(t, db.Create(hero).Error)

	_, err := svc.Create(ctx, CreatePostInput{Slug: "win", Title: "Big win", ContentHTML: "<p>3-0</p>", HeroMediaID: &hero.ID, PublishedAt: publishedAt(0)})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreatePostInput{Slug: "draft", Title: "Draft", ContentHTML: "<p>wip</p>"})
	require.NoError(t, err)

	post, err := svc.GetBySlug(ctx, "win")
	require.NoError(t, err)
	require.Equal(t, "<p>3-0</p>", post.ContentHTML)
	require.Equal(t, "https://cdn.club.test/news/hero.jpg", *post.HeroURL)

	_, err = svc.GetBySlug(ctx, "draft")
	require.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))
	_, err = svc.GetBySlug(ctx, "missing")
	require.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))
}

func TestFeaturedAndLatest(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService(t)

	featured, err := svc.Featured(ctx)
	require.NoError(t, err)
	require.Nil(t, featured)

	_, err = svc.Create(ctx, CreatePostInput{Slug: "old-feature", Title: "Old", ContentHTML: "x", IsFeatured: true, PublishedAt: publishedAt(1)})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreatePostInput{Slug: "new-feature", Title: "New", ContentHTML: "x", IsFeatured: true, PublishedAt: publishedAt(3)})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreatePostInput{Slug: "unpublished-feature", Title: "Soon", ContentHTML: "x", IsFeatured: true})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreatePostInput{Slug: "plain", Title: "Plain", ContentHTML: "x", PublishedAt: publishedAt(5)})
	require.NoError(t, err)

	featured, err = svc.Featured(ctx)
	require.NoError(t, err)
	require.Equal(t, "new-feature", featured.Slug)

	latest, err := svc.Latest(ctx, 2)
	require.NoError(t, err)
	require.Len(t, latest, 2)
	require.Equal(t, "plain", latest[0].Slug)
	require.Equal(t, "new-feature", latest[1].Slug)
}

func TestAdminLifecycle(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _ := newTestService(t)

	created, err := svc.Create(ctx, CreatePostInput{Slug: "match-report", Title: "Report", ContentHTML: "<p>a</p>", Excerpt: strPtr("short")})
	require.NoError(t, err)
	require.Nil(t, created.PublishedAt)

	_, err = svc.Create(ctx, CreatePostInput{Slug: "match-report", Title: "Dup", ContentHTML: "x"})
	require.True(t, pkgerrors.IsCode(err, pkgerrors.CodeConflict))

	var patch UpdatePostInput
	require.NoError(t, json.Unmarshal([]byte(`{"title":"Final report","excerpt":null,"publishedAt":"2026-03-02T10:00:00Z"}`), &patch))
	updated, err := svc.Update(ctx, created.ID, patch)
	require.NoError(t, err)
	require.Equal(t, "Final report", updated.Title)
	require.Nil(t, updated.Excerpt)
	require.NotNil(t, updated.PublishedAt)
	require.Equal(t, "<p>a</p>", updated.ContentHTML)

	items, err := svc.AdminList(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)

	require.NoError(t, svc.Delete(ctx, created.ID))
	require.True(t, pkgerrors.IsCode(svc.Delete(ctx, created.ID), pkgerrors.CodeNotFound))
	_, err = svc.Update(ctx, uuid.New(), UpdatePostInput{Title: strPtr("nope")})
	require.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))
}

func strPtr(v string) *string { return &v }
