package admin

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	pkgerrors "github.com/angelmondragon/clubhouse-backend/pkg/errors"
	"github.com/angelmondragon/clubhouse-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type widget struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type widgetInput struct {
	Name string `json:"name" validate:"required,min=2"`
}

type widgetStore struct {
	items map[uuid.UUID]widget
}

func (s *widgetStore) list(context.Context) ([]widget, error) {
	out := []widget{}
	for _, w := range s.items {
		out = append(out, w)
	}
	return out, nil
}

func (s *widgetStore) create(_ context.Context, in widgetInput) (*widget, error) {
	w := widget{ID: uuid.New(), Name: in.Name}
	s.items[w.ID] = w
	return &w, nil
}

func (s *widgetStore) update(_ context.Context, id uuid.UUID, in widgetInput) (*widget, error) {
	w, ok := s.items[id]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Not found")
	}
	w.Name = in.Name
	s.items[id] = w
	return &w, nil
}

func (s *widgetStore) remove(_ context.Context, id uuid.UUID) error {
	if _, ok := s.items[id]; !ok {
		return pkgerrors.New(pkgerrors.CodeNotFound, "Not found")
	}
	delete(s.items, id)
	return nil
}

func newWidgetRouter(store *widgetStore) http.Handler {
	logg := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
	res := Resource{
		List:   listHandler(store.list, logg),
		Create: createHandler(store.create, logg),
		Update: updateHandler(store.update, logg),
		Delete: deleteHandler(store.remove, logg),
	}
	r := chi.NewRouter()
	r.Get("/widgets", res.List)
	r.Post("/widgets", res.Create)
	r.Put("/widgets/{id}", res.Update)
	r.Delete("/widgets/{id}", res.Delete)
	return r
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, reader))
	return rec
}

func TestResourceLifecycle(t *testing.T) {
	t.Parallel()

	store := &widgetStore{items: map[uuid.UUID]widget{}}
	h := newWidgetRouter(store)

	rec := do(t, h, http.MethodGet, "/widgets", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"items":[]}`, rec.Body.String())

	rec = do(t, h, http.MethodPost, "/widgets", `{"name":"Scarf"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var created struct {
		Item widget `json:"item"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.Equal(t, "Scarf", created.Item.Name)

	rec = do(t, h, http.MethodPut, "/widgets/"+created.Item.ID.String(), `{"name":"Home scarf"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Home scarf", store.items[created.Item.ID].Name)

	rec = do(t, h, http.MethodDelete, "/widgets/"+created.Item.ID.String(), "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"ok":true}`, rec.Body.String())
	require.Empty(t, store.items)
}

func TestResourceErrors(t *testing.T) {
	t.Parallel()

	h := newWidgetRouter(&widgetStore{items: map[uuid.UUID]widget{}})

	rec := do(t, h, http.MethodPost, "/widgets", `{"name":"x"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPut, "/widgets/"+uuid.NewString(), `{"name":"Nobody"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodDelete, "/widgets/not-a-uuid", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"error":"Not found"}`, rec.Body.String())
}
