package items

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"shoplite/internal/cache"
	"shoplite/internal/database"
	"shoplite/internal/model"
	"shoplite/internal/store"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

type realValidator struct{ v *validator.Validate }

func (r *realValidator) Validate(i interface{}) error { return r.v.Struct(i) }

func newJSONCtx(e *echo.Echo, method, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func restore() {
	listCategories = store.ListCategories
	listItems = store.ListItems
	createItem = store.CreateItem
}

func TestListCategoriesHandler(t *testing.T) {
	e := echo.New()

	t.Run("cache hit skips store", func(t *testing.T) {
		t.Cleanup(restore)
		listCategories = func(context.Context, database.DB) ([]model.ItemCategory, error) {
			t.Fatal("store should not be called on cache hit")
			return nil, nil
		}
		rdb := &cache.FakeCache{
			GetFn: func(context.Context, string) *redis.StringCmd {
				return redis.NewStringResult(`[{"id":1,"category_name":"Books"}]`, nil)
			},
		}
		ctx, rec := newJSONCtx(e, http.MethodGet, "")
		require.NoError(t, ListCategoriesHandler(nil, rdb, time.Minute)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "Books")
	})

	t.Run("cache miss loads store and fills cache", func(t *testing.T) {
		t.Cleanup(restore)
		listCategories = func(context.Context, database.DB) ([]model.ItemCategory, error) {
			return []model.ItemCategory{{ID: 1, CategoryName: "Electronics"}}, nil
		}
		var setKey string
		var setTTL time.Duration
		rdb := &cache.FakeCache{
			GetFn: func(context.Context, string) *redis.StringCmd {
				return redis.NewStringResult("", redis.Nil)
			},
			SetFn: func(_ context.Context, key string, _ any, ttl time.Duration) *redis.StatusCmd {
				setKey = key
				setTTL = ttl
				return redis.NewStatusResult("OK", nil)
			},
		}
		ctx, rec := newJSONCtx(e, http.MethodGet, "")
		require.NoError(t, ListCategoriesHandler(nil, rdb, time.Minute)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "Electronics")
		require.Equal(t, categoryCacheKey, setKey)
		require.Equal(t, time.Minute, setTTL)
	})

	t.Run("store error", func(t *testing.T) {
		t.Cleanup(restore)
		listCategories = func(context.Context, database.DB) ([]model.ItemCategory, error) {
			return nil, errors.New("pq: broken")
		}
		rdb := &cache.FakeCache{
			GetFn: func(context.Context, string) *redis.StringCmd {
				return redis.NewStringResult("", redis.Nil)
			},
		}
		ctx, rec := newJSONCtx(e, http.MethodGet, "")
		require.NoError(t, ListCategoriesHandler(nil, rdb, time.Minute)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.NotContains(t, rec.Body.String(), "broken")
	})

	t.Run("empty table renders empty array", func(t *testing.T) {
		t.Cleanup(restore)
		listCategories = func(context.Context, database.DB) ([]model.ItemCategory, error) { return nil, nil }
		rdb := &cache.FakeCache{
			GetFn: func(context.Context, string) *redis.StringCmd {
				return redis.NewStringResult("", redis.Nil)
			},
			SetFn: func(context.Context, string, any, time.Duration) *redis.StatusCmd {
				return redis.NewStatusResult("OK", nil)
			},
		}
		ctx, rec := newJSONCtx(e, http.MethodGet, "")
		require.NoError(t, ListCategoriesHandler(nil, rdb, time.Minute)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "[]\n", rec.Body.String())
	})
}

func TestListItemsHandler(t *testing.T) {
	e := echo.New()

	t.Run("store error", func(t *testing.T) {
		t.Cleanup(restore)
		listItems = func(context.Context, database.DB) ([]model.ItemDetail, error) {
			return nil, errors.New("q")
		}
		ctx, rec := newJSONCtx(e, http.MethodGet, "")
		require.NoError(t, ListItemsHandler(nil)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("success wraps rows in data envelope", func(t *testing.T) {
		t.Cleanup(restore)
		listItems = func(context.Context, database.DB) ([]model.ItemDetail, error) {
			return []model.ItemDetail{{ID: 9, Name: "Keyboard", Price: 49.99, Active: true}}, nil
		}
		ctx, rec := newJSONCtx(e, http.MethodGet, "")
		require.NoError(t, ListItemsHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "\"data\":[")
		require.Contains(t, rec.Body.String(), "\"item_name\":\"Keyboard\"")
	})

	t.Run("empty table renders empty data array", func(t *testing.T) {
		t.Cleanup(restore)
		listItems = func(context.Context, database.DB) ([]model.ItemDetail, error) { return nil, nil }
		ctx, rec := newJSONCtx(e, http.MethodGet, "")
		require.NoError(t, ListItemsHandler(nil)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "\"data\":[]")
	})
}

func TestCreateItemHandler(t *testing.T) {
	e := echo.New()
	e.Validator = &realValidator{v: validator.New()}

	valid := `{"item_name":"Keyboard","item_details":"87-key","item_category":1,` +
		`"item_picture":"kb.png","item_price":49.99,"active":true,` +
		`"created_date":"2025-05-01","created_by":"alice"}`

	t.Run("bind error", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newJSONCtx(e, http.MethodPost, "{oops")
		require.NoError(t, CreateItemHandler(nil)(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing fields", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newJSONCtx(e, http.MethodPost, `{"item_name":"Keyboard"}`)
		require.NoError(t, CreateItemHandler(nil)(ctx))
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("false active passes required", func(t *testing.T) {
		t.Cleanup(restore)
		createItem = func(_ context.Context, _ database.DB, it *model.ItemDetail) (*model.ItemDetail, error) {
			require.False(t, it.Active)
			it.ID = 1
			return it, nil
		}
		body := strings.Replace(valid, `"active":true`, `"active":false`, 1)
		ctx, rec := newJSONCtx(e, http.MethodPost, body)
		require.NoError(t, CreateItemHandler(nil)(ctx))
		require.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("negative price rejected", func(t *testing.T) {
		t.Cleanup(restore)
		body := strings.Replace(valid, "49.99", "-1", 1)
		ctx, rec := newJSONCtx(e, http.MethodPost, body)
		require.NoError(t, CreateItemHandler(nil)(ctx))
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("bad created_date", func(t *testing.T) {
		t.Cleanup(restore)
		body := strings.Replace(valid, "2025-05-01", "05/01/2025", 1)
		ctx, rec := newJSONCtx(e, http.MethodPost, body)
		require.NoError(t, CreateItemHandler(nil)(ctx))
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		require.Contains(t, rec.Body.String(), "YYYY-MM-DD")
	})

	t.Run("unknown category", func(t *testing.T) {
		t.Cleanup(restore)
		createItem = func(context.Context, database.DB, *model.ItemDetail) (*model.ItemDetail, error) {
			return nil, fmt.Errorf("CreateItem: %w", &pgconn.PgError{Code: "23503"})
		}
		ctx, rec := newJSONCtx(e, http.MethodPost, valid)
		require.NoError(t, CreateItemHandler(nil)(ctx))
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("store error", func(t *testing.T) {
		t.Cleanup(restore)
		createItem = func(context.Context, database.DB, *model.ItemDetail) (*model.ItemDetail, error) {
			return nil, errors.New("boom")
		}
		ctx, rec := newJSONCtx(e, http.MethodPost, valid)
		require.NoError(t, CreateItemHandler(nil)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("success", func(t *testing.T) {
		t.Cleanup(restore)
		var got model.ItemDetail
		createItem = func(_ context.Context, _ database.DB, it *model.ItemDetail) (*model.ItemDetail, error) {
			got = *it
			it.ID = 11
			return it, nil
		}
		ctx, rec := newJSONCtx(e, http.MethodPost, valid)
		require.NoError(t, CreateItemHandler(nil)(ctx))
		require.Equal(t, http.StatusCreated, rec.Code)
		require.Contains(t, rec.Body.String(), "\"insert_id\":11")
		require.Equal(t, "Keyboard", got.Name)
		require.Equal(t, 49.99, got.Price)
		require.Equal(t, time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), got.CreatedDate)
		require.Equal(t, "alice", got.CreatedBy)
	})
}
