package items

import (
	"encoding/json"
	"net/http"
	"time"

	"shoplite/internal/api"
	"shoplite/internal/cache"
	"shoplite/internal/database"
	"shoplite/internal/handler"
	"shoplite/internal/model"
	"shoplite/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	listCategories = store.ListCategories
	listItems      = store.ListItems
	createItem     = store.CreateItem
)

// categoryCacheKey 分類清單的快取鍵；分類表唯讀，適合整份快取
const categoryCacheKey = "item_categories"

// createdDateLayout 商品建檔日期格式
const createdDateLayout = "2006-01-02"

// @Summary     List item categories
// @Description 回傳全部商品分類；結果會以 TTL 快取於 Redis
// @Tags        items
// @Produce     json
// @Success     200 {array}  model.ItemCategory
// @Failure     500 {object} api.ErrorResponse
// @Router      /item_category [get]
func ListCategoriesHandler(db database.DB, rdb cache.Cache, ttl time.Duration) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		if cached, err := rdb.Get(ctx, categoryCacheKey).Result(); err == nil {
			return c.JSONBlob(http.StatusOK, []byte(cached))
		}

		cats, err := listCategories(ctx, db)
		if err != nil {
			return handler.JSONError(c, err)
		}
		if cats == nil {
			cats = []model.ItemCategory{}
		}

		// 快取寫入失敗不影響回應
		if payload, err := json.Marshal(cats); err == nil {
			rdb.Set(ctx, categoryCacheKey, payload, ttl)
		}
		return c.JSON(http.StatusOK, cats)
	}
}

// @Summary     List items
// @Description 回傳全部商品明細，包在 {data: rows} 信封內
// @Tags        items
// @Produce     json
// @Success     200 {object} api.ItemListResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /item_list [get]
func ListItemsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		items, err := listItems(c.Request().Context(), db)
		if err != nil {
			return handler.JSONError(c, err)
		}
		if items == nil {
			items = []model.ItemDetail{}
		}
		return c.JSON(http.StatusOK, api.ItemListResponse{Data: items})
	}
}

// @Summary     Create a new item
// @Description 接收 JSON 建立商品，八個欄位皆為必填；created_date 需為 YYYY-MM-DD
// @Tags        items
// @Accept      json
// @Produce     json
// @Param       body body     api.CreateItemRequest true "商品資料"
// @Success     201  {object} api.CreateResponse
// @Failure     400  {object} api.ErrorResponse "請求格式錯誤"
// @Failure     422  {object} api.ErrorResponse "欄位缺漏、日期格式錯誤或分類不存在"
// @Failure     500  {object} api.ErrorResponse "伺服器錯誤"
// @Router      /item_list [post]
func CreateItemHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateItemRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid JSON body"})
		}
		if err := c.Validate(&req); err != nil {
			return handler.JSONError(c, err)
		}

		createdDate, err := time.Parse(createdDateLayout, req.CreatedDate)
		if err != nil {
			return c.JSON(http.StatusUnprocessableEntity, api.ErrorResponse{Message: "created_date must be YYYY-MM-DD"})
		}

		item, err := createItem(c.Request().Context(), db, &model.ItemDetail{
			Name:        req.ItemName,
			Details:     req.ItemDetails,
			CategoryID:  req.ItemCategory,
			Picture:     req.ItemPicture,
			Price:       *req.ItemPrice,
			Active:      *req.Active,
			CreatedDate: createdDate,
			CreatedBy:   req.CreatedBy,
		})
		if err != nil {
			return handler.JSONError(c, err)
		}

		return c.JSON(http.StatusCreated, api.CreateResponse{
			Success: true,
			Result:  api.InsertResult{InsertID: item.ID, AffectedRows: 1},
		})
	}
}
