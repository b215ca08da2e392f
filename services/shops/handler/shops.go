package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/tyrehub/tyrehub/internal/pkg/middleware"
	"github.com/tyrehub/tyrehub/internal/pkg/models"
	"github.com/tyrehub/tyrehub/internal/utils"
	"github.com/tyrehub/tyrehub/services/shops"
)

// ShopHandler serves shop browsing, catalog and favorite endpoints
type ShopHandler struct {
	shopUC shops.ShopUC
}

// NewShopHandler creates a new shop handler
func NewShopHandler(shopUC shops.ShopUC) *ShopHandler {
	return &ShopHandler{shopUC: shopUC}
}

// RegisterRoutes registers shop, catalog and favorite endpoints
func (h *ShopHandler) RegisterRoutes(e *echo.Echo) {
	shopGroup := e.Group("/api/shops")
	shopGroup.GET("", h.ListShops)
	shopGroup.GET("/nearby", h.NearbyShops)
	shopGroup.GET("/markers", h.MapMarkers)
	shopGroup.GET("/:id", h.GetShop)

	catalogGroup := e.Group("/api/catalog")
	catalogGroup.GET("/:shopId", h.ListCatalog)
	catalogGroup.POST("", h.AddCatalogItem)
	catalogGroup.PUT("/:id", h.UpdateCatalogItem)
	catalogGroup.DELETE("/:id", h.DeleteCatalogItem)

	favoriteGroup := e.Group("/api/favorites")
	favoriteGroup.GET("", h.ListFavorites)
	favoriteGroup.POST("/:shopId", h.AddFavorite)
	favoriteGroup.DELETE("/:shopId", h.RemoveFavorite)
}

// ListShops handles GET /api/shops
func (h *ShopHandler) ListShops(c echo.Context) error {
	allShops, err := h.shopUC.ListShops(c.Request().Context())
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "shops retrieved", allShops)
}

// GetShop handles GET /api/shops/:id
func (h *ShopHandler) GetShop(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "invalid shop id")
	}

	shop, err := h.shopUC.GetShop(c.Request().Context(), id)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "shop retrieved", shop)
}

// NearbyShops handles GET /api/shops/nearby?lat=..&lng=..&radius=..
func (h *ShopHandler) NearbyShops(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "invalid latitude")
	}
	lng, err := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "invalid longitude")
	}

	radiusKm := 0.0
	if raw := c.QueryParam("radius"); raw != "" {
		radiusKm, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return utils.BadRequestResponse(c, "invalid radius")
		}
	}

	origin := models.Location{Latitude: lat, Longitude: lng}
	nearby, err := h.shopUC.NearbyShops(c.Request().Context(), origin, radiusKm)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "nearby shops retrieved", nearby)
}

// MapMarkers handles GET /api/shops/markers
func (h *ShopHandler) MapMarkers(c echo.Context) error {
	markers, err := h.shopUC.MapMarkers(c.Request().Context())
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "markers retrieved", markers)
}

// ListCatalog handles GET /api/catalog/:shopId
func (h *ShopHandler) ListCatalog(c echo.Context) error {
	shopID, err := strconv.Atoi(c.Param("shopId"))
	if err != nil {
		return utils.BadRequestResponse(c, "invalid shop id")
	}

	items, err := h.shopUC.ListCatalog(c.Request().Context(), shopID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "catalog retrieved", items)
}

// AddCatalogItem handles POST /api/catalog
func (h *ShopHandler) AddCatalogItem(c echo.Context) error {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var item models.ShopServiceItem
	if err := c.Bind(&item); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}

	created, err := h.shopUC.AddCatalogItem(c.Request().Context(), principal, item)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "catalog item created", created)
}

// UpdateCatalogItem handles PUT /api/catalog/:id
func (h *ShopHandler) UpdateCatalogItem(c echo.Context) error {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "invalid catalog item id")
	}

	var item models.ShopServiceItem
	if err := c.Bind(&item); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}
	item.ID = id

	updated, err := h.shopUC.UpdateCatalogItem(c.Request().Context(), principal, item)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "catalog item updated", updated)
}

// DeleteCatalogItem handles DELETE /api/catalog/:id
func (h *ShopHandler) DeleteCatalogItem(c echo.Context) error {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "invalid catalog item id")
	}

	if err := h.shopUC.DeleteCatalogItem(c.Request().Context(), principal, id); err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "catalog item deleted", nil)
}

// ListFavorites handles GET /api/favorites
func (h *ShopHandler) ListFavorites(c echo.Context) error {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	favorites, err := h.shopUC.ListFavorites(c.Request().Context(), principal)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "favorites retrieved", favorites)
}

// AddFavorite handles POST /api/favorites/:shopId
func (h *ShopHandler) AddFavorite(c echo.Context) error {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	shopID, err := strconv.Atoi(c.Param("shopId"))
	if err != nil {
		return utils.BadRequestResponse(c, "invalid shop id")
	}

	favorite, err := h.shopUC.AddFavorite(c.Request().Context(), principal, shopID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "favorite added", favorite)
}

// RemoveFavorite handles DELETE /api/favorites/:shopId
func (h *ShopHandler) RemoveFavorite(c echo.Context) error {
	principal, ok := middleware.PrincipalFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	shopID, err := strconv.Atoi(c.Param("shopId"))
	if err != nil {
		return utils.BadRequestResponse(c, "invalid shop id")
	}

	if err := h.shopUC.RemoveFavorite(c.Request().Context(), principal, shopID); err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "favorite removed", nil)
}
