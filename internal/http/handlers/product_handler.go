// Product HTTP handlers.
//
//   - GET /products                      (list, optional featured/limit, weak ETag)
//   - GET /products/search               (keyword search)
//   - GET /products/category/{category}  (exact category match)
//   - GET /products/{id}                 (single product)
package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-storefront-backend/internal/services"
	"github.com/tbourn/go-storefront-backend/internal/sysutil"
	"github.com/tbourn/go-storefront-backend/internal/utils"
)

const (
	defaultSearchK = 5
	maxSearchK     = 50
	maxListLimit   = 100
)

// ListProducts godoc
// @ID          listProducts
// @Summary     List products
// @Description Returns every product in insertion order. Supports a weak ETag via If-None-Match and may return 304.
// @Tags        Products
// @Produce     json
//
// @Param       featured       query   bool    false "Only featured (true) or non-featured (false) products"
// @Param       limit          query   int     false "Maximum number of products"  minimum(1) maximum(100)
// @Param       If-None-Match  header  string  false "Return 304 if ETag matches"  example(W/\"products:4:0::0\")
//
// @Success     200  {array}   domain.Product
// @Header      200  {string}  ETag  "Weak ETag for current result"
// @Success     304  {string}  string "Not Modified"
// @Failure     500  {object}  handlers.ErrorResponse "Failed to fetch products"
// @Router      /products [get]
func (h *Handlers) ListProducts(c *gin.Context) {
	ctx := c.Request.Context()

	var f services.ProductFilter
	featured := strings.TrimSpace(c.Query("featured"))
	if featured != "" {
		v := sysutil.IsTruthy(featured)
		f.Featured = &v
	}
	if raw := c.Query("limit"); raw != "" {
		f.Limit = utils.Clamp(utils.AtoiDefault(raw, 0), 0, maxListLimit)
	}

	// ETag pre-check (best effort). Products are never updated, so the
	// count and newest timestamp identify the catalog state.
	if h.stats != nil {
		if st, err := h.stats(ctx); err == nil {
			var ts int64
			if st.LastProductAt != nil {
				ts = st.LastProductAt.UnixNano()
			}
			etag := fmt.Sprintf(`W/"products:%d:%d:%s:%d"`, st.Products, ts, featuredKey(f.Featured), f.Limit)
			c.Header("ETag", etag)
			if inm := c.GetHeader("If-None-Match"); inm != "" && inm == etag {
				c.Status(http.StatusNotModified)
				return
			}
		}
	}

	items, err := h.catalog.List(ctx, f)
	if err != nil {
		failErr(c, ErrCodeListFailed, msgProductsFailed, err)
		return
	}
	ok(c, http.StatusOK, items)
}

func featuredKey(b *bool) string {
	if b == nil {
		return ""
	}
	if *b {
		return "t"
	}
	return "f"
}

// SearchProducts godoc
// @ID          searchProducts
// @Summary     Search products
// @Description Ranks products by keyword overlap with name, description, category and fabrics.
// @Tags        Products
// @Produce     json
//
// @Param       q  query  string  true  "Search terms"  example(wool blazer)
// @Param       k  query  int     false "Maximum hits"  minimum(1) maximum(50) default(5)
//
// @Success     200  {array}   services.ProductHit
// @Failure     400  {object}  handlers.ErrorResponse "Missing query"
// @Failure     500  {object}  handlers.ErrorResponse "Failed to search products"
// @Router      /products/search [get]
func (h *Handlers) SearchProducts(c *gin.Context) {
	k := utils.Clamp(utils.AtoiDefault(c.Query("k"), defaultSearchK), 1, maxSearchK)

	hits, err := h.catalog.Search(c.Request.Context(), c.Query("q"), k)
	if err != nil {
		if errors.Is(err, services.ErrEmptyQuery) {
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "q is required")
			return
		}
		failErr(c, ErrCodeListFailed, msgSearchFailed, err)
		return
	}
	ok(c, http.StatusOK, hits)
}

// ListProductsByCategory godoc
// @ID          listProductsByCategory
// @Summary     List products in a category
// @Description Exact, case-sensitive category match. Unknown categories yield an empty array.
// @Tags        Products
// @Produce     json
//
// @Param       category  path  string  true  "Category slug"  example(suits)
//
// @Success     200  {array}   domain.Product
// @Failure     500  {object}  handlers.ErrorResponse "Failed to fetch products by category"
// @Router      /products/category/{category} [get]
func (h *Handlers) ListProductsByCategory(c *gin.Context) {
	items, err := h.catalog.ListByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		failErr(c, ErrCodeListFailed, msgProductsCategoryFailed, err)
		return
	}
	ok(c, http.StatusOK, items)
}

// GetProduct godoc
// @ID          getProduct
// @Summary     Get a product
// @Tags        Products
// @Produce     json
//
// @Param       id  path  string  true  "Product ID"  format(uuid)
//
// @Success     200  {object}  domain.Product
// @Failure     404  {object}  handlers.ErrorResponse "Product not found"
// @Failure     500  {object}  handlers.ErrorResponse "Failed to fetch product"
// @Router      /products/{id} [get]
func (h *Handlers) GetProduct(c *gin.Context) {
	p, err := h.catalog.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, msgProductNotFound)
			return
		}
		failErr(c, ErrCodeInternal, msgProductFailed, err)
		return
	}
	ok(c, http.StatusOK, p)
}
