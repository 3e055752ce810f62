package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func productsListHandler(svc catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := svc.ListProducts(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		out := make([]productResponse, 0, len(products))
		for _, p := range products {
			out = append(out, toProductResponse(p))
		}
		c.JSON(http.StatusOK, out)
	}
}

func productGetHandler(svc catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c)
		if !ok {
			return
		}
		p, err := svc.GetProduct(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, toProductResponse(*p))
	}
}

func brandsListHandler(svc catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		brands, err := svc.ListBrands(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		type brandListItem struct {
			ID           int64  `json:"id"`
			Name         string `json:"name"`
			ProductCount int    `json:"product_count"`
		}
		out := make([]brandListItem, 0, len(brands))
		for _, b := range brands {
			out = append(out, brandListItem{ID: b.ID, Name: b.Name, ProductCount: b.ProductCount})
		}
		c.JSON(http.StatusOK, out)
	}
}
