package httpserver

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"watchstore/internal/money"
)

// Operator-facing read-only view: site customization plus stock status,
// cart subtotals and order totals. Not part of the write path.

type adminOverview struct {
	SiteHeader string          `json:"site_header"`
	SiteTitle  string          `json:"site_title"`
	IndexTitle string          `json:"index_title"`
	Products   []adminProduct  `json:"products"`
	CartLines  []adminCartLine `json:"cart_lines"`
	Orders     []adminOrder    `json:"orders"`
}

type adminProduct struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Brand       string `json:"brand"`
	Price       string `json:"price"`
	Stock       int    `json:"stock"`
	StockStatus string `json:"stock_status"`
}

type adminCartLine struct {
	ID       int64  `json:"id"`
	User     *int64 `json:"user"`
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
	Subtotal string `json:"subtotal"`
}

type adminOrder struct {
	ID            int64  `json:"id"`
	OrderNumber   string `json:"order_number"`
	User          *int64 `json:"user"`
	ContactNumber string `json:"contact_number"`
	PaymentMethod string `json:"payment_method"`
	IsPaid        bool   `json:"is_paid"`
	ItemCount     int    `json:"item_count"`
	Total         string `json:"total"`
}

func adminOverviewHandler(deps Deps) gin.HandlerFunc {
	prefix := deps.Admin.CurrencyPrefix
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		products, err := deps.CatalogSvc.ListProducts(ctx)
		if err != nil {
			respondError(c, err)
			return
		}
		lines, err := deps.CartSvc.List(ctx, nil)
		if err != nil {
			respondError(c, err)
			return
		}
		orders, err := deps.OrderSvc.List(ctx)
		if err != nil {
			respondError(c, err)
			return
		}

		out := adminOverview{
			SiteHeader: deps.Admin.SiteHeader,
			SiteTitle:  deps.Admin.SiteTitle,
			IndexTitle: deps.Admin.IndexTitle,
			Products:   make([]adminProduct, 0, len(products)),
			CartLines:  make([]adminCartLine, 0, len(lines)),
			Orders:     make([]adminOrder, 0, len(orders)),
		}

		for _, p := range products {
			brandName := ""
			if p.Brand != nil {
				brandName = p.Brand.Name
			}
			out.Products = append(out.Products, adminProduct{
				ID:          p.ID,
				Title:       p.Title,
				Brand:       brandName,
				Price:       money.Format(prefix, money.FromCents(p.PriceCents)),
				Stock:       p.Stock,
				StockStatus: stockStatus(p.Stock),
			})
		}

		for _, line := range lines {
			item := adminCartLine{
				ID:       line.ID,
				User:     line.AccountID,
				Quantity: line.Quantity,
				Subtotal: money.Format(prefix, decimal.Zero),
			}
			if line.Product != nil {
				item.Product = line.Product.Title
				item.Subtotal = money.Format(prefix, money.Subtotal(line.Product.PriceCents, line.Quantity))
			}
			out.CartLines = append(out.CartLines, item)
		}

		for _, o := range orders {
			total := decimal.Zero
			for _, line := range o.Lines {
				if line.Product != nil {
					total = total.Add(money.Subtotal(line.Product.PriceCents, line.Quantity))
				}
			}
			out.Orders = append(out.Orders, adminOrder{
				ID:            o.ID,
				OrderNumber:   fmt.Sprintf("#%d", o.ID),
				User:          o.AccountID,
				ContactNumber: o.ContactNumber,
				PaymentMethod: o.PaymentMethod,
				IsPaid:        o.Paid,
				ItemCount:     len(o.Lines),
				Total:         money.Format(prefix, total),
			})
		}

		c.JSON(http.StatusOK, out)
	}
}

func stockStatus(stock int) string {
	switch {
	case stock == 0:
		return "Out of Stock"
	case stock < 10:
		return fmt.Sprintf("Low Stock (%d)", stock)
	default:
		return fmt.Sprintf("In Stock (%d)", stock)
	}
}
