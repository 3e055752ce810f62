package httpserver

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"watchstore/internal/domain"
	"watchstore/internal/money"
)

type brandResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type productResponse struct {
	ID          int64         `json:"id"`
	Brand       brandResponse `json:"brand"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Price       string        `json:"price"`
	Image       *string       `json:"image"`
	Stock       int           `json:"stock"`
}

type cartLineResponse struct {
	ID        int64           `json:"id"`
	User      *int64          `json:"user"`
	Product   productResponse `json:"product"`
	Quantity  int             `json:"quantity"`
	Subtotal  string          `json:"subtotal"`
	IsOrdered bool            `json:"is_ordered"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type orderLineResponse struct {
	ID       int64           `json:"id"`
	Product  productResponse `json:"product"`
	Quantity int             `json:"quantity"`
}

type orderResponse struct {
	ID               int64               `json:"id"`
	User             *int64              `json:"user"`
	ShippingAddress  string              `json:"shipping_address"`
	ContactNumber    string              `json:"contact_number"`
	PaymentMethod    string              `json:"payment_method"`
	PaymentReference *string             `json:"payment_reference"`
	IsPaid           bool                `json:"is_paid"`
	Total            string              `json:"total"`
	CreatedAt        time.Time           `json:"created_at"`
	Items            []orderLineResponse `json:"items"`
}

func toProductResponse(p domain.Product) productResponse {
	out := productResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Price:       money.String(money.FromCents(p.PriceCents)),
		Image:       p.ImageURL,
		Stock:       p.Stock,
	}
	if p.Brand != nil {
		out.Brand = brandResponse{ID: p.Brand.ID, Name: p.Brand.Name}
	} else {
		out.Brand = brandResponse{ID: p.BrandID}
	}
	return out
}

func toCartLineResponse(line domain.CartLine) cartLineResponse {
	out := cartLineResponse{
		ID:        line.ID,
		User:      line.AccountID,
		Quantity:  line.Quantity,
		IsOrdered: line.Ordered,
		CreatedAt: line.CreatedAt,
		UpdatedAt: line.UpdatedAt,
	}
	if line.Product != nil {
		out.Product = toProductResponse(*line.Product)
		out.Subtotal = money.String(money.Subtotal(line.Product.PriceCents, line.Quantity))
	}
	return out
}

func toOrderResponse(o domain.Order) orderResponse {
	items := make([]orderLineResponse, 0, len(o.Lines))
	total := money.FromCents(0)
	for _, line := range o.Lines {
		item := orderLineResponse{ID: line.ID, Quantity: line.Quantity}
		if line.Product != nil {
			item.Product = toProductResponse(*line.Product)
			total = total.Add(money.Subtotal(line.Product.PriceCents, line.Quantity))
		}
		items = append(items, item)
	}
	return orderResponse{
		ID:               o.ID,
		User:             o.AccountID,
		ShippingAddress:  o.ShippingAddress,
		ContactNumber:    o.ContactNumber,
		PaymentMethod:    o.PaymentMethod,
		PaymentReference: o.PaymentReference,
		IsPaid:           o.Paid,
		Total:            money.String(total),
		CreatedAt:        o.CreatedAt,
		Items:            items,
	}
}

func respondError(c *gin.Context, err error) {
	var validationErr domain.ValidationError
	var stockErr *domain.InsufficientStockError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"detail": validationErr.Error()})
	case errors.As(err, &stockErr):
		c.JSON(http.StatusBadRequest, gin.H{"detail": stockErr.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": "not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal error"})
	}
}

func parseIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid id"})
		return 0, false
	}
	return id, true
}
