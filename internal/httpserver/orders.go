package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	ordersvc "watchstore/internal/service/order"
)

func orderCreateHandler(svc orderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in ordersvc.PlaceInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
			return
		}

		created, err := svc.Place(c.Request.Context(), in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, toOrderResponse(*created))
	}
}

func orderGetHandler(svc orderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c)
		if !ok {
			return
		}
		o, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, toOrderResponse(*o))
	}
}

func ordersListHandler(svc orderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := svc.List(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		out := make([]orderResponse, 0, len(orders))
		for _, o := range orders {
			out = append(out, toOrderResponse(o))
		}
		c.JSON(http.StatusOK, out)
	}
}
