package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	cartsvc "watchstore/internal/service/cart"
)

func cartCreateHandler(svc cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in cartsvc.UpsertInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
			return
		}

		line, created, err := svc.Upsert(c.Request.Context(), in)
		if err != nil {
			respondError(c, err)
			return
		}

		status := http.StatusOK
		if created {
			status = http.StatusCreated
		}
		c.JSON(status, toCartLineResponse(*line))
	}
}

func cartListHandler(svc cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		accountID, ok := parseUserQuery(c)
		if !ok {
			return
		}
		lines, err := svc.List(c.Request.Context(), accountID)
		if err != nil {
			respondError(c, err)
			return
		}
		out := make([]cartLineResponse, 0, len(lines))
		for _, line := range lines {
			out = append(out, toCartLineResponse(line))
		}
		c.JSON(http.StatusOK, out)
	}
}

func cartDeleteHandler(svc cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseIDParam(c)
		if !ok {
			return
		}
		if err := svc.Delete(c.Request.Context(), id); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

type clearOrderedRequest struct {
	User *int64 `json:"user"`
}

func cartClearOrderedHandler(svc cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in clearOrderedRequest
		if c.Request.Body != nil && c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&in); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
				return
			}
		}
		deleted, err := svc.ClearOrdered(c.Request.Context(), in.User)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": deleted})
	}
}

func parseUserQuery(c *gin.Context) (*int64, bool) {
	raw := c.Query("user")
	if raw == "" {
		return nil, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid user"})
		return nil, false
	}
	return &id, true
}
