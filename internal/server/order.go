package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type createOrderRequest struct {
	ProductID int64 `json:"productId"`
}

func (s *Server) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	claims := currentClaims(c)
	if claims == nil {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	order, err := s.orderSvc.Create(c.Request.Context(), claims.UserID, req.ProductID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "order placed successfully",
		"order":   order,
	})
}

func (s *Server) ListOrders(c *gin.Context) {
	claims := currentClaims(c)
	if claims == nil {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	orders, err := s.orderSvc.ListByCustomer(c.Request.Context(), claims.UserID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, orders)
}
