package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	catalogdomain "github.com/localvocal/localvocal/internal/catalog/domain"
)

func (s *Server) ListProducts(c *gin.Context) {
	products, err := s.catalogSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

func (s *Server) GetProductByID(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	product, err := s.catalogSvc.Get(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

type createProductRequest struct {
	Name              string  `json:"name"`
	Description       string  `json:"description"`
	Price             float64 `json:"price"`
	Category          string  `json:"category"`
	ImageURL          string  `json:"image_url"`
	RawMaterialSource string  `json:"raw_material_source"`
	TimeToCreate      string  `json:"time_to_create"`
}

func (s *Server) CreateProduct(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	claims := currentClaims(c)
	if claims == nil {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	product, err := s.catalogSvc.Create(c.Request.Context(), catalogdomain.CreateRequest{
		ArtisanID:         claims.UserID,
		Name:              req.Name,
		Description:       req.Description,
		Price:             req.Price,
		Category:          req.Category,
		ImageURL:          req.ImageURL,
		RawMaterialSource: req.RawMaterialSource,
		TimeToCreate:      req.TimeToCreate,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "product added",
		"product": product,
	})
}

// pathID parses the numeric :id segment. Unknown shapes map to not found,
// matching how a missing row is reported.
func pathID(c *gin.Context) (int64, error) {
	raw := strings.TrimSpace(c.Param("id"))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrNotFound
	}
	return id, nil
}
