package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/localvocal/localvocal/internal/traceability"
)

// ResolveScan turns a scanned QR payload into a product id, verifying the
// product actually exists before sending the client there.
func (s *Server) ResolveScan(c *gin.Context) {
	id, err := traceability.ParsePayload(c.Query("payload"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	product, err := s.catalogSvc.Get(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"productId": product.ID})
}
