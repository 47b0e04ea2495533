package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) ListArtisans(c *gin.Context) {
	artisans, err := s.artisanSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, artisans)
}

func (s *Server) GetArtisanByID(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	detail, err := s.artisanSvc.Get(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}
