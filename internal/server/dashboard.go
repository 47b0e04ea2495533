package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) GetArtisanStats(c *gin.Context) {
	claims := currentClaims(c)
	if claims == nil {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	stats, err := s.dashboardSvc.Stats(c.Request.Context(), claims.UserID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
