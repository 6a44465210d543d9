package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RecordDrink appends a water-intake record with the server-assigned
// timestamp.
func (s *Server) RecordDrink(c *gin.Context) {
	userID, okID := intParam(c, "id")
	water, okWater := intParam(c, "water")
	if !okID || !okWater {
		s.badRequest(c)
		return
	}

	if err := s.Water.Create(c.Request.Context(), userID, water); err != nil {
		s.internalError(c, "record drink", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Water intake record added successfully."})
}

// ListDrinksByUser returns the user's records in natural row order; callers
// must not assume recency ordering.
func (s *Server) ListDrinksByUser(c *gin.Context) {
	userID, ok := intParam(c, "id")
	if !ok {
		s.badRequest(c)
		return
	}

	recs, err := s.Water.ListByUser(c.Request.Context(), userID)
	if err != nil {
		s.internalError(c, "list drinks by user", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": recs})
}

func (s *Server) ListDrinks(c *gin.Context) {
	recs, err := s.Water.List(c.Request.Context())
	if err != nil {
		s.internalError(c, "list drinks", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": recs})
}
