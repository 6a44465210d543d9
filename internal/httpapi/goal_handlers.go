package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Drakarta/Solide-Inc/internal/db"
)

// GetGoal returns the user's water_goal, or 404 when the user does not
// exist.
func (s *Server) GetGoal(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		s.badRequest(c)
		return
	}

	goal, err := s.Users.WaterGoal(c.Request.Context(), id)
	if err != nil {
		if db.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": msgUserNotFound})
			return
		}
		s.internalError(c, "get goal", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": goal})
}

// ChangeGoal sets water_goal unconditionally; a non-existent id affects
// zero rows and still succeeds.
func (s *Server) ChangeGoal(c *gin.Context) {
	id, okID := intParam(c, "id")
	goal, okGoal := intParam(c, "newGoal")
	if !okID || !okGoal {
		s.badRequest(c)
		return
	}

	if err := s.Users.SetWaterGoal(c.Request.Context(), id, goal); err != nil {
		s.internalError(c, "change goal", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": "successfully changed goal"})
}
