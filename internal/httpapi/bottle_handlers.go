package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Drakarta/Solide-Inc/models"
)

// CreateBottle inserts a bottle for the supplied user_id. The id is not
// checked against existing users here; an engine-enforced foreign key
// surfaces as an internal error.
func (s *Server) CreateBottle(c *gin.Context) {
	weight, okWeight := intParam(c, "weight")
	name := param(c, "name")
	userID, okUser := intParam(c, "user_id")
	if !okWeight || name == "" || !okUser {
		s.badRequest(c)
		return
	}

	if _, err := s.Bottles.Create(c.Request.Context(), &models.Bottle{Name: name, Weight: weight, UserID: userID}); err != nil {
		s.internalError(c, "create bottle", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": "bottle created"})
}

// RenameBottle updates the name unconditionally; a non-existent id affects
// zero rows and still succeeds. This differs on purpose from the user
// endpoints, which 404 on missing ids.
func (s *Server) RenameBottle(c *gin.Context) {
	id, ok := intParam(c, "id")
	newname := param(c, "newname")
	if !ok || newname == "" {
		s.badRequest(c)
		return
	}

	if _, err := s.Bottles.Rename(c.Request.Context(), id, newname); err != nil {
		s.internalError(c, "rename bottle", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": "bottle updated"})
}

// DeleteBottle has the same zero-rows-is-success semantics as RenameBottle.
func (s *Server) DeleteBottle(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		s.badRequest(c)
		return
	}

	if _, err := s.Bottles.Delete(c.Request.Context(), id); err != nil {
		s.internalError(c, "delete bottle", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": "bottle deleted"})
}

// GetBottle returns the matching rows as a sequence.
func (s *Server) GetBottle(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		s.badRequest(c)
		return
	}

	bottles, err := s.Bottles.GetByID(c.Request.Context(), id)
	if err != nil {
		s.internalError(c, "get bottle", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": bottles})
}

func (s *Server) ListBottlesByUser(c *gin.Context) {
	userID, ok := intParam(c, "user_id")
	if !ok {
		s.badRequest(c)
		return
	}

	bottles, err := s.Bottles.ListByUser(c.Request.Context(), userID)
	if err != nil {
		s.internalError(c, "list bottles by user", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": bottles})
}

func (s *Server) ListBottles(c *gin.Context) {
	bottles, err := s.Bottles.List(c.Request.Context())
	if err != nil {
		s.internalError(c, "list bottles", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": bottles})
}
