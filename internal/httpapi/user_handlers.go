package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Drakarta/Solide-Inc/internal/auth"
	"github.com/Drakarta/Solide-Inc/internal/db"
	"github.com/Drakarta/Solide-Inc/models"
)

// RegisterUser creates a new account. The unique constraint on user.email is
// the authoritative duplicate signal; the pre-insert lookup is only a fast
// path, since a concurrent registration can slip between check and insert.
func (s *Server) RegisterUser(c *gin.Context) {
	email := param(c, "email")
	username := param(c, "username")
	password := param(c, "password")
	if email == "" || username == "" || password == "" {
		s.badRequest(c)
		return
	}

	existing, err := s.Users.GetByEmail(c.Request.Context(), email)
	if err != nil {
		s.internalError(c, "register: lookup email", err)
		return
	}
	if existing != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgEmailExists})
		return
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		s.internalError(c, "register: hash password", err)
		return
	}

	if _, err := s.Users.Create(c.Request.Context(), email, hash, username); err != nil {
		if db.IsDuplicateKey(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": msgEmailExists})
			return
		}
		s.internalError(c, "register: insert user", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": "user created"})
}

// LoginUser verifies credentials and returns the user's id. A missing
// account and a wrong password are indistinguishable to the caller.
func (s *Server) LoginUser(c *gin.Context) {
	email := param(c, "email")
	password := param(c, "password")
	if email == "" || password == "" {
		s.badRequest(c)
		return
	}

	u, err := s.Users.GetByEmail(c.Request.Context(), email)
	if err != nil {
		s.internalError(c, "login: lookup email", err)
		return
	}
	if u == nil || !auth.CheckPassword(password, u.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": msgUnauthorized})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": "login successful", "user": u.ID})
}

// ChangeUser applies a partial update; only supplied fields are written and
// a new password is hashed before storage.
func (s *Server) ChangeUser(c *gin.Context) {
	id, ok := intParam(c, "id")
	newname := param(c, "newname")
	newemail := param(c, "newemail")
	newpassword := param(c, "newpassword")
	if !ok || (newname == "" && newemail == "" && newpassword == "") {
		s.badRequest(c)
		return
	}

	u, err := s.Users.GetByID(c.Request.Context(), id)
	if err != nil {
		s.internalError(c, "change user: lookup", err)
		return
	}
	if u == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": msgUserNotFound})
		return
	}

	var upd models.UserUpdate
	if newname != "" {
		upd.Username = &newname
	}
	if newemail != "" {
		upd.Email = &newemail
	}
	if newpassword != "" {
		hash, err := auth.HashPassword(newpassword)
		if err != nil {
			s.internalError(c, "change user: hash password", err)
			return
		}
		upd.PasswordHash = &hash
	}

	if err := s.Users.Update(c.Request.Context(), id, upd); err != nil {
		if db.IsDuplicateKey(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": msgEmailExists})
			return
		}
		s.internalError(c, "change user: update", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User information updated successfully."})
}

// DeleteUser removes the account after an existence check. Dependent bottle
// and waterdata rows are left alone; an engine-enforced foreign key
// surfaces as an internal error.
func (s *Server) DeleteUser(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		s.badRequest(c)
		return
	}

	u, err := s.Users.GetByID(c.Request.Context(), id)
	if err != nil {
		s.internalError(c, "delete user: lookup", err)
		return
	}
	if u == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": msgUserNotFound})
		return
	}

	if _, err := s.Users.Delete(c.Request.Context(), id); err != nil {
		s.internalError(c, "delete user", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully."})
}

// GetUser is a read-through by id. The password hash never serializes.
func (s *Server) GetUser(c *gin.Context) {
	id, ok := intParam(c, "id")
	if !ok {
		s.badRequest(c)
		return
	}

	u, err := s.Users.GetByID(c.Request.Context(), id)
	if err != nil {
		s.internalError(c, "get user", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": u})
}

func (s *Server) ListUsers(c *gin.Context) {
	users, err := s.Users.List(c.Request.Context())
	if err != nil {
		s.internalError(c, "list users", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": users})
}
