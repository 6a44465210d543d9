// Package httpapi exposes the hydration-tracking operations over HTTP/JSON.
// Parameters arrive as form-encoded key/value pairs in the query string or
// request body; every response is a JSON object with either a data/message
// field or a single error string.
package httpapi

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Drakarta/Solide-Inc/repository"
)

// Client-facing message strings. Internal failure details are logged, never
// echoed.
const (
	msgBadRequest    = "Bad Request. Check request payload."
	msgEmailExists   = "Email already exists"
	msgUnauthorized  = "Unauthorized. Invalid credentials."
	msgUserNotFound  = "User not found."
	msgInternalError = "Internal Server Error"
)

// Server bundles the repositories behind the HTTP handlers.
type Server struct {
	Users   *repository.UserRepository
	Bottles *repository.BottleRepository
	Water   *repository.WaterDataRepository
	Log     *slog.Logger
}

// NewRouter returns a gin engine with every route registered.
func NewRouter(s *Server) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	user := r.Group("/user")
	{
		user.POST("/register", s.RegisterUser)
		user.GET("/login", s.LoginUser)
		user.PUT("/change", s.ChangeUser)
		user.DELETE("/delete", s.DeleteUser)
		user.GET("/get", s.GetUser)
		user.GET("/getall", s.ListUsers)
	}

	bottle := r.Group("/bottle")
	{
		bottle.POST("/create", s.CreateBottle)
		bottle.PUT("/rename", s.RenameBottle)
		bottle.DELETE("/delete", s.DeleteBottle)
		bottle.GET("/get", s.GetBottle)
		bottle.GET("/getalluser", s.ListBottlesByUser)
		bottle.GET("/getall", s.ListBottles)
	}

	goal := r.Group("/goal")
	{
		goal.GET("/get", s.GetGoal)
		goal.PUT("/change", s.ChangeGoal)
	}

	water := r.Group("/waterdata")
	{
		water.POST("/drink", s.RecordDrink)
		water.GET("/getdrink", s.ListDrinksByUser)
		water.GET("/getall", s.ListDrinks)
	}

	return r
}

// param reads a request parameter from the query string or, failing that,
// the form-encoded body.
func param(c *gin.Context, key string) string {
	if v := c.Query(key); v != "" {
		return v
	}
	return c.PostForm(key)
}

// intParam reads a required integer parameter. ok is false when the value
// is absent or not an integer.
func intParam(c *gin.Context, key string) (int64, bool) {
	v := param(c, key)
	if v == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (s *Server) badRequest(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msgBadRequest})
}

// internalError logs the underlying failure and answers with the generic
// message.
func (s *Server) internalError(c *gin.Context, op string, err error) {
	if s.Log != nil {
		s.Log.Error("request failed", "op", op, "path", c.FullPath(), "err", err)
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": msgInternalError})
}
