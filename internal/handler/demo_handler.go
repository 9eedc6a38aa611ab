package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"apilab/internal/model"

	"github.com/gin-gonic/gin"
)

type SampleStore interface {
	Todo(id int) *model.Todo
	Todos(limit int) []model.Todo
	Picture(date string) *model.Picture
	TodoTotal() int
}

// DemoHandler serves local stand-ins for the two real services so every
// request outcome can be exercised offline. A request may force an error
// status with ?fail=<status>.
type DemoHandler struct {
	store  SampleStore
	apiKey string
}

func NewDemoHandler(store SampleStore, apiKey string) *DemoHandler {
	return &DemoHandler{store: store, apiKey: apiKey}
}

func (h *DemoHandler) GetTodo(c *gin.Context) {
	if h.failRequested(c) {
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		slog.Error("invalid todo id", "id", c.Param("id"), "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid todo id"})
		return
	}

	todo := h.store.Todo(id)
	if todo == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
		return
	}

	c.JSON(http.StatusOK, todo)
}

func (h *DemoHandler) GetTodos(c *gin.Context) {
	if h.failRequested(c) {
		return
	}

	limit := getQueryLimit(c)

	c.JSON(http.StatusOK, h.store.Todos(limit))
}

func (h *DemoHandler) GetPicture(c *gin.Context) {
	if h.failRequested(c) {
		return
	}

	if !h.authorized(c) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "API key invalid or missing"})
		return
	}

	date := c.Query("date")

	pic := h.store.Picture(date)
	if pic == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No picture for date", "date": date})
		return
	}

	c.JSON(http.StatusOK, pic)
}

// GetBroken returns a body that is deliberately not JSON, for demonstrating
// the parse-failure path.
func (h *DemoHandler) GetBroken(c *gin.Context) {
	c.String(http.StatusOK, "this is not json")
}

func (h *DemoHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"todos":  h.store.TodoTotal(),
	})
}

// authorized accepts the configured key as an api_key query parameter or a
// bearer Authorization header.
func (h *DemoHandler) authorized(c *gin.Context) bool {
	if key := c.Query("api_key"); key != "" {
		return key == h.apiKey
	}

	const prefix = "Bearer "
	if auth := c.GetHeader("Authorization"); strings.HasPrefix(auth, prefix) {
		return strings.TrimPrefix(auth, prefix) == h.apiKey
	}

	return false
}

func (h *DemoHandler) failRequested(c *gin.Context) bool {
	fail := c.Query("fail")
	if fail == "" {
		return false
	}

	status, err := strconv.Atoi(fail)
	if err != nil || status < 400 || status > 599 {
		slog.Warn("invalid fail status requested", "value", fail)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid fail status"})
		return true
	}

	c.JSON(status, gin.H{"error": http.StatusText(status)})
	return true
}

func getQueryLimit(c *gin.Context) int {
	const (
		defaultLimit = 10
		maxLimit     = 100
	)

	paramLimit := c.Query("_limit")
	if paramLimit == "" {
		return defaultLimit
	}

	limit, err := strconv.Atoi(paramLimit)
	if err != nil || limit < 1 {
		slog.Warn("invalid query parameter, using default", "param", "_limit", "value", paramLimit, "default", defaultLimit)
		return defaultLimit
	}

	if limit > maxLimit {
		slog.Warn("query parameter exceeds max, clamping", "param", "_limit", "value", limit, "max", maxLimit)
		return maxLimit
	}

	return limit
}
