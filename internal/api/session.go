package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pageza/recipebook/backend/internal/service"
	"github.com/pageza/recipebook/backend/internal/types"
)

// SessionHandler drives the form state machine (browse, view, add, edit).
// Every route answers with the full state snapshot.
type SessionHandler struct {
	store service.IRecipeStore
}

func NewSessionHandler(store service.IRecipeStore) *SessionHandler {
	return &SessionHandler{store: store}
}

func (h *SessionHandler) RegisterRoutes(router *gin.RouterGroup, mutating ...gin.HandlerFunc) {
	session := router.Group("/session")
	{
		session.GET("", h.GetState)
		session.POST("/add", h.BeginAdd)
		session.POST("/edit/:id", h.BeginEdit)
		session.PUT("/draft", h.SetDraft)
		session.POST("/cancel", h.Cancel)
		session.PUT("/selection", h.Select)
		session.PUT("/search", h.Search)

		session.POST("/commit", append(mutating, h.Commit)...)
	}
}

func (h *SessionHandler) GetState(c *gin.Context) {
	h.state(c)
}

func (h *SessionHandler) BeginAdd(c *gin.Context) {
	if err := h.store.BeginAdd(); err != nil {
		respondError(c, err)
		return
	}
	h.state(c)
}

func (h *SessionHandler) BeginEdit(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.store.BeginEdit(id); err != nil {
		respondError(c, err)
		return
	}
	h.state(c)
}

func (h *SessionHandler) SetDraft(c *gin.Context) {
	var req types.RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	draft, err := req.Draft()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.store.SetDraft(draft); err != nil {
		respondError(c, err)
		return
	}
	h.state(c)
}

// Commit saves the draft. A draft that fails validation stays open and the
// snapshot carries the field errors.
func (h *SessionHandler) Commit(c *gin.Context) {
	if _, err := h.store.Commit(); err != nil {
		if _, ok := service.IsValidation(err); ok {
			c.JSON(http.StatusUnprocessableEntity, h.store.Snapshot())
			return
		}
		respondError(c, err)
		return
	}
	h.state(c)
}

func (h *SessionHandler) Cancel(c *gin.Context) {
	h.store.Cancel()
	h.state(c)
}

func (h *SessionHandler) Select(c *gin.Context) {
	var req types.SelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id := uuid.Nil
	if req.ID != nil {
		parsed, err := uuid.Parse(*req.ID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
			return
		}
		id = parsed
	}
	if err := h.store.Select(id); err != nil {
		respondError(c, err)
		return
	}
	h.state(c)
}

func (h *SessionHandler) Search(c *gin.Context) {
	var req types.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.store.SetSearch(req.Query)
	h.state(c)
}

func (h *SessionHandler) state(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Snapshot())
}
