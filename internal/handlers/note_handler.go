package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vaibhav/lifehub-api/internal/models"
	"github.com/vaibhav/lifehub-api/internal/services"
)

type NoteHandler struct {
	noteService *services.NoteService
}

func NewNoteHandler(noteService *services.NoteService) *NoteHandler {
	return &NoteHandler{noteService: noteService}
}

// @Summary List Notes
// @Description Get all notes, pinned first then newest first
// @Tags Notes
// @Produce json
// @Param category_id query int false "Filter by category"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /notes [get]
func (h *NoteHandler) Index(c *gin.Context) {
	var (
		notes []models.Note
		err   error
	)
	if raw := c.Query("category_id"); raw != "" {
		categoryID, parseErr := strconv.ParseUint(raw, 10, 32)
		if parseErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category_id"})
			return
		}
		notes, err = h.noteService.ListNotesByCategory(c.Request.Context(), uint(categoryID))
	} else {
		notes, err = h.noteService.ListNotes(c.Request.Context())
	}
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]models.NoteResponse, 0, len(notes))
	for i := range notes {
		responses = append(responses, notes[i].ToResponse())
	}
	c.JSON(http.StatusOK, gin.H{"notes": responses})
}

// @Summary Get Note
// @Description Get a note by ID with its category resolved
// @Tags Notes
// @Produce json
// @Param id path int true "Note ID"
// @Success 200 {object} models.NoteResponse
// @Security BearerAuth
// @Router /notes/{id} [get]
func (h *NoteHandler) Show(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	note, err := h.noteService.GetNote(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, note.ToResponse())
}

// @Summary Create Note
// @Description Create a note; the category reference is weak
// @Tags Notes
// @Accept json
// @Produce json
// @Param request body services.CreateNoteInput true "Note"
// @Success 201 {object} models.NoteResponse
// @Security BearerAuth
// @Router /notes [post]
func (h *NoteHandler) Create(c *gin.Context) {
	var input services.CreateNoteInput
	if err := BindNestedOrFlat(c, "note", &input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}

	note, err := h.noteService.CreateNote(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, note.ToResponse())
}

// @Summary Update Note
// @Description Apply a partial update to a note
// @Tags Notes
// @Accept json
// @Produce json
// @Param id path int true "Note ID"
// @Param request body services.UpdateNoteInput true "Fields"
// @Success 200 {object} models.NoteResponse
// @Security BearerAuth
// @Router /notes/{id} [put]
func (h *NoteHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	var input services.UpdateNoteInput
	if err := BindNestedOrFlat(c, "note", &input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	note, err := h.noteService.UpdateNote(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, note.ToResponse())
}

type pinRequest struct {
	Pinned bool `json:"pinned"`
}

// @Summary Pin Note
// @Description Pin or unpin a note
// @Tags Notes
// @Accept json
// @Produce json
// @Param id path int true "Note ID"
// @Param request body pinRequest true "Pinned state"
// @Success 200 {object} models.NoteResponse
// @Security BearerAuth
// @Router /notes/{id}/pin [post]
func (h *NoteHandler) Pin(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	var req pinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	note, err := h.noteService.SetNotePinned(c.Request.Context(), id, req.Pinned)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, note.ToResponse())
}

// @Summary Delete Note
// @Description Remove a note
// @Tags Notes
// @Produce json
// @Param id path int true "Note ID"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /notes/{id} [delete]
func (h *NoteHandler) Destroy(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	if err := h.noteService.DeleteNote(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "note deleted"})
}

// @Summary List Categories
// @Description Get note categories in sort order
// @Tags Notes
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /note_categories [get]
func (h *NoteHandler) Categories(c *gin.Context) {
	categories, err := h.noteService.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// @Summary Create Category
// @Description Create a note category; names are unique
// @Tags Notes
// @Accept json
// @Produce json
// @Param request body services.CreateCategoryInput true "Category"
// @Success 201 {object} models.NoteCategory
// @Failure 422 {object} map[string]string
// @Security BearerAuth
// @Router /note_categories [post]
func (h *NoteHandler) CreateCategory(c *gin.Context) {
	var input services.CreateCategoryInput
	if err := BindNestedOrFlat(c, "category", &input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	category, err := h.noteService.CreateCategory(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

// @Summary Update Category
// @Description Apply a partial update to a category
// @Tags Notes
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Param request body services.UpdateCategoryInput true "Fields"
// @Success 200 {object} models.NoteCategory
// @Security BearerAuth
// @Router /note_categories/{id} [put]
func (h *NoteHandler) UpdateCategory(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	var input services.UpdateCategoryInput
	if err := BindNestedOrFlat(c, "category", &input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := h.noteService.UpdateCategory(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

// @Summary Delete Category
// @Description Remove a category; its notes survive as uncategorized
// @Tags Notes
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /note_categories/{id} [delete]
func (h *NoteHandler) DestroyCategory(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	if err := h.noteService.DeleteCategory(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "category deleted"})
}
