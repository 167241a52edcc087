package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vaibhav/lifehub-api/internal/models"
	"github.com/vaibhav/lifehub-api/internal/services"
)

type TodoHandler struct {
	todoService *services.TodoService
}

func NewTodoHandler(todoService *services.TodoService) *TodoHandler {
	return &TodoHandler{todoService: todoService}
}

// @Summary List Todos
// @Description Get todos, optionally filtered by status
// @Tags Todos
// @Produce json
// @Param status query string false "Filter by status (pending, in_progress, completed)"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /todos [get]
func (h *TodoHandler) Index(c *gin.Context) {
	todos, err := h.todoService.ListTodos(c.Request.Context(), c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}

	today := time.Now()
	responses := make([]models.TodoResponse, 0, len(todos))
	for i := range todos {
		responses = append(responses, todos[i].ToResponse(today))
	}
	c.JSON(http.StatusOK, gin.H{"todos": responses})
}

// @Summary Create Todo
// @Description Create a todo in pending status
// @Tags Todos
// @Accept json
// @Produce json
// @Param request body services.CreateTodoInput true "Todo"
// @Success 201 {object} models.TodoResponse
// @Security BearerAuth
// @Router /todos [post]
func (h *TodoHandler) Create(c *gin.Context) {
	var input services.CreateTodoInput
	if err := BindNestedOrFlat(c, "todo", &input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}

	todo, err := h.todoService.CreateTodo(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, todo.ToResponse(time.Now()))
}

// @Summary Get Todo
// @Description Get a single todo
// @Tags Todos
// @Produce json
// @Param id path int true "Todo ID"
// @Success 200 {object} models.TodoResponse
// @Security BearerAuth
// @Router /todos/{id} [get]
func (h *TodoHandler) Show(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	todo, err := h.todoService.GetTodo(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, todo.ToResponse(time.Now()))
}

// @Summary Update Todo
// @Description Edit a todo's fields; status moves through transitions only
// @Tags Todos
// @Accept json
// @Produce json
// @Param id path int true "Todo ID"
// @Param request body services.UpdateTodoInput true "Fields"
// @Success 200 {object} models.TodoResponse
// @Security BearerAuth
// @Router /todos/{id} [put]
func (h *TodoHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	var input services.UpdateTodoInput
	if err := BindNestedOrFlat(c, "todo", &input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	todo, err := h.todoService.UpdateTodo(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, todo.ToResponse(time.Now()))
}

// @Summary Delete Todo
// @Description Remove a todo
// @Tags Todos
// @Produce json
// @Param id path int true "Todo ID"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /todos/{id} [delete]
func (h *TodoHandler) Destroy(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	if err := h.todoService.DeleteTodo(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "todo deleted"})
}

// @Summary Start Todo
// @Description Move a pending todo to in_progress
// @Tags Todos
// @Produce json
// @Param id path int true "Todo ID"
// @Success 200 {object} models.TodoResponse
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /todos/{id}/start [post]
func (h *TodoHandler) Start(c *gin.Context) {
	h.transition(c, h.todoService.StartTodo)
}

// @Summary Complete Todo
// @Description Move a pending or in-progress todo to completed
// @Tags Todos
// @Produce json
// @Param id path int true "Todo ID"
// @Success 200 {object} models.TodoResponse
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /todos/{id}/complete [post]
func (h *TodoHandler) Complete(c *gin.Context) {
	h.transition(c, h.todoService.CompleteTodo)
}

// @Summary Reopen Todo
// @Description Move a completed todo back to pending
// @Tags Todos
// @Produce json
// @Param id path int true "Todo ID"
// @Success 200 {object} models.TodoResponse
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /todos/{id}/reopen [post]
func (h *TodoHandler) Reopen(c *gin.Context) {
	h.transition(c, h.todoService.ReopenTodo)
}

// @Summary Todo Summary
// @Description Counts by status plus overdue and due-today
// @Tags Todos
// @Produce json
// @Success 200 {object} services.TodoSummary
// @Security BearerAuth
// @Router /todos/summary [get]
func (h *TodoHandler) Summary(c *gin.Context) {
	summary, err := h.todoService.Summary(c.Request.Context(), time.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *TodoHandler) transition(c *gin.Context, fn func(ctx context.Context, id uint) (*models.Todo, error)) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	todo, err := fn(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, todo.ToResponse(time.Now()))
}
