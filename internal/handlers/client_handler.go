package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vaibhav/lifehub-api/internal/repository"
	"github.com/vaibhav/lifehub-api/internal/services"
)

// clientsUpcomingWindowDays is the clients page look-ahead for due payments
const clientsUpcomingWindowDays = 30

type ClientHandler struct {
	clientService *services.ClientService
}

func NewClientHandler(clientService *services.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// @Summary List Clients
// @Description Get a filtered, paginated client list
// @Tags Clients
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(50)
// @Param status query string false "Filter by status"
// @Param search query string false "Search by name or company"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /clients [get]
func (h *ClientHandler) Index(c *gin.Context) {
	query := repository.NewListQuery()
	query.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	query.PerPage, _ = strconv.Atoi(c.DefaultQuery("per_page", "50"))
	query.Filters["status"] = c.Query("status")

	query.Search = c.Query("search")

	// Parse sort parameter (format: field-direction)
	if sort := c.Query("sort"); sort != "" {
		parts := strings.Split(sort, "-")
		query.SortBy = parts[0]
		if len(parts) > 1 {
			query.SortDir = parts[1]
		}
	}

	clients, total, err := h.clientService.ListClients(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"clients": clients,
		"pagination": gin.H{
			"page":        query.Page,
			"per_page":    query.PerPage,
			"total":       total,
			"total_pages": (total + int64(query.PerPage) - 1) / int64(query.PerPage),
		},
	})
}

// @Summary Get Client
// @Description Get a client by ID
// @Tags Clients
// @Produce json
// @Param id path int true "Client ID"
// @Success 200 {object} models.Client
// @Security BearerAuth
// @Router /clients/{id} [get]
func (h *ClientHandler) Show(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	client, err := h.clientService.GetClient(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

// @Summary Create Client
// @Description Create a client record
// @Tags Clients
// @Accept json
// @Produce json
// @Param request body services.CreateClientInput true "Client"
// @Success 201 {object} models.Client
// @Security BearerAuth
// @Router /clients [post]
func (h *ClientHandler) Create(c *gin.Context) {
	var input services.CreateClientInput
	if err := BindNestedOrFlat(c, "client", &input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	client, err := h.clientService.CreateClient(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, client)
}

// @Summary Update Client
// @Description Apply a partial update to a client record
// @Tags Clients
// @Accept json
// @Produce json
// @Param id path int true "Client ID"
// @Param request body services.UpdateClientInput true "Fields"
// @Success 200 {object} models.Client
// @Security BearerAuth
// @Router /clients/{id} [put]
func (h *ClientHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	var input services.UpdateClientInput
	if err := BindNestedOrFlat(c, "client", &input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	client, err := h.clientService.UpdateClient(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

// @Summary Delete Client
// @Description Remove a client record
// @Tags Clients
// @Produce json
// @Param id path int true "Client ID"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /clients/{id} [delete]
func (h *ClientHandler) Destroy(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		return
	}

	if err := h.clientService.DeleteClient(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "client deleted"})
}

// @Summary Client Metrics
// @Description ARR, monthly revenue and client counts
// @Tags Clients
// @Produce json
// @Success 200 {object} services.ClientMetrics
// @Security BearerAuth
// @Router /clients/metrics [get]
func (h *ClientHandler) Metrics(c *gin.Context) {
	metrics, err := h.clientService.Metrics(c.Request.Context(), time.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, metrics)
}

// @Summary Upcoming Payments
// @Description Clients with a payment due within the window (default 30 days)
// @Tags Clients
// @Produce json
// @Param days query int false "Look-ahead window in days" default(30)
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /clients/upcoming_payments [get]
func (h *ClientHandler) UpcomingPayments(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", strconv.Itoa(clientsUpcomingWindowDays)))
	if days <= 0 || days > 365 {
		days = clientsUpcomingWindowDays
	}

	clients, err := h.clientService.UpcomingPayments(c.Request.Context(), time.Now(), days)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"clients": clients})
}
