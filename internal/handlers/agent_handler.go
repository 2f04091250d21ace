package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/goswift/booking-backend/internal/models"
	"github.com/sirupsen/logrus"
)

// AgentService is the bus and schedule management used by AgentHandler
type AgentService interface {
	AddBus(ctx context.Context, actorID uuid.UUID, req *models.BusRequest) (*models.Bus, error)
	ListMyBuses(ctx context.Context, actorID uuid.UUID) ([]models.Bus, error)
	UpdateBus(ctx context.Context, actorID, busID uuid.UUID, req *models.BusRequest) (*models.Bus, error)
	DeleteBus(ctx context.Context, actorID, busID uuid.UUID) error
	AddSchedule(ctx context.Context, actorID uuid.UUID, req *models.ScheduleRequest) (*models.Schedule, error)
	ListMySchedules(ctx context.Context, actorID uuid.UUID) ([]models.Schedule, error)
	UpdateSchedule(ctx context.Context, actorID, scheduleID uuid.UUID, req *models.ScheduleRequest) (*models.Schedule, error)
	DeleteSchedule(ctx context.Context, actorID, scheduleID uuid.UUID) error
	ListAgencyBookings(ctx context.Context, actorID uuid.UUID) ([]models.BookingView, error)
}

// AgentHandler serves the agency operator endpoints
type AgentHandler struct {
	agentService AgentService
	logger       *logrus.Logger
}

// NewAgentHandler creates a new agent handler
func NewAgentHandler(agentService AgentService, logger *logrus.Logger) *AgentHandler {
	return &AgentHandler{
		agentService: agentService,
		logger:       logger,
	}
}

// ListBuses handles GET /api/v1/agent/buses
func (h *AgentHandler) ListBuses(c *gin.Context) {
	actorID, ok := actor(c)
	if !ok {
		return
	}

	buses, err := h.agentService.ListMyBuses(c.Request.Context(), actorID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, buses)
}

// CreateBus handles POST /api/v1/agent/buses
func (h *AgentHandler) CreateBus(c *gin.Context) {
	actorID, ok := actor(c)
	if !ok {
		return
	}

	var req models.BusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error(), "INVALID_REQUEST")
		return
	}

	bus, err := h.agentService.AddBus(c.Request.Context(), actorID, &req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, bus)
}

// UpdateBus handles PUT /api/v1/agent/buses/:id
func (h *AgentHandler) UpdateBus(c *gin.Context) {
	actorID, ok := actor(c)
	if !ok {
		return
	}
	busID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req models.BusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error(), "INVALID_REQUEST")
		return
	}

	bus, err := h.agentService.UpdateBus(c.Request.Context(), actorID, busID, &req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, bus)
}

// DeleteBus handles DELETE /api/v1/agent/buses/:id
func (h *AgentHandler) DeleteBus(c *gin.Context) {
	actorID, ok := actor(c)
	if !ok {
		return
	}
	busID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.agentService.DeleteBus(c.Request.Context(), actorID, busID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListSchedules handles GET /api/v1/agent/schedules
func (h *AgentHandler) ListSchedules(c *gin.Context) {
	actorID, ok := actor(c)
	if !ok {
		return
	}

	schedules, err := h.agentService.ListMySchedules(c.Request.Context(), actorID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, schedules)
}

// CreateSchedule handles POST /api/v1/agent/schedules
func (h *AgentHandler) CreateSchedule(c *gin.Context) {
	actorID, ok := actor(c)
	if !ok {
		return
	}

	var req models.ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error(), "INVALID_REQUEST")
		return
	}

	schedule, err := h.agentService.AddSchedule(c.Request.Context(), actorID, &req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, schedule)
}

// UpdateSchedule handles PUT /api/v1/agent/schedules/:id
func (h *AgentHandler) UpdateSchedule(c *gin.Context) {
	actorID, ok := actor(c)
	if !ok {
		return
	}
	scheduleID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req models.ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error(), "INVALID_REQUEST")
		return
	}

	schedule, err := h.agentService.UpdateSchedule(c.Request.Context(), actorID, scheduleID, &req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, schedule)
}

// DeleteSchedule handles DELETE /api/v1/agent/schedules/:id
func (h *AgentHandler) DeleteSchedule(c *gin.Context) {
	actorID, ok := actor(c)
	if !ok {
		return
	}
	scheduleID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.agentService.DeleteSchedule(c.Request.Context(), actorID, scheduleID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListBookings handles GET /api/v1/agent/bookings
func (h *AgentHandler) ListBookings(c *gin.Context) {
	actorID, ok := actor(c)
	if !ok {
		return
	}

	bookings, err := h.agentService.ListAgencyBookings(c.Request.Context(), actorID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, bookings)
}
