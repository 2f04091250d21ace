package handlers

import (
	"context"
	"net/http"
	"path"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/goswift/booking-backend/internal/models"
	"github.com/goswift/booking-backend/internal/services"
	"github.com/sirupsen/logrus"
)

// AdminService is the administration surface used by AdminHandler
type AdminService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUserStatus(ctx context.Context, userID uuid.UUID, status string) (*models.User, error)
	AddCity(ctx context.Context, req *models.CreateCityRequest) (*models.City, error)
	ListCities(ctx context.Context) ([]models.City, error)
	ListAgencies(ctx context.Context) ([]models.Agency, error)
	ListBusesByAgency(ctx context.Context, agencyID uuid.UUID) ([]models.Bus, error)
	ListBookings(ctx context.Context) ([]models.BookingView, error)
	SearchBookings(ctx context.Context, filter services.BookingFilter) ([]models.BookingView, error)
	GlobalStats(ctx context.Context) (*models.SystemStats, error)
	GetConfig(ctx context.Context) (*models.SystemConfig, error)
	UpdateConfig(ctx context.Context, req *models.SystemConfigRequest) (*models.SystemConfig, error)
}

// ReportService renders and exports booking reports
type ReportService interface {
	BookingReport(ctx context.Context, filter services.BookingFilter) ([]byte, error)
	ExportBookingReport(ctx context.Context, filter services.BookingFilter) (string, error)
}

// AdminHandler serves the administrator endpoints
type AdminHandler struct {
	adminService  AdminService
	reportService ReportService
	auditor       Auditor
	logger        *logrus.Logger
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminService AdminService, reportService ReportService, auditor Auditor, logger *logrus.Logger) *AdminHandler {
	return &AdminHandler{
		adminService:  adminService,
		reportService: reportService,
		auditor:       auditor,
		logger:        logger,
	}
}

// ListUsers handles GET /api/v1/admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.adminService.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// UpdateUserStatus handles PUT /api/v1/admin/users/:id/status
func (h *AdminHandler) UpdateUserStatus(c *gin.Context) {
	userID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req models.UpdateUserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error(), "INVALID_REQUEST")
		return
	}

	user, err := h.adminService.UpdateUserStatus(c.Request.Context(), userID, req.Status)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.safeLogAdminAction(c, models.AuditUserStatusChanged, "user", &user.ID, map[string]interface{}{
		"status": string(user.Status),
	})
	c.JSON(http.StatusOK, user)
}

// UserAuditLog handles GET /api/v1/admin/users/:id/audit?limit=
func (h *AdminHandler) UserAuditLog(c *gin.Context) {
	userID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	limit := 50
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			badRequest(c, "Invalid limit", "INVALID_REQUEST")
			return
		}
		limit = n
	}

	events, err := h.auditor.RecentEvents(c.Request.Context(), userID, limit)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

// ListCities handles GET /api/v1/admin/cities
func (h *AdminHandler) ListCities(c *gin.Context) {
	cities, err := h.adminService.ListCities(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, cities)
}

// CreateCity handles POST /api/v1/admin/cities
func (h *AdminHandler) CreateCity(c *gin.Context) {
	var req models.CreateCityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error(), "INVALID_REQUEST")
		return
	}

	city, err := h.adminService.AddCity(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.safeLogAdminAction(c, models.AuditCityCreated, "city", &city.ID, map[string]interface{}{
		"city_name": city.CityName,
	})
	c.JSON(http.StatusCreated, city)
}

// ListAgencies handles GET /api/v1/admin/agencies
func (h *AdminHandler) ListAgencies(c *gin.Context) {
	agencies, err := h.adminService.ListAgencies(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, agencies)
}

// ListAgencyBuses handles GET /api/v1/admin/agencies/:id/buses
func (h *AdminHandler) ListAgencyBuses(c *gin.Context) {
	agencyID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	buses, err := h.adminService.ListBusesByAgency(c.Request.Context(), agencyID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, buses)
}

// ListBookings handles GET /api/v1/admin/bookings
func (h *AdminHandler) ListBookings(c *gin.Context) {
	bookings, err := h.adminService.ListBookings(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// SearchBookings handles GET /api/v1/admin/bookings/search?agency_id=&bus_id=
func (h *AdminHandler) SearchBookings(c *gin.Context) {
	filter, ok := bookingFilter(c)
	if !ok {
		return
	}

	bookings, err := h.adminService.SearchBookings(c.Request.Context(), filter)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// BookingReport handles GET /api/v1/admin/bookings/report
func (h *AdminHandler) BookingReport(c *gin.Context) {
	filter, ok := bookingFilter(c)
	if !ok {
		return
	}

	pdf, err := h.reportService.BookingReport(c.Request.Context(), filter)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	filename := "bookings-" + time.Now().UTC().Format("20060102") + ".pdf"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// ExportBookingReport handles POST /api/v1/admin/bookings/report/export
func (h *AdminHandler) ExportBookingReport(c *gin.Context) {
	filter, ok := bookingFilter(c)
	if !ok {
		return
	}

	key, err := h.reportService.ExportBookingReport(c.Request.Context(), filter)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.safeLogAdminAction(c, models.AuditReportExported, "report", nil, map[string]interface{}{
		"key":    key,
		"filter": filter.Kind.String(),
	})

	c.JSON(http.StatusCreated, gin.H{
		"key":      key,
		"filename": path.Base(key),
	})
}

// Stats handles GET /api/v1/admin/stats
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.adminService.GlobalStats(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetConfig handles GET /api/v1/admin/config
func (h *AdminHandler) GetConfig(c *gin.Context) {
	cfg, err := h.adminService.GetConfig(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// UpdateConfig handles PUT /api/v1/admin/config
func (h *AdminHandler) UpdateConfig(c *gin.Context) {
	var req models.SystemConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error(), "INVALID_REQUEST")
		return
	}

	cfg, err := h.adminService.UpdateConfig(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.safeLogAdminAction(c, models.AuditConfigUpdated, "system_config", nil, map[string]interface{}{
		"service_tax_pct": cfg.ServiceTaxPct.String(),
		"booking_fee":     cfg.BookingFee.String(),
	})
	c.JSON(http.StatusOK, cfg)
}

func bookingFilter(c *gin.Context) (services.BookingFilter, bool) {
	busID, ok := queryUUID(c, "bus_id")
	if !ok {
		return services.BookingFilter{}, false
	}
	// bus_id narrows the result on its own; agency_id is not consulted
	if busID != nil {
		return services.NewBookingFilter(nil, busID), true
	}

	agencyID, ok := queryUUID(c, "agency_id")
	if !ok {
		return services.BookingFilter{}, false
	}
	return services.NewBookingFilter(agencyID, nil), true
}
