package services

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"time"

	"github.com/goswift/booking-backend/internal/models"
	"github.com/phpdave11/gofpdf"
	"github.com/sirupsen/logrus"
)

// ReportStore persists rendered reports
type ReportStore interface {
	Put(ctx context.Context, key, contentType string, body []byte) error
}

// ReportService renders booking reports as PDF and optionally stores them
type ReportService struct {
	admin  *AdminService
	store  ReportStore
	prefix string
	logger *logrus.Logger
}

// NewReportService creates a new report service. store may be nil, in which
// case exports are rejected.
func NewReportService(admin *AdminService, store ReportStore, prefix string, logger *logrus.Logger) *ReportService {
	return &ReportService{
		admin:  admin,
		store:  store,
		prefix: prefix,
		logger: logger,
	}
}

// BookingReport renders the bookings selected by filter
func (s *ReportService) BookingReport(ctx context.Context, filter BookingFilter) ([]byte, error) {
	views, err := s.admin.SearchBookings(ctx, filter)
	if err != nil {
		return nil, err
	}
	return renderBookingReport(views, filter, time.Now().UTC())
}

// ExportBookingReport renders the report and writes it to the report store.
// It returns the object key.
func (s *ReportService) ExportBookingReport(ctx context.Context, filter BookingFilter) (string, error) {
	if s.store == nil {
		return "", invalid(CodeReportsDisabled, "report export is not configured")
	}

	body, err := s.BookingReport(ctx, filter)
	if err != nil {
		return "", err
	}

	key := path.Join(s.prefix, fmt.Sprintf("bookings-%s.pdf", time.Now().UTC().Format("20060102T150405Z")))
	if err := s.store.Put(ctx, key, "application/pdf", body); err != nil {
		return "", fmt.Errorf("failed to store report: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"key":    key,
		"filter": filter.Kind.String(),
		"bytes":  len(body),
	}).Info("Booking report exported")

	return key, nil
}

func renderBookingReport(views []models.BookingView, filter BookingFilter, generatedAt time.Time) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("Booking Report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Booking Report")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 10)
	scope := "All bookings"
	if filter.Kind != NoFilter {
		scope = fmt.Sprintf("Filtered by %s %s", filter.Kind, filter.ID)
	}
	pdf.Cell(0, 6, scope)
	pdf.Ln(6)
	pdf.Cell(0, 6, "Generated: "+generatedAt.Format("2006-01-02 15:04 MST"))
	pdf.Ln(10)

	headers := []string{"Ref", "Journey", "Passenger", "Bus", "Agency", "Route", "Status", "Fare"}
	widths := []float64{28, 32, 48, 30, 44, 52, 24, 22}

	pdf.SetFont("Helvetica", "B", 9)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, v := range views {
		row := []string{
			v.BookingRefNo,
			v.JourneyDate.Format("2006-01-02 15:04"),
			v.UserFirstName + " " + v.UserLastName,
			v.RegistrationNo,
			v.AgencyName,
			v.SourceCityName + " - " + v.DestCityName,
			string(v.Status),
			v.TotalFare.StringFixed(2),
		}
		for i, cell := range row {
			align := "L"
			if i == len(row)-1 {
				align = "R"
			}
			pdf.CellFormat(widths[i], 6, cell, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.Cell(0, 6, fmt.Sprintf("%d booking(s)", len(views)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}
	return buf.Bytes(), nil
}
