package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/kland-web/internal/dto"
	"github.com/noah-isme/kland-web/internal/models"
	appErrors "github.com/noah-isme/kland-web/pkg/errors"
	"github.com/noah-isme/kland-web/pkg/export"
)

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

// ExportService renders course applications as downloadable files.
type ExportService struct {
	applications applicationLister
	csv          csvRenderer
	pdf          pdfRenderer
	logger       *zap.Logger
	now          func() time.Time
}

// NewExportService constructs an ExportService; nil renderers use the defaults.
func NewExportService(applications applicationLister, csv csvRenderer, pdf pdfRenderer, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	return &ExportService{applications: applications, csv: csv, pdf: pdf, logger: logger, now: time.Now}
}

// ParseExportFormat validates a requested format; empty means CSV.
func ParseExportFormat(raw string) (dto.ExportFormat, error) {
	switch dto.ExportFormat(raw) {
	case "", dto.ExportFormatCSV:
		return dto.ExportFormatCSV, nil
	case dto.ExportFormatPDF:
		return dto.ExportFormatPDF, nil
	default:
		return "", appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", raw))
	}
}

// Applications renders every course application in format.
func (s *ExportService) Applications(ctx context.Context, format dto.ExportFormat) (*dto.ExportFile, error) {
	apps, err := s.applications.List(ctx)
	if err != nil {
		return nil, appErrors.FromError(err)
	}
	data := applicationDataset(apps)
	stamp := s.now().UTC().Format("20060102-150405")

	var (
		body        []byte
		contentType string
	)
	switch format {
	case dto.ExportFormatPDF:
		body, err = s.pdf.Render(data)
		contentType = "application/pdf"
	default:
		format = dto.ExportFormatCSV
		body, err = s.csv.Render(data)
		contentType = "text/csv; charset=utf-8"
	}
	if err != nil {
		s.logger.Error("failed to render export", zap.String("format", string(format)), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
	}

	return &dto.ExportFile{
		Filename:    fmt.Sprintf("applications-%s.%s", stamp, format),
		ContentType: contentType,
		Data:        body,
	}, nil
}

func applicationDataset(apps []models.CourseApplication) export.Dataset {
	rows := make([][]string, 0, len(apps))
	for _, app := range apps {
		rows = append(rows, []string{
			strconv.FormatInt(app.ID, 10),
			CourseLabel(app.CourseType),
			app.ApplicantName,
			app.ApplicantPhone,
			string(app.Status),
			app.CreatedAt.UTC().Format("2006-01-02 15:04"),
		})
	}
	return export.Dataset{
		Title:   "Course applications",
		Headers: []string{"ID", "Course", "Name", "Phone", "Status", "Submitted"},
		Rows:    rows,
	}
}
