package service

import (
	"fmt"
	"io"
	"strings"
	"time"

	"institute-portal-backend/internal/database/models"
	apperrors "institute-portal-backend/internal/errors"
	"institute-portal-backend/internal/repository"
	"institute-portal-backend/internal/spreadsheet"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transparency datasets and export formats
const (
	DatasetPayroll     = "payroll"
	DatasetProcurement = "procurement"
	DatasetPortarias   = "portarias"

	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// ContentTypes maps export formats to their MIME type
var ContentTypes = map[string]string{
	FormatCSV:  "text/csv; charset=utf-8",
	FormatXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

// YearSummaryProvider is the part of the payroll service the public portal uses
type YearSummaryProvider interface {
	YearSummary(year int) (*YearSummary, error)
}

// TransparencyService serves the public, read-only view of payroll,
// procurement and portarias. Individual employees never appear in it.
type TransparencyService struct {
	payroll         YearSummaryProvider
	procurementRepo repository.ProcurementRepositoryInterface
	portariaRepo    repository.PortariaRepositoryInterface
}

// NewTransparencyService creates a new transparency service
func NewTransparencyService(
	payroll YearSummaryProvider,
	procurementRepo repository.ProcurementRepositoryInterface,
	portariaRepo repository.PortariaRepositoryInterface,
) *TransparencyService {
	return &TransparencyService{
		payroll:         payroll,
		procurementRepo: procurementRepo,
		portariaRepo:    portariaRepo,
	}
}

// PublicProcurement is a procurement case as published on the portal
type PublicProcurement struct {
	ID             uuid.UUID           `json:"id"`
	ProcessNumber  string              `json:"process_number"`
	Object         string              `json:"object"`
	Modality       models.Modality     `json:"modality"`
	Status         string              `json:"status"`
	EstimatedValue decimal.Decimal     `json:"estimated_value"`
	AwardedValue   decimal.NullDecimal `json:"awarded_value"`
	OpenedAt       time.Time           `json:"opened_at"`
	CompletedAt    *time.Time          `json:"completed_at,omitempty"`
	CancelledAt    *time.Time          `json:"cancelled_at,omitempty"`
}

// PublicPortaria is a published or revoked portaria as shown on the portal
type PublicPortaria struct {
	ID           uuid.UUID  `json:"id"`
	Number       int        `json:"number"`
	Year         int        `json:"year"`
	Subject      string     `json:"subject"`
	Body         string     `json:"body"`
	Status       string     `json:"status"`
	PublishedAt  *time.Time `json:"published_at,omitempty"`
	RevokedAt    *time.Time `json:"revoked_at,omitempty"`
	RevokeReason string     `json:"revoke_reason,omitempty"`
	HasDocument  bool       `json:"has_document"`
}

// publicPortariaStatuses are the only statuses the portal shows
var publicPortariaStatuses = []models.PortariaStatus{models.PortariaStatusPublished, models.PortariaStatusRevoked}

// Payroll returns the monthly totals of the closed runs of a year
func (s *TransparencyService) Payroll(year int) (*YearSummary, error) {
	return s.payroll.YearSummary(year)
}

// Procurement returns a page of non-draft procurement cases
func (s *TransparencyService) Procurement(year int, status string, page, pageSize int) (*ListResponse[PublicProcurement], error) {
	filter := repository.ProcurementFilter{Year: year, ExcludeDraft: true}
	if status != "" {
		if status == string(models.ProcurementStatusDraft) {
			return nil, apperrors.NewValidationError("status", "must be one of: in_progress completed cancelled")
		}
		filter.Status = models.ProcurementStatus(status)
	}
	page, pageSize = NormalizePage(page, pageSize)
	cases, total, err := s.procurementRepo.List(filter, pageSize, pageOffset(page, pageSize))
	if err != nil {
		return nil, fmt.Errorf("failed to list procurement cases: %w", err)
	}
	items := make([]PublicProcurement, len(cases))
	for i := range cases {
		items[i] = toPublicProcurement(&cases[i])
	}
	return newList(items, total, page, pageSize), nil
}

// Portarias returns a page of published and revoked portarias
func (s *TransparencyService) Portarias(year int, query string, page, pageSize int) (*ListResponse[PublicPortaria], error) {
	filter := repository.PortariaFilter{Year: year, Statuses: publicPortariaStatuses, Query: strings.TrimSpace(query)}
	page, pageSize = NormalizePage(page, pageSize)
	portarias, total, err := s.portariaRepo.List(filter, pageSize, pageOffset(page, pageSize))
	if err != nil {
		return nil, fmt.Errorf("failed to list portarias: %w", err)
	}
	items := make([]PublicPortaria, len(portarias))
	for i := range portarias {
		items[i] = toPublicPortaria(&portarias[i])
	}
	return newList(items, total, page, pageSize), nil
}

func toPublicProcurement(c *models.ProcurementCase) PublicProcurement {
	return PublicProcurement{
		ID:             c.ID,
		ProcessNumber:  c.ProcessNumber,
		Object:         c.Object,
		Modality:       c.Modality,
		Status:         string(c.Status),
		EstimatedValue: c.EstimatedValue,
		AwardedValue:   c.AwardedValue,
		OpenedAt:       c.OpenedAt,
		CompletedAt:    c.CompletedAt,
		CancelledAt:    c.CancelledAt,
	}
}

func toPublicPortaria(p *models.Portaria) PublicPortaria {
	return PublicPortaria{
		ID:           p.ID,
		Number:       p.Number,
		Year:         p.Year,
		Subject:      p.Subject,
		Body:         p.Body,
		Status:       string(p.Status),
		PublishedAt:  p.PublishedAt,
		RevokedAt:    p.RevokedAt,
		RevokeReason: p.RevokeReason,
		HasDocument:  p.DocumentPath != "",
	}
}

// Export writes a dataset of a year as CSV or XLSX
func (s *TransparencyService) Export(w io.Writer, dataset string, year int, format string) error {
	if _, ok := ContentTypes[format]; !ok {
		return apperrors.NewValidationError("format", "must be one of: csv xlsx")
	}

	var (
		table spreadsheet.Table
		err   error
	)
	switch dataset {
	case DatasetPayroll:
		table, err = s.payrollTable(year)
	case DatasetProcurement:
		table, err = s.procurementTable(year)
	case DatasetPortarias:
		table, err = s.portariaTable(year)
	default:
		return apperrors.NewValidationError("dataset", "must be one of: payroll procurement portarias")
	}
	if err != nil {
		return err
	}

	if format == FormatCSV {
		return spreadsheet.WriteCSV(w, table)
	}
	return spreadsheet.WriteXLSX(w, table)
}

func (s *TransparencyService) payrollTable(year int) (spreadsheet.Table, error) {
	summary, err := s.payroll.YearSummary(year)
	if err != nil {
		return spreadsheet.Table{}, err
	}
	table := spreadsheet.Table{
		Sheet:   fmt.Sprintf("Folha %d", year),
		Headers: []string{"Ano", "Mês", "Folhas", "Lançamentos", "Bruto", "Descontos", "Líquido"},
		Widths:  []float64{8, 6, 8, 12, 16, 16, 16},
	}
	for _, m := range summary.Months {
		table.Rows = append(table.Rows, []interface{}{year, m.Month, m.Runs, m.Entries, m.Gross, m.Deductions, m.Net})
	}
	table.Rows = append(table.Rows, []interface{}{year, "TOTAL", "", "", summary.Gross, summary.Deductions, summary.Net})
	return table, nil
}

func (s *TransparencyService) procurementTable(year int) (spreadsheet.Table, error) {
	table := spreadsheet.Table{
		Sheet:   fmt.Sprintf("Licitações %d", year),
		Headers: []string{"Processo", "Objeto", "Modalidade", "Situação", "Valor estimado", "Valor contratado", "Abertura", "Conclusão"},
		Widths:  []float64{14, 60, 16, 14, 16, 16, 12, 12},
	}
	filter := repository.ProcurementFilter{Year: year, ExcludeDraft: true}
	for offset := 0; ; offset += exportBatchSize {
		cases, total, err := s.procurementRepo.List(filter, exportBatchSize, offset)
		if err != nil {
			return table, fmt.Errorf("failed to list procurement cases: %w", err)
		}
		for _, c := range cases {
			table.Rows = append(table.Rows, []interface{}{
				c.ProcessNumber, c.Object, string(c.Modality), string(c.Status),
				c.EstimatedValue, c.AwardedValue, c.OpenedAt, c.CompletedAt,
			})
		}
		if len(cases) == 0 || int64(offset+len(cases)) >= total {
			return table, nil
		}
	}
}

func (s *TransparencyService) portariaTable(year int) (spreadsheet.Table, error) {
	table := spreadsheet.Table{
		Sheet:   fmt.Sprintf("Portarias %d", year),
		Headers: []string{"Número", "Ano", "Assunto", "Situação", "Publicação", "Revogação", "Motivo da revogação"},
		Widths:  []float64{8, 6, 60, 12, 12, 12, 40},
	}
	filter := repository.PortariaFilter{Year: year, Statuses: publicPortariaStatuses}
	for offset := 0; ; offset += exportBatchSize {
		portarias, total, err := s.portariaRepo.List(filter, exportBatchSize, offset)
		if err != nil {
			return table, fmt.Errorf("failed to list portarias: %w", err)
		}
		for _, p := range portarias {
			table.Rows = append(table.Rows, []interface{}{
				p.Number, p.Year, p.Subject, string(p.Status), p.PublishedAt, p.RevokedAt, p.RevokeReason,
			})
		}
		if len(portarias) == 0 || int64(offset+len(portarias)) >= total {
			return table, nil
		}
	}
}
