package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"institute-portal-backend/internal/database/models"
	apperrors "institute-portal-backend/internal/errors"
	"institute-portal-backend/internal/logger"
	"institute-portal-backend/internal/repository"
	"institute-portal-backend/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var processNumberPattern = regexp.MustCompile(`^\d{5}/\d{4}$`)

type checklistStep struct {
	Title    string
	Required bool
}

// commonOpening and commonClosing wrap the modality-specific steps
var (
	commonOpening = []checklistStep{
		{"Documento de formalização da demanda", true},
		{"Estudo técnico preliminar", true},
		{"Pesquisa de preços", true},
		{"Reserva orçamentária", true},
	}
	commonClosing = []checklistStep{
		{"Parecer jurídico", true},
		{"Homologação / ratificação", true},
		{"Publicação do extrato", true},
		{"Contrato ou instrumento equivalente", false},
	}
)

// checklistTemplates lists the steps specific to each modality
var checklistTemplates = map[models.Modality][]checklistStep{
	models.ModalityPregao: {
		{"Termo de referência", true},
		{"Edital", true},
		{"Publicação do aviso de licitação", true},
		{"Sessão pública de lances", true},
		{"Habilitação do vencedor", true},
		{"Adjudicação", true},
	},
	models.ModalityConcorrencia: {
		{"Projeto básico ou termo de referência", true},
		{"Edital", true},
		{"Publicação do aviso de licitação", true},
		{"Julgamento das propostas", true},
		{"Habilitação", true},
		{"Prazo recursal", true},
		{"Adjudicação", true},
	},
	models.ModalityDispensa: {
		{"Termo de referência", true},
		{"Justificativa da dispensa", true},
		{"Razão da escolha do fornecedor", true},
		{"Aviso de dispensa eletrônica", false},
	},
	models.ModalityInexigibilidade: {
		{"Termo de referência", true},
		{"Justificativa da inexigibilidade", true},
		{"Comprovação de exclusividade ou notória especialização", true},
		{"Justificativa do preço", true},
	},
	models.ModalityConcurso: {
		{"Regulamento do concurso", true},
		{"Edital", true},
		{"Publicação do aviso", true},
		{"Comissão julgadora designada", true},
		{"Julgamento dos trabalhos", true},
	},
}

// ChecklistTemplate returns the ordered checklist items created for a new
// case of the given modality
func ChecklistTemplate(m models.Modality) []models.ChecklistItem {
	specific, ok := checklistTemplates[m]
	if !ok {
		return nil
	}
	steps := make([]checklistStep, 0, len(commonOpening)+len(specific)+len(commonClosing))
	steps = append(steps, commonOpening...)
	steps = append(steps, specific...)
	steps = append(steps, commonClosing...)

	items := make([]models.ChecklistItem, len(steps))
	for i, st := range steps {
		items[i] = models.ChecklistItem{Step: i + 1, Title: st.Title, Required: st.Required}
	}
	return items
}

// ProcurementService handles procurement cases and their checklists
type ProcurementService struct {
	repo      repository.ProcurementRepositoryInterface
	validator *validator.Validate
	now       func() time.Time
}

// NewProcurementService creates a new procurement service
func NewProcurementService(repo repository.ProcurementRepositoryInterface, validator *validator.Validate) *ProcurementService {
	return &ProcurementService{
		repo:      repo,
		validator: validator,
		now:       time.Now,
	}
}

// CreateCaseRequest represents the request to open a procurement case
type CreateCaseRequest struct {
	ProcessNumber  string          `json:"process_number" validate:"required" example:"00042/2024"`
	Object         string          `json:"object" validate:"required,max=1000"`
	Modality       string          `json:"modality" validate:"required,oneof=pregao concorrencia dispensa inexigibilidade concurso"`
	EstimatedValue decimal.Decimal `json:"estimated_value" swaggertype:"string" example:"150000.00"`
	UnitID         *uuid.UUID      `json:"unit_id,omitempty"`
}

// UpdateCaseRequest represents the editable fields of a case
type UpdateCaseRequest struct {
	Object         string              `json:"object" validate:"required,max=1000"`
	EstimatedValue decimal.Decimal     `json:"estimated_value" swaggertype:"string"`
	AwardedValue   decimal.NullDecimal `json:"awarded_value" swaggertype:"string"`
	UnitID         *uuid.UUID          `json:"unit_id,omitempty"`
}

// CompleteCaseRequest optionally records the awarded value on completion
type CompleteCaseRequest struct {
	AwardedValue decimal.NullDecimal `json:"awarded_value" swaggertype:"string"`
}

// CancelCaseRequest carries the mandatory cancellation reason
type CancelCaseRequest struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

// ToggleItemRequest marks a checklist item done or not done
type ToggleItemRequest struct {
	Done bool `json:"done"`
}

// Progress counts done checklist items
type Progress struct {
	Done            int  `json:"done"`
	Total           int  `json:"total"`
	Percent         int  `json:"percent"`
	RequiredPending int  `json:"required_pending"`
	CanComplete     bool `json:"can_complete"`
}

// CaseDetail is a case with its checklist progress
type CaseDetail struct {
	*models.ProcurementCase
	Progress Progress `json:"progress"`
}

// CaseProgress computes the checklist progress of a case
func CaseProgress(items []models.ChecklistItem) Progress {
	p := Progress{Total: len(items)}
	for _, item := range items {
		if item.Done {
			p.Done++
		} else if item.Required {
			p.RequiredPending++
		}
	}
	if p.Total > 0 {
		p.Percent = p.Done * 100 / p.Total
	}
	p.CanComplete = p.RequiredPending == 0
	return p
}

func detail(c *models.ProcurementCase) *CaseDetail {
	return &CaseDetail{ProcurementCase: c, Progress: CaseProgress(c.Items)}
}

// Create opens a draft case with the checklist of its modality
func (s *ProcurementService) Create(ctx context.Context, req *CreateCaseRequest) (*CaseDetail, error) {
	if err := validation.Struct(s.validator, req); err != nil {
		return nil, err
	}
	number := strings.TrimSpace(req.ProcessNumber)
	if !processNumberPattern.MatchString(number) {
		return nil, apperrors.NewValidationError("process_number", "must look like NNNNN/YYYY")
	}
	if req.EstimatedValue.IsNegative() {
		return nil, apperrors.NewValidationError("estimated_value", "must not be negative")
	}

	existing, err := s.repo.GetByProcessNumber(number)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing case: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrProcurementExists
	}

	modality := models.Modality(req.Modality)
	who := actor(ctx)
	items := ChecklistTemplate(modality)
	for i := range items {
		items[i].CreatedBy = who
		items[i].UpdatedBy = who
	}

	c := &models.ProcurementCase{
		ProcessNumber:  number,
		Object:         strings.TrimSpace(req.Object),
		Modality:       modality,
		EstimatedValue: req.EstimatedValue.Round(2),
		Status:         models.ProcurementStatusDraft,
		UnitID:         req.UnitID,
		OpenedAt:       s.now(),
		Items:          items,
	}
	c.CreatedBy = who
	c.UpdatedBy = who

	if err := s.repo.Create(c); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrProcurementExists
		}
		return nil, fmt.Errorf("failed to create procurement case: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"process_number": c.ProcessNumber, "modality": c.Modality,
	}).Info("procurement case opened")
	return detail(c), nil
}

// GetByID retrieves a case with its checklist
func (s *ProcurementService) GetByID(id uuid.UUID) (*CaseDetail, error) {
	c, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookup(err, apperrors.ErrProcurementNotFound, "procurement case")
	}
	return detail(c), nil
}

// List returns a page of cases, most recently opened first
func (s *ProcurementService) List(filter repository.ProcurementFilter, page, pageSize int) (*ListResponse[models.ProcurementCase], error) {
	page, pageSize = NormalizePage(page, pageSize)
	cases, total, err := s.repo.List(filter, pageSize, pageOffset(page, pageSize))
	if err != nil {
		return nil, fmt.Errorf("failed to list procurement cases: %w", err)
	}
	return newList(cases, total, page, pageSize), nil
}

// Update edits a case that is neither completed nor cancelled
func (s *ProcurementService) Update(ctx context.Context, id uuid.UUID, req *UpdateCaseRequest) (*CaseDetail, error) {
	if err := validation.Struct(s.validator, req); err != nil {
		return nil, err
	}
	if req.EstimatedValue.IsNegative() {
		return nil, apperrors.NewValidationError("estimated_value", "must not be negative")
	}
	if req.AwardedValue.Valid && req.AwardedValue.Decimal.IsNegative() {
		return nil, apperrors.NewValidationError("awarded_value", "must not be negative")
	}

	c, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookup(err, apperrors.ErrProcurementNotFound, "procurement case")
	}
	if isFinished(c.Status) {
		return nil, apperrors.NewConflictError("completed or cancelled cases cannot be edited")
	}

	c.Object = strings.TrimSpace(req.Object)
	c.EstimatedValue = req.EstimatedValue.Round(2)
	c.AwardedValue = roundNull(req.AwardedValue)
	c.UnitID = req.UnitID
	c.UpdatedBy = actor(ctx)

	if err := s.repo.Update(c); err != nil {
		return nil, fmt.Errorf("failed to update procurement case: %w", err)
	}
	return detail(c), nil
}

// Delete removes a draft case
func (s *ProcurementService) Delete(ctx context.Context, id uuid.UUID) error {
	c, err := s.repo.GetByID(id)
	if err != nil {
		return lookup(err, apperrors.ErrProcurementNotFound, "procurement case")
	}
	if c.Status != models.ProcurementStatusDraft {
		return apperrors.NewConflictError("only draft cases can be deleted; cancel the case instead")
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete procurement case: %w", err)
	}
	logger.WithContext(ctx).WithField("process_number", c.ProcessNumber).Info("procurement case deleted")
	return nil
}

// Start moves a draft case to in progress
func (s *ProcurementService) Start(ctx context.Context, id uuid.UUID) (*CaseDetail, error) {
	c, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookup(err, apperrors.ErrProcurementNotFound, "procurement case")
	}
	if c.Status != models.ProcurementStatusDraft {
		return nil, apperrors.ErrInvalidStatusTransition
	}
	c.Status = models.ProcurementStatusInProgress
	c.UpdatedBy = actor(ctx)
	if err := s.repo.Update(c); err != nil {
		return nil, fmt.Errorf("failed to start procurement case: %w", err)
	}
	return detail(c), nil
}

// ToggleItem marks a checklist item done or not done. Only cases in
// progress accept checklist changes.
func (s *ProcurementService) ToggleItem(ctx context.Context, itemID uuid.UUID, req *ToggleItemRequest) (*models.ChecklistItem, error) {
	item, err := s.repo.GetItem(itemID)
	if err != nil {
		return nil, lookup(err, apperrors.ErrChecklistItemNotFound, "checklist item")
	}
	c, err := s.repo.GetByID(item.CaseID)
	if err != nil {
		return nil, lookup(err, apperrors.ErrProcurementNotFound, "procurement case")
	}
	if c.Status != models.ProcurementStatusInProgress {
		return nil, apperrors.ErrProcurementNotEditable
	}

	who := actor(ctx)
	item.Done = req.Done
	if req.Done {
		now := s.now()
		item.DoneAt = &now
		item.DoneBy = who
	} else {
		item.DoneAt = nil
		item.DoneBy = ""
	}
	item.UpdatedBy = who

	if err := s.repo.UpdateItem(item); err != nil {
		return nil, fmt.Errorf("failed to update checklist item: %w", err)
	}
	return item, nil
}

// Complete finishes a case once every required checklist item is done
func (s *ProcurementService) Complete(ctx context.Context, id uuid.UUID, req *CompleteCaseRequest) (*CaseDetail, error) {
	c, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookup(err, apperrors.ErrProcurementNotFound, "procurement case")
	}
	if c.Status != models.ProcurementStatusInProgress {
		return nil, apperrors.ErrInvalidStatusTransition
	}
	if !CaseProgress(c.Items).CanComplete {
		return nil, apperrors.ErrChecklistIncomplete
	}
	if req != nil && req.AwardedValue.Valid {
		if req.AwardedValue.Decimal.IsNegative() {
			return nil, apperrors.NewValidationError("awarded_value", "must not be negative")
		}
		c.AwardedValue = roundNull(req.AwardedValue)
	}

	now := s.now()
	c.Status = models.ProcurementStatusCompleted
	c.CompletedAt = &now
	c.UpdatedBy = actor(ctx)
	if err := s.repo.Update(c); err != nil {
		return nil, fmt.Errorf("failed to complete procurement case: %w", err)
	}

	logger.WithContext(ctx).WithField("process_number", c.ProcessNumber).Info("procurement case completed")
	return detail(c), nil
}

// Cancel cancels a draft or in-progress case
func (s *ProcurementService) Cancel(ctx context.Context, id uuid.UUID, req *CancelCaseRequest) (*CaseDetail, error) {
	if err := validation.Struct(s.validator, req); err != nil {
		return nil, err
	}
	c, err := s.repo.GetByID(id)
	if err != nil {
		return nil, lookup(err, apperrors.ErrProcurementNotFound, "procurement case")
	}
	if isFinished(c.Status) {
		return nil, apperrors.ErrInvalidStatusTransition
	}

	now := s.now()
	c.Status = models.ProcurementStatusCancelled
	c.CancelledAt = &now
	c.CancelReason = strings.TrimSpace(req.Reason)
	c.UpdatedBy = actor(ctx)
	if err := s.repo.Update(c); err != nil {
		return nil, fmt.Errorf("failed to cancel procurement case: %w", err)
	}

	logger.WithContext(ctx).WithField("process_number", c.ProcessNumber).Info("procurement case cancelled")
	return detail(c), nil
}

func isFinished(status models.ProcurementStatus) bool {
	return status == models.ProcurementStatusCompleted || status == models.ProcurementStatusCancelled
}

func roundNull(d decimal.NullDecimal) decimal.NullDecimal {
	if !d.Valid {
		return d
	}
	return decimal.NewNullDecimal(d.Decimal.Round(2))
}
