package service_test

import (
	"context"
	"testing"
	"time"

	"institute-portal-backend/internal/database/models"
	apperrors "institute-portal-backend/internal/errors"
	"institute-portal-backend/internal/mocks"
	"institute-portal-backend/internal/service"
	"institute-portal-backend/internal/validation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func TestChecklistTemplate(t *testing.T) {
	items := service.ChecklistTemplate(models.ModalityDispensa)
	if assert.NotEmpty(t, items) {
		assert.Equal(t, 1, items[0].Step)
		assert.Equal(t, "Documento de formalização da demanda", items[0].Title)
		assert.Equal(t, len(items), items[len(items)-1].Step)
		assert.False(t, items[len(items)-1].Required)
	}
	assert.Nil(t, service.ChecklistTemplate(models.Modality("leilao")))
}

func TestCaseProgress(t *testing.T) {
	p := service.CaseProgress([]models.ChecklistItem{
		{Required: true, Done: true},
		{Required: true},
		{Required: false},
		{Required: false, Done: true},
	})
	assert.Equal(t, 2, p.Done)
	assert.Equal(t, 4, p.Total)
	assert.Equal(t, 50, p.Percent)
	assert.Equal(t, 1, p.RequiredPending)
	assert.False(t, p.CanComplete)

	assert.True(t, service.CaseProgress(nil).CanComplete)
}

// ProcurementServiceTestSuite defines the test suite for ProcurementService
type ProcurementServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller
	repo *mocks.MockProcurementRepositoryInterface
	svc  *service.ProcurementService
	now  time.Time
}

func (suite *ProcurementServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.repo = mocks.NewMockProcurementRepositoryInterface(suite.ctrl)
	suite.svc = service.NewProcurementService(suite.repo, validation.New())
	suite.now = time.Date(2024, 8, 1, 14, 0, 0, 0, time.UTC)
	suite.svc.SetClock(func() time.Time { return suite.now })
}

func (suite *ProcurementServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ProcurementServiceTestSuite) inProgress(items ...models.ChecklistItem) *models.ProcurementCase {
	c := &models.ProcurementCase{ProcessNumber: "00042/2024", Status: models.ProcurementStatusInProgress, Items: items}
	c.ID = uuid.New()
	return c
}

func (suite *ProcurementServiceTestSuite) TestCreateSeedsChecklist() {
	suite.repo.EXPECT().GetByProcessNumber("00042/2024").Return(nil, gorm.ErrRecordNotFound)
	suite.repo.EXPECT().Create(gomock.Any()).Return(nil)

	out, err := suite.svc.Create(actorCtx("compras@instituto.gov.br"), &service.CreateCaseRequest{
		ProcessNumber:  " 00042/2024 ",
		Object:         "Aquisição de uniformes",
		Modality:       "pregao",
		EstimatedValue: dec("150000.005"),
	})
	suite.Require().NoError(err)
	suite.Equal(models.ProcurementStatusDraft, out.Status)
	suite.Equal("150000.01", out.EstimatedValue.StringFixed(2))
	suite.Equal(suite.now, out.OpenedAt)
	suite.Len(out.Items, len(service.ChecklistTemplate(models.ModalityPregao)))
	suite.Equal("compras@instituto.gov.br", out.Items[0].CreatedBy)
	suite.Equal(0, out.Progress.Done)
	suite.False(out.Progress.CanComplete)
}

func (suite *ProcurementServiceTestSuite) TestCreateRejectsBadProcessNumber() {
	_, err := suite.svc.Create(context.Background(), &service.CreateCaseRequest{
		ProcessNumber: "42/24", Object: "Obj", Modality: "pregao",
	})
	suite.True(apperrors.IsValidation(err))
}

func (suite *ProcurementServiceTestSuite) TestCreateDuplicate() {
	suite.repo.EXPECT().GetByProcessNumber("00042/2024").Return(&models.ProcurementCase{}, nil)

	_, err := suite.svc.Create(context.Background(), &service.CreateCaseRequest{
		ProcessNumber: "00042/2024", Object: "Obj", Modality: "dispensa",
	})
	suite.ErrorIs(err, apperrors.ErrProcurementExists)
}

func (suite *ProcurementServiceTestSuite) TestCompleteRequiresChecklist() {
	c := suite.inProgress(
		models.ChecklistItem{Required: true, Done: true},
		models.ChecklistItem{Required: true},
	)
	suite.repo.EXPECT().GetByID(c.ID).Return(c, nil)

	_, err := suite.svc.Complete(context.Background(), c.ID, &service.CompleteCaseRequest{})
	suite.ErrorIs(err, apperrors.ErrChecklistIncomplete)
}

func (suite *ProcurementServiceTestSuite) TestCompleteIgnoresOptionalItems() {
	c := suite.inProgress(
		models.ChecklistItem{Required: true, Done: true},
		models.ChecklistItem{Required: false},
	)
	suite.repo.EXPECT().GetByID(c.ID).Return(c, nil)
	suite.repo.EXPECT().Update(c).Return(nil)

	out, err := suite.svc.Complete(context.Background(), c.ID, &service.CompleteCaseRequest{
		AwardedValue: decimal.NewNullDecimal(dec("98765.432")),
	})
	suite.Require().NoError(err)
	suite.Equal(models.ProcurementStatusCompleted, out.Status)
	suite.Equal("98765.43", out.AwardedValue.Decimal.StringFixed(2))
	suite.Equal(suite.now, *out.CompletedAt)
}

func (suite *ProcurementServiceTestSuite) TestCompleteFromDraft() {
	c := suite.inProgress()
	c.Status = models.ProcurementStatusDraft
	suite.repo.EXPECT().GetByID(c.ID).Return(c, nil)

	_, err := suite.svc.Complete(context.Background(), c.ID, nil)
	suite.ErrorIs(err, apperrors.ErrInvalidStatusTransition)
}

func (suite *ProcurementServiceTestSuite) TestToggleItemOnlyWhileInProgress() {
	c := suite.inProgress()
	c.Status = models.ProcurementStatusDraft
	item := &models.ChecklistItem{CaseID: c.ID, Required: true}
	item.ID = uuid.New()
	suite.repo.EXPECT().GetItem(item.ID).Return(item, nil)
	suite.repo.EXPECT().GetByID(c.ID).Return(c, nil)

	_, err := suite.svc.ToggleItem(context.Background(), item.ID, &service.ToggleItemRequest{Done: true})
	suite.ErrorIs(err, apperrors.ErrProcurementNotEditable)
}

func (suite *ProcurementServiceTestSuite) TestToggleItemRecordsWhoAndWhen() {
	c := suite.inProgress()
	item := &models.ChecklistItem{CaseID: c.ID, Required: true}
	item.ID = uuid.New()
	suite.repo.EXPECT().GetItem(item.ID).Return(item, nil).Times(2)
	suite.repo.EXPECT().GetByID(c.ID).Return(c, nil).Times(2)
	suite.repo.EXPECT().UpdateItem(item).Return(nil).Times(2)

	ctx := actorCtx("compras@instituto.gov.br")
	out, err := suite.svc.ToggleItem(ctx, item.ID, &service.ToggleItemRequest{Done: true})
	suite.Require().NoError(err)
	suite.Equal("compras@instituto.gov.br", out.DoneBy)
	suite.Equal(suite.now, *out.DoneAt)

	out, err = suite.svc.ToggleItem(ctx, item.ID, &service.ToggleItemRequest{Done: false})
	suite.Require().NoError(err)
	suite.Nil(out.DoneAt)
	suite.Empty(out.DoneBy)
}

func (suite *ProcurementServiceTestSuite) TestCancel() {
	c := suite.inProgress()
	suite.repo.EXPECT().GetByID(c.ID).Return(c, nil)
	suite.repo.EXPECT().Update(c).Return(nil)

	out, err := suite.svc.Cancel(context.Background(), c.ID, &service.CancelCaseRequest{Reason: "demanda suprimida"})
	suite.Require().NoError(err)
	suite.Equal(models.ProcurementStatusCancelled, out.Status)
	suite.Equal("demanda suprimida", out.CancelReason)
}

func (suite *ProcurementServiceTestSuite) TestCancelFinished() {
	c := suite.inProgress()
	c.Status = models.ProcurementStatusCompleted
	suite.repo.EXPECT().GetByID(c.ID).Return(c, nil)

	_, err := suite.svc.Cancel(context.Background(), c.ID, &service.CancelCaseRequest{Reason: "x"})
	suite.ErrorIs(err, apperrors.ErrInvalidStatusTransition)
}

func (suite *ProcurementServiceTestSuite) TestDeleteOnlyDrafts() {
	c := suite.inProgress()
	suite.repo.EXPECT().GetByID(c.ID).Return(c, nil)

	err := suite.svc.Delete(context.Background(), c.ID)
	suite.True(apperrors.IsConflict(err))
}

func TestProcurementServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProcurementServiceTestSuite))
}
