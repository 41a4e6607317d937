package service_test

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"institute-portal-backend/internal/database/models"
	apperrors "institute-portal-backend/internal/errors"
	"institute-portal-backend/internal/mocks"
	"institute-portal-backend/internal/service"
	"institute-portal-backend/internal/storage"
	"institute-portal-backend/internal/validation"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// PortariaServiceTestSuite defines the test suite for PortariaService
type PortariaServiceTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	repo      *mocks.MockPortariaRepositoryInterface
	employees *mocks.MockEmployeeRepositoryInterface
	files     *storage.FileStore
	svc       *service.PortariaService
	now       time.Time
}

func (suite *PortariaServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.repo = mocks.NewMockPortariaRepositoryInterface(suite.ctrl)
	suite.employees = mocks.NewMockEmployeeRepositoryInterface(suite.ctrl)
	suite.files = storage.NewFileStore(afero.NewMemMapFs(), 1<<20)
	suite.svc = service.NewPortariaService(suite.repo, suite.employees, suite.files, validation.New())
	suite.now = time.Date(2024, 9, 12, 11, 0, 0, 0, time.UTC)
	suite.svc.SetClock(func() time.Time { return suite.now })
}

func (suite *PortariaServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *PortariaServiceTestSuite) portaria(status models.PortariaStatus) *models.Portaria {
	p := &models.Portaria{Number: 17, Year: 2024, Subject: "Designa comissão", Status: status}
	p.ID = uuid.New()
	return p
}

func (suite *PortariaServiceTestSuite) TestCreateTakesNextNumberOfCurrentYear() {
	suite.repo.EXPECT().NextNumber(2024).Return(18, nil)
	suite.repo.EXPECT().Create(gomock.Any()).Return(nil)

	p, err := suite.svc.Create(actorCtx("gabinete@instituto.gov.br"), &service.CreatePortariaRequest{Subject: " Designa comissão "})
	suite.Require().NoError(err)
	suite.Equal(18, p.Number)
	suite.Equal(2024, p.Year)
	suite.Equal("Designa comissão", p.Subject)
	suite.Equal(models.PortariaStatusDraft, p.Status)
}

func (suite *PortariaServiceTestSuite) TestCreateExplicitNumberTaken() {
	suite.repo.EXPECT().GetByNumber(5, 2023).Return(suite.portaria(models.PortariaStatusPublished), nil)

	_, err := suite.svc.Create(context.Background(), &service.CreatePortariaRequest{Number: 5, Year: 2023, Subject: "Nomeia"})
	suite.ErrorIs(err, apperrors.ErrPortariaExists)
}

func (suite *PortariaServiceTestSuite) TestCreateUnknownEmployee() {
	id := uuid.New()
	suite.employees.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.svc.Create(context.Background(), &service.CreatePortariaRequest{Subject: "Nomeia", EmployeeID: &id})
	suite.True(apperrors.IsValidation(err))
}

func (suite *PortariaServiceTestSuite) TestOnlyDraftsAreEditable() {
	p := suite.portaria(models.PortariaStatusPublished)
	suite.repo.EXPECT().GetByID(p.ID).Return(p, nil).Times(2)

	_, err := suite.svc.Update(context.Background(), p.ID, &service.UpdatePortariaRequest{Subject: "Outro"})
	suite.ErrorIs(err, apperrors.ErrPortariaNotEditable)

	err = suite.svc.Delete(context.Background(), p.ID)
	suite.ErrorIs(err, apperrors.ErrPortariaNotEditable)
}

func (suite *PortariaServiceTestSuite) TestPublishThenRevoke() {
	p := suite.portaria(models.PortariaStatusDraft)
	suite.repo.EXPECT().GetByID(p.ID).Return(p, nil).Times(3)
	suite.repo.EXPECT().Update(p).Return(nil).Times(2)

	out, err := suite.svc.Publish(context.Background(), p.ID)
	suite.Require().NoError(err)
	suite.Equal(models.PortariaStatusPublished, out.Status)
	suite.Equal(suite.now, *out.PublishedAt)

	_, err = suite.svc.Publish(context.Background(), p.ID)
	suite.ErrorIs(err, apperrors.ErrInvalidStatusTransition)

	out, err = suite.svc.Revoke(context.Background(), p.ID, &service.RevokePortariaRequest{Reason: "tornada sem efeito"})
	suite.Require().NoError(err)
	suite.Equal(models.PortariaStatusRevoked, out.Status)
	suite.Equal("tornada sem efeito", out.RevokeReason)
}

func (suite *PortariaServiceTestSuite) TestRevokeDraft() {
	p := suite.portaria(models.PortariaStatusDraft)
	suite.repo.EXPECT().GetByID(p.ID).Return(p, nil)

	_, err := suite.svc.Revoke(context.Background(), p.ID, &service.RevokePortariaRequest{Reason: "x"})
	suite.ErrorIs(err, apperrors.ErrInvalidStatusTransition)
}

func (suite *PortariaServiceTestSuite) TestAttachDocumentReplacesPrevious() {
	p := suite.portaria(models.PortariaStatusPublished)
	old, err := suite.files.Save(storage.CategoryDocuments, "v1.pdf", strings.NewReader("%PDF-1"))
	suite.Require().NoError(err)
	p.DocumentPath = old

	suite.repo.EXPECT().GetByID(p.ID).Return(p, nil).Times(2)
	suite.repo.EXPECT().Update(p).Return(nil)

	out, err := suite.svc.AttachDocument(context.Background(), p.ID, "Portaria 17.pdf", strings.NewReader("%PDF-2"))
	suite.Require().NoError(err)
	suite.NotEqual(old, out.DocumentPath)

	_, err = suite.files.Open(old)
	suite.ErrorIs(err, apperrors.ErrFileNotFound)

	f, got, err := suite.svc.OpenPublicDocument(p.ID)
	suite.Require().NoError(err)
	defer f.Close()
	body, err := io.ReadAll(f)
	suite.Require().NoError(err)
	suite.Equal("%PDF-2", string(body))
	suite.Equal(p.ID, got.ID)
}

func (suite *PortariaServiceTestSuite) TestAttachDocumentRejectsNonPDF() {
	p := suite.portaria(models.PortariaStatusDraft)
	suite.repo.EXPECT().GetByID(p.ID).Return(p, nil)

	_, err := suite.svc.AttachDocument(context.Background(), p.ID, "portaria.docx", strings.NewReader("x"))
	suite.ErrorIs(err, apperrors.ErrUnsupportedFileType)
}

func (suite *PortariaServiceTestSuite) TestDraftDocumentIsNotPublic() {
	p := suite.portaria(models.PortariaStatusDraft)
	p.DocumentPath = "documents/2024/09/x.pdf"
	suite.repo.EXPECT().GetByID(p.ID).Return(p, nil)

	_, _, err := suite.svc.OpenPublicDocument(p.ID)
	suite.ErrorIs(err, apperrors.ErrFileNotFound)
}

func TestPortariaServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PortariaServiceTestSuite))
}
