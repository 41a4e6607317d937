package service_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"institute-portal-backend/internal/database/models"
	apperrors "institute-portal-backend/internal/errors"
	"institute-portal-backend/internal/mocks"
	"institute-portal-backend/internal/service"
	"institute-portal-backend/internal/validation"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

const (
	validCPF      = "52998224725"
	otherValidCPF = "11144477735"
)

var protocolRE = regexp.MustCompile(`^\d{8}-[ABCDEFGHJKLMNPQRSTUVWXYZ23456789]{6}$`)

func TestNewProtocolFormat(t *testing.T) {
	now := time.Date(2024, 5, 7, 15, 0, 0, 0, time.UTC)
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		p, err := service.NewProtocol(now)
		require.NoError(t, err)
		assert.Regexp(t, protocolRE, p)
		assert.Equal(t, "20240507", p[:8])
		seen[p] = true
	}
	assert.Greater(t, len(seen), 1)
}

// PreRegistrationServiceTestSuite defines the test suite for PreRegistrationService
type PreRegistrationServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	regs     *mocks.MockPreRegistrationRepositoryInterface
	schools  *mocks.MockSchoolRepositoryInterface
	managers *mocks.MockSchoolManagerRepositoryInterface
	svc      *service.PreRegistrationService
	now      time.Time
	school   *models.School
}

func (suite *PreRegistrationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.regs = mocks.NewMockPreRegistrationRepositoryInterface(suite.ctrl)
	suite.schools = mocks.NewMockSchoolRepositoryInterface(suite.ctrl)
	suite.managers = mocks.NewMockSchoolManagerRepositoryInterface(suite.ctrl)
	suite.svc = service.NewPreRegistrationService(suite.regs, suite.schools, suite.managers, validation.New())

	suite.now = time.Date(2024, 5, 7, 10, 30, 0, 0, time.UTC)
	suite.svc.SetClock(func() time.Time { return suite.now })

	suite.school = &models.School{INEP: "53012345", Name: "CEM 01 de Brasília", State: "DF"}
	suite.school.ID = uuid.New()
}

func (suite *PreRegistrationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *PreRegistrationServiceTestSuite) managerRequest() *service.SubmitPreRegistrationRequest {
	return &service.SubmitPreRegistrationRequest{
		Kind:       "school_manager",
		FullName:   "Carla Mendes",
		CPF:        "529.982.247-25",
		Email:      "Carla.Mendes@Escola.df.gov.br",
		Phone:      "(61) 99876-5432",
		SchoolINEP: suite.school.INEP,
	}
}

func (suite *PreRegistrationServiceTestSuite) TestSubmitRejectsInvalidCPF() {
	req := suite.managerRequest()
	req.CPF = "529.982.247-24"

	_, err := suite.svc.Submit(context.Background(), req)
	suite.True(apperrors.IsValidation(err))
}

func (suite *PreRegistrationServiceTestSuite) TestSubmitSchoolManagerNeedsINEP() {
	req := suite.managerRequest()
	req.SchoolINEP = ""

	_, err := suite.svc.Submit(context.Background(), req)
	suite.True(apperrors.IsValidation(err))
}

func (suite *PreRegistrationServiceTestSuite) TestSubmitUnknownSchool() {
	suite.schools.EXPECT().GetByINEP(suite.school.INEP).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.svc.Submit(context.Background(), suite.managerRequest())
	suite.True(apperrors.IsValidation(err))
}

func (suite *PreRegistrationServiceTestSuite) TestSubmitDuplicatePending() {
	suite.schools.EXPECT().GetByINEP(suite.school.INEP).Return(suite.school, nil)
	suite.regs.EXPECT().FindPending(validCPF, models.PreRegistrationKindSchoolManager).
		Return(&models.PreRegistration{Protocol: "20240501-ABCDEF"}, nil)

	_, err := suite.svc.Submit(context.Background(), suite.managerRequest())
	suite.ErrorIs(err, apperrors.ErrPreRegistrationExists)
}

func (suite *PreRegistrationServiceTestSuite) TestSubmitNormalizesAndRetriesProtocol() {
	protocols := []string{"20240507-AAAAAA", "20240507-BBBBBB"}
	suite.svc.SetProtocol(func(time.Time) (string, error) {
		p := protocols[0]
		protocols = protocols[1:]
		return p, nil
	})

	suite.schools.EXPECT().GetByINEP(suite.school.INEP).Return(suite.school, nil)
	suite.regs.EXPECT().FindPending(validCPF, models.PreRegistrationKindSchoolManager).Return(nil, gorm.ErrRecordNotFound)
	gomock.InOrder(
		suite.regs.EXPECT().Create(gomock.Any()).Return(&pgconn.PgError{Code: "23505"}),
		suite.regs.EXPECT().Create(gomock.Any()).DoAndReturn(func(reg *models.PreRegistration) error {
			assert.Equal(suite.T(), validCPF, reg.CPF)
			assert.Equal(suite.T(), "carla.mendes@escola.df.gov.br", reg.Email)
			assert.Equal(suite.T(), "61998765432", reg.Phone)
			assert.Equal(suite.T(), models.PreRegistrationStatusPending, reg.Status)
			assert.Equal(suite.T(), "public", reg.CreatedBy)
			return nil
		}),
	)

	resp, err := suite.svc.Submit(context.Background(), suite.managerRequest())
	suite.Require().NoError(err)
	suite.Equal("20240507-BBBBBB", resp.Protocol)
	suite.Equal("pending", resp.Status)
}

func (suite *PreRegistrationServiceTestSuite) TestSubmitEmployeeDropsSchool() {
	req := suite.managerRequest()
	req.Kind = "employee"
	req.Position = "Professor"

	suite.regs.EXPECT().FindPending(validCPF, models.PreRegistrationKindEmployee).Return(nil, nil)
	suite.regs.EXPECT().Create(gomock.Any()).DoAndReturn(func(reg *models.PreRegistration) error {
		assert.Empty(suite.T(), reg.SchoolINEP)
		assert.Regexp(suite.T(), protocolRE, reg.Protocol)
		return nil
	})

	_, err := suite.svc.Submit(context.Background(), req)
	suite.NoError(err)
}

func (suite *PreRegistrationServiceTestSuite) TestStatusCPFMismatchIsNotFound() {
	suite.regs.EXPECT().GetByProtocol("20240507-ABCDEF").
		Return(&models.PreRegistration{Protocol: "20240507-ABCDEF", CPF: otherValidCPF}, nil)

	_, err := suite.svc.Status(" 20240507-abcdef ", "529.982.247-25")
	suite.ErrorIs(err, apperrors.ErrPreRegistrationNotFound)
}

func (suite *PreRegistrationServiceTestSuite) TestStatusInvalidCPF() {
	_, err := suite.svc.Status("20240507-ABCDEF", "123")
	suite.True(apperrors.IsValidation(err))
}

func (suite *PreRegistrationServiceTestSuite) TestStatusFound() {
	suite.regs.EXPECT().GetByProtocol("20240507-ABCDEF").Return(&models.PreRegistration{
		Protocol:     "20240507-ABCDEF",
		CPF:          validCPF,
		Kind:         models.PreRegistrationKindEmployee,
		Status:       models.PreRegistrationStatusRejected,
		RejectReason: "documentação incompleta",
	}, nil)

	out, err := suite.svc.Status("20240507-ABCDEF", validCPF)
	suite.Require().NoError(err)
	suite.Equal("rejected", out.Status)
	suite.Equal("documentação incompleta", out.RejectReason)
}

func (suite *PreRegistrationServiceTestSuite) pendingManager() *models.PreRegistration {
	reg := &models.PreRegistration{
		Protocol:   "20240501-ABCDEF",
		Kind:       models.PreRegistrationKindSchoolManager,
		FullName:   "Carla Mendes",
		CPF:        validCPF,
		Email:      "carla@escola.df.gov.br",
		SchoolINEP: suite.school.INEP,
		Status:     models.PreRegistrationStatusPending,
	}
	reg.ID = uuid.New()
	return reg
}

func (suite *PreRegistrationServiceTestSuite) TestApproveSchoolManagerIssuesCredential() {
	reg := suite.pendingManager()
	suite.regs.EXPECT().GetByID(reg.ID).Return(reg, nil)
	suite.schools.EXPECT().GetByINEP(suite.school.INEP).Return(suite.school, nil)
	suite.managers.EXPECT().GetByCPF(validCPF).Return(nil, gorm.ErrRecordNotFound)
	suite.managers.EXPECT().NextCredentialSequence(2024).Return(42, nil)
	suite.regs.EXPECT().ApproveWithManager(reg, gomock.Any()).Return(nil)

	out, err := suite.svc.Approve(actorCtx("credenciamento@instituto.gov.br"), reg.ID)
	suite.Require().NoError(err)
	suite.Require().NotNil(out.Manager)
	suite.Equal("CRED-2024-00042", out.Manager.CredentialNumber)
	suite.Equal(time.Date(2026, 5, 7, 0, 0, 0, 0, time.UTC), out.Manager.ValidUntil)
	suite.Equal(suite.school.ID, out.Manager.SchoolID)
	suite.Equal(models.ManagerStatusActive, out.Manager.Status)
	suite.Equal(&reg.ID, out.Manager.PreRegistrationID)
	suite.Equal(models.PreRegistrationStatusApproved, out.PreRegistration.Status)
	suite.Equal("credenciamento@instituto.gov.br", out.PreRegistration.ReviewedBy)
}

func (suite *PreRegistrationServiceTestSuite) TestApproveRetriesTakenCredentialNumber() {
	reg := suite.pendingManager()
	taken := &pgconn.PgError{Code: "23505", ConstraintName: "idx_school_managers_credential_number"}
	suite.regs.EXPECT().GetByID(reg.ID).Return(reg, nil)
	suite.schools.EXPECT().GetByINEP(suite.school.INEP).Return(suite.school, nil)
	suite.managers.EXPECT().GetByCPF(validCPF).Return(nil, gorm.ErrRecordNotFound)
	gomock.InOrder(
		suite.managers.EXPECT().NextCredentialSequence(2024).Return(42, nil),
		suite.regs.EXPECT().ApproveWithManager(reg, gomock.Any()).Return(taken),
		suite.managers.EXPECT().NextCredentialSequence(2024).Return(43, nil),
		suite.regs.EXPECT().ApproveWithManager(reg, gomock.Any()).Return(nil),
	)

	out, err := suite.svc.Approve(context.Background(), reg.ID)
	suite.Require().NoError(err)
	suite.Equal("CRED-2024-00043", out.Manager.CredentialNumber)
}

func (suite *PreRegistrationServiceTestSuite) TestApproveConcurrentSameCPF() {
	reg := suite.pendingManager()
	suite.regs.EXPECT().GetByID(reg.ID).Return(reg, nil)
	suite.schools.EXPECT().GetByINEP(suite.school.INEP).Return(suite.school, nil)
	suite.managers.EXPECT().GetByCPF(validCPF).Return(nil, gorm.ErrRecordNotFound)
	suite.managers.EXPECT().NextCredentialSequence(2024).Return(42, nil)
	suite.regs.EXPECT().ApproveWithManager(reg, gomock.Any()).
		Return(&pgconn.PgError{Code: "23505", ConstraintName: "idx_school_managers_cpf"})

	_, err := suite.svc.Approve(context.Background(), reg.ID)
	suite.ErrorIs(err, apperrors.ErrSchoolManagerExists)
}

func (suite *PreRegistrationServiceTestSuite) TestApproveManagerAlreadyCredentialed() {
	reg := suite.pendingManager()
	suite.regs.EXPECT().GetByID(reg.ID).Return(reg, nil)
	suite.schools.EXPECT().GetByINEP(suite.school.INEP).Return(suite.school, nil)
	suite.managers.EXPECT().GetByCPF(validCPF).Return(&models.SchoolManager{CPF: validCPF}, nil)

	_, err := suite.svc.Approve(context.Background(), reg.ID)
	suite.ErrorIs(err, apperrors.ErrSchoolManagerExists)
}

func (suite *PreRegistrationServiceTestSuite) TestApproveSchoolGone() {
	reg := suite.pendingManager()
	suite.regs.EXPECT().GetByID(reg.ID).Return(reg, nil)
	suite.schools.EXPECT().GetByINEP(suite.school.INEP).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.svc.Approve(context.Background(), reg.ID)
	suite.True(apperrors.IsConflict(err))
}

func (suite *PreRegistrationServiceTestSuite) TestApproveEmployeeOnlyRecordsReview() {
	reg := suite.pendingManager()
	reg.Kind = models.PreRegistrationKindEmployee
	suite.regs.EXPECT().GetByID(reg.ID).Return(reg, nil)
	suite.regs.EXPECT().Update(reg).Return(nil)

	out, err := suite.svc.Approve(context.Background(), reg.ID)
	suite.Require().NoError(err)
	suite.Nil(out.Manager)
	suite.Equal(suite.now, *out.PreRegistration.ReviewedAt)
}

func (suite *PreRegistrationServiceTestSuite) TestReviewedTwiceIsConflict() {
	reg := suite.pendingManager()
	reg.Status = models.PreRegistrationStatusApproved
	suite.regs.EXPECT().GetByID(reg.ID).Return(reg, nil).Times(2)

	_, err := suite.svc.Approve(context.Background(), reg.ID)
	suite.ErrorIs(err, apperrors.ErrPreRegistrationReviewed)

	_, err = suite.svc.Reject(context.Background(), reg.ID, &service.RejectPreRegistrationRequest{Reason: "duplicado"})
	suite.ErrorIs(err, apperrors.ErrPreRegistrationReviewed)
}

func (suite *PreRegistrationServiceTestSuite) TestRejectNeedsReason() {
	_, err := suite.svc.Reject(context.Background(), uuid.New(), &service.RejectPreRegistrationRequest{})
	suite.True(apperrors.IsValidation(err))
}

func (suite *PreRegistrationServiceTestSuite) TestReject() {
	reg := suite.pendingManager()
	suite.regs.EXPECT().GetByID(reg.ID).Return(reg, nil)
	suite.regs.EXPECT().Update(reg).Return(nil)

	out, err := suite.svc.Reject(actorCtx("credenciamento@instituto.gov.br"), reg.ID,
		&service.RejectPreRegistrationRequest{Reason: " CPF não confere "})
	suite.Require().NoError(err)
	suite.Equal(models.PreRegistrationStatusRejected, out.Status)
	suite.Equal("CPF não confere", out.RejectReason)
}

func TestPreRegistrationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PreRegistrationServiceTestSuite))
}

// SchoolManagerServiceTestSuite defines the test suite for SchoolManagerService
type SchoolManagerServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	managers *mocks.MockSchoolManagerRepositoryInterface
	schools  *mocks.MockSchoolRepositoryInterface
	svc      *service.SchoolManagerService
}

func (suite *SchoolManagerServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.managers = mocks.NewMockSchoolManagerRepositoryInterface(suite.ctrl)
	suite.schools = mocks.NewMockSchoolRepositoryInterface(suite.ctrl)
	suite.svc = service.NewSchoolManagerService(suite.managers, suite.schools, validation.New())
	suite.svc.SetClock(func() time.Time { return time.Date(2025, 2, 10, 9, 0, 0, 0, time.UTC) })
}

func (suite *SchoolManagerServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *SchoolManagerServiceTestSuite) manager(status models.ManagerStatus) *models.SchoolManager {
	m := &models.SchoolManager{CPF: validCPF, CredentialNumber: "CRED-2023-00007", Status: status,
		ValidUntil: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)}
	m.ID = uuid.New()
	return m
}

func (suite *SchoolManagerServiceTestSuite) TestCreate() {
	schoolID := uuid.New()
	suite.managers.EXPECT().GetByCPF(validCPF).Return(nil, gorm.ErrRecordNotFound)
	suite.schools.EXPECT().GetByID(schoolID).Return(&models.School{}, nil)
	suite.managers.EXPECT().NextCredentialSequence(2025).Return(1, nil)
	suite.managers.EXPECT().Create(gomock.Any()).Return(nil)

	m, err := suite.svc.Create(context.Background(), &service.CreateManagerRequest{
		CPF: "529.982.247-25", FullName: "Carla Mendes", SchoolID: schoolID,
	})
	suite.Require().NoError(err)
	suite.Equal("CRED-2025-00001", m.CredentialNumber)
	suite.Equal(time.Date(2027, 2, 10, 0, 0, 0, 0, time.UTC), m.ValidUntil)
}

func (suite *SchoolManagerServiceTestSuite) TestCreateGivesUpOnCredentialContention() {
	schoolID := uuid.New()
	taken := &pgconn.PgError{Code: "23505", ConstraintName: "idx_school_managers_credential_number"}
	suite.managers.EXPECT().GetByCPF(validCPF).Return(nil, gorm.ErrRecordNotFound)
	suite.schools.EXPECT().GetByID(schoolID).Return(&models.School{}, nil)
	suite.managers.EXPECT().NextCredentialSequence(2025).Return(1, nil).Times(5)
	suite.managers.EXPECT().Create(gomock.Any()).Return(taken).Times(5)

	_, err := suite.svc.Create(context.Background(), &service.CreateManagerRequest{
		CPF: validCPF, FullName: "Carla Mendes", SchoolID: schoolID,
	})
	suite.Require().Error(err)
	suite.NotErrorIs(err, apperrors.ErrSchoolManagerExists)
	suite.Contains(err.Error(), "credential number")
}

func (suite *SchoolManagerServiceTestSuite) TestCreateDuplicateCPF() {
	suite.managers.EXPECT().GetByCPF(validCPF).Return(suite.manager(models.ManagerStatusActive), nil)

	_, err := suite.svc.Create(context.Background(), &service.CreateManagerRequest{
		CPF: validCPF, FullName: "Carla Mendes", SchoolID: uuid.New(),
	})
	suite.ErrorIs(err, apperrors.ErrSchoolManagerExists)
}

func (suite *SchoolManagerServiceTestSuite) TestSuspendAndReactivate() {
	m := suite.manager(models.ManagerStatusActive)
	suite.managers.EXPECT().GetByID(m.ID).Return(m, nil).Times(3)
	suite.managers.EXPECT().Update(m).Return(nil).Times(2)

	out, err := suite.svc.Suspend(context.Background(), m.ID)
	suite.Require().NoError(err)
	suite.Equal(models.ManagerStatusSuspended, out.Status)

	_, err = suite.svc.Suspend(context.Background(), m.ID)
	suite.ErrorIs(err, apperrors.ErrInvalidStatusTransition)

	out, err = suite.svc.Reactivate(context.Background(), m.ID)
	suite.Require().NoError(err)
	suite.Equal(models.ManagerStatusActive, out.Status)
}

func (suite *SchoolManagerServiceTestSuite) TestRenewKeepsNumber() {
	m := suite.manager(models.ManagerStatusActive)
	suite.managers.EXPECT().GetByID(m.ID).Return(m, nil)
	suite.managers.EXPECT().Update(m).Return(nil)

	out, err := suite.svc.Renew(context.Background(), m.ID)
	suite.Require().NoError(err)
	suite.Equal("CRED-2023-00007", out.CredentialNumber)
	suite.Equal(time.Date(2027, 2, 10, 0, 0, 0, 0, time.UTC), out.ValidUntil)
}

func (suite *SchoolManagerServiceTestSuite) TestRenewSuspended() {
	m := suite.manager(models.ManagerStatusSuspended)
	suite.managers.EXPECT().GetByID(m.ID).Return(m, nil)

	_, err := suite.svc.Renew(context.Background(), m.ID)
	suite.True(apperrors.IsConflict(err))
}

func TestSchoolManagerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SchoolManagerServiceTestSuite))
}
