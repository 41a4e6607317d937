package service_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"institute-portal-backend/internal/database/models"
	apperrors "institute-portal-backend/internal/errors"
	"institute-portal-backend/internal/mocks"
	"institute-portal-backend/internal/repository"
	"institute-portal-backend/internal/service"
	"institute-portal-backend/internal/storage"
	"institute-portal-backend/internal/validation"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// CommunicationsServiceTestSuite covers news, galleries, pages and meeting minutes
type CommunicationsServiceTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	newsRepo  *mocks.MockNewsRepositoryInterface
	galleries *mocks.MockGalleryRepositoryInterface
	pages     *mocks.MockPageRepositoryInterface
	meetings  *mocks.MockMeetingRepositoryInterface
	files     *storage.FileStore
	news      *service.NewsService
	gallery   *service.GalleryService
	page      *service.PageService
	meeting   *service.MeetingService
	now       time.Time
	ctx       context.Context
}

func (suite *CommunicationsServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.newsRepo = mocks.NewMockNewsRepositoryInterface(suite.ctrl)
	suite.galleries = mocks.NewMockGalleryRepositoryInterface(suite.ctrl)
	suite.pages = mocks.NewMockPageRepositoryInterface(suite.ctrl)
	suite.meetings = mocks.NewMockMeetingRepositoryInterface(suite.ctrl)
	suite.files = storage.NewFileStore(afero.NewMemMapFs(), 1<<20)

	v := validation.New()
	suite.news = service.NewNewsService(suite.newsRepo, suite.files, v)
	suite.gallery = service.NewGalleryService(suite.galleries, suite.files, v)
	suite.page = service.NewPageService(suite.pages, v)
	suite.meeting = service.NewMeetingService(suite.meetings, suite.files, v)

	suite.now = time.Date(2024, 3, 8, 9, 30, 0, 0, time.UTC)
	suite.news.SetClock(func() time.Time { return suite.now })
	suite.meeting.SetClock(func() time.Time { return suite.now })
	suite.ctx = actorCtx("ascom@instituto.gov.br")
}

func (suite *CommunicationsServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CommunicationsServiceTestSuite) article(status models.NewsStatus) *models.NewsArticle {
	a := &models.NewsArticle{Slug: "edital-2024", Title: "Edital 2024", Status: status}
	a.ID = uuid.New()
	return a
}

func (suite *CommunicationsServiceTestSuite) TestCreateNewsDerivesSlugFromTitle() {
	taken := suite.article(models.NewsStatusPublished)
	gomock.InOrder(
		suite.newsRepo.EXPECT().GetBySlug("concurso-publico-2024").Return(taken, nil),
		suite.newsRepo.EXPECT().GetBySlug("concurso-publico-2024-2").Return(nil, gorm.ErrRecordNotFound),
	)
	suite.newsRepo.EXPECT().Create(gomock.Any()).Return(nil)

	a, err := suite.news.Create(suite.ctx, nil, &service.NewsRequest{Title: "Concurso Público 2024"})
	suite.Require().NoError(err)
	suite.Equal("concurso-publico-2024-2", a.Slug)
	suite.Equal(models.NewsStatusDraft, a.Status)
	suite.Equal("ascom@instituto.gov.br", a.CreatedBy)
}

func (suite *CommunicationsServiceTestSuite) TestCreateNewsExplicitSlugTaken() {
	suite.newsRepo.EXPECT().GetBySlug("edital-2024").Return(suite.article(models.NewsStatusDraft), nil)

	_, err := suite.news.Create(suite.ctx, nil, &service.NewsRequest{Slug: "edital-2024", Title: "Outro edital"})
	suite.ErrorIs(err, apperrors.ErrNewsExists)
}

func (suite *CommunicationsServiceTestSuite) TestCreateNewsTitleWithoutSlugCharacters() {
	_, err := suite.news.Create(suite.ctx, nil, &service.NewsRequest{Title: "!!!"})
	suite.True(apperrors.IsValidation(err))
}

func (suite *CommunicationsServiceTestSuite) TestCreateNewsInvalidSlugFormat() {
	_, err := suite.news.Create(suite.ctx, nil, &service.NewsRequest{Slug: "Com Espaço", Title: "Edital"})
	suite.True(apperrors.IsValidation(err))
}

func (suite *CommunicationsServiceTestSuite) TestPublishDraftRecordsDate() {
	a := suite.article(models.NewsStatusDraft)
	suite.newsRepo.EXPECT().GetByID(a.ID).Return(a, nil)
	suite.newsRepo.EXPECT().Update(a).Return(nil)

	published, err := suite.news.Publish(suite.ctx, a.ID)
	suite.Require().NoError(err)
	suite.Equal(models.NewsStatusPublished, published.Status)
	suite.Require().NotNil(published.PublishedAt)
	suite.Equal(suite.now, *published.PublishedAt)
}

func (suite *CommunicationsServiceTestSuite) TestRepublishKeepsFirstPublicationDate() {
	first := time.Date(2023, 11, 1, 8, 0, 0, 0, time.UTC)
	a := suite.article(models.NewsStatusArchived)
	a.PublishedAt = &first
	suite.newsRepo.EXPECT().GetByID(a.ID).Return(a, nil)
	suite.newsRepo.EXPECT().Update(a).Return(nil)

	published, err := suite.news.Publish(suite.ctx, a.ID)
	suite.Require().NoError(err)
	suite.Equal(first, *published.PublishedAt)
}

func (suite *CommunicationsServiceTestSuite) TestPublishAlreadyPublished() {
	a := suite.article(models.NewsStatusPublished)
	suite.newsRepo.EXPECT().GetByID(a.ID).Return(a, nil)

	_, err := suite.news.Publish(suite.ctx, a.ID)
	suite.ErrorIs(err, apperrors.ErrInvalidStatusTransition)
}

func (suite *CommunicationsServiceTestSuite) TestArchiveDraftRejected() {
	a := suite.article(models.NewsStatusDraft)
	suite.newsRepo.EXPECT().GetByID(a.ID).Return(a, nil)

	_, err := suite.news.Archive(suite.ctx, a.ID)
	suite.ErrorIs(err, apperrors.ErrInvalidStatusTransition)
}

func (suite *CommunicationsServiceTestSuite) TestGetPublishedBySlugHidesDrafts() {
	suite.newsRepo.EXPECT().GetBySlug("edital-2024").Return(suite.article(models.NewsStatusDraft), nil)

	_, err := suite.news.GetPublishedBySlug("edital-2024")
	suite.ErrorIs(err, apperrors.ErrNewsNotFound)
}

func (suite *CommunicationsServiceTestSuite) TestUploadCoverReplacesPreviousFile() {
	old, err := suite.files.Save(storage.CategoryImages, "antiga.png", strings.NewReader("old"))
	suite.Require().NoError(err)

	a := suite.article(models.NewsStatusDraft)
	a.CoverPath = old
	suite.newsRepo.EXPECT().GetByID(a.ID).Return(a, nil)
	suite.newsRepo.EXPECT().Update(a).Return(nil)

	updated, err := suite.news.UploadCover(suite.ctx, a.ID, "capa.JPG", strings.NewReader("jpeg bytes"))
	suite.Require().NoError(err)
	suite.True(strings.HasPrefix(updated.CoverPath, "images/"))
	suite.True(strings.HasSuffix(updated.CoverPath, ".jpg"))

	_, err = suite.files.Open(old)
	suite.ErrorIs(err, apperrors.ErrFileNotFound)
	f, err := suite.files.Open(updated.CoverPath)
	suite.Require().NoError(err)
	suite.NoError(f.Close())
}

func (suite *CommunicationsServiceTestSuite) TestUploadCoverRejectsUnsupportedType() {
	a := suite.article(models.NewsStatusDraft)
	suite.newsRepo.EXPECT().GetByID(a.ID).Return(a, nil)

	_, err := suite.news.UploadCover(suite.ctx, a.ID, "capa.gif", strings.NewReader("gif"))
	suite.ErrorIs(err, apperrors.ErrUnsupportedFileType)
}

func (suite *CommunicationsServiceTestSuite) TestAddPhotoAppendsAtNextPosition() {
	galleryID := uuid.New()
	suite.galleries.EXPECT().GetByID(galleryID).Return(&models.Gallery{}, nil)
	suite.galleries.EXPECT().NextPhotoPosition(galleryID).Return(3, nil)
	suite.galleries.EXPECT().AddPhoto(gomock.Any()).Return(nil)

	photo, err := suite.gallery.AddPhoto(suite.ctx, galleryID, "formatura.webp", " Formatura ", strings.NewReader("webp"))
	suite.Require().NoError(err)
	suite.Equal(3, photo.Position)
	suite.Equal("Formatura", photo.Caption)
	suite.True(strings.HasPrefix(photo.Path, "images/"))
}

func (suite *CommunicationsServiceTestSuite) TestAddPhotoUnknownGallery() {
	galleryID := uuid.New()
	suite.galleries.EXPECT().GetByID(galleryID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.gallery.AddPhoto(suite.ctx, galleryID, "foto.png", "", strings.NewReader("png"))
	suite.ErrorIs(err, apperrors.ErrGalleryNotFound)
}

func (suite *CommunicationsServiceTestSuite) galleryWithPhotos(n int) *models.Gallery {
	g := &models.Gallery{Title: "Jogos Escolares"}
	g.ID = uuid.New()
	for i := 0; i < n; i++ {
		p := models.Photo{GalleryID: g.ID, Position: i}
		p.ID = uuid.New()
		g.Photos = append(g.Photos, p)
	}
	return g
}

func (suite *CommunicationsServiceTestSuite) TestReorderPhotosRequiresEveryPhotoOnce() {
	g := suite.galleryWithPhotos(3)
	suite.galleries.EXPECT().GetByID(g.ID).Return(g, nil).Times(2)

	_, err := suite.gallery.ReorderPhotos(suite.ctx, g.ID, &service.ReorderPhotosRequest{
		PhotoIDs: []uuid.UUID{g.Photos[0].ID, g.Photos[1].ID},
	})
	suite.True(apperrors.IsValidation(err))

	_, err = suite.gallery.ReorderPhotos(suite.ctx, g.ID, &service.ReorderPhotosRequest{
		PhotoIDs: []uuid.UUID{g.Photos[0].ID, g.Photos[0].ID, g.Photos[2].ID},
	})
	suite.True(apperrors.IsValidation(err))
}

func (suite *CommunicationsServiceTestSuite) TestReorderPhotos() {
	g := suite.galleryWithPhotos(3)
	order := []uuid.UUID{g.Photos[2].ID, g.Photos[0].ID, g.Photos[1].ID}
	suite.galleries.EXPECT().GetByID(g.ID).Return(g, nil).Times(2)
	suite.galleries.EXPECT().ReorderPhotos(g.ID, order).Return(nil)

	_, err := suite.gallery.ReorderPhotos(suite.ctx, g.ID, &service.ReorderPhotosRequest{PhotoIDs: order})
	suite.NoError(err)
}

func (suite *CommunicationsServiceTestSuite) TestCreatePageSlugTaken() {
	existing := &models.Page{Slug: "historia"}
	existing.ID = uuid.New()
	suite.pages.EXPECT().GetBySlug("historia").Return(existing, nil)

	_, err := suite.page.Create(suite.ctx, &service.PageRequest{Slug: "historia", Title: "História"})
	suite.ErrorIs(err, apperrors.ErrPageExists)
}

func (suite *CommunicationsServiceTestSuite) TestListPagesNeverNil() {
	suite.pages.EXPECT().List(true).Return(nil, nil)

	pages, err := suite.page.List(true)
	suite.Require().NoError(err)
	suite.NotNil(pages)
	suite.Empty(pages)
}

func (suite *CommunicationsServiceTestSuite) TestListUpcomingMeetingsUsesClock() {
	upcoming := true
	suite.meetings.EXPECT().
		List(repository.MeetingFilter{Upcoming: &upcoming, Now: suite.now}, service.DefaultPageSize, 0).
		Return([]models.Meeting{{Title: "Reunião ordinária"}}, int64(1), nil)

	page, err := suite.meeting.List(&upcoming, 0, 0)
	suite.Require().NoError(err)
	suite.Equal(int64(1), page.Total)
	suite.Len(page.Items, 1)
}

func (suite *CommunicationsServiceTestSuite) TestUploadMinutesOnlyAcceptsPDF() {
	m := &models.Meeting{Title: "Conselho"}
	m.ID = uuid.New()
	suite.meetings.EXPECT().GetByID(m.ID).Return(m, nil)

	_, err := suite.meeting.UploadMinutes(suite.ctx, m.ID, "ata.docx", strings.NewReader("docx"))
	suite.ErrorIs(err, apperrors.ErrUnsupportedFileType)
}

func (suite *CommunicationsServiceTestSuite) TestUploadMinutes() {
	m := &models.Meeting{Title: "Conselho"}
	m.ID = uuid.New()
	suite.meetings.EXPECT().GetByID(m.ID).Return(m, nil)
	suite.meetings.EXPECT().Update(m).Return(nil)

	updated, err := suite.meeting.UploadMinutes(suite.ctx, m.ID, "ata.pdf", strings.NewReader("%PDF-1.7"))
	suite.Require().NoError(err)
	suite.True(strings.HasPrefix(updated.MinutesPath, "documents/"))
	suite.Equal("ascom@instituto.gov.br", updated.UpdatedBy)
}

func TestCommunicationsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CommunicationsServiceTestSuite))
}
