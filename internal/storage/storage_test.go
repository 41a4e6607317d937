package storage

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "institute-portal-backend/internal/errors"
)

func newTestStore(max int64) *FileStore {
	s := NewFileStore(afero.NewMemMapFs(), max)
	s.now = func() time.Time { return time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC) }
	return s
}

func TestSaveAndOpen(t *testing.T) {
	s := newTestStore(1024)

	p, err := s.Save(CategoryDocuments, "Ata Reunião.PDF", strings.NewReader("%PDF-1.4"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(p, "documents/2024/03/"))
	assert.True(t, strings.HasSuffix(p, ".pdf"))

	f, err := s.Open(p)
	require.NoError(t, err)
	defer f.Close()
	content, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(content))
}

func TestSaveRejectsExtension(t *testing.T) {
	s := newTestStore(1024)

	_, err := s.Save(CategoryImages, "photo.gif", strings.NewReader("GIF89a"))
	assert.ErrorIs(t, err, apperrors.ErrUnsupportedFileType)

	_, err = s.Save(CategoryDocuments, "minutes.docx", strings.NewReader("x"))
	assert.ErrorIs(t, err, apperrors.ErrUnsupportedFileType)
}

func TestSaveRejectsLargeFiles(t *testing.T) {
	s := newTestStore(4)

	_, err := s.Save(CategoryImages, "cover.png", bytes.NewReader([]byte("12345")))
	assert.ErrorIs(t, err, apperrors.ErrFileTooLarge)

	entries, err := afero.ReadDir(s.fs, "images/2024/03")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestOpenMissingAndDelete(t *testing.T) {
	s := newTestStore(1024)

	_, err := s.Open("images/2024/03/missing.png")
	assert.ErrorIs(t, err, apperrors.ErrFileNotFound)

	p, err := s.Save(CategoryImages, "a.webp", strings.NewReader("img"))
	require.NoError(t, err)
	require.NoError(t, s.Delete(p))
	require.NoError(t, s.Delete(p))

	_, err = s.Open(p)
	assert.ErrorIs(t, err, apperrors.ErrFileNotFound)
}

func TestClean(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"images/2024/03/a.png", "images/2024/03/a.png", false},
		{"/documents/2024/01/x.pdf", "documents/2024/01/x.pdf", false},
		{"images/../../etc/passwd", "", true},
		{"..\\secret", "", true},
		{"other/file.txt", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Clean(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrInvalidPath)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
	assert.Equal(t, CategoryImages, CategoryOf("images/2024/a.png"))
}
