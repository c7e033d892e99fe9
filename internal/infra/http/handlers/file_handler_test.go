package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/purva-galani/Everest-main-live-sub001/internal/entity"
	"github.com/purva-galani/Everest-main-live-sub001/internal/infra/storage"
)

type fileRepositoryMock struct{ mock.Mock }

func (m *fileRepositoryMock) Create(ctx context.Context, f *entity.File) error {
	return m.Called(ctx, f).Error(0)
}

func (m *fileRepositoryMock) FindAll(ctx context.Context, parentID string) ([]entity.File, error) {
	args := m.Called(ctx, parentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.File), args.Error(1)
}

func (m *fileRepositoryMock) FindByID(ctx context.Context, id string) (*entity.File, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.File), args.Error(1)
}

func (m *fileRepositoryMock) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func fileRouter(t *testing.T, repo entity.FileRepositoryInterface) (http.Handler, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.NewLocalStorage(dir)
	assert.NoError(t, err)

	r := chi.NewRouter()
	r.Route("/api/v1/file", NewFileHandler(repo, store).Register)
	return r, dir
}

func multipartUpload(t *testing.T, fields map[string]string, fileName, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		assert.NoError(t, mw.WriteField(k, v))
	}
	fw, err := mw.CreateFormFile("file", fileName)
	assert.NoError(t, err)
	_, err = fw.Write([]byte(content))
	assert.NoError(t, err)
	assert.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestFileUpload(t *testing.T) {
	repo := &fileRepositoryMock{}
	repo.On("Create", mock.Anything, mock.AnythingOfType("*entity.File")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.File).ID = bson.NewObjectID()
		}).Return(nil)

	router, dir := fileRouter(t, repo)

	body, contentType := multipartUpload(t, nil, "report.pdf", "pdf bytes")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/file/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := doRawRequest(router, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Success bool        `json:"success"`
		Data    entity.File `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "report.pdf", resp.Data.Name)
	assert.Equal(t, entity.FileKindFile, resp.Data.Kind)
	assert.Equal(t, int64(len("pdf bytes")), resp.Data.Size)
	assert.Nil(t, resp.Data.ParentID)

	// The bytes landed in the upload dir under the stored name.
	content, err := os.ReadFile(filepath.Join(dir, resp.Data.StoredPath))
	assert.NoError(t, err)
	assert.Equal(t, "pdf bytes", string(content))
}

func TestFileUploadRollsBackOnRepoError(t *testing.T) {
	repo := &fileRepositoryMock{}
	repo.On("Create", mock.Anything, mock.Anything).Return(assert.AnError)

	router, dir := fileRouter(t, repo)

	body, contentType := multipartUpload(t, nil, "report.pdf", "pdf bytes")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/file/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := doRawRequest(router, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	// No orphaned file stays behind when the record could not be written.
	entries, err := os.ReadDir(dir)
	assert.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFileUploadIntoParentFolder(t *testing.T) {
	folderID := bson.NewObjectID()
	repo := &fileRepositoryMock{}
	repo.On("FindByID", mock.Anything, folderID.Hex()).
		Return(&entity.File{ID: folderID, Name: "Invoices", Kind: entity.FileKindFolder}, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*entity.File")).Return(nil)

	router, _ := fileRouter(t, repo)

	body, contentType := multipartUpload(t, map[string]string{"parentId": folderID.Hex()}, "a.txt", "x")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/file/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := doRawRequest(router, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Data entity.File `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	if assert.NotNil(t, resp.Data.ParentID) {
		assert.Equal(t, folderID, *resp.Data.ParentID)
	}
}

func TestFileUploadParentMustBeFolder(t *testing.T) {
	fileID := bson.NewObjectID()
	repo := &fileRepositoryMock{}
	repo.On("FindByID", mock.Anything, fileID.Hex()).
		Return(&entity.File{ID: fileID, Name: "a.txt", Kind: entity.FileKindFile}, nil)

	router, _ := fileRouter(t, repo)

	body, contentType := multipartUpload(t, map[string]string{"parentId": fileID.Hex()}, "b.txt", "x")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/file/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := doRawRequest(router, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateFolder(t *testing.T) {
	repo := &fileRepositoryMock{}
	repo.On("Create", mock.Anything, mock.AnythingOfType("*entity.File")).Return(nil)

	router, _ := fileRouter(t, repo)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/file/create",
		map[string]any{"name": "Invoices"})
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, router, http.MethodPost, "/api/v1/file/create", map[string]any{"name": ""})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFileDeleteRemovesStoredFile(t *testing.T) {
	repo := &fileRepositoryMock{}
	router, dir := fileRouter(t, repo)

	// Seed a stored file the record points at.
	storedName := "123_abcd_note.txt"
	assert.NoError(t, os.WriteFile(filepath.Join(dir, storedName), []byte("bye"), 0o644))

	id := bson.NewObjectID()
	repo.On("FindByID", mock.Anything, id.Hex()).
		Return(&entity.File{ID: id, Name: "note.txt", Kind: entity.FileKindFile, StoredPath: storedName}, nil)
	repo.On("Delete", mock.Anything, id.Hex()).Return(nil)

	rec := doRequest(t, router, http.MethodDelete, "/api/v1/file/delete/"+id.Hex(), nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	_, statErr := os.Stat(filepath.Join(dir, storedName))
	assert.True(t, os.IsNotExist(statErr))
	repo.AssertExpectations(t)
}
