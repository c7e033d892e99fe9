package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/purva-galani/Everest-main-live-sub001/internal/entity"
	"github.com/purva-galani/Everest-main-live-sub001/internal/infra/http/middleware"
	"github.com/purva-galani/Everest-main-live-sub001/internal/infra/storage"
)

// maxUploadSize bounds a single upload stream.
const maxUploadSize = 32 << 20

type FileHandler struct {
	repo  entity.FileRepositoryInterface
	store *storage.LocalStorage
}

func NewFileHandler(repo entity.FileRepositoryInterface, store *storage.LocalStorage) *FileHandler {
	return &FileHandler{repo: repo, store: store}
}

func (h *FileHandler) Register(r chi.Router) {
	r.Post("/upload", h.Upload)
	r.Post("/create", h.CreateFolder)
	r.Get("/getall", h.GetAll)
	r.Get("/{id}", h.GetByID)
	r.Delete("/delete/{id}", h.Delete)
}

func (h *FileHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, "upload is too large or malformed")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "file field is required")
		return
	}
	defer file.Close()

	parentID, ok := h.parentIDParam(w, r, r.FormValue("parentId"))
	if !ok {
		return
	}

	stored, err := h.store.Save(header.Filename, file)
	if err != nil {
		log.Printf("failed to store upload %q: %v", header.Filename, err)
		writeError(w, http.StatusInternalServerError, "failed to store file")
		return
	}

	rec := &entity.File{
		Name:        header.Filename,
		Kind:        entity.FileKindFile,
		ParentID:    parentID,
		StoredPath:  stored.Name,
		ContentType: stored.ContentType,
		Size:        stored.Size,
	}
	if err := h.repo.Create(r.Context(), rec); err != nil {
		h.store.Remove(stored.Name)
		writeRepoError(w, err)
		return
	}

	middleware.RecordFileUpload()
	writeJSON(w, http.StatusCreated, rec)
}

func (h *FileHandler) CreateFolder(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name     string `json:"name"`
		ParentID string `json:"parentId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	parentID, ok := h.parentIDParam(w, r, input.ParentID)
	if !ok {
		return
	}

	rec := &entity.File{
		Name:     input.Name,
		Kind:     entity.FileKindFolder,
		ParentID: parentID,
	}
	if err := rec.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.repo.Create(r.Context(), rec); err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

func (h *FileHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	files, err := h.repo.FindAll(r.Context(), r.URL.Query().Get("parentId"))
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, files)
}

func (h *FileHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	rec, err := h.repo.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (h *FileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	rec, err := h.repo.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeRepoError(w, err)
		return
	}

	if rec.Kind == entity.FileKindFile {
		if err := h.store.Remove(rec.StoredPath); err != nil {
			log.Printf("failed to remove stored file %q: %v", rec.StoredPath, err)
		}
	}

	if err := h.repo.Delete(r.Context(), rec.ID.Hex()); err != nil {
		writeRepoError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "file deleted")
}

// parentIDParam resolves an optional parent folder reference. The hierarchy is
// one level deep: the parent must exist and be a folder.
func (h *FileHandler) parentIDParam(w http.ResponseWriter, r *http.Request, raw string) (*bson.ObjectID, bool) {
	if raw == "" {
		return nil, true
	}

	parent, err := h.repo.FindByID(r.Context(), raw)
	if err != nil {
		writeRepoError(w, err)
		return nil, false
	}
	if parent.Kind != entity.FileKindFolder {
		writeError(w, http.StatusBadRequest, "parentId must reference a folder")
		return nil, false
	}
	return &parent.ID, true
}
