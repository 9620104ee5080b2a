package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/AaronBlvde/wiki-platform/internal/common"
	"github.com/AaronBlvde/wiki-platform/internal/httpx"
	"github.com/AaronBlvde/wiki-platform/internal/wiki/models"
)

type createPageRequest struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	CatalogID *int64 `json:"catalog_id"`
	Hidden    bool   `json:"hidden"`
}

type updatePageRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

type pageResponse struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CatalogID *int64 `json:"catalog_id,omitempty"`
	Hidden    bool   `json:"hidden"`
	Author    string `json:"author"`
}

type createCatalogRequest struct {
	Name   string `json:"name"`
	Hidden bool   `json:"hidden"`
}

type catalogResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Hidden bool   `json:"hidden"`
}

func toPageResponse(p *models.Page) pageResponse {
	return pageResponse{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		CatalogID: p.CatalogID,
		Hidden:    p.Hidden,
		Author:    p.Author,
	}
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, map[string]string{"message": "Wiki service is running"})
}

func idParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func (s *Server) handleCreatePage(w http.ResponseWriter, r *http.Request) {
	var req createPageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Title == "" {
		httpx.Error(w, http.StatusBadRequest, "title required")
		return
	}

	subject := subjectFromContext(r.Context())
	page, err := s.pages.Create(r.Context(), subject, req.Title, req.Content, req.CatalogID, req.Hidden)
	if err != nil {
		if errors.Is(err, common.ErrorInvalidReference) {
			httpx.Error(w, http.StatusBadRequest, "catalog does not exist")
			return
		}
		s.logger.Error(r.Context(), "create page failed", "error", err.Error())
		httpx.Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	s.logger.Info(r.Context(), "Page created", "id", page.ID, "author", page.Author)
	httpx.JSON(w, http.StatusOK, toPageResponse(page))
}

func (s *Server) handleListPages(w http.ResponseWriter, r *http.Request) {
	var catalogID *int64
	if raw := r.URL.Query().Get("catalog_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			httpx.Error(w, http.StatusBadRequest, "invalid catalog_id")
			return
		}
		catalogID = &id
	}

	list, err := s.pages.List(r.Context(), catalogID)
	if err != nil {
		s.logger.Error(r.Context(), "list pages failed", "error", err.Error())
		httpx.Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	result := make([]pageResponse, 0, len(list))
	for _, p := range list {
		result = append(result, toPageResponse(p))
	}
	httpx.JSON(w, http.StatusOK, result)
}

func (s *Server) handleGetPage(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	page, err := s.pages.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			httpx.Error(w, http.StatusNotFound, "not found")
			return
		}
		s.logger.Error(r.Context(), "get page failed", "error", err.Error())
		httpx.Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	httpx.JSON(w, http.StatusOK, toPageResponse(page))
}

func (s *Server) handleUpdatePage(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req updatePageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	subject := subjectFromContext(r.Context())
	if err := s.pages.Update(r.Context(), subject, id, req.Title, req.Content); err != nil {
		s.writeMutationError(w, r, "update page", err)
		return
	}

	httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleDeletePage(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	subject := subjectFromContext(r.Context())
	if err := s.pages.Delete(r.Context(), subject, id); err != nil {
		s.writeMutationError(w, r, "delete page", err)
		return
	}

	httpx.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// writeMutationError maps service errors from page mutations to HTTP
// statuses. Ownership denials are 403, distinct from the 401 produced by
// the auth middleware.
func (s *Server) writeMutationError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		httpx.Error(w, http.StatusNotFound, "not found")
	case errors.Is(err, common.ErrorForbidden):
		httpx.Error(w, http.StatusForbidden, "forbidden")
	default:
		s.logger.Error(r.Context(), op+" failed", "error", err.Error())
		httpx.Error(w, http.StatusInternalServerError, "internal error")
	}
}

func (s *Server) handleCreateCatalog(w http.ResponseWriter, r *http.Request) {
	var req createCatalogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Name == "" {
		httpx.Error(w, http.StatusBadRequest, "name required")
		return
	}

	catalog, err := s.catalogs.Create(r.Context(), req.Name, req.Hidden)
	if err != nil {
		s.logger.Error(r.Context(), "create catalog failed", "error", err.Error())
		httpx.Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	httpx.JSON(w, http.StatusOK, catalogResponse{ID: catalog.ID, Name: catalog.Name, Hidden: catalog.Hidden})
}

func (s *Server) handleListCatalogs(w http.ResponseWriter, r *http.Request) {
	list, err := s.catalogs.List(r.Context())
	if err != nil {
		s.logger.Error(r.Context(), "list catalogs failed", "error", err.Error())
		httpx.Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	result := make([]catalogResponse, 0, len(list))
	for _, c := range list {
		result = append(result, catalogResponse{ID: c.ID, Name: c.Name, Hidden: c.Hidden})
	}
	httpx.JSON(w, http.StatusOK, result)
}

func (s *Server) handleDeleteCatalog(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := s.catalogs.Delete(r.Context(), id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			httpx.Error(w, http.StatusNotFound, "not found")
			return
		}
		s.logger.Error(r.Context(), "delete catalog failed", "error", err.Error())
		httpx.Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	httpx.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
