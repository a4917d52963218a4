package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"inkwell/application/store"
	"inkwell/pkg/common"
	"inkwell/pkg/utils"
)

// PostHandler exposes the content store over HTTP.
type PostHandler struct {
	content *store.ContentStore
	logger  *zap.Logger
}

// NewPostHandler creates the post handler.
func NewPostHandler(content *store.ContentStore, logger *zap.Logger) *PostHandler {
	return &PostHandler{content: content, logger: logger}
}

// CreatePostRequest is the body of POST /posts.
type CreatePostRequest struct {
	Title      string `json:"title" validate:"required,max=200"`
	Excerpt    string `json:"excerpt" validate:"max=500"`
	Body       string `json:"content" validate:"required"`
	CoverImage string `json:"coverImage" validate:"omitempty,url"`
}

// UpdatePostRequest is the body of PUT /posts/{postID}. Absent fields are
// left unchanged.
type UpdatePostRequest struct {
	Title      *string `json:"title" validate:"omitempty,max=200"`
	Excerpt    *string `json:"excerpt" validate:"omitempty,max=500"`
	Body       *string `json:"content"`
	CoverImage *string `json:"coverImage" validate:"omitempty,url"`
}

// List handles GET /posts. With ?author=<id> it filters by the embedded
// author snapshot; paging slices the response only, never the stored
// collection.
func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	params := common.ExtractPaginationParams(r)

	posts := h.content.All(r.Context())
	if author := r.URL.Query().Get("author"); author != "" {
		posts = h.content.GetByAuthor(r.Context(), author)
	}

	total := len(posts)
	start, end := params.Bounds(total)
	common.RespondJSON(w, http.StatusOK,
		common.NewPaginatedResult(posts[start:end], params.Page, params.PageSize, total))
}

// Get handles GET /posts/{postID}.
func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	post, err := h.content.GetByID(r.Context(), chi.URLParam(r, "postID"))
	if err != nil {
		respondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, post)
}

// Create handles POST /posts.
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION", "Invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION", err.Error())
		return
	}

	post, err := h.content.Create(r.Context(), store.CreatePost{
		Title:      req.Title,
		Excerpt:    req.Excerpt,
		Body:       req.Body,
		CoverImage: req.CoverImage,
	})
	if err != nil {
		respondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusCreated, post)
}

// Update handles PUT /posts/{postID}.
func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION", "Invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION", err.Error())
		return
	}

	post, err := h.content.Update(r.Context(), chi.URLParam(r, "postID"), store.UpdatePost{
		Title:      req.Title,
		Excerpt:    req.Excerpt,
		Body:       req.Body,
		CoverImage: req.CoverImage,
	})
	if err != nil {
		respondAppError(w, err)
		return
	}
	if post == nil {
		// Unknown id is a store-level no-op; surface it as absence here.
		common.RespondError(w, http.StatusNotFound, "NOT_FOUND", "post not found")
		return
	}
	common.RespondJSON(w, http.StatusOK, post)
}

// Delete handles DELETE /posts/{postID}.
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.content.Delete(r.Context(), chi.URLParam(r, "postID")); err != nil {
		respondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, map[string]string{"message": "post deleted"})
}
