package posts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/postsapi/internal/telemetry/tracing"
	"github.com/2beens/postsapi/pkg"
)

type postsService interface {
	Create(ctx context.Context, title, content string) (*Post, error)
	List(ctx context.Context) ([]*Post, error)
	Get(ctx context.Context, id int) (*Post, error)
	Update(ctx context.Context, id int, update PostUpdate) (*Post, error)
	Delete(ctx context.Context, id int) error
}

type Handler struct {
	service postsService
}

func NewHandler(service postsService) *Handler {
	return &Handler{
		service: service,
	}
}

// SetupRoutes registers the posts routes. writeMiddleware is applied only to
// the routes that modify posts.
func (handler *Handler) SetupRoutes(router *mux.Router, writeMiddleware ...mux.MiddlewareFunc) {
	router.HandleFunc("/posts", handler.handleList).Methods("GET").Name("list-posts")
	router.HandleFunc("/posts/{id}", handler.handleGet).Methods("GET").Name("get-post")
	router.HandleFunc("/posts", handleOptions("GET, POST, OPTIONS")).Methods("OPTIONS").Name("posts-options")
	router.HandleFunc("/posts/{id}", handleOptions("GET, PUT, DELETE, OPTIONS")).Methods("OPTIONS").Name("post-options")

	writeRouter := router.Methods("POST", "PUT", "DELETE").Subrouter()
	writeRouter.HandleFunc("/posts", handler.handleCreate).Methods("POST").Name("new-post")
	writeRouter.HandleFunc("/posts/{id}", handler.handleUpdate).Methods("PUT").Name("update-post")
	writeRouter.HandleFunc("/posts/{id}", handler.handleDelete).Methods("DELETE").Name("delete-post")
	writeRouter.Use(writeMiddleware...)
}

func handleOptions(allow string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Add("Allow", allow)
		w.WriteHeader(http.StatusOK)
	}
}

func (handler *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.posts.create")
	defer span.End()

	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("new post, unmarshal json body: %s", err)
		http.Error(w, "error, invalid request body", http.StatusBadRequest)
		return
	}

	if res := ValidateCreate(req); !res.Valid {
		http.Error(w, fmt.Sprintf("error, %s", res.Error()), http.StatusBadRequest)
		return
	}

	post, err := handler.service.Create(ctx, req.Title, req.Content)
	if err != nil {
		log.Errorf("add new post failed: %s", err)
		http.Error(w, "add new post failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponse(w, post, http.StatusCreated)
}

func (handler *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.posts.list")
	defer span.End()

	posts, err := handler.service.List(ctx)
	if err != nil {
		log.Errorf("list posts error: %s", err)
		http.Error(w, "failed to get posts", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponse(w, posts, http.StatusOK)
}

func (handler *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.posts.get")
	defer span.End()

	id, err := ParsePostID(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, fmt.Sprintf("error, %s", err), http.StatusBadRequest)
		return
	}

	post, err := handler.service.Get(ctx, id)
	if err != nil {
		handler.writeServiceError(w, "get post", id, err)
		return
	}

	pkg.WriteJSONResponse(w, post, http.StatusOK)
}

func (handler *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.posts.update")
	defer span.End()

	id, err := ParsePostID(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, fmt.Sprintf("error, %s", err), http.StatusBadRequest)
		return
	}

	// an empty body is an empty partial update
	var req UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		log.Tracef("update post %d, unmarshal json body: %s", id, err)
		http.Error(w, "error, invalid request body", http.StatusBadRequest)
		return
	}

	if res := ValidateUpdate(req); !res.Valid {
		http.Error(w, fmt.Sprintf("error, %s", res.Error()), http.StatusBadRequest)
		return
	}

	post, err := handler.service.Update(ctx, id, req.toPostUpdate())
	if err != nil {
		handler.writeServiceError(w, "update post", id, err)
		return
	}

	pkg.WriteJSONResponse(w, post, http.StatusOK)
}

func (handler *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.posts.delete")
	defer span.End()

	id, err := ParsePostID(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, fmt.Sprintf("error, %s", err), http.StatusBadRequest)
		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		handler.writeServiceError(w, "delete post", id, err)
		return
	}

	pkg.WriteTextResponseOK(w, fmt.Sprintf("deleted:%d", id))
}

func (handler *Handler) writeServiceError(w http.ResponseWriter, action string, id int, err error) {
	if errors.Is(err, ErrPostNotFound) {
		http.Error(w, "error, post not found", http.StatusNotFound)
		return
	}
	log.Errorf("%s %d: %s", action, id, err)
	http.Error(w, fmt.Sprintf("error, %s failed", action), http.StatusInternalServerError)
}
