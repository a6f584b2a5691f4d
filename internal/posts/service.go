package posts

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/postsapi/internal/telemetry/metrics"
	"github.com/2beens/postsapi/internal/telemetry/tracing"
)

// Service owns the post lifecycle. Update and Delete look the post up first
// and then act on it; the two storage calls are not one transaction.
type Service struct {
	storage postStorage
	metrics *metrics.Manager
}

func NewService(storage postStorage, metricsManager *metrics.Manager) *Service {
	return &Service{
		storage: storage,
		metrics: metricsManager,
	}
}

func (s *Service) Create(ctx context.Context, title, content string) (_ *Post, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.posts.create")
	defer tracing.EndSpan(span, &err)

	post, err := s.storage.Insert(ctx, &Post{
		Title:   title,
		Content: content,
	})
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	s.metrics.PostOperation("create")
	log.Tracef("post %d created: [%s]", post.ID, post.Title)

	return post, nil
}

func (s *Service) List(ctx context.Context) (_ []*Post, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.posts.list")
	defer tracing.EndSpan(span, &err)

	posts, err := s.storage.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	if posts == nil {
		posts = []*Post{}
	}

	s.metrics.PostOperation("list")
	return posts, nil
}

func (s *Service) Get(ctx context.Context, id int) (_ *Post, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.posts.get")
	span.SetAttributes(attribute.Int("id", id))
	defer tracing.EndSpan(span, &err)

	post, err := s.lookup(ctx, id)
	if err != nil {
		return nil, err
	}

	s.metrics.PostOperation("get")
	return post, nil
}

func (s *Service) Update(ctx context.Context, id int, update PostUpdate) (_ *Post, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.posts.update")
	span.SetAttributes(attribute.Int("id", id))
	defer tracing.EndSpan(span, &err)

	post, err := s.lookup(ctx, id)
	if err != nil {
		return nil, err
	}

	changed := update.applyTo(post)
	span.SetAttributes(attribute.Bool("changed", changed))

	if err := s.storage.Save(ctx, post); err != nil {
		return nil, fmt.Errorf("save post %d: %w", id, err)
	}

	s.metrics.PostOperation("update")
	log.Tracef("post %d updated, changed: %t", id, changed)

	return post, nil
}

func (s *Service) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.posts.delete")
	span.SetAttributes(attribute.Int("id", id))
	defer tracing.EndSpan(span, &err)

	if _, err := s.lookup(ctx, id); err != nil {
		return err
	}

	if err := s.storage.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete post %d: %w", id, err)
	}

	s.metrics.PostOperation("delete")
	log.Tracef("post %d deleted", id)

	return nil
}

func (s *Service) lookup(ctx context.Context, id int) (*Post, error) {
	post, found, err := s.storage.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find post %d: %w", id, err)
	}
	if !found {
		return nil, ErrPostNotFound
	}
	return post, nil
}
