package posts

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/postsapi/internal/telemetry/tracing"
)

// DB is the part of pgxpool.Pool the repo needs.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var _ postStorage = (*Repo)(nil)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

type Repo struct {
	db DB
}

func NewRepo(db DB) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Insert(ctx context.Context, post *Post) (_ *Post, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.posts.insert")
	defer tracing.EndSpan(span, &err)

	query, args, err := psql.Insert("post").
		Columns("title", "content").
		Values(post.Title, post.Content).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert query: %w", err)
	}

	var id int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return nil, fmt.Errorf("insert post: %w", err)
	}

	return &Post{
		ID:      id,
		Title:   post.Title,
		Content: post.Content,
	}, nil
}

func (r *Repo) ListAll(ctx context.Context) (_ []*Post, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.posts.list")
	defer tracing.EndSpan(span, &err)

	query, args, err := psql.Select("id", "title", "content").
		From("post").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select query: %w", err)
	}

	var posts []*Post
	if err := pgxscan.Select(ctx, r.db, &posts, query, args...); err != nil {
		return nil, fmt.Errorf("select posts: %w", err)
	}
	return posts, nil
}

func (r *Repo) FindByID(ctx context.Context, id int) (_ *Post, _ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.posts.find")
	span.SetAttributes(attribute.Int("id", id))
	defer tracing.EndSpan(span, &err)

	query, args, err := psql.Select("id", "title", "content").
		From("post").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("build select query: %w", err)
	}

	var post Post
	if err := pgxscan.Get(ctx, r.db, &post, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get post %d: %w", id, err)
	}
	return &post, true, nil
}

// Save overwrites title and content of an existing post.
// A post deleted in the meantime is not recreated.
func (r *Repo) Save(ctx context.Context, post *Post) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.posts.save")
	span.SetAttributes(attribute.Int("id", post.ID))
	defer tracing.EndSpan(span, &err)

	query, args, err := psql.Update("post").
		Set("title", post.Title).
		Set("content", post.Content).
		Where(squirrel.Eq{"id": post.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update query: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update post %d: %w", post.ID, err)
	}
	if tag.RowsAffected() == 0 {
		log.Tracef("post %d not updated, gone in the meantime", post.ID)
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.posts.delete")
	span.SetAttributes(attribute.Int("id", id))
	defer tracing.EndSpan(span, &err)

	query, args, err := psql.Delete("post").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete post %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		log.Tracef("post %d not deleted, gone in the meantime", id)
	}
	return nil
}
