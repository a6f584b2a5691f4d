package posts

import "context"

//go:generate mockgen -source=$GOFILE -destination=storage_mocks_test.go -package=posts_test

// postStorage persists posts. FindByID reports a missing post with found == false,
// not with an error.
type postStorage interface {
	Insert(ctx context.Context, post *Post) (*Post, error)
	ListAll(ctx context.Context) ([]*Post, error)
	FindByID(ctx context.Context, id int) (_ *Post, found bool, err error)
	Save(ctx context.Context, post *Post) error
	Delete(ctx context.Context, id int) error
}
