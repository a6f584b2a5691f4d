package posts

import (
	"context"
	"sort"
	"sync"
)

var _ postStorage = (*MemoryRepo)(nil)

// MemoryRepo keeps posts in process memory. It hands out copies so callers
// never mutate stored posts without going through Save.
type MemoryRepo struct {
	mutex  sync.RWMutex
	posts  map[int]Post
	lastID int
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		posts: make(map[int]Post),
	}
}

func (r *MemoryRepo) Insert(_ context.Context, post *Post) (*Post, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.lastID++
	stored := Post{
		ID:      r.lastID,
		Title:   post.Title,
		Content: post.Content,
	}
	r.posts[stored.ID] = stored

	return &stored, nil
}

func (r *MemoryRepo) ListAll(_ context.Context) ([]*Post, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	posts := make([]*Post, 0, len(r.posts))
	for id := range r.posts {
		p := r.posts[id]
		posts = append(posts, &p)
	}
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].ID < posts[j].ID
	})

	return posts, nil
}

func (r *MemoryRepo) FindByID(_ context.Context, id int) (*Post, bool, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	p, ok := r.posts[id]
	if !ok {
		return nil, false, nil
	}
	return &p, true, nil
}

// Save is a no-op for unknown ids, same as an UPDATE matching zero rows.
func (r *MemoryRepo) Save(_ context.Context, post *Post) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, ok := r.posts[post.ID]; !ok {
		return nil
	}
	r.posts[post.ID] = *post

	return nil
}

func (r *MemoryRepo) Delete(_ context.Context, id int) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	delete(r.posts, id)

	return nil
}

func (r *MemoryRepo) PostsCount() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return len(r.posts)
}
