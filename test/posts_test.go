//go:build integration_test || all_tests

package test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/postsapi/internal/posts"
)

func (s *IntegrationTestSuite) doRequest(ctx context.Context, method, path, body string) (int, []byte) {
	t := s.T()

	var bodyReader io.Reader
	if body != "" {
		bodyReader = strings.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, bodyReader)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, respBytes
}

func (s *IntegrationTestSuite) TestPosts_Lifecycle() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	status, body := s.doRequest(ctx, "POST", "/posts", `{"title":"Lorem Ipsum","content":"Lorem ipsum dolor sit amet"}`)
	require.Equal(t, http.StatusCreated, status)

	var created posts.Post
	require.NoError(t, json.Unmarshal(body, &created))
	assert.Equal(t, posts.Post{ID: 1, Title: "Lorem Ipsum", Content: "Lorem ipsum dolor sit amet"}, created)

	status, body = s.doRequest(ctx, "PUT", "/posts/1", `{"content":"New"}`)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"id":1,"title":"Lorem Ipsum","content":"New"}`, string(body))

	status, body = s.doRequest(ctx, "GET", "/posts/1", "")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"id":1,"title":"Lorem Ipsum","content":"New"}`, string(body))

	status, body = s.doRequest(ctx, "DELETE", "/posts/1", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "deleted:1", string(body))

	status, _ = s.doRequest(ctx, "GET", "/posts/1", "")
	assert.Equal(t, http.StatusNotFound, status)
	status, _ = s.doRequest(ctx, "PUT", "/posts/1", `{"title":"x"}`)
	assert.Equal(t, http.StatusNotFound, status)
	status, _ = s.doRequest(ctx, "DELETE", "/posts/1", "")
	assert.Equal(t, http.StatusNotFound, status)
}

func (s *IntegrationTestSuite) TestPosts_List() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	status, body := s.doRequest(ctx, "GET", "/posts", "")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[]`, string(body))

	for i := 1; i <= 3; i++ {
		status, _ := s.doRequest(ctx, "POST", "/posts", fmt.Sprintf(`{"title":"title %d","content":"content %d"}`, i, i))
		require.Equal(t, http.StatusCreated, status)
	}

	status, body = s.doRequest(ctx, "GET", "/posts", "")
	require.Equal(t, http.StatusOK, status)

	var list []posts.Post
	require.NoError(t, json.Unmarshal(body, &list))
	require.Len(t, list, 3)
	for i, p := range list {
		assert.Equal(t, i+1, p.ID)
		assert.Equal(t, fmt.Sprintf("title %d", i+1), p.Title)
	}
}

func (s *IntegrationTestSuite) TestPosts_BadRequests() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	status, _ := s.doRequest(ctx, "POST", "/posts", `{"title":"only title"}`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = s.doRequest(ctx, "POST", "/posts", `{"title":1,"content":"c"}`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = s.doRequest(ctx, "GET", "/posts/first", "")
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = s.doRequest(ctx, "GET", "/comments", "")
	assert.Equal(t, http.StatusNotFound, status)
}

func (s *IntegrationTestSuite) TestRepo_SaveAfterDelete() {
	ctx := context.Background()
	t := s.T()

	repo := posts.NewRepo(s.DB)
	post, err := repo.Insert(ctx, &posts.Post{Title: "t", Content: "c"})
	require.NoError(t, err)

	// a delete landing between lookup and save: the save changes nothing
	require.NoError(t, repo.Delete(ctx, post.ID))
	post.Content = "updated"
	require.NoError(t, repo.Save(ctx, post))

	_, found, err := repo.FindByID(ctx, post.ID)
	require.NoError(t, err)
	assert.False(t, found)
}

func (s *IntegrationTestSuite) TestVersion() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	status, body := s.doRequest(ctx, "GET", "/version", "")
	s.Equal(http.StatusOK, status)
	s.Equal("test-version-info", string(body))
}
