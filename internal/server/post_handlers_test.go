package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/beingscholar/devconnector/internal/models"
	"github.com/beingscholar/devconnector/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCommentRepository is a mock of the CommentRepository interface
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type postHarness struct {
	app         *fiber.App
	postRepo    *MockPostRepository
	userRepo    *MockUserRepository
	commentRepo *MockCommentRepository
}

func newPostHarness() *postHarness {
	h := &postHarness{
		app:         fiber.New(),
		postRepo:    new(MockPostRepository),
		userRepo:    new(MockUserRepository),
		commentRepo: new(MockCommentRepository),
	}
	s := &Server{config: testConfig()}
	s.postService = service.NewPostService(h.postRepo, h.userRepo)
	s.commentService = service.NewCommentService(h.commentRepo, h.postRepo, h.userRepo)

	posts := h.app.Group("/api/posts", asUser(1))
	posts.Post("/", s.CreatePost)
	posts.Get("/", s.GetPosts)
	posts.Put("/like/:id", s.LikePost)
	posts.Put("/unlike/:id", s.UnlikePost)
	posts.Post("/comment/:id", s.AddComment)
	posts.Delete("/comment/:id/:cmnt_id", s.DeleteComment)
	posts.Get("/:id", s.GetPost)
	posts.Delete("/:id", s.DeletePost)
	return h
}

func TestCreatePost(t *testing.T) {
	t.Run("empty text", func(t *testing.T) {
		h := newPostHarness()
		resp, err := h.app.Test(jsonRequest(http.MethodPost, "/api/posts",
			map[string]string{"text": "  "}))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body models.ErrorResponse
		decodeJSON(t, resp, &body)
		require.Len(t, body.Errors, 1)
		assert.Equal(t, "Text is required", body.Errors[0].Msg)
	})

	t.Run("denormalizes author", func(t *testing.T) {
		h := newPostHarness()
		h.userRepo.On("GetByID", mock.Anything, uint(1)).
			Return(&models.User{ID: 1, Name: "A", Avatar: "//gravatar/a"}, nil).Once()
		h.postRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *models.Post) bool {
			p.ID = 10
			return p.Name == "A" && p.Avatar == "//gravatar/a" && p.Text == "hello"
		})).Return(nil).Once()
		h.postRepo.On("GetByID", mock.Anything, uint(10)).
			Return(&models.Post{ID: 10, UserID: 1, Name: "A", Text: "hello"}, nil).Once()

		resp, err := h.app.Test(jsonRequest(http.MethodPost, "/api/posts",
			map[string]string{"text": "hello"}))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]any
		decodeJSON(t, resp, &body)
		assert.Equal(t, "hello", body["text"])
		h.postRepo.AssertExpectations(t)
	})
}

func TestGetPost(t *testing.T) {
	t.Run("malformed id", func(t *testing.T) {
		h := newPostHarness()
		resp, err := h.app.Test(httptest.NewRequest(http.MethodGet, "/api/posts/abc", nil))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body models.ErrorResponse
		decodeJSON(t, resp, &body)
		require.Len(t, body.Errors, 1)
		assert.Equal(t, "Post not found", body.Errors[0].Msg)
	})

	t.Run("absent post", func(t *testing.T) {
		h := newPostHarness()
		h.postRepo.On("GetByID", mock.Anything, uint(99)).
			Return(nil, models.NewNotFoundError("Post not found")).Once()

		resp, err := h.app.Test(httptest.NewRequest(http.MethodGet, "/api/posts/99", nil))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestDeletePost(t *testing.T) {
	t.Run("non-owner is unauthorized", func(t *testing.T) {
		h := newPostHarness()
		h.postRepo.On("GetByID", mock.Anything, uint(10)).
			Return(&models.Post{ID: 10, UserID: 2}, nil).Once()

		resp, err := h.app.Test(httptest.NewRequest(http.MethodDelete, "/api/posts/10", nil))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		var body models.ErrorResponse
		decodeJSON(t, resp, &body)
		require.Len(t, body.Errors, 1)
		assert.Equal(t, "User not authorized", body.Errors[0].Msg)
	})

	t.Run("owner removes post", func(t *testing.T) {
		h := newPostHarness()
		h.postRepo.On("GetByID", mock.Anything, uint(10)).
			Return(&models.Post{ID: 10, UserID: 1}, nil).Once()
		h.postRepo.On("Delete", mock.Anything, uint(10)).Return(nil).Once()

		resp, err := h.app.Test(httptest.NewRequest(http.MethodDelete, "/api/posts/10", nil))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		decodeJSON(t, resp, &body)
		assert.Equal(t, "Post removed", body["msg"])
	})
}

func TestLikePost(t *testing.T) {
	t.Run("own post", func(t *testing.T) {
		h := newPostHarness()
		h.postRepo.On("GetByID", mock.Anything, uint(10)).
			Return(&models.Post{ID: 10, UserID: 1}, nil).Once()

		resp, err := h.app.Test(httptest.NewRequest(http.MethodPut, "/api/posts/like/10", nil))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("already liked", func(t *testing.T) {
		h := newPostHarness()
		h.postRepo.On("GetByID", mock.Anything, uint(10)).
			Return(&models.Post{ID: 10, UserID: 2}, nil).Once()
		h.postRepo.On("Like", mock.Anything, uint(1), uint(10)).
			Return(models.NewValidationError("Post already liked")).Once()

		resp, err := h.app.Test(httptest.NewRequest(http.MethodPut, "/api/posts/like/10", nil))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body models.ErrorResponse
		decodeJSON(t, resp, &body)
		require.Len(t, body.Errors, 1)
		assert.Equal(t, "Post already liked", body.Errors[0].Msg)
	})

	t.Run("success returns likes", func(t *testing.T) {
		h := newPostHarness()
		h.postRepo.On("GetByID", mock.Anything, uint(10)).
			Return(&models.Post{ID: 10, UserID: 2}, nil).Once()
		h.postRepo.On("Like", mock.Anything, uint(1), uint(10)).Return(nil).Once()
		h.postRepo.On("GetByID", mock.Anything, uint(10)).
			Return(&models.Post{ID: 10, UserID: 2,
				Likes: []models.Like{{ID: 5, PostID: 10, UserID: 1}}}, nil).Once()

		resp, err := h.app.Test(httptest.NewRequest(http.MethodPut, "/api/posts/like/10", nil))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var likes []map[string]any
		decodeJSON(t, resp, &likes)
		require.Len(t, likes, 1)
		assert.Equal(t, float64(1), likes[0]["user"])
	})
}

func TestUnlikePost_NotYetLiked(t *testing.T) {
	h := newPostHarness()
	h.postRepo.On("GetByID", mock.Anything, uint(10)).
		Return(&models.Post{ID: 10, UserID: 2}, nil).Once()
	h.postRepo.On("HasLiked", mock.Anything, uint(1), uint(10)).
		Return(false, nil).Once()

	resp, err := h.app.Test(httptest.NewRequest(http.MethodPut, "/api/posts/unlike/10", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body models.ErrorResponse
	decodeJSON(t, resp, &body)
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "Post has not yet been liked", body.Errors[0].Msg)
}

func TestAddComment(t *testing.T) {
	h := newPostHarness()
	post := &models.Post{ID: 10, UserID: 2}
	h.postRepo.On("GetByID", mock.Anything, uint(10)).Return(post, nil).Once()
	h.userRepo.On("GetByID", mock.Anything, uint(1)).
		Return(&models.User{ID: 1, Name: "A", Avatar: "//gravatar/a"}, nil).Once()
	h.commentRepo.On("Create", mock.Anything, mock.MatchedBy(func(c *models.Comment) bool {
		return c.PostID == 10 && c.Name == "A" && c.Text == "nice"
	})).Return(nil).Once()
	h.postRepo.On("GetByID", mock.Anything, uint(10)).
		Return(&models.Post{ID: 10, UserID: 2,
			Comments: []models.Comment{{ID: 3, PostID: 10, UserID: 1, Name: "A", Text: "nice"}}}, nil).Once()

	resp, err := h.app.Test(jsonRequest(http.MethodPost, "/api/posts/comment/10",
		map[string]string{"text": "nice"}))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var comments []map[string]any
	decodeJSON(t, resp, &comments)
	require.Len(t, comments, 1)
	assert.Equal(t, "nice", comments[0]["text"])
}

func TestDeleteComment(t *testing.T) {
	t.Run("non-author is unauthorized", func(t *testing.T) {
		h := newPostHarness()
		h.commentRepo.On("GetByID", mock.Anything, uint(3)).
			Return(&models.Comment{ID: 3, PostID: 10, UserID: 2}, nil).Once()

		resp, err := h.app.Test(httptest.NewRequest(http.MethodDelete, "/api/posts/comment/10/3", nil))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("missing comment", func(t *testing.T) {
		h := newPostHarness()
		h.commentRepo.On("GetByID", mock.Anything, uint(99)).
			Return(nil, models.NewNotFoundError("Comment does not exist")).Once()

		resp, err := h.app.Test(httptest.NewRequest(http.MethodDelete, "/api/posts/comment/10/99", nil))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body models.ErrorResponse
		decodeJSON(t, resp, &body)
		require.Len(t, body.Errors, 1)
		assert.Equal(t, "Comment does not exist", body.Errors[0].Msg)
	})

	t.Run("author removes comment", func(t *testing.T) {
		h := newPostHarness()
		h.commentRepo.On("GetByID", mock.Anything, uint(3)).
			Return(&models.Comment{ID: 3, PostID: 10, UserID: 1}, nil).Once()
		h.commentRepo.On("Delete", mock.Anything, uint(3)).Return(nil).Once()
		h.postRepo.On("GetByID", mock.Anything, uint(10)).
			Return(&models.Post{ID: 10, UserID: 2}, nil).Once()

		resp, err := h.app.Test(httptest.NewRequest(http.MethodDelete, "/api/posts/comment/10/3", nil))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var comments []any
		decodeJSON(t, resp, &comments)
		assert.Empty(t, comments)
	})
}
