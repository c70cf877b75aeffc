package service

import (
	"context"
	"strings"

	"github.com/beingscholar/devconnector/internal/models"
	"github.com/beingscholar/devconnector/internal/repository"
)

type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	userRepo    repository.UserRepository
}

func NewCommentService(
	commentRepo repository.CommentRepository,
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
	}
}

// AddComment prepends a comment with the commenter's denormalized name and
// avatar, returning the post's comments newest-first.
func (s *CommentService) AddComment(ctx context.Context, userID, postID uint, text string) ([]models.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, models.NewValidationError("Text is required")
	}
	if len(text) > maxPostLen {
		return nil, models.NewValidationError("Comment too long (max 10000 characters)")
	}

	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID: postID,
		UserID: user.ID,
		Name:   user.Name,
		Avatar: user.Avatar,
		Text:   text,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	refreshed, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	return refreshed.Comments, nil
}

// DeleteComment removes a comment. Only the comment's author may delete it.
func (s *CommentService) DeleteComment(ctx context.Context, userID, postID, commentID uint) ([]models.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment.PostID != postID {
		return nil, models.NewNotFoundError("Comment does not exist")
	}
	if comment.UserID != userID {
		return nil, models.NewUnauthorizedError("User not authorized")
	}
	if err := s.commentRepo.Delete(ctx, commentID); err != nil {
		return nil, err
	}

	refreshed, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	return refreshed.Comments, nil
}
