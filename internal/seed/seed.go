package seed

import (
	"fmt"
	"log"

	"github.com/beingscholar/devconnector/internal/models"

	"gorm.io/gorm"
)

// Seeder orchestrates database population for development environments.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
}

// NewSeeder creates a Seeder bound to the given database.
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db, factory: NewFactory(db)}
}

// ClearAll removes all seeded data. Deletion order respects foreign keys.
func (s *Seeder) ClearAll() error {
	tables := []any{
		&models.Comment{},
		&models.Like{},
		&models.Post{},
		&models.Experience{},
		&models.Education{},
		&models.Profile{},
		&models.User{},
	}
	for _, table := range tables {
		if err := s.db.Unscoped().Where("1 = 1").Delete(table).Error; err != nil {
			return fmt.Errorf("clearing %T: %w", table, err)
		}
	}
	return nil
}

// Run populates the database with numUsers users (each with a profile) and
// numPosts posts, then sprinkles likes and comments across them.
func (s *Seeder) Run(numUsers, numPosts int) error {
	users := make([]*models.User, 0, numUsers)
	for i := 0; i < numUsers; i++ {
		user, err := s.factory.CreateUser()
		if err != nil {
			return fmt.Errorf("creating user: %w", err)
		}
		if _, err := s.factory.CreateProfile(user); err != nil {
			return fmt.Errorf("creating profile: %w", err)
		}
		users = append(users, user)
	}
	log.Printf("seeded %d users with profiles", len(users))

	if len(users) == 0 {
		return nil
	}

	posts := make([]*models.Post, 0, numPosts)
	for i := 0; i < numPosts; i++ {
		author := users[s.factory.r.Intn(len(users))]
		post, err := s.factory.CreatePost(author)
		if err != nil {
			return fmt.Errorf("creating post: %w", err)
		}
		posts = append(posts, post)
	}
	log.Printf("seeded %d posts", len(posts))

	for _, post := range posts {
		for i := 0; i < s.factory.r.Intn(5); i++ {
			liker := users[s.factory.r.Intn(len(users))]
			if err := s.factory.LikePost(liker, post); err != nil {
				return fmt.Errorf("liking post: %w", err)
			}
		}
		if s.factory.r.Intn(3) == 0 {
			commenter := users[s.factory.r.Intn(len(users))]
			if err := s.factory.CommentOnPost(commenter, post); err != nil {
				return fmt.Errorf("commenting on post: %w", err)
			}
		}
	}
	return nil
}
