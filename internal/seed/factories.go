// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/beingscholar/devconnector/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var statuses = []string{
	"Developer",
	"Junior Developer",
	"Senior Developer",
	"Manager",
	"Student or Learning",
	"Instructor or Teacher",
	"Intern",
}

var skillPool = []string{
	"Go", "JavaScript", "TypeScript", "Python", "Rust", "C++",
	"HTML", "CSS", "React", "Node.js", "PostgreSQL", "Redis",
	"Docker", "Kubernetes", "GraphQL", "AWS",
}

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db *gorm.DB
	r  *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	seed := time.Now().UnixNano()
	gofakeit.Seed(seed)
	return &Factory{db: db, r: rand.New(rand.NewSource(seed))}
}

// BuildUser constructs a user without persisting it. The password for every
// seeded account is "secret1".
func (f *Factory) BuildUser() *models.User {
	email := strings.ToLower(gofakeit.Email())
	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	return &models.User{
		Name:     gofakeit.Name(),
		Email:    email,
		Password: string(hashed),
		Avatar:   models.GravatarURL(email),
	}
}

// CreateUser persists a generated user.
func (f *Factory) CreateUser() (*models.User, error) {
	user := f.BuildUser()
	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// BuildProfile constructs a profile for the given user without persisting it.
func (f *Factory) BuildProfile(user *models.User) *models.Profile {
	skills := make([]string, 0, 5)
	for _, i := range f.r.Perm(len(skillPool))[:3+f.r.Intn(3)] {
		skills = append(skills, skillPool[i])
	}

	profile := &models.Profile{
		UserID:         user.ID,
		Company:        gofakeit.Company(),
		Website:        gofakeit.URL(),
		Location:       fmt.Sprintf("%s, %s", gofakeit.City(), gofakeit.Country()),
		Bio:            gofakeit.Sentence(12),
		Status:         statuses[f.r.Intn(len(statuses))],
		GithubUsername: strings.ToLower(gofakeit.Username()),
		Skills:         skills,
	}
	if f.r.Intn(2) == 0 {
		profile.Social = models.SocialLinks{
			Twitter:  "https://twitter.com/" + profile.GithubUsername,
			Linkedin: "https://www.linkedin.com/in/" + profile.GithubUsername,
		}
	}
	return profile
}

// CreateProfile persists a generated profile with one experience and one
// education entry attached.
func (f *Factory) CreateProfile(user *models.User) (*models.Profile, error) {
	profile := f.BuildProfile(user)
	if err := f.db.Create(profile).Error; err != nil {
		return nil, err
	}

	from := time.Now().AddDate(-1-f.r.Intn(5), 0, 0)
	exp := &models.Experience{
		ProfileID:   profile.ID,
		Title:       gofakeit.JobTitle(),
		Company:     gofakeit.Company(),
		Location:    gofakeit.City(),
		From:        from,
		Current:     true,
		Description: gofakeit.Sentence(10),
	}
	if err := f.db.Create(exp).Error; err != nil {
		return nil, err
	}

	eduFrom := from.AddDate(-4, 0, 0)
	eduTo := from
	edu := &models.Education{
		ProfileID:    profile.ID,
		School:       gofakeit.Company() + " University",
		Degree:       "BSc",
		FieldOfStudy: "Computer Science",
		From:         eduFrom,
		To:           &eduTo,
	}
	if err := f.db.Create(edu).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

// BuildPost constructs a post authored by user without persisting it.
func (f *Factory) BuildPost(user *models.User) *models.Post {
	post := &models.Post{
		UserID: user.ID,
		Name:   user.Name,
		Avatar: user.Avatar,
		Text:   gofakeit.Paragraph(1, 2, 8, " "),
	}
	// Spread creation times over the past 90 days so listings look lived-in.
	post.CreatedAt = time.Now().Add(-time.Duration(f.r.Intn(90*24)) * time.Hour)
	return post
}

// CreatePost persists a generated post.
func (f *Factory) CreatePost(user *models.User) (*models.Post, error) {
	post := f.BuildPost(user)
	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// LikePost records a like, ignoring duplicates.
func (f *Factory) LikePost(user *models.User, post *models.Post) error {
	if user.ID == post.UserID {
		return nil
	}
	var count int64
	f.db.Model(&models.Like{}).
		Where("post_id = ? AND user_id = ?", post.ID, user.ID).
		Count(&count)
	if count > 0 {
		return nil
	}
	return f.db.Create(&models.Like{PostID: post.ID, UserID: user.ID}).Error
}

// CommentOnPost adds a comment by user to post.
func (f *Factory) CommentOnPost(user *models.User, post *models.Post) error {
	return f.db.Create(&models.Comment{
		PostID: post.ID,
		UserID: user.ID,
		Name:   user.Name,
		Avatar: user.Avatar,
		Text:   gofakeit.Sentence(8),
	}).Error
}
