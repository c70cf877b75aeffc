package client

import (
	"fmt"
	"time"
)

// User is an account as rendered by the API. The password hash never
// crosses the wire.
type User struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
}

// SocialLinks holds a profile's optional social media URLs.
type SocialLinks struct {
	Youtube   string `json:"youtube,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Linkedin  string `json:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

// Experience is a profile work history entry.
type Experience struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location"`
	From        time.Time  `json:"from"`
	To          *time.Time `json:"to"`
	Current     bool       `json:"current"`
	Description string     `json:"description"`
}

// Education is a profile education history entry.
type Education struct {
	ID           uint       `json:"id"`
	School       string     `json:"school"`
	Degree       string     `json:"degree"`
	FieldOfStudy string     `json:"fieldofstudy"`
	From         time.Time  `json:"from"`
	To           *time.Time `json:"to"`
	Current      bool       `json:"current"`
	Description  string     `json:"description"`
}

// Profile is a user's public developer profile.
type Profile struct {
	ID             uint         `json:"id"`
	UserID         uint         `json:"user_id"`
	User           *User        `json:"user,omitempty"`
	Company        string       `json:"company"`
	Website        string       `json:"website"`
	Location       string       `json:"location"`
	Bio            string       `json:"bio"`
	Status         string       `json:"status"`
	GithubUsername string       `json:"githubusername"`
	Skills         []string     `json:"skills"`
	Social         SocialLinks  `json:"social"`
	Experience     []Experience `json:"experience"`
	Education      []Education  `json:"education"`
}

// Like is a single user's endorsement of a post.
type Like struct {
	ID     uint `json:"id"`
	UserID uint `json:"user"`
}

// Comment is a post comment with the author denormalized.
type Comment struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// Post is a feed post with likes and comments preloaded.
type Post struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar"`
	Text      string    `json:"text"`
	Likes     []Like    `json:"likes"`
	Comments  []Comment `json:"comments"`
	CreatedAt time.Time `json:"created_at"`
}

// Repo is the subset of a GitHub repository listing the dashboard renders.
type Repo struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	HTMLURL         string `json:"html_url"`
	Description     string `json:"description"`
	StargazersCount int    `json:"stargazers_count"`
	WatchersCount   int    `json:"watchers_count"`
	ForksCount      int    `json:"forks_count"`
}

// APIError is a request failure normalized from the server's error envelope.
type APIError struct {
	Status int
	Msg    string
	Msgs   []string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (status %d)", e.Msg, e.Status)
}
