package client

import (
	"context"
	"fmt"
	"net/http"
)

// ProfileInput is the create-or-update profile request body. Skills is a
// single comma-separated string, split server-side.
type ProfileInput struct {
	Company        string `json:"company,omitempty"`
	Website        string `json:"website,omitempty"`
	Location       string `json:"location,omitempty"`
	Bio            string `json:"bio,omitempty"`
	Status         string `json:"status"`
	GithubUsername string `json:"githubusername,omitempty"`
	Skills         string `json:"skills"`
	Youtube        string `json:"youtube,omitempty"`
	Twitter        string `json:"twitter,omitempty"`
	Facebook       string `json:"facebook,omitempty"`
	Linkedin       string `json:"linkedin,omitempty"`
	Instagram      string `json:"instagram,omitempty"`
}

// ExperienceInput is the add-experience request body. Dates use YYYY-MM-DD.
type ExperienceInput struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location,omitempty"`
	From        string `json:"from"`
	To          string `json:"to,omitempty"`
	Current     bool   `json:"current"`
	Description string `json:"description,omitempty"`
}

// EducationInput is the add-education request body. Dates use YYYY-MM-DD.
type EducationInput struct {
	School       string `json:"school"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"fieldofstudy"`
	From         string `json:"from"`
	To           string `json:"to,omitempty"`
	Current      bool   `json:"current"`
	Description  string `json:"description,omitempty"`
}

// Register creates an account, stores the issued token and loads the user.
func (c *Client) Register(ctx context.Context, name, email, password string) error {
	var out struct {
		Token string `json:"token"`
	}
	err := c.do(ctx, http.MethodPost, "/api/users", map[string]string{
		"name": name, "email": email, "password": password,
	}, &out)
	if err != nil {
		c.alertFailure(err)
		c.store.applyAuthFailure()
		return err
	}
	c.SetToken(out.Token)
	c.store.applyAuthSuccess(out.Token)
	return c.LoadUser(ctx)
}

// Login authenticates, stores the issued token and loads the user.
func (c *Client) Login(ctx context.Context, email, password string) error {
	var out struct {
		Token string `json:"token"`
	}
	err := c.do(ctx, http.MethodPost, "/api/auth", map[string]string{
		"email": email, "password": password,
	}, &out)
	if err != nil {
		c.alertFailure(err)
		c.store.applyAuthFailure()
		return err
	}
	c.SetToken(out.Token)
	c.store.applyAuthSuccess(out.Token)
	return c.LoadUser(ctx)
}

// LoadUser fetches the authenticated user into the auth slice.
func (c *Client) LoadUser(ctx context.Context) error {
	var user User
	if err := c.do(ctx, http.MethodGet, "/api/auth", nil, &user); err != nil {
		c.store.applyAuthFailure()
		return err
	}
	c.store.applyUserLoaded(&user)
	return nil
}

// Logout drops the token and clears the auth and profile slices.
func (c *Client) Logout() {
	c.SetToken("")
	c.store.applyAuthFailure()
	c.store.applyProfileCleared()
}

// FetchProfiles loads every profile into the store.
func (c *Client) FetchProfiles(ctx context.Context) ([]Profile, error) {
	var profiles []Profile
	if err := c.do(ctx, http.MethodGet, "/api/profile", nil, &profiles); err != nil {
		if apiErr, ok := err.(*APIError); ok {
			c.store.applyProfileFailure(apiErr)
		}
		return nil, err
	}
	c.store.applyProfilesLoaded(profiles)
	return profiles, nil
}

// FetchMyProfile loads the caller's own profile.
func (c *Client) FetchMyProfile(ctx context.Context) (*Profile, error) {
	var profile Profile
	if err := c.do(ctx, http.MethodGet, "/api/profile/me", nil, &profile); err != nil {
		if apiErr, ok := err.(*APIError); ok {
			c.store.applyProfileFailure(apiErr)
		}
		return nil, err
	}
	c.store.applyProfileLoaded(&profile)
	return &profile, nil
}

// FetchProfileByUserID loads another user's profile.
func (c *Client) FetchProfileByUserID(ctx context.Context, userID uint) (*Profile, error) {
	var profile Profile
	path := fmt.Sprintf("/api/profile/user/%d", userID)
	if err := c.do(ctx, http.MethodGet, path, nil, &profile); err != nil {
		if apiErr, ok := err.(*APIError); ok {
			c.store.applyProfileFailure(apiErr)
		}
		return nil, err
	}
	c.store.applyProfileLoaded(&profile)
	return &profile, nil
}

// SaveProfile creates or updates the caller's profile.
func (c *Client) SaveProfile(ctx context.Context, in ProfileInput) (*Profile, error) {
	var profile Profile
	if err := c.do(ctx, http.MethodPost, "/api/profile", in, &profile); err != nil {
		c.alertFailure(err)
		return nil, err
	}
	c.store.applyProfileLoaded(&profile)
	c.alerts.Add("Profile Updated", AlertSuccess)
	return &profile, nil
}

// AddExperience appends a work history entry to the caller's profile.
func (c *Client) AddExperience(ctx context.Context, in ExperienceInput) (*Profile, error) {
	var profile Profile
	if err := c.do(ctx, http.MethodPut, "/api/profile/experience", in, &profile); err != nil {
		c.alertFailure(err)
		return nil, err
	}
	c.store.applyProfileLoaded(&profile)
	c.alerts.Add("Experience Added", AlertSuccess)
	return &profile, nil
}

// DeleteExperience removes a work history entry by id.
func (c *Client) DeleteExperience(ctx context.Context, id uint) (*Profile, error) {
	var profile Profile
	path := fmt.Sprintf("/api/profile/experience/%d", id)
	if err := c.do(ctx, http.MethodDelete, path, nil, &profile); err != nil {
		c.alertFailure(err)
		return nil, err
	}
	c.store.applyProfileLoaded(&profile)
	c.alerts.Add("Experience Removed", AlertSuccess)
	return &profile, nil
}

// AddEducation appends an education entry to the caller's profile.
func (c *Client) AddEducation(ctx context.Context, in EducationInput) (*Profile, error) {
	var profile Profile
	if err := c.do(ctx, http.MethodPut, "/api/profile/education", in, &profile); err != nil {
		c.alertFailure(err)
		return nil, err
	}
	c.store.applyProfileLoaded(&profile)
	c.alerts.Add("Education Added", AlertSuccess)
	return &profile, nil
}

// DeleteEducation removes an education entry by id.
func (c *Client) DeleteEducation(ctx context.Context, id uint) (*Profile, error) {
	var profile Profile
	path := fmt.Sprintf("/api/profile/education/%d", id)
	if err := c.do(ctx, http.MethodDelete, path, nil, &profile); err != nil {
		c.alertFailure(err)
		return nil, err
	}
	c.store.applyProfileLoaded(&profile)
	c.alerts.Add("Education Removed", AlertSuccess)
	return &profile, nil
}

// DeleteAccount permanently removes the caller's account and logs out.
func (c *Client) DeleteAccount(ctx context.Context) error {
	if err := c.do(ctx, http.MethodDelete, "/api/profile", nil, nil); err != nil {
		c.alertFailure(err)
		return err
	}
	c.Logout()
	c.alerts.Add("Your account has been permanently deleted", AlertSuccess)
	return nil
}

// FetchGithubRepos loads a user's recent GitHub repositories.
func (c *Client) FetchGithubRepos(ctx context.Context, username string) ([]Repo, error) {
	var repos []Repo
	path := "/api/profile/github/" + username
	if err := c.do(ctx, http.MethodGet, path, nil, &repos); err != nil {
		if apiErr, ok := err.(*APIError); ok {
			c.store.applyProfileFailure(apiErr)
		}
		return nil, err
	}
	c.store.applyReposLoaded(repos)
	return repos, nil
}

// FetchPosts loads the post feed.
func (c *Client) FetchPosts(ctx context.Context) ([]Post, error) {
	var posts []Post
	if err := c.do(ctx, http.MethodGet, "/api/posts", nil, &posts); err != nil {
		if apiErr, ok := err.(*APIError); ok {
			c.store.applyPostFailure(apiErr)
		}
		return nil, err
	}
	c.store.applyPostsLoaded(posts)
	return posts, nil
}

// FetchPost loads a single post with its likes and comments.
func (c *Client) FetchPost(ctx context.Context, id uint) (*Post, error) {
	var post Post
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/posts/%d", id), nil, &post); err != nil {
		if apiErr, ok := err.(*APIError); ok {
			c.store.applyPostFailure(apiErr)
		}
		return nil, err
	}
	c.store.applyPostLoaded(&post)
	return &post, nil
}

// CreatePost publishes a new post and prepends it to the feed.
func (c *Client) CreatePost(ctx context.Context, text string) (*Post, error) {
	var post Post
	err := c.do(ctx, http.MethodPost, "/api/posts", map[string]string{"text": text}, &post)
	if err != nil {
		c.alertFailure(err)
		return nil, err
	}
	c.store.applyPostAdded(post)
	c.alerts.Add("Post Created", AlertSuccess)
	return &post, nil
}

// DeletePost removes one of the caller's posts from the feed.
func (c *Client) DeletePost(ctx context.Context, id uint) error {
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/posts/%d", id), nil, nil); err != nil {
		c.alertFailure(err)
		return err
	}
	c.store.applyPostRemoved(id)
	c.alerts.Add("Post Removed", AlertSuccess)
	return nil
}

// LikePost likes a post and updates its likes in the store.
func (c *Client) LikePost(ctx context.Context, id uint) ([]Like, error) {
	var likes []Like
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/posts/like/%d", id), nil, &likes); err != nil {
		c.alertFailure(err)
		return nil, err
	}
	c.store.applyLikesUpdated(id, likes)
	return likes, nil
}

// UnlikePost removes the caller's like and updates the store.
func (c *Client) UnlikePost(ctx context.Context, id uint) ([]Like, error) {
	var likes []Like
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/posts/unlike/%d", id), nil, &likes); err != nil {
		c.alertFailure(err)
		return nil, err
	}
	c.store.applyLikesUpdated(id, likes)
	return likes, nil
}

// AddComment comments on a post and updates its comments in the store.
func (c *Client) AddComment(ctx context.Context, postID uint, text string) ([]Comment, error) {
	var comments []Comment
	path := fmt.Sprintf("/api/posts/comment/%d", postID)
	if err := c.do(ctx, http.MethodPost, path, map[string]string{"text": text}, &comments); err != nil {
		c.alertFailure(err)
		return nil, err
	}
	c.store.applyCommentsUpdated(postID, comments)
	c.alerts.Add("Comment Added", AlertSuccess)
	return comments, nil
}

// DeleteComment removes the caller's comment and updates the store.
func (c *Client) DeleteComment(ctx context.Context, postID, commentID uint) ([]Comment, error) {
	var comments []Comment
	path := fmt.Sprintf("/api/posts/comment/%d/%d", postID, commentID)
	if err := c.do(ctx, http.MethodDelete, path, nil, &comments); err != nil {
		c.alertFailure(err)
		return nil, err
	}
	c.store.applyCommentsUpdated(postID, comments)
	c.alerts.Add("Comment Removed", AlertSuccess)
	return comments, nil
}
