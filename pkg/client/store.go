package client

import "sync"

// AuthState is the authentication slice of the store.
type AuthState struct {
	Token           string
	User            *User
	IsAuthenticated bool
	Loading         bool
}

// ProfileState is the profile slice of the store.
type ProfileState struct {
	Profile  *Profile
	Profiles []Profile
	Repos    []Repo
	Loading  bool
	Err      *APIError
}

// PostState is the post feed slice of the store.
type PostState struct {
	Posts   []Post
	Post    *Post
	Loading bool
	Err     *APIError
}

// Store holds client-side state behind a mutex. Snapshots are returned by
// value; the apply* methods are the only mutation path.
type Store struct {
	mu      sync.RWMutex
	auth    AuthState
	profile ProfileState
	posts   PostState
}

// NewStore returns an empty store with the loading flags raised, matching
// the pre-first-request state.
func NewStore() *Store {
	return &Store{
		auth:    AuthState{Loading: true},
		profile: ProfileState{Loading: true},
		posts:   PostState{Loading: true},
	}
}

// Auth returns a snapshot of the auth slice.
func (s *Store) Auth() AuthState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.auth
}

// Profile returns a snapshot of the profile slice.
func (s *Store) Profile() ProfileState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

// Posts returns a snapshot of the post slice.
func (s *Store) Posts() PostState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.posts
}

func (s *Store) applyAuthSuccess(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auth.Token = token
	s.auth.IsAuthenticated = true
	s.auth.Loading = false
}

func (s *Store) applyUserLoaded(user *User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auth.User = user
	s.auth.IsAuthenticated = true
	s.auth.Loading = false
}

func (s *Store) applyAuthFailure() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auth = AuthState{}
	s.profile = ProfileState{}
}

func (s *Store) applyProfileLoaded(profile *Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile.Profile = profile
	s.profile.Loading = false
	s.profile.Err = nil
}

func (s *Store) applyProfilesLoaded(profiles []Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile.Profiles = profiles
	s.profile.Loading = false
	s.profile.Err = nil
}

func (s *Store) applyReposLoaded(repos []Repo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile.Repos = repos
	s.profile.Loading = false
}

func (s *Store) applyProfileFailure(err *APIError) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile.Profile = nil
	s.profile.Loading = false
	s.profile.Err = err
}

func (s *Store) applyProfileCleared() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = ProfileState{}
}

func (s *Store) applyPostsLoaded(posts []Post) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts.Posts = posts
	s.posts.Loading = false
	s.posts.Err = nil
}

func (s *Store) applyPostLoaded(post *Post) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts.Post = post
	s.posts.Loading = false
	s.posts.Err = nil
}

func (s *Store) applyPostAdded(post Post) {
	s.mu.Lock()
	defer s.mu.Unlock()
	// Newest first, matching the server's feed ordering.
	s.posts.Posts = append([]Post{post}, s.posts.Posts...)
	s.posts.Loading = false
}

func (s *Store) applyPostRemoved(postID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.posts.Posts[:0]
	for _, p := range s.posts.Posts {
		if p.ID != postID {
			kept = append(kept, p)
		}
	}
	s.posts.Posts = kept
}

func (s *Store) applyLikesUpdated(postID uint, likes []Like) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.posts.Posts {
		if s.posts.Posts[i].ID == postID {
			s.posts.Posts[i].Likes = likes
		}
	}
	if s.posts.Post != nil && s.posts.Post.ID == postID {
		s.posts.Post.Likes = likes
	}
}

func (s *Store) applyCommentsUpdated(postID uint, comments []Comment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.posts.Post != nil && s.posts.Post.ID == postID {
		s.posts.Post.Comments = comments
	}
	for i := range s.posts.Posts {
		if s.posts.Posts[i].ID == postID {
			s.posts.Posts[i].Comments = comments
		}
	}
}

func (s *Store) applyPostFailure(err *APIError) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts.Loading = false
	s.posts.Err = err
}
