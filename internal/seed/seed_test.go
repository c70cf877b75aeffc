package seed

import (
	"strings"
	"testing"

	"github.com/beingscholar/devconnector/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBuildUser(t *testing.T) {
	f := NewFactory(nil)
	user := f.BuildUser()

	assert.NotEmpty(t, user.Name)
	assert.Contains(t, user.Email, "@")
	assert.Equal(t, strings.ToLower(user.Email), user.Email)
	assert.Contains(t, user.Avatar, "gravatar.com/avatar/")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret1")))
}

func TestBuildProfile(t *testing.T) {
	f := NewFactory(nil)
	profile := f.BuildProfile(&models.User{ID: 3})

	assert.Equal(t, uint(3), profile.UserID)
	assert.NotEmpty(t, profile.Status)
	require.GreaterOrEqual(t, len(profile.Skills), 3)
	seen := map[string]bool{}
	for _, skill := range profile.Skills {
		assert.False(t, seen[skill], "duplicate skill %q", skill)
		seen[skill] = true
	}
}

func TestBuildPostDenormalizesAuthor(t *testing.T) {
	f := NewFactory(nil)
	user := &models.User{ID: 2, Name: "Jane", Avatar: "//gravatar/j"}
	post := f.BuildPost(user)

	assert.Equal(t, uint(2), post.UserID)
	assert.Equal(t, "Jane", post.Name)
	assert.Equal(t, "//gravatar/j", post.Avatar)
	assert.NotEmpty(t, post.Text)
}
