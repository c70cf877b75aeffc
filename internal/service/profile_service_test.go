package service

import (
	"context"
	"testing"
	"time"

	"github.com/beingscholar/devconnector/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSkills(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"Go", "SQL", "Docker"}, ParseSkills("Go, SQL ,Docker"))
	assert.Equal(t, []string{"Go"}, ParseSkills("Go"))
	assert.Empty(t, ParseSkills(" , ,"))
	assert.Empty(t, ParseSkills(""))
}

func TestProfileService_GetMyProfile(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("no profile yet", func(t *testing.T) {
		t.Parallel()
		profileRepo := noopProfileRepo()
		profileRepo.getByUserIDFn = func(_ context.Context, _ uint) (*models.Profile, error) {
			return nil, nil
		}
		svc := NewProfileService(profileRepo, noopUserRepo(), noopPostRepo())

		_, err := svc.GetMyProfile(ctx, 1)
		assertNotFoundError(t, err)
		assert.Contains(t, err.Error(), "There is no profile for this user")
	})

	t.Run("found", func(t *testing.T) {
		t.Parallel()
		svc := NewProfileService(noopProfileRepo(), noopUserRepo(), noopPostRepo())
		profile, err := svc.GetMyProfile(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, uint(1), profile.UserID)
	})
}

func TestProfileService_Upsert_Validation(t *testing.T) {
	t.Parallel()
	svc := NewProfileService(noopProfileRepo(), noopUserRepo(), noopPostRepo())
	ctx := context.Background()

	t.Run("missing status", func(t *testing.T) {
		t.Parallel()
		_, err := svc.Upsert(ctx, UpsertProfileInput{UserID: 1, Skills: "Go"})
		assertValidationError(t, err)
	})

	t.Run("missing skills", func(t *testing.T) {
		t.Parallel()
		_, err := svc.Upsert(ctx, UpsertProfileInput{UserID: 1, Status: "Developer", Skills: " , "})
		assertValidationError(t, err)
	})
}

func TestProfileService_Upsert_CreatesWhenAbsent(t *testing.T) {
	t.Parallel()

	var created *models.Profile
	calls := 0
	profileRepo := noopProfileRepo()
	profileRepo.getByUserIDFn = func(_ context.Context, userID uint) (*models.Profile, error) {
		calls++
		if calls == 1 {
			return nil, nil
		}
		return created, nil
	}
	profileRepo.createFn = func(_ context.Context, p *models.Profile) error {
		p.ID = 7
		created = p
		return nil
	}

	svc := NewProfileService(profileRepo, noopUserRepo(), noopPostRepo())
	profile, err := svc.Upsert(context.Background(), UpsertProfileInput{
		UserID: 1,
		Status: "Developer",
		Skills: "Go, SQL",
		Social: models.SocialLinks{Twitter: "https://twitter.com/johndoe"},
	})
	require.NoError(t, err)
	assert.Equal(t, uint(7), profile.ID)
	assert.Equal(t, []string{"Go", "SQL"}, profile.Skills)
	assert.Equal(t, "https://twitter.com/johndoe", profile.Social.Twitter)
}

func TestProfileService_Upsert_MergesExisting(t *testing.T) {
	t.Parallel()

	existing := &models.Profile{
		ID:       7,
		UserID:   1,
		Status:   "Junior Developer",
		Company:  "Acme",
		Location: "Berlin",
		Skills:   []string{"Go"},
	}
	var saved *models.Profile
	profileRepo := noopProfileRepo()
	profileRepo.getByUserIDFn = func(_ context.Context, _ uint) (*models.Profile, error) {
		return existing, nil
	}
	profileRepo.updateFn = func(_ context.Context, p *models.Profile) error {
		saved = p
		return nil
	}

	svc := NewProfileService(profileRepo, noopUserRepo(), noopPostRepo())
	_, err := svc.Upsert(context.Background(), UpsertProfileInput{
		UserID:  1,
		Status:  "Senior Developer",
		Skills:  "Go, Kubernetes",
		Company: "Initech",
	})
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "Senior Developer", saved.Status)
	assert.Equal(t, []string{"Go", "Kubernetes"}, saved.Skills)
	assert.Equal(t, "Initech", saved.Company)
	// Fields not supplied stay untouched.
	assert.Equal(t, "Berlin", saved.Location)
}

func TestProfileService_AddExperience(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	from := time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("validation", func(t *testing.T) {
		t.Parallel()
		svc := NewProfileService(noopProfileRepo(), noopUserRepo(), noopPostRepo())

		_, err := svc.AddExperience(ctx, ExperienceInput{UserID: 1, Company: "Acme", From: from})
		assertValidationError(t, err)

		_, err = svc.AddExperience(ctx, ExperienceInput{UserID: 1, Title: "Dev", From: from})
		assertValidationError(t, err)

		_, err = svc.AddExperience(ctx, ExperienceInput{UserID: 1, Title: "Dev", Company: "Acme"})
		assertValidationError(t, err)
	})

	t.Run("attaches to the caller's profile", func(t *testing.T) {
		t.Parallel()
		var added *models.Experience
		profileRepo := noopProfileRepo()
		profileRepo.addExperienceFn = func(_ context.Context, exp *models.Experience) error {
			added = exp
			return nil
		}
		svc := NewProfileService(profileRepo, noopUserRepo(), noopPostRepo())

		_, err := svc.AddExperience(ctx, ExperienceInput{
			UserID:  1,
			Title:   "Developer",
			Company: "Acme",
			From:    from,
			Current: true,
		})
		require.NoError(t, err)
		require.NotNil(t, added)
		assert.Equal(t, uint(7), added.ProfileID)
		assert.True(t, added.Current)
	})

	t.Run("no profile", func(t *testing.T) {
		t.Parallel()
		profileRepo := noopProfileRepo()
		profileRepo.getByUserIDFn = func(_ context.Context, _ uint) (*models.Profile, error) {
			return nil, nil
		}
		svc := NewProfileService(profileRepo, noopUserRepo(), noopPostRepo())

		_, err := svc.AddExperience(ctx, ExperienceInput{UserID: 1, Title: "Dev", Company: "Acme", From: from})
		assertNotFoundError(t, err)
	})
}

func TestProfileService_AddEducation_Validation(t *testing.T) {
	t.Parallel()
	svc := NewProfileService(noopProfileRepo(), noopUserRepo(), noopPostRepo())
	ctx := context.Background()
	from := time.Date(2015, 9, 1, 0, 0, 0, 0, time.UTC)

	_, err := svc.AddEducation(ctx, EducationInput{UserID: 1, Degree: "BSc", FieldOfStudy: "CS", From: from})
	assertValidationError(t, err)

	_, err = svc.AddEducation(ctx, EducationInput{UserID: 1, School: "MIT", FieldOfStudy: "CS", From: from})
	assertValidationError(t, err)

	_, err = svc.AddEducation(ctx, EducationInput{UserID: 1, School: "MIT", Degree: "BSc", From: from})
	assertValidationError(t, err)

	_, err = svc.AddEducation(ctx, EducationInput{UserID: 1, School: "MIT", Degree: "BSc", FieldOfStudy: "CS"})
	assertValidationError(t, err)
}

func TestProfileService_DeleteExperience_NotFoundPropagates(t *testing.T) {
	t.Parallel()
	profileRepo := noopProfileRepo()
	profileRepo.deleteExperienceFn = func(_ context.Context, _, _ uint) error {
		return models.NewNotFoundError("Experience entry not found")
	}
	svc := NewProfileService(profileRepo, noopUserRepo(), noopPostRepo())

	_, err := svc.DeleteExperience(context.Background(), 1, 99)
	assertNotFoundError(t, err)
}

func TestProfileService_DeleteAccount_CascadeOrder(t *testing.T) {
	t.Parallel()

	var order []string
	postRepo := noopPostRepo()
	postRepo.deleteByUserIDFn = func(_ context.Context, _ uint) error {
		order = append(order, "posts")
		return nil
	}
	profileRepo := noopProfileRepo()
	profileRepo.deleteByUserIDFn = func(_ context.Context, _ uint) error {
		order = append(order, "profile")
		return nil
	}
	userRepo := noopUserRepo()
	userRepo.deleteFn = func(_ context.Context, _ uint) error {
		order = append(order, "user")
		return nil
	}

	svc := NewProfileService(profileRepo, userRepo, postRepo)
	require.NoError(t, svc.DeleteAccount(context.Background(), 1))
	assert.Equal(t, []string{"posts", "profile", "user"}, order)
}
