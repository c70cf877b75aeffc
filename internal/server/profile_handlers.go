package server

import (
	"github.com/beingscholar/devconnector/internal/models"
	"github.com/beingscholar/devconnector/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetProfiles handles GET /api/profile
// @Summary List profiles
// @Description List all profiles with the owner's name and avatar joined
// @Tags profile
// @Produce json
// @Success 200 {array} models.Profile
// @Router /profile [get]
func (s *Server) GetProfiles(c *fiber.Ctx) error {
	profiles, err := s.profileService.ListProfiles(c.Context())
	if err != nil {
		return handleServiceError(c, err)
	}
	return c.JSON(profiles)
}

// GetProfileByUserID handles GET /api/profile/user/:id
// @Summary Profile by user id
// @Tags profile
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.Profile
// @Failure 400 {object} models.ErrorResponse
// @Router /profile/user/{id} [get]
func (s *Server) GetProfileByUserID(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id", "Profile not found")
	if err != nil {
		return nil
	}
	profile, err := s.profileService.GetByUserID(c.Context(), userID)
	if err != nil {
		return handleServiceError(c, err)
	}
	return c.JSON(profile)
}

// GetMyProfile handles GET /api/profile/me
// @Summary Own profile
// @Tags profile
// @Produce json
// @Success 200 {object} models.Profile
// @Failure 400 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /profile/me [get]
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	profile, err := s.profileService.GetMyProfile(c.Context(), currentUserID(c))
	if err != nil {
		return handleServiceError(c, err)
	}
	return c.JSON(profile)
}

type profileRequest struct {
	Company        string `json:"company"`
	Website        string `json:"website"`
	Location       string `json:"location"`
	Bio            string `json:"bio"`
	Status         string `json:"status"`
	GithubUsername string `json:"githubusername"`
	Skills         string `json:"skills"`
	Youtube        string `json:"youtube"`
	Twitter        string `json:"twitter"`
	Facebook       string `json:"facebook"`
	Linkedin       string `json:"linkedin"`
	Instagram      string `json:"instagram"`
}

// UpsertProfile handles POST /api/profile
// @Summary Create or update profile
// @Description Create the caller's profile on first submission, update it afterwards
// @Tags profile
// @Accept json
// @Produce json
// @Param request body profileRequest true "Profile fields"
// @Success 200 {object} models.Profile
// @Failure 400 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /profile [post]
func (s *Server) UpsertProfile(c *fiber.Ctx) error {
	var req profileRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	profile, err := s.profileService.Upsert(c.Context(), service.UpsertProfileInput{
		UserID:         currentUserID(c),
		Company:        req.Company,
		Website:        req.Website,
		Location:       req.Location,
		Bio:            req.Bio,
		Status:         req.Status,
		GithubUsername: req.GithubUsername,
		Skills:         req.Skills,
		Social: models.SocialLinks{
			Youtube:   req.Youtube,
			Twitter:   req.Twitter,
			Facebook:  req.Facebook,
			Linkedin:  req.Linkedin,
			Instagram: req.Instagram,
		},
	})
	if err != nil {
		return handleServiceError(c, err)
	}
	return c.JSON(profile)
}

// DeleteAccount handles DELETE /api/profile
// @Summary Delete account
// @Description Remove the caller's posts, profile and user record
// @Tags profile
// @Produce json
// @Success 200 {object} object{msg=string}
// @Security ApiKeyAuth
// @Router /profile [delete]
func (s *Server) DeleteAccount(c *fiber.Ctx) error {
	if err := s.profileService.DeleteAccount(c.Context(), currentUserID(c)); err != nil {
		return handleServiceError(c, err)
	}
	return c.JSON(fiber.Map{"msg": "User deleted"})
}

type experienceRequest struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	From        string `json:"from"`
	To          string `json:"to"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

// AddExperience handles PUT /api/profile/experience
// @Summary Add experience
// @Tags profile
// @Accept json
// @Produce json
// @Param request body experienceRequest true "Experience entry"
// @Success 200 {object} models.Profile
// @Failure 400 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /profile/experience [put]
func (s *Server) AddExperience(c *fiber.Ctx) error {
	var req experienceRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.From == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("From date is required"))
	}
	from, err := parseDate(req.From)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}
	to, err := parseOptionalDate(req.To)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}

	profile, err := s.profileService.AddExperience(c.Context(), service.ExperienceInput{
		UserID:      currentUserID(c),
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        from,
		To:          to,
		Current:     req.Current,
		Description: req.Description,
	})
	if err != nil {
		return handleServiceError(c, err)
	}
	return c.JSON(profile)
}

// DeleteExperience handles DELETE /api/profile/experience/:id
// @Summary Delete experience entry
// @Tags profile
// @Produce json
// @Param id path int true "Experience ID"
// @Success 200 {object} models.Profile
// @Failure 400 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /profile/experience/{id} [delete]
func (s *Server) DeleteExperience(c *fiber.Ctx) error {
	expID, err := s.parseID(c, "id", "Experience entry not found")
	if err != nil {
		return nil
	}
	profile, err := s.profileService.DeleteExperience(c.Context(), currentUserID(c), expID)
	if err != nil {
		return handleServiceError(c, err)
	}
	return c.JSON(profile)
}

type educationRequest struct {
	School       string `json:"school"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"fieldofstudy"`
	From         string `json:"from"`
	To           string `json:"to"`
	Current      bool   `json:"current"`
	Description  string `json:"description"`
}

// AddEducation handles PUT /api/profile/education
// @Summary Add education
// @Tags profile
// @Accept json
// @Produce json
// @Param request body educationRequest true "Education entry"
// @Success 200 {object} models.Profile
// @Failure 400 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /profile/education [put]
func (s *Server) AddEducation(c *fiber.Ctx) error {
	var req educationRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.From == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("From date is required"))
	}
	from, err := parseDate(req.From)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}
	to, err := parseOptionalDate(req.To)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}

	profile, err := s.profileService.AddEducation(c.Context(), service.EducationInput{
		UserID:       currentUserID(c),
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         from,
		To:           to,
		Current:      req.Current,
		Description:  req.Description,
	})
	if err != nil {
		return handleServiceError(c, err)
	}
	return c.JSON(profile)
}

// DeleteEducation handles DELETE /api/profile/education/:id
// @Summary Delete education entry
// @Tags profile
// @Produce json
// @Param id path int true "Education ID"
// @Success 200 {object} models.Profile
// @Failure 400 {object} models.ErrorResponse
// @Security ApiKeyAuth
// @Router /profile/education/{id} [delete]
func (s *Server) DeleteEducation(c *fiber.Ctx) error {
	eduID, err := s.parseID(c, "id", "Education entry not found")
	if err != nil {
		return nil
	}
	profile, err := s.profileService.DeleteEducation(c.Context(), currentUserID(c), eduID)
	if err != nil {
		return handleServiceError(c, err)
	}
	return c.JSON(profile)
}
