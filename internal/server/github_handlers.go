package server

import (
	"strings"

	"github.com/beingscholar/devconnector/internal/middleware"
	"github.com/beingscholar/devconnector/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetGithubRepos handles GET /api/profile/github/:username
// @Summary GitHub repositories
// @Description Proxy the five most recent GitHub repositories for a username
// @Tags profile
// @Produce json
// @Param username path string true "GitHub username"
// @Success 200 {array} object
// @Failure 404 {object} models.ErrorResponse
// @Router /profile/github/{username} [get]
func (s *Server) GetGithubRepos(c *fiber.Ctx) error {
	username := strings.TrimSpace(c.Params("username"))
	if username == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Username is required"))
	}

	body, status, err := s.githubClient.Repos(c.Context(), username)
	if err != nil {
		middleware.Logger.WarnContext(c.UserContext(), "github lookup failed",
			"username", username, "error", err)
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("No Github profile found"))
	}
	if status != fiber.StatusOK {
		// Forward the upstream status verbatim.
		return models.RespondWithError(c, status,
			models.NewNotFoundError("No Github profile found"))
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	return c.Status(fiber.StatusOK).Send(body)
}
