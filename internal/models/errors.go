package models

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// ErrorItem is a single error message in the API error envelope.
type ErrorItem struct {
	Msg string `json:"msg"`
}

// ErrorResponse is the standard error envelope: validation, authorization and
// not-found failures carry an errors array, matching the public API contract.
type ErrorResponse struct {
	Errors []ErrorItem `json:"errors"`
}

// AppError represents a custom application error
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Predefined error constructors
func NewNotFoundError(message string) *AppError {
	return &AppError{
		Code:    "NOT_FOUND",
		Message: message,
	}
}

func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    "VALIDATION_ERROR",
		Message: message,
	}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{
		Code:    "UNAUTHORIZED",
		Message: message,
	}
}

func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    "INTERNAL_ERROR",
		Message: "Internal server error",
		Err:     err,
	}
}

// RespondWithError writes a standardized error response. Internal errors
// render as a bare {"msg": ...}; everything else uses the errors envelope.
func RespondWithError(c *fiber.Ctx, status int, err error) error {
	if appErr, ok := err.(*AppError); ok {
		if appErr.Code == "INTERNAL_ERROR" {
			msg := appErr.Message
			if appErr.Err != nil {
				msg = appErr.Err.Error()
			}
			return c.Status(status).JSON(fiber.Map{"msg": msg})
		}
		return c.Status(status).JSON(ErrorResponse{
			Errors: []ErrorItem{{Msg: appErr.Message}},
		})
	}

	if status >= fiber.StatusInternalServerError {
		return c.Status(status).JSON(fiber.Map{"msg": err.Error()})
	}
	return c.Status(status).JSON(ErrorResponse{
		Errors: []ErrorItem{{Msg: err.Error()}},
	})
}
