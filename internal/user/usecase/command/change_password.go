package command

import (
	"context"
	"fmt"

	"github.com/franvila/comic-commerce/internal/user/domain"
	"github.com/franvila/comic-commerce/pkg/auth"
	"github.com/franvila/comic-commerce/pkg/validation"
)

// ChangePasswordCommand targets the account identified by UserID. The
// username travels in the body as well and is re-validated against the
// target instance so a mismatched path/body pair never mutates anything.
type ChangePasswordCommand struct {
	UserID          uint   `json:"-"`
	Username        string `json:"username" validate:"required"`
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required"`
}

// ChangePasswordHandler handles the password-change action
type ChangePasswordHandler struct {
	repo      domain.UserRepository
	validator *validation.Validator
	policy    auth.PasswordPolicy
}

// NewChangePasswordHandler creates a new change password handler
func NewChangePasswordHandler(repo domain.UserRepository, policy auth.PasswordPolicy) *ChangePasswordHandler {
	return &ChangePasswordHandler{
		repo:      repo,
		validator: validation.New(),
		policy:    policy,
	}
}

// Handle replaces the account's password hash. Ordering of checks:
// field presence first (all missing fields reported together), then the
// username guard before any password validation, then the password checks
// collected into one map. Any failure aborts with no partial update.
func (h *ChangePasswordHandler) Handle(ctx context.Context, cmd ChangePasswordCommand) (*domain.Profile, error) {
	target, err := h.repo.FindByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	if errs := h.validator.Struct(cmd); errs != nil {
		return nil, errs
	}

	if cmd.Username != target.Username {
		return nil, validation.Errors{
			"username": {"The current username entered is not correct."},
		}
	}

	errs := validation.Errors{}

	if !auth.CheckPassword(target.Password, cmd.CurrentPassword) {
		errs.Add("current_password", "The current password entered is not correct.")
	}

	for _, problem := range h.policy.Validate(cmd.NewPassword, target.Username) {
		errs.Add("new_password", problem)
	}
	if auth.CheckPassword(target.Password, cmd.NewPassword) {
		errs.Add("new_password", "You entered the same password as the current.")
	}

	if len(errs) > 0 {
		return nil, errs
	}

	hashed, err := auth.HashPassword(cmd.NewPassword)
	if err != nil {
		return nil, err
	}

	target.Password = hashed
	if err := h.repo.Update(ctx, target); err != nil {
		return nil, fmt.Errorf("failed to update password: %w", err)
	}

	profile := target.Profile()
	return &profile, nil
}
