package command

import (
	"context"
	"fmt"

	"github.com/franvila/comic-commerce/internal/user/domain"
	"github.com/franvila/comic-commerce/pkg/auth"
	"github.com/franvila/comic-commerce/pkg/validation"
)

// UpdateUserCommand replaces the mutable attributes of an account.
// The password travels in plaintext and is re-hashed on the way in.
type UpdateUserCommand struct {
	ID        uint   `json:"-"`
	Username  string `json:"username" validate:"required,max=150"`
	Email     string `json:"email" validate:"omitempty,email"`
	FirstName string `json:"first_name" validate:"max=150"`
	LastName  string `json:"last_name" validate:"max=150"`
	Password  string `json:"password" validate:"required"`
	IsActive  *bool  `json:"is_active"`
	IsStaff   *bool  `json:"is_staff"`
}

// UpdateUserHandler handles user updates
type UpdateUserHandler struct {
	repo      domain.UserRepository
	validator *validation.Validator
	policy    auth.PasswordPolicy
}

// NewUpdateUserHandler creates a new update user handler
func NewUpdateUserHandler(repo domain.UserRepository, policy auth.PasswordPolicy) *UpdateUserHandler {
	return &UpdateUserHandler{
		repo:      repo,
		validator: validation.New(),
		policy:    policy,
	}
}

// Handle runs full field validation before touching the record; any
// failure returns the complete error map and persists nothing.
func (h *UpdateUserHandler) Handle(ctx context.Context, cmd UpdateUserCommand) (*domain.User, error) {
	user, err := h.repo.FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	errs := h.validator.Struct(cmd)
	if errs == nil {
		errs = validation.Errors{}
	}

	if cmd.Password != "" {
		for _, problem := range h.policy.Validate(cmd.Password, cmd.Username) {
			errs.Add("password", problem)
		}
	}

	if cmd.Username != "" && cmd.Username != user.Username {
		if existing, _ := h.repo.FindByUsername(ctx, cmd.Username); existing != nil {
			errs.Add("username", "A user with that username already exists.")
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}

	hashed, err := auth.HashPassword(cmd.Password)
	if err != nil {
		return nil, err
	}

	user.Username = cmd.Username
	user.Email = cmd.Email
	user.FirstName = cmd.FirstName
	user.LastName = cmd.LastName
	user.Password = hashed
	if cmd.IsActive != nil {
		user.IsActive = *cmd.IsActive
	}
	if cmd.IsStaff != nil {
		user.IsStaff = *cmd.IsStaff
	}

	if err := h.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}
