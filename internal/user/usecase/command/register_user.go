package command

import (
	"context"
	"fmt"

	"github.com/franvila/comic-commerce/internal/user/domain"
	"github.com/franvila/comic-commerce/pkg/auth"
	"github.com/franvila/comic-commerce/pkg/validation"
)

// RegisterUserCommand represents the command to register a new user account.
// Staff accounts are only created through administrator action; the handler
// decides whether IsStaff may be set.
type RegisterUserCommand struct {
	Username  string `json:"username" validate:"required,max=150"`
	Email     string `json:"email" validate:"omitempty,email"`
	FirstName string `json:"first_name" validate:"max=150"`
	LastName  string `json:"last_name" validate:"max=150"`
	Password  string `json:"password" validate:"required"`
	IsStaff   bool   `json:"is_staff"`
}

// RegisterUserHandler handles user registration
type RegisterUserHandler struct {
	repo      domain.UserRepository
	validator *validation.Validator
	policy    auth.PasswordPolicy
}

// NewRegisterUserHandler creates a new register user handler
func NewRegisterUserHandler(repo domain.UserRepository, policy auth.PasswordPolicy) *RegisterUserHandler {
	return &RegisterUserHandler{
		repo:      repo,
		validator: validation.New(),
		policy:    policy,
	}
}

// Handle validates the whole command, collecting every field failure,
// and persists nothing unless all checks pass.
func (h *RegisterUserHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (*domain.User, error) {
	errs := h.validator.Struct(cmd)
	if errs == nil {
		errs = validation.Errors{}
	}

	if cmd.Password != "" {
		for _, problem := range h.policy.Validate(cmd.Password, cmd.Username) {
			errs.Add("password", problem)
		}
	}

	if cmd.Username != "" {
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

	user := &domain.User{
		Username:  cmd.Username,
		Email:     cmd.Email,
		FirstName: cmd.FirstName,
		LastName:  cmd.LastName,
		Password:  hashed,
		IsActive:  true,
		IsStaff:   cmd.IsStaff,
	}

	if err := h.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}
