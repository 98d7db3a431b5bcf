package command

import (
	"context"

	"github.com/franvila/comic-commerce/internal/user/domain"
	"github.com/franvila/comic-commerce/pkg/auth"
	"github.com/franvila/comic-commerce/pkg/validation"
)

// LoginUserCommand represents the command to login a user
type LoginUserCommand struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is the token envelope returned after a successful login:
// the opaque key plus a summary of the account that owns it.
type LoginResponse struct {
	Key  string       `json:"key"`
	User *domain.User `json:"user"`
}

// LoginUserHandler handles user login
type LoginUserHandler struct {
	users     domain.UserRepository
	tokens    domain.TokenRepository
	validator *validation.Validator
}

// NewLoginUserHandler creates a new login handler
func NewLoginUserHandler(users domain.UserRepository, tokens domain.TokenRepository) *LoginUserHandler {
	return &LoginUserHandler{
		users:     users,
		tokens:    tokens,
		validator: validation.New(),
	}
}

// Handle validates the credentials and issues the account's token with
// get-or-create semantics: repeated logins return the same key. A failed
// login has no side effect.
func (h *LoginUserHandler) Handle(ctx context.Context, cmd LoginUserCommand) (*LoginResponse, error) {
	if errs := h.validator.Struct(cmd); errs != nil {
		return nil, errs
	}

	user, err := h.users.FindByUsername(ctx, cmd.Username)
	if err != nil {
		return nil, validation.Errors{
			"non_field_errors": {"The username entered does not exist"},
		}
	}

	if !auth.CheckPassword(user.Password, cmd.Password) {
		return nil, validation.Errors{
			"non_field_errors": {"The password entered is incorrect"},
		}
	}

	token, _, err := h.tokens.GetOrCreate(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{Key: token.Key, User: &token.User}, nil
}
