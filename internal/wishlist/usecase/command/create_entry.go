package command

import (
	"context"
	"errors"
	"fmt"

	comicdomain "github.com/franvila/comic-commerce/internal/comic/domain"
	userdomain "github.com/franvila/comic-commerce/internal/user/domain"
	"github.com/franvila/comic-commerce/internal/wishlist/domain"
	"github.com/franvila/comic-commerce/pkg/validation"
)

// CreateEntryCommand represents the command to add a wishlist entry.
// User and comic are referenced by primary key, mirroring the write-only
// related fields of the wire format.
type CreateEntryCommand struct {
	UserID       *uint `json:"user" validate:"required"`
	ComicID      *uint `json:"comic" validate:"required"`
	Favorite     bool  `json:"favorite"`
	Cart         bool  `json:"cart"`
	WishedQty    int   `json:"wished_qty" validate:"gte=0"`
	PurchasedQty int   `json:"purchased_qty" validate:"gte=0"`
}

// CreateEntryHandler handles wishlist entry creation
type CreateEntryHandler struct {
	entries   domain.WishlistRepository
	users     userdomain.UserRepository
	comics    comicdomain.ComicRepository
	validator *validation.Validator
}

// NewCreateEntryHandler creates a new create entry handler
func NewCreateEntryHandler(
	entries domain.WishlistRepository,
	users userdomain.UserRepository,
	comics comicdomain.ComicRepository,
) *CreateEntryHandler {
	return &CreateEntryHandler{
		entries:   entries,
		users:     users,
		comics:    comics,
		validator: validation.New(),
	}
}

// Handle validates the referenced user and comic exist and that the
// (user, comic) pair is not already wishlisted, then persists the entry.
func (h *CreateEntryHandler) Handle(ctx context.Context, cmd CreateEntryCommand) (*domain.WishlistEntry, error) {
	errs := h.validator.Struct(cmd)
	if errs == nil {
		errs = validation.Errors{}
	}

	if cmd.UserID != nil {
		if _, err := h.users.FindByID(ctx, *cmd.UserID); err != nil {
			errs.Add("user", fmt.Sprintf("Invalid pk \"%d\" - object does not exist.", *cmd.UserID))
		}
	}
	if cmd.ComicID != nil {
		if _, err := h.comics.FindByID(ctx, *cmd.ComicID); err != nil {
			errs.Add("comic", fmt.Sprintf("Invalid pk \"%d\" - object does not exist.", *cmd.ComicID))
		}
	}

	if len(errs) == 0 {
		if existing, _ := h.entries.FindByUserAndComic(ctx, *cmd.UserID, *cmd.ComicID); existing != nil {
			errs.Add("non_field_errors", "This comic is already on the user's wishlist.")
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}

	entry := &domain.WishlistEntry{
		UserID:       *cmd.UserID,
		ComicID:      *cmd.ComicID,
		Favorite:     cmd.Favorite,
		Cart:         cmd.Cart,
		WishedQty:    cmd.WishedQty,
		PurchasedQty: cmd.PurchasedQty,
	}

	if err := h.entries.Create(ctx, entry); err != nil {
		// A concurrent insert can slip past the pre-insert check and
		// hit the unique index instead; report it the same way.
		if errors.Is(err, domain.ErrDuplicateEntry) {
			return nil, validation.Errors{
				"non_field_errors": {"This comic is already on the user's wishlist."},
			}
		}
		return nil, fmt.Errorf("failed to create wishlist entry: %w", err)
	}

	return entry, nil
}
