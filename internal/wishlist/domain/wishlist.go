package domain

import (
	"context"
	"errors"
	"time"
)

// ErrDuplicateEntry is returned when a (user, comic) pair already has a row.
var ErrDuplicateEntry = errors.New("wishlist entry already exists")

// ErrEntryNotFound is returned when no entry matches the lookup.
var ErrEntryNotFound = errors.New("wishlist entry not found")

// WishlistEntry associates a user with a catalog item, carrying the
// favorite/cart flags and the desired and purchased quantities.
// The (user, comic) pair is unique: duplicates are rejected rather than
// silently stacked.
type WishlistEntry struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	UserID       uint      `json:"user" gorm:"not null;uniqueIndex:idx_wishlist_user_comic"`
	ComicID      uint      `json:"comic" gorm:"not null;uniqueIndex:idx_wishlist_user_comic"`
	Favorite     bool      `json:"favorite"`
	Cart         bool      `json:"cart"`
	WishedQty    int       `json:"wished_qty" gorm:"default:0"`
	PurchasedQty int       `json:"purchased_qty" gorm:"default:0"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName specifies the table name
func (WishlistEntry) TableName() string {
	return "wishlist_entries"
}

// WishlistRepository defines the contract for wishlist data access
type WishlistRepository interface {
	// Create persists the entry, returning ErrDuplicateEntry when the
	// (user, comic) pair already has a row.
	Create(ctx context.Context, entry *WishlistEntry) error
	FindAll(ctx context.Context) ([]WishlistEntry, error)
	FindByUserAndComic(ctx context.Context, userID, comicID uint) (*WishlistEntry, error)
	// FavoriteComicIDs projects the favorite entries of the named user
	// onto the comics they reference. Unknown usernames yield an empty
	// slice, not an error.
	FavoriteComicIDs(ctx context.Context, username string) ([]uint, error)
}
