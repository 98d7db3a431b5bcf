package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/franvila/comic-commerce/internal/wishlist/domain"
)

// GormWishlistRepository implements WishlistRepository using GORM
type GormWishlistRepository struct {
	db *gorm.DB
}

// NewGormWishlistRepository creates a new GORM wishlist repository
func NewGormWishlistRepository(db *gorm.DB) *GormWishlistRepository {
	return &GormWishlistRepository{db: db}
}

// AutoMigrate runs database migrations
func (r *GormWishlistRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.WishlistEntry{})
}

// Create inserts a new wishlist entry. A concurrent insert of the same
// (user, comic) pair trips the unique index; that violation surfaces as
// ErrDuplicateEntry so callers can treat it like the pre-insert check.
func (r *GormWishlistRepository) Create(ctx context.Context, entry *domain.WishlistEntry) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateEntry
		}
		return fmt.Errorf("failed to create wishlist entry: %w", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

// FindAll retrieves every wishlist entry
func (r *GormWishlistRepository) FindAll(ctx context.Context) ([]domain.WishlistEntry, error) {
	entries := []domain.WishlistEntry{}
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to list wishlist entries: %w", err)
	}
	return entries, nil
}

// FindByUserAndComic retrieves the entry for a (user, comic) pair
func (r *GormWishlistRepository) FindByUserAndComic(ctx context.Context, userID, comicID uint) (*domain.WishlistEntry, error) {
	var entry domain.WishlistEntry
	err := r.db.WithContext(ctx).Where("user_id = ? AND comic_id = ?", userID, comicID).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to find wishlist entry: %w", err)
	}
	return &entry, nil
}

// FavoriteComicIDs returns the comic ids the named user marked favorite
func (r *GormWishlistRepository) FavoriteComicIDs(ctx context.Context, username string) ([]uint, error) {
	ids := []uint{}
	err := r.db.WithContext(ctx).Model(&domain.WishlistEntry{}).
		Joins("JOIN users ON users.id = wishlist_entries.user_id").
		Where("users.username = ? AND wishlist_entries.favorite = ?", username, true).
		Pluck("wishlist_entries.comic_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find favorite comics: %w", err)
	}
	return ids, nil
}
