package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/franvila/comic-commerce/internal/comic/domain"
)

// GormComicRepository implements ComicRepository using GORM
type GormComicRepository struct {
	db *gorm.DB
}

// NewGormComicRepository creates a new GORM comic repository
func NewGormComicRepository(db *gorm.DB) *GormComicRepository {
	return &GormComicRepository{db: db}
}

// AutoMigrate runs database migrations
func (r *GormComicRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Comic{})
}

// Create inserts a new comic into the database
func (r *GormComicRepository) Create(ctx context.Context, comic *domain.Comic) error {
	if err := r.db.WithContext(ctx).Create(comic).Error; err != nil {
		return fmt.Errorf("failed to create comic: %w", err)
	}
	return nil
}

// FindByID retrieves a comic by ID
func (r *GormComicRepository) FindByID(ctx context.Context, id uint) (*domain.Comic, error) {
	var comic domain.Comic
	if err := r.db.WithContext(ctx).First(&comic, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrComicNotFound
		}
		return nil, fmt.Errorf("failed to find comic: %w", err)
	}
	return &comic, nil
}

// FindByMarvelID retrieves a comic by its catalog identifier
func (r *GormComicRepository) FindByMarvelID(ctx context.Context, marvelID int) (*domain.Comic, error) {
	var comic domain.Comic
	if err := r.db.WithContext(ctx).Where("marvel_id = ?", marvelID).First(&comic).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrComicNotFound
		}
		return nil, fmt.Errorf("failed to find comic: %w", err)
	}
	return &comic, nil
}

// FindByIDs retrieves the comics whose primary keys appear in ids
func (r *GormComicRepository) FindByIDs(ctx context.Context, ids []uint) ([]domain.Comic, error) {
	comics := []domain.Comic{}
	if len(ids) == 0 {
		return comics, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id ASC").Find(&comics).Error; err != nil {
		return nil, fmt.Errorf("failed to find comics: %w", err)
	}
	return comics, nil
}

// FindAll retrieves the whole catalog
func (r *GormComicRepository) FindAll(ctx context.Context) ([]domain.Comic, error) {
	comics := []domain.Comic{}
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&comics).Error; err != nil {
		return nil, fmt.Errorf("failed to list comics: %w", err)
	}
	return comics, nil
}

// Update updates a comic's attributes
func (r *GormComicRepository) Update(ctx context.Context, comic *domain.Comic) error {
	if err := r.db.WithContext(ctx).Save(comic).Error; err != nil {
		return fmt.Errorf("failed to update comic: %w", err)
	}
	return nil
}

// Delete removes a comic from the database
func (r *GormComicRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.Comic{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete comic: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrComicNotFound
	}
	return nil
}

// Count returns the catalog size
func (r *GormComicRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Comic{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count comics: %w", err)
	}
	return count, nil
}
