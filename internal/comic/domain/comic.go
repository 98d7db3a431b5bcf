package domain

import (
	"context"
	"errors"
	"time"
)

// ErrComicNotFound is returned when no comic matches the lookup.
var ErrComicNotFound = errors.New("comic not found")

// Comic represents a purchasable catalog item
type Comic struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	MarvelID    int       `json:"marvel_id" gorm:"uniqueIndex;not null"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description"`
	Price       float64   `json:"price" gorm:"not null"`
	StockQty    int       `json:"stock_qty" gorm:"not null;default:0"`
	Picture     string    `json:"picture"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name
func (Comic) TableName() string {
	return "comics"
}

// InStock reports whether the comic has remaining stock
func (c *Comic) InStock() bool {
	return c.StockQty > 0
}

// ComicRepository defines the contract for comic data access
type ComicRepository interface {
	Create(ctx context.Context, comic *Comic) error
	FindByID(ctx context.Context, id uint) (*Comic, error)
	FindByMarvelID(ctx context.Context, marvelID int) (*Comic, error)
	FindByIDs(ctx context.Context, ids []uint) ([]Comic, error)
	FindAll(ctx context.Context) ([]Comic, error)
	Update(ctx context.Context, comic *Comic) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}
