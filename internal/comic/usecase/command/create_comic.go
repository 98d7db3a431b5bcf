package command

import (
	"context"
	"fmt"

	"github.com/franvila/comic-commerce/internal/comic/domain"
	"github.com/franvila/comic-commerce/pkg/validation"
)

// CreateComicCommand represents the command to add a catalog item
type CreateComicCommand struct {
	MarvelID    *int    `json:"marvel_id" validate:"required"`
	Title       string  `json:"title" validate:"required,max=200"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"gte=0"`
	StockQty    int     `json:"stock_qty" validate:"gte=0"`
	Picture     string  `json:"picture" validate:"omitempty,url"`
}

// CreateComicHandler handles comic creation
type CreateComicHandler struct {
	repo      domain.ComicRepository
	validator *validation.Validator
}

// NewCreateComicHandler creates a new create comic handler
func NewCreateComicHandler(repo domain.ComicRepository) *CreateComicHandler {
	return &CreateComicHandler{repo: repo, validator: validation.New()}
}

// Handle validates every field before persisting; a failure returns the
// complete error map and stores nothing.
func (h *CreateComicHandler) Handle(ctx context.Context, cmd CreateComicCommand) (*domain.Comic, error) {
	errs := h.validator.Struct(cmd)
	if errs == nil {
		errs = validation.Errors{}
	}

	if cmd.MarvelID != nil {
		if existing, _ := h.repo.FindByMarvelID(ctx, *cmd.MarvelID); existing != nil {
			errs.Add("marvel_id", "A comic with that marvel_id already exists.")
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}

	comic := &domain.Comic{
		MarvelID:    *cmd.MarvelID,
		Title:       cmd.Title,
		Description: cmd.Description,
		Price:       cmd.Price,
		StockQty:    cmd.StockQty,
		Picture:     cmd.Picture,
	}

	if err := h.repo.Create(ctx, comic); err != nil {
		return nil, fmt.Errorf("failed to create comic: %w", err)
	}

	return comic, nil
}
