package command

import (
	"context"
	"fmt"

	"github.com/franvila/comic-commerce/internal/comic/domain"
	"github.com/franvila/comic-commerce/pkg/validation"
)

// UpdateComicCommand mutates the attributes of an existing catalog item.
// Pointer fields distinguish "absent" from zero so PATCH can be partial;
// PUT sends every field.
type UpdateComicCommand struct {
	ID          uint     `json:"-"`
	MarvelID    *int     `json:"marvel_id"`
	Title       *string  `json:"title" validate:"omitempty,max=200"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	StockQty    *int     `json:"stock_qty" validate:"omitempty,gte=0"`
	Picture     *string  `json:"picture" validate:"omitempty,url"`
}

// UpdateComicHandler handles comic updates
type UpdateComicHandler struct {
	repo      domain.ComicRepository
	validator *validation.Validator
}

// NewUpdateComicHandler creates a new update comic handler
func NewUpdateComicHandler(repo domain.ComicRepository) *UpdateComicHandler {
	return &UpdateComicHandler{repo: repo, validator: validation.New()}
}

// Handle applies the supplied fields after full validation; identity is
// immutable, everything else may change.
func (h *UpdateComicHandler) Handle(ctx context.Context, cmd UpdateComicCommand) (*domain.Comic, error) {
	comic, err := h.repo.FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	errs := h.validator.Struct(cmd)
	if errs == nil {
		errs = validation.Errors{}
	}

	if cmd.Title != nil && *cmd.Title == "" {
		errs.Add("title", "This field is required.")
	}
	if cmd.MarvelID != nil && *cmd.MarvelID != comic.MarvelID {
		if existing, _ := h.repo.FindByMarvelID(ctx, *cmd.MarvelID); existing != nil {
			errs.Add("marvel_id", "A comic with that marvel_id already exists.")
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}

	if cmd.MarvelID != nil {
		comic.MarvelID = *cmd.MarvelID
	}
	if cmd.Title != nil {
		comic.Title = *cmd.Title
	}
	if cmd.Description != nil {
		comic.Description = *cmd.Description
	}
	if cmd.Price != nil {
		comic.Price = *cmd.Price
	}
	if cmd.StockQty != nil {
		comic.StockQty = *cmd.StockQty
	}
	if cmd.Picture != nil {
		comic.Picture = *cmd.Picture
	}

	if err := h.repo.Update(ctx, comic); err != nil {
		return nil, fmt.Errorf("failed to update comic: %w", err)
	}

	return comic, nil
}
