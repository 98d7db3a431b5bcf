package command

import (
	"context"

	"github.com/franvila/comic-commerce/internal/comic/domain"
)

// DeleteComicCommand represents the command to delete a catalog item
type DeleteComicCommand struct {
	ID uint
}

// DeleteComicHandler handles comic deletion
type DeleteComicHandler struct {
	repo domain.ComicRepository
}

// NewDeleteComicHandler creates a new delete comic handler
func NewDeleteComicHandler(repo domain.ComicRepository) *DeleteComicHandler {
	return &DeleteComicHandler{repo: repo}
}

// Handle executes the delete comic command
func (h *DeleteComicHandler) Handle(ctx context.Context, cmd DeleteComicCommand) error {
	return h.repo.Delete(ctx, cmd.ID)
}
