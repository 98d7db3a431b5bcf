package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/franvila/comic-commerce/internal/comic/domain"
)

var tracer = otel.Tracer("comic-repository")

// GormComicRepositoryWithTracing wraps GormComicRepository, recording a
// span around every lookup and mutation. Methods not overridden here
// fall through to the embedded repository untraced.
type GormComicRepositoryWithTracing struct {
	*GormComicRepository
}

// NewGormComicRepositoryWithTracing creates a new repository with tracing
func NewGormComicRepositoryWithTracing(db *gorm.DB) *GormComicRepositoryWithTracing {
	return &GormComicRepositoryWithTracing{
		GormComicRepository: NewGormComicRepository(db),
	}
}

// Create records a span around the insert
func (r *GormComicRepositoryWithTracing) Create(ctx context.Context, comic *domain.Comic) error {
	ctx, span := tracer.Start(ctx, "repository.Create",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.Int("comic.marvel_id", comic.MarvelID),
			attribute.String("comic.title", comic.Title),
		),
	)
	defer span.End()

	if err := r.GormComicRepository.Create(ctx, comic); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(attribute.Int("comic.id", int(comic.ID)))
	return nil
}

// FindByID records a span around the primary-key lookup
func (r *GormComicRepositoryWithTracing) FindByID(ctx context.Context, id uint) (*domain.Comic, error) {
	ctx, span := tracer.Start(ctx, "repository.FindByID",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.Int("comic.id", int(id)),
		),
	)
	defer span.End()

	comic, err := r.GormComicRepository.FindByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return comic, nil
}

// FindByIDs records a span around the multi-key lookup
func (r *GormComicRepositoryWithTracing) FindByIDs(ctx context.Context, ids []uint) ([]domain.Comic, error) {
	ctx, span := tracer.Start(ctx, "repository.FindByIDs",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.Int("request.count", len(ids)),
		),
	)
	defer span.End()

	comics, err := r.GormComicRepository.FindByIDs(ctx, ids)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(comics)))
	return comics, nil
}

// FindAll records a span around the catalog listing
func (r *GormComicRepositoryWithTracing) FindAll(ctx context.Context) ([]domain.Comic, error) {
	ctx, span := tracer.Start(ctx, "repository.FindAll",
		trace.WithSpanKind(trace.SpanKindClient),
	)
	defer span.End()

	comics, err := r.GormComicRepository.FindAll(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(comics)))
	return comics, nil
}

// Update records a span around the save
func (r *GormComicRepositoryWithTracing) Update(ctx context.Context, comic *domain.Comic) error {
	ctx, span := tracer.Start(ctx, "repository.Update",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.Int("comic.id", int(comic.ID)),
		),
	)
	defer span.End()

	if err := r.GormComicRepository.Update(ctx, comic); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// Delete records a span around the delete
func (r *GormComicRepositoryWithTracing) Delete(ctx context.Context, id uint) error {
	ctx, span := tracer.Start(ctx, "repository.Delete",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.Int("comic.id", int(id)),
		),
	)
	defer span.End()

	if err := r.GormComicRepository.Delete(ctx, id); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}
