package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"

	bureau "github.com/mzafar/marriage-bureau"
	"github.com/mzafar/marriage-bureau/internal/domain"
)

// LetterRepository defines persistence for marriage letters.
type LetterRepository interface {
	Create(ctx context.Context, in bureau.MarriageLetterCreate, referenceNumber string) (*bureau.MarriageLetterResponse, error)
	Get(ctx context.Context, id int64) (*bureau.MarriageLetter, error)
	List(ctx context.Context, filter domain.LetterFilter) ([]bureau.LetterSummary, error)
	MarkPrinted(ctx context.Context, id int64, req bureau.LetterPrintRequest) (*bureau.MarriageLetterResponse, error)
	Delete(ctx context.Context, id int64) error
}

// ReferenceIssuer hands out unique letter reference numbers.
type ReferenceIssuer interface {
	Next(ctx context.Context) (string, error)
}

// DedupGuard reports whether an identical payload was just submitted.
// Seen records the payload; Forget releases it again.
type DedupGuard interface {
	Seen(ctx context.Context, payload any) (bool, error)
	Forget(ctx context.Context, payload any) error
}

// EventPublisher broadcasts letter lifecycle events.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.LetterEvent) error
}

type LetterUsecase struct {
	repo      LetterRepository
	refs      ReferenceIssuer
	dedup     DedupGuard
	signal    EventPublisher
	summaries *cache.Cache
}

func NewLetterUsecase(repo LetterRepository, refs ReferenceIssuer, dedup DedupGuard, signal EventPublisher) *LetterUsecase {
	return &LetterUsecase{
		repo:      repo,
		refs:      refs,
		dedup:     dedup,
		signal:    signal,
		summaries: cache.New(30*time.Second, time.Minute),
	}
}

func (uc *LetterUsecase) Create(ctx context.Context, in bureau.MarriageLetterCreate) (*bureau.MarriageLetterResponse, error) {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	recorded := false
	seen, err := uc.dedup.Seen(ctx, in)
	if err != nil {
		// dedup is best effort, intake must not depend on memcached
		slog.WarnContext(ctx, "letter dedup check unavailable",
			slog.String("error", err.Error()),
			slog.String("module", "letter"),
		)
	} else if seen {
		return nil, domain.ConflictError{Reason: "identical letter was just submitted"}
	} else {
		recorded = true
	}

	reference, err := uc.refs.Next(ctx)
	if err != nil {
		if recorded {
			uc.forget(ctx, in)
		}
		return nil, err
	}

	resp, err := uc.repo.Create(ctx, in, reference)
	if err != nil {
		if recorded {
			uc.forget(ctx, in)
		}
		return nil, err
	}

	uc.publish(ctx, domain.EventLetterCreated, resp.ID, resp.ReferenceNumber)
	uc.summaries.Flush()
	return resp, nil
}

func (uc *LetterUsecase) Get(ctx context.Context, id int64) (*bureau.MarriageLetter, error) {
	return uc.repo.Get(ctx, id)
}

func (uc *LetterUsecase) List(ctx context.Context, filter domain.LetterFilter) ([]bureau.LetterSummary, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	printed := "any"
	if filter.Printed != nil {
		printed = strconv.FormatBool(*filter.Printed)
	}
	key := fmt.Sprintf("%s|%s|%d|%d", filter.LetterType, printed, filter.Limit, filter.Offset)
	if cached, found := uc.summaries.Get(key); found {
		return cached.([]bureau.LetterSummary), nil
	}

	summaries, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	uc.summaries.Set(key, summaries, cache.DefaultExpiration)
	return summaries, nil
}

func (uc *LetterUsecase) Print(ctx context.Context, id int64, req bureau.LetterPrintRequest) (*bureau.MarriageLetterResponse, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if req.LetterID != 0 && req.LetterID != id {
		return nil, domain.ValidationError{Field: "letter_id", Reason: "does not match the request path"}
	}

	resp, err := uc.repo.MarkPrinted(ctx, id, req)
	if err != nil {
		return nil, err
	}

	uc.publish(ctx, domain.EventLetterPrinted, resp.ID, resp.ReferenceNumber)
	uc.summaries.Flush()
	return resp, nil
}

func (uc *LetterUsecase) Delete(ctx context.Context, id int64) error {
	letter, err := uc.repo.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.publish(ctx, domain.EventLetterDeleted, letter.ID, letter.ReferenceNumber)
	uc.summaries.Flush()
	return nil
}

// forget releases the dedup hash so a retry of a failed create does
// not come back 409 for the rest of the TTL.
func (uc *LetterUsecase) forget(ctx context.Context, in bureau.MarriageLetterCreate) {
	if err := uc.dedup.Forget(ctx, in); err != nil {
		slog.WarnContext(ctx, "letter dedup release failed",
			slog.String("error", err.Error()),
			slog.String("module", "letter"),
		)
	}
}

func (uc *LetterUsecase) publish(ctx context.Context, eventType string, id int64, reference string) {
	err := uc.signal.Publish(ctx, domain.LetterEvent{
		Type:            eventType,
		LetterID:        id,
		ReferenceNumber: reference,
		Timestamp:       time.Now().UTC(),
	})
	if err != nil {
		slog.WarnContext(ctx, "letter event publish failed",
			slog.String("event", eventType),
			slog.String("error", err.Error()),
			slog.String("module", "letter"),
		)
	}
}
