package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("service")

// SequenceService issues bureau reference numbers. Numbers come from a
// per-year redis counter; when redis is unreachable it degrades to a
// uuid-suffixed reference so letter intake never stalls on the cache.
type SequenceService struct {
	rdb    *redis.Client
	prefix string
}

func NewSequenceService(rdb *redis.Client, prefix string) *SequenceService {
	if prefix == "" {
		prefix = "MB"
	}
	return &SequenceService{rdb: rdb, prefix: prefix}
}

func (s *SequenceService) Next(ctx context.Context) (string, error) {
	ctx, span := tracer.Start(ctx, "Sequence.Service.Next")
	defer span.End()

	year := time.Now().UTC().Year()

	n, err := s.rdb.Incr(ctx, fmt.Sprintf("bureau:refseq:%d", year)).Result()
	if err != nil {
		span.RecordError(err)
		slog.WarnContext(ctx, "reference sequence falling back to uuid",
			slog.String("error", err.Error()),
			slog.String("module", "sequence"),
		)
		return s.fallback(year), nil
	}

	return s.sequential(year, n), nil
}

func (s *SequenceService) sequential(year int, n int64) string {
	return fmt.Sprintf("%s-%d-%06d", s.prefix, year, n)
}

func (s *SequenceService) fallback(year int) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("%s-%d-%s", s.prefix, year, suffix)
}
