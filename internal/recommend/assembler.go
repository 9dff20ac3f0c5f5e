package recommend

import (
	"context"
	"strings"

	"tunereads/internal/entity"

	"go.uber.org/zap"
)

const (
	// TargetCount is how many recommendations one run tries to collect.
	TargetCount = 5

	tierOneQueries     = 3
	tierResultsPerHit  = 5
	finalResultsPerHit = 10
)

// Assembler drives the tiered search loop: curated override first, then
// model queries, then the leftover model queries, then deterministic
// fallback queries. Each accepted candidate gets a reason before the next
// query is tried; runs are strictly sequential.
type Assembler struct {
	queries *Formulator
	source  *Source
	reasons *Reasoner
	log     *zap.Logger
}

func NewAssembler(queries *Formulator, source *Source, reasons *Reasoner, log *zap.Logger) *Assembler {
	return &Assembler{
		queries: queries,
		source:  source,
		reasons: reasons,
		log:     log,
	}
}

// Assemble returns between 0 and TargetCount recommendations. Short or
// empty results are valid: every upstream failure has already degraded to
// an empty page or a templated reason by the time it gets here.
func (a *Assembler) Assemble(ctx context.Context, artist entity.Artist) []entity.BookRecommendation {
	if curated, ok := CuratedFor(artist.Name); ok {
		a.log.Info("serving curated recommendations", zap.String("artist", artist.Name))
		return curated
	}

	queries := a.queries.Queries(ctx, artist)

	run := &assemblyRun{
		accepted: make([]entity.BookRecommendation, 0, TargetCount),
		seen:     make(map[string]bool, TargetCount),
	}

	// Tier 1: the most artist-specific queries.
	firstTier := queries
	if len(firstTier) > tierOneQueries {
		firstTier = firstTier[:tierOneQueries]
	}
	a.collect(ctx, run, artist, firstTier, tierResultsPerHit)

	// Tier 2: whatever the formulator produced beyond the first three.
	if len(run.accepted) < TargetCount && len(queries) > tierOneQueries {
		a.collect(ctx, run, artist, queries[tierOneQueries:], tierResultsPerHit)
	}

	// Tier 3: deterministic queries with a wider net per query.
	if len(run.accepted) < TargetCount {
		a.collect(ctx, run, artist, FallbackQueries(artist), finalResultsPerHit)
	}

	a.log.Info("assembled recommendations",
		zap.String("artist", artist.Name), zap.Int("count", len(run.accepted)))
	return run.accepted
}

type assemblyRun struct {
	accepted []entity.BookRecommendation
	seen     map[string]bool // lower-cased exact titles
}

// collect runs one tier: each query contributes candidates until the run
// holds TargetCount books. Dedupe key is the lower-cased exact title; near
// duplicates from other editions stay distinct on purpose.
func (a *Assembler) collect(ctx context.Context, run *assemblyRun, artist entity.Artist, queries []string, perQuery int) {
	for _, query := range queries {
		if len(run.accepted) >= TargetCount {
			return
		}
		for _, candidate := range a.source.Search(ctx, query, perQuery) {
			key := strings.ToLower(candidate.Title)
			if run.seen[key] {
				continue
			}
			run.seen[key] = true
			candidate.Reason = a.reasons.Reason(ctx, artist, candidate)
			run.accepted = append(run.accepted, candidate)
			if len(run.accepted) >= TargetCount {
				return
			}
		}
	}
}
