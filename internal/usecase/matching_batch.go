package usecase

import (
	"context"
	"sync"

	"github.com/travel-platform/itinerary-engine/internal/domain"
	"github.com/travel-platform/itinerary-engine/internal/infrastructure/logger"
)

// DefaultBatchSize is the number of items scored per batch when no
// batch size is configured.
const DefaultBatchSize = 25

// ScoreBatch scores all items concurrently in fixed-size batches.
//
// Batching is purely a throughput optimization: results are written into
// positions matching the input order, so the output is deterministic. A
// panic while scoring one batch is recovered and the affected items are
// returned with zero scores rather than aborting the whole call.
func (m *Matcher) ScoreBatch(ctx context.Context, items []domain.ContentItem, prefs domain.TravelPreferences, batchSize int) []domain.MatchScore {
	if len(items) == 0 {
		return nil
	}
	if batchSize < 1 {
		batchSize = DefaultBatchSize
	}

	scores := make([]domain.MatchScore, len(items))

	var wg sync.WaitGroup
	for start := 0; start < len(items); start += batchSize {
		end := start + batchSize
		if end > len(items) {
			end = len(items)
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					logger.Error().
						Interface("panic", r).
						Int("batch_start", start).
						Msg("Recovered from panic while scoring batch")
				}
			}()

			for i := start; i < end; i++ {
				if ctx.Err() != nil {
					return
				}
				scores[i] = m.Score(items[i], prefs)
			}
		}(start, end)
	}
	wg.Wait()

	return scores
}
