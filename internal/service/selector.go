package service

import (
	"github.com/officeappout/out-run-app-sub011/internal/domain"
)

// Safety rule: a user is never handed an exercise whose entry level
// exceeds their effective level by more than one step, regardless of the
// requested intensity.
const maxEntryLevelHeadroom = 1

// intensityBounds returns the inclusive entry-level window targeted by an
// intensity request, relative to the user's effective level.
func intensityBounds(level int, intensity domain.Intensity) (lo, hi int) {
	switch intensity {
	case domain.IntensityHigh:
		return level, level + 1
	case domain.IntensityLow:
		return level - 5, level - 3
	default:
		return level - 2, level
	}
}

// selectCandidates filters a per-domain catalog down to the safety-bounded,
// intensity-targeted candidate set. When the intensity window yields
// nothing, the full safety-filtered set is returned instead: availability
// over precision. An empty catalog produces an empty list, which callers
// treat as "no eligible exercise for this domain", never as a failure.
func selectCandidates(level int, intensity domain.Intensity, activeProgramID string, catalog []domain.Exercise) []domain.Exercise {
	safe := make([]domain.Exercise, 0, len(catalog))
	for _, ex := range catalog {
		if ex.EntryLevel(activeProgramID) <= level+maxEntryLevelHeadroom {
			safe = append(safe, ex)
		}
	}

	lo, hi := intensityBounds(level, intensity)
	bucket := make([]domain.Exercise, 0, len(safe))
	for _, ex := range safe {
		entry := ex.EntryLevel(activeProgramID)
		if entry >= lo && entry <= hi {
			bucket = append(bucket, ex)
		}
	}

	if len(bucket) == 0 {
		return safe
	}
	return bucket
}
