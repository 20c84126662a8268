package service

import (
	"fmt"
	"testing"

	"github.com/officeappout/out-run-app-sub011/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const testProgramID = "64f000000000000000000001"

// catalogWithLevels builds one exercise per entry level.
func catalogWithLevels(levels ...int) []domain.Exercise {
	catalog := make([]domain.Exercise, len(levels))
	for i, lvl := range levels {
		catalog[i] = domain.Exercise{
			ID:             primitive.NewObjectID(),
			Name:           domain.LocalizedText{En: fmt.Sprintf("exercise L%d", lvl)},
			ProgramTargets: map[string]int{testProgramID: lvl},
		}
	}
	return catalog
}

func entryLevels(candidates []domain.Exercise) []int {
	levels := make([]int, len(candidates))
	for i := range candidates {
		levels[i] = candidates[i].EntryLevel(testProgramID)
	}
	return levels
}

func TestSelectCandidatesSafetyInvariant(t *testing.T) {
	// One exercise at every level from 1 to 12.
	catalog := catalogWithLevels(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12)

	for _, intensity := range []domain.Intensity{domain.IntensityHigh, domain.IntensityNormal, domain.IntensityLow} {
		for level := 1; level <= 10; level++ {
			candidates := selectCandidates(level, intensity, testProgramID, catalog)
			for _, got := range entryLevels(candidates) {
				assert.LessOrEqual(t, got, level+1,
					"intensity %s at level %d handed out entry level %d", intensity, level, got)
			}
		}
	}
}

func TestSelectCandidatesIntensityBuckets(t *testing.T) {
	catalog := catalogWithLevels(1, 2, 3, 4, 5, 6, 7, 8, 9, 10)

	tests := []struct {
		name      string
		level     int
		intensity domain.Intensity
		want      []int
	}{
		{
			name:      "high targets level through level plus one, inclusive",
			level:     6,
			intensity: domain.IntensityHigh,
			want:      []int{6, 7},
		},
		{
			name:      "normal targets level minus two through level, inclusive",
			level:     6,
			intensity: domain.IntensityNormal,
			want:      []int{4, 5, 6},
		},
		{
			name:      "low targets level minus five through level minus three, inclusive",
			level:     8,
			intensity: domain.IntensityLow,
			want:      []int{3, 4, 5},
		},
		{
			name:      "unknown intensity behaves as normal",
			level:     6,
			intensity: domain.Intensity("bogus"),
			want:      []int{4, 5, 6},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidates := selectCandidates(tt.level, tt.intensity, testProgramID, catalog)
			assert.ElementsMatch(t, tt.want, entryLevels(candidates))
		})
	}
}

func TestSelectCandidatesFallback(t *testing.T) {
	// Low intensity at level 2 targets entry levels -3..-1, an empty
	// window. The whole safety-filtered set must come back instead.
	catalog := catalogWithLevels(1, 2, 3, 4, 5)

	candidates := selectCandidates(2, domain.IntensityLow, testProgramID, catalog)
	assert.ElementsMatch(t, []int{1, 2, 3}, entryLevels(candidates))
}

func TestSelectCandidatesEmptyCatalog(t *testing.T) {
	candidates := selectCandidates(5, domain.IntensityNormal, testProgramID, nil)
	assert.Empty(t, candidates)
}

func TestSelectCandidatesWithoutProgramTargets(t *testing.T) {
	// Exercises with no target for the active program enter at level 1:
	// always safe, and inside the normal window for low levels.
	catalog := []domain.Exercise{
		{ID: primitive.NewObjectID(), Name: domain.LocalizedText{En: "untargeted"}},
	}

	candidates := selectCandidates(1, domain.IntensityNormal, "", catalog)
	require.Len(t, candidates, 1)
	assert.Equal(t, "untargeted", candidates[0].Name.En)
}
