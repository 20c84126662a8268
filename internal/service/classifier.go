package service

import (
	"github.com/officeappout/out-run-app-sub011/internal/domain"
)

// Structural classification thresholds, over strength (repetition-based)
// segments only.
const (
	hiitMaxMeanRest      = 30.0
	strengthMaxMeanReps  = 6.0
	strengthMinMeanRest  = 90.0
	volumeMinMeanReps    = 8.0
	volumeMaxMeanReps    = 12.0
	volumeMinMeanSets    = 3.0
	enduranceMinMeanReps = 15.0
	enduranceMaxMeanRest = 45.0

	minSkillSegments = 2
)

// domainGoalTargets maps a workout's focus domains to the fixed goal
// vocabulary used for personalization.
var domainGoalTargets = map[domain.TrainingDomain]domain.Goal{
	domain.DomainCore:        domain.GoalGlutesAbs,
	domain.DomainUpperBody:   domain.GoalMuscleGain,
	domain.DomainLowerBody:   domain.GoalMuscleGain,
	domain.DomainFullBody:    domain.GoalMuscleGain,
	domain.DomainRunning:     domain.GoalEndurance,
	domain.DomainFlexibility: domain.GoalMobility,
	domain.DomainHandstand:   domain.GoalSkills,
	domain.DomainPullUp:      domain.GoalSkills,
}

// strengthStats aggregates the structure of a workout's strength segments.
type strengthStats struct {
	meanReps float64
	meanRest float64
	meanSets float64

	explosiveSegments int
	skillSegments     int
	skillKeywordHit   bool
}

// collectStrengthStats computes the per-segment means and tag counts over
// the plan's repetition-based entries. ok is false when the plan has no
// strength segments at all.
func collectStrengthStats(plan *domain.WorkoutPlan) (stats strengthStats, ok bool) {
	var totalReps, totalRest, totalSets int
	count := 0

	for i := range plan.Entries {
		entry := &plan.Entries[i]
		if entry.Type != domain.ExerciseTypeRepetition {
			continue
		}
		count++
		totalReps += entry.Reps
		totalRest += entry.RestSeconds
		totalSets += entry.Sets

		hasSkill := false
		for _, tag := range entry.Tags {
			switch tag {
			case domain.TagExplosive:
				stats.explosiveSegments++
			case domain.TagSkill:
				hasSkill = true
			case domain.TagBalance, domain.TagTechnique, domain.TagStability:
				stats.skillKeywordHit = true
			}
		}
		if hasSkill {
			stats.skillSegments++
		}
	}

	if count == 0 {
		return strengthStats{}, false
	}

	stats.meanReps = float64(totalReps) / float64(count)
	stats.meanRest = float64(totalRest) / float64(count)
	stats.meanSets = float64(totalSets) / float64(count)
	return stats, true
}

// structuralStyle assigns the training-style label; first match wins.
func structuralStyle(plan *domain.WorkoutPlan) domain.TrainingStyle {
	stats, ok := collectStrengthStats(plan)
	if !ok {
		// No resistance work at all.
		return domain.StyleEndurance
	}

	switch {
	case stats.meanRest < hiitMaxMeanRest && stats.explosiveSegments >= 1:
		return domain.StyleHiit
	case stats.skillSegments >= minSkillSegments || stats.skillKeywordHit:
		return domain.StyleSkills
	case stats.meanReps < strengthMaxMeanReps && stats.meanRest > strengthMinMeanRest:
		return domain.StyleStrength
	case stats.meanReps >= volumeMinMeanReps && stats.meanReps <= volumeMaxMeanReps && stats.meanSets > volumeMinMeanSets:
		return domain.StyleVolume
	case stats.meanReps > enduranceMinMeanReps || stats.meanRest < enduranceMaxMeanRest:
		return domain.StyleEndurance
	default:
		return domain.StyleGeneral
	}
}

// matchGoals intersects the workout's targeted goals with the user's
// declared ones. For hiit and skills workouts the fat-loss/skills goal is
// force-added to the target set even when the domain mapping alone did
// not produce it. Returned in the user's declared order.
func matchGoals(plan *domain.WorkoutPlan, style domain.TrainingStyle, goals []domain.Goal) []domain.Goal {
	if len(goals) == 0 {
		return nil
	}

	targets := make(map[domain.Goal]bool)
	for _, d := range plan.FocusDomains {
		if g, ok := domainGoalTargets[d]; ok {
			targets[g] = true
		}
	}
	for i := range plan.Entries {
		if g, ok := domainGoalTargets[plan.Entries[i].Domain]; ok {
			targets[g] = true
		}
	}

	switch style {
	case domain.StyleHiit:
		targets[domain.GoalFatLoss] = true
	case domain.StyleSkills:
		targets[domain.GoalSkills] = true
	}

	var matched []domain.Goal
	seen := make(map[domain.Goal]bool)
	for _, g := range goals {
		if targets[g] && !seen[g] {
			matched = append(matched, g)
			seen[g] = true
		}
	}
	return matched
}

// classifyWorkout labels an assembled plan's training style and checks it
// against the user's declared goals. Personalization is computed
// regardless of which structural label was chosen.
func classifyWorkout(plan *domain.WorkoutPlan, goals []domain.Goal) domain.ClassificationResult {
	style := structuralStyle(plan)
	matched := matchGoals(plan, style, goals)
	return domain.ClassificationResult{
		Style:          style,
		IsPersonalized: len(matched) > 0,
		MatchedGoals:   matched,
	}
}
