package service

import (
	"sort"
	"strings"

	"github.com/officeappout/out-run-app-sub011/internal/domain"
)

// gearTypePriority returns the order in which gear-type categories are
// tried when resolving an execution method. Locations with installed
// equipment (park, gym) prefer it; everywhere else only what the user
// brings or improvises is considered.
func gearTypePriority(loc domain.Location) []domain.GearType {
	switch loc {
	case domain.LocationPark, domain.LocationGym:
		return []domain.GearType{domain.GearFixedEquipment, domain.GearUserGear, domain.GearImprovised}
	default:
		return []domain.GearType{domain.GearUserGear, domain.GearImprovised}
	}
}

// ownsGear is the user-gear satisfiability test. A profile with no
// recorded gear at all means ownership was never collected, not that the
// user owns nothing; that case must not block the user, so it passes.
func ownsGear(profile *domain.UserProfile, gearID string) bool {
	if gearID == "" {
		return true
	}
	if profile == nil || len(profile.OwnedGearIDs) == 0 {
		return true
	}
	for _, id := range profile.OwnedGearIDs {
		if id == gearID {
			return true
		}
	}
	return false
}

// selectExecutionMethod picks the single best performable variant of an
// exercise for the requested location, or nil when the exercise is
// infeasible there. Within each gear-type category the first acceptable
// method wins; fixed equipment is acceptable only when the supplied park
// has the method's gear installed.
func selectExecutionMethod(ex *domain.Exercise, loc domain.Location, park *domain.Park, profile *domain.UserProfile) *domain.ExecutionMethod {
	var atLocation []domain.ExecutionMethod
	for _, m := range ex.Methods {
		if m.Location == loc {
			atLocation = append(atLocation, m)
		}
	}
	if len(atLocation) == 0 {
		return nil
	}

	for _, gearType := range gearTypePriority(loc) {
		for i := range atLocation {
			m := &atLocation[i]
			if m.GearType != gearType {
				continue
			}
			switch gearType {
			case domain.GearFixedEquipment:
				if park.HasEquipment(m.GearID) {
					return m
				}
			case domain.GearUserGear:
				if ownsGear(profile, m.GearID) {
					return m
				}
			case domain.GearImprovised:
				return m
			}
		}
	}
	return nil
}

// urbanAssetKeywords name street furniture any urban location offers.
// Requirements naming them are satisfiable regardless of park data.
var urbanAssetKeywords = []string{"bench", "stairs", "wall", "bar"}

func isCommonUrbanAsset(assetName string) bool {
	lowered := strings.ToLower(assetName)
	for _, kw := range urbanAssetKeywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}

func requirementSatisfied(req domain.EquipmentRequirement, park *domain.Park, profile *domain.UserProfile) bool {
	switch req.Type {
	case domain.RequirementGymEquipment:
		return park.HasEquipment(req.GearID)
	case domain.RequirementUrbanAsset:
		return isCommonUrbanAsset(req.AssetName)
	case domain.RequirementUserGear:
		return ownsGear(profile, req.GearID)
	}
	return false
}

// canPerformExercise reports whether the exercise is performable at all
// for this user, location and park: either a concrete execution method
// resolves, or one of the alternative equipment requirements (ascending
// priority) is independently satisfiable, or a legacy single-field
// requirement holds. With no requirements of any kind the exercise is
// trivially performable.
func canPerformExercise(ex *domain.Exercise, park *domain.Park, profile *domain.UserProfile, loc domain.Location) bool {
	if selectExecutionMethod(ex, loc, park, profile) != nil {
		return true
	}

	if len(ex.AlternativeRequirements) > 0 {
		reqs := make([]domain.EquipmentRequirement, len(ex.AlternativeRequirements))
		copy(reqs, ex.AlternativeRequirements)
		sort.SliceStable(reqs, func(i, j int) bool { return reqs[i].Priority < reqs[j].Priority })
		for _, req := range reqs {
			if requirementSatisfied(req, park, profile) {
				return true
			}
		}
	}

	// Legacy single-field requirements, final fallback.
	if ex.RequiredEquipmentID != "" && park.HasEquipment(ex.RequiredEquipmentID) {
		return true
	}
	if ex.RequiredUserGearID != "" && ownsGear(profile, ex.RequiredUserGearID) {
		return true
	}

	return len(ex.AlternativeRequirements) == 0 &&
		ex.RequiredEquipmentID == "" &&
		ex.RequiredUserGearID == ""
}
