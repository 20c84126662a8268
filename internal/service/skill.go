package service

import (
	"github.com/officeappout/out-run-app-sub011/internal/domain"
)

// effectiveLevel returns the level used for all eligibility decisions in
// one domain. A master-program sub-level, when recorded for the user's
// active enrollment, supersedes the raw domain progression; everything
// else falls back to DomainProgress, and absent data degrades to level 1
// rather than failing, so generation never blocks the user.
func effectiveLevel(profile *domain.UserProfile, d domain.TrainingDomain) int {
	enrollment := profile.ActiveEnrollment()
	if enrollment == nil {
		return profile.DomainLevel(d)
	}
	if lvl, ok := profile.SubLevel(enrollment.ProgramID.Hex(), d); ok {
		return lvl
	}
	return profile.DomainLevel(d)
}
