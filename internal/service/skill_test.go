package service

import (
	"testing"

	"github.com/officeappout/out-run-app-sub011/internal/domain"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestEffectiveLevel(t *testing.T) {
	programID := primitive.NewObjectID()
	otherProgramID := primitive.NewObjectID()

	enrolled := func(p *domain.UserProfile) *domain.UserProfile {
		p.ActivePrograms = []domain.ActiveProgramEnrollment{
			{ProgramID: programID},
		}
		return p
	}

	tests := []struct {
		name    string
		profile *domain.UserProfile
		d       domain.TrainingDomain
		want    int
	}{
		{
			name:    "no progress at all defaults to 1",
			profile: &domain.UserProfile{},
			d:       domain.DomainUpperBody,
			want:    1,
		},
		{
			name: "raw domain progress without enrollment",
			profile: &domain.UserProfile{
				Progress: map[domain.TrainingDomain]domain.DomainProgress{
					domain.DomainUpperBody: {CurrentLevel: 3},
				},
			},
			d:    domain.DomainUpperBody,
			want: 3,
		},
		{
			name: "sub-level supersedes raw progress",
			profile: enrolled(&domain.UserProfile{
				Progress: map[domain.TrainingDomain]domain.DomainProgress{
					domain.DomainUpperBody: {CurrentLevel: 2},
				},
				MasterSubLevels: map[string]domain.SubLevelMap{
					programID.Hex(): {domain.DomainUpperBody: 4},
				},
			}),
			d:    domain.DomainUpperBody,
			want: 4,
		},
		{
			name: "missing sub-level falls back to raw progress",
			profile: enrolled(&domain.UserProfile{
				Progress: map[domain.TrainingDomain]domain.DomainProgress{
					domain.DomainLowerBody: {CurrentLevel: 2},
				},
				MasterSubLevels: map[string]domain.SubLevelMap{
					programID.Hex(): {domain.DomainUpperBody: 4},
				},
			}),
			d:    domain.DomainLowerBody,
			want: 2,
		},
		{
			name: "sub-levels of a different program are ignored",
			profile: enrolled(&domain.UserProfile{
				Progress: map[domain.TrainingDomain]domain.DomainProgress{
					domain.DomainUpperBody: {CurrentLevel: 2},
				},
				MasterSubLevels: map[string]domain.SubLevelMap{
					otherProgramID.Hex(): {domain.DomainUpperBody: 7},
				},
			}),
			d:    domain.DomainUpperBody,
			want: 2,
		},
		{
			name: "zero sub-level is treated as unrecorded",
			profile: enrolled(&domain.UserProfile{
				MasterSubLevels: map[string]domain.SubLevelMap{
					programID.Hex(): {domain.DomainCore: 0},
				},
			}),
			d:    domain.DomainCore,
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, effectiveLevel(tt.profile, tt.d))
		})
	}
}
