package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProgramTemplate is a program definition from the content catalog.
// Master (composite) programs span several domains through independently
// tracked hidden sub-levels; regular programs progress a single track.
type ProgramTemplate struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        LocalizedText      `bson:"name" json:"name"`
	Description LocalizedText      `bson:"description,omitempty" json:"description,omitempty"`
	IsMaster    bool               `bson:"isMaster" json:"isMaster"`

	// SubPrograms lists the domains a master program spans. Ignored for
	// regular programs.
	SubPrograms []TrainingDomain `bson:"subPrograms,omitempty" json:"subPrograms,omitempty"`

	WeekCount int `bson:"weekCount" json:"weekCount"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
