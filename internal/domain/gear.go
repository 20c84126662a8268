package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Gear is a named equipment definition from the content catalog. GearID is
// the stable string key referenced by execution methods and park facility
// lists; the engine uses definitions for display only, never for logic.
type Gear struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	GearID   string             `bson:"gearId" json:"gearId"` // e.g. "pullup_bar", "resistance_band"
	Name     LocalizedText      `bson:"name" json:"name"`
	Category string             `bson:"category,omitempty" json:"category,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
