package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Park is an outdoor training spot with installed fixed equipment.
type Park struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Latitude  float64            `bson:"latitude" json:"latitude"`
	Longitude float64            `bson:"longitude" json:"longitude"`

	// EquipmentIDs lists the gear ids of the equipment installed on site.
	EquipmentIDs []string `bson:"equipmentIds,omitempty" json:"equipmentIds,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// HasEquipment reports whether the park installed the given gear id.
func (p *Park) HasEquipment(gearID string) bool {
	if p == nil || gearID == "" {
		return false
	}
	for _, id := range p.EquipmentIDs {
		if id == gearID {
			return true
		}
	}
	return false
}
