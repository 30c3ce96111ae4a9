package availability

import (
	"strconv"

	"bitbucket.org/crgw/availability-hub/internal/schema"
)

// RoomOccupancy is the classified guest list of one room group.
type RoomOccupancy struct {
	Adults   int
	Children int
}

// validateOccupancy classifies one room's guests by age and enforces the
// per-room ceilings: guest count, child count, and no children without an
// adult in the same room.
func (s *Service) validateOccupancy(room schema.RoomRequest) (RoomOccupancy, error) {
	occupancy := RoomOccupancy{}

	if len(room.Guests) > s.rules.MaxGuestsPerRoom {
		return occupancy, &RuleError{Field: "pax", Reason: "too many guests"}
	}

	for _, guest := range room.Guests {
		age, err := strconv.Atoi(guest.Age)
		if err != nil {
			return occupancy, &RuleError{Field: "age", Reason: "invalid guest age"}
		}

		if age > s.rules.AdultAgeOver {
			occupancy.Adults++
		} else {
			occupancy.Children++
		}
	}

	if occupancy.Children > s.rules.MaxChildrenPerRoom {
		return occupancy, &RuleError{Field: "pax", Reason: "too many children"}
	}

	if occupancy.Children > 0 && occupancy.Adults == 0 {
		return occupancy, &RuleError{Field: "pax", Reason: "unaccompanied child"}
	}

	return occupancy, nil
}
