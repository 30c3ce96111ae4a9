package availability

import (
	"testing"

	"bitbucket.org/crgw/availability-hub/internal/schema"
	"github.com/stretchr/testify/assert"
)

func roomWithAges(ages ...string) schema.RoomRequest {
	room := schema.RoomRequest{}
	for _, age := range ages {
		room.Guests = append(room.Guests, schema.GuestRequest{Age: age})
	}

	return room
}

func TestValidateOccupancy(t *testing.T) {
	service := testService()

	t.Run("should classify guests by age", func(t *testing.T) {
		occupancy, err := service.validateOccupancy(roomWithAges("30", "28", "4", "6"))

		assert.Nil(t, err)
		assert.Equal(t, RoomOccupancy{Adults: 3, Children: 1}, occupancy)
	})

	t.Run("should treat the cutoff age as a child", func(t *testing.T) {
		occupancy, err := service.validateOccupancy(roomWithAges("30", "5"))

		assert.Nil(t, err)
		assert.Equal(t, RoomOccupancy{Adults: 1, Children: 1}, occupancy)
	})

	t.Run("should accept an empty room", func(t *testing.T) {
		occupancy, err := service.validateOccupancy(schema.RoomRequest{})

		assert.Nil(t, err)
		assert.Equal(t, RoomOccupancy{}, occupancy)
	})

	t.Run("should reject too many guests", func(t *testing.T) {
		room := roomWithAges("30", "30", "30", "30", "30", "30", "30", "30", "30", "30", "30")

		_, err := service.validateOccupancy(room)

		assert.EqualError(t, err, "too many guests")
	})

	t.Run("should reject too many children even with an adult present", func(t *testing.T) {
		_, err := service.validateOccupancy(roomWithAges("30", "1", "2", "3", "4", "5"))

		assert.EqualError(t, err, "too many children")
	})

	t.Run("should reject children without an adult in the room", func(t *testing.T) {
		_, err := service.validateOccupancy(roomWithAges("4"))

		assert.EqualError(t, err, "unaccompanied child")
	})

	t.Run("should apply an overridden guest ceiling", func(t *testing.T) {
		rules := DefaultRules()
		rules.MaxGuestsPerRoom = 5

		tightened := NewWithClock(rules, fixedClock)

		_, err := tightened.validateOccupancy(roomWithAges("30", "30", "30", "30", "30", "30"))

		assert.EqualError(t, err, "too many guests")
	})

	t.Run("should reject an unparseable age", func(t *testing.T) {
		_, err := service.validateOccupancy(roomWithAges("30", "abc"))

		assert.EqualError(t, err, "invalid guest age")
	})
}
