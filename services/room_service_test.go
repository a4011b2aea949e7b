package services

import (
	"encoding/json"
	"testing"

	"hotel-receptionist/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func amenitiesJSON(t *testing.T, items ...string) datatypes.JSON {
	t.Helper()
	b, err := json.Marshal(items)
	require.NoError(t, err)
	return datatypes.JSON(b)
}

func TestListFilterByType(t *testing.T) {
	db := newTestDB(t)
	seedScenarioRooms(t, db)
	svc := NewRoomService(db)

	got, err := svc.List(RoomFilter{Type: "suite"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, models.RoomTypeSuite, got[0].Type)
}

func TestListFilterByMaxRate(t *testing.T) {
	db := newTestDB(t)
	seedScenarioRooms(t, db)
	svc := NewRoomService(db)

	got, err := svc.List(RoomFilter{MaxRate: 150})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "101", got[0].RoomNumber)
}

func TestListFilterByAmenity(t *testing.T) {
	db := newTestDB(t)
	seedScenarioRooms(t, db)
	svc := NewRoomService(db)

	got, err := svc.List(RoomFilter{Amenity: "Balcony"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "102", got[0].RoomNumber)
}

func TestListEmptyResultIsNotAnError(t *testing.T) {
	db := newTestDB(t)
	seedScenarioRooms(t, db)
	svc := NewRoomService(db)

	got, err := svc.List(RoomFilter{Type: "Deluxe"})
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestGetByIDNotFound(t *testing.T) {
	db := newTestDB(t)
	seedScenarioRooms(t, db)
	svc := NewRoomService(db)

	_, err := svc.GetByID(4242)
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestGetByNumber(t *testing.T) {
	db := newTestDB(t)
	rooms := seedScenarioRooms(t, db)
	svc := NewRoomService(db)

	room, err := svc.GetByNumber(" 102 ")
	require.NoError(t, err)
	assert.Equal(t, rooms[1].ID, room.ID)

	_, err = svc.GetByNumber("999")
	assert.ErrorIs(t, err, ErrRoomNotFound)
}
