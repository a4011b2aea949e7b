package services

import (
	"testing"

	"hotel-receptionist/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertAssignsID(t *testing.T) {
	db := newTestDB(t)
	rooms := seedScenarioRooms(t, db)
	svc := NewReservationService(db)

	rng := mustRange(t, "2024-07-01", "2024-07-03")
	res := &models.Reservation{
		RoomID:    rooms[0].ID,
		GuestName: "Alice",
		CheckIn:   rng.CheckIn,
		CheckOut:  rng.CheckOut,
		Status:    models.ReservationConfirmed,
	}
	require.NoError(t, svc.Insert(nil, res))
	assert.NotZero(t, res.ID)
}

func TestInsertUnknownRoomFailsIntegrity(t *testing.T) {
	db := newTestDB(t)
	seedScenarioRooms(t, db)
	svc := NewReservationService(db)

	rng := mustRange(t, "2024-07-01", "2024-07-03")
	err := svc.Insert(nil, &models.Reservation{
		RoomID:    777,
		GuestName: "Alice",
		CheckIn:   rng.CheckIn,
		CheckOut:  rng.CheckOut,
		Status:    models.ReservationConfirmed,
	})
	assert.ErrorIs(t, err, ErrIntegrity)

	var count int64
	db.Model(&models.Reservation{}).Count(&count)
	assert.Zero(t, count, "failed insert must leave no row")
}

func TestListForRoomRangeFilter(t *testing.T) {
	db := newTestDB(t)
	rooms := seedScenarioRooms(t, db)
	svc := NewReservationService(db)

	july := mustRange(t, "2024-07-01", "2024-07-03")
	august := mustRange(t, "2024-08-10", "2024-08-12")
	for _, rng := range []DateRange{july, august} {
		require.NoError(t, svc.Insert(nil, &models.Reservation{
			RoomID:    rooms[0].ID,
			GuestName: "Alice",
			CheckIn:   rng.CheckIn,
			CheckOut:  rng.CheckOut,
			Status:    models.ReservationConfirmed,
		}))
	}

	all, err := svc.ListForRoom(nil, rooms[0].ID, DateRange{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	julyOnly, err := svc.ListForRoom(nil, rooms[0].ID, mustRange(t, "2024-07-02", "2024-07-05"))
	require.NoError(t, err)
	require.Len(t, julyOnly, 1)
	assert.True(t, julyOnly[0].CheckIn.Equal(july.CheckIn))

	none, err := svc.ListForRoom(nil, rooms[1].ID, DateRange{})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCountOverlappingIgnoresCancelled(t *testing.T) {
	db := newTestDB(t)
	rooms := seedScenarioRooms(t, db)
	svc := NewReservationService(db)

	rng := mustRange(t, "2024-07-01", "2024-07-03")
	require.NoError(t, svc.Insert(nil, &models.Reservation{
		RoomID:    rooms[0].ID,
		GuestName: "Alice",
		CheckIn:   rng.CheckIn,
		CheckOut:  rng.CheckOut,
		Status:    models.ReservationCancelled,
	}))

	n, err := svc.CountOverlapping(nil, rooms[0].ID, rng)
	require.NoError(t, err)
	assert.Zero(t, n, "cancelled reservations must not block availability")
}
