package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"frontdesk/internal/domains/room/model"
	"frontdesk/internal/domains/room/model/dto"
)

func TestGetRoomsResponse_FromModels(t *testing.T) {
	rooms := []model.Room{
		{ID: "room-1", RoomNumber: "101", Type: "Standard"},
		{ID: "room-2", RoomNumber: "201", Type: "Deluxe"},
	}

	var res dto.GetRoomsResponse
	res.FromModels(rooms, 5, 2)

	assert.Len(t, res.Rooms, 2)
	assert.Equal(t, "room-1", res.Rooms[0].ID)
	assert.Equal(t, "101", res.Rooms[0].RoomNumber)
	assert.Equal(t, "Standard", res.Rooms[0].Type)
	assert.Equal(t, 5, res.TotalData)
	assert.Equal(t, 3, res.TotalPage)
}
