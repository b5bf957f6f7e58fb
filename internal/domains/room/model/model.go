package model

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID         = "id"
	FieldRoomNumber = "room_number"
	FieldType       = "type"
)

type Room struct {
	ID         string `db:"id"`
	RoomNumber string `db:"room_number"`
	Type       string `db:"type"`
}
