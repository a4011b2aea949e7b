package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"hotel-receptionist/models"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"
)

const (
	ToolFindRooms = "find_rooms"
	ToolBookRoom  = "book_room"
)

type FindRoomsArgs struct {
	RoomType string  `json:"room_type,omitempty"`
	MaxRate  float64 `json:"max_rate,omitempty"`
	Amenity  string  `json:"amenity,omitempty"`
	CheckIn  string  `json:"check_in,omitempty"`
	CheckOut string  `json:"check_out,omitempty"`
}

type BookRoomArgs struct {
	RoomID    string `json:"room_id"`
	GuestName string `json:"guest_name"`
	CheckIn   string `json:"check_in"`
	CheckOut  string `json:"check_out"`
}

type BookRoomResult struct {
	Status        string `json:"status"`
	ReservationID uint   `json:"reservation_id,omitempty"`
	Message       string `json:"message,omitempty"`
}

type RoomSummary struct {
	RoomID      string   `json:"room_id"`
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Rate        float64  `json:"rate"`
	Amenities   []string `json:"amenities,omitempty"`
	Description string   `json:"description,omitempty"`
}

type FindRoomsResult struct {
	Rooms   []RoomSummary `json:"rooms"`
	Message string        `json:"message,omitempty"`
}

// ToolAdapter exposes the booking service as statically declared function
// tools. Dispatch always returns a JSON payload the model can read; booking
// errors become {"status":"error",...}, never a fault up to the chat loop.
type ToolAdapter struct {
	bookings *BookingService
	rooms    *RoomService
}

func NewToolAdapter(bookings *BookingService, rooms *RoomService) *ToolAdapter {
	return &ToolAdapter{bookings: bookings, rooms: rooms}
}

func (a *ToolAdapter) Definitions() []openai.Tool {
	return []openai.Tool{
		{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name: ToolFindRooms,
				Description: "Search the room inventory. All filters are optional; " +
					"supply check_in/check_out to restrict results to rooms free for those dates.",
				Parameters: jsonschema.Definition{
					Type: jsonschema.Object,
					Properties: map[string]jsonschema.Definition{
						"room_type": {
							Type:        jsonschema.String,
							Description: "Room type to filter by.",
							Enum:        []string{models.RoomTypeStandard, models.RoomTypeDeluxe, models.RoomTypeSuite},
						},
						"max_rate": {
							Type:        jsonschema.Number,
							Description: "Maximum nightly rate in USD.",
						},
						"amenity": {
							Type:        jsonschema.String,
							Description: "Amenity the room must have, e.g. 'balcony'.",
						},
						"check_in": {
							Type:        jsonschema.String,
							Description: "Check-in date, YYYY-MM-DD.",
						},
						"check_out": {
							Type:        jsonschema.String,
							Description: "Check-out date, YYYY-MM-DD.",
						},
					},
				},
			},
		},
		{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name: ToolBookRoom,
				Description: "Book a room for a guest. Use the room_id returned by find_rooms. " +
					"Confirm the guest's name and dates before calling.",
				Parameters: jsonschema.Definition{
					Type: jsonschema.Object,
					Properties: map[string]jsonschema.Definition{
						"room_id": {
							Type:        jsonschema.String,
							Description: "Identifier of the room to book (id or room number).",
						},
						"guest_name": {
							Type:        jsonschema.String,
							Description: "Full name of the guest.",
						},
						"check_in": {
							Type:        jsonschema.String,
							Description: "Check-in date, YYYY-MM-DD.",
						},
						"check_out": {
							Type:        jsonschema.String,
							Description: "Check-out date, YYYY-MM-DD.",
						},
					},
					Required: []string{"room_id", "guest_name", "check_in", "check_out"},
				},
			},
		},
	}
}

// Dispatch routes a tool call by name. The returned string is always valid
// JSON, including for unknown tools and malformed arguments.
func (a *ToolAdapter) Dispatch(name, args string) string {
	switch name {
	case ToolFindRooms:
		return a.findRooms(args)
	case ToolBookRoom:
		return a.bookRoom(args)
	default:
		return errorPayload(fmt.Sprintf("unknown tool: %s", name))
	}
}

func (a *ToolAdapter) findRooms(raw string) string {
	var args FindRoomsArgs
	if err := json.Unmarshal([]byte(raw), &args); err != nil {
		return errorPayload(fmt.Sprintf("invalid arguments: %v", err))
	}

	var rng DateRange
	if args.CheckIn != "" || args.CheckOut != "" {
		var err error
		rng, err = ParseDateRange(args.CheckIn, args.CheckOut)
		if err != nil {
			return errorPayload(err.Error())
		}
		if !rng.Valid() {
			return errorPayload(ErrInvalidRange.Error())
		}
	}

	filter := RoomFilter{Type: args.RoomType, Amenity: args.Amenity, MaxRate: args.MaxRate}
	rooms, err := a.bookings.FindRooms(filter, rng)
	if err != nil {
		return a.servicePayload(err)
	}

	result := FindRoomsResult{Rooms: make([]RoomSummary, 0, len(rooms))}
	for _, room := range rooms {
		result.Rooms = append(result.Rooms, RoomSummary{
			RoomID:      strconv.FormatUint(uint64(room.ID), 10),
			Name:        room.Name,
			Type:        room.Type,
			Rate:        room.Rate,
			Amenities:   room.AmenityList(),
			Description: room.Description,
		})
	}
	if len(result.Rooms) == 0 {
		result.Message = "No rooms match those criteria. Suggest relaxing the filters or trying other dates."
	}
	return mustJSON(result)
}

func (a *ToolAdapter) bookRoom(raw string) string {
	var args BookRoomArgs
	if err := json.Unmarshal([]byte(raw), &args); err != nil {
		return errorPayload(fmt.Sprintf("invalid arguments: %v", err))
	}

	if strings.TrimSpace(args.GuestName) == "" {
		return errorPayload(ErrGuestRequired.Error())
	}

	rng, err := ParseDateRange(args.CheckIn, args.CheckOut)
	if err != nil {
		return errorPayload(err.Error())
	}

	room, err := a.resolveRoom(args.RoomID)
	if err != nil {
		return a.servicePayload(err)
	}

	res, err := a.bookings.BookRoom(room.ID, args.GuestName, rng)
	if err != nil {
		return a.servicePayload(err)
	}

	return mustJSON(BookRoomResult{
		Status:        "confirmed",
		ReservationID: res.ID,
		Message: fmt.Sprintf("Reservation confirmed for %s in %s (%s to %s, %d night(s)).",
			res.GuestName, room.Name,
			res.CheckIn.Format(dateLayout), res.CheckOut.Format(dateLayout), res.Nights()),
	})
}

// resolveRoom accepts either a numeric id or a room number, since the model
// may echo whichever identifier the guest mentioned.
func (a *ToolAdapter) resolveRoom(id string) (models.Room, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return models.Room{}, ErrRoomNotFound
	}
	if n, err := strconv.ParseUint(id, 10, 32); err == nil {
		room, err := a.rooms.GetByID(uint(n))
		if err == nil {
			return room, nil
		}
		// A missing id may still be a valid room number; anything else
		// is a storage fault and must not masquerade as "not found".
		if !errors.Is(err, ErrRoomNotFound) {
			return models.Room{}, err
		}
	}
	return a.rooms.GetByNumber(id)
}

// servicePayload folds a booking-core error into a readable payload. Known
// failures pass their message through; anything else is a storage fault and
// is logged but not leaked to the model.
func (a *ToolAdapter) servicePayload(err error) string {
	switch {
	case errors.Is(err, ErrRoomNotFound),
		errors.Is(err, ErrInvalidRange),
		errors.Is(err, ErrConflict),
		errors.Is(err, ErrIntegrity),
		errors.Is(err, ErrGuestRequired):
		return errorPayload(err.Error())
	default:
		log.Printf("❌ tool dispatch failed: %v", err)
		return errorPayload("an internal error occurred, the request could not be completed")
	}
}

func errorPayload(message string) string {
	return mustJSON(BookRoomResult{Status: "error", Message: message})
}

func mustJSON(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		log.Printf("warning: failed to marshal tool payload: %v", err)
		return `{"status":"error","message":"internal serialization error"}`
	}
	return string(b)
}
