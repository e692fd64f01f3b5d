package tools

import (
	"context"
	"fmt"
	"log"
	"math"
	"strconv"

	"bot9-palace-backend/internal/hotel"
	llmHandlers "bot9-palace-backend/internal/llm_handlers"
	"bot9-palace-backend/internal/models"
	"bot9-palace-backend/internal/repo"

	"gorm.io/datatypes"
)

// Fixed user-facing replies. Failures contacting the hotel service are
// swallowed into these; no detail reaches the caller.
const (
	MsgNoRooms        = "Sorry, there are no rooms available at the moment."
	MsgBookingFailed  = "Sorry, there was an error booking your room. Please try again later."
	MsgMissingDetails = "Please provide the necessary details for booking: room name, your name, email, and number of nights."
)

// RegisterHotelTools wires the two hotel actions into the tool registry.
// Call once at startup after the hotel client and repositories exist.
func RegisterHotelTools(client *hotel.Client, bookings repo.BookingRepoInterface) {
	llmHandlers.RegisterTool(ToolGetRooms, getRoomsHandler(client))
	llmHandlers.RegisterTool(ToolBookRoom, bookRoomHandler(client, bookings))
}

func getRoomsHandler(client *hotel.Client) llmHandlers.ToolHandler {
	return func(ctx context.Context, sessionKey string, args map[string]interface{}) (string, error) {
		listing, err := client.RoomOptions(ctx)
		if err != nil {
			log.Printf("Error fetching room options: %v", err)
			return MsgNoRooms, nil
		}
		return listing, nil
	}
}

func bookRoomHandler(client *hotel.Client, bookings repo.BookingRepoInterface) llmHandlers.ToolHandler {
	return func(ctx context.Context, sessionKey string, args map[string]interface{}) (string, error) {
		roomName, _ := args["room_name"].(string)
		name, _ := args["name"].(string)
		email, _ := args["email"].(string)
		nights := intArg(args["nights"])

		if roomName == "" || name == "" || email == "" || nights <= 0 {
			return MsgMissingDetails, nil
		}

		roomID, found, err := client.ResolveRoomID(ctx, roomName)
		if err != nil {
			log.Printf("Error resolving room name %q: %v", roomName, err)
			return MsgBookingFailed, nil
		}
		if !found {
			return fmt.Sprintf("Sorry, I couldn't find a room named '%s'. Please choose one of the available rooms.", roomName), nil
		}

		result, err := client.BookRoom(ctx, roomID, name, email, nights)
		if err != nil {
			log.Printf("Error booking room: %v", err)
			return MsgBookingFailed, nil
		}

		if _, err := bookings.CreateBooking(&models.Booking{
			SessionKey:       sessionKey,
			RoomID:           roomID,
			RoomName:         roomName,
			FullName:         name,
			Email:            email,
			Nights:           nights,
			BookingRef:       result.BookingID,
			ProviderResponse: datatypes.JSON(result.Raw),
		}); err != nil {
			// the reservation went through; losing the local record is not
			// worth failing the turn over
			log.Printf("Error recording booking %s: %v", result.BookingID, err)
		}

		return fmt.Sprintf("Booking confirmed! Your booking ID is %s.", result.BookingID), nil
	}
}

// intArg coerces a decoded JSON value into a night count. JSON numbers arrive
// as float64; some models send them as strings. Fractional values do not
// truncate: a night count of 2.5 is treated as missing, not booked as 2.
func intArg(v interface{}) int {
	switch n := v.(type) {
	case float64:
		if n != math.Trunc(n) {
			return 0
		}
		return int(n)
	case int:
		return n
	case string:
		parsed, err := strconv.Atoi(n)
		if err != nil {
			return 0
		}
		return parsed
	}
	return 0
}
