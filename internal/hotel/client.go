// Package hotel talks to the external room catalog and booking service.
package hotel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Room is one entry of the catalog.
type Room struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// BookingResult holds the provider-issued booking id plus the raw response
// body for record keeping.
type BookingResult struct {
	BookingID string
	Raw       []byte
}

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// ListRooms fetches the room catalog.
func (c *Client) ListRooms(ctx context.Context) ([]Room, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/rooms", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rooms: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("non-200 response from rooms endpoint: %d - %s", resp.StatusCode, string(body))
	}

	var rooms []Room
	if err := json.NewDecoder(resp.Body).Decode(&rooms); err != nil {
		return nil, fmt.Errorf("failed to decode rooms response: %w", err)
	}
	return rooms, nil
}

// RoomOptions renders the catalog as the listing shown to the user, one line
// per room in catalog order.
func (c *Client) RoomOptions(ctx context.Context) (string, error) {
	rooms, err := c.ListRooms(ctx)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("Here are the available rooms:\n")
	for _, room := range rooms {
		fmt.Fprintf(&b, "Room ID: %d, Name: %s, Price: %v\n", room.ID, room.Name, room.Price)
	}
	return b.String(), nil
}

// ResolveRoomID looks the given room name up in the live catalog. The second
// return value is false when no room carries that name.
func (c *Client) ResolveRoomID(ctx context.Context, name string) (int, bool, error) {
	rooms, err := c.ListRooms(ctx)
	if err != nil {
		return 0, false, err
	}

	want := strings.ToLower(strings.TrimSpace(name))
	for _, room := range rooms {
		if strings.ToLower(strings.TrimSpace(room.Name)) == want {
			return room.ID, true, nil
		}
	}
	return 0, false, nil
}

// BookRoom posts a reservation for the resolved room id.
func (c *Client) BookRoom(ctx context.Context, roomID int, fullName string, email string, nights int) (*BookingResult, error) {
	payload, err := json.Marshal(map[string]interface{}{
		"roomId":   roomID,
		"fullName": fullName,
		"email":    email,
		"nights":   nights,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal booking request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/book", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to book room: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read booking response: %w", err)
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("non-200 response from booking endpoint: %d - %s", resp.StatusCode, string(body))
	}

	// the id may arrive as a string or as a large number; keep the raw token
	// so numeric ids round-trip without float mangling
	var decoded struct {
		BookingID json.RawMessage `json:"bookingId"`
	}
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("failed to decode booking response: %w", err)
	}
	bookingID := strings.Trim(string(decoded.BookingID), `"`)
	if bookingID == "" || bookingID == "null" {
		return nil, fmt.Errorf("booking response missing bookingId: %s", string(body))
	}

	return &BookingResult{
		BookingID: bookingID,
		Raw:       body,
	}, nil
}
