package hotel

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRoomOptionsFormatting(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rooms" {
			t.Errorf("Expected path /rooms, got %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id": 1, "name": "Deluxe Suite", "price": 2000},
			{"id": 2, "name": "Standard Room", "price": 999.5}
		]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	listing, err := client.RoomOptions(context.Background())
	if err != nil {
		t.Fatalf("RoomOptions returned error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(listing, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected header plus 2 room lines, got %d lines: %q", len(lines), listing)
	}
	if lines[0] != "Here are the available rooms:" {
		t.Errorf("Unexpected header: %q", lines[0])
	}
	if lines[1] != "Room ID: 1, Name: Deluxe Suite, Price: 2000" {
		t.Errorf("Unexpected first room line: %q", lines[1])
	}
	if lines[2] != "Room ID: 2, Name: Standard Room, Price: 999.5" {
		t.Errorf("Unexpected second room line: %q", lines[2])
	}
}

func TestRoomOptionsTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	if _, err := client.RoomOptions(context.Background()); err == nil {
		t.Fatal("Expected error for non-200 response, got nil")
	}
}

func TestResolveRoomID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id": 3, "name": "Ocean View", "price": 1500}]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)

	id, found, err := client.ResolveRoomID(context.Background(), "ocean view")
	if err != nil {
		t.Fatalf("ResolveRoomID returned error: %v", err)
	}
	if !found || id != 3 {
		t.Errorf("Expected id 3 found, got id=%d found=%v", id, found)
	}

	_, found, err = client.ResolveRoomID(context.Background(), "Penthouse")
	if err != nil {
		t.Fatalf("ResolveRoomID returned error: %v", err)
	}
	if found {
		t.Error("Expected Penthouse to be unresolved")
	}
}

func TestBookRoomPassesRoomIDThrough(t *testing.T) {
	var body map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/book" {
			t.Errorf("Expected path /book, got %s", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Expected JSON content type, got %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("Failed to decode booking body: %v", err)
		}
		w.Write([]byte(`{"bookingId": 42}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	result, err := client.BookRoom(context.Background(), 7, "Jordan Blake", "jordan@example.com", 3)
	if err != nil {
		t.Fatalf("BookRoom returned error: %v", err)
	}

	// the id resolved from the room name must reach the provider unchanged
	if got := body["roomId"]; got != float64(7) {
		t.Errorf("Expected roomId 7 in request body, got %v", got)
	}
	if got := body["fullName"]; got != "Jordan Blake" {
		t.Errorf("Expected fullName in request body, got %v", got)
	}
	if got := body["nights"]; got != float64(3) {
		t.Errorf("Expected nights 3 in request body, got %v", got)
	}
	if result.BookingID != "42" {
		t.Errorf("Expected booking id 42, got %q", result.BookingID)
	}
}

func TestBookRoomLargeNumericID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// epoch-millisecond style id, larger than float64 renders verbatim
		w.Write([]byte(`{"bookingId": 1721932093474}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	result, err := client.BookRoom(context.Background(), 1, "Jordan Blake", "jordan@example.com", 2)
	if err != nil {
		t.Fatalf("BookRoom returned error: %v", err)
	}
	if result.BookingID != "1721932093474" {
		t.Errorf("Expected booking id 1721932093474, got %q", result.BookingID)
	}
}

func TestBookRoomStringID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"bookingId": "bk-2024-0017"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	result, err := client.BookRoom(context.Background(), 1, "Jordan Blake", "jordan@example.com", 2)
	if err != nil {
		t.Fatalf("BookRoom returned error: %v", err)
	}
	if result.BookingID != "bk-2024-0017" {
		t.Errorf("Expected booking id bk-2024-0017, got %q", result.BookingID)
	}
}

func TestBookRoomMissingID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "ok"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	if _, err := client.BookRoom(context.Background(), 1, "A", "a@example.com", 1); err == nil {
		t.Fatal("Expected error for response without bookingId, got nil")
	}
}

func TestBookRoomFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": "room unavailable"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	if _, err := client.BookRoom(context.Background(), 1, "A", "a@example.com", 1); err == nil {
		t.Fatal("Expected error for non-200 response, got nil")
	}
}
