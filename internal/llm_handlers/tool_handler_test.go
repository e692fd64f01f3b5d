package llmHandlers

import (
	"context"
	"testing"
)

func TestDispatchUnregistered(t *testing.T) {
	_, handled, err := Dispatch(context.Background(), "s", ToolCall{Name: "nope"})
	if err != nil {
		t.Fatalf("Dispatch returned error: %v", err)
	}
	if handled {
		t.Error("Expected unregistered tool to be unhandled")
	}
}

func TestDispatchArgumentTolerance(t *testing.T) {
	var got map[string]interface{}
	RegisterTool("echo_args", func(ctx context.Context, sessionKey string, args map[string]interface{}) (string, error) {
		got = args
		return "ok", nil
	})
	defer UnregisterTool("echo_args")

	cases := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"whitespace", "  "},
		{"malformed", `{"room_name": `},
	}
	for _, tc := range cases {
		got = nil
		reply, handled, err := Dispatch(context.Background(), "s", ToolCall{Name: "echo_args", Arguments: tc.raw})
		if err != nil || !handled || reply != "ok" {
			t.Fatalf("%s: unexpected dispatch result reply=%q handled=%v err=%v", tc.name, reply, handled, err)
		}
		if got == nil || len(got) != 0 {
			t.Errorf("%s: expected empty args map, got %v", tc.name, got)
		}
	}

	_, _, err := Dispatch(context.Background(), "s", ToolCall{Name: "echo_args", Arguments: `{"nights": 2}`})
	if err != nil {
		t.Fatalf("Dispatch returned error: %v", err)
	}
	if got["nights"] != float64(2) {
		t.Errorf("Expected decoded nights arg, got %v", got)
	}
}
