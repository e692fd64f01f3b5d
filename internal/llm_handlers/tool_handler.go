package llmHandlers

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
)

// ToolHandler executes one action on behalf of the model and returns the
// user-facing reply text. sessionKey identifies the conversation the call
// belongs to.
type ToolHandler func(ctx context.Context, sessionKey string, args map[string]interface{}) (string, error)

// toolHandlers is the registry that maps tool name -> handler.
var (
	toolHandlersMu sync.RWMutex
	toolHandlers   = make(map[string]ToolHandler)
)

// RegisterTool registers a ToolHandler under the given name.
// If a handler already exists, it will be overwritten.
func RegisterTool(name string, h ToolHandler) {
	toolHandlersMu.Lock()
	defer toolHandlersMu.Unlock()
	toolHandlers[name] = h
}

// UnregisterTool removes a registered tool handler.
func UnregisterTool(name string) {
	toolHandlersMu.Lock()
	defer toolHandlersMu.Unlock()
	delete(toolHandlers, name)
}

func getToolHandler(name string) (ToolHandler, bool) {
	toolHandlersMu.RLock()
	defer toolHandlersMu.RUnlock()
	h, ok := toolHandlers[name]
	return h, ok
}

// Dispatch runs the handler registered under call.Name. The argument string
// is decoded as a JSON object; an empty or undecodable string is treated as
// no arguments. The second return value is false when no handler is
// registered under that name.
func Dispatch(ctx context.Context, sessionKey string, call ToolCall) (string, bool, error) {
	handler, ok := getToolHandler(call.Name)
	if !ok {
		return "", false, nil
	}

	args := map[string]interface{}{}
	if raw := strings.TrimSpace(call.Arguments); raw != "" {
		if err := json.Unmarshal([]byte(raw), &args); err != nil {
			args = map[string]interface{}{}
		}
	}

	reply, err := handler(ctx, sessionKey, args)
	return reply, true, err
}
