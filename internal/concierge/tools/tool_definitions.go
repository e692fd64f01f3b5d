package tools

import (
	"github.com/tmc/langchaingo/llms"
	"google.golang.org/genai"
)

const (
	ToolBookRoom = "book_room"
	ToolGetRooms = "get_rooms_when_user_asks_for_available_rooms"
)

// GetOpenAITools returns the action declarations in OpenAI function format.
// No field is marked required; the model may call with partial arguments and
// the handlers answer with a clarification prompt instead.
func GetOpenAITools() []llms.Tool {
	return []llms.Tool{
		{
			Type: "function",
			Function: &llms.FunctionDefinition{
				Name:        ToolBookRoom,
				Description: "Book a room for the user at the hotel.",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"room_name": map[string]interface{}{
							"type":        "string",
							"description": "The name of the room to book",
						},
						"name": map[string]interface{}{
							"type":        "string",
							"description": "The name of the person booking the room",
						},
						"email": map[string]interface{}{
							"type":        "string",
							"description": "The email of the person booking the room",
						},
						"nights": map[string]interface{}{
							"type":        "number",
							"description": "The number of nights to book the room for",
						},
					},
					"required": []string{},
				},
			},
		},
		{
			Type: "function",
			Function: &llms.FunctionDefinition{
				Name:        ToolGetRooms,
				Description: "Get available rooms at the hotel when user asks for available rooms",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"query": map[string]interface{}{
							"type":        "string",
							"description": "The query to search for rooms",
						},
					},
					"required": []string{},
				},
			},
		},
	}
}

// Groq tool format is the same as OpenAI's
func GetGroqTools() []llms.Tool {
	return GetOpenAITools()
}

// GetGeminiTools returns the same declarations in Gemini function calling format
func GetGeminiTools() []*genai.Tool {
	return []*genai.Tool{
		{
			FunctionDeclarations: []*genai.FunctionDeclaration{
				{
					Name:        ToolBookRoom,
					Description: "Book a room for the user at the hotel.",
					Parameters: &genai.Schema{
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"room_name": {
								Type:        genai.TypeString,
								Description: "The name of the room to book",
							},
							"name": {
								Type:        genai.TypeString,
								Description: "The name of the person booking the room",
							},
							"email": {
								Type:        genai.TypeString,
								Description: "The email of the person booking the room",
							},
							"nights": {
								Type:        genai.TypeNumber,
								Description: "The number of nights to book the room for",
							},
						},
						Required: []string{},
					},
				},
				{
					Name:        ToolGetRooms,
					Description: "Get available rooms at the hotel when user asks for available rooms",
					Parameters: &genai.Schema{
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"query": {
								Type:        genai.TypeString,
								Description: "The query to search for rooms",
							},
						},
						Required: []string{},
					},
				},
			},
		},
	}
}
