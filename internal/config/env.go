package config

import "os"

// Getenv returns the value of key, or fallback when unset or empty.
func Getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// HotelAPIBaseURL is the base URL of the room catalog / booking service.
func HotelAPIBaseURL() string {
	return Getenv("HOTEL_API_BASE_URL", "https://bot9assignement.deno.dev")
}

// LLMProvider selects the completion backend: openai, groq or gemini.
func LLMProvider() string {
	return Getenv("LLM_PROVIDER", "openai")
}
