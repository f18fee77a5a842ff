package api

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// DecodeResponse carries text recovered from an uploaded image
type DecodeResponse struct {
	Text string `json:"text"`
	Bits int    `json:"bits"`
}

// CapacityResponse reports how much payload an uploaded image can carry
type CapacityResponse struct {
	Width         int `json:"width"`
	Height        int `json:"height"`
	CapacityBits  int `json:"capacity_bits"`
	CapacityBytes int `json:"capacity_bytes"`
}

// ServerConfig holds configuration for the API server
type ServerConfig struct {
	Port   int
	Bind   string
	APIKey string
}
