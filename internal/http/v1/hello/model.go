package hello

// StatusOK is the constant status reported by every greeting.
const StatusOK = "OK"

// Greeting is the response payload for GET /api/hello.
type Greeting struct {
	Message string `json:"message" doc:"Configured greeting message" example:"Hello from Spring Boot on Kubernetes"`
	Status  string `json:"status"  doc:"Service status, always OK"    example:"OK" enum:"OK"`
}

// NewGreeting builds the greeting for message.
func NewGreeting(message string) Greeting {
	return Greeting{Message: message, Status: StatusOK}
}

// GetOutput is the response wrapper for the hello endpoint.
type GetOutput struct {
	Body Greeting
}
