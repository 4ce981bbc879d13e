package health

import "time"

// Service encapsulates health-related checks.
type Service struct{}

// NewService constructs a new health service.
func NewService() *Service {
	return &Service{}
}

// Payload is the health response body.
type Payload struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// Status returns the health payload, timestamped at call time in UTC.
func (s *Service) Status() Payload {
	return Payload{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}
