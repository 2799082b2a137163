package health

import "context"

// HealthResponse is the liveness probe body. It is always {"ok": true}.
type HealthResponse struct {
	OK bool `json:"ok"`
}

// Service answers liveness probes. It checks no dependencies, so the probe
// succeeds whether or not the provider credential is configured.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Health performs a basic liveness check
func (s *Service) Health(ctx context.Context) *HealthResponse {
	return &HealthResponse{OK: true}
}
