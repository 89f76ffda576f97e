package module

import "personalab/internal/services/api/personas/domain"

// Ports are what the personas module offers other modules
type Ports struct {
	Reader domain.Reader
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
