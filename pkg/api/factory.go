// Package api provides factory implementations for dependency injection
package api

import (
	"github.com/molinab297/gosteg/pkg/journal"
	"github.com/molinab297/gosteg/pkg/stego"
)

// DefaultServerFactory is the default implementation of ServerFactory
type DefaultServerFactory struct{}

// NewServerFactory creates a new server factory
func NewServerFactory() ServerFactory {
	return &DefaultServerFactory{}
}

// CreateServerStarter creates a server starter
func (f *DefaultServerFactory) CreateServerStarter() ServerStarter {
	return &DefaultServerStarter{}
}

// DefaultServerStarter is the default implementation of ServerStarter
type DefaultServerStarter struct{}

// StartServer starts the API server with the given configuration
func (s *DefaultServerStarter) StartServer(codec *stego.Codec, jnl *journal.Journal, config ServerConfig) error {
	return StartServer(codec, jnl, config)
}
