// Package api provides interfaces for dependency injection
package api

import (
	"github.com/molinab297/gosteg/pkg/journal"
	"github.com/molinab297/gosteg/pkg/stego"
)

// ServerStarter defines the interface for starting the API server
type ServerStarter interface {
	// StartServer runs the REST API server until it fails
	StartServer(codec *stego.Codec, jnl *journal.Journal, config ServerConfig) error
}

// ServerFactory defines the interface for creating server starters
type ServerFactory interface {
	CreateServerStarter() ServerStarter
}
