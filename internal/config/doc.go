// Package config loads the provider API keys the server needs.
//
// Configuration is read once at startup into an explicit Config value that
// is passed to the clients that need it; there is no hidden global state.
// Keys come from the environment, with optional .env file support for
// development.
package config
