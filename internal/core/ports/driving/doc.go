// Package driving defines the inbound port interfaces through which the
// CLI and TUI adapters drive the core services.
package driving
