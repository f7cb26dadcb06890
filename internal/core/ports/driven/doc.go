// Package driven defines the outbound port interfaces the core depends on.
// Adapters (the HTTP API client, the config store, the drop watcher)
// implement these interfaces; the core never imports an adapter.
package driven
