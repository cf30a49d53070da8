// Package config provides configuration loading, merging, and validation
// facilities for the TrueNamePath API server.
//
// Configuration is assembled from multiple sources in priority order:
// environment variables first, then command-line flags, then an optional
// JSON file. Merging never overwrites: a field set by a higher-priority
// source keeps its value.
//
// The main entry point is [GetStructuredConfig].
package config
