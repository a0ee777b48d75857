// Package config provides configuration loading, merging, and validation
// facilities for the journal client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  0. Built-in defaults
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry points are [GetStructuredConfig] for the merged raw view and
// [GetClientConfig] for the validated client runtime configuration.
package config
