// Package utils provides small helpers shared across the calm-journal client:
// a preconfigured resty HTTP client, UUID generation and identity extraction
// from ID tokens.
package utils
