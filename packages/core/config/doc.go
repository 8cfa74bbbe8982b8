// Package config holds the settings for a single h2curl invocation.
//
// It provides functionality for:
//   - Validating and normalizing the method and URL arguments
//   - Loading defaults from a JSON or YAML file named with --config
//   - The Request value consumed by the runner
package config
