// Package config provides configuration loading, merging, and validation
// for the vedicas server and client.
//
// Sources are merged field by field; the first source that sets a field wins:
//  1. Environment variables (optionally seeded from a .env file)
//  2. Command-line flags (server only)
//  3. JSON or YAML config file
//  4. Built-in defaults
//
// The entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the client.
package config
