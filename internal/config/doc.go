// Package config loads, merges and validates the client configuration.
//
// Sources are merged field by field; the first source that sets a field
// wins:
//  1. Command-line flags
//  2. Environment variables
//  3. The .env file (path from ENV_FILE, default ".env")
//  4. The JSON config file (path from -c / -config / CONFIG)
//  5. Built-in defaults
//
// The main entry point is [GetClientConfig].
package config
