// Package config loads, merges and validates the configuration of the portal
// server and of the admin client.
//
// The server configuration is assembled from these sources; a value set by
// an earlier source is never overwritten by a later one:
//  1. Environment variables prefixed with F4F_
//  2. Command-line flags
//  3. The JSON file named by F4F_CONFIG or -c
//  4. Built-in defaults
//
// The entry points are [GetStructuredConfig] and [GetClientConfig].
package config
