// Package config loads runtime configuration for the Smart Fit client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via flags: -c or -config.
//  3. Environment variables (SMART_FIT_API_URL).
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the Smart Fit API
//	-d string   path to the local credential database
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "10s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "http://localhost:8080/api",
//	  "request_timeout": "10s",
//	  "credential_db_path": "smartfit.db",
//	  "refresh_threshold": "24h"
//	}
package config
