package config

import "os"

// APIBaseURLEnvName overrides the API base URL when set, mirroring the env
// override the web client honors.
const APIBaseURLEnvName = "SMART_FIT_API_URL"

// parseEnv overlays Config with values from the environment.
func parseEnv(cfg *Config) {
	if v := os.Getenv(APIBaseURLEnvName); v != "" {
		cfg.APIBaseURL = v
	}
}
