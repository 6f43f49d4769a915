package config

// GetAuthSkipperPaths returns a list of paths to skip authentication for
func GetAuthSkipperPaths() []string {
	// Public read-only surfaces: catalog browsing and GraphQL need no auth
	return []string{"/api/products", "/api/products/:id", "/graphql"}
}

// BackendBaseURL returns the base URL of the remote commerce backend the
// client-side core talks to. Defaults to the embedded backend.
func BackendBaseURL() string {
	return GetEnv("BACKEND_BASE_URL", "http://localhost:8080/api")
}

// BackendToken returns the bearer token used on backend calls, if any.
func BackendToken() string {
	return GetEnv("BACKEND_TOKEN", "")
}
