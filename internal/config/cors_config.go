package config

type Cors struct{}

var _ CorsConfig = Cors{}

// GetAllowedOrigin returns the single origin allowed to call the API with
// credentials. The default matches a Live Server front-end during
// development.
func (Cors) GetAllowedOrigin() string {
	return GetEnv("CORS_ORIGIN", "http://127.0.0.1:5500")
}

func (Cors) GetAllowedMethods() string {
	return GetEnv("CORS_METHODS", "GET, POST, DELETE, OPTIONS")
}

func (Cors) GetAllowedHeaders() string {
	return GetEnv("CORS_HEADERS", "Content-Type")
}
