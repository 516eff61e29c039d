package system

// HealthStatus is the response body of GET /api/health.
type HealthStatus struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// FeatureFlags describes which client features are enabled. All flags are
// permanently on in the demo build.
type FeatureFlags struct {
	AITesting       bool `json:"aiTesting"`
	FaceRecognition bool `json:"faceRecognition"`
	OfflineMode     bool `json:"offlineMode"`
	PWA             bool `json:"pwa"`
}

// AppConfig is the client configuration served by GET /api/config.
type AppConfig struct {
	AppName  string       `json:"appName"`
	Version  string       `json:"version"`
	Features FeatureFlags `json:"features"`
}

// DefaultAppConfig returns the fixed client configuration.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		AppName: "AthleteAI",
		Version: "1.0.0",
		Features: FeatureFlags{
			AITesting:       true,
			FaceRecognition: true,
			OfflineMode:     true,
			PWA:             true,
		},
	}
}
