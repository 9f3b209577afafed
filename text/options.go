package text

// SourceOption configures FontSource creation.
type SourceOption func(*sourceConfig)

// sourceConfig holds configuration for FontSource.
type sourceConfig struct {
	cacheLimit int
}

// defaultSourceConfig returns the default source configuration.
func defaultSourceConfig() sourceConfig {
	return sourceConfig{
		cacheLimit: 256,
	}
}

// WithCacheLimit sets the maximum number of shaped strings kept per face.
// A value of 0 disables the cache limit.
func WithCacheLimit(n int) SourceOption {
	return func(c *sourceConfig) {
		c.cacheLimit = n
	}
}

// FaceOption configures Face creation.
type FaceOption func(*faceConfig)

// faceConfig holds configuration for Face.
type faceConfig struct {
	dpi      float64
	language string
}

// defaultFaceConfig returns the default face configuration.
func defaultFaceConfig() faceConfig {
	return faceConfig{
		dpi:      72,
		language: "en",
	}
}

// WithDPI sets the resolution that converts the face size in points to
// pixels. The default of 72 makes one point one pixel.
func WithDPI(dpi float64) FaceOption {
	return func(c *faceConfig) {
		c.dpi = dpi
	}
}

// WithLanguage sets the language tag used for shaping (e.g., "en", "de").
func WithLanguage(lang string) FaceOption {
	return func(c *faceConfig) {
		c.language = lang
	}
}
