// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Camera   CameraConfig   `yaml:"camera"`
	Controls ControlsConfig `yaml:"controls"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title       string `yaml:"title"`
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	VSync       bool   `yaml:"vsync"`
	MSAASamples int    `yaml:"msaa_samples"`
}

// CameraConfig holds the initial view and projection settings.
type CameraConfig struct {
	FOV    float32 `yaml:"fov"` // vertical field of view, degrees
	Near   float32 `yaml:"near"`
	Far    float32 `yaml:"far"`
	Radius float32 `yaml:"radius"` // initial orbit distance
}

// ControlsConfig holds mouse sensitivity settings.
type ControlsConfig struct {
	OrbitSensitivity float32 `yaml:"orbit_sensitivity"` // radians per pixel
	ZoomSensitivity  float32 `yaml:"zoom_sensitivity"`  // log units per wheel step
	PanFactor        float32 `yaml:"pan_factor"`        // cursor tracking factor
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values. The camera
// defaults assume the model has been normalized to the unit cube.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:       "VIPO: Pareto Frontier Viewer",
			Width:       500,
			Height:      500,
			VSync:       true,
			MSAASamples: 4,
		},
		Camera: CameraConfig{
			FOV:    45,
			Near:   0.1,
			Far:    10000,
			Radius: 5,
		},
		Controls: ControlsConfig{
			OrbitSensitivity: 0.01,
			ZoomSensitivity:  0.1,
			PanFactor:        1.3,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
