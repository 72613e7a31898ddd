// Package config handles renderer configuration loading and management.
package config

// Config holds all renderer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Assets   AssetsConfig   `yaml:"assets"`
	Camera   CameraConfig   `yaml:"camera"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	Title    string `yaml:"title"`
	VSync    bool   `yaml:"vsync"`
	FPSLimit int    `yaml:"fps_limit"` // 0 = uncapped, only used when vsync is off
}

// AssetsConfig holds asset directory paths.
type AssetsConfig struct {
	TextureDir string `yaml:"texture_dir"`
	ShaderDir  string `yaml:"shader_dir"`
}

// CameraConfig holds camera start parameters.
type CameraConfig struct {
	FOV           float32 `yaml:"fov"`
	MovementSpeed float32 `yaml:"movement_speed"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:    1000,
			Height:   800,
			Title:    "Desk Scene",
			VSync:    true,
			FPSLimit: 0,
		},
		Assets: AssetsConfig{
			TextureDir: "assets/textures",
			ShaderDir:  "assets/shaders",
		},
		Camera: CameraConfig{
			FOV:           80,
			MovementSpeed: 0.1,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// AspectRatio returns the window aspect ratio.
func (g GraphicsConfig) AspectRatio() float32 {
	return float32(g.Width) / float32(g.Height)
}
