// Package config handles demo configuration loading and management.
package config

// Config holds all demo settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Scene   SceneConfig   `yaml:"scene"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// SceneConfig holds mesh scene settings.
type SceneConfig struct {
	MeshDir     string     `yaml:"mesh_dir"`
	MeshFile    string     `yaml:"mesh_file"`
	Instances   int        `yaml:"instances"`
	Spacing     float32    `yaml:"spacing"`
	CameraStep  float32    `yaml:"camera_step"`
	CameraPos   [3]float32 `yaml:"camera_pos"`
	FOV         float32    `yaml:"fov"` // degrees
	Near        float32    `yaml:"near"`
	Far         float32    `yaml:"far"`
	GroundSize  float32    `yaml:"ground_size"`
	GroundY     float32    `yaml:"ground_y"`
	LightDir    [3]float32 `yaml:"light_dir"`
	MeshColor   [3]float32 `yaml:"mesh_color"`
	GroundColor [3]float32 `yaml:"ground_color"`
	ClearColor  [4]float32 `yaml:"clear_color"` // RGBA
	Screenshots string     `yaml:"screenshots"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the demo's built-in values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "Hello world",
			Width:      1080,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Scene: SceneConfig{
			MeshFile:    "icosahedron.obj",
			Instances:   10,
			Spacing:     2.5,
			CameraStep:  0.2,
			CameraPos:   [3]float32{0, 1, 8},
			FOV:         45,
			Near:        0.1,
			Far:         100,
			GroundSize:  20,
			GroundY:     -1,
			LightDir:    [3]float32{-0.4, -1, -0.3},
			MeshColor:   [3]float32{0.8, 0.3, 0.2},
			GroundColor: [3]float32{0.3, 0.5, 0.3},
			ClearColor:  [4]float32{0, 0, 0, 1},
			Screenshots: "screenshots",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
