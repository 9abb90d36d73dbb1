package config

// Settings is the root config for settings.yaml
type Settings struct {
	Window   WindowConfig   `yaml:"window"`
	Controls ControlsConfig `yaml:"controls"`
	Maps     MapsConfig     `yaml:"maps"`
	Physics  PhysicsConfig  `yaml:"physics"`
}

type WindowConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Scale      float64 `yaml:"scale"`
	Fullscreen bool    `yaml:"fullscreen"`
	VSync      bool    `yaml:"vsync"`
	TPS        int     `yaml:"tps"`
}

// ControlsConfig maps logical actions to key names (e.g. "Space", "A", "ArrowLeft").
type ControlsConfig struct {
	Jump            string `yaml:"jump"`
	Left            string `yaml:"left"`
	Right           string `yaml:"right"`
	Dash            string `yaml:"dash"`
	FullJumpRelease bool   `yaml:"fullJumpRelease"` // zero upward momentum on release instead of dividing it by 3
}

type MapsConfig struct {
	Dir   string `yaml:"dir"`
	Watch bool   `yaml:"watch"` // reload the current map when its images change
}

// PhysicsConfig holds every tuning constant of the simulation.
// Velocities are in pixels per second, durations in seconds.
type PhysicsConfig struct {
	Gravity         float64 `yaml:"gravity"`
	MoveSpeed       float64 `yaml:"moveSpeed"`
	JumpVelocity    float64 `yaml:"jumpVelocity"`
	JumpPadVelocity float64 `yaml:"jumpPadVelocity"`
	JumpReleaseDamp float64 `yaml:"jumpReleaseDamp"`
	DashMultiplier  float64 `yaml:"dashMultiplier"`
	DashDuration    float64 `yaml:"dashDuration"`
	DashTimeout     float64 `yaml:"dashTimeout"`
	OrbCooldown     float64 `yaml:"orbCooldown"`
	RespawnTimeout  float64 `yaml:"respawnTimeout"`
	EffectDuration  float64 `yaml:"effectDuration"`
	BoundsWidth     float64 `yaml:"boundsWidth"`
	BoundsHeight    float64 `yaml:"boundsHeight"`
	MaxStepOut      int     `yaml:"maxStepOut"`
}

// DefaultPhysics returns the tuning the shipped maps were built for.
func DefaultPhysics() PhysicsConfig {
	return PhysicsConfig{
		Gravity:         1440,
		MoveSpeed:       336,
		JumpVelocity:    -600,
		JumpPadVelocity: -700,
		JumpReleaseDamp: 3,
		DashMultiplier:  4,
		DashDuration:    0.1,
		DashTimeout:     0.12,
		OrbCooldown:     3,
		RespawnTimeout:  0.25,
		EffectDuration:  0.5,
		BoundsWidth:     1944,
		BoundsHeight:    1104,
		MaxStepOut:      4096,
	}
}

// DefaultSettings returns the settings used when no file overrides them.
func DefaultSettings() Settings {
	return Settings{
		Window: WindowConfig{
			Width:  1920,
			Height: 1080,
			Scale:  0.5,
			VSync:  true,
			TPS:    60,
		},
		Controls: ControlsConfig{
			Jump:  "Space",
			Left:  "A",
			Right: "D",
			Dash:  "ShiftLeft",
		},
		Maps: MapsConfig{
			Dir: "maps",
		},
		Physics: DefaultPhysics(),
	}
}
