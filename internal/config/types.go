package config

// Builtin theme references accepted in Themes.
const (
	ThemeDefault     = "default"
	ThemeBuiltinDark = "dark"
	DarkDerived      = "derived"
	DarkBuiltin      = "builtin"
)

// Config represents a palette.yaml project document.
type Config struct {
	Version      string  `yaml:"version" validate:"required,semver"`
	Name         string  `yaml:"name,omitempty" validate:"omitempty,max=100"`
	Themes       Themes  `yaml:"themes"`
	DarkSelector string  `yaml:"dark_selector" validate:"required,css_selector"`
	Outputs      Outputs `yaml:"outputs"`

	// BaseDir is the directory of the config file; relative paths resolve against it.
	BaseDir string `yaml:"-"`
}

// Themes selects the light source and how its dark counterpart is produced.
type Themes struct {
	// Light is "default", "dark", or a path to a theme file.
	Light string `yaml:"light" validate:"required"`
	// Dark is "derived", "builtin", or a path to a theme file.
	Dark string `yaml:"dark" validate:"required"`
}

// Outputs names the generated artifacts. An empty name disables that artifact.
type Outputs struct {
	Dir        string `yaml:"dir" validate:"required"`
	CSS        string `yaml:"css,omitempty" validate:"omitempty,artifact_name"`
	Tailwind   string `yaml:"tailwind,omitempty" validate:"omitempty,artifact_name"`
	Tokens     string `yaml:"tokens,omitempty" validate:"omitempty,artifact_name"`
	DarkTokens string `yaml:"dark_tokens,omitempty" validate:"omitempty,artifact_name"`
	Schema     string `yaml:"schema,omitempty" validate:"omitempty,artifact_name"`
}

// Default returns the configuration used when palette.yaml leaves fields unset.
func Default() Config {
	return Config{
		Version: "1.0",
		Themes: Themes{
			Light: ThemeDefault,
			Dark:  DarkDerived,
		},
		DarkSelector: ".dark",
		Outputs: Outputs{
			Dir:        "dist",
			CSS:        "tokens.css",
			Tailwind:   "tailwind.theme.json",
			Tokens:     "tokens.json",
			DarkTokens: "tokens.dark.json",
			Schema:     "tokens.schema.json",
		},
	}
}
