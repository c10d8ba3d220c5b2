package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment overrides: CODEPLACE_LOG_LEVEL=debug.
const EnvPrefix = "CODEPLACE"

// Config holds application configuration.
type Config struct {
	Editor    EditorConfig      `mapstructure:"editor"`
	Files     FilesConfig       `mapstructure:"files"`
	Keys      KeysConfig        `mapstructure:"keys"`
	Log       LogConfig         `mapstructure:"log"`
	UI        UIConfig          `mapstructure:"ui"`
	Languages map[string]string `mapstructure:"languages"` // extension or file name -> language token
}

// EditorConfig holds buffer settings.
type EditorConfig struct {
	Welcome     bool `mapstructure:"welcome"`
	LineNumbers bool `mapstructure:"line_numbers"`
	TabWidth    int  `mapstructure:"tab_width"`
}

// FilesConfig holds file handling settings. AutoSave of zero disables autosave.
type FilesConfig struct {
	ChooserDir string        `mapstructure:"chooser_dir"`
	AutoSave   time.Duration `mapstructure:"auto_save"`
}

// KeysConfig lists the keys bound to each action.
type KeysConfig struct {
	Save     []string `mapstructure:"save"`
	SaveAll  []string `mapstructure:"save_all"`
	Cycle    []string `mapstructure:"cycle"`
	Close    []string `mapstructure:"close"`
	Emulate  []string `mapstructure:"emulate"`
	New      []string `mapstructure:"new"`
	Open     []string `mapstructure:"open"`
	Quit     []string `mapstructure:"quit"`
	Help     []string `mapstructure:"help"`
	Diff     []string `mapstructure:"diff"`
	CopyPath []string `mapstructure:"copy_path"`
	Welcome  []string `mapstructure:"welcome"`
}

// LogConfig holds logger settings. An empty File disables logging.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	NoColor bool `mapstructure:"no_color"`
}

// DefaultPath is ~/.config/codeplace/config.json.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.Getenv("HOME")
	}
	return filepath.Join(home, ".config", "codeplace", "config.json")
}

// Resolve picks the config file: explicit path, then $CODEPLACE_CONFIG, then DefaultPath.
func Resolve(explicit string) string {
	if p := strings.TrimSpace(explicit); p != "" {
		return p
	}
	if p := strings.TrimSpace(os.Getenv(EnvPrefix + "_CONFIG")); p != "" {
		return p
	}
	return DefaultPath()
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("editor.welcome", true)
	v.SetDefault("editor.line_numbers", true)
	v.SetDefault("editor.tab_width", 4)

	v.SetDefault("files.chooser_dir", ".")
	v.SetDefault("files.auto_save", "0s")

	v.SetDefault("keys.save", []string{"ctrl+s"})
	v.SetDefault("keys.save_all", []string{"alt+s"})
	v.SetDefault("keys.cycle", []string{"ctrl+tab", "ctrl+right"})
	v.SetDefault("keys.close", []string{"ctrl+w"})
	v.SetDefault("keys.emulate", []string{"ctrl+e"})
	v.SetDefault("keys.new", []string{"ctrl+n"})
	v.SetDefault("keys.open", []string{"ctrl+o"})
	v.SetDefault("keys.quit", []string{"ctrl+q"})
	v.SetDefault("keys.help", []string{"f1"})
	v.SetDefault("keys.diff", []string{"ctrl+d"})
	v.SetDefault("keys.copy_path", []string{"ctrl+y"})
	v.SetDefault("keys.welcome", []string{"f2"})

	v.SetDefault("log.level", "INFO")
	v.SetDefault("log.file", filepath.Join(os.TempDir(), "codeplace.log"))

	v.SetDefault("ui.no_color", os.Getenv("NO_COLOR") != "")

	v.SetDefault("languages", map[string]string{})
}

// Load reads configuration from the resolved file (if present) and env.
// A missing file yields the defaults; a malformed one is an error.
func Load(explicit string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("json")
	path := Resolve(explicit)
	v.SetConfigFile(path)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("stat config %s: %w", path, err)
	}

	return decode(v)
}

// Default returns the built-in configuration, ignoring files and env.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	c, err := decode(v)
	if err != nil {
		panic(err)
	}
	return c
}

func decode(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.Editor.TabWidth <= 0 {
		c.Editor.TabWidth = 4
	}
	if c.Files.AutoSave < 0 {
		c.Files.AutoSave = 0
	}
	return c, nil
}

// Save writes cfg to path as JSON, creating the directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("json")
	v.Set("editor.welcome", cfg.Editor.Welcome)
	v.Set("editor.line_numbers", cfg.Editor.LineNumbers)
	v.Set("editor.tab_width", cfg.Editor.TabWidth)
	v.Set("files.chooser_dir", cfg.Files.ChooserDir)
	v.Set("files.auto_save", cfg.Files.AutoSave.String())
	v.Set("keys.save", cfg.Keys.Save)
	v.Set("keys.save_all", cfg.Keys.SaveAll)
	v.Set("keys.cycle", cfg.Keys.Cycle)
	v.Set("keys.close", cfg.Keys.Close)
	v.Set("keys.emulate", cfg.Keys.Emulate)
	v.Set("keys.new", cfg.Keys.New)
	v.Set("keys.open", cfg.Keys.Open)
	v.Set("keys.quit", cfg.Keys.Quit)
	v.Set("keys.help", cfg.Keys.Help)
	v.Set("keys.diff", cfg.Keys.Diff)
	v.Set("keys.copy_path", cfg.Keys.CopyPath)
	v.Set("keys.welcome", cfg.Keys.Welcome)
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.file", cfg.Log.File)
	v.Set("ui.no_color", cfg.UI.NoColor)
	v.Set("languages", cfg.Languages)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
