package app

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/agentstation/podium/pkg/constants"
	"github.com/agentstation/podium/pkg/errors"
)

// Config holds the application configuration loaded from config files,
// environment variables and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Dataset locations
	LegacyDir string
	NewDir    string
	OutputDir string
	EventMap  string
	CharMap   string

	// Merge settings
	NewEditionID              string
	UseNamePermutations       bool
	RemoveDuplicateTeamEvents bool
	ExcludeInactiveAthletes   bool
	ExcludeNotFoundAthletes   bool

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (handled by cobra)
// 2. Environment variables
// 3. .env files
// 4. Config file (~/.podium.yaml)
// 5. Defaults
func LoadConfig() (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	setDefaults()

	configFile := viper.GetString("config")
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.AddConfigPath("$HOME")
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".podium")
	}

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()

	return &Config{
		Verbose: viper.GetBool("verbose"),
		Quiet:   viper.GetBool("quiet"),
		NoColor: viper.GetBool("no_color"),
		Format:  viper.GetString("format"),

		ConfigFile: viper.ConfigFileUsed(),

		LegacyDir: viper.GetString("legacy_dir"),
		NewDir:    viper.GetString("new_dir"),
		OutputDir: viper.GetString("output_dir"),
		EventMap:  viper.GetString("event_map"),
		CharMap:   viper.GetString("char_map"),

		NewEditionID:              viper.GetString("new_edition_id"),
		UseNamePermutations:       viper.GetBool("use_name_permutations"),
		RemoveDuplicateTeamEvents: viper.GetBool("remove_duplicate_team_events"),
		ExcludeInactiveAthletes:   viper.GetBool("exclude_inactive_athletes"),
		ExcludeNotFoundAthletes:   viper.GetBool("exclude_not_found_athletes"),

		LogLevel:  viper.GetString("log_level"),
		LogFormat: viper.GetString("log_format"),
		LogOutput: viper.GetString("log_output"),
	}, nil
}

func setDefaults() {
	viper.SetDefault("legacy_dir", ".")
	viper.SetDefault("new_dir", "paris")
	viper.SetDefault("output_dir", "output")
	viper.SetDefault("new_edition_id", constants.DefaultNewEditionID)
	viper.SetDefault("log_format", "auto")
	viper.SetDefault("log_output", "stderr")
}

// UpdateFromFlags updates config values from parsed command flags.
// This should be called after cobra parses flags to ensure flag
// values take precedence over config file and env vars.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, format, logLevel string) {
	c.Verbose = verbose
	c.Quiet = quiet
	c.NoColor = noColor
	if format != "" {
		c.Format = format
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
}

// ReadFile merges the config file at path into c. Only keys present in the
// file or the environment are applied, and keys whose flag was set on the
// command line, as reported by changed, keep their flag value.
func (c *Config) ReadFile(path string, changed func(flag string) bool) error {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return errors.NewConfigError("config", "reading "+path, err)
	}
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	c.ConfigFile = v.ConfigFileUsed()

	strs := []struct {
		flag, key string
		dst       *string
	}{
		{"legacy-dir", "legacy_dir", &c.LegacyDir},
		{"new-dir", "new_dir", &c.NewDir},
		{"output-dir", "output_dir", &c.OutputDir},
		{"event-map", "event_map", &c.EventMap},
		{"char-map", "char_map", &c.CharMap},
		{"edition", "new_edition_id", &c.NewEditionID},
		{"format", "format", &c.Format},
		{"log-level", "log_level", &c.LogLevel},
	}
	for _, s := range strs {
		if v.IsSet(s.key) && !changed(s.flag) {
			*s.dst = v.GetString(s.key)
		}
	}

	bools := []struct {
		flag, key string
		dst       *bool
	}{
		{"permutations", "use_name_permutations", &c.UseNamePermutations},
		{"remove-duplicate-team-events", "remove_duplicate_team_events", &c.RemoveDuplicateTeamEvents},
		{"exclude-inactive", "exclude_inactive_athletes", &c.ExcludeInactiveAthletes},
		{"exclude-not-found", "exclude_not_found_athletes", &c.ExcludeNotFoundAthletes},
	}
	for _, b := range bools {
		if v.IsSet(b.key) && !changed(b.flag) {
			*b.dst = v.GetBool(b.key)
		}
	}
	return nil
}

// loadEnvFiles loads environment variables from .env files.
// Variables already set in the environment are never overwritten, and
// .env.local is loaded after .env.
func loadEnvFiles() {
	for _, envFile := range []string{".env.local", ".env"} {
		_ = godotenv.Load(envFile)
	}
}
