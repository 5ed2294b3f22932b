package config

import (
	"os"
	"path/filepath"
)

// RootFolderMapping is a single genre routing rule. Priority is retained
// for data fidelity but never consulted during rule selection; list order
// is the sole tie-break.
type RootFolderMapping struct {
	Genres     []string `yaml:"genres"`
	RootFolder string   `yaml:"root_folder"`
	Priority   int      `yaml:"priority"`
}

// RootFolderConfig holds the ordered genre-to-root-folder routing rules.
type RootFolderConfig struct {
	Enabled  bool
	Mappings []RootFolderMapping
}

// Settings is the fully resolved, validated application configuration.
// The flat field layout mirrors the configuration's flat key namespace
// (radarr_*, boxarr_*, log_*); nested YAML sections are remapped onto
// these fields by the merge engine.
type Settings struct {
	// Radarr connection
	RadarrURL                        string              `envconfig:"RADARR_URL" validate:"url"`
	RadarrAPIKey                     string              `envconfig:"RADARR_API_KEY"`
	RadarrRootFolder                 string              `envconfig:"RADARR_ROOT_FOLDER"`
	RadarrQualityProfileDefault      string              `envconfig:"RADARR_QUALITY_PROFILE_DEFAULT"`
	RadarrQualityProfileUpgrade      string              `envconfig:"RADARR_QUALITY_PROFILE_UPGRADE"`
	RadarrMonitorOption              MonitorOption       `envconfig:"RADARR_MONITOR_OPTION" validate:"oneof=movieOnly movieAndCollection none"`
	RadarrMinimumAvailabilityEnabled bool                `envconfig:"RADARR_MINIMUM_AVAILABILITY_ENABLED"`
	RadarrMinimumAvailability        MinimumAvailability `envconfig:"RADARR_MINIMUM_AVAILABILITY" validate:"oneof=announced inCinemas released"`
	RadarrSearchForMovie             bool                `envconfig:"RADARR_SEARCH_FOR_MOVIE"`
	RadarrRootFolderConfig           RootFolderConfig    `ignored:"true"`
	RadarrCacheTTLSeconds            int                 `envconfig:"RADARR_CACHE_TTL_SECONDS" validate:"min=10,max=3600"`

	// Boxarr server
	BoxarrHost    string `envconfig:"BOXARR_HOST"`
	BoxarrPort    int    `envconfig:"BOXARR_PORT" validate:"min=1,max=65535"`
	BoxarrAPIPort int    `envconfig:"BOXARR_API_PORT" validate:"min=1,max=65535"`
	BoxarrURLBase string `envconfig:"BOXARR_URL_BASE"`

	// Scheduler
	BoxarrSchedulerEnabled  bool   `envconfig:"BOXARR_SCHEDULER_ENABLED"`
	BoxarrSchedulerCron     string `envconfig:"BOXARR_SCHEDULER_CRON"`
	BoxarrSchedulerTimezone string `envconfig:"BOXARR_SCHEDULER_TIMEZONE"`

	// UI
	BoxarrUITheme              Theme `envconfig:"BOXARR_UI_THEME" validate:"oneof=light dark auto"`
	BoxarrUICardsPerRowMobile  int   `envconfig:"BOXARR_UI_CARDS_PER_ROW_MOBILE" validate:"min=1,max=3"`
	BoxarrUICardsPerRowTablet  int   `envconfig:"BOXARR_UI_CARDS_PER_ROW_TABLET" validate:"min=2,max=4"`
	BoxarrUICardsPerRowDesktop int   `envconfig:"BOXARR_UI_CARDS_PER_ROW_DESKTOP" validate:"min=3,max=6"`
	BoxarrUICardsPerRow4K      int   `envconfig:"BOXARR_UI_CARDS_PER_ROW_4K" validate:"min=4,max=8"`
	BoxarrUIShowDescriptions   bool  `envconfig:"BOXARR_UI_SHOW_DESCRIPTIONS"`

	// Feature flags
	BoxarrFeaturesAutoAdd        bool   `envconfig:"BOXARR_FEATURES_AUTO_ADD"`
	BoxarrFeaturesQualityUpgrade bool   `envconfig:"BOXARR_FEATURES_QUALITY_UPGRADE"`
	BoxarrFeaturesNotifications  bool   `envconfig:"BOXARR_FEATURES_NOTIFICATIONS"`
	BoxarrFeaturesAutoTagEnabled bool   `envconfig:"BOXARR_FEATURES_AUTO_TAG_ENABLED"`
	BoxarrFeaturesAutoTagText    string `envconfig:"BOXARR_FEATURES_AUTO_TAG_TEXT" validate:"required,max=20"`

	// Auto-add advanced options
	BoxarrFeaturesAutoAddLimit               int      `envconfig:"BOXARR_FEATURES_AUTO_ADD_LIMIT" validate:"min=1,max=10"`
	BoxarrFeaturesAutoAddGenreFilterEnabled  bool     `envconfig:"BOXARR_FEATURES_AUTO_ADD_GENRE_FILTER_ENABLED"`
	BoxarrFeaturesAutoAddGenreFilterMode     string   `envconfig:"BOXARR_FEATURES_AUTO_ADD_GENRE_FILTER_MODE"`
	BoxarrFeaturesAutoAddGenreWhitelist      []string `envconfig:"BOXARR_FEATURES_AUTO_ADD_GENRE_WHITELIST"`
	BoxarrFeaturesAutoAddGenreBlacklist      []string `envconfig:"BOXARR_FEATURES_AUTO_ADD_GENRE_BLACKLIST"`
	BoxarrFeaturesAutoAddRatingFilterEnabled bool     `envconfig:"BOXARR_FEATURES_AUTO_ADD_RATING_FILTER_ENABLED"`
	BoxarrFeaturesAutoAddRatingWhitelist     []string `envconfig:"BOXARR_FEATURES_AUTO_ADD_RATING_WHITELIST"`
	BoxarrFeaturesAutoAddIgnoreRereleases    bool     `envconfig:"BOXARR_FEATURES_AUTO_ADD_IGNORE_RERELEASES"`

	// Data
	BoxarrDataHistoryRetentionDays int    `envconfig:"BOXARR_DATA_HISTORY_RETENTION_DAYS" validate:"min=7,max=365"`
	BoxarrDataCacheTTLSeconds      int    `envconfig:"BOXARR_DATA_CACHE_TTL_SECONDS" validate:"min=60,max=86400"`
	BoxarrDataDirectory            string `envconfig:"BOXARR_DATA_DIRECTORY"`

	// Logging
	LogLevel  string `envconfig:"LOG_LEVEL"`
	LogFormat string `envconfig:"LOG_FORMAT"`

	// sourceFile records which configuration file was merged, if any.
	sourceFile string
}

// Default returns a Settings populated with built-in defaults. dataDir
// becomes the data directory; pass the resolved configuration directory.
func Default(dataDir string) *Settings {
	return &Settings{
		RadarrURL:                   "http://localhost:7878",
		RadarrRootFolder:            "/movies",
		RadarrQualityProfileDefault: "HD-1080p",
		RadarrQualityProfileUpgrade: "Ultra-HD",
		RadarrMonitorOption:         MonitorMovieOnly,
		RadarrMinimumAvailability:   AvailabilityAnnounced,
		RadarrSearchForMovie:        true,
		RadarrCacheTTLSeconds:       120,

		BoxarrHost:    "0.0.0.0",
		BoxarrPort:    8888,
		BoxarrAPIPort: 8889,

		BoxarrSchedulerEnabled:  true,
		BoxarrSchedulerCron:     "0 23 * * 2",
		BoxarrSchedulerTimezone: "America/New_York",

		BoxarrUITheme:              ThemeLight,
		BoxarrUICardsPerRowMobile:  1,
		BoxarrUICardsPerRowTablet:  3,
		BoxarrUICardsPerRowDesktop: 5,
		BoxarrUICardsPerRow4K:      5,
		BoxarrUIShowDescriptions:   true,

		BoxarrFeaturesQualityUpgrade: true,
		BoxarrFeaturesAutoTagEnabled: true,
		BoxarrFeaturesAutoTagText:    "boxarr",

		BoxarrFeaturesAutoAddLimit:           10,
		BoxarrFeaturesAutoAddGenreFilterMode: "blacklist",

		BoxarrDataHistoryRetentionDays: 90,
		BoxarrDataCacheTTLSeconds:      3600,
		BoxarrDataDirectory:            dataDir,

		LogLevel:  "INFO",
		LogFormat: "text",
	}
}

// SourceFile reports the configuration file that was merged into this
// Settings, or "" when defaults plus environment stand alone.
func (s *Settings) SourceFile() string {
	return s.sourceFile
}

// IsConfigured reports whether the minimum Radarr connection settings
// are present.
func (s *Settings) IsConfigured() bool {
	return s.RadarrAPIKey != "" && s.RadarrURL != ""
}

// CardsPerRow returns the per-breakpoint card counts keyed by device.
func (s *Settings) CardsPerRow() map[string]int {
	return map[string]int{
		"mobile":  s.BoxarrUICardsPerRowMobile,
		"tablet":  s.BoxarrUICardsPerRowTablet,
		"desktop": s.BoxarrUICardsPerRowDesktop,
		"4k":      s.BoxarrUICardsPerRow4K,
	}
}

// HistoryPath returns the history storage directory. The directory is
// not created here; call EnsureDirectories when it is actually needed.
func (s *Settings) HistoryPath() string {
	return filepath.Join(s.BoxarrDataDirectory, "history")
}

// EnsureDirectories creates the data directories. This is an explicit
// operation so that validation stays free of filesystem side effects.
func (s *Settings) EnsureDirectories() error {
	for _, dir := range []string{
		s.BoxarrDataDirectory,
		filepath.Join(s.BoxarrDataDirectory, "history"),
		filepath.Join(s.BoxarrDataDirectory, "logs"),
		filepath.Join(s.BoxarrDataDirectory, "weekly_pages"),
	} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return nil
}
