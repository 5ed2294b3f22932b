package config

import (
	"strings"

	"github.com/spf13/cast"
)

// ApplyDocument walks a parsed configuration document and maps each leaf
// value onto the corresponding flat Settings field. Unknown keys at any
// level are silently ignored so that older and newer file schemas keep
// loading. The top-level "version" key is skipped.
func (s *Settings) ApplyDocument(doc map[string]any) {
	for section, values := range doc {
		switch section {
		case "version":
			// schema marker only
		case "radarr":
			if m, ok := values.(map[string]any); ok {
				s.mergeRadarr(m)
			}
		case "boxarr":
			if m, ok := values.(map[string]any); ok {
				s.mergeBoxarr(m)
			}
		default:
			s.set(section, values)
		}
	}
}

// mergeRadarr maps the radarr section onto radarr_* fields. The
// root_folder_config subsection replaces the routing config wholesale,
// and minimum_availability goes through enum coercion: a value that
// fails to parse leaves the existing field untouched.
func (s *Settings) mergeRadarr(section map[string]any) {
	for key, value := range section {
		switch key {
		case "root_folder_config":
			if m, ok := value.(map[string]any); ok {
				s.RadarrRootFolderConfig = parseRootFolderConfig(m)
			}
		case "minimum_availability":
			if avail, err := ParseMinimumAvailability(cast.ToString(value)); err == nil {
				s.RadarrMinimumAvailability = avail
			}
		default:
			s.set("radarr_"+key, value)
		}
	}
}

// mergeBoxarr maps the boxarr section onto boxarr_* fields, flattening
// the scheduler, features, ui and data subsections. The cards_per_row
// device token "4k" is rewritten to "_4k" to form a representable field
// name.
func (s *Settings) mergeBoxarr(section map[string]any) {
	for key, value := range section {
		sub, isMap := value.(map[string]any)
		switch {
		case key == "scheduler" && isMap:
			for k, v := range sub {
				s.set("boxarr_scheduler_"+k, v)
			}
		case key == "features" && isMap:
			for k, v := range sub {
				if opts, ok := v.(map[string]any); ok && k == "auto_add_options" {
					for opt, ov := range opts {
						s.set("boxarr_features_auto_add_"+opt, ov)
					}
				} else {
					s.set("boxarr_features_"+k, v)
				}
			}
		case key == "ui" && isMap:
			for k, v := range sub {
				if cards, ok := v.(map[string]any); ok && k == "cards_per_row" {
					for device, count := range cards {
						s.set("boxarr_ui_cards_per_row_"+strings.ReplaceAll(device, "4k", "_4k"), count)
					}
				} else {
					s.set("boxarr_ui_"+k, v)
				}
			}
		case key == "data" && isMap:
			for k, v := range sub {
				s.set("boxarr_data_"+k, v)
			}
		default:
			s.set("boxarr_"+key, value)
		}
	}
}

// parseRootFolderConfig builds a fresh RootFolderConfig from its YAML
// subsection. Records without a root_folder are dropped; everything else
// is taken in file order.
func parseRootFolderConfig(section map[string]any) RootFolderConfig {
	cfg := RootFolderConfig{}
	if enabled, ok := section["enabled"]; ok {
		cfg.Enabled = cast.ToBool(enabled)
	}
	raw, ok := section["mappings"].([]any)
	if !ok {
		return cfg
	}
	for _, entry := range raw {
		record, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		mapping := RootFolderMapping{
			RootFolder: cast.ToString(record["root_folder"]),
			Priority:   cast.ToInt(record["priority"]),
		}
		if genres, err := cast.ToStringSliceE(record["genres"]); err == nil {
			mapping.Genres = genres
		}
		if mapping.RootFolder == "" {
			continue
		}
		cfg.Mappings = append(cfg.Mappings, mapping)
	}
	return cfg
}

// set assigns a raw document value to the flat field named name. Names
// with no matching field and values that cannot be coerced to the field
// type are skipped; enum fields keep their previous value when the
// incoming one does not parse.
func (s *Settings) set(name string, value any) {
	switch name {
	case "radarr_url":
		setString(&s.RadarrURL, value)
	case "radarr_api_key":
		setString(&s.RadarrAPIKey, value)
	case "radarr_root_folder":
		setString(&s.RadarrRootFolder, value)
	case "radarr_quality_profile_default":
		setString(&s.RadarrQualityProfileDefault, value)
	case "radarr_quality_profile_upgrade":
		setString(&s.RadarrQualityProfileUpgrade, value)
	case "radarr_monitor_option":
		if opt, err := ParseMonitorOption(cast.ToString(value)); err == nil {
			s.RadarrMonitorOption = opt
		}
	case "radarr_minimum_availability_enabled":
		setBool(&s.RadarrMinimumAvailabilityEnabled, value)
	case "radarr_minimum_availability":
		if avail, err := ParseMinimumAvailability(cast.ToString(value)); err == nil {
			s.RadarrMinimumAvailability = avail
		}
	case "radarr_search_for_movie":
		setBool(&s.RadarrSearchForMovie, value)
	case "radarr_root_folder_config":
		if m, ok := value.(map[string]any); ok {
			s.RadarrRootFolderConfig = parseRootFolderConfig(m)
		}
	case "radarr_cache_ttl_seconds":
		setInt(&s.RadarrCacheTTLSeconds, value)
	case "boxarr_host":
		setString(&s.BoxarrHost, value)
	case "boxarr_port":
		setInt(&s.BoxarrPort, value)
	case "boxarr_api_port":
		setInt(&s.BoxarrAPIPort, value)
	case "boxarr_url_base":
		setString(&s.BoxarrURLBase, value)
	case "boxarr_scheduler_enabled":
		setBool(&s.BoxarrSchedulerEnabled, value)
	case "boxarr_scheduler_cron":
		setString(&s.BoxarrSchedulerCron, value)
	case "boxarr_scheduler_timezone":
		setString(&s.BoxarrSchedulerTimezone, value)
	case "boxarr_ui_theme":
		if theme, err := ParseTheme(cast.ToString(value)); err == nil {
			s.BoxarrUITheme = theme
		}
	case "boxarr_ui_cards_per_row_mobile":
		setInt(&s.BoxarrUICardsPerRowMobile, value)
	case "boxarr_ui_cards_per_row_tablet":
		setInt(&s.BoxarrUICardsPerRowTablet, value)
	case "boxarr_ui_cards_per_row_desktop":
		setInt(&s.BoxarrUICardsPerRowDesktop, value)
	case "boxarr_ui_cards_per_row_4k", "boxarr_ui_cards_per_row__4k":
		// the second spelling is what the documented 4k -> _4k device
		// rewrite produces once prefixed
		setInt(&s.BoxarrUICardsPerRow4K, value)
	case "boxarr_ui_show_descriptions":
		setBool(&s.BoxarrUIShowDescriptions, value)
	case "boxarr_features_auto_add":
		setBool(&s.BoxarrFeaturesAutoAdd, value)
	case "boxarr_features_quality_upgrade":
		setBool(&s.BoxarrFeaturesQualityUpgrade, value)
	case "boxarr_features_notifications":
		setBool(&s.BoxarrFeaturesNotifications, value)
	case "boxarr_features_auto_tag_enabled":
		setBool(&s.BoxarrFeaturesAutoTagEnabled, value)
	case "boxarr_features_auto_tag_text":
		setString(&s.BoxarrFeaturesAutoTagText, value)
	case "boxarr_features_auto_add_limit":
		setInt(&s.BoxarrFeaturesAutoAddLimit, value)
	case "boxarr_features_auto_add_genre_filter_enabled":
		setBool(&s.BoxarrFeaturesAutoAddGenreFilterEnabled, value)
	case "boxarr_features_auto_add_genre_filter_mode":
		setString(&s.BoxarrFeaturesAutoAddGenreFilterMode, value)
	case "boxarr_features_auto_add_genre_whitelist":
		setStringSlice(&s.BoxarrFeaturesAutoAddGenreWhitelist, value)
	case "boxarr_features_auto_add_genre_blacklist":
		setStringSlice(&s.BoxarrFeaturesAutoAddGenreBlacklist, value)
	case "boxarr_features_auto_add_rating_filter_enabled":
		setBool(&s.BoxarrFeaturesAutoAddRatingFilterEnabled, value)
	case "boxarr_features_auto_add_rating_whitelist":
		setStringSlice(&s.BoxarrFeaturesAutoAddRatingWhitelist, value)
	case "boxarr_features_auto_add_ignore_rereleases":
		setBool(&s.BoxarrFeaturesAutoAddIgnoreRereleases, value)
	case "boxarr_data_history_retention_days":
		setInt(&s.BoxarrDataHistoryRetentionDays, value)
	case "boxarr_data_cache_ttl_seconds":
		setInt(&s.BoxarrDataCacheTTLSeconds, value)
	case "boxarr_data_directory":
		setString(&s.BoxarrDataDirectory, value)
	case "log_level":
		setString(&s.LogLevel, value)
	case "log_format":
		setString(&s.LogFormat, value)
	}
}

func setString(dst *string, value any) {
	if v, err := cast.ToStringE(value); err == nil {
		*dst = v
	}
}

func setInt(dst *int, value any) {
	if v, err := cast.ToIntE(value); err == nil {
		*dst = v
	}
}

func setBool(dst *bool, value any) {
	if v, err := cast.ToBoolE(value); err == nil {
		*dst = v
	}
}

func setStringSlice(dst *[]string, value any) {
	if v, err := cast.ToStringSliceE(value); err == nil {
		*dst = v
	}
}
