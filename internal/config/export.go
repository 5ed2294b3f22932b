package config

// ToMap exports every field as a flat map keyed by its configuration
// name. The API key is masked unless includeSensitive is set; a masked
// empty key stays empty so callers can still tell whether one is
// configured.
func (s *Settings) ToMap(includeSensitive bool) map[string]any {
	apiKey := s.RadarrAPIKey
	if !includeSensitive && apiKey != "" {
		apiKey = "***"
	}

	mappings := make([]map[string]any, 0, len(s.RadarrRootFolderConfig.Mappings))
	for _, m := range s.RadarrRootFolderConfig.Mappings {
		mappings = append(mappings, map[string]any{
			"genres":      m.Genres,
			"root_folder": m.RootFolder,
			"priority":    m.Priority,
		})
	}

	return map[string]any{
		"radarr_url":                          s.RadarrURL,
		"radarr_api_key":                      apiKey,
		"radarr_root_folder":                  s.RadarrRootFolder,
		"radarr_quality_profile_default":      s.RadarrQualityProfileDefault,
		"radarr_quality_profile_upgrade":      s.RadarrQualityProfileUpgrade,
		"radarr_monitor_option":               string(s.RadarrMonitorOption),
		"radarr_minimum_availability_enabled": s.RadarrMinimumAvailabilityEnabled,
		"radarr_minimum_availability":         string(s.RadarrMinimumAvailability),
		"radarr_search_for_movie":             s.RadarrSearchForMovie,
		"radarr_root_folder_config": map[string]any{
			"enabled":  s.RadarrRootFolderConfig.Enabled,
			"mappings": mappings,
		},
		"radarr_cache_ttl_seconds": s.RadarrCacheTTLSeconds,

		"boxarr_host":     s.BoxarrHost,
		"boxarr_port":     s.BoxarrPort,
		"boxarr_api_port": s.BoxarrAPIPort,
		"boxarr_url_base": s.BoxarrURLBase,

		"boxarr_scheduler_enabled":  s.BoxarrSchedulerEnabled,
		"boxarr_scheduler_cron":     s.BoxarrSchedulerCron,
		"boxarr_scheduler_timezone": s.BoxarrSchedulerTimezone,

		"boxarr_ui_theme":                 string(s.BoxarrUITheme),
		"boxarr_ui_cards_per_row_mobile":  s.BoxarrUICardsPerRowMobile,
		"boxarr_ui_cards_per_row_tablet":  s.BoxarrUICardsPerRowTablet,
		"boxarr_ui_cards_per_row_desktop": s.BoxarrUICardsPerRowDesktop,
		"boxarr_ui_cards_per_row_4k":      s.BoxarrUICardsPerRow4K,
		"boxarr_ui_show_descriptions":     s.BoxarrUIShowDescriptions,

		"boxarr_features_auto_add":         s.BoxarrFeaturesAutoAdd,
		"boxarr_features_quality_upgrade":  s.BoxarrFeaturesQualityUpgrade,
		"boxarr_features_notifications":    s.BoxarrFeaturesNotifications,
		"boxarr_features_auto_tag_enabled": s.BoxarrFeaturesAutoTagEnabled,
		"boxarr_features_auto_tag_text":    s.BoxarrFeaturesAutoTagText,

		"boxarr_features_auto_add_limit":                 s.BoxarrFeaturesAutoAddLimit,
		"boxarr_features_auto_add_genre_filter_enabled":  s.BoxarrFeaturesAutoAddGenreFilterEnabled,
		"boxarr_features_auto_add_genre_filter_mode":     s.BoxarrFeaturesAutoAddGenreFilterMode,
		"boxarr_features_auto_add_genre_whitelist":       s.BoxarrFeaturesAutoAddGenreWhitelist,
		"boxarr_features_auto_add_genre_blacklist":       s.BoxarrFeaturesAutoAddGenreBlacklist,
		"boxarr_features_auto_add_rating_filter_enabled": s.BoxarrFeaturesAutoAddRatingFilterEnabled,
		"boxarr_features_auto_add_rating_whitelist":      s.BoxarrFeaturesAutoAddRatingWhitelist,
		"boxarr_features_auto_add_ignore_rereleases":     s.BoxarrFeaturesAutoAddIgnoreRereleases,

		"boxarr_data_history_retention_days": s.BoxarrDataHistoryRetentionDays,
		"boxarr_data_cache_ttl_seconds":      s.BoxarrDataCacheTTLSeconds,
		"boxarr_data_directory":              s.BoxarrDataDirectory,

		"log_level":  s.LogLevel,
		"log_format": s.LogFormat,
	}
}
