package config

// MergeLocal merges a local per-project config into a global config,
// returning a new Config without mutating the global.
// Returns global unchanged if local is nil.
func MergeLocal(global *Config, local *LocalConfig) *Config {
	if local == nil {
		return global
	}

	merged := *global

	if local.Frontend != "" {
		merged.Frontend = local.Frontend
	}
	if local.Questions != "" {
		merged.Questions = local.Questions
	}
	if local.Marker != "" {
		merged.Marker = local.Marker
	}
	if local.Border != "" {
		merged.Border = local.Border
	}
	// Banner is a pointer so a local file can clear it.
	if local.Banner != nil {
		merged.Banner = *local.Banner
	}

	merged.Theme = mergeTheme(global.Theme, local.Theme)

	return &merged
}

func mergeTheme(global, local ThemeConfig) ThemeConfig {
	merged := global
	if local.Name != "" {
		merged.Name = local.Name
	}
	if local.Mode != "" {
		merged.Mode = local.Mode
	}
	if local.Primary != "" {
		merged.Primary = local.Primary
	}
	if local.Accent != "" {
		merged.Accent = local.Accent
	}
	if local.Muted != "" {
		merged.Muted = local.Muted
	}
	if local.Normal != "" {
		merged.Normal = local.Normal
	}
	return merged
}
