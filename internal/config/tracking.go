package config

import "github.com/MKhiriev/go-settings-keeper/internal/logger"

// SourceInfo describes one configuration source checked during resolution.
type SourceInfo struct {
	Type        string
	Path        string
	Available   bool
	Description string
}

// LogSources reports every checked source and the fixed priority order.
// Intended for startup logs so an operator can see at a glance where the
// effective configuration came from.
func LogSources(log *logger.Logger, infos []SourceInfo) {
	if len(infos) == 0 {
		log.Info().Msg("no configuration sources tracked")
		return
	}

	for _, info := range infos {
		log.Info().
			Str("source", info.Type).
			Str("path", info.Path).
			Bool("available", info.Available).
			Msg(info.Description)
	}

	log.Info().Msg("priority order: secrets > environment variables > dotenv > yaml > defaults")
}
