package constants

import "os"

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// GetMediaDir is where song MIDI files live when the catalogue does not
// list them explicitly.
func GetMediaDir() string {
	return getEnv("MEDIA_PATH", "./res/midi")
}

func GetCataloguePath() string {
	return getEnv("CATALOGUE_PATH", "./songs.yaml")
}

func GetListenAddr() string {
	return getEnv("LISTEN_ADDR", ":8080")
}

func GetLogLevel() string {
	return getEnv("LOG_LEVEL", "info")
}

func GetLogFormat() string {
	return getEnv("LOG_FORMAT", "text")
}

// GetMetadataEndpoint is empty unless song metadata lookups are enabled.
func GetMetadataEndpoint() string {
	return os.Getenv("METADATA_ENDPOINT")
}

func GetMetadataTable() string {
	return getEnv("METADATA_TABLE", "melowave-metadata")
}

func GetMetadataRegion() string {
	return getEnv("METADATA_REGION", "localhost")
}

// MaxUploadSize bounds uploaded MIDI files.
const MaxUploadSize = 8 * 1024 * 1024
