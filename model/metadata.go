package model

type SongMetadata struct {
	Title   string `json:"title"`
	Artist  string `json:"artist"`
	Release string `json:"release,omitempty"`
	Year    uint   `json:"year,omitempty"`
}

type SongNum = uint32
type SongNumToPath = map[SongNum]string
