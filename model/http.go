package model

type ChordResponse struct {
	Name    string   `json:"name"`
	Root    string   `json:"root"`
	Quality string   `json:"quality"`
	Bass    string   `json:"bass,omitempty"`
	Pitches []string `json:"pitches"`
}

type ProgressionResponse struct {
	Transpose int      `json:"transpose"`
	Chords    []string `json:"chords"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
