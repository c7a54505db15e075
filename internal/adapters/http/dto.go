package http

// WordResponse is the JSON shape returned by GET /api/random-word.
type WordResponse struct {
	Word string `json:"word"`
}

// CueRequest is the JSON body accepted by POST /api/generate-cue.
type CueRequest struct {
	Phrase string `json:"phrase"`
}

// CueResponse is the JSON shape returned by POST /api/generate-cue.
type CueResponse struct {
	Cue  string `json:"cue"`
	Note string `json:"note,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
