package requests

// ScriptureContextRequest is the payload for the scripture context
// assistant.
type ScriptureContextRequest struct {
	Query        string `json:"query" binding:"required,min=10,max=2000"`
	Context      string `json:"context" binding:"omitempty,max=5000"`
	ContentType  string `json:"content_type"`
	BibleVersion string `json:"bible_version"`
}
