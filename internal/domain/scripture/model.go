package scripture

import (
	"fmt"
	"time"
)

// Reference is a single scripture citation with its text.
type Reference struct {
	Book       string `json:"book"`
	Chapter    int    `json:"chapter"`
	VerseStart int    `json:"verse_start"`
	VerseEnd   *int   `json:"verse_end,omitempty"`
	Text       string `json:"text"`
	Version    string `json:"version"`
}

// FormatReference renders "Book Chapter:Verse" or a verse range.
func (r Reference) FormatReference() string {
	if r.VerseEnd != nil && *r.VerseEnd != r.VerseStart {
		return fmt.Sprintf("%s %d:%d-%d", r.Book, r.Chapter, r.VerseStart, *r.VerseEnd)
	}
	return fmt.Sprintf("%s %d:%d", r.Book, r.Chapter, r.VerseStart)
}

// Request carries a question for the context assistant.
type Request struct {
	Query        string
	Context      string
	ContentType  string
	BibleVersion string
}

// Response is the assistant's structured answer.
type Response struct {
	Query                string      `json:"query"`
	Summary              string      `json:"summary"`
	BiblicalPrinciples   []string    `json:"biblical_principles"`
	ScriptureReferences  []Reference `json:"scripture_references"`
	TheologicalInsights  string      `json:"theological_insights"`
	PracticalApplication string      `json:"practical_application"`
	FurtherStudy         []string    `json:"further_study"`
	Timestamp            time.Time   `json:"timestamp"`
}
