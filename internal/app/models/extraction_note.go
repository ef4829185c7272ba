package models

import "time"

// ExtractionNote records an extraction decision or query against a study.
// Notes are append-only.
type ExtractionNote struct {
	ID        int64     `json:"id"`
	StudyID   int64     `json:"study"`
	NoteType  NoteType  `json:"note_type" validate:"enum"`
	NoteText  string    `json:"note_text" validate:"notblank"`
	CreatedBy string    `json:"created_by" validate:"notblank,max=100"`
	CreatedAt time.Time `json:"created_at"`
}
