package models

// EditorRole is the role of an account allowed to use the editing API.
type EditorRole string

const (
	RoleExtractor EditorRole = "extractor"
	RoleVerifier  EditorRole = "verifier"
)

func (r EditorRole) Valid() bool {
	return r == RoleExtractor || r == RoleVerifier
}

// Editor is an extractor or verifier account configured for the review team.
type Editor struct {
	Username     string     `json:"username" yaml:"username"`
	Name         string     `json:"name" yaml:"name"`
	Role         EditorRole `json:"role" yaml:"role"`
	PasswordHash string     `json:"-" yaml:"password_hash"`
}

// DisplayName is recorded as extracted_by/created_by/verified_by.
func (e *Editor) DisplayName() string {
	if e.Name != "" {
		return e.Name
	}
	return e.Username
}
