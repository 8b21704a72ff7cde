// Package domain contains the core data structures and domain logic for the application.
package domain

import "time"

// UnknownLanguage is the histogram bucket for repositories without a detected language.
const UnknownLanguage = "Unknown"

// Repository holds the fields of a single repository that the report is built from.
// It is the core domain entity of this application.
type Repository struct {
	Owner      string     `json:"owner"`
	Name       string     `json:"name"`
	Stars      int        `json:"stars"`
	Forks      int        `json:"forks"`
	Watchers   int        `json:"watchers"`
	OpenIssues int        `json:"open_issues"`
	Private    bool       `json:"private"`
	Language   *string    `json:"language,omitempty"`
	PushedAt   *time.Time `json:"pushed_at,omitempty"`
}

// LanguageOrUnknown resolves the primary language, falling back to UnknownLanguage.
func (r Repository) LanguageOrUnknown() string {
	if r.Language == nil || *r.Language == "" {
		return UnknownLanguage
	}
	return *r.Language
}
