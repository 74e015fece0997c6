package models

import "time"

// Repository is the subset of a GitHub repository the grid needs
type Repository struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Language    *string `json:"language"`
	Stars       int     `json:"stargazers_count"`
	URL         string  `json:"html_url"`
	Fork        bool    `json:"fork"`
}

// Project is a render-ready project card
type Project struct {
	ID          string `json:"id"`
	RepoID      int64  `json:"repo_id"`
	Number      string `json:"number"`
	Category    string `json:"category"`
	Title       string `json:"title"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Language    string `json:"language,omitempty"`
	Stars       string `json:"stars"`
	URL         string `json:"url"`
	Featured    bool   `json:"featured"`
	RevealDelay int64  `json:"reveal_delay_ms"`
}

// ProjectList is the state of the project grid
type ProjectList struct {
	Projects   []Project  `json:"projects"`
	Count      int        `json:"count"`
	Status     string     `json:"status"`
	Synced     bool       `json:"synced"`
	Failed     bool       `json:"failed"`
	ProfileURL string     `json:"profile_url"`
	SyncedAt   *time.Time `json:"synced_at,omitempty"`
	SyncedAgo  string     `json:"synced_ago,omitempty"`
	RunID      string     `json:"run_id,omitempty"`
}
