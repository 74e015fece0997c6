package projects

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"bavatarinee.dev/internal/models"
	"bavatarinee.dev/internal/reveal"
)

const (
	descriptionLimit   = 160
	defaultDescription = "Explore this project on GitHub."
)

// Filter drops forks, the account's profile repository and configuration
// repositories, keeping the original order.
func Filter(repos []models.Repository, account string) []models.Repository {
	out := make([]models.Repository, 0, len(repos))
	for _, r := range repos {
		name := strings.ToLower(r.Name)
		switch {
		case r.Fork:
		case strings.EqualFold(r.Name, account):
		case strings.Contains(name, "config"), strings.Contains(name, ".github"):
		default:
			out = append(out, r)
		}
	}
	return out
}

// BuildCards maps filtered repositories to cards, in order.
func BuildCards(repos []models.Repository) []models.Project {
	cards := make([]models.Project, len(repos))
	for i, r := range repos {
		cards[i] = BuildCard(r, i)
	}
	return cards
}

// BuildCard derives the card for the repository at position index.
func BuildCard(r models.Repository, index int) models.Project {
	language := deref(r.Language)
	return models.Project{
		ID:          fmt.Sprintf("proj-gh-%d", r.ID),
		RepoID:      r.ID,
		Number:      fmt.Sprintf("%02d", index+1),
		Category:    Category(r.Name, language),
		Title:       strings.NewReplacer("-", " ", "_", " ").Replace(r.Name),
		Name:        r.Name,
		Description: truncate(deref(r.Description)),
		Language:    language,
		Stars:       StarBadge(r.Stars),
		URL:         r.URL,
		Featured:    index%3 == 0,
		RevealDelay: reveal.Stagger(0, index).Milliseconds(),
	}
}

// StarBadge renders the star count, marking unstarred repositories as new.
func StarBadge(stars int) string {
	if stars > 0 {
		return fmt.Sprintf("⭐ %d", stars)
	}
	return "⭐ New"
}

func truncate(desc string) string {
	if desc == "" {
		return defaultDescription
	}
	if utf8.RuneCountInString(desc) <= descriptionLimit {
		return desc
	}
	return string([]rune(desc)[:descriptionLimit]) + "…"
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
