package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/vedicas-garden/internal/service"
	"github.com/MKhiriev/vedicas-garden/models"
)

func renderTabs(gurus []models.Guru, active int) string {
	tabs := make([]string, len(gurus))
	for i, g := range gurus {
		if i == active {
			tabs[i] = activeTabStyle.Render(titleStyle.Render(g.Name))
			continue
		}
		tabs[i] = helpStyle.Render(g.Name)
	}
	return strings.Join(tabs, "  ")
}

func renderStats(s models.GardenStats) string {
	return helpStyle.Render(fmt.Sprintf("Seeds %d · watered today %d · points %d · best streak %d",
		s.Seeds, s.WateredToday, s.Points, s.BestStreak))
}

// renderHistory renders the visible turns of a conversation. System turns
// are hidden and offer tags are stripped from guru replies.
func renderHistory(msgs []models.Message, guru models.Guru, width int) string {
	wrap := lipgloss.NewStyle().Width(max(width, 20))

	var b strings.Builder
	for _, msg := range msgs {
		switch msg.Role {
		case models.RoleUser:
			b.WriteString(userStyle.Render("You"))
			b.WriteString("\n")
			b.WriteString(wrap.Render(msg.Content))
		case models.RoleAssistant:
			b.WriteString(guruStyle.Render(guru.Name))
			b.WriteString("\n")
			b.WriteString(wrap.Render(service.ParseSuggestions(msg.Content).CleanText))
		default:
			continue
		}
		b.WriteString("\n\n")
	}

	if b.Len() == 0 {
		return helpStyle.Render(fmt.Sprintf("%s, %s. Ask about %s.", guru.Name, guru.Role, guru.Topics))
	}
	return b.String()
}

func renderOffers(s models.Suggestions) string {
	var lines []string
	for _, seed := range s.Seeds {
		lines = append(lines, fmt.Sprintf("Seed: %s (%s, %s)", seed.Title, seed.Category, seed.Difficulty))
	}
	for _, w := range s.Wisdom {
		lines = append(lines, fmt.Sprintf("Wisdom: %s", w.Title))
	}
	return strings.Join(lines, "\n")
}

func offersStatus(s models.Suggestions) string {
	n := len(s.Seeds) + len(s.Wisdom)
	if n == 0 {
		return ""
	}
	return fmt.Sprintf("%d offer(s): ctrl+s plants a seed, ctrl+w saves wisdom", n)
}

func errorText(err error) string {
	switch {
	case errors.Is(err, service.ErrNotAuthenticated):
		return "Sign in first"
	case errors.Is(err, service.ErrRemoteFailure):
		return "The guru could not be reached, try again"
	case errors.Is(err, service.ErrAlreadyWatered):
		return "Already watered today"
	}
	return err.Error()
}
