// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/vedicas-garden/models"
)

const notSpecified = "Not specified"

// wisdomPromptLimit caps how many saved notes are listed in the prompt.
const wisdomPromptLimit = 10

var planetOrder = []string{"Sun", "Moon", "Mars", "Mercury", "Jupiter", "Venus", "Saturn", "Rahu", "Ketu"}

const capabilitiesBlock = `IMPORTANT CAPABILITIES:

1. SEEDS (daily practices): When you identify a helpful daily practice, offer it as a seed:
Format: [OFFER_SEED: {"title": "Practice Name", "category": "Health|Spiritual|Relationship|Career|General", "description": "Why this helps", "difficulty": "Easy|Medium|Hard|Heroic"}]

2. WISDOM NOTES (recipes, mantras, insights): When I ask you to save something as a "note", "wisdom", or "wisdom note" (like a recipe, mantra, insight, or important information), format it as:
[WISDOM_NOTE: {"title": "Note Title", "category": "Recipe|Practice|Insight|Mantra|Reminder|General", "content": "The full formatted content to save"}]

Always use these special formats when offering seeds or when I ask you to save something to my wisdom.`

// BuildSystemPrompt renders the persona prompt sent as the first message
// of every chat request.
func BuildSystemPrompt(guru models.Guru, snap models.Snapshot, today string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are %s, a %s. This is your ONLY identity - never use any other name.\n\n", guru.Name, guru.Role)
	fmt.Fprintf(&b, "I am %s.\n\n", orDefault(snap.Profile.Name, "a seeker"))

	b.WriteString("My profile:\n")
	fmt.Fprintf(&b, "- Gender: %s\n", orDefault(snap.Profile.Gender, notSpecified))
	fmt.Fprintf(&b, "- Profession: %s\n", orDefault(snap.Profile.Profession, notSpecified))
	fmt.Fprintf(&b, "- Relationship Status: %s\n", orDefault(snap.Profile.RelationshipStatus, notSpecified))
	fmt.Fprintf(&b, "- Sexual Orientation: %s\n\n", orDefault(snap.SexualOrientation, notSpecified))

	fmt.Fprintf(&b, "You are my trusted guide for %s. We have an ongoing relationship - continue our conversation naturally. "+
		"If this is our first meeting, warmly introduce yourself and ask how you can help today. Otherwise, pick up where we left off.\n\n", guru.Topics)

	b.WriteString("My birth chart details are available to you. Use this astrological context to personalize your guidance.")

	if text := FormatChartAsText(snap.Chart, snap.Dasha); text != "" {
		b.WriteString("\n\n")
		b.WriteString(text)
	}

	if len(snap.Seeds) > 0 {
		b.WriteString("\n\nCURRENT SEEDS IN GARDEN (practices I'm working on):\n")
		for _, s := range snap.Seeds {
			status := "not yet today"
			if s.WateredOn(today) {
				status = "done today"
			}
			fmt.Fprintf(&b, "- %s (%s, %s) %s\n", s.Title, s.Category, s.Difficulty, status)
		}
		b.WriteString("\nYou should be aware of these existing practices and can reference them in your guidance. Don't offer seeds I already have.")
	}

	if len(snap.Wisdom) > 0 {
		fmt.Fprintf(&b, "\n\nMY SAVED WISDOM (%d notes):\n", len(snap.Wisdom))
		for i, w := range snap.Wisdom {
			if i == wisdomPromptLimit {
				b.WriteString("... and more\n")
				break
			}
			fmt.Fprintf(&b, "- %s (%s)\n", w.Title, w.Category)
		}
		b.WriteString("\nDon't re-offer wisdom I've already saved.")
	}

	b.WriteString("\n\n")
	b.WriteString(capabilitiesBlock)
	return b.String()
}

// FormatChartAsText renders the rashi chart and the running dasha as the
// markdown block embedded in the system prompt. A nil chart yields "".
func FormatChartAsText(chart *models.ChartResponse, dasha *models.DashaResponse) string {
	d1, ok := chart.Rashi()
	if !ok {
		return ""
	}

	lines := []string{"## Birth Chart Data\n"}

	if asc := d1.Ascendant; asc != nil {
		lines = append(lines, fmt.Sprintf("**Ascendant (Lagna)**: %s at %.2f°", asc.Sign, asc.Degree))
		if asc.Nakshatra.Name != "" {
			lines = append(lines, fmt.Sprintf("  - Nakshatra: %s (Pada %d)", asc.Nakshatra.Name, max(asc.Nakshatra.Pada, 1)))
		}
	}

	lines = append(lines, "\n### Planetary Positions\n")
	for _, name := range sortedPlanets(d1.Planets) {
		p := d1.Planets[name]
		retro := ""
		if p.Retrograde {
			retro = " (R)"
		}
		dignity := ""
		if p.Dignity != "" && p.Dignity != "neutral" {
			dignity = " [" + p.Dignity + "]"
		}
		lines = append(lines, fmt.Sprintf("**%s**: %s at %.2f°%s - House %d%s", name, p.Sign, p.Degree, retro, p.House, dignity))
		if p.Nakshatra.Name != "" {
			lines = append(lines, fmt.Sprintf("  - Nakshatra: %s (Lord: %s)", p.Nakshatra.Name, orDefault(p.Nakshatra.Lord, "Unknown")))
		}
	}

	if len(d1.Houses) > 0 {
		lines = append(lines, "\n### House Occupancy\n")
		for _, num := range sortedHouses(d1.Houses) {
			occupants := "Empty"
			if len(d1.Houses[num]) > 0 {
				occupants = strings.Join(d1.Houses[num], ", ")
			}
			lines = append(lines, fmt.Sprintf("House %s: %s", num, occupants))
		}
	}

	if dasha != nil {
		lines = append(lines, "\n### Vimshottari Dasha\n")
		if n := dasha.MoonNakshatra; n.Name != "" {
			lines = append(lines, fmt.Sprintf("Birth Nakshatra: %s (Lord: %s)", n.Name, orDefault(n.Lord, "Unknown")))
		}
		if m := dasha.CurrentMahaDasha; m != nil {
			lines = append(lines, fmt.Sprintf("\n**Current Maha Dasha**: %s", m.Planet))
			lines = append(lines, fmt.Sprintf("  - Period: %s to %s", m.Start, m.End))
		}
		if a := dasha.CurrentAntarDasha; a != nil {
			lines = append(lines, fmt.Sprintf("\n**Current Antar Dasha**: %s", a.Planet))
			lines = append(lines, fmt.Sprintf("  - Until: %s", a.End))
		}
	}

	return strings.Join(lines, "\n")
}

// sortedPlanets lists the classical grahas first, then anything else by
// name.
func sortedPlanets(planets map[string]models.PlanetPosition) []string {
	names := make([]string, 0, len(planets))
	for name := range planets {
		names = append(names, name)
	}
	rank := func(n string) int {
		if i := slices.Index(planetOrder, n); i >= 0 {
			return i
		}
		return len(planetOrder)
	}
	slices.SortFunc(names, func(a, b string) int {
		if d := rank(a) - rank(b); d != 0 {
			return d
		}
		return strings.Compare(a, b)
	})
	return names
}

func sortedHouses(houses map[string][]string) []string {
	keys := make([]string, 0, len(houses))
	for k := range houses {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b string) int {
		x, errA := strconv.Atoi(a)
		y, errB := strconv.Atoi(b)
		if errA != nil || errB != nil {
			return strings.Compare(a, b)
		}
		return x - y
	})
	return keys
}

// EkadashiStatus describes the distance to the next Ekadashi (tithi 11 or
// 26) from the current tithi number.
func EkadashiStatus(tithi int) string {
	switch {
	case tithi < 11:
		return fmt.Sprintf("Shukla Ekadashi is in %d days.", 11-tithi)
	case tithi == 11:
		return "Today is Shukla Ekadashi!"
	case tithi < 26:
		return fmt.Sprintf("Krishna Ekadashi is in %d days.", 26-tithi)
	case tithi == 26:
		return "Today is Krishna Ekadashi!"
	default:
		return fmt.Sprintf("Shukla Ekadashi (Next Cycle) is in %d days.", (30-tithi)+11)
	}
}

// AlignmentContext renders the panchang appended as the last system
// message of a chat request.
func AlignmentContext(a *models.AlignmentResponse, now time.Time) string {
	paksha := a.Tithi.Paksha
	if paksha == "" {
		paksha = "Unknown"
	}
	return fmt.Sprintf(`
[SYSTEM_CONTEXT_UPDATE]
Current Time: %s
Astrological Day (Tithi): %s (%s)
Moon Nakshatra: %s
Ekadashi Status: %s
[/SYSTEM_CONTEXT_UPDATE]
`, now.Format("2006-01-02 15:04"), a.Tithi.Name, paksha, a.MoonNakshatra.Name, EkadashiStatus(a.Tithi.Number))
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
