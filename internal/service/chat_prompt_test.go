package service

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/vedicas-garden/models"
	"github.com/stretchr/testify/assert"
)

func testChart() *models.ChartResponse {
	return &models.ChartResponse{Charts: map[string]models.DivisionalChart{
		"D1": {
			Ascendant: &models.Ascendant{Sign: "Virgo", Degree: 12.3, Nakshatra: models.Nakshatra{Name: "Hasta"}},
			Planets: map[string]models.PlanetPosition{
				"Uranus":  {Sign: "Aries", Degree: 1, House: 8},
				"Moon":    {Sign: "Taurus", Degree: 10.5, House: 9, Dignity: "exalted", Nakshatra: models.Nakshatra{Name: "Rohini", Lord: "Moon"}},
				"Sun":     {Sign: "Leo", Degree: 3.14159, House: 12, Dignity: "neutral", Nakshatra: models.Nakshatra{Name: "Magha"}},
				"Saturn":  {Sign: "Capricorn", Degree: 20, House: 5, Retrograde: true},
				"Neptune": {Sign: "Pisces", Degree: 2, House: 7},
			},
			Houses: map[string][]string{"10": {}, "9": {"Moon"}, "12": {"Sun"}, "1": {}},
		},
	}}
}

func TestFormatChartAsText(t *testing.T) {
	dasha := &models.DashaResponse{
		MoonNakshatra:     models.Nakshatra{Name: "Rohini", Lord: "Moon"},
		CurrentMahaDasha:  &models.DashaPeriod{Planet: "Venus", Start: "2020-01-01", End: "2040-01-01"},
		CurrentAntarDasha: &models.DashaPeriod{Planet: "Sun", End: "2027-06-01"},
	}

	got := FormatChartAsText(testChart(), dasha)

	want := strings.Join([]string{
		"## Birth Chart Data\n",
		"**Ascendant (Lagna)**: Virgo at 12.30°",
		"  - Nakshatra: Hasta (Pada 1)",
		"\n### Planetary Positions\n",
		"**Sun**: Leo at 3.14° - House 12",
		"  - Nakshatra: Magha (Lord: Unknown)",
		"**Moon**: Taurus at 10.50° - House 9 [exalted]",
		"  - Nakshatra: Rohini (Lord: Moon)",
		"**Saturn**: Capricorn at 20.00° (R) - House 5",
		"**Neptune**: Pisces at 2.00° - House 7",
		"**Uranus**: Aries at 1.00° - House 8",
		"\n### House Occupancy\n",
		"House 1: Empty",
		"House 9: Moon",
		"House 10: Empty",
		"House 12: Sun",
		"\n### Vimshottari Dasha\n",
		"Birth Nakshatra: Rohini (Lord: Moon)",
		"\n**Current Maha Dasha**: Venus",
		"  - Period: 2020-01-01 to 2040-01-01",
		"\n**Current Antar Dasha**: Sun",
		"  - Until: 2027-06-01",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestFormatChartAsText_NoChart(t *testing.T) {
	assert.Empty(t, FormatChartAsText(nil, &models.DashaResponse{}))
	assert.Empty(t, FormatChartAsText(&models.ChartResponse{}, nil))
}

func TestBuildSystemPrompt(t *testing.T) {
	snap := models.Snapshot{
		Profile:           models.Profile{Name: "Mira", Profession: "Architect"},
		SexualOrientation: "Straight",
		Chart:             testChart(),
		Seeds: []models.Seed{
			{Title: "Walk", Category: "Health", Difficulty: models.DifficultyEasy, CompletedDates: []string{testToday}},
			{Title: "Japa", Category: "Spiritual", Difficulty: models.DifficultyHard},
		},
	}
	for i := range 12 {
		snap.Wisdom = append(snap.Wisdom, models.WisdomNote{Title: fmt.Sprintf("Note %d", i), Category: "Insight"})
	}

	got := BuildSystemPrompt(models.GuruFor("life_career"), snap, testToday)

	assert.True(t, strings.HasPrefix(got, "You are Raja Dharma, a Career Strategist. This is your ONLY identity - never use any other name."))
	assert.Contains(t, got, "I am Mira.")
	assert.Contains(t, got, "- Gender: Not specified\n")
	assert.Contains(t, got, "- Profession: Architect\n")
	assert.Contains(t, got, "- Sexual Orientation: Straight\n")
	assert.Contains(t, got, "You are my trusted guide for career satisfaction")
	assert.Contains(t, got, "## Birth Chart Data")
	assert.Contains(t, got, "- Walk (Health, Easy) done today\n")
	assert.Contains(t, got, "- Japa (Spiritual, Hard) not yet today\n")
	assert.Contains(t, got, "Don't offer seeds I already have.")
	assert.Contains(t, got, "MY SAVED WISDOM (12 notes):")
	assert.Contains(t, got, "- Note 9 (Insight)\n... and more\n")
	assert.NotContains(t, got, "Note 10")
	assert.True(t, strings.HasSuffix(got, "Always use these special formats when offering seeds or when I ask you to save something to my wisdom."))
}

func TestBuildSystemPrompt_Minimal(t *testing.T) {
	got := BuildSystemPrompt(models.GuruFor("nobody"), models.Snapshot{}, testToday)

	assert.Contains(t, got, "You are Vedic Guide, a Life Coach.")
	assert.Contains(t, got, "I am a seeker.")
	assert.NotContains(t, got, "CURRENT SEEDS IN GARDEN")
	assert.NotContains(t, got, "MY SAVED WISDOM")
	assert.NotContains(t, got, "## Birth Chart Data")
	assert.Contains(t, got, "IMPORTANT CAPABILITIES:")
}

func TestEkadashiStatus(t *testing.T) {
	tests := []struct {
		tithi int
		want  string
	}{
		{1, "Shukla Ekadashi is in 10 days."},
		{10, "Shukla Ekadashi is in 1 days."},
		{11, "Today is Shukla Ekadashi!"},
		{12, "Krishna Ekadashi is in 14 days."},
		{26, "Today is Krishna Ekadashi!"},
		{27, "Shukla Ekadashi (Next Cycle) is in 14 days."},
		{30, "Shukla Ekadashi (Next Cycle) is in 11 days."},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.tithi), func(t *testing.T) {
			assert.Equal(t, tt.want, EkadashiStatus(tt.tithi))
		})
	}
}

func TestAlignmentContext(t *testing.T) {
	a := &models.AlignmentResponse{
		Tithi:         models.Tithi{Number: 11, Name: "Ekadashi", Paksha: "Shukla"},
		MoonNakshatra: models.Nakshatra{Name: "Pushya"},
	}

	got := AlignmentContext(a, time.Date(2026, 3, 14, 9, 5, 0, 0, time.UTC))

	assert.Contains(t, got, "[SYSTEM_CONTEXT_UPDATE]")
	assert.Contains(t, got, "Current Time: 2026-03-14 09:05")
	assert.Contains(t, got, "Astrological Day (Tithi): Ekadashi (Shukla)")
	assert.Contains(t, got, "Moon Nakshatra: Pushya")
	assert.Contains(t, got, "Ekadashi Status: Today is Shukla Ekadashi!")
}
