package service

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/MKhiriev/vedicas-garden/models"
)

var (
	seedOfferRe   = regexp.MustCompile(`(?s)\[OFFER_SEED:\s*(\{.*?\})\]`)
	wisdomOfferRe = regexp.MustCompile(`(?s)\[WISDOM_NOTE:\s*(\{.*?\})\]`)
)

// ParseSuggestions extracts every seed and wisdom offer from an assistant
// reply. Offers whose payload is not valid JSON are dropped. CleanText is
// the reply with all offer tags removed. Malformed payloads are reported in
// Dropped for the caller to log.
func ParseSuggestions(content string) models.Suggestions {
	var out models.Suggestions
	out.Seeds = parseOffers[models.SeedOffer](seedOfferRe, content, &out.Dropped)
	out.Wisdom = parseOffers[models.WisdomOffer](wisdomOfferRe, content, &out.Dropped)

	clean := seedOfferRe.ReplaceAllString(content, "")
	clean = wisdomOfferRe.ReplaceAllString(clean, "")
	out.CleanText = strings.TrimSpace(clean)
	return out
}

func parseOffers[T any](re *regexp.Regexp, content string, dropped *[]string) []T {
	var out []T
	for _, m := range re.FindAllStringSubmatch(content, -1) {
		var offer T
		if json.Unmarshal([]byte(m[1]), &offer) != nil {
			*dropped = append(*dropped, m[1])
			continue
		}
		out = append(out, offer)
	}
	return out
}
