package normalize

import (
	"strings"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// cityExceptions maps colloquial or former city names (lowercased) to the
// current canonical name. Consulted before and after the similarity match so
// a fuzzy hit on a former name still lands on the canonical one.
var cityExceptions = map[string]string{
	"bangalore":  "Bengaluru",
	"gurgaon":    "Gurugram",
	"trivandrum": "Thiruvananthapuram",
	"allahabad":  "Prayagraj",
}

const citySimilarityThreshold = 0.75

var titleCaser = cases.Title(language.English)

// CityMatcher normalizes noisy city text through a fixed strategy chain:
// exact exception-table hit, then similarity match against a reference list,
// then title-cased passthrough. The reference list and threshold are fields
// so they can be tuned and tested independently of the conversation logic.
type CityMatcher struct {
	exceptions map[string]string
	reference  []string
	threshold  float64
}

// NewCityMatcher builds a matcher over the default Indian reference cities.
func NewCityMatcher() *CityMatcher {
	return &CityMatcher{
		exceptions: cityExceptions,
		reference:  indianCities,
		threshold:  citySimilarityThreshold,
	}
}

// Normalize never fails: unrecognized cities pass through title-cased.
// Empty input yields "".
func (m *CityMatcher) Normalize(text string) string {
	raw := strings.TrimSpace(text)
	if raw == "" {
		return ""
	}
	low := strings.ToLower(raw)

	if canon, ok := m.exceptions[low]; ok {
		return canon
	}

	if best, sim := m.closest(low); sim >= m.threshold {
		if canon, ok := m.exceptions[strings.ToLower(best)]; ok {
			return canon
		}
		return best
	}

	return titleCaser.String(low)
}

// closest returns the reference city with the highest similarity ratio to the
// lowercased input, where ratio = 1 - levenshtein/maxlen.
func (m *CityMatcher) closest(low string) (string, float64) {
	bestCity, bestSim := "", 0.0
	for _, city := range m.reference {
		sim := similarity(low, strings.ToLower(city))
		if sim > bestSim {
			bestCity, bestSim = city, sim
		}
	}
	return bestCity, bestSim
}

func similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	longest := max(len([]rune(a)), len([]rune(b)))
	if longest == 0 {
		return 1
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1 - float64(dist)/float64(longest)
}

var defaultCityMatcher = NewCityMatcher()

// City normalizes with the default matcher.
func City(text string) string {
	return defaultCityMatcher.Normalize(text)
}
