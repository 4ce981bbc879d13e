package assessment

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"

	"circularmetals-backend/internal/shared/util"
)

// Input is the raw processData mapping from the assessment request. All
// fields are optional; scoring distinguishes absent keys from empty values.
type Input map[string]any

// Result is the assessment payload returned to the client.
type Result struct {
	CircularityScore   int      `json:"circularityScore"`
	EnvironmentalScore int      `json:"environmentalScore"`
	Recommendations    []string `json:"recommendations"`
	MissingParams      int      `json:"missingParams"`
	Debug              Debug    `json:"debug"`
}

// Debug carries diagnostic details alongside the scores.
type Debug struct {
	MissingFields []string `json:"missingFields"`
}

// ErrInvalidNumber reports a numeric field that could not be parsed.
var ErrInvalidNumber = errors.New("invalid numeric value")

var expectedFields = []string{
	"material",
	"production",
	"rawMaterial",
	"recycledContent",
	"energyUse",
	"transport",
	"endOfLife",
}

var recommendationCatalog = []string{
	"Increase recycled content to reduce virgin input dependency",
	"Optimize transport routes and prefer rail/sea logistics",
	"Adopt closed-loop water systems in processing",
	"Redesign product for easier disassembly and reuse",
}

// Score computes the circularity and environmental scores plus the
// recommendation ordering for the given process data. It is a pure function
// of its input.
func Score(in Input) (Result, error) {
	missing := make([]string, 0, len(expectedFields))
	for _, field := range expectedFields {
		if _, ok := in[field]; !ok {
			missing = append(missing, field)
		}
	}

	recycled, err := numberField(in, "recycledContent", 50)
	if err != nil {
		return Result{}, err
	}
	rawMaterial, err := numberField(in, "rawMaterial", 50)
	if err != nil {
		return Result{}, err
	}
	energyUse := strings.ToLower(stringField(in, "energyUse", "medium"))
	transport := strings.ToLower(stringField(in, "transport", "road"))

	circularity := 50 + (recycled-rawMaterial)*0.3
	if energyUse == "low" || energyUse == "renewable" {
		circularity += 10
	}
	if transport == "rail" || transport == "sea" {
		circularity += 5
	}

	// Integer cast truncates toward zero, matching the defined formula.
	environmental := 60 + int(recycled*0.2-rawMaterial*0.1)

	seed := stringField(in, "material", "") + stringField(in, "production", "")

	return Result{
		CircularityScore:   clamp(int(math.Round(circularity)), 0, 100),
		EnvironmentalScore: clamp(environmental, 0, 100),
		Recommendations:    shuffledRecommendations(seed),
		MissingParams:      len(missing),
		Debug:              Debug{MissingFields: missing},
	}, nil
}

// shuffledRecommendations returns the catalog permuted by a PRNG seeded from
// the material+production pair. The same pair always yields the same order.
func shuffledRecommendations(seed string) []string {
	out := make([]string, len(recommendationCatalog))
	copy(out, recommendationCatalog)
	r := rand.New(rand.NewSource(util.SeedFromString(seed)))
	r.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// numberField reads a numeric field that may arrive as a JSON number or a
// numeric string. Absent, nil, and empty-string values fall back to def.
func numberField(in Input, key string, def float64) (float64, error) {
	raw, ok := in[key]
	if !ok || raw == nil {
		return def, nil
	}
	switch v := raw.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return def, nil
		}
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, ErrInvalidNumber)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("%s: %w", key, ErrInvalidNumber)
	}
}

// stringField reads a string field, falling back to def when the key is
// absent, empty, or not a string.
func stringField(in Input, key, def string) string {
	if v, ok := in[key].(string); ok && v != "" {
		return v
	}
	return def
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
