package usecases

import (
	"context"
	"errors"
	"math"
	"regexp"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/araddon/dateparse"
	"github.com/google/uuid"

	"bullion/internal/model"
)

var (
	ErrMalformedPayload = errors.New("malformed payload")
	ErrPipelinePanic    = errors.New("pipeline panicked")
)

// Pipeline fetches one provider's quotes and derives its price set.
type Pipeline interface {
	Region() model.Region
	Run(ctx context.Context, cycleID uuid.UUID) (*model.Report, error)
}

var (
	ordinalSuffix = regexp.MustCompile(`(\d)(st|nd|rd|th)\b`)
	dayYearComma  = regexp.MustCompile(`^([A-Za-z]+ \d{1,2}) (\d{4}),`)
)

// parseAsOf parses provider timestamps like "Jan 30th 2026, 10:36:17 am NY"
// or RFC 3339. It returns the zero time when the format is unknown.
func parseAsOf(raw string) time.Time {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return time.Time{}
	}

	loc := time.UTC
	if strings.HasSuffix(cleaned, " NY") {
		cleaned = strings.TrimSuffix(cleaned, " NY")
		if ny, err := time.LoadLocation("America/New_York"); err == nil {
			loc = ny
		}
	}

	cleaned = ordinalSuffix.ReplaceAllString(cleaned, "$1")
	cleaned = dayYearComma.ReplaceAllString(cleaned, "$1, $2")
	cleaned = strings.NewReplacer(" am", " AM", " pm", " PM").Replace(cleaned)

	parsed, err := dateparse.ParseIn(cleaned, loc)
	if err != nil {
		return time.Time{}
	}

	return parsed
}

// positive reports whether a provider price is usable. NaN fails every comparison.
func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

func ptr(v float64) *float64 {
	return &v
}
