package export

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// uz digit grouping (space-grouped, no decimals on sums)
var uzPrinter = message.NewPrinter(language.Uzbek)

// FormatCell renders one value under a column format. nil always renders as an
// empty string; unparseable numeric input coerces to 0; an unparseable date
// falls back to the raw string form of the input.
func FormatCell(v any, f Format) string {
	if v == nil {
		return ""
	}
	switch f {
	case FormatDate:
		return formatDate(v)
	case FormatCurrency:
		return formatCurrency(v)
	case FormatPercentage:
		return fmt.Sprintf("%.1f%%", coerceFloat(v))
	case FormatNumber:
		return strconv.FormatFloat(coerceFloat(v), 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"02.01.2006",
}

func formatDate(v any) string {
	const out = "02.01.2006"
	switch t := v.(type) {
	case time.Time:
		return t.Format(out)
	case *time.Time:
		if t == nil {
			return ""
		}
		return t.Format(out)
	case string:
		s := strings.TrimSpace(t)
		for _, layout := range dateLayouts {
			if parsed, err := time.Parse(layout, s); err == nil {
				return parsed.Format(out)
			}
		}
		return t
	default:
		return fmt.Sprint(v)
	}
}

func formatCurrency(v any) string {
	n := int64(math.Round(coerceFloat(v)))
	return uzPrinter.Sprintf("%d", n) + " UZS"
}

func coerceFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case uint:
		return float64(n)
	case uint64:
		return float64(n)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
