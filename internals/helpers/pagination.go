package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type PageParams struct {
	Page    int
	PerPage int
	Offset  int
	Sort    string
}

// ParsePage reads page/per_page (limit/offset accepted as fallback) and a sort key.
// sortWhitelist maps the query value to an ORDER BY expression; the first entry
// added under "" is the default order.
func ParsePage(c *fiber.Ctx, defaultOrder string, sortWhitelist map[string]string) PageParams {
	page := clampInt(parseIntDefault(c.Query("page"), 1), 1, 1_000_000)
	perPage := clampInt(parseIntDefault(c.Query("per_page"), 20), 1, 200)

	if limStr := strings.TrimSpace(c.Query("limit")); limStr != "" {
		if lim := parseIntDefault(limStr, perPage); lim > 0 {
			perPage = clampInt(lim, 1, 200)
		}
	}
	if offStr := strings.TrimSpace(c.Query("offset")); offStr != "" {
		if off := parseIntDefault(offStr, 0); off >= 0 {
			page = off/perPage + 1
		}
	}

	order := defaultOrder
	if s := strings.ToLower(strings.TrimSpace(c.Query("sort"))); s != "" {
		if o, ok := sortWhitelist[s]; ok {
			order = o
		}
	}

	return PageParams{
		Page:    page,
		PerPage: perPage,
		Offset:  (page - 1) * perPage,
		Sort:    order,
	}
}

func parseIntDefault(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return n
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SplitCSV splits a comma separated query value, dropping empties.
func SplitCSV(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
