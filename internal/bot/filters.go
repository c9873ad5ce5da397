package bot

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/chen-yiru/Vocabulary-review/internal/models"
)

// listArgs is the parsed form of "/list key=value ...". An empty value
// clears that filter.
type listArgs struct {
	reset   bool
	patches []func(*models.FilterSpec)
	tags    []string
	hasTags bool
	size    int
}

func (a listArgs) changesFilter() bool {
	return len(a.patches) > 0 || a.hasTags
}

func parseListArgs(args []string) (listArgs, error) {
	var out listArgs

	for _, arg := range args {
		if strings.EqualFold(arg, "reset") {
			out.reset = true
			continue
		}

		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			return listArgs{}, fmt.Errorf("expected key=value, got %q", arg)
		}
		key = strings.ToLower(key)

		switch key {
		case "search":
			out.patches = append(out.patches, func(f *models.FilterSpec) { f.Search = value })
		case "letter":
			if len([]rune(value)) > 1 {
				return listArgs{}, fmt.Errorf("letter must be a single character")
			}
			out.patches = append(out.patches, func(f *models.FilterSpec) { f.Letter = value })
		case "tag", "tags":
			out.hasTags = true
			out.tags = nil
			for _, name := range strings.Split(value, ",") {
				if name = strings.TrimSpace(name); name != "" {
					out.tags = append(out.tags, name)
				}
			}
		case "hard":
			hard, err := parseOptionalBool(value)
			if err != nil {
				return listArgs{}, fmt.Errorf("hard: %w", err)
			}
			out.patches = append(out.patches, func(f *models.FilterSpec) { f.IsHard = hard })
		case "fam":
			lo, hi, err := parseRange(value)
			if err != nil {
				return listArgs{}, fmt.Errorf("fam: %w", err)
			}
			out.patches = append(out.patches, func(f *models.FilterSpec) {
				f.FamiliarityMin, f.FamiliarityMax = lo, hi
			})
		case "created_after", "created_before", "reviewed_after", "reviewed_before", "due_after", "due_before":
			date, err := parseOptionalDate(value)
			if err != nil {
				return listArgs{}, fmt.Errorf("%s: %w", key, err)
			}
			out.patches = append(out.patches, datePatch(key, date))
		case "size":
			size, err := strconv.Atoi(value)
			if err != nil || size <= 0 || size > 100 {
				return listArgs{}, fmt.Errorf("size must be between 1 and 100")
			}
			out.size = size
		default:
			return listArgs{}, fmt.Errorf("unknown filter %q", key)
		}
	}

	return out, nil
}

func datePatch(key string, date *time.Time) func(*models.FilterSpec) {
	return func(f *models.FilterSpec) {
		switch key {
		case "created_after":
			f.CreatedAfter = date
		case "created_before":
			f.CreatedBefore = date
		case "reviewed_after":
			f.LastReviewAfter = date
		case "reviewed_before":
			f.LastReviewBefore = date
		case "due_after":
			f.DueAfter = date
		case "due_before":
			f.DueBefore = date
		}
	}
}

func parseOptionalBool(value string) (*bool, error) {
	switch strings.ToLower(value) {
	case "", "any":
		return nil, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return nil, fmt.Errorf("expected true, false or any")
	}
	return &b, nil
}

// parseRange accepts "n", "lo-hi", "lo-" and "-hi".
func parseRange(value string) (*int, *int, error) {
	if value == "" {
		return nil, nil, nil
	}

	loStr, hiStr, isRange := strings.Cut(value, "-")
	if !isRange {
		hiStr = loStr
	}

	lo, err := parseOptionalInt(loStr)
	if err != nil {
		return nil, nil, err
	}
	hi, err := parseOptionalInt(hiStr)
	if err != nil {
		return nil, nil, err
	}
	return lo, hi, nil
}

func parseOptionalInt(s string) (*int, error) {
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > 5 {
		return nil, fmt.Errorf("familiarity must be between 1 and 5")
	}
	return &n, nil
}

func parseOptionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	d, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return nil, fmt.Errorf("expected YYYY-MM-DD")
	}
	return &d, nil
}
