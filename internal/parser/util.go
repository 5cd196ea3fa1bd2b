package parser

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/aidanlsb/rolo/internal/model"
	"github.com/aidanlsb/rolo/internal/syntax"
)

// ErrInvalidIndex is the cause for any index that is not a positive integer.
var ErrInvalidIndex = errors.New("index is not a non-zero unsigned integer")

// Ranges larger than this are rejected.
const maxRangeSize = 1000

var whitespace = regexp.MustCompile(`\s+`)

// parseIndex parses one positive 1-based index.
func parseIndex(s string) (model.Index, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil {
		return model.Index{}, fmt.Errorf("%w: %q", ErrInvalidIndex, s)
	}
	idx, err := model.IndexFromOneBased(n)
	if err != nil {
		return model.Index{}, fmt.Errorf("%w: %d", ErrInvalidIndex, n)
	}
	return idx, nil
}

// parseIndexes parses indexes separated by commas and/or whitespace.
// Ranges such as "2-4" expand in order; repeated indexes keep their first
// position.
func parseIndexes(input string) ([]model.Index, error) {
	input = whitespace.ReplaceAllString(strings.TrimSpace(input), ",")
	if input == "" {
		return nil, fmt.Errorf("%w: empty input", ErrInvalidIndex)
	}

	var result []model.Index
	seen := make(map[int]bool)
	add := func(n int) error {
		idx, err := model.IndexFromOneBased(n)
		if err != nil {
			return fmt.Errorf("%w: %d", ErrInvalidIndex, n)
		}
		if !seen[n] {
			seen[n] = true
			result = append(result, idx)
		}
		return nil
	}

	for _, part := range strings.Split(input, ",") {
		if part == "" {
			continue
		}
		if strings.Contains(part, "-") {
			start, end, err := parseRange(part)
			if err != nil {
				return nil, err
			}
			for n := start; n <= end; n++ {
				if err := add(n); err != nil {
					return nil, err
				}
			}
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidIndex, part)
		}
		if err := add(n); err != nil {
			return nil, err
		}
	}

	if len(result) == 0 {
		return nil, fmt.Errorf("%w: no indexes found", ErrInvalidIndex)
	}
	return result, nil
}

// parseRange parses "2-4". Negative numbers are rejected rather than read
// as ranges.
func parseRange(s string) (int, int, error) {
	lo, hi, ok := strings.Cut(s, "-")
	if !ok || lo == "" || hi == "" {
		return 0, 0, fmt.Errorf("%w: invalid range %q", ErrInvalidIndex, s)
	}
	start, err := strconv.Atoi(lo)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: invalid range start %q", ErrInvalidIndex, lo)
	}
	end, err := strconv.Atoi(hi)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: invalid range end %q", ErrInvalidIndex, hi)
	}
	if start < 1 {
		return 0, 0, fmt.Errorf("%w: range start %d must be positive", ErrInvalidIndex, start)
	}
	if end < start {
		return 0, 0, fmt.Errorf("%w: range end %d must be >= start %d", ErrInvalidIndex, end, start)
	}
	if end-start+1 > maxRangeSize {
		return 0, 0, fmt.Errorf("%w: range %d-%d is too large (max %d)", ErrInvalidIndex, start, end, maxRangeSize)
	}
	return start, end, nil
}

// parseTags validates each tag value. An empty value is rejected; callers
// that allow clearing check for it first.
func parseTags(values []string) ([]model.Tag, error) {
	tags := make([]model.Tag, 0, len(values))
	for _, v := range values {
		tag, err := model.NewTag(v)
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

// splitKeywords splits each value on "|", keeping empty pieces, and trims
// every piece.
func splitKeywords(values []string) []string {
	var out []string
	for _, v := range values {
		for _, piece := range strings.Split(v, syntax.KeywordSeparator) {
			out = append(out, strings.TrimSpace(piece))
		}
	}
	return out
}

// splitWords splits each value on runs of whitespace. An empty value yields
// one empty word.
func splitWords(values []string) []string {
	var out []string
	for _, v := range values {
		out = append(out, whitespace.Split(v, -1)...)
	}
	return out
}

func allMatch(keywords []string, pattern *regexp.Regexp) bool {
	for _, kw := range keywords {
		if !pattern.MatchString(kw) {
			return false
		}
	}
	return true
}
