package utils

import (
	"encoding/json"
	"fmt"
	"reflect"
	"regexp"
	"strings"
)

// ParseError reports that the candidate located by a strategy was not valid
// JSON for the requested target.
type ParseError struct {
	Strategy string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse model response (%s): %v", e.Strategy, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ExtractionStrategy locates a JSON candidate inside free text.
type ExtractionStrategy interface {
	Name() string
	Locate(text string) (string, bool)
}

var fencedJSON = regexp.MustCompile("(?i)```json\\s*([\\s\\S]*?)\\s*```")

// FencedBlockStrategy takes the body of the first ```json fenced block.
type FencedBlockStrategy struct{}

func (FencedBlockStrategy) Name() string { return "fenced-block" }

func (FencedBlockStrategy) Locate(text string) (string, bool) {
	m := fencedJSON.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// MultiCandidateStrategy is a strategy that can offer several candidates.
// The extractor decodes them in order and keeps the first that fits the
// target.
type MultiCandidateStrategy interface {
	ExtractionStrategy
	Candidates(text string) []string
}

// Bounds on how many spans a single text can produce and how many opening
// delimiters are scanned for them.
const (
	maxSpanCandidates = 16
	maxSpanOpeners    = 64
)

// DelimitedSpanStrategy takes balanced {...} and [...] spans in the order
// they open. Prose such as "プラン [概要]" before the payload yields a
// candidate that fails to decode, and the next span is tried.
type DelimitedSpanStrategy struct{}

func (DelimitedSpanStrategy) Name() string { return "delimited-span" }

func (d DelimitedSpanStrategy) Locate(text string) (string, bool) {
	candidates := d.Candidates(text)
	if len(candidates) == 0 {
		return "", false
	}
	return candidates[0], true
}

func (DelimitedSpanStrategy) Candidates(text string) []string {
	var out []string
	openers := 0
	for start := 0; start < len(text) && len(out) < maxSpanCandidates && openers < maxSpanOpeners; start++ {
		open := text[start]
		var closer byte
		switch open {
		case '{':
			closer = '}'
		case '[':
			closer = ']'
		default:
			continue
		}
		openers++
		if end := findMatchingDelimiter(text, start, open, closer); end != -1 {
			out = append(out, text[start:end+1])
		}
	}
	return out
}

// WholeTextStrategy hands the trimmed text over unchanged.
type WholeTextStrategy struct{}

func (WholeTextStrategy) Name() string { return "whole-text" }

func (WholeTextStrategy) Locate(text string) (string, bool) {
	return strings.TrimSpace(text), true
}

// findMatchingDelimiter returns the index of the delimiter closing the one at
// start, skipping anything inside string literals. -1 when unbalanced.
func findMatchingDelimiter(s string, start int, open, closer byte) int {
	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		char := s[i]

		if escaped {
			escaped = false
			continue
		}
		if char == '\\' && inString {
			escaped = true
			continue
		}
		if char == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch char {
		case open:
			depth++
		case closer:
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// JSONExtractor tries its strategies in order. The first one that locates a
// candidate decides the outcome; later strategies are not consulted when
// decoding that candidate fails.
type JSONExtractor struct {
	strategies []ExtractionStrategy
}

func NewJSONExtractor(strategies ...ExtractionStrategy) *JSONExtractor {
	if len(strategies) == 0 {
		strategies = DefaultStrategies()
	}
	return &JSONExtractor{strategies: strategies}
}

func DefaultStrategies() []ExtractionStrategy {
	return []ExtractionStrategy{FencedBlockStrategy{}, DelimitedSpanStrategy{}, WholeTextStrategy{}}
}

func (e *JSONExtractor) Strategies() []ExtractionStrategy {
	return append([]ExtractionStrategy(nil), e.strategies...)
}

// Extract decodes the JSON found in text into target.
func (e *JSONExtractor) Extract(text string, target any) error {
	for _, s := range e.strategies {
		if multi, ok := s.(MultiCandidateStrategy); ok {
			candidates := multi.Candidates(text)
			if len(candidates) == 0 {
				continue
			}
			return decodeFirst(s.Name(), candidates, target)
		}

		candidate, ok := s.Locate(text)
		if !ok {
			continue
		}
		if err := json.Unmarshal([]byte(candidate), target); err != nil {
			return &ParseError{Strategy: s.Name(), Err: err}
		}
		return nil
	}
	return &ParseError{Strategy: "none", Err: fmt.Errorf("no JSON candidate in %d bytes of text", len(text))}
}

// decodeFirst decodes each candidate into a fresh value of target's type and
// stores the first success. The error of the first candidate is reported
// when none fits.
func decodeFirst(strategy string, candidates []string, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return &ParseError{Strategy: strategy, Err: fmt.Errorf("target must be a non-nil pointer, got %T", target)}
	}

	var firstErr error
	for _, candidate := range candidates {
		fresh := reflect.New(rv.Elem().Type())
		err := json.Unmarshal([]byte(candidate), fresh.Interface())
		if err == nil {
			rv.Elem().Set(fresh.Elem())
			return nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return &ParseError{Strategy: strategy, Err: firstErr}
}
