// Package keyscript parses textual keystroke scripts for headless runs.
//
// A script is whitespace-separated tokens. A token wrapped in angle brackets
// names one special key (<enter>, <esc>, <bs>, <tab>, <s-tab>, <space>,
// <lt>, <gt>, <c-c>); any other token is typed rune by rune. Lines starting
// with # are comments.
package keyscript

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/hylla/tado/internal/domain"
)

// ErrUnknownToken reports a bracketed token with no known key.
var ErrUnknownToken = errors.New("unknown key token")

// namedTokens maps bracketed names to keys.
var namedTokens = map[string]domain.Key{
	"enter":     domain.NamedKey(domain.KeyEnter),
	"cr":        domain.NamedKey(domain.KeyEnter),
	"esc":       domain.NamedKey(domain.KeyEscape),
	"escape":    domain.NamedKey(domain.KeyEscape),
	"bs":        domain.NamedKey(domain.KeyBackspace),
	"backspace": domain.NamedKey(domain.KeyBackspace),
	"tab":       domain.NamedKey(domain.KeyTab),
	"s-tab":     domain.NamedKey(domain.KeyShiftTab),
	"shift-tab": domain.NamedKey(domain.KeyShiftTab),
	"space":     domain.RuneKey(' '),
	"lt":        domain.RuneKey('<'),
	"gt":        domain.RuneKey('>'),
	"c-c":       domain.NamedKey(domain.KeyInterrupt),
}

// Parse reads a script and returns its keys in order.
func Parse(r io.Reader) ([]domain.Key, error) {
	scanner := bufio.NewScanner(r)
	keys := make([]domain.Key, 0, 32)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		for _, token := range strings.Fields(line) {
			parsed, err := parseToken(token)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			keys = append(keys, parsed...)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return keys, nil
}

// ParseString parses an in-memory script.
func ParseString(script string) ([]domain.Key, error) {
	return Parse(strings.NewReader(script))
}

// parseToken expands one token into keys.
func parseToken(token string) ([]domain.Key, error) {
	if len(token) > 2 && strings.HasPrefix(token, "<") && strings.HasSuffix(token, ">") {
		name := strings.ToLower(token[1 : len(token)-1])
		k, ok := namedTokens[name]
		if !ok {
			return nil, fmt.Errorf("%w %q", ErrUnknownToken, token)
		}
		return []domain.Key{k}, nil
	}
	out := make([]domain.Key, 0, len(token))
	for _, r := range token {
		out = append(out, domain.RuneKey(r))
	}
	return out, nil
}

// Source replays parsed keys and then reports io.EOF.
type Source struct {
	keys []domain.Key
	next int
}

// NewSource constructs a source over keys.
func NewSource(keys []domain.Key) *Source {
	return &Source{keys: append([]domain.Key(nil), keys...)}
}

// ReadKey returns the next key or io.EOF once exhausted.
func (s *Source) ReadKey() (domain.Key, error) {
	if s.next >= len(s.keys) {
		return domain.Key{}, io.EOF
	}
	k := s.keys[s.next]
	s.next++
	return k, nil
}

// Remaining returns the number of keys not yet read.
func (s *Source) Remaining() int {
	return len(s.keys) - s.next
}
