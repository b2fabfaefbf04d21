package pattern

import (
	"fmt"
	"iter"
	"strconv"
	"strings"
)

// Template is the target URL split around its bracket expression.
// Prefix + token + Suffix reconstructs a concrete URL for one token.
type Template struct {
	Prefix string
	Suffix string
}

// URL substitutes a token into the template. Pure string composition;
// no network or filesystem access.
func (t Template) URL(token string) string {
	return t.Prefix + token + t.Suffix
}

// Expand pairs each expanded token with its materialized URL. Like
// Tokens, the returned iterator is lazy and restartable.
func (t Template) Expand(e Expression) iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for token := range e.Tokens() {
			if !yield(token, t.URL(token)) {
				return
			}
		}
	}
}

// String renders the template with a placeholder where tokens are
// substituted, for display in logs and summaries.
func (t Template) String() string {
	return t.Prefix + "[*]" + t.Suffix
}

// Parse locates the single bracket expression in targetURL and parses
// its interior into an Expression, returning it together with the
// Template of the surrounding text.
//
// Parse fails with ErrMalformedPattern when the URL has no bracket
// pair, more than one, nested or unbalanced brackets, or a component
// that is not a bare number or a hyphenated number pair. A range whose
// start exceeds its end fails with ErrReversedRange.
func Parse(targetURL string) (Expression, Template, error) {
	open := strings.IndexByte(targetURL, '[')
	if open < 0 {
		return nil, Template{}, fmt.Errorf("%w: no bracket expression in %q", ErrMalformedPattern, targetURL)
	}
	if firstClose := strings.IndexByte(targetURL, ']'); firstClose >= 0 && firstClose < open {
		return nil, Template{}, fmt.Errorf("%w: unbalanced brackets in %q", ErrMalformedPattern, targetURL)
	}

	rel := strings.IndexByte(targetURL[open+1:], ']')
	if rel < 0 {
		return nil, Template{}, fmt.Errorf("%w: unclosed bracket in %q", ErrMalformedPattern, targetURL)
	}
	closing := open + 1 + rel

	interior := targetURL[open+1 : closing]
	if strings.ContainsRune(interior, '[') {
		return nil, Template{}, fmt.Errorf("%w: nested brackets in %q", ErrMalformedPattern, targetURL)
	}
	if rest := targetURL[closing+1:]; strings.ContainsAny(rest, "[]") {
		return nil, Template{}, fmt.Errorf("%w: more than one bracket expression in %q", ErrMalformedPattern, targetURL)
	}

	if interior == "" {
		return nil, Template{}, fmt.Errorf("%w: empty bracket expression", ErrMalformedPattern)
	}

	var expr Expression
	for _, tok := range strings.Split(interior, ",") {
		c, err := parseComponent(tok)
		if err != nil {
			return nil, Template{}, err
		}
		expr = append(expr, c)
	}

	tmpl := Template{
		Prefix: targetURL[:open],
		Suffix: targetURL[closing+1:],
	}
	return expr, tmpl, nil
}

// parseComponent parses one comma-separated entry: either a bare number
// or two numbers joined by a single hyphen. Leading zeros are
// significant only for the component width, not the value.
func parseComponent(tok string) (Component, error) {
	switch strings.Count(tok, "-") {
	case 0:
		v, err := parseNumber(tok)
		if err != nil {
			return Component{}, fmt.Errorf("%w: bad component %q", ErrMalformedPattern, tok)
		}
		return Component{Kind: KindSingular, Start: v, End: v, Width: len(tok)}, nil

	case 1:
		left, right, _ := strings.Cut(tok, "-")
		start, err := parseNumber(left)
		if err != nil {
			return Component{}, fmt.Errorf("%w: bad range %q", ErrMalformedPattern, tok)
		}
		end, err := parseNumber(right)
		if err != nil {
			return Component{}, fmt.Errorf("%w: bad range %q", ErrMalformedPattern, tok)
		}
		if start > end {
			return Component{}, fmt.Errorf("%w: %q", ErrReversedRange, tok)
		}
		return Component{Kind: KindRange, Start: start, End: end, Width: len(left)}, nil

	default:
		return Component{}, fmt.Errorf("%w: bad component %q", ErrMalformedPattern, tok)
	}
}

// parseNumber parses a non-empty, digits-only decimal literal.
func parseNumber(s string) (int64, error) {
	if s == "" {
		return 0, fmt.Errorf("empty number")
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("non-digit character in %q", s)
		}
	}
	return strconv.ParseInt(s, 10, 64)
}
