package pattern

import (
	"errors"
	"slices"
	"testing"
)

func collect(e Expression) []string {
	var tokens []string
	for tok := range e.Tokens() {
		tokens = append(tokens, tok)
	}
	return tokens
}

func mustParse(t *testing.T, target string) (Expression, Template) {
	t.Helper()
	expr, tmpl, err := Parse(target)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", target, err)
	}
	return expr, tmpl
}

func TestParse_Components(t *testing.T) {
	tests := []struct {
		target string
		want   []Component
	}{
		{
			target: "http://example.com/a[1-100].jpg",
			want:   []Component{{Kind: KindRange, Start: 1, End: 100, Width: 1}},
		},
		{
			target: "http://example.com/b[2,4,8,10].jpg",
			want: []Component{
				{Kind: KindSingular, Start: 2, End: 2, Width: 1},
				{Kind: KindSingular, Start: 4, End: 4, Width: 1},
				{Kind: KindSingular, Start: 8, End: 8, Width: 1},
				{Kind: KindSingular, Start: 10, End: 10, Width: 2},
			},
		},
		{
			target: "http://example.com/[0001-0025].jpg",
			want:   []Component{{Kind: KindRange, Start: 1, End: 25, Width: 4}},
		},
		{
			target: "http://example.com/c[1,2-5,7].jpg",
			want: []Component{
				{Kind: KindSingular, Start: 1, End: 1, Width: 1},
				{Kind: KindRange, Start: 2, End: 5, Width: 1},
				{Kind: KindSingular, Start: 7, End: 7, Width: 1},
			},
		},
		{
			// Width comes from the starting literal of each component.
			target: "http://example.com/[007,08-123].jpg",
			want: []Component{
				{Kind: KindSingular, Start: 7, End: 7, Width: 3},
				{Kind: KindRange, Start: 8, End: 123, Width: 2},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			expr, _ := mustParse(t, tt.target)
			if !slices.Equal(expr, Expression(tt.want)) {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.target, expr, tt.want)
			}
		})
	}
}

func TestParse_Template(t *testing.T) {
	_, tmpl := mustParse(t, "http://example.com/a[1-3].jpg")

	if tmpl.Prefix != "http://example.com/a" {
		t.Errorf("Prefix = %q", tmpl.Prefix)
	}
	if tmpl.Suffix != ".jpg" {
		t.Errorf("Suffix = %q", tmpl.Suffix)
	}
	if got := tmpl.URL("2"); got != "http://example.com/a2.jpg" {
		t.Errorf("URL(\"2\") = %q", got)
	}
	if got := tmpl.String(); got != "http://example.com/a[*].jpg" {
		t.Errorf("String() = %q", got)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		wantErr error
	}{
		{"no brackets", "http://example.com/a.jpg", ErrMalformedPattern},
		{"empty expression", "http://example.com/a[].jpg", ErrMalformedPattern},
		{"unclosed bracket", "http://example.com/a[1-3.jpg", ErrMalformedPattern},
		{"close before open", "http://example.com/a]1-3[.jpg", ErrMalformedPattern},
		{"two groups", "http://example.com/a[1-3]b[4-6].jpg", ErrMalformedPattern},
		{"nested brackets", "http://example.com/a[1[2]3].jpg", ErrMalformedPattern},
		{"letters", "http://example.com/a[a-3].jpg", ErrMalformedPattern},
		{"double hyphen", "http://example.com/a[1-2-3].jpg", ErrMalformedPattern},
		{"trailing comma", "http://example.com/a[1,2,].jpg", ErrMalformedPattern},
		{"spaces", "http://example.com/a[1, 2].jpg", ErrMalformedPattern},
		{"missing range end", "http://example.com/a[1-].jpg", ErrMalformedPattern},
		{"missing range start", "http://example.com/a[-3].jpg", ErrMalformedPattern},
		{"reversed range", "http://example.com/a[5-2].jpg", ErrReversedRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Parse(tt.target)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want error", tt.target)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Parse(%q) error = %v, want %v", tt.target, err, tt.wantErr)
			}
		})
	}
}

func TestTokens_PaddedRange(t *testing.T) {
	expr, _ := mustParse(t, "http://example.com/[0001-0025].jpg")

	tokens := collect(expr)
	if len(tokens) != 25 {
		t.Fatalf("got %d tokens, want 25", len(tokens))
	}
	if tokens[0] != "0001" {
		t.Errorf("first token = %q, want %q", tokens[0], "0001")
	}
	if tokens[24] != "0025" {
		t.Errorf("last token = %q, want %q", tokens[24], "0025")
	}
	for _, tok := range tokens {
		if len(tok) != 4 {
			t.Errorf("token %q is not 4 characters wide", tok)
		}
	}
}

func TestTokens_UnpaddedRange(t *testing.T) {
	expr, _ := mustParse(t, "http://example.com/a[1-100].jpg")

	tokens := collect(expr)
	if len(tokens) != 100 {
		t.Fatalf("got %d tokens, want 100", len(tokens))
	}
	if tokens[0] != "1" || tokens[8] != "9" || tokens[9] != "10" || tokens[99] != "100" {
		t.Errorf("tokens not in natural unpadded form: %q %q %q %q",
			tokens[0], tokens[8], tokens[9], tokens[99])
	}
}

func TestTokens_MixedSingulars(t *testing.T) {
	expr, _ := mustParse(t, "http://example.com/b[2,4,8,10].jpg")

	want := []string{"2", "4", "8", "10"}
	if got := collect(expr); !slices.Equal(got, want) {
		t.Errorf("tokens = %v, want %v", got, want)
	}
}

func TestTokens_MixedOrderPreserved(t *testing.T) {
	expr, _ := mustParse(t, "http://example.com/c[1,2-5,7,10-13,22-25].jpg")

	want := []string{"1", "2", "3", "4", "5", "7", "10", "11", "12", "13", "22", "23", "24", "25"}
	if got := collect(expr); !slices.Equal(got, want) {
		t.Errorf("tokens = %v, want %v", got, want)
	}
}

func TestTokens_OverlapNotDeduplicated(t *testing.T) {
	expr, _ := mustParse(t, "http://example.com/[1-5,3-7].jpg")

	want := []string{"1", "2", "3", "4", "5", "3", "4", "5", "6", "7"}
	if got := collect(expr); !slices.Equal(got, want) {
		t.Errorf("tokens = %v, want %v", got, want)
	}
}

func TestTokens_PaddingNeverTruncates(t *testing.T) {
	// Width 2 from "08"; 123 keeps its natural three digits.
	expr, _ := mustParse(t, "http://example.com/[08-11,123].jpg")

	want := []string{"08", "09", "10", "11", "123"}
	if got := collect(expr); !slices.Equal(got, want) {
		t.Errorf("tokens = %v, want %v", got, want)
	}
}

func TestTokens_Restartable(t *testing.T) {
	expr, _ := mustParse(t, "http://example.com/a[1,3-5].jpg")

	first := collect(expr)
	second := collect(expr)
	if !slices.Equal(first, second) {
		t.Errorf("re-iteration differs: %v vs %v", first, second)
	}
}

func TestTokens_EarlyStop(t *testing.T) {
	expr, _ := mustParse(t, "http://example.com/a[1-100].jpg")

	var got []string
	for tok := range expr.Tokens() {
		got = append(got, tok)
		if len(got) == 3 {
			break
		}
	}
	if want := []string{"1", "2", "3"}; !slices.Equal(got, want) {
		t.Errorf("tokens = %v, want %v", got, want)
	}
}

func TestCount(t *testing.T) {
	tests := []struct {
		target string
		want   uint64
	}{
		{"http://example.com/a[7].jpg", 1},
		{"http://example.com/a[1-100].jpg", 100},
		{"http://example.com/b[2,4,8,10].jpg", 4},
		{"http://example.com/c[1,2-5,7,10-13,22-25].jpg", 14},
	}

	for _, tt := range tests {
		expr, _ := mustParse(t, tt.target)
		if got := expr.Count(); got != tt.want {
			t.Errorf("Count(%q) = %d, want %d", tt.target, got, tt.want)
		}
	}
}

func TestValidate_Ceiling(t *testing.T) {
	expr, _ := mustParse(t, "http://example.com/a[0-999999999].jpg")

	if err := expr.Validate(100000); !errors.Is(err, ErrTooManyItems) {
		t.Errorf("Validate = %v, want ErrTooManyItems", err)
	}

	small, _ := mustParse(t, "http://example.com/a[1-100].jpg")
	if err := small.Validate(100000); err != nil {
		t.Errorf("Validate of small expression failed: %v", err)
	}
	if err := small.Validate(99); !errors.Is(err, ErrTooManyItems) {
		t.Errorf("Validate just under the count = %v, want ErrTooManyItems", err)
	}
	if err := small.Validate(100); err != nil {
		t.Errorf("Validate at exactly the count failed: %v", err)
	}
}

func TestExpand_Pairs(t *testing.T) {
	expr, tmpl := mustParse(t, "http://example.com/a[1-3].jpg")

	var tokens, urls []string
	for tok, url := range tmpl.Expand(expr) {
		tokens = append(tokens, tok)
		urls = append(urls, url)
	}

	wantURLs := []string{
		"http://example.com/a1.jpg",
		"http://example.com/a2.jpg",
		"http://example.com/a3.jpg",
	}
	if !slices.Equal(tokens, []string{"1", "2", "3"}) {
		t.Errorf("tokens = %v", tokens)
	}
	if !slices.Equal(urls, wantURLs) {
		t.Errorf("urls = %v, want %v", urls, wantURLs)
	}
}

func TestParse_LeadingZerosValue(t *testing.T) {
	expr, _ := mustParse(t, "http://example.com/a[0007].jpg")

	c := expr[0]
	if c.Start != 7 || c.Width != 4 {
		t.Errorf("component = %+v, want value 7 width 4", c)
	}
	if got := collect(expr); !slices.Equal(got, []string{"0007"}) {
		t.Errorf("tokens = %v, want [0007]", got)
	}
}
