// Package pattern implements the bracket-expression grammar that seqget
// uses to describe sequentially numbered URLs.
//
// A target URL contains exactly one bracket expression:
//
//	http://www.example.com/a[1-100].jpg
//	http://www.example.com/b[2,4,8,10].jpg
//	http://www.example.com/c[1,2-5,7,10-13,22-25].jpg
//	http://www.example.com/[0001-0025].jpg
//
// The expression is a comma-separated list of components. Each component
// is either a single non-negative integer or an inclusive range written
// as two integers joined by a hyphen. Singulars and ranges can be mixed
// freely and expand in the order written.
//
// # Zero padding
//
// The literal width of a number decides how its expansions are padded:
// "0001-0025" expands to "0001" through "0025" because the starting
// literal is four characters wide, while "1-100" expands to "1" through
// "100" unpadded. Padding widens, never truncates: values whose natural
// decimal form is already at least as wide as the literal are emitted
// as written.
//
// # Usage
//
//	expr, tmpl, err := pattern.Parse("http://example.com/a[1-3].jpg")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for token, url := range tmpl.Expand(expr) {
//	    fmt.Println(token, url)
//	}
//	// 1 http://example.com/a1.jpg
//	// 2 http://example.com/a2.jpg
//	// 3 http://example.com/a3.jpg
//
// Expansion is lazy: Tokens and Expand return restartable iterators and
// never materialize the whole sequence. Call Validate before iterating
// to bound the total number of items a pattern may produce.
package pattern
