package template

// Token is a single {identifier} occurrence in template text.
type Token struct {
	// Name is the identifier between the braces.
	Name string
	// Start is the byte offset of the opening brace.
	Start int
	// End is the byte offset just past the closing brace.
	End int
}

// Scan finds every placeholder token in the text.
// A token starts at '{' and ends at the next '}'; the interior is the
// identifier. There is no nesting and no escape handling: a '{' seen
// before the closing brace restarts the token, an empty interior is not a
// token, and an unterminated '{' is literal text.
func Scan(text string) []Token {
	var tokens []Token
	start := -1
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '{':
			start = i
		case '}':
			if start >= 0 && i > start+1 {
				tokens = append(tokens, Token{
					Name:  text[start+1 : i],
					Start: start,
					End:   i + 1,
				})
			}
			start = -1
		}
	}
	return tokens
}

// Identifiers returns the unique identifiers from the tokens, preserving
// first-seen order.
func Identifiers(tokens []Token) []string {
	seen := make(map[string]bool, len(tokens))
	var ids []string
	for _, tok := range tokens {
		if !seen[tok.Name] {
			seen[tok.Name] = true
			ids = append(ids, tok.Name)
		}
	}
	return ids
}

// substitute replaces every token with its resolved value, literally and
// in a single pass. Substituted text is never re-scanned.
func substitute(text string, tokens []Token, values map[string]string) string {
	var out []byte
	last := 0
	for _, tok := range tokens {
		out = append(out, text[last:tok.Start]...)
		out = append(out, values[tok.Name]...)
		last = tok.End
	}
	out = append(out, text[last:]...)
	return string(out)
}
