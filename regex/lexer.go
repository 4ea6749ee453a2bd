package regex

// lexeme tags.
type lexKind int

const (
	lexLiteral lexKind = iota
	lexClass           // a pre-resolved set of bytes, from [...]
	lexUnion           // |
	lexStar            // *
	lexPlus            // +
	lexQuestion        // ?
	lexLParen          // (
	lexRParen          // )
	lexLBrace          // { interval open, consumed by expandIntervals
	lexRBrace          // }
	lexComma           // , (only meaningful inside { })
	lexDigits          // a run of digits (only meaningful inside { })
	concatOp           // synthetic explicit-concatenation operator, inserted by insertExplicitConcat
)

// lexeme is one token of a pattern's infix form. For lexLiteral, Byte holds
// the literal value. For lexClass, Set holds the resolved byte set. For
// lexDigits, Digits holds the run of decimal digits as written. Pos is the
// rune offset in the source pattern this lexeme started at, for error
// reporting.
type lexeme struct {
	Kind   lexKind
	Byte   byte
	Set    *byteSet
	Digits string
	Pos    int
}

// tokenize scans pattern into a flat lexeme stream. Character classes are
// fully resolved to byteSets by this stage; interval braces are left as
// raw lexemes for expandIntervals to consume afterward, since their
// semantics depend on the atom or group immediately to their left.
func tokenize(token, pattern string) ([]lexeme, error) {
	var out []lexeme
	runes := []rune(pattern)
	i := 0
	for i < len(runes) {
		r := runes[i]
		switch r {
		case '|':
			out = append(out, lexeme{Kind: lexUnion, Pos: i})
			i++
		case '*':
			out = append(out, lexeme{Kind: lexStar, Pos: i})
			i++
		case '+':
			out = append(out, lexeme{Kind: lexPlus, Pos: i})
			i++
		case '?':
			out = append(out, lexeme{Kind: lexQuestion, Pos: i})
			i++
		case '.':
			// '.' is the explicit concatenation operator (spec rule 7),
			// not a wildcard: it is interchangeable with implicit
			// concatenation, so it is emitted as concatOp directly.
			out = append(out, lexeme{Kind: concatOp, Pos: i})
			i++
		case '(':
			out = append(out, lexeme{Kind: lexLParen, Pos: i})
			i++
		case ')':
			out = append(out, lexeme{Kind: lexRParen, Pos: i})
			i++
		case '{':
			out = append(out, lexeme{Kind: lexLBrace, Pos: i})
			i++
		case '}':
			out = append(out, lexeme{Kind: lexRBrace, Pos: i})
			i++
		case ',':
			out = append(out, lexeme{Kind: lexComma, Pos: i})
			i++
		case '[':
			set, consumed, err := scanClass(token, runes, i)
			if err != nil {
				return nil, err
			}
			out = append(out, lexeme{Kind: lexClass, Set: set, Pos: i})
			i += consumed
		case '\\':
			b, consumed, err := scanEscape(token, runes, i)
			if err != nil {
				return nil, err
			}
			out = append(out, lexeme{Kind: lexLiteral, Byte: b, Pos: i})
			i += consumed
		default:
			if r >= '0' && r <= '9' {
				start := i
				for i < len(runes) && runes[i] >= '0' && runes[i] <= '9' {
					i++
				}
				// A digit run is only meaningful as interval content; in
				// any other position it's a sequence of literal digits,
				// which expandIntervals emits as literal lexemes.
				out = append(out, lexeme{Kind: lexDigits, Digits: string(runes[start:i]), Pos: start})
				continue
			}
			if r > 0x7e || r < 0x20 {
				return nil, newError(token, DisallowedCharacter, i, "character %q outside the supported ASCII range", r)
			}
			out = append(out, lexeme{Kind: lexLiteral, Byte: byte(r), Pos: i})
			i++
		}
	}
	return out, nil
}

// scanEscape resolves a single backslash escape at runes[i] (which must be
// '\\') into a literal byte. It returns the number of runes consumed.
func scanEscape(token string, runes []rune, i int) (byte, int, error) {
	if i+1 >= len(runes) {
		return 0, 0, newError(token, DanglingEscape, i, "trailing backslash")
	}
	r := runes[i+1]
	if b, ok := escapeLiteral(r); ok {
		return b, 2, nil
	}
	return 0, 0, newError(token, UnknownEscape, i, "unrecognized escape sequence \\%c", r)
}

// escapeLiteral maps the character following a backslash to its literal
// byte value, for the fixed set of escapes this package recognizes: the
// operator/grouping metacharacters, '^' (for an unambiguous literal caret),
// the interval metacharacters this package adds on top of the original
// operator set, a literal backslash, and the six whitespace escapes. Any
// other escape (e.g. \d, \w, \a) is unrecognized.
func escapeLiteral(r rune) (byte, bool) {
	switch r {
	case '\\', '|', '?', '.', '*', '+', '(', ')', '[', ']', '^', '{', '}', ',':
		return byte(r), true
	case 's':
		return ' ', true
	case 't':
		return '\t', true
	case 'n':
		return '\n', true
	case 'r':
		return '\r', true
	case 'f':
		return '\f', true
	case 'v':
		return '\v', true
	}
	return 0, false
}
