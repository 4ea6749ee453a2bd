package regex

import "strconv"

// expandIntervals rewrites counted-repetition lexemes {n}, {n,} and
// {n,m} into equivalent concatenation/union/star/plus/question structure,
// the same rewrite the interval construction in the original grammar
// compiler performs before handing off to the shunting-yard. The atom or
// group immediately preceding '{' is the operand being repeated. A digit
// run outside an interval is turned into one literal lexeme per digit.
//
// {n}    -> atom repeated n times (concatenation)
// {n,}   -> atom{n-1} atom+
// {n,m}  -> atom{n} (atom?){m-n}     (n <= m)
func expandIntervals(token string, lexemes []lexeme) ([]lexeme, error) {
	var out []lexeme
	for i := 0; i < len(lexemes); i++ {
		lx := lexemes[i]
		if lx.Kind == lexDigits {
			for k := 0; k < len(lx.Digits); k++ {
				out = append(out, lexeme{Kind: lexLiteral, Byte: lx.Digits[k], Pos: lx.Pos + k})
			}
			continue
		}
		if lx.Kind != lexLBrace {
			out = append(out, lx)
			continue
		}
		operand, opStart, err := precedingOperand(token, out)
		if err != nil {
			return nil, err
		}
		lo, hi, hasHi, consumed, err := scanInterval(token, lexemes, i)
		if err != nil {
			return nil, err
		}
		i += consumed - 1
		rewritten, err := repeatOperand(token, lx.Pos, operand, lo, hi, hasHi)
		if err != nil {
			return nil, err
		}
		out = append(out[:opStart], rewritten...)
	}
	return out, nil
}

// precedingOperand finds the lexeme range of the single atom or
// parenthesized group immediately before the current position in out, so
// it can be sliced off and repeated.
func precedingOperand(token string, out []lexeme) ([]lexeme, int, error) {
	if len(out) == 0 {
		return nil, 0, newError(token, MalformedInterval, 0, "interval has no preceding expression")
	}
	last := out[len(out)-1]
	switch last.Kind {
	case lexLiteral, lexClass:
		return []lexeme{last}, len(out) - 1, nil
	case lexRParen:
		depth := 0
		for j := len(out) - 1; j >= 0; j-- {
			switch out[j].Kind {
			case lexRParen:
				depth++
			case lexLParen:
				depth--
				if depth == 0 {
					return out[j:], j, nil
				}
			}
		}
		return nil, 0, newError(token, UnbalancedGroup, last.Pos, "unmatched ')' before interval")
	default:
		return nil, 0, newError(token, MalformedInterval, last.Pos, "interval must follow an atom, class or group")
	}
}

// scanInterval parses the lexemes of "{" digits ["," [digits]] "}"
// starting at lexemes[start] (the '{'). It returns the low bound, the
// high bound (if present), whether a high bound was present at all, and
// the number of lexemes consumed.
func scanInterval(token string, lexemes []lexeme, start int) (lo, hi int, hasHi bool, consumed int, err error) {
	i := start + 1
	if i >= len(lexemes) || lexemes[i].Kind != lexDigits {
		return 0, 0, false, 0, newError(token, MalformedInterval, lexemes[start].Pos, "expected digits after '{'")
	}
	lo, err = strconv.Atoi(lexemes[i].Digits)
	if err != nil {
		return 0, 0, false, 0, newError(token, MalformedInterval, lexemes[i].Pos, "invalid repetition count %q", lexemes[i].Digits)
	}
	i++
	sawComma := false
	if i < len(lexemes) && lexemes[i].Kind == lexComma {
		sawComma = true
		i++
		if i < len(lexemes) && lexemes[i].Kind == lexDigits {
			hi, err = strconv.Atoi(lexemes[i].Digits)
			if err != nil {
				return 0, 0, false, 0, newError(token, MalformedInterval, lexemes[i].Pos, "invalid repetition count %q", lexemes[i].Digits)
			}
			hasHi = true
			i++
		}
	} else {
		hi = lo
		hasHi = true
	}
	if i >= len(lexemes) || lexemes[i].Kind != lexRBrace {
		return 0, 0, false, 0, newError(token, MalformedInterval, lexemes[start].Pos, "missing closing '}'")
	}
	i++
	if hasHi && hi < lo {
		return 0, 0, false, 0, newError(token, MalformedInterval, lexemes[start].Pos, "interval upper bound %d is less than lower bound %d", hi, lo)
	}
	if !sawComma && !hasHi {
		return 0, 0, false, 0, newError(token, MalformedInterval, lexemes[start].Pos, "malformed interval")
	}
	return lo, hi, hasHi, i - start, nil
}

// repeatOperand builds the lexeme sequence equivalent to operand{lo,hi}
// (or operand{lo,} when hasHi is false), using only lexemes buildAST
// already understands: the concatOp, '?' and '+'.
func repeatOperand(token string, pos int, operand []lexeme, lo, hi int, hasHi bool) ([]lexeme, error) {
	if !hasHi && lo == 0 {
		return nil, newError(token, MalformedInterval, pos, "interval {0,} is redundant, use *")
	}
	var out []lexeme
	appendOperand := func() {
		if len(out) > 0 {
			out = append(out, lexeme{Kind: concatOp, Pos: pos})
		}
		out = append(out, operand...)
	}
	if !hasHi {
		// atom{n,} == n-1 fixed copies concatenated with a final "one or
		// more" copy, so the whole sequence matches n or more repetitions.
		for n := 0; n < lo-1; n++ {
			appendOperand()
		}
		appendOperand()
		out = append(out, lexeme{Kind: lexPlus, Pos: pos})
		return out, nil
	}
	for n := 0; n < lo; n++ {
		appendOperand()
	}
	for n := lo; n < hi; n++ {
		if len(out) > 0 {
			out = append(out, lexeme{Kind: concatOp, Pos: pos})
		}
		out = append(out, operand...)
		out = append(out, lexeme{Kind: lexQuestion, Pos: pos})
	}
	if len(out) == 0 {
		return nil, newError(token, MalformedInterval, pos, "interval {0,0} matches nothing")
	}
	return out, nil
}
