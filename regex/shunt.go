package regex

// precedence of each binary/unary operator, highest binds tightest. Unary
// postfix operators (*, +, ?) are handled separately in shunt since they
// never need to pop lower-precedence operators off the stack.
var precedence = map[lexKind]int{
	lexUnion: 1,
	concatOp: 2,
}

// isOperandEnd reports whether a lexeme can end an operand (i.e. can be
// followed by an implicit concatenation if the next lexeme can start one).
func isOperandEnd(lx lexeme) bool {
	switch lx.Kind {
	case lexLiteral, lexClass, lexRParen, lexStar, lexPlus, lexQuestion:
		return true
	}
	return false
}

// isOperandStart reports whether a lexeme can begin an operand.
func isOperandStart(lx lexeme) bool {
	switch lx.Kind {
	case lexLiteral, lexClass, lexLParen:
		return true
	}
	return false
}

// insertExplicitConcat walks a lexeme stream and inserts a synthetic
// concatOp lexeme wherever concatenation is implicit, e.g. between "a" and
// "b" in "ab", or between ")" and "a" in "(a|b)a".
func insertExplicitConcat(lexemes []lexeme) []lexeme {
	if len(lexemes) == 0 {
		return lexemes
	}
	out := make([]lexeme, 0, len(lexemes)*2)
	out = append(out, lexemes[0])
	for i := 1; i < len(lexemes); i++ {
		prev := lexemes[i-1]
		cur := lexemes[i]
		if isOperandEnd(prev) && isOperandStart(cur) {
			out = append(out, lexeme{Kind: concatOp, Pos: cur.Pos})
		}
		out = append(out, cur)
	}
	return out
}

// shunt converts an infix lexeme stream (literals, classes, concatOp
// (implicit concatenation, or explicit via '.'), lexUnion, lexStar/Plus/
// Question, parens) to postfix via the classical shunting-yard algorithm.
func shunt(token string, infix []lexeme) ([]lexeme, error) {
	var output []lexeme
	var ops []lexeme
	popWhile := func(cond func(top lexeme) bool) {
		for len(ops) > 0 && cond(ops[len(ops)-1]) {
			output = append(output, ops[len(ops)-1])
			ops = ops[:len(ops)-1]
		}
	}
	for _, lx := range infix {
		switch lx.Kind {
		case lexLiteral, lexClass:
			output = append(output, lx)
		case lexStar, lexPlus, lexQuestion:
			// postfix unary operator: applies immediately to the
			// operand already on the output stack.
			output = append(output, lx)
		case lexUnion, concatOp:
			p := precedence[lx.Kind]
			popWhile(func(top lexeme) bool {
				return top.Kind != lexLParen && precedence[top.Kind] >= p
			})
			ops = append(ops, lx)
		case lexLParen:
			ops = append(ops, lx)
		case lexRParen:
			found := false
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				ops = ops[:len(ops)-1]
				if top.Kind == lexLParen {
					found = true
					break
				}
				output = append(output, top)
			}
			if !found {
				return nil, newError(token, UnbalancedGroup, lx.Pos, "unmatched ')'")
			}
		default:
			return nil, newError(token, MalformedExpression, lx.Pos, "unexpected token %v in expression", lx.Kind)
		}
	}
	for len(ops) > 0 {
		top := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		if top.Kind == lexLParen {
			return nil, newError(token, UnbalancedGroup, top.Pos, "unmatched '('")
		}
		output = append(output, top)
	}
	return output, nil
}
