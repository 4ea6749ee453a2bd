package bnf

import "fmt"

// GrammarErrorKind is the machine-readable kind of a GrammarError.
type GrammarErrorKind int

const (
	EmptyName GrammarErrorKind = iota
	EmptyProductions
	MissingStartSymbol
	EmptySymbol
)

var grammarKindNames = map[GrammarErrorKind]string{
	EmptyName:          "empty grammar name",
	EmptyProductions:   "grammar has no productions",
	MissingStartSymbol: "start symbol not defined by any production",
	EmptySymbol:        "empty symbol in production",
}

func (k GrammarErrorKind) String() string {
	if s, ok := grammarKindNames[k]; ok {
		return s
	}
	return "unknown grammar error"
}

// GrammarError reports a structural problem with a Source: an empty name,
// no productions, an empty symbol in a production, or a start symbol that
// no production defines. ProductionIndex is the offending production's
// index when the error is specific to one production, and -1 otherwise.
// Symbol names what the error concerns: the production's LHS, the start
// symbol, or (for EmptyProductions) the grammar name; it may be empty.
type GrammarError struct {
	Symbol          string
	ProductionIndex int
	Kind            GrammarErrorKind
	Msg             string
}

func (e *GrammarError) Error() string {
	if e.ProductionIndex >= 0 {
		return fmt.Sprintf("%s (production %d): %s: %s", e.Symbol, e.ProductionIndex, e.Kind, e.Msg)
	}
	if e.Symbol != "" {
		return fmt.Sprintf("%s: %s: %s", e.Symbol, e.Kind, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func newGrammarError(symbol string, idx int, kind GrammarErrorKind, format string, args ...interface{}) *GrammarError {
	return &GrammarError{
		Symbol:          symbol,
		ProductionIndex: idx,
		Kind:            kind,
		Msg:             fmt.Sprintf(format, args...),
	}
}
