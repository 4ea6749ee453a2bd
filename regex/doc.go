/*
Package regex validates and compiles named regular expressions into
epsilon-NFA fragments ready for subset construction.

The pipeline, per pattern, is:

	pattern string
	    -> tokenize            (lexemes, classes already resolved to char sets)
	    -> expandIntervals      ({n}, {n,}, {n,m} rewritten to concatenation, + and ?)
	    -> insertExplicitConcat (implicit concatenation made explicit)
	    -> shunt                (infix -> postfix, classical shunting-yard)
	    -> buildAST              (postfix -> tagged-variant AST)
	    -> compileThompson       (AST -> NFA fragment, Thompson's construction)

A Source aggregates named patterns declared in order; Merge combines every
pattern's fragment under one synthetic start state with an epsilon edge to
each, ready for package automaton's subset construction.
*/
package regex
