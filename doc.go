/*
Package spag is the root of a toolbox for compiling formal-language
specifications into executable recognizers.

Two independent pipelines live in sub-packages:

■ regex + automaton: a set of named regular expressions is compiled into a
unique, total, minimal deterministic finite automaton — a regex scanner
compiler.

■ bnf + ll1: a context-free grammar in BNF is compiled into an LL(1)
predictive parse table, complete with conflict diagnostics when the
grammar is not LL(1).

Both pipelines produce immutable, read-only artifacts (see package
automaton's DFA and package ll1's Table) intended to be consumed by a code
generator living outside this module. This module does not scan or parse
input itself — it only builds the tables that a generated scanner/parser
would use to do so.
*/
package spag
