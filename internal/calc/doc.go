/*
Grammars

	program --> term* EOF ;
	term    --> factor ( ( "-" | "+" ) factor )* ;
	factor  --> unary ( ( "/" | "*" ) unary )* ;
	unary   --> "-" literal
	          | literal ;
	literal --> NUMBER ;

"unary" accepts a single leading minus bound to the number that
immediately follows it; chained unary minus is not part of the grammar
and fails to parse. The grammar has no grouping rule, parentheses are
rejected by the scanner.
*/
package calc
