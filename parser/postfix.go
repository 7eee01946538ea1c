package parser

// ToPostfix reorders an infix token sequence into postfix (Reverse Polish)
// order using the shunting-yard algorithm: an output queue and an operator
// stack, driven by the precedence table on TokenType.
//
// The tie-break is exact: an incoming left-associative operator pops stack
// operators of equal precedence before being pushed, which is what makes
// chains of +/- and of x/÷ evaluate left to right. Unary minus is pushed
// unconditionally; being right-associative and highest precedence, it only
// comes off on a close-paren, end of input, or a lower-rank comparison.
func ToPostfix(tokens []Token) ([]Token, error) {
	output := make([]Token, 0, len(tokens))
	stack := make([]Token, 0, 8)

	for _, tok := range tokens {
		switch {
		case tok.Type == NUMBER:
			output = append(output, tok)

		case tok.Type == UMINUS:
			stack = append(stack, tok)

		case tok.Type.IsBinary():
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if !top.Type.IsOperator() {
					break
				}
				if top.Type.Precedence() > tok.Type.Precedence() ||
					(top.Type.Precedence() == tok.Type.Precedence() && !tok.Type.RightAssociative()) {
					output = append(output, top)
					stack = stack[:len(stack)-1]
					continue
				}
				break
			}
			stack = append(stack, tok)

		case tok.Type == LPAREN:
			stack = append(stack, tok)

		case tok.Type == RPAREN:
			matched := false
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.Type == LPAREN {
					matched = true
					break
				}
				output = append(output, top)
			}
			if !matched {
				return nil, &SyntaxError{Pos: tok.Pos, Message: "mismatched parentheses"}
			}
		}
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.Type == LPAREN {
			return nil, &SyntaxError{Pos: top.Pos, Message: "mismatched parentheses"}
		}
		output = append(output, top)
	}

	return output, nil
}
