package lexer

import "strconv"

// parseFloat converts a scanned numeric lexeme to its float value. The
// lexeme is guaranteed well-formed by scanNumber, so a parse failure here
// would indicate a scanner bug.
func parseFloat(lexeme string) float64 {
	v, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		panic("lexer: malformed number lexeme " + strconv.Quote(lexeme))
	}
	return v
}
