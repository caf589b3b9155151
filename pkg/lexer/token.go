package lexer

import "fmt"

// Kind represents the class of token identified by the scanner.
type Kind uint8

const (
	KindEOF     Kind = iota // end of the input, stop scanning further
	KindInvalid             // unrecognized input, useful for error handling

	KindIdentifier     // foo, bar
	KindIntegerLiteral // 1, 23, 435
	KindFloatLiteral   // 1.1, 45.2
	KindStringLiteral  // "hello world!"

	KindAssign       // =
	KindEqual        // ==
	KindMultiply     // *
	KindDivide       // /
	KindPlus         // +
	KindMinus        // -
	KindGreater      // >
	KindGreaterEqual // >=
	KindLesser       // <
	KindLesserEqual  // <=

	KindBraceOpen  // {
	KindBraceClose // }
	KindParenOpen  // (
	KindParenClose // )
	KindComma      // ,
	KindColon      // :
	KindSemiColon  // ;

	KindInt      // "int"
	KindDouble   // "double"
	KindString   // "string"
	KindFunction // "function"
	KindReturn   // "return"
	KindIf       // "if"
	KindElse     // "else"
	KindFor      // "for"
	KindContinue // "continue"
	KindBreak    // "break"
)

// kindNames maps each Kind to its display form. Operators and keywords show
// their canonical spelling, open categories a bracketed name.
var kindNames = [...]string{
	KindEOF:     "<End-Of-Input>",
	KindInvalid: "<Invalid>",

	KindIdentifier:     "<Identifier>",
	KindIntegerLiteral: "<Integer Literal>",
	KindFloatLiteral:   "<Float Literal>",
	KindStringLiteral:  "<String Literal>",

	KindAssign:       "=",
	KindEqual:        "==",
	KindMultiply:     "*",
	KindDivide:       "/",
	KindPlus:         "+",
	KindMinus:        "-",
	KindGreater:      ">",
	KindGreaterEqual: ">=",
	KindLesser:       "<",
	KindLesserEqual:  "<=",

	KindBraceOpen:  "{",
	KindBraceClose: "}",
	KindParenOpen:  "(",
	KindParenClose: ")",
	KindComma:      ",",
	KindColon:      ":",
	KindSemiColon:  ";",

	KindInt:      "int",
	KindDouble:   "double",
	KindString:   "string",
	KindFunction: "function",
	KindReturn:   "return",
	KindIf:       "if",
	KindElse:     "else",
	KindFor:      "for",
	KindContinue: "continue",
	KindBreak:    "break",
}

// String returns the display form of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// keywords maps a reserved spelling to its dedicated kind. Identifier-shaped
// lexemes are checked against this table before being classified, so a match
// always wins over KindIdentifier.
var keywords = map[string]Kind{
	"int":      KindInt,
	"double":   KindDouble,
	"string":   KindString,
	"function": KindFunction,
	"return":   KindReturn,
	"if":       KindIf,
	"else":     KindElse,
	"for":      KindFor,
	"continue": KindContinue,
	"break":    KindBreak,
}

// Token represents a single lexical unit of the source.
type Token struct {
	Kind   Kind
	Text   string // exact source substring, empty for KindEOF
	Offset int    // byte offset of Text within the source
	Line   int    // 1-based line of the first character
	Column int    // 1-based column of the first character
}

func (t Token) String() string {
	return fmt.Sprintf("%s : %s", t.Kind, t.Text)
}
