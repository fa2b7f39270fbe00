package token

var keywords = map[string]Kind{
	"and":   KwAnd,
	"or":    KwOr,
	"not":   KwNot,
	"true":  KwTrue,
	"false": KwFalse,
}

// LookupKeyword возвращает тип и bool если это ключевое слово.
// Ключевые слова регистрозависимые — только lowercase версии распознаются,
// поэтому "And" остаётся обычным символом модуля.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
