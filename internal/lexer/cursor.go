package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"lsys/internal/source"
)

// Cursor представляет собой позицию во входной строке
type Cursor struct {
	Input *source.Input
	Off   uint32
}

// NewCursor creates a new cursor for the provided input.
func NewCursor(in *source.Input) Cursor {
	return Cursor{Input: in, Off: 0}
}

func (c *Cursor) limit() uint32 {
	lim, err := safecast.Conv[uint32](len(c.Input.Content))
	if err != nil {
		panic(fmt.Errorf("input length overflow: %w", err))
	}
	return lim
}

// EOF проверяет, достигнут ли конец входа
func (c *Cursor) EOF() bool {
	return c.Off >= c.limit()
}

// Peek читает текущий байт, если есть, иначе возвращает 0
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.Input.Content[c.Off]
}

// Peek2 читает текущий и следующий байт, если есть, иначе возвращает 0, 0, false
func (c *Cursor) Peek2() (b0, b1 byte, ok bool) {
	if c.Off+1 >= c.limit() {
		return 0, 0, false
	}
	return c.Input.Content[c.Off], c.Input.Content[c.Off+1], true
}

// Bump перемещает курсор на один байт вперед и возвращает прочитанный байт
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.Input.Content[c.Off]
	c.Off++
	return b
}

// Mark это метка, что бы быстро получать Span читаемого фрагмента
type Mark uint32

// Mark сохраняет текущую позицию курсора
func (c *Cursor) Mark() Mark {
	return Mark(c.Off)
}

// SpanFrom получает Span для фрагмента, начиная с метки
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{
		Input: c.Input.ID,
		Start: uint32(m),
		End:   c.Off,
	}
}
