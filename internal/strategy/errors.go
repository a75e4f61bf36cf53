package strategy

import "fmt"

// ValidationError неполные входные данные: у свечи или зоны нет обязательного поля.
type ValidationError struct {
	Op     string
	Index  int // -1, если ошибка не про конкретную свечу
	Fields []string
}

func (e *ValidationError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("%s: candle %d: missing fields %v", e.Op, e.Index, e.Fields)
	}
	return fmt.Sprintf("%s: missing fields %v", e.Op, e.Fields)
}
