// Package moderation — фильтр запрещённых слов для текста комментариев.
//
// Совпадение ищется как буквальная подстрока с учётом регистра: эталонное
// поведение проверяет только точное вхождение, поэтому нужные варианты
// написания перечисляются в конфигурации явно. Предупреждение возвращается
// дословно одним и тем же сообщением на любое совпадение.
package moderation

import (
	"errors"
	"strings"
)

// ErrRejected — текст отклонён фильтром.
var ErrRejected = errors.New("content rejected")

// RejectionError — отказ фильтра с текстом предупреждения для формы.
// Раскрывается через errors.Is(err, ErrRejected).
type RejectionError struct {
	Warning string
}

func (e *RejectionError) Error() string {
	return e.Warning
}

func (e *RejectionError) Is(target error) bool {
	return target == ErrRejected
}

// Filter — неизменяемый после создания фильтр.
type Filter struct {
	terms   []string
	warning string
}

// New создаёт фильтр по списку запрещённых слов и тексту предупреждения.
// Пустые элементы списка игнорируются.
func New(terms []string, warning string) *Filter {
	clean := make([]string, 0, len(terms))
	for _, t := range terms {
		if t = strings.TrimSpace(t); t != "" {
			clean = append(clean, t)
		}
	}

	return &Filter{terms: clean, warning: warning}
}

// Warning возвращает текст предупреждения фильтра.
func (f *Filter) Warning() string {
	return f.warning
}

// Validate проверяет текст; первое же совпадение завершает проверку.
// Возвращает nil или *RejectionError с дословным предупреждением.
func (f *Filter) Validate(text string) error {
	for _, term := range f.terms {
		if strings.Contains(text, term) {
			return &RejectionError{Warning: f.warning}
		}
	}

	return nil
}
