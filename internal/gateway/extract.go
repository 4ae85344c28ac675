package gateway

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/novina/Novina/internal/models"
)

// Модели часто оборачивают JSON в markdown или прозу, несмотря на инструкции.
// Порядок поиска: блок ```json, любой блок ```, затем жадно от первой { до последней }.
var (
	fencedJSON = regexp.MustCompile("(?s)```json\\s*(.*?)\\s*```")
	fencedAny  = regexp.MustCompile("(?s)```\\s*(.*?)\\s*```")
	braces     = regexp.MustCompile(`(?s)\{.*\}`)
)

// extractJSON возвращает фрагмент текста, который следует разбирать как JSON.
// Если ни один шаблон не подошёл, возвращается весь текст без пробелов по краям.
func extractJSON(text string) string {
	if m := fencedJSON.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := fencedAny.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := braces.FindString(text); m != "" {
		return strings.TrimSpace(m)
	}

	return strings.TrimSpace(text)
}

// parseContent извлекает и проверяет ответ модели.
//
// Ошибки:
//   - ErrMalformedOutput: фрагмент не является JSON-объектом;
//   - ErrIncompleteOutput: нет одного из полей или оно не непустая строка.
//
// Длины полей не проверяются: ограничения заданы только в промпте.
func parseContent(text string) (*models.GeneratedContent, error) {
	raw := extractJSON(text)

	var obj map[string]any
	if err := json.Unmarshal([]byte(raw), &obj); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedOutput, err)
	}
	if obj == nil {
		return nil, fmt.Errorf("%w: not a JSON object", ErrMalformedOutput)
	}

	var missing []string
	field := func(name string) string {
		v, ok := obj[name].(string)
		if !ok || strings.TrimSpace(v) == "" {
			missing = append(missing, name)
			return ""
		}
		return strings.TrimSpace(v)
	}

	out := &models.GeneratedContent{
		Title:   field("title"),
		Excerpt: field("excerpt"),
		Content: field("content"),
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing %s", ErrIncompleteOutput, strings.Join(missing, ", "))
	}

	return out, nil
}
