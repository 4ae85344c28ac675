// redact маскирует секреты перед записью в логи: ключ шлюза,
// ссылки на ключи провайдеров, bearer-токены.
package redact

import (
	"strings"
	"unicode/utf8"
)

// visibleTail: сколько последних символов секрета остаётся видно.
const visibleTail = 4

// Secret маскирует секрет, оставляя хвост для сверки.
//
// Правила:
//   - пустая строка -> "" (нечего скрывать, а факт отсутствия полезен в логах);
//   - до 8 символов включительно -> "***";
//   - иначе "***" + последние 4 символа.
//
// Пример: "sk-or-v1-abcdef0123" -> "***0123".
func Secret(s string) string {
	if s == "" {
		return ""
	}

	n := utf8.RuneCountInString(s)
	if n <= 2*visibleTail {
		return "***"
	}

	r := []rune(s)
	return "***" + string(r[n-visibleTail:])
}

// Bearer маскирует значение заголовка Authorization, сохраняя схему.
func Bearer(header string) string {
	scheme, _, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok {
		return Token()
	}

	return scheme + " " + Token()
}

// Token возвращает литерал-заглушку для токена в логах.
func Token() string { return "[REDACTED_TOKEN]" }
