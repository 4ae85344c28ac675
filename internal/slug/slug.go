// slug строит ASCII-идентификаторы для URL статей и тем.
package slug

import (
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MaxBaseLen: максимальная длина основы slug статьи (без суффиксов).
const MaxBaseLen = 50

// folds: буквы без канонической декомпозиции, NFD их не раскладывает.
var folds = strings.NewReplacer(
	"đ", "d", "Đ", "d",
	"ø", "o", "Ø", "o",
	"ł", "l", "Ł", "l",
	"ß", "ss",
	"æ", "ae", "Æ", "ae",
	"œ", "oe", "Œ", "oe",
)

// Make нормализует строку:
//   - нижний регистр;
//   - диакритика удаляется (č -> c, đ -> d);
//   - любые последовательности не [a-z0-9] сворачиваются в один "-";
//   - "-" по краям обрезаются.
//
// Пример: "Čćđšž test" -> "ccdsz-test".
func Make(s string) string {
	s = folds.Replace(strings.ToLower(s))

	// Цепочка не потокобезопасна, поэтому собирается на каждый вызов.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if out, _, err := transform.String(t, s); err == nil {
		s = out
	}

	var b strings.Builder
	b.Grow(len(s))

	dash := false
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}

	return strings.Trim(b.String(), "-")
}

// Article строит slug статьи: основа из заголовка, обрезанная до MaxBaseLen,
// затем необязательные уточнения (например, имя провайдера) и метка времени в миллисекундах.
// Уникальность не проверяется: коллизии маловероятны за счёт метки времени.
func Article(title string, now time.Time, qualifiers ...string) string {
	parts := make([]string, 0, len(qualifiers)+2)

	if base := truncate(Make(title), MaxBaseLen); base != "" {
		parts = append(parts, base)
	}

	for _, q := range qualifiers {
		if q = Make(q); q != "" {
			parts = append(parts, q)
		}
	}

	parts = append(parts, strconv.FormatInt(now.UnixMilli(), 10))

	return strings.Join(parts, "-")
}

// truncate обрезает ASCII-строку и повторно срезает "-" на конце.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}

	return strings.TrimRight(s[:n], "-")
}
