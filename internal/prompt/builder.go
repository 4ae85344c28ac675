// prompt собирает текст запроса к языковой модели.
// Все функции пакета чистые: никаких внешних вызовов и побочных эффектов.
package prompt

import (
	"fmt"
	"strings"
	"time"

	"github.com/novina/Novina/internal/models"
)

// DefaultStyle: стиль для провайдеров без собственной строки стиля.
const DefaultStyle = "U informativnom ali angažiranom tonu"

var (
	weekdays = [...]string{"nedjelja", "ponedjeljak", "utorak", "srijeda", "četvrtak", "petak", "subota"}
	// Родительный падеж, как в «19. listopada 2026.».
	months = [...]string{
		"siječnja", "veljače", "ožujka", "travnja", "svibnja", "lipnja",
		"srpnja", "kolovoza", "rujna", "listopada", "studenoga", "prosinca",
	}
)

// FormatDate возвращает дату на хорватском: "ponedjeljak, 19. listopada 2026.".
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%s, %d. %s %d.", weekdays[t.Weekday()], t.Day(), months[t.Month()-1], t.Year())
}

// Build собирает промпт ручной генерации по теме.
//
// Структура:
//   - постановка задачи, тема и (если есть) её описание;
//   - сегодняшняя дата;
//   - шаблон темы как основной набор инструкций (вставляется как есть);
//   - указания редактора отдельным разделом, только если они непустые;
//   - жёсткие ограничения и точная схема ответа из трёх полей.
func Build(topic models.Topic, now time.Time, instructions string) string {
	var b strings.Builder

	b.WriteString("# ZADATAK: Napiši kratku vijest\n\n")

	fmt.Fprintf(&b, "## TEMA: %s\n", topic.Name)
	if topic.Description != nil && strings.TrimSpace(*topic.Description) != "" {
		fmt.Fprintf(&b, "Opis teme: %s\n", strings.TrimSpace(*topic.Description))
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "## DANAŠNJI DATUM: %s\n\n", FormatDate(now))

	b.WriteString("## UPUTE:\n")
	b.WriteString(topic.PromptTemplate)
	b.WriteString("\n\n")

	if extra := strings.TrimSpace(instructions); extra != "" {
		b.WriteString("## DODATNE NAPOMENE UREDNIKA:\n")
		b.WriteString(extra)
		b.WriteString("\n\n")
	}

	b.WriteString("## KRITIČNE NAPOMENE:\n")
	b.WriteString("1. Vijest MORA biti na HRVATSKOM jeziku\n")
	fmt.Fprintf(&b, "2. Vijest MORA biti o temi \"%s\" - NE piši o ničem drugom!\n", topic.Name)
	b.WriteString("3. Sadržaj mora biti profesionalan i novinarski napisan\n")
	b.WriteString("4. Koristi formalni ton prigodan za novinski portal\n")
	b.WriteString("5. Dužina: 100-150 riječi\n\n")

	b.WriteString("## FORMAT ODGOVORA (SAMO JSON, bez dodatnog teksta):\n")
	b.WriteString(responseShape(150, "Kratki sažetak u jednoj rečenici",
		"Puni tekst vijesti u Markdown formatu. Uključi uvod, srednji dio s detaljima, i zaključak."))

	return strings.TrimSpace(b.String())
}

// BuildScheduled собирает промпт плановой генерации: без темы, в стиле провайдера.
func BuildScheduled(style string) string {
	style = strings.TrimSpace(style)
	if style == "" {
		style = DefaultStyle
	}

	var b strings.Builder

	b.WriteString("Generiraj jednu kratku vijest iz svijeta tehnologije i umjetne inteligencije.\n\n")
	b.WriteString("Vijest treba biti:\n")
	b.WriteString("- Aktuelna i relevantna za Tech/AI zajednicu\n")
	b.WriteString("- Napisana na hrvatskom jeziku\n")
	b.WriteString("- Dužine 100-150 riječi\n")
	fmt.Fprintf(&b, "- %s\n", style)
	b.WriteString("- Fokusirana na jedan konkretan događaj ili najavu\n\n")

	b.WriteString("Odgovori ISKLJUČIVO u JSON formatu:\n")
	b.WriteString(responseShape(120, "Kratak sažetak", "Puni tekst vijesti u Markdown formatu"))
	b.WriteString("\nNemoj dodavati nikakve dodatne komentare, samo JSON.")

	return b.String()
}

// responseShape описывает обязательный ответ: ровно title, excerpt и content.
func responseShape(excerptMax int, excerptHint, contentHint string) string {
	return fmt.Sprintf(`{
  "title": "Naslov vijesti (max 80 znakova, privlačan i informativan)",
  "excerpt": "%s (max %d znakova)",
  "content": "%s"
}
`, excerptHint, excerptMax, contentHint)
}
