package notification

import (
	"fmt"
	"html"
	"strings"

	"nutrify/models"
	"nutrify/services/questionnaire"
)

func confirmationSubject() string {
	return "Děkujeme za vyplnění dotazníku"
}

func confirmationBody(name, sessionID string) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("<p>Dobrý den, %s,</p>", html.EscapeString(name)))
	b.WriteString("<p>děkujeme za vyplnění vstupního dotazníku. Nyní si můžete vybrat termín konzultace.</p>")
	b.WriteString(fmt.Sprintf("<p>Číslo vašeho dotazníku: <b>%s</b></p>", html.EscapeString(sessionID)))
	b.WriteString("<p>S pozdravem,<br>Vaše výživová poradna</p>")
	return b.String()
}

func internalSubject(record *models.QuestionnaireRecord) string {
	return fmt.Sprintf("Nový dotazník: %s", record.Name())
}

// internalBody renders the full record, section by section in intake order,
// skipping unanswered fields.
func internalBody(record *models.QuestionnaireRecord) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("<p>Nový dotazník <b>%s</b> (%s)</p>", html.EscapeString(record.Name()), html.EscapeString(record.Email())))
	b.WriteString(fmt.Sprintf("<p>ID: %s</p>", html.EscapeString(record.SessionID)))

	for _, section := range questionnaire.Sections {
		var rows []string
		for _, field := range section.Fields {
			value := record.Field(field)
			if value == "" {
				continue
			}
			rows = append(rows, fmt.Sprintf("<li><b>%s:</b> %s</li>",
				html.EscapeString(questionnaire.FieldLabel(field)), html.EscapeString(value)))
		}
		if len(rows) == 0 {
			continue
		}
		b.WriteString(fmt.Sprintf("<h3>%s</h3><ul>%s</ul>", html.EscapeString(section.Title), strings.Join(rows, "")))
	}
	return b.String()
}

func bookingConfirmationSubject() string {
	return "Vaše konzultace je potvrzena"
}

func bookingConfirmationBody(record *models.QuestionnaireRecord, docURL string) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("<p>Dobrý den, %s,</p>", html.EscapeString(record.Name())))
	b.WriteString("<p>vaše konzultace byla potvrzena. Těšíme se na vás!</p>")
	if docURL != "" {
		b.WriteString(fmt.Sprintf("<p>Shrnutí vašeho dotazníku: <a href=\"%s\">dokument</a></p>", html.EscapeString(docURL)))
	}
	b.WriteString("<p>S pozdravem,<br>Vaše výživová poradna</p>")
	return b.String()
}

func reminderSubject(reservation *models.Reservation) string {
	return fmt.Sprintf("Připomínka konzultace %s v %s", reservation.Date, reservation.Time)
}

func reminderBody(reservation *models.Reservation) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("<p>Dobrý den, %s,</p>", html.EscapeString(reservation.UserName)))
	b.WriteString(fmt.Sprintf("<p>připomínáme vaši konzultaci (%s) dne <b>%s</b> v <b>%s</b>.</p>",
		html.EscapeString(reservation.Service), html.EscapeString(reservation.Date), html.EscapeString(reservation.Time)))
	b.WriteString("<p>S pozdravem,<br>Vaše výživová poradna</p>")
	return b.String()
}
