package questionnaire

// Section is one step of the intake wizard. Required fields gate the Next
// transition; optional fields are collected as-is.
type Section struct {
	Key      string
	Title    string
	Fields   []string
	Required []string
}

// Sections is the ordered intake flow. The order is load-bearing: the wizard
// index, the per-section validation scope and the "jump back to first invalid
// section" behavior all key off it.
var Sections = []Section{
	{
		Key:      "zakladni",
		Title:    "Základní údaje",
		Fields:   []string{"jmeno", "email", "telefon", "vek", "pohlavi"},
		Required: []string{"jmeno", "email", "vek"},
	},
	{
		Key:      "cil",
		Title:    "Váš cíl",
		Fields:   []string{"hlavniCil", "terminCile", "predchoziPokusy"},
		Required: []string{"hlavniCil"},
	},
	{
		Key:      "zdravi",
		Title:    "Zdravotní stav",
		Fields:   []string{"zdravotniOmezeni", "lekyDoplnky", "alergie", "zazivani", "stitnaZlaza"},
		Required: nil,
	},
	{
		Key:      "telo",
		Title:    "Tělesné parametry",
		Fields:   []string{"vyska", "vaha", "cilovaVaha", "obvodPasu", "telesnaAktivita"},
		Required: []string{"vyska", "vaha"},
	},
	{
		Key:      "spanek",
		Title:    "Spánek",
		Fields:   []string{"hodinySpanku", "kvalitaSpanku", "usinani", "buzeniVNoci"},
		Required: []string{"hodinySpanku"},
	},
	{
		Key:      "stravovaciNavyky",
		Title:    "Stravovací návyky",
		Fields:   []string{"pocetJidel", "pravidelnost", "snidane", "pitnyRezim", "kofein", "alkohol"},
		Required: []string{"pocetJidel"},
	},
	{
		Key:      "historieStravovani",
		Title:    "Historie stravování",
		Fields:   []string{"drzeneDiety", "jojoEfekt", "nejvetsiUspech", "nejvetsiSelhani"},
		Required: nil,
	},
	{
		Key:      "psychika",
		Title:    "Psychika a životní styl",
		Fields:   []string{"stres", "emocniJedeni", "vztahKJidlu", "podporaOkoli"},
		Required: []string{"stres"},
	},
	{
		Key:      "jidelnicek",
		Title:    "Váš jídelníček",
		Fields:   []string{"typickyDen", "oblibenaJidla", "neoblibenaJidla"},
		Required: []string{"typickyDen"},
	},
	{
		Key:      "motivace",
		Title:    "Motivace",
		Fields:   []string{"duvodZmeny", "ocekavani", "odhodlani"},
		Required: []string{"duvodZmeny"},
	},
	{
		Key:      "shrnuti",
		Title:    "Shrnutí a souhlas",
		Fields:   []string{"souhlas"},
		Required: []string{"souhlas"},
	},
}

// FieldLabels maps wire field names to human labels for emails and the
// exported document.
var FieldLabels = map[string]string{
	"jmeno":            "Jméno a příjmení",
	"email":            "E-mail",
	"telefon":          "Telefon",
	"vek":              "Věk",
	"pohlavi":          "Pohlaví",
	"hlavniCil":        "Hlavní cíl",
	"terminCile":       "Termín cíle",
	"predchoziPokusy":  "Předchozí pokusy",
	"zdravotniOmezeni": "Zdravotní omezení",
	"lekyDoplnky":      "Léky a doplňky",
	"alergie":          "Alergie a intolerance",
	"zazivani":         "Zažívání",
	"stitnaZlaza":      "Štítná žláza",
	"vyska":            "Výška (cm)",
	"vaha":             "Váha (kg)",
	"cilovaVaha":       "Cílová váha (kg)",
	"obvodPasu":        "Obvod pasu (cm)",
	"telesnaAktivita":  "Tělesná aktivita",
	"hodinySpanku":     "Hodiny spánku",
	"kvalitaSpanku":    "Kvalita spánku",
	"usinani":          "Usínání",
	"buzeniVNoci":      "Buzení v noci",
	"pocetJidel":       "Počet jídel denně",
	"pravidelnost":     "Pravidelnost jídel",
	"snidane":          "Snídaně",
	"pitnyRezim":       "Pitný režim",
	"kofein":           "Kofein",
	"alkohol":          "Alkohol",
	"drzeneDiety":      "Držené diety",
	"jojoEfekt":        "Jojo efekt",
	"nejvetsiUspech":   "Největší úspěch",
	"nejvetsiSelhani":  "Největší selhání",
	"stres":            "Míra stresu",
	"emocniJedeni":     "Emoční jedení",
	"vztahKJidlu":      "Vztah k jídlu",
	"podporaOkoli":     "Podpora okolí",
	"typickyDen":       "Typický den (jídelníček)",
	"oblibenaJidla":    "Oblíbená jídla",
	"neoblibenaJidla":  "Neoblíbená jídla",
	"duvodZmeny":       "Důvod změny",
	"ocekavani":        "Očekávání",
	"odhodlani":        "Odhodlání (1-10)",
	"souhlas":          "Souhlas se zpracováním",
}

// FieldLabel returns the label for a wire field name, falling back to the
// name itself for unknown fields.
func FieldLabel(name string) string {
	if label, ok := FieldLabels[name]; ok {
		return label
	}
	return name
}

// sectionOfField returns the index of the section that owns the field, or -1.
func sectionOfField(name string) int {
	for i, section := range Sections {
		for _, f := range section.Fields {
			if f == name {
				return i
			}
		}
	}
	return -1
}

// KnownField reports whether the field name appears in any section.
func KnownField(name string) bool {
	return sectionOfField(name) >= 0
}
