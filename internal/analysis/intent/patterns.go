package intent

import (
	"strings"
	"unicode"
)

// Family names a group of trigger patterns.
type Family string

const (
	Medication Family = "medication"
	Reminder   Family = "reminder"
	Profile    Family = "profile"
)

// Pattern is a lower-case trigger. Word patterns must match a whole word, the rest match
// as substrings.
type Pattern struct {
	Text string
	Word bool
}

// priority is the fixed evaluation order; the first family that matches wins.
var priority = []Family{Medication, Reminder, Profile}

var patternTable = map[Family][]Pattern{
	Medication: {
		{Text: "напомни"}, {Text: "напоминание"}, {Text: "принять лекарство"}, {Text: "принять таблетк"},
		{Text: "выпить лекарство"}, {Text: "таблетк"}, {Text: "лекарств"}, {Text: "препарат"}, {Text: "медикамент"},
	},
	Reminder: {
		{Text: "напомни мне"}, {Text: "поставь напоминание"}, {Text: "создай напоминание"},
		{Text: "попить вод"}, {Text: "сделать зарядк"}, {Text: "прогулк"},
	},
	Profile: {
		{Text: "мне", Word: true}, {Text: "я", Word: true}, {Text: "лет"}, {Text: "возраст"}, {Text: "мой возраст"},
		{Text: "мужчин"}, {Text: "женщин"}, {Text: "хочу похудеть"}, {Text: "моя цель"},
		{Text: "у меня аллерги"}, {Text: "аллергия на"},
	},
}

// medicationStems locate the token preceding a medication name.
var medicationStems = []string{"лекарств", "таблетк", "препарат"}

// Patterns returns a copy of the trigger table of a family.
func Patterns(family Family) []Pattern {
	return append([]Pattern(nil), patternTable[family]...)
}

func matchFamily(family Family, normalized string, words map[string]struct{}) bool {
	for _, pattern := range patternTable[family] {
		if pattern.Word {
			if _, ok := words[pattern.Text]; ok {
				return true
			}
			continue
		}
		if strings.Contains(normalized, pattern.Text) {
			return true
		}
	}
	return false
}

func wordSet(normalized string) map[string]struct{} {
	fields := strings.FieldsFunc(normalized, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	words := make(map[string]struct{}, len(fields))
	for _, field := range fields {
		words[field] = struct{}{}
	}
	return words
}
