package medical

import "strings"

// Disclaimer is appended to replies that touch medical topics.
const Disclaimer = "\n\n⚠️ Я ИИ, а не врач. Пожалуйста, проконсультируйтесь со специалистом."

// keywords are lower-case stems matched by substring containment.
var keywords = []string{
	// symptoms and illness
	"симптом", "болезн", "боль", "боли", "болит", "болят", "болел", "болела", "болело", "болели",
	"болею", "болеешь", "болеет", "болеем", "болеете", "болеют", "болеть", "переболел",
	"болен", "больна", "больны", "больной", "больным", "больного", "больных",
	"заболевание", "заболел", "заболела", "заболели", "заболеть", "заболеваю", "заболевают",
	"температур", "жар", "лихорадка",
	// treatment
	"давлени", "диагноз", "лечен", "лечить", "лечу", "лечусь", "вылечить", "излечить",
	"препарат", "таблетк", "лекарств", "медикамент", "врач", "доктор", "специалист",
	"госпитал", "клиник", "больниц", "поликлиник", "анализ", "обследован",
	"терапи", "инфекц", "вирус", "бактери", "ковид", "covid", "коронавирус",
	// common diseases
	"простуд", "простыл", "простужен", "орви", "орз",
	"грипп", "ангин", "бронхит", "пневмони", "отит", "гастрит",
	"язва", "язвы", "язвой", "язву",
	"кашел", "кашля", "кашляю", "кашляет", "насморк", "чихан", "чихаю",
	"недомогаю", "недомогание", "чувствую себя плохо", "плохо себя чувствую",
	// body parts
	"головн", "голова", "головой", "голову", "горло", "горла", "горлом", "горле",
	"ухо", "уха", "ухом", "уши", "ушей", "ушах", "кожа", "кожи", "кожей", "коже",
	"нога", "ноги", "ногой", "ногу", "ног", "ногами", "колено", "колена", "коленом", "колени", "коленей",
	"рука", "руки", "рукой", "руку", "рук", "руками", "палец", "пальца", "пальцем", "пальцы", "пальцев",
	"плечо", "плеча", "плечом", "плечи", "плеч", "спина", "спины", "спиной", "спине", "спину",
	"зуб", "зуба", "зубом", "зубы", "зубов", "зубами", "глаз", "глаза", "глазом", "глазу",
	"сыпь", "сыпи", "сыпью", "желудок", "желудка", "живот", "живота",
	// serious conditions
	"сердц", "сердечн", "инфаркт", "инсульт",
	"рак", "рака", "раком", "опухол", "онкол", "химиотерапи",
	"гепатит", "цирроз", "почечн", "почки", "печен", "печени",
	"операци", "хирург", "анестези", "переливани",
	"сахар", "диабет", "астма", "аллерги", "артрит",
	"остеохондроз", "ломит", "поясниц",
	"воспален", "воспалил", "отек",
	"рана", "раны", "травма", "травмы", "перелом", "переломил",
	"сломал", "слом", "ушиб", "порез", "подвернул", "растяжени",
	"беспокоит", "беспокоят",
	// complaints
	"боль в", "болит в", "боли в", "тошнит", "тошнота", "рвота", "понос", "диарея",
	"запор", "слабость", "слабый", "усталость", "устал", "устала", "бессонниц", "депресси", "стресс",
	"панич", "тревож", "мигрен", "судорог", "онемени", "немеет", "головокружен", "кружится",
	"обморок", "кровотечени", "кровь", "кровит", "гной", "выделени", "отравлени", "отравился",
}

// Keywords returns a copy of the trigger table.
func Keywords() []string {
	return append([]string(nil), keywords...)
}

// Mentions reports whether any keyword occurs in text, case-insensitively.
func Mentions(text string) bool {
	normalized := strings.ToLower(text)
	for _, keyword := range keywords {
		if strings.Contains(normalized, keyword) {
			return true
		}
	}
	return false
}

// NeedsDisclaimer reports whether the exchange touches a medical topic.
func NeedsDisclaimer(userMessage, reply string) bool {
	return Mentions(userMessage) || Mentions(reply)
}

// Attach appends the disclaimer when the exchange needs it and reply does not carry it yet.
func Attach(userMessage, reply string) string {
	if !NeedsDisclaimer(userMessage, reply) || strings.Contains(reply, Disclaimer) {
		return reply
	}
	return reply + Disclaimer
}
