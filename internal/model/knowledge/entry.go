package knowledge

// Topic is a single fact of a category.
type Topic struct {
	Name string `json:"name"`
	Fact string `json:"fact"`
}

// Category groups topics. Order of categories and topics is significant for retrieval.
type Category struct {
	Name   string  `json:"name"`
	Topics []Topic `json:"topics"`
}

// Seed provides the built-in health knowledge table.
func Seed() []Category {
	return []Category{
		{
			Name: "питание",
			Topics: []Topic{
				{Name: "вода", Fact: "Пейте 8 стаканов воды в день (около 2 литров). Вода помогает пищеварению и выводит токсины."},
				{Name: "белок", Fact: "Взрослому человеку нужно 0.8-1г белка на кг веса. Источники: мясо, рыба, яйца, бобовые."},
				{Name: "витамины", Fact: "Получайте витамины из разнообразной пищи: фрукты, овощи, орехи, зелень."},
				{Name: "завтрак", Fact: "Завтракайте в течение часа после пробуждения. Это запускает метаболизм."},
				{Name: "сахар", Fact: "Ограничьте сахар до 25г в день. Избыток сахара ведет к диабету и ожирению."},
			},
		},
		{
			Name: "фитнес",
			Topics: []Topic{
				{Name: "кардио", Fact: "150 минут умеренной активности в неделю. Бег, плавание, велосипед."},
				{Name: "силовые", Fact: "Тренируйте мышцы 2-3 раза в неделю. Используйте вес тела или гантели."},
				{Name: "растяжка", Fact: "Делайте растяжку после тренировок. Это предотвращает травмы."},
				{Name: "разминка", Fact: "Всегда начинайте с 5-10 минут разминки перед тренировкой."},
				{Name: "отдых", Fact: "Давайте мышцам отдыхать 48 часов между силовыми тренировками."},
			},
		},
		{
			Name: "сон",
			Topics: []Topic{
				{Name: "продолжительность", Fact: "Взрослым нужно 7-9 часов сна. Подросткам - 8-10 часов."},
				{Name: "режим", Fact: "Ложитесь и вставайте в одно время. Это улучшает качество сна."},
				{Name: "экраны", Fact: "Не смотрите в экраны за час до сна. Синий свет мешает засыпанию."},
				{Name: "температура", Fact: "Оптимальная температура для сна 18-20°C."},
			},
		},
		{
			Name: "психология",
			Topics: []Topic{
				{Name: "стресс", Fact: "Практикуйте дыхательные упражнения, медитацию, йогу для снижения стресса."},
				{Name: "социализация", Fact: "Общение с близкими улучшает психическое здоровье."},
				{Name: "хобби", Fact: "Занимайтесь любимым делом минимум 30 минут в день."},
			},
		},
		{
			Name: "гигиена",
			Topics: []Topic{
				{Name: "руки", Fact: "Мойте руки 20 секунд с мылом после улицы и перед едой."},
				{Name: "зубы", Fact: "Чистите зубы 2 раза в день по 2 минуты. Используйте зубную нить."},
			},
		},
	}
}
