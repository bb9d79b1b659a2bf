package nlp

// Curated word lists for the three supported languages. Entries are written
// in their natural spelling and normalized when the lexicon is built, so
// apostrophe and Cyrillic variants match normalized tokens.

var positiveWords = map[string][]string{
	"en": {
		"good", "great", "excellent", "amazing", "wonderful", "fantastic", "helpful", "clean", "friendly",
		"efficient", "perfect", "best", "awesome", "beautiful", "happy", "joyful", "lovely", "brilliant",
		"superb", "terrific", "positive", "love", "like", "enjoy", "recommend", "nice", "pleasant",
		"outstanding", "fast", "polite", "super", "impressive", "professional", "thank", "thanks",
	},
	"ru": {
		"хороший", "отличный", "замечательный", "прекрасно", "замечательно", "удобно", "чисто",
		"дружелюбный", "эффективно", "идеально", "лучший", "превосходно", "красивый", "счастливый",
		"радостный", "блестящий", "великолепный", "потрясающий", "чудесный", "добрый", "приятный",
		"уютный", "комфортно", "впечатляющий", "великий", "чудный", "спасибо", "рекомендую",
		"понравилось", "полюбил", "удовлетворен", "позитивно", "супер", "улыбка",
	},
	"uz": {
		"yaxshi", "zo'r", "ajoyib", "a'lo", "qulay", "toza", "do'stona", "samarali", "mukammal",
		"chiroyli", "baxtli", "xursand", "go'zal", "aqlli", "tezkor", "samimiy", "quvonchli",
		"yaxshilab", "mamnun", "tashakkur", "rahmat", "beqiyos", "tengsiz", "hurmatli", "arzon",
		"sifatli", "tabrik",
	},
}

var negativeWords = map[string][]string{
	"en": {
		"bad", "poor", "terrible", "awful", "horrible", "disappointing", "dirty", "slow", "rude",
		"unfriendly", "nasty", "disgusting", "unpleasant", "expensive", "broken", "lousy", "negative",
		"hate", "dislike", "worst", "problem", "issue", "delay", "angry", "dissatisfied", "complaint",
		"late", "queue", "crowd", "unclean", "impolite", "smell", "noisy", "waste",
	},
	"ru": {
		"плохо", "плохой", "ужасно", "ужасный", "разочаровывающий", "грязный", "грязно", "медленно",
		"грубо", "грубый", "недружелюбный", "страшный", "противный", "дорогой", "сломанный",
		"паршивый", "отвратительный", "неприятный", "скверный", "жалоба", "негативный", "ненавижу",
		"проблема", "задержка", "сложно", "очередь", "толпа", "нечисто", "разбитый", "громко",
		"жутко", "никогда",
	},
	"uz": {
		"yomon", "rasvo", "dahshatli", "qo'pol", "iflos", "sekin", "qimmat", "buzilgan", "noqulay",
		"achinarli", "qo'rqinchli", "jirkanch", "noxush", "singan", "tanqid", "umidsiz", "muammo",
		"shikoyat", "kechikish", "axlat", "tartibsiz", "foydasiz", "muammoli",
	},
}

var stopWords = map[string][]string{
	"en": {"a", "an", "the", "and", "but", "or", "for", "nor", "on", "at", "to", "by", "is", "are", "was", "were"},
	"ru": {"и", "в", "не", "на", "я", "с", "что", "по", "это", "он", "она", "как", "у", "к"},
	"uz": {"va", "bu", "bilan", "ham", "uchun", "da", "dan", "ga", "ning", "edi", "bo'lgan"},
}

// Phrase and word lists used by the language detector as substring signals
// against normalized text. The Uzbek list carries both polarities so that
// Latin-script Uzbek comments are detected regardless of tone.
var uzDetectWords = []string{
	"yaxshi", "zo'r", "zoʻr", "zor", "ajoyib", "a'lo", "qulay", "toza", "do'st", "dostona",
	"samarali", "mukammal", "eng yaxshi", "go'zal", "baxtli", "hursand", "shodon", "xursand",
	"aqlli", "tezkor", "samimiy", "tabrik", "rahmat", "tashakkur", "minnatdor", "beqiyos",
	"ofarin", "ibratli", "afsus", "hech kim", "shikoyat", "yoqdi", "mamnun", "hurmatli",
	"o'zbek", "oson", "muloqot", "navbat", "intizom", "ochiq", "chiroyli",
	"yomon", "xizmat", "juda", "iflos", "sekin", "qimmat", "rasvo", "dahshatli", "noqulay",
	"muammo", "kechikish",
}

var ruDetectWords = []string{
	"хорошо", "отлично", "замечательно", "прекрасно", "дружелюбно", "эффективно", "идеально",
	"лучший", "красивый", "быстро", "спасибо", "понравилось", "рекомендую", "обратился",
	"удобно", "неудобно", "медленно", "грязно", "грубый", "дорого", "качество", "вежливый",
	"жалоба", "проблема", "обслуживание", "недостаточно", "персонал", "ужасно", "долго",
	"разочарован", "обидно", "оператор", "очередь", "запах", "страшный",
}
