package hyph

import "golang.org/x/text/language"

// Language identifies one of the supported hyphenation dictionaries by a
// stable short TeX-style code (e.g. "en-us", "grc", "hu"). The enumeration
// is fixed at compile time; callers never construct arbitrary languages.
type Language uint8

// Supported languages. Codes follow the TeX hyphenation pattern naming
// convention (hyph-{code}.pat.txt). Coverage mirrors the language spread
// bundled by the wider TeX-hyphenation pattern collection; margins are the
// conventional defaults for each orthography and may be overridden per
// Dictionary at load time by the build pipeline.
const (
	Afrikaans Language = iota
	Albanian
	AncientGreek
	Armenian
	Assamese
	Basque
	Belarusian
	Bengali
	Bulgarian
	Catalan
	ChurchSlavonic
	Coptic
	Croatian
	Czech
	Danish
	DutchNetherlands
	EnglishGB
	EnglishUS
	Esperanto
	Estonian
	Ethiopic
	Faroese
	Finnish
	French
	Friulian
	Galician
	Georgian
	GermanOldSpelling
	GermanReformed
	GermanSwiss
	GreekModern
	GreekPolytonic
	Gujarati
	Hindi
	Hungarian
	Icelandic
	Indonesian
	Interlingua
	Interlingue
	Irish
	Italian
	Kannada
	Kurdish
	Lao
	Latin
	LatinClassic
	LatinLiturgical
	Latvian
	Lithuanian
	Macedonian
	Malayalam
	Marathi
	Mongolian
	NorwegianBokmal
	NorwegianNynorsk
	Occitan
	Oriya
	Pali
	Panjabi
	Piedmontese
	Polish
	Portuguese
	PortugueseBrazilian
	Romanian
	Romansh
	Russian
	Sanskrit
	Serbian
	SerbianCyrillic
	SerbianLatin
	Slovak
	Slovenian
	Spanish
	Swedish
	Tamil
	Telugu
	Thai
	Turkish
	Turkmen
	Ukrainian
	Uppersorbian
	Welsh
	ChineseLatinPinyin
	languageCount
)

type languageInfo struct {
	code     string
	leftMin  int
	rightMin int
}

// languageTable maps each Language constant to its TeX code and default
// margins. Most entries use (2,2); English, French, Portuguese and a few
// others use the TeX default of (2,3), and several scripts use tighter
// margins such as (1,1) or (1,2).
var languageTable = [languageCount]languageInfo{
	Afrikaans:            {"af", 2, 3},
	Albanian:             {"sq", 2, 2},
	AncientGreek:         {"grc", 1, 1},
	Armenian:             {"hy", 1, 2},
	Assamese:             {"as", 1, 1},
	Basque:               {"eu", 2, 2},
	Belarusian:           {"be", 2, 2},
	Bengali:              {"bn", 1, 1},
	Bulgarian:            {"bg", 2, 2},
	Catalan:              {"ca", 2, 2},
	ChurchSlavonic:       {"cu", 1, 1},
	Coptic:               {"cop", 1, 1},
	Croatian:             {"hr", 2, 2},
	Czech:                {"cs", 2, 3},
	Danish:               {"da", 2, 2},
	DutchNetherlands:     {"nl", 2, 2},
	EnglishGB:            {"en-gb", 2, 3},
	EnglishUS:            {"en-us", 2, 3},
	Esperanto:            {"eo", 2, 2},
	Estonian:             {"et", 2, 3},
	Ethiopic:             {"mul-ethi", 1, 1},
	Faroese:              {"fo", 2, 2},
	Finnish:              {"fi", 2, 2},
	French:               {"fr", 2, 3},
	Friulian:             {"fur", 2, 2},
	Galician:             {"gl", 2, 2},
	Georgian:             {"ka", 1, 2},
	GermanOldSpelling:    {"de-1901", 2, 2},
	GermanReformed:       {"de-1996", 2, 2},
	GermanSwiss:          {"de-ch-1901", 2, 2},
	GreekModern:          {"el-monoton", 1, 1},
	GreekPolytonic:       {"el-polyton", 1, 1},
	Gujarati:             {"gu", 1, 1},
	Hindi:                {"hi", 1, 1},
	Hungarian:            {"hu", 1, 2},
	Icelandic:            {"is", 2, 2},
	Indonesian:           {"id", 2, 2},
	Interlingua:          {"ia", 2, 2},
	Interlingue:          {"ie", 2, 2},
	Irish:                {"ga", 2, 3},
	Italian:              {"it", 2, 2},
	Kannada:              {"kn", 1, 1},
	Kurdish:              {"kmr", 2, 2},
	Lao:                  {"lo", 1, 1},
	Latin:                {"la", 2, 2},
	LatinClassic:         {"la-x-classic", 2, 2},
	LatinLiturgical:      {"la-x-liturgic", 2, 2},
	Latvian:              {"lv", 2, 2},
	Lithuanian:           {"lt", 2, 2},
	Macedonian:           {"mk", 2, 2},
	Malayalam:            {"ml", 1, 1},
	Marathi:              {"mr", 1, 1},
	Mongolian:            {"mn", 2, 2},
	NorwegianBokmal:      {"nb", 2, 2},
	NorwegianNynorsk:     {"nn", 2, 2},
	Occitan:              {"oc", 2, 2},
	Oriya:                {"or", 1, 1},
	Pali:                 {"pi", 1, 1},
	Panjabi:              {"pa", 1, 1},
	Piedmontese:          {"pms", 2, 2},
	Polish:               {"pl", 2, 2},
	Portuguese:           {"pt", 2, 3},
	PortugueseBrazilian:  {"pt-br", 2, 3},
	Romanian:             {"ro", 2, 2},
	Romansh:              {"rm", 2, 2},
	Russian:              {"ru", 2, 2},
	Sanskrit:             {"sa", 1, 1},
	Serbian:              {"sr", 2, 2},
	SerbianCyrillic:      {"sr-cyrl", 2, 2},
	SerbianLatin:         {"sr-latn", 2, 2},
	Slovak:               {"sk", 2, 3},
	Slovenian:            {"sl", 2, 2},
	Spanish:              {"es", 2, 2},
	Swedish:              {"sv", 2, 2},
	Tamil:                {"ta", 1, 1},
	Telugu:               {"te", 1, 1},
	Thai:                 {"th", 2, 3},
	Turkish:              {"tr", 2, 2},
	Turkmen:              {"tk", 2, 2},
	Ukrainian:            {"uk", 2, 2},
	Uppersorbian:         {"hsb", 2, 2},
	Welsh:                {"cy", 2, 3},
	ChineseLatinPinyin:   {"zh-latn-pinyin", 2, 2},
}

// Code returns the language's stable TeX pattern code.
func (l Language) Code() string {
	if l >= languageCount {
		return ""
	}
	return languageTable[l].code
}

// DefaultMinima returns the language's default (left_min, right_min)
// margin pair, expressed in Unicode scalar values.
func (l Language) DefaultMinima() Minima {
	if l >= languageCount {
		return Minima{}
	}
	info := languageTable[l]
	return Minima{LeftMin: info.leftMin, RightMin: info.rightMin}
}

func (l Language) String() string {
	if c := l.Code(); c != "" {
		return c
	}
	return "unknown"
}

// LanguageByCode resolves a TeX pattern code to its Language constant.
func LanguageByCode(code string) (Language, bool) {
	for i := Language(0); i < languageCount; i++ {
		if languageTable[i].code == code {
			return i, true
		}
	}
	return 0, false
}

// Tag returns a best-effort BCP-47 projection of the language code, for
// callers that want to interoperate with golang.org/x/text APIs keyed on
// language.Tag. For any code that language.Parse rejects, Tag returns
// language.Und instead of an error. This projection is informational
// only — the engine itself never consults it.
func (l Language) Tag() language.Tag {
	tag, err := language.Parse(l.Code())
	if err != nil {
		return language.Und
	}
	return tag
}
