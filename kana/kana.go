// Package kana holds the kana syllabary dataset backing the flashcard
// UI. The data is static; selection state lives entirely client-side.
package kana

// Character is a single kana with its romaji reading.
type Character struct {
	Hiragana string `json:"hiragana"`
	Katakana string `json:"katakana"`
	Romaji   string `json:"romaji"`
}

// Row is one gojūon row, e.g. the k-row (か き く け こ).
type Row struct {
	Name       string      `json:"name"`
	Characters []Character `json:"characters"`
}

// gojuon is the base syllabary, row by row. Gaps in the y- and w-rows
// are real: those syllables do not exist in modern Japanese.
var gojuon = []Row{
	{"vowels", []Character{
		{"あ", "ア", "a"}, {"い", "イ", "i"}, {"う", "ウ", "u"}, {"え", "エ", "e"}, {"お", "オ", "o"},
	}},
	{"k", []Character{
		{"か", "カ", "ka"}, {"き", "キ", "ki"}, {"く", "ク", "ku"}, {"け", "ケ", "ke"}, {"こ", "コ", "ko"},
	}},
	{"s", []Character{
		{"さ", "サ", "sa"}, {"し", "シ", "shi"}, {"す", "ス", "su"}, {"せ", "セ", "se"}, {"そ", "ソ", "so"},
	}},
	{"t", []Character{
		{"た", "タ", "ta"}, {"ち", "チ", "chi"}, {"つ", "ツ", "tsu"}, {"て", "テ", "te"}, {"と", "ト", "to"},
	}},
	{"n", []Character{
		{"な", "ナ", "na"}, {"に", "ニ", "ni"}, {"ぬ", "ヌ", "nu"}, {"ね", "ネ", "ne"}, {"の", "ノ", "no"},
	}},
	{"h", []Character{
		{"は", "ハ", "ha"}, {"ひ", "ヒ", "hi"}, {"ふ", "フ", "fu"}, {"へ", "ヘ", "he"}, {"ほ", "ホ", "ho"},
	}},
	{"m", []Character{
		{"ま", "マ", "ma"}, {"み", "ミ", "mi"}, {"む", "ム", "mu"}, {"め", "メ", "me"}, {"も", "モ", "mo"},
	}},
	{"y", []Character{
		{"や", "ヤ", "ya"}, {"ゆ", "ユ", "yu"}, {"よ", "ヨ", "yo"},
	}},
	{"r", []Character{
		{"ら", "ラ", "ra"}, {"り", "リ", "ri"}, {"る", "ル", "ru"}, {"れ", "レ", "re"}, {"ろ", "ロ", "ro"},
	}},
	{"w", []Character{
		{"わ", "ワ", "wa"}, {"を", "ヲ", "wo"},
	}},
	{"nn", []Character{
		{"ん", "ン", "n"},
	}},
}

// Chart returns every gojūon row.
func Chart() []Row {
	return gojuon
}

// Rows returns the rows for a script ("hiragana" or "katakana") with the
// other script's column blanked out, and whether the script is known.
// The flashcard UI requests one script at a time.
func Rows(script string) ([]Row, bool) {
	if script != "hiragana" && script != "katakana" {
		return nil, false
	}
	out := make([]Row, len(gojuon))
	for i, row := range gojuon {
		chars := make([]Character, len(row.Characters))
		for j, ch := range row.Characters {
			if script == "hiragana" {
				ch.Katakana = ""
			} else {
				ch.Hiragana = ""
			}
			chars[j] = ch
		}
		out[i] = Row{Name: row.Name, Characters: chars}
	}
	return out, true
}
