package mnemonic

import (
	"github.com/tyler-smith/go-bip39/wordlists"
)

// Language identifies one of the wordlists a mnemonic phrase may be drawn
// from.
type Language uint8

const (
	English Language = iota
	ChineseSimplified
	ChineseTraditional
	French
	Italian
	Japanese
	Korean
	Spanish
)

var languageNames = map[Language]string{
	English:            "english",
	ChineseSimplified:  "chinese_simplified",
	ChineseTraditional: "chinese_traditional",
	French:             "french",
	Italian:            "italian",
	Japanese:           "japanese",
	Korean:             "korean",
	Spanish:            "spanish",
}

func (l Language) String() string {
	if name, ok := languageNames[l]; ok {
		return name
	}
	return "unknown"
}

// Languages returns every supported language in detection order.
func Languages() []Language {
	return []Language{
		English,
		ChineseSimplified,
		ChineseTraditional,
		French,
		Italian,
		Japanese,
		Korean,
		Spanish,
	}
}

var wordlistByLanguage = map[Language][]string{
	English:            wordlists.English,
	ChineseSimplified:  wordlists.ChineseSimplified,
	ChineseTraditional: wordlists.ChineseTraditional,
	French:             wordlists.French,
	Italian:            wordlists.Italian,
	Japanese:           wordlists.Japanese,
	Korean:             wordlists.Korean,
	Spanish:            wordlists.Spanish,
}

// wordIndexByLanguage maps each word to its position in the wordlist. Built
// once at package init and read-only afterwards.
var wordIndexByLanguage = func() map[Language]map[string]int {
	byLang := make(map[Language]map[string]int, len(wordlistByLanguage))
	for lang, list := range wordlistByLanguage {
		index := make(map[string]int, len(list))
		for i, word := range list {
			index[word] = i
		}
		byLang[lang] = index
	}
	return byLang
}()
