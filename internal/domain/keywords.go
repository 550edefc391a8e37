package domain

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// maxKeywords caps the ranked keyword list.
const maxKeywords = 10

// KeywordEntry is one mined token with its occurrence count.
type KeywordEntry struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// nonWordRunes matches everything that is not a word character,
// whitespace, or a Hangul syllable. Matches are replaced with whitespace
// before tokenizing.
var nonWordRunes = regexp.MustCompile(`[^\w\s가-힣]`)

// stopWords are filler words, platform boilerplate, greetings and
// connectives excluded from keyword mining. Lookup is case-insensitive.
var stopWords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"영상", "오늘", "진짜", "너무", "정말", "다들", "많이", "하고", "해서", "있는",
		"합니다", "입니다", "구독", "좋아요", "알림", "설정", "링크", "instagram",
		"youtube", "channel", "video", "http", "https", "com", "www", "youtu", "be",
		"shorts", "쇼츠", "동영상", "시청", "감사합니다", "안녕하세요", "여러분",
		"함께", "바로", "지금", "이번", "저희", "제가", "하는", "할수", "없는", "있습니다",
		"그리고", "하지만", "그래서", "그런데", "어떻게", "왜냐하면", "무엇을", "무엇이",
	} {
		stopWords[w] = struct{}{}
	}
}

// MineKeywords extracts the most frequent meaningful tokens from the
// titles and descriptions of the batch. Tokens shorter than 2 runes and
// stop words are dropped; the survivors are ranked by descending count,
// capped at 10. Count ties keep first-discovered order. A batch with no
// usable text yields an empty slice, not an error.
func MineKeywords(videos []Video) []KeywordEntry {
	parts := make([]string, 0, len(videos))
	for i := range videos {
		parts = append(parts, videos[i].Title+" "+videos[i].Description)
	}

	words := strings.Fields(nonWordRunes.ReplaceAllString(strings.Join(parts, " "), " "))

	counts := make(map[string]int)
	var order []string

	for _, word := range words {
		if utf8.RuneCountInString(word) < 2 {
			continue
		}
		if _, stop := stopWords[strings.ToLower(word)]; stop {
			continue
		}
		if _, seen := counts[word]; !seen {
			order = append(order, word)
		}
		counts[word]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > maxKeywords {
		order = order[:maxKeywords]
	}

	keywords := make([]KeywordEntry, len(order))
	for i, word := range order {
		keywords[i] = KeywordEntry{Word: word, Count: counts[word]}
	}

	return keywords
}
