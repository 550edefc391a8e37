package domain

import "testing"

func textVideos(titles ...string) []Video {
	videos := make([]Video, len(titles))
	for i, title := range titles {
		videos[i] = Video{Title: title}
	}

	return videos
}

func TestMineKeywords_EmptyBatch(t *testing.T) {
	keywords := MineKeywords(nil)
	if len(keywords) != 0 {
		t.Errorf("MineKeywords(nil) = %v, want empty", keywords)
	}
}

func TestMineKeywords_FiltersStopWordsAndShortTokens(t *testing.T) {
	// "영상" and "링크" are stop words; "a" is a single-rune fragment.
	keywords := MineKeywords(textVideos("영상 영상 테스트", "테스트 테스트 링크 a"))

	if len(keywords) != 1 {
		t.Fatalf("got %d keywords %v, want 1", len(keywords), keywords)
	}
	if keywords[0].Word != "테스트" || keywords[0].Count != 3 {
		t.Errorf("got %+v, want {테스트 3}", keywords[0])
	}
}

func TestMineKeywords_UsesTitleAndDescription(t *testing.T) {
	videos := []Video{
		{Title: "골프 레슨", Description: "드라이버 샷 연습"},
		{Title: "골프 라운딩", Description: "드라이버 비거리"},
	}

	keywords := MineKeywords(videos)

	counts := map[string]int{}
	for _, k := range keywords {
		counts[k.Word] = k.Count
	}
	if counts["골프"] != 2 {
		t.Errorf("골프 count = %d, want 2", counts["골프"])
	}
	if counts["드라이버"] != 2 {
		t.Errorf("드라이버 count = %d, want 2", counts["드라이버"])
	}
}

func TestMineKeywords_StripsPunctuation(t *testing.T) {
	keywords := MineKeywords(textVideos("golang!!! golang??? (golang)"))

	if len(keywords) != 1 {
		t.Fatalf("got %v, want single golang entry", keywords)
	}
	if keywords[0].Word != "golang" || keywords[0].Count != 3 {
		t.Errorf("got %+v, want {golang 3}", keywords[0])
	}
}

func TestMineKeywords_StopWordsAreCaseInsensitive(t *testing.T) {
	keywords := MineKeywords(textVideos("YouTube YOUTUBE Instagram 골프"))

	if len(keywords) != 1 || keywords[0].Word != "골프" {
		t.Errorf("got %v, want only 골프", keywords)
	}
}

func TestMineKeywords_RanksByCountDescending(t *testing.T) {
	keywords := MineKeywords(textVideos(
		"여행 여행 여행 먹방 먹방 캠핑",
	))

	want := []KeywordEntry{
		{Word: "여행", Count: 3},
		{Word: "먹방", Count: 2},
		{Word: "캠핑", Count: 1},
	}

	if len(keywords) != len(want) {
		t.Fatalf("got %d keywords, want %d", len(keywords), len(want))
	}
	for i := range want {
		if keywords[i] != want[i] {
			t.Errorf("keywords[%d] = %+v, want %+v", i, keywords[i], want[i])
		}
	}
}

func TestMineKeywords_TiesKeepDiscoveryOrder(t *testing.T) {
	keywords := MineKeywords(textVideos("서울 부산 서울 부산"))

	if len(keywords) != 2 {
		t.Fatalf("got %v, want 2 entries", keywords)
	}
	if keywords[0].Word != "서울" || keywords[1].Word != "부산" {
		t.Errorf("tie order = [%s %s], want [서울 부산]",
			keywords[0].Word, keywords[1].Word)
	}
}

func TestMineKeywords_CapsAtTen(t *testing.T) {
	titles := []string{
		"하나 하나 하나 하나 하나 하나 하나 하나 하나 하나 하나 하나",
		"둘둘 둘둘 둘둘 둘둘 둘둘 둘둘 둘둘 둘둘 둘둘 둘둘 둘둘",
		"셋셋 셋셋 셋셋 셋셋 셋셋 셋셋 셋셋 셋셋 셋셋 셋셋",
		"넷넷 넷넷 넷넷 넷넷 넷넷 넷넷 넷넷 넷넷 넷넷",
		"다섯 다섯 다섯 다섯 다섯 다섯 다섯 다섯",
		"여섯 여섯 여섯 여섯 여섯 여섯 여섯",
		"일곱 일곱 일곱 일곱 일곱 일곱",
		"여덟 여덟 여덟 여덟 여덟",
		"아홉 아홉 아홉 아홉",
		"열열 열열 열열",
		"열하나 열하나",
		"열둘",
	}

	keywords := MineKeywords(textVideos(titles...))

	if len(keywords) != maxKeywords {
		t.Errorf("got %d keywords, want %d", len(keywords), maxKeywords)
	}
	if keywords[0].Word != "하나" {
		t.Errorf("top keyword = %q, want 하나", keywords[0].Word)
	}
}
