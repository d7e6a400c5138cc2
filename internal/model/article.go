package model

import (
	"encoding/json"
	"strconv"
)

type Strategy string

const (
	StrategyExact     Strategy = "exact"
	StrategyFullNames Strategy = "full-names"
	StrategyUnquoted  Strategy = "unquoted"
	StrategyNone      Strategy = "none"
)

// StrategyVariation names the i-th alternate-spelling attempt, e.g. "variation-2".
func StrategyVariation(i int) Strategy {
	return Strategy("variation-" + strconv.Itoa(i))
}

type ArticleKind string

const (
	KindPreview ArticleKind = "preview"
	KindReport  ArticleKind = "report"
)

// ParseArticleKind maps the type query parameter. Empty means preview.
func ParseArticleKind(s string) (ArticleKind, bool) {
	switch ArticleKind(s) {
	case "", KindPreview:
		return KindPreview, true
	case KindReport:
		return KindReport, true
	}
	return "", false
}

// SearchResult holds provider articles untouched plus the strategy that found them.
type SearchResult struct {
	Articles []json.RawMessage
	Total    int
	Strategy Strategy
}

func EmptySearchResult() SearchResult {
	return SearchResult{Articles: []json.RawMessage{}, Strategy: StrategyNone}
}
