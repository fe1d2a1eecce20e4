package filter

import (
	"regexp"
	"strings"

	"github.com/cloudflare/ahocorasick"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

// Normalize lowercases text and collapses runs of whitespace so keyword
// matching is insensitive to casing and layout noise.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	text = strings.ToLower(text)
	text = whitespaceRegex.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// Classifier bundles the keyword matchers. Build once with NewClassifier and
// share freely; all methods are safe for concurrent use.
type Classifier struct {
	envMatcher       *ahocorasick.Matcher
	blacklistMatcher *ahocorasick.Matcher
	industryMatchers map[Industry]*ahocorasick.Matcher
	stageMatchers    map[Stage]*ahocorasick.Matcher
}

// NewClassifier compiles every keyword table into an Aho-Corasick matcher.
func NewClassifier() *Classifier {
	c := &Classifier{
		envMatcher:       ahocorasick.NewStringMatcher(environmentalKeywords),
		blacklistMatcher: ahocorasick.NewStringMatcher(blacklistKeywords),
		industryMatchers: make(map[Industry]*ahocorasick.Matcher, len(industryKeywords)),
		stageMatchers:    make(map[Stage]*ahocorasick.Matcher, len(stageKeywords)),
	}
	for industry, keywords := range industryKeywords {
		c.industryMatchers[industry] = ahocorasick.NewStringMatcher(keywords)
	}
	for stage, keywords := range stageKeywords {
		c.stageMatchers[stage] = ahocorasick.NewStringMatcher(keywords)
	}
	return c
}

// IsBlacklisted reports whether the text contains any exclusion phrase.
func (c *Classifier) IsBlacklisted(text string) bool {
	if text == "" {
		return false
	}
	return len(c.blacklistMatcher.MatchThreadSafe([]byte(Normalize(text)))) > 0
}

// IsEnvironmentalDecision reports whether the text concerns an
// environmental-conditions proceeding. The blacklist is consulted first and
// always wins over any inclusion phrase.
func (c *Classifier) IsEnvironmentalDecision(text string) bool {
	if text == "" {
		return false
	}
	normalized := []byte(Normalize(text))
	if len(c.blacklistMatcher.MatchThreadSafe(normalized)) > 0 {
		return false
	}
	return len(c.envMatcher.MatchThreadSafe(normalized)) > 0
}

// ClassifyIndustry returns every industry category whose keyword list matches
// the text. Categories are independent, so a record can carry several tags.
// When nothing matches the single tag "other" is returned.
func (c *Classifier) ClassifyIndustry(text string) []Industry {
	if text == "" {
		return nil
	}
	normalized := []byte(Normalize(text))
	var matched []Industry
	for _, industry := range industryOrder {
		if len(c.industryMatchers[industry].MatchThreadSafe(normalized)) > 0 {
			matched = append(matched, industry)
		}
	}
	if len(matched) == 0 {
		return []Industry{IndustryOther}
	}
	return matched
}

// DetectStage returns the most advanced procedural stage whose keyword set
// matches the text, or StageUnknown. Precedence runs amendment > decision >
// evidence > initiation > application so a document carrying both application
// and decision vocabulary is tagged as a decision.
func (c *Classifier) DetectStage(text string) Stage {
	if text == "" {
		return StageUnknown
	}
	normalized := []byte(Normalize(text))
	for _, stage := range stageOrder {
		if len(c.stageMatchers[stage].MatchThreadSafe(normalized)) > 0 {
			return stage
		}
	}
	return StageUnknown
}
