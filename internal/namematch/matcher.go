// Package namematch reconciles team names transcribed inconsistently across
// sources, e.g. "Club Ohio West 18B Academy" and
// "Club Ohio Club Ohio West 18B Academy II".
//
// Matching is tiered and strictly ordered: exact normalized equality, then
// substring containment, then token overlap. The first tier with a hit wins
// and candidates are scanned in the order given, so results are deterministic.
package namematch

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Tier is the confidence class of a match.
type Tier string

const (
	TierExact  Tier = "exact"
	TierHigh   Tier = "high"
	TierMedium Tier = "medium"
	// TierLow is reserved for callers that downgrade a result; Match never returns it.
	TierLow  Tier = "low"
	TierNone Tier = "none"
)

// Matched reports whether the tier names a candidate.
func (t Tier) Matched() bool {
	return t == TierExact || t == TierHigh || t == TierMedium
}

// Result is the outcome of matching one query against a candidate list.
type Result struct {
	Query     string `json:"query"`
	Candidate string `json:"candidate,omitempty"`
	// Index is the candidate's position in the input slice, or -1.
	Index int  `json:"index"`
	Tier  Tier `json:"tier"`
	// Score is the combined token-overlap count for the chosen candidate.
	Score          int  `json:"score"`
	HighConfidence bool `json:"highConfidence"`
	// Ambiguous is set when another candidate tied the winning medium score.
	Ambiguous bool `json:"ambiguous"`
}

// AutoApply reports whether the result is safe to apply without review.
func (r Result) AutoApply() bool {
	switch r.Tier {
	case TierExact, TierHigh:
		return true
	case TierMedium:
		return r.HighConfidence && !r.Ambiguous
	default:
		return false
	}
}

// Config tunes normalization and thresholds.
type Config struct {
	// ExtraStopWords are dropped in addition to the built-in boilerplate set.
	ExtraStopWords []string
	// MinSubstringLen is the shortest normalized name allowed to match by containment.
	MinSubstringLen int
	// MinTokenMatches is the combined overlap count needed for a medium match.
	MinTokenMatches int
	// HighConfidenceMatches marks a medium match as high confidence.
	HighConfidenceMatches int
	// MinTokenLen skips shorter tokens when counting overlap.
	MinTokenLen int
}

const (
	defaultMinSubstringLen       = 3
	defaultMinTokenMatches       = 2
	defaultHighConfidenceMatches = 3
	defaultMinTokenLen           = 2
)

// DefaultConfig returns the empirically chosen thresholds.
func DefaultConfig() Config {
	return Config{
		MinSubstringLen:       defaultMinSubstringLen,
		MinTokenMatches:       defaultMinTokenMatches,
		HighConfidenceMatches: defaultHighConfidenceMatches,
		MinTokenLen:           defaultMinTokenLen,
	}
}

var builtinStopWords = []string{
	"boys", "girls", "academy", "fc", "sc", "soccer", "club",
	"i", "ii", "iii",
}

var (
	birthYearPattern = regexp.MustCompile(`^(19|20)\d{2}$`)
	// u8, u10, bu08, gu12
	ageGroupPattern = regexp.MustCompile(`^[bg]?u\d{1,2}$`)
	// 18b, 08g, 2018b, b2018, g12
	yearGenderPattern = regexp.MustCompile(`^((19|20)?\d{2}[bg]|[bg](19|20)?\d{2})$`)
)

// Matcher is immutable after construction and safe for concurrent use.
type Matcher struct {
	cfg       Config
	stopWords map[string]struct{}
}

// NewMatcher fills unset thresholds from DefaultConfig.
func NewMatcher(cfg Config) *Matcher {
	def := DefaultConfig()
	if cfg.MinSubstringLen <= 0 {
		cfg.MinSubstringLen = def.MinSubstringLen
	}
	if cfg.MinTokenMatches <= 0 {
		cfg.MinTokenMatches = def.MinTokenMatches
	}
	if cfg.HighConfidenceMatches <= 0 {
		cfg.HighConfidenceMatches = def.HighConfidenceMatches
	}
	if cfg.MinTokenLen <= 0 {
		cfg.MinTokenLen = def.MinTokenLen
	}

	stop := make(map[string]struct{}, len(builtinStopWords)+len(cfg.ExtraStopWords))
	for _, w := range builtinStopWords {
		stop[w] = struct{}{}
	}
	for _, w := range cfg.ExtraStopWords {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			stop[w] = struct{}{}
		}
	}
	return &Matcher{cfg: cfg, stopWords: stop}
}

// Config returns the effective configuration.
func (m *Matcher) Config() Config {
	return m.cfg
}

var defaultMatcher = NewMatcher(DefaultConfig())

// Match runs the default matcher.
func Match(query string, candidates []string) Result {
	return defaultMatcher.Match(query, candidates)
}

// Normalize runs the default matcher's normalization.
func Normalize(name string) string {
	return defaultMatcher.Normalize(name)
}

// Normalize lowercases, collapses whitespace and drops boilerplate tokens.
func (m *Matcher) Normalize(name string) string {
	fields := strings.Fields(strings.ToLower(name))
	kept := fields[:0]
	for _, f := range fields {
		if m.isStopWord(f) {
			continue
		}
		kept = append(kept, f)
	}
	return strings.Join(kept, " ")
}

func (m *Matcher) isStopWord(token string) bool {
	if _, ok := m.stopWords[token]; ok {
		return true
	}
	return birthYearPattern.MatchString(token) ||
		ageGroupPattern.MatchString(token) ||
		yearGenderPattern.MatchString(token)
}

// Match finds the best candidate for query. It never fails: a blank query,
// a query made only of boilerplate, or no candidates yields TierNone.
func (m *Matcher) Match(query string, candidates []string) Result {
	res := Result{Query: query, Index: -1, Tier: TierNone}
	q := m.Normalize(query)
	if q == "" || len(candidates) == 0 {
		return res
	}

	normalized := make([]string, len(candidates))
	for i, c := range candidates {
		normalized[i] = m.Normalize(c)
	}

	for i, c := range normalized {
		if c != "" && c == q {
			return m.hit(res, candidates, i, TierExact, m.overlap(q, c))
		}
	}

	for i, c := range normalized {
		if c != "" && m.contains(q, c) {
			return m.hit(res, candidates, i, TierHigh, m.overlap(q, c))
		}
	}

	best, bestScore, tied := -1, 0, false
	for i, c := range normalized {
		if c == "" {
			continue
		}
		score := m.overlap(q, c)
		if score < m.cfg.MinTokenMatches {
			continue
		}
		switch {
		case score > bestScore:
			best, bestScore, tied = i, score, false
		case score == bestScore:
			tied = true
		}
	}
	if best < 0 {
		return res
	}

	res = m.hit(res, candidates, best, TierMedium, bestScore)
	res.HighConfidence = bestScore >= m.cfg.HighConfidenceMatches
	res.Ambiguous = tied
	return res
}

func (m *Matcher) hit(res Result, candidates []string, idx int, tier Tier, score int) Result {
	res.Candidate = candidates[idx]
	res.Index = idx
	res.Tier = tier
	res.Score = score
	return res
}

func (m *Matcher) contains(a, b string) bool {
	shorter := utf8.RuneCountInString(a)
	if n := utf8.RuneCountInString(b); n < shorter {
		shorter = n
	}
	if shorter < m.cfg.MinSubstringLen {
		return false
	}
	return strings.Contains(b, a) || strings.Contains(a, b)
}

// overlap counts query tokens present in the candidate plus candidate tokens
// present in the query. Tokens compare whole, so "west" does not hit
// "westerville".
func (m *Matcher) overlap(q, c string) int {
	return m.tokensIn(q, c) + m.tokensIn(c, q)
}

func (m *Matcher) tokensIn(from, target string) int {
	targetTokens := make(map[string]struct{})
	for _, tok := range strings.Fields(target) {
		targetTokens[tok] = struct{}{}
	}
	seen := make(map[string]struct{})
	count := 0
	for _, tok := range strings.Fields(from) {
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		if utf8.RuneCountInString(tok) < m.cfg.MinTokenLen {
			continue
		}
		if _, ok := targetTokens[tok]; ok {
			count++
		}
	}
	return count
}
