package scoring

import (
	"context"
	"math"
	"regexp"
	"strings"

	"github.com/jonathan/resume-matcher/internal/experience"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Blend weights and baselines for the individual factors. Exact values are
// part of the scoring contract.
const (
	titleSemanticWeight = 0.6
	titleKeywordWeight  = 0.4
	taglineScale        = 0.8

	experienceSemanticWeight = 0.5
	experienceKeywordWeight  = 0.5

	noExperienceTitleBaseline = 20.0
	unscoreableTitleNeutral   = 50.0
	noKeywordsNeutral         = 50.0
	noYearsRequirementDefault = 70.0
	unverifiableYearsNeutral  = 50.0
	yearsCloseEnoughRatio     = 0.7
	yearsScoreFloor           = 10.0
	noEducationRequirement    = 70.0
	noEducationListed         = 20.0
)

// titleStopWords are stripped before computing job-title word overlap:
// articles, prepositions, conjunctions, Roman numerals I-V, and punctuation
// tokens that survive splitting.
var titleStopWords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "and": {}, "or": {}, "of": {}, "in": {},
	"at": {}, "for": {}, "to": {}, "with": {}, "on": {}, "by": {}, "is": {},
	"are": {}, "was": {}, "were": {}, "be": {}, "been": {},
	"i": {}, "ii": {}, "iii": {}, "iv": {}, "v": {},
	"-": {}, "/": {}, "|": {}, "&": {}, ",": {}, ".": {}, "(": {}, ")": {},
}

var titleSplitRe = regexp.MustCompile(`[\s/|,\-&()]+`)

// wordTokenRe matches tokens made only of word characters; the short-skill
// word-boundary rule applies to these.
var wordTokenRe = regexp.MustCompile(`^\w+$`)

// degreeLexicon maps degree-level terms to a numeric level. Lookup is
// substring-based and case-insensitive, taking the maximum matching level.
var degreeLexicon = []struct {
	term  string
	level int
}{
	{"phd", 100}, {"ph.d", 100}, {"doctorate", 100}, {"doctoral", 100},
	{"master", 90}, {"m.s.", 90}, {"mba", 90}, {"msc", 90}, {"ms", 90},
	{"bachelor", 80}, {"b.s.", 80}, {"b.a.", 80}, {"bsc", 80}, {"bs", 80}, {"ba", 80},
}

// ---------------------------------------------------------------------------
// Title alignment
// ---------------------------------------------------------------------------

// titleAlignment scores how well the candidate's recent titles (and tagline)
// align with the JD title, blending keyword overlap with semantic similarity
// when the oracle is available.
func (s *Scorer) titleAlignment(ctx context.Context, jdTitle string, resume *types.CandidateResume) float64 {
	if len(resume.Experience) == 0 {
		return noExperienceTitleBaseline
	}

	jdWords := s.extractTitleWords(jdTitle)
	if len(jdWords) == 0 {
		return unscoreableTitleNeutral
	}

	keywordScore := 0.0
	recent := resume.Experience
	if len(recent) > 2 {
		recent = recent[:2]
	}
	for _, exp := range recent {
		words := s.extractTitleWords(exp.Title)
		if len(words) == 0 {
			continue
		}
		overlap := float64(countOverlap(jdWords, words)) / float64(len(jdWords))
		keywordScore = math.Max(keywordScore, overlap*100)
	}
	if resume.Tagline != "" {
		words := s.extractTitleWords(resume.Tagline)
		overlap := float64(countOverlap(jdWords, words)) / float64(len(jdWords))
		keywordScore = math.Max(keywordScore, overlap*100*taglineScale)
	}
	keywordScore = math.Min(keywordScore, 100.0)

	candidates := make([]string, 0, 3)
	for _, exp := range recent {
		if exp.Title != "" {
			candidates = append(candidates, exp.Title)
		}
	}
	if resume.Tagline != "" {
		candidates = append(candidates, resume.Tagline)
	}

	if len(candidates) > 0 {
		if sims, ok := s.oracle.SimilarityBatch(ctx, jdTitle, candidates); ok {
			best := 0.0
			for _, sim := range sims {
				best = math.Max(best, sim)
			}
			if best > 0 {
				semantic := best * 100
				return math.Min(semantic*titleSemanticWeight+keywordScore*titleKeywordWeight, 100.0)
			}
		}
	}

	return keywordScore
}

// extractTitleWords extracts the set of meaningful, normalized words from a
// job title or tagline.
func (s *Scorer) extractTitleWords(title string) map[string]struct{} {
	words := make(map[string]struct{})
	for _, word := range titleSplitRe.Split(strings.ToLower(title), -1) {
		word = strings.TrimSpace(word)
		if word == "" || len(word) <= 1 {
			continue
		}
		if _, stop := titleStopWords[word]; stop {
			continue
		}
		words[s.skills.Normalize(word)] = struct{}{}
	}
	return words
}

func countOverlap(a, b map[string]struct{}) int {
	count := 0
	for word := range a {
		if _, ok := b[word]; ok {
			count++
		}
	}
	return count
}

// ---------------------------------------------------------------------------
// Experience relevance
// ---------------------------------------------------------------------------

// experienceRelevance measures how much of the JD's keyword set the
// candidate's experience text covers, blended with the semantic similarity
// between the experience text and the JD context when available.
func (s *Scorer) experienceRelevance(ctx context.Context, jd *types.JobDescription, resume *types.CandidateResume) float64 {
	if len(resume.Experience) == 0 {
		return 0.0
	}

	jdKeywords := make(map[string]struct{})
	for _, kw := range jd.KeywordsToMatch {
		addFolded(jdKeywords, kw)
	}
	for _, skill := range jd.RequiredSkills {
		addFolded(jdKeywords, skill)
	}
	for _, skill := range jd.PreferredSkills {
		addFolded(jdKeywords, skill)
	}
	if len(jdKeywords) == 0 {
		return noKeywordsNeutral
	}

	var parts []string
	for _, exp := range resume.Experience {
		parts = append(parts, strings.ToLower(exp.Title))
		for _, bullet := range exp.Bullets {
			parts = append(parts, strings.ToLower(bullet))
		}
	}
	expText := strings.Join(parts, " ")

	hits := 0
	for kw := range jdKeywords {
		if strings.Contains(expText, kw) {
			hits++
		}
	}
	keywordScore := math.Min(float64(hits)/float64(len(jdKeywords))*100, 100.0)

	jdContext := strings.Join(jd.KeyResponsibilities, " ")
	if jdContext == "" {
		jdContext = strings.Join(jd.KeywordsToMatch, " ")
	}

	if jdContext != "" && expText != "" {
		if sim, ok := s.oracle.Similarity(ctx, jdContext, expText); ok {
			semantic := sim * 100
			return math.Min(semantic*experienceSemanticWeight+keywordScore*experienceKeywordWeight, 100.0)
		}
	}

	return keywordScore
}

func addFolded(set map[string]struct{}, s string) {
	folded := strings.ToLower(strings.TrimSpace(s))
	if folded != "" {
		set[folded] = struct{}{}
	}
}

// ---------------------------------------------------------------------------
// Years of experience fit
// ---------------------------------------------------------------------------

// yearsFit compares the candidate's estimated years of experience against
// the JD requirement. No requirement scores a decent default rather than a
// perfect one; an unverifiable estimate is neutral.
func yearsFit(requiredYears *int, resume *types.CandidateResume) float64 {
	if requiredYears == nil {
		return noYearsRequirementDefault
	}

	years, ok := experience.TotalYears(resume)
	if !ok {
		return unverifiableYearsNeutral
	}

	required := float64(*requiredYears)
	if years >= required {
		return 100.0
	}
	ratio := years / required
	if years >= required*yearsCloseEnoughRatio {
		return ratio * 100
	}
	return math.Max(ratio*80, yearsScoreFloor)
}

// ---------------------------------------------------------------------------
// Education match
// ---------------------------------------------------------------------------

// educationMatch compares the JD's education requirement against the
// candidate's best listed degree via the degree-level lexicon.
func educationMatch(jdEducation string, resume *types.CandidateResume) float64 {
	if strings.TrimSpace(jdEducation) == "" {
		return noEducationRequirement
	}
	if len(resume.Education) == 0 {
		return noEducationListed
	}

	requiredLevel := degreeLevel(jdEducation)
	if requiredLevel == 0 {
		// Requirement text matches nothing in the lexicon; treat leniently.
		return noEducationRequirement
	}

	bestLevel := 0
	for _, edu := range resume.Education {
		if level := degreeLevel(edu.Degree); level > bestLevel {
			bestLevel = level
		}
	}

	switch {
	case bestLevel >= requiredLevel:
		return 100.0
	case bestLevel > 0:
		return 60.0
	default:
		return 30.0
	}
}

// degreeLevel returns the highest lexicon level whose term appears in the
// text, or 0 when none match.
func degreeLevel(text string) int {
	lower := strings.ToLower(text)
	best := 0
	for _, entry := range degreeLexicon {
		if strings.Contains(lower, entry.term) && entry.level > best {
			best = entry.level
		}
	}
	return best
}

// ---------------------------------------------------------------------------
// Full-text skill search
// ---------------------------------------------------------------------------

// resumeTextBlob joins every string the resume exposes into one lower-cased
// blob for full-text skill search.
func resumeTextBlob(resume *types.CandidateResume) string {
	var parts []string
	if resume.Summary != "" {
		parts = append(parts, resume.Summary)
	}
	if resume.Tagline != "" {
		parts = append(parts, resume.Tagline)
	}
	for _, exp := range resume.Experience {
		parts = append(parts, exp.Title, exp.Company)
		parts = append(parts, exp.Bullets...)
	}
	for _, proj := range resume.Projects {
		parts = append(parts, proj.Name)
		parts = append(parts, proj.Technologies...)
		parts = append(parts, proj.Bullets...)
	}
	parts = append(parts, resume.Certifications...)
	return strings.ToLower(strings.Join(parts, " "))
}

// skillInText reports whether a skill appears in the resume blob, via its
// raw lowercase or normalized form. Short word-only tokens (<=3 chars) must
// match on a word boundary so "go" does not match inside "going".
func (s *Scorer) skillInText(skill, blob string) bool {
	lower := strings.ToLower(strings.TrimSpace(skill))
	if lower == "" {
		return false
	}
	norm := s.skills.Normalize(skill)

	if tokenInText(lower, blob) {
		return true
	}
	return norm != lower && tokenInText(norm, blob)
}

func tokenInText(token, blob string) bool {
	if len(token) <= 3 && wordTokenRe.MatchString(token) {
		re := regexp.MustCompile(`\b` + regexp.QuoteMeta(token) + `\b`)
		return re.MatchString(blob)
	}
	return strings.Contains(blob, token)
}
