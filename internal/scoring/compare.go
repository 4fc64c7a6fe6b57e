package scoring

import (
	"context"

	"github.com/jonathan/resume-matcher/internal/types"
)

// Compare scores two versions of the same resume (typically before and
// after a tailoring pass) against one JD and reports the delta plus the
// required/preferred skills newly evidenced by the after version.
func (s *Scorer) Compare(ctx context.Context, jd *types.JobDescription, before, after *types.CandidateResume) types.ScoreComparison {
	beforeScore := s.ScoreResume(ctx, jd, before)
	afterScore := s.ScoreResume(ctx, jd, after)

	had := make(map[string]struct{})
	for _, skill := range beforeScore.MatchedRequiredSkills {
		had[s.skills.Normalize(skill)] = struct{}{}
	}
	for _, skill := range beforeScore.MatchedPreferredSkills {
		had[s.skills.Normalize(skill)] = struct{}{}
	}

	added := make([]string, 0)
	seen := make(map[string]struct{})
	for _, skill := range append(afterScore.MatchedRequiredSkills, afterScore.MatchedPreferredSkills...) {
		norm := s.skills.Normalize(skill)
		if _, ok := had[norm]; ok {
			continue
		}
		if _, dup := seen[norm]; dup {
			continue
		}
		seen[norm] = struct{}{}
		added = append(added, skill)
	}

	return types.ScoreComparison{
		Before:         beforeScore,
		After:          afterScore,
		ImprovementPct: round1(afterScore.OverallScore - beforeScore.OverallScore),
		KeywordsAdded:  added,
	}
}
