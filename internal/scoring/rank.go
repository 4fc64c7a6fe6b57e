package scoring

import (
	"context"
	"sort"

	"github.com/jonathan/resume-matcher/internal/types"
	"golang.org/x/sync/errgroup"
)

// RankResumes scores every resume against the JD and returns them sorted
// descending by overall score. Individual resumes are scored concurrently;
// the sort is stable, so ties keep their input order. An empty resume list
// yields an empty ranking with no top pick.
func (s *Scorer) RankResumes(ctx context.Context, jd *types.JobDescription, resumes []types.CandidateResume) types.RankingResponse {
	scores := make([]types.ResumeScore, len(resumes))

	g, gCtx := errgroup.WithContext(ctx)
	for i := range resumes {
		g.Go(func() error {
			scores[i] = s.ScoreResume(gCtx, jd, &resumes[i])
			return nil
		})
	}
	// Scoring is total; no goroutine ever returns an error.
	_ = g.Wait()

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].OverallScore > scores[j].OverallScore
	})

	topID := ""
	if len(scores) > 0 {
		topID = scores[0].ResumeID
	}

	return types.RankingResponse{
		JDID:        jd.ID,
		Rankings:    scores,
		TopResumeID: topID,
	}
}
