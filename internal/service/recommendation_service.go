package service

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"uni_advisor_backend/internal/config"
	"uni_advisor_backend/internal/model"
	"uni_advisor_backend/internal/repository"
	"uni_advisor_backend/internal/util"
)

// RankingOptions are the runtime-tunable knobs of the engine. They may be
// swapped by the config watcher; the catalog itself never changes.
type RankingOptions struct {
	DefaultMode        model.ResultMode
	CaseInsensitive    bool
	TieBreakDegreeName bool
}

func RankingOptionsFromConfig(cfg *config.RecommendationConfig) RankingOptions {
	return RankingOptions{
		DefaultMode:        model.ResultMode(cfg.DefaultMode),
		CaseInsensitive:    cfg.CaseInsensitive,
		TieBreakDegreeName: cfg.TieBreak == "degree_name",
	}
}

// RecommendationService scores the program catalog against a student profile
// and returns the ranked survivors. Scoring is pure and deterministic: the
// same profile against the same catalog always yields the same result.
type RecommendationService struct {
	CatalogRepo *repository.CatalogRepository

	mu   sync.RWMutex
	opts RankingOptions
}

func NewRecommendationService(catalogRepo *repository.CatalogRepository, opts RankingOptions) *RecommendationService {
	if opts.DefaultMode == "" {
		opts.DefaultMode = model.ModeBest
	}
	return &RecommendationService{CatalogRepo: catalogRepo, opts: opts}
}

func (s *RecommendationService) Options() RankingOptions {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.opts
}

// SetOptions swaps the ranking options. Called by the config reload callback.
func (s *RecommendationService) SetOptions(opts RankingOptions) {
	if opts.DefaultMode == "" {
		opts.DefaultMode = model.ModeBest
	}
	s.mu.Lock()
	s.opts = opts
	s.mu.Unlock()
}

// Recommend validates the profile, scores every catalog record, filters by
// eligibility and returns the ranked result. mode may be empty to use the
// configured default. A well-formed profile that matches nothing yields the
// no_match outcome, not an error.
func (s *RecommendationService) Recommend(profile model.StudentProfile, mode model.ResultMode) (*model.Recommendation, error) {
	opts := s.Options()

	if mode == "" {
		mode = opts.DefaultMode
	}
	if !mode.Valid() {
		return nil, &util.InvalidProfileError{Reason: fmt.Sprintf("unknown result mode %q", mode)}
	}
	if err := validateProfile(profile, opts); err != nil {
		return nil, err
	}

	selectedCategories := normalizeSet(profile.Categories, opts)
	selectedSkills := normalizeSet(profile.Skills, opts)

	var survivors []model.ScoredRecord
	for _, rec := range s.CatalogRepo.Records() {
		categoryOverlap := overlap(rec.Categories(), selectedCategories, opts)
		skillOverlap := overlap(rec.Skills, selectedSkills, opts)

		// Eligibility: grade cutoff is inclusive, and at least one category
		// must match. Zero skill overlap only affects ranking.
		if rec.MinGrade.GreaterThan(profile.AverageGrade) || categoryOverlap == 0 {
			continue
		}

		survivors = append(survivors, model.ScoredRecord{
			Program:         rec,
			SkillOverlap:    skillOverlap,
			CategoryOverlap: categoryOverlap,
		})
	}

	if len(survivors) == 0 {
		return &model.Recommendation{Outcome: model.OutcomeNoMatch, Mode: mode}, nil
	}

	sort.SliceStable(survivors, func(i, j int) bool {
		a, b := survivors[i], survivors[j]
		if a.SkillOverlap != b.SkillOverlap {
			return a.SkillOverlap > b.SkillOverlap
		}
		if a.CategoryOverlap != b.CategoryOverlap {
			return a.CategoryOverlap > b.CategoryOverlap
		}
		if opts.TieBreakDegreeName {
			return a.Program.DegreeName < b.Program.DegreeName
		}
		// Ties keep catalog order.
		return false
	})

	matches := survivors
	if mode == model.ModeBest {
		matches = leadingTieGroup(survivors)
	}

	return &model.Recommendation{
		Outcome: model.OutcomeMatch,
		Mode:    mode,
		Matches: matches,
	}, nil
}

func validateProfile(profile model.StudentProfile, opts RankingOptions) error {
	if profile.AverageGrade.LessThan(model.MinAverageGrade) || profile.AverageGrade.GreaterThan(model.MaxAverageGrade) {
		return &util.InvalidProfileError{
			Reason: fmt.Sprintf("average grade %s out of range [%s, %s]",
				profile.AverageGrade, model.MinAverageGrade, model.MaxAverageGrade),
		}
	}
	if len(normalizeSet(profile.Categories, opts)) == 0 {
		return &util.InvalidProfileError{Reason: "at least one category must be selected"}
	}
	if len(normalizeSet(profile.Skills, opts)) == 0 {
		return &util.InvalidProfileError{Reason: "at least one skill must be selected"}
	}
	return nil
}

func normalizeToken(token string, opts RankingOptions) string {
	token = strings.TrimSpace(token)
	if opts.CaseInsensitive {
		token = strings.ToLower(token)
	}
	return token
}

func normalizeSet(tokens []string, opts RankingOptions) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		if norm := normalizeToken(t, opts); norm != "" {
			set[norm] = struct{}{}
		}
	}
	return set
}

// overlap counts how many record tokens appear in the selected set.
// Record tokens are deduplicated after normalization so a duplicate cell
// cannot inflate the score.
func overlap(recordTokens []string, selected map[string]struct{}, opts RankingOptions) int {
	seen := make(map[string]struct{}, len(recordTokens))
	count := 0
	for _, t := range recordTokens {
		norm := normalizeToken(t, opts)
		if norm == "" {
			continue
		}
		if _, dup := seen[norm]; dup {
			continue
		}
		seen[norm] = struct{}{}
		if _, ok := selected[norm]; ok {
			count++
		}
	}
	return count
}

// leadingTieGroup returns every survivor whose skill overlap equals the
// top-ranked record's. A lone winner yields a one-element group.
func leadingTieGroup(sorted []model.ScoredRecord) []model.ScoredRecord {
	best := sorted[0].SkillOverlap
	end := 1
	for end < len(sorted) && sorted[end].SkillOverlap == best {
		end++
	}
	return sorted[:end]
}
