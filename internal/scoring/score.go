package scoring

import (
	"math"
	"strings"
	"unicode/utf8"
)

// Weights of the combined score.
const (
	KeywordWeight    = 0.50
	EducationWeight  = 0.20
	ExperienceWeight = 0.15
	TechnicalWeight  = 0.15

	MaxOverall = 100.0

	// MatchedSampleSize is how many matched keywords a Record keeps.
	MatchedSampleSize = 20
)

// Record is the score breakdown of one candidate. It is not modified after
// Score returns it.
type Record struct {
	CandidateID     string   `json:"candidate_id" mapstructure:"Resume Name"`
	Position        int      `json:"position" mapstructure:"-"`
	Overall         float64  `json:"overall_score" mapstructure:"Overall Score"`
	KeywordMatch    float64  `json:"keyword_match_score" mapstructure:"Keyword Match Score"`
	KeywordsMatched int      `json:"keywords_matched" mapstructure:"Keywords Matched"`
	KeywordsTotal   int      `json:"total_keywords" mapstructure:"Total Keywords in JD"`
	Education       int      `json:"education_score" mapstructure:"Education Score"`
	Experience      int      `json:"experience_score" mapstructure:"Experience Score"`
	Technical       int      `json:"technical_score" mapstructure:"Technical Skills Score"`
	MatchedKeywords []string `json:"matched_keywords" mapstructure:"Matched Keywords"`
	Length          int      `json:"resume_length" mapstructure:"Resume Length (chars)"`
}

// Component is one part of the combined score on a 0-100 scale.
type Component struct {
	Name    string
	Percent float64
}

// Components returns keyword match and each category sub-score relative to its ceiling.
func (r Record) Components() []Component {
	return []Component{
		{Name: "Keyword Match", Percent: r.KeywordMatch},
		{Name: "Education", Percent: float64(r.Education) / MaxEducation * 100},
		{Name: "Experience", Percent: float64(r.Experience) / MaxExperience * 100},
		{Name: "Technical Skills", Percent: float64(r.Technical) / MaxTechnical * 100},
	}
}

// Scorer scores candidates against keywords extracted once from a job description.
type Scorer struct {
	keywords KeywordSet
}

// NewScorer extracts the keywords of reference.
func NewScorer(reference string) *Scorer {
	return &Scorer{keywords: ExtractKeywords(reference)}
}

// NewScorerWithKeywords uses an already extracted keyword set.
func NewScorerWithKeywords(keywords KeywordSet) *Scorer {
	return &Scorer{keywords: keywords}
}

// Keywords returns the reference keywords.
func (s *Scorer) Keywords() KeywordSet {
	return s.keywords
}

// Score computes the record for one candidate. The result depends only on the
// reference keywords and the candidate text.
func (s *Scorer) Score(id, text string, position int) Record {
	lower := strings.ToLower(text)

	var matched []string
	if s.keywords.Len() > 0 {
		matched = matchLower(s.keywords, lower)
	}

	keywordMatch := 0.0
	if total := s.keywords.Len(); total > 0 {
		keywordMatch = float64(len(matched)) / float64(total) * 100
	}

	education := educationVocabulary.Score(lower)
	experience := experienceVocabulary.Score(lower)
	technical := technicalVocabulary.Score(lower)

	sample := make([]string, 0, min(len(matched), MatchedSampleSize))
	sample = append(sample, matched[:min(len(matched), MatchedSampleSize)]...)

	return Record{
		CandidateID:     id,
		Position:        position,
		Overall:         Round2(Combine(keywordMatch, education, experience, technical)),
		KeywordMatch:    Round2(keywordMatch),
		KeywordsMatched: len(matched),
		KeywordsTotal:   s.keywords.Len(),
		Education:       education,
		Experience:      experience,
		Technical:       technical,
		MatchedKeywords: sample,
		Length:          utf8.RuneCountInString(text),
	}
}

// Score scores a single candidate against a job description.
func Score(reference, text, id string) Record {
	return NewScorer(reference).Score(id, text, 0)
}

// Combine merges the keyword match percentage with the category sub-scores.
// Each category is first expressed as a percentage of its ceiling and then
// weighted, which makes its effective contribution equal to the raw sub-score.
func Combine(keywordMatch float64, education, experience, technical int) float64 {
	overall := keywordMatch*KeywordWeight +
		(float64(education)/MaxEducation*100)*EducationWeight +
		(float64(experience)/MaxExperience*100)*ExperienceWeight +
		(float64(technical)/MaxTechnical*100)*TechnicalWeight

	return math.Min(overall, MaxOverall)
}

// Round2 rounds half away from zero to two decimal places.
func Round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return math.Round(v*100) / 100
}
