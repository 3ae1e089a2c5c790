package scoring

import "strings"

// Ceilings of the category sub-scores.
const (
	MaxEducation  = 20
	MaxExperience = 15
	MaxTechnical  = 15
)

// Hits counts the vocabulary terms present in the already lowercased text.
// Each term counts once however often it occurs.
func (v Vocabulary) Hits(lower string) int {
	hits := 0
	for _, term := range v.Terms {
		if strings.Contains(lower, term) {
			hits++
		}
	}
	return hits
}

// Score returns the capped sub-score for the lowercased text.
func (v Vocabulary) Score(lower string) int {
	return min(v.Hits(lower)*v.PerHit, v.Cap)
}

// EducationScore scores degree and institution terms, 5 points each, capped at 20.
func EducationScore(text string) int {
	return educationVocabulary.Score(strings.ToLower(text))
}

// ExperienceScore scores tenure and action verbs, 2 points each, capped at 15.
func ExperienceScore(text string) int {
	return experienceVocabulary.Score(strings.ToLower(text))
}

// TechnicalScore scores tools, platforms and methodologies, 2 points each, capped at 15.
func TechnicalScore(text string) int {
	return technicalVocabulary.Score(strings.ToLower(text))
}
