package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const candidateA = "Experienced Python developer, 5 years, AWS certified, Bachelor's in Computer Science."

func TestCategoryScores(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		education  int
		experience int
		technical  int
	}{
		{name: "empty", text: ""},
		{name: "single terms", text: "Bachelor, led, SQL", education: 5, experience: 2, technical: 2},
		{name: "repeated term counts once", text: "python python python degree degree", education: 5, technical: 2},
		{name: "substring inside longer word", text: "Managed email campaigns", experience: 2, technical: 2},
		{name: "multi word term", text: "machine learning", technical: 2},
		{
			name:      "education capped",
			text:      "bachelor master phd degree diploma university",
			education: 20,
		},
		{
			name:       "experience capped",
			text:       "years experience worked led managed developed implemented achieved delivered coordinated",
			experience: 15,
		},
		{
			name:      "technical capped",
			text:      "python java sql aws azure docker kubernetes react angular git",
			technical: 15,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.education, EducationScore(tt.text), "education")
			assert.Equal(t, tt.experience, ExperienceScore(tt.text), "experience")
			assert.Equal(t, tt.technical, TechnicalScore(tt.text), "technical")
		})
	}
}

func TestCategoryScores_NeverExceedCeilings(t *testing.T) {
	var all []string
	for _, v := range Vocabularies() {
		all = append(all, v.Terms...)
	}
	text := strings.Repeat(strings.Join(all, " ")+" ", 10)

	assert.Equal(t, MaxEducation, EducationScore(text))
	assert.Equal(t, MaxExperience, ExperienceScore(text))
	assert.Equal(t, MaxTechnical, TechnicalScore(text))
}

func TestVocabularies_ReturnsCopies(t *testing.T) {
	vocabularies := Vocabularies()
	require.Len(t, vocabularies, 3)
	vocabularies[0].Terms[0] = "changed"

	assert.Equal(t, "bachelor", Vocabularies()[0].Terms[0])
}

func TestCombine_Extremes(t *testing.T) {
	assert.Equal(t, 0.0, Combine(0, 0, 0, 0))
	assert.Equal(t, 100.0, Combine(100, MaxEducation, MaxExperience, MaxTechnical))
	assert.Equal(t, 50.0, Round2(Combine(100, 0, 0, 0)))
}

func TestCombine_CategoryWeightsCancel(t *testing.T) {
	// A category contributes its raw sub-score to the overall figure.
	assert.InDelta(t, 20.0, Combine(0, 20, 0, 0), 1e-9)
	assert.InDelta(t, 15.0, Combine(0, 0, 15, 0), 1e-9)
	assert.InDelta(t, 6.0, Combine(0, 0, 0, 6), 1e-9)
	assert.InDelta(t, 35.0+10+4+8, Combine(70, 10, 4, 8), 1e-9)
}

func TestRound2_HalfUp(t *testing.T) {
	assert.Equal(t, 0.13, Round2(0.125))
	assert.Equal(t, 33.33, Round2(100.0/3))
	assert.Equal(t, 66.67, Round2(200.0/3))
	assert.Equal(t, 12.0, Round2(12))
}

func TestScore_Scenario(t *testing.T) {
	record := Score(jobDescription, candidateA, "a.pdf")

	assert.Equal(t, "a.pdf", record.CandidateID)
	assert.Equal(t, 15, record.KeywordsTotal)
	assert.Equal(t, 5, record.KeywordsMatched)
	assert.ElementsMatch(t, []string{"python", "python developer", "developer", "aws", "bachelor"}, record.MatchedKeywords)
	assert.Equal(t, 33.33, record.KeywordMatch)
	assert.Equal(t, 5, record.Education)
	assert.Equal(t, 4, record.Experience)
	assert.Equal(t, 4, record.Technical)
	assert.Equal(t, 29.67, record.Overall)
	assert.Equal(t, len(candidateA), record.Length)
}

func TestScore_EmptyCandidate(t *testing.T) {
	record := Score(jobDescription, "", "b.txt")

	assert.Equal(t, 0.0, record.Overall)
	assert.Equal(t, 0.0, record.KeywordMatch)
	assert.Equal(t, 0, record.KeywordsMatched)
	assert.Equal(t, 15, record.KeywordsTotal)
	assert.Zero(t, record.Education)
	assert.Zero(t, record.Experience)
	assert.Zero(t, record.Technical)
	assert.Empty(t, record.MatchedKeywords)
	assert.Zero(t, record.Length)
}

func TestScore_NoKeywords(t *testing.T) {
	record := Score("a an the", "Bachelor degree, python", "c")

	assert.Equal(t, 0, record.KeywordsTotal)
	assert.Equal(t, 0.0, record.KeywordMatch)
	assert.Equal(t, 10, record.Education)
	assert.Equal(t, 2, record.Technical)
	assert.Equal(t, 12.0, record.Overall)
}

func TestScore_MatchedSampleLimited(t *testing.T) {
	words := make([]string, 0, 40)
	for i := 0; i < 40; i++ {
		words = append(words, "skill"+strings.Repeat("x", i))
	}
	reference := strings.Join(words, " ")

	record := Score(reference, reference, "long")

	assert.Equal(t, record.KeywordsTotal, record.KeywordsMatched)
	assert.Len(t, record.MatchedKeywords, MatchedSampleSize)
	assert.Equal(t, 100.0, record.KeywordMatch)
}

func TestScore_IdenticalTextsProduceIdenticalRecords(t *testing.T) {
	scorer := NewScorer(jobDescription)

	first := scorer.Score("first", candidateA, 0)
	second := scorer.Score("second", candidateA, 1)

	second.CandidateID = first.CandidateID
	second.Position = first.Position
	assert.Equal(t, first, second)
}

func TestScore_Bounds(t *testing.T) {
	texts := []string{"", candidateA, jobDescription, strings.Repeat(jobDescription+" university phd mba ", 50), "\x00\xff\xfe"}
	for _, text := range texts {
		record := Score(jobDescription, text, "x")
		assert.GreaterOrEqual(t, record.Overall, 0.0)
		assert.LessOrEqual(t, record.Overall, MaxOverall)
		assert.GreaterOrEqual(t, record.KeywordMatch, 0.0)
		assert.LessOrEqual(t, record.KeywordMatch, 100.0)
		assert.LessOrEqual(t, record.Education, MaxEducation)
		assert.LessOrEqual(t, record.Experience, MaxExperience)
		assert.LessOrEqual(t, record.Technical, MaxTechnical)
	}
}

func TestRecordComponents(t *testing.T) {
	record := Record{KeywordMatch: 40, Education: 10, Experience: 15, Technical: 3}
	components := record.Components()

	require.Len(t, components, 4)
	assert.Equal(t, Component{Name: "Keyword Match", Percent: 40}, components[0])
	assert.InDelta(t, 50.0, components[1].Percent, 1e-9)
	assert.InDelta(t, 100.0, components[2].Percent, 1e-9)
	assert.InDelta(t, 20.0, components[3].Percent, 1e-9)
}
