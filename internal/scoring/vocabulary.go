package scoring

// stopWords are never emitted as keywords on their own.
var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {}, "in": {}, "on": {}, "at": {}, "to": {}, "for": {},
	"of": {}, "with": {}, "by": {}, "from": {}, "as": {}, "is": {}, "was": {}, "are": {}, "were": {}, "been": {},
	"be": {}, "have": {}, "has": {}, "had": {}, "do": {}, "does": {}, "did": {}, "will": {}, "would": {},
	"should": {}, "could": {}, "may": {}, "might": {}, "must": {}, "can": {}, "this": {}, "that": {},
	"these": {}, "those": {}, "i": {}, "you": {}, "he": {}, "she": {}, "it": {}, "we": {}, "they": {},
	"what": {}, "which": {}, "who": {}, "when": {}, "where": {}, "why": {}, "how": {}, "all": {}, "each": {},
	"every": {}, "both": {}, "few": {}, "more": {}, "most": {}, "other": {}, "some": {}, "such": {},
	"no": {}, "nor": {}, "not": {}, "only": {}, "own": {}, "same": {}, "so": {}, "than": {}, "too": {},
	"very": {}, "just": {}, "also": {}, "years": {}, "year": {}, "experience": {}, "work": {}, "working": {},
}

// IsStopWord reports whether word is filtered out during keyword extraction.
func IsStopWord(word string) bool {
	_, ok := stopWords[word]
	return ok
}

// Category identifies one of the heuristic sub-scores.
type Category string

const (
	CategoryEducation  Category = "education"
	CategoryExperience Category = "experience"
	CategoryTechnical  Category = "technical"
)

// Vocabulary is a fixed list of terms with the points each hit is worth and the
// ceiling of the resulting sub-score.
type Vocabulary struct {
	Category Category
	Terms    []string
	PerHit   int
	Cap      int
}

var (
	educationVocabulary = Vocabulary{
		Category: CategoryEducation,
		Terms: []string{
			"bachelor", "master", "phd", "degree", "diploma", "certification",
			"university", "college", "mba", "btech", "mtech", "engineering",
		},
		PerHit: 5,
		Cap:    MaxEducation,
	}

	experienceVocabulary = Vocabulary{
		Category: CategoryExperience,
		Terms: []string{
			"years", "experience", "worked", "led", "managed", "developed",
			"implemented", "achieved", "delivered", "coordinated",
		},
		PerHit: 2,
		Cap:    MaxExperience,
	}

	technicalVocabulary = Vocabulary{
		Category: CategoryTechnical,
		Terms: []string{
			"python", "java", "javascript", "sql", "aws", "azure", "docker",
			"kubernetes", "react", "node", "angular", "machine learning", "ai",
			"data", "analytics", "agile", "scrum", "git", "api",
		},
		PerHit: 2,
		Cap:    MaxTechnical,
	}
)

// Vocabularies returns copies of the three category vocabularies.
func Vocabularies() []Vocabulary {
	out := make([]Vocabulary, 0, 3)
	for _, v := range []Vocabulary{educationVocabulary, experienceVocabulary, technicalVocabulary} {
		v.Terms = append([]string(nil), v.Terms...)
		out = append(out, v)
	}
	return out
}
