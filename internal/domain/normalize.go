package domain

import (
	"math"
	"sort"
	"strings"
)

// CategoryInfo pairs an OpenTDB category ID with its display name.
type CategoryInfo struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// OpenTDB publishes categories only as numeric IDs; these are the names its UI shows.
var categoryIDs = map[string]int{
	"general knowledge":                     9,
	"entertainment: books":                  10,
	"entertainment: film":                   11,
	"entertainment: music":                  12,
	"entertainment: musicals & theatres":    13,
	"entertainment: television":             14,
	"entertainment: video games":            15,
	"entertainment: board games":            16,
	"science & nature":                      17,
	"science: computers":                    18,
	"science: mathematics":                  19,
	"mythology":                             20,
	"sports":                                21,
	"geography":                             22,
	"history":                               23,
	"politics":                              24,
	"art":                                   25,
	"celebrities":                           26,
	"animals":                               27,
	"vehicles":                              28,
	"entertainment: comics":                 29,
	"science: gadgets":                      30,
	"entertainment: japanese anime & manga": 31,
	"entertainment: cartoon & animations":   32,
}

var categoryNames = map[int]string{
	9:  "General Knowledge",
	10: "Entertainment: Books",
	11: "Entertainment: Film",
	12: "Entertainment: Music",
	13: "Entertainment: Musicals & Theatres",
	14: "Entertainment: Television",
	15: "Entertainment: Video Games",
	16: "Entertainment: Board Games",
	17: "Science & Nature",
	18: "Science: Computers",
	19: "Science: Mathematics",
	20: "Mythology",
	21: "Sports",
	22: "Geography",
	23: "History",
	24: "Politics",
	25: "Art",
	26: "Celebrities",
	27: "Animals",
	28: "Vehicles",
	29: "Entertainment: Comics",
	30: "Science: Gadgets",
	31: "Entertainment: Japanese Anime & Manga",
	32: "Entertainment: Cartoon & Animations",
}

// NormalizeDifficulty maps a case-insensitive difficulty name to its canonical
// value. Anything else, including "", yields "" (no filter).
func NormalizeDifficulty(input string) Difficulty {
	switch Difficulty(strings.ToLower(strings.TrimSpace(input))) {
	case DifficultyEasy:
		return DifficultyEasy
	case DifficultyMedium:
		return DifficultyMedium
	case DifficultyHard:
		return DifficultyHard
	default:
		return ""
	}
}

// NormalizeCategory resolves a category display name to its OpenTDB ID.
// The second result is false when the name is not recognized.
func NormalizeCategory(input string) (int, bool) {
	id, ok := categoryIDs[strings.ToLower(strings.TrimSpace(input))]
	return id, ok
}

// NormalizeType maps a case-insensitive question type to its canonical value,
// or "" when unrecognized.
func NormalizeType(input string) QuestionType {
	switch QuestionType(strings.ToLower(strings.TrimSpace(input))) {
	case TypeMultiple:
		return TypeMultiple
	case TypeBoolean:
		return TypeBoolean
	default:
		return ""
	}
}

// ValidateAmount accepts only finite positive integers. Unlike the other
// filters an invalid amount is never substituted, since it decides the size of
// the response.
func ValidateAmount(amount float64) (int, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 1 || amount != math.Trunc(amount) || amount > math.MaxInt32 {
		return 0, NewInvalidAmountError()
	}
	return int(amount), nil
}

// NormalizeQuizRequest validates the amount and narrows the free-form filters.
func NormalizeQuizRequest(req QuizRequest) (QuestionFilter, error) {
	amount, err := ValidateAmount(req.Amount)
	if err != nil {
		return QuestionFilter{}, err
	}

	filter := QuestionFilter{
		Amount:     amount,
		Difficulty: NormalizeDifficulty(req.Difficulty),
		Type:       NormalizeType(req.Type),
	}
	if id, ok := NormalizeCategory(req.Category); ok {
		filter.Category = &id
	}
	return filter, nil
}

// Categories lists every recognized category ordered by ID.
func Categories() []CategoryInfo {
	categories := make([]CategoryInfo, 0, len(categoryNames))
	for id, name := range categoryNames {
		categories = append(categories, CategoryInfo{ID: id, Name: name})
	}
	sort.Slice(categories, func(i, j int) bool {
		return categories[i].ID < categories[j].ID
	})
	return categories
}
