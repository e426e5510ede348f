package models

import "strings"

// Category is one of the six fixed subject-domain tags used to group apps
type Category string

const (
	CategoryWebDev  Category = "1-Web-Development"
	CategoryDataSci Category = "2-Data-Science"
	CategoryML      Category = "3-Machine-Learning"
	CategoryCV      Category = "4-Computer-Vision"
	CategoryNLP     Category = "5-Natural-Language-Processing"
	CategoryGenAI   Category = "6-Generative-AI"
)

// Categories returns the fixed ordered set of category tags. The order is
// load-bearing: keyword matching and placement both walk it front to back.
func Categories() []Category {
	return []Category{
		CategoryWebDev,
		CategoryDataSci,
		CategoryML,
		CategoryCV,
		CategoryNLP,
		CategoryGenAI,
	}
}

// LegacyDirs maps each category to the legacy subdirectory names it was
// historically discovered under. Static configuration, not used at placement.
func LegacyDirs() map[Category][]string {
	return map[Category][]string{
		CategoryWebDev: {
			"1-Web-Development-Applications",
			"10-Web-Development-Applications",
		},
		CategoryDataSci: {
			"2-Data-Science",
			"11-Data-Science-Applications",
		},
		CategoryML: {
			"3-Machine-Learning",
			"12-Machine-Learning-Applications",
		},
		CategoryCV: {
			"4-Computer-Vision",
			"7-Computer-Vision-Applications",
		},
		CategoryNLP: {
			"5-Natural-Language-Processing",
			"8-Natural-Language-Processing-Applications",
		},
		CategoryGenAI: {
			"6-Generative-AI",
			"9-Generative-AI-Applications",
		},
	}
}

// Short returns the category name without its ordering prefix, for display
func (c Category) Short() string {
	s := string(c)
	if i := strings.Index(s, "-"); i >= 0 {
		return s[i+1:]
	}
	return s
}

func (c Category) String() string {
	return string(c)
}
