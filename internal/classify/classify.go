// Package classify maps candidate file names to runtime types and app names
// to subject categories using fixed, priority-ordered heuristic tables.
package classify

import (
	"path/filepath"
	"strings"

	"github.com/ntruongan356-byte/AppStore-Nokio/internal/models"
)

// typeIndicator pairs a runtime type with the substrings or extensions that
// identify it. Evaluated in slice order, first match wins.
type typeIndicator struct {
	Type       models.RuntimeType
	Indicators []string
}

// typeIndicators is the detection table. Order is significant: a file named
// app.py is streamlit, not gradio or flask, because streamlit is tested first.
var typeIndicators = []typeIndicator{
	{models.TypeStreamlit, []string{"streamlit", "app.py", "streamlit_app.py"}},
	{models.TypeGradio, []string{"gradio", "app.py", "gradio_app.py"}},
	{models.TypeFlask, []string{"flask", "app.py", "main.py", "wsgi.py"}},
	{models.TypeFastAPI, []string{"fastapi", "main.py", "app.py"}},
	{models.TypeJupyter, []string{".ipynb"}},
	{models.TypePanel, []string{"panel", "app.py", "panel_app.py"}},
	{models.TypeDash, []string{"dash", "app.py", "index.py"}},
	{models.TypePlotly, []string{"plotly", "app.py"}},
	{models.TypePython, []string{"main.py", "run.py", "app.py"}},
}

// keywordGroup pairs a category with the name keywords that select it
type keywordGroup struct {
	Category models.Category
	Keywords []string
}

// keywordGroups is checked in priority order; the first group containing any
// keyword found in the lowercased app name wins.
var keywordGroups = []keywordGroup{
	{models.CategoryWebDev, []string{
		"web", "site", "html", "css", "js", "javascript",
		"react", "vue", "angular", "flask", "fastapi", "django",
	}},
	{models.CategoryDataSci, []string{
		"data", "analytics", "visualization", "pandas", "numpy",
		"matplotlib", "seaborn", "plotly", "tableau",
	}},
	{models.CategoryML, []string{
		"ml", "machine", "learning", "train", "model",
		"tensorflow", "pytorch", "sklearn", "xgboost", "lightgbm",
	}},
	{models.CategoryCV, []string{
		"cv", "vision", "image", "video", "object",
		"detection", "segmentation", "yolo", "mask", "rcnn",
	}},
	{models.CategoryNLP, []string{
		"nlp", "text", "language", "sentence", "word",
		"token", "bert", "gpt", "transformer", "spacy",
	}},
	{models.CategoryGenAI, []string{
		"genai", "generative", "ai", "llm", "diffusion",
		"stable", "midjourney", "dalle", "chatgpt",
	}},
}

// typeDefaults assigns a category to apps whose name matched no keyword group
var typeDefaults = map[models.RuntimeType]models.Category{
	models.TypeStreamlit: models.CategoryWebDev,
	models.TypeGradio:    models.CategoryWebDev,
	models.TypeFlask:     models.CategoryWebDev,
	models.TypeFastAPI:   models.CategoryWebDev,
	models.TypeJupyter:   models.CategoryDataSci,
	models.TypePanel:     models.CategoryDataSci,
	models.TypeDash:      models.CategoryDataSci,
	models.TypePlotly:    models.CategoryDataSci,
	models.TypePython:    models.CategoryML,
}

// DetectRuntimeType detects the runtime framework from a file name.
// The name is lowercased before matching; an indicator matches when it is a
// substring of the name or equals the file extension. Always returns a value.
func DetectRuntimeType(fileName string) models.RuntimeType {
	name := strings.ToLower(fileName)
	ext := strings.ToLower(filepath.Ext(fileName))

	for _, entry := range typeIndicators {
		for _, indicator := range entry.Indicators {
			if strings.Contains(name, indicator) || indicator == ext {
				return entry.Type
			}
		}
	}

	return models.TypeUnknown
}

// DetermineCategory assigns a subject category from the app name and runtime
// type. Name keywords win over the type default, which wins over the global
// Machine-Learning default. Total: always yields one of the six fixed tags.
func DetermineCategory(appName string, runtimeType models.RuntimeType) models.Category {
	name := strings.ToLower(appName)

	for _, group := range keywordGroups {
		for _, keyword := range group.Keywords {
			if strings.Contains(name, keyword) {
				return group.Category
			}
		}
	}

	if category, ok := typeDefaults[runtimeType]; ok {
		return category
	}
	return models.CategoryML
}
