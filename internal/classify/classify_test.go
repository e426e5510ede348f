package classify

import (
	"testing"

	"github.com/ntruongan356-byte/AppStore-Nokio/internal/models"
)

func TestDetectRuntimeType(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		want     models.RuntimeType
	}{
		{"streamlit substring", "my_streamlit_demo.py", models.TypeStreamlit},
		{"app.py goes to streamlit first", "app.py", models.TypeStreamlit},
		{"gradio substring", "gradio_interface.py", models.TypeGradio},
		{"flask substring", "flask_server.py", models.TypeFlask},
		{"wsgi entry", "wsgi.py", models.TypeFlask},
		{"fastapi substring", "fastapi_service.py", models.TypeFastAPI},
		{"main.py goes to flask before fastapi", "main.py", models.TypeFlask},
		{"notebook extension", "model.ipynb", models.TypeJupyter},
		{"notebook uppercase", "Model.IPYNB", models.TypeJupyter},
		{"panel substring", "panel_dashboard.py", models.TypePanel},
		{"dash substring", "dash_layout.py", models.TypeDash},
		{"plotly substring", "plotly_charts.py", models.TypePlotly},
		{"run.py is plain python", "run.py", models.TypePython},
		{"case insensitive", "STREAMLIT_APP.PY", models.TypeStreamlit},
		{"no indicator", "utility.py", models.TypeUnknown},
		{"empty name", "", models.TypeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectRuntimeType(tt.fileName); got != tt.want {
				t.Errorf("DetectRuntimeType(%q) = %v, want %v", tt.fileName, got, tt.want)
			}
		})
	}
}

func TestDetectRuntimeTypePriorityOrder(t *testing.T) {
	// A name containing several indicators resolves to the earliest table entry
	got := DetectRuntimeType("streamlit_gradio_flask.py")
	if got != models.TypeStreamlit {
		t.Errorf("expected streamlit to win priority, got %v", got)
	}

	// dash is a substring of "dashboard", but flask is tested earlier
	if got := DetectRuntimeType("flask_dashboard.py"); got != models.TypeFlask {
		t.Errorf("expected flask before dash, got %v", got)
	}
}

func TestDetermineCategory(t *testing.T) {
	tests := []struct {
		name        string
		appName     string
		runtimeType models.RuntimeType
		want        models.Category
	}{
		{"web keyword", "MyWebApp", models.TypeFlask, models.CategoryWebDev},
		{"data keyword", "data-pipeline", models.TypePython, models.CategoryDataSci},
		{"ml keyword", "train_classifier", models.TypePython, models.CategoryML},
		{"vision keyword", "yolo-tracker", models.TypeJupyter, models.CategoryCV},
		{"nlp keyword", "bert-finetune", models.TypePython, models.CategoryNLP},
		{"genai keyword", "diffusion-studio", models.TypeJupyter, models.CategoryGenAI},
		{"keyword case insensitive", "VISION-Lab", models.TypePython, models.CategoryCV},
		{"keyword wins over type default", "webcam-notebook", models.TypeJupyter, models.CategoryWebDev},
		{"type default streamlit", "xyz", models.TypeStreamlit, models.CategoryWebDev},
		{"type default panel", "xyz", models.TypePanel, models.CategoryDataSci},
		{"type default python", "xyz", models.TypePython, models.CategoryML},
		{"global default for unknown type", "xyz", models.TypeUnknown, models.CategoryML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetermineCategory(tt.appName, tt.runtimeType); got != tt.want {
				t.Errorf("DetermineCategory(%q, %v) = %v, want %v", tt.appName, tt.runtimeType, got, tt.want)
			}
		})
	}
}

func TestKeywordGroupPriority(t *testing.T) {
	// "web" (group 1) and "data" (group 2) both present: the earlier group wins
	if got := DetermineCategory("web-data-explorer", models.TypePython); got != models.CategoryWebDev {
		t.Errorf("expected web group to win priority, got %v", got)
	}
}
