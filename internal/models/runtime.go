package models

// RuntimeType is the detected execution framework for a candidate app
type RuntimeType string

const (
	TypeStreamlit RuntimeType = "streamlit"
	TypeGradio    RuntimeType = "gradio"
	TypeFlask     RuntimeType = "flask"
	TypeFastAPI   RuntimeType = "fastapi"
	TypeJupyter   RuntimeType = "jupyter"
	TypePanel     RuntimeType = "panel"
	TypeDash      RuntimeType = "dash"
	TypePlotly    RuntimeType = "plotly"
	TypePython    RuntimeType = "python"
	TypeUnknown   RuntimeType = "unknown"
)

// RuntimeTypes returns all detectable runtime types in detection priority order
func RuntimeTypes() []RuntimeType {
	return []RuntimeType{
		TypeStreamlit,
		TypeGradio,
		TypeFlask,
		TypeFastAPI,
		TypeJupyter,
		TypePanel,
		TypeDash,
		TypePlotly,
		TypePython,
	}
}

// Icon returns a display icon for the runtime type
func (t RuntimeType) Icon() string {
	switch t {
	case TypeStreamlit:
		return "📈"
	case TypeGradio:
		return "🎛️"
	case TypeFlask, TypeFastAPI:
		return "🌐"
	case TypeJupyter:
		return "📓"
	case TypePanel, TypeDash, TypePlotly:
		return "📊"
	case TypePython:
		return "🐍"
	default:
		return "📦"
	}
}

func (t RuntimeType) String() string {
	return string(t)
}
