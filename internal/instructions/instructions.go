// Package instructions renders advisory launch instructions for a detected
// runtime type. It only produces text; nothing here executes an app.
package instructions

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"

	"github.com/ntruongan356-byte/AppStore-Nokio/internal/models"
)

// maxListedFiles caps the file listing in the generic Python fallback
const maxListedFiles = 10

var streamlitInstructions = heredoc.Doc(`
	**Streamlit App Detected**

	To run this Streamlit app in Google Colab, use the following commands:

	` + "```python" + `
	# Install ngrok for tunneling
	!pip install streamlit pyngrok

	# Set up ngrok tunnel
	from pyngrok import ngrok
	ngrok.set_auth_token("YOUR_NGROK_AUTH_TOKEN")
	public_url = ngrok.connect(8501)
	print(f"Streamlit app will be available at: {public_url}")

	# Run Streamlit in background
	!nohup streamlit run app.py --server.port 8501 &
	` + "```" + `
`)

var gradioInstructions = heredoc.Doc(`
	**Gradio App Detected**

	To run this Gradio app in Google Colab, use the following commands:

	` + "```python" + `
	# Install dependencies if needed
	!pip install gradio

	# Run the app (it will create a shareable link automatically)
	import gradio as gr
	# Import and run your gradio app here
	# Or use: !python app.py
	` + "```" + `
`)

var panelInstructions = heredoc.Doc(`
	**Panel App Detected**

	To run this Panel app in Google Colab, use the following commands:

	` + "```python" + `
	# Install panel if needed
	!pip install panel

	# Import and run your panel app
	import panel as pn
	pn.extension(comms='colab')
	# Import and run your panel app here
	` + "```" + `
`)

var jupyterInstructions = heredoc.Doc(`
	**Jupyter Notebook Detected**

	To run this Jupyter notebook in Google Colab:

	1. Open the notebook file directly
	2. Or use:
	` + "```python" + `
	# List available notebooks
	!ls *.ipynb

	# Run a specific notebook
	!jupyter nbconvert --to notebook --execute your_notebook.ipynb
	` + "```" + `
`)

// For returns launch instructions for the given runtime type. Types without a
// dedicated template fall back to the generic Python instructions, which list
// the app's .py files.
func For(runtimeType models.RuntimeType, appPath string) string {
	switch runtimeType {
	case models.TypeStreamlit:
		return streamlitInstructions
	case models.TypeGradio:
		return gradioInstructions
	case models.TypePanel:
		return panelInstructions
	case models.TypeJupyter:
		return jupyterInstructions
	default:
		return pythonInstructions(appPath)
	}
}

// pythonInstructions renders the generic fallback and appends up to ten .py
// files found recursively under appPath, with a truncation note beyond that.
func pythonInstructions(appPath string) string {
	var b strings.Builder

	b.WriteString(heredoc.Docf(`
		**Python App Detected**

		To run this Python app in Google Colab:

		%spython
		# Change to app directory
		%%cd %s

		# Install dependencies if available
		!pip install -r requirements.txt 2>/dev/null || echo "No requirements.txt found"

		# Run the app
		!python main.py  # or app.py, depending on the main file
		%s

		**Main Python files found:**
	`, "```", appPath, "```"))

	pyFiles, err := listPythonFiles(appPath)
	if err != nil {
		fmt.Fprintf(&b, "Error listing files: %v\n", err)
		return b.String()
	}

	for i, file := range pyFiles {
		if i >= maxListedFiles {
			break
		}
		fmt.Fprintf(&b, "- `%s`\n", file)
	}
	if len(pyFiles) > maxListedFiles {
		fmt.Fprintf(&b, "... and %d more files\n", len(pyFiles)-maxListedFiles)
	}

	return b.String()
}

// listPythonFiles returns the .py files under dir, relative to dir
func listPythonFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(path) == ".py" {
			rel, err := filepath.Rel(dir, path)
			if err != nil {
				rel = path
			}
			files = append(files, rel)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}
