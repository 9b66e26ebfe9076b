package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/yumyai/atacrna/logger"
	"github.com/yumyai/atacrna/pkg/figure"
	"go.uber.org/zap"
)

//go:embed static
var Static embed.FS

const plotlyScript = "https://cdn.plot.ly/plotly-2.35.2.min.js"

// PlotPanel is one figure on a page.
type PlotPanel struct {
	Gene    string
	Heading bool
	Figure  template.JS
	Error   string
}

// PageData is the state of a track or correlation page.
type PageData struct {
	Title    string
	Caption  string
	Action   string // form target
	Genes    []string
	Selected []string
	Panels   []PlotPanel
}

var pageTemplate *template.Template

func init() {
	mainTmpl := `<!DOCTYPE html>
<html>
<head>
	<meta charset="utf-8">
	<link href="/static/style.css" rel="stylesheet">
	<script src="{{.Script}}"></script>
	<title>{{.Page.Title}}</title>
</head>
<body>
	<div class="app">
		{{template "sidebar" .Page}}
		<div class="main">
			<h1>{{.Page.Title}}</h1>
			{{if .Page.Caption}}<p>{{.Page.Caption}}</p>{{end}}
			{{range $i, $p := .Page.Panels}}
				{{template "panel" (panelArgs $i $p)}}
			{{end}}
		</div>
	</div>
</body>
</html>`

	sidebarTmpl := `
	{{define "sidebar"}}
	<div class="sidebar">
		<h1>Settings</h1>
		<form method="GET" action="{{.Action}}">
			<div class="buttons">
				<button type="submit" name="action" value="add">Add Gene</button>
				<button type="submit" name="action" value="reset">Reset</button>
			</div>
			{{range .Selected}}
				{{$current := .}}
				<label>Select a gene to plot
					<select name="gene" onchange="this.form.submit()">
					{{range $.Genes}}
						<option value="{{.}}" {{if eq . $current}}selected{{end}}>{{.}}</option>
					{{end}}
					</select>
				</label>
			{{end}}
		</form>
		<nav>
			<a href="/track">Gene track</a>
			<a href="/correlation">ATAC and RNA correlation</a>
		</nav>
	</div>
	{{end}}`

	panelTmpl := `
	{{define "panel"}}
		{{if .Panel.Heading}}<h3>{{.Panel.Gene}}</h3>{{end}}
		{{if .Panel.Error}}
			<p class="error">{{.Panel.Gene}}: {{.Panel.Error}}</p>
		{{else}}
			<div id="{{.ID}}" class="figure"></div>
			<script>
				(function () {
					var fig = {{.Panel.Figure}};
					Plotly.newPlot({{.ID}}, fig.data, fig.layout, fig.config);
				})();
			</script>
		{{end}}
	{{end}}`

	funcMap := template.FuncMap{
		"panelArgs": func(i int, p PlotPanel) map[string]any {
			return map[string]any{"ID": fmt.Sprintf("figure-%d", i), "Panel": p}
		},
	}

	pageTemplate = template.New("page").Funcs(funcMap)
	pageTemplate = template.Must(pageTemplate.Parse(mainTmpl))
	pageTemplate = template.Must(pageTemplate.Parse(sidebarTmpl))
	pageTemplate = template.Must(pageTemplate.Parse(panelTmpl))
}

// NewPanel encodes fig for embedding in a page.
func NewPanel(gene string, heading bool, fig *figure.Figure) (PlotPanel, error) {
	js, err := fig.JSON()
	if err != nil {
		return PlotPanel{}, err
	}
	return PlotPanel{Gene: gene, Heading: heading, Figure: template.JS(js)}, nil
}

// RenderPage writes a complete HTML page.
func RenderPage(w io.Writer, data PageData) error {
	logger.Debug("Rendering page", zap.String("title", data.Title), zap.Strings("genes", data.Selected))
	return pageTemplate.Execute(w, struct {
		Script string
		Page   PageData
	}{Script: plotlyScript, Page: data})
}
