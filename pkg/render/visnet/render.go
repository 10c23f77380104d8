package visnet

import (
	"bufio"
	"html/template"
	"io"
	"os"
	"path/filepath"

	"github.com/matzehuels/graphview/pkg/errors"
)

var page = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<script src="{{.LibraryURL}}"></script>
<style>
body { margin: 0; font-family: Arial, sans-serif; }
#mynetwork { width: {{.Width}}; height: {{.Height}}; border: 1px solid lightgray; position: relative; }
#config { padding: 8px; }
div.vis-tooltip { white-space: pre-line; }
</style>
</head>
<body>
<div id="mynetwork"></div>
{{- if .Buttons}}
<div id="config"></div>
{{- end}}
<script>
var nodes = new vis.DataSet({{.Nodes}});
var edges = new vis.DataSet({{.Edges}});
var options = {{.Options}};
{{- if .Buttons}}
options.configure.container = document.getElementById("config");
{{- end}}
var network = new vis.Network(document.getElementById("mynetwork"), {nodes: nodes, edges: edges}, options);
</script>
</body>
</html>
`))

type pageData struct {
	Title      string
	LibraryURL string
	Height     string
	Width      string
	Buttons    bool
	Nodes      []NodeData
	Edges      []EdgeData
	Options    engineOptions
}

// Render writes the HTML document for data to w.
func Render(w io.Writer, data Data, opts Options) error {
	opts.SetDefaults()
	if err := opts.Validate(); err != nil {
		return err
	}

	pd := pageData{
		Title:      opts.Title,
		LibraryURL: LibraryURL,
		Height:     opts.Height,
		Width:      opts.Width,
		Buttons:    opts.Buttons,
		Nodes:      data.Nodes,
		Edges:      data.Edges,
		Options:    opts.engine(),
	}
	if pd.Nodes == nil {
		pd.Nodes = []NodeData{}
	}
	if pd.Edges == nil {
		pd.Edges = []EdgeData{}
	}

	if err := page.Execute(w, pd); err != nil {
		return errors.Wrap(errors.ErrCodeRenderIO, err, "render document")
	}
	return nil
}

// WriteFile renders data to path, creating parent directories as needed.
// Any failure is reported with code RENDER_IO_ERROR.
func WriteFile(path string, data Data, opts Options) (err error) {
	if err := errors.ValidateOutputPath(path); err != nil {
		return err
	}
	opts.SetDefaults()
	if err := opts.Validate(); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(errors.ErrCodeRenderIO, err, "create directory %s", dir)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeRenderIO, err, "create %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrap(errors.ErrCodeRenderIO, cerr, "close %s", path)
		}
	}()

	w := bufio.NewWriter(f)
	if err := Render(w, data, opts); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return errors.Wrap(errors.ErrCodeRenderIO, err, "write %s", path)
	}
	return nil
}
