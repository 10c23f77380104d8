package export

import (
	"bytes"
	"os"

	"github.com/matzehuels/graphview/pkg/errors"
)

// Closing body anchors, in order of preference.
var anchors = [][]byte{[]byte("</body>"), []byte("</BODY>")}

// Inject returns a copy of doc with [Toolbar] and a newline inserted
// immediately before the first closing body tag. Only the first occurrence
// of the preferred anchor is used.
func Inject(doc []byte) ([]byte, error) {
	for _, anchor := range anchors {
		i := bytes.Index(doc, anchor)
		if i < 0 {
			continue
		}
		out := make([]byte, 0, len(doc)+len(Toolbar)+1)
		out = append(out, doc[:i]...)
		out = append(out, Toolbar...)
		out = append(out, '\n')
		out = append(out, doc[i:]...)
		return out, nil
	}
	return nil, errors.New(errors.ErrCodeInjection, "could not find </body> tag to inject export toolbar")
}

// InjectFile rewrites the document at path in place. On any error the
// file is left unmodified.
func InjectFile(path string) error {
	doc, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return errors.Wrap(errors.ErrCodeFileNotFound, err, "document not found: %s", path)
	}
	if err != nil {
		return errors.Wrap(errors.ErrCodeRenderIO, err, "read %s", path)
	}

	out, err := Inject(doc)
	if err != nil {
		return errors.New(errors.ErrCodeInjection, "could not find </body> tag in %s to inject export toolbar", path)
	}

	info, err := os.Stat(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeRenderIO, err, "stat %s", path)
	}
	if err := os.WriteFile(path, out, info.Mode().Perm()); err != nil {
		return errors.Wrap(errors.ErrCodeRenderIO, err, "write %s", path)
	}
	return nil
}

// Injected reports whether doc already carries the toolbar.
func Injected(doc []byte) bool {
	return bytes.Contains(doc, []byte(`id="export-toolbar"`))
}
