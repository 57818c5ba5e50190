package gen

import (
	"bytes"
	"strings"
)

// versionBlock is the rendered, guarded namespace of one version.
type versionBlock struct {
	Version string
	Text    string
}

// guardSuffix turns a version such as "1.0" into "1_0".
func guardSuffix(version string) string {
	return strings.NewReplacer(".", "_", "-", "_").Replace(version)
}

// assemble joins the header, every version block in order and the footer.
func assemble(a Assets, blocks []versionBlock) []byte {
	var buf bytes.Buffer

	buf.WriteString(a.Header)

	if a.Header != "" && !strings.HasSuffix(a.Header, "\n") {
		buf.WriteByte('\n')
	}

	for _, b := range blocks {
		buf.WriteString(b.Text)
	}

	buf.WriteString(a.Footer)

	return buf.Bytes()
}
