package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0644))
	return path
}

func TestReadFile_PlainText(t *testing.T) {
	path := writeFile(t, "resume.txt", []byte("SKILLS\nPython,   SQL\n\n\n\nEXPERIENCE"))

	text, err := ReadFile(path)
	require.NoError(t, err)

	assert.Contains(t, text, "Python, SQL")
	assert.NotContains(t, text, "\n\n\n")
}

func TestReadFile_HTML(t *testing.T) {
	html := `<html><body>
	<h1>Job Posting</h1>
	<script>tracking();</script>
	<ul><li>Python</li><li>AWS</li></ul>
	</body></html>`
	path := writeFile(t, "posting.html", []byte(html))

	text, err := ReadFile(path)
	require.NoError(t, err)

	assert.Contains(t, text, "Job Posting")
	assert.Contains(t, text, "Python")
	assert.Contains(t, text, "AWS")
	assert.NotContains(t, text, "tracking")
}

func TestReadFile_BinaryRejected(t *testing.T) {
	path := writeFile(t, "scan.pdf", []byte{'%', 'P', 'D', 'F', 0x00, 0x01, 0x02})

	_, err := ReadFile(path)

	var binErr *BinaryInputError
	require.ErrorAs(t, err, &binErr)
}

func TestReadFile_EmptyRejected(t *testing.T) {
	path := writeFile(t, "empty.txt", []byte("   \n\t\n"))

	_, err := ReadFile(path)

	var emptyErr *EmptyInputError
	require.ErrorAs(t, err, &emptyErr)
}

func TestReadFile_MissingFile(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.txt"))

	var unreadable *UnreadableError
	require.ErrorAs(t, err, &unreadable)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestForPath_ExtensionDispatch(t *testing.T) {
	assert.IsType(t, &HTML{}, ForPath("posting.HTML"))
	assert.IsType(t, &HTML{}, ForPath("posting.htm"))
	assert.IsType(t, &PlainText{}, ForPath("resume.txt"))
	assert.IsType(t, &PlainText{}, ForPath("resume"))
}
