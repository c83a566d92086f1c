package extract

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

var page = "<html><body><p>" + strings.Repeat("Tomatoes need sunlight. Gardeners grow tomatoes on balconies. ", 4) + "</p></body></html>"

func newTestApp(out *bytes.Buffer) *cli.App {
	return &cli.App{
		Name:           "url-keywords",
		Flags:          Flags(),
		Action:         ExtractAction,
		Writer:         out,
		ErrWriter:      out,
		ExitErrHandler: func(*cli.Context, error) {},
	}
}

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := newTestApp(&out).Run(append([]string{"url-keywords"}, args...))
	return out.String(), err
}

func exitCode(t *testing.T, err error) int {
	t.Helper()
	var coder cli.ExitCoder
	require.ErrorAs(t, err, &coder)
	return coder.ExitCode()
}

func TestExtractAction_WritesCSV(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(page))
	}))
	defer server.Close()

	dir := t.TempDir()
	output := filepath.Join(dir, "keywords.csv")
	urlFile := filepath.Join(dir, "urls.txt")
	require.NoError(t, os.WriteFile(urlFile, []byte(server.URL+"/one\n# comment\nnot a url\n"), 0644))

	stdout, err := runApp(t,
		"--file", urlFile,
		"--top", "2",
		"--delay", "0s",
		"--output", output,
		"--log-file", filepath.Join(dir, "run.log"),
		"--print",
		server.URL+"/two",
	)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Keywords extracted for 2 URLs")
	assert.Contains(t, stdout, server.URL+"/two")

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, `"url","keyword_1","keyword_2","error"`, lines[0])
	assert.True(t, strings.HasPrefix(lines[1], `"`+server.URL+`/one",`))
	assert.True(t, strings.HasPrefix(lines[2], `"`+server.URL+`/two",`))

	logData, err := os.ReadFile(filepath.Join(dir, "run.log"))
	require.NoError(t, err)
	assert.Contains(t, string(logData), `"run_id"`)
	assert.Contains(t, string(logData), "not a url")
}

func TestExtractAction_Failures(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "run.log")

	tests := []struct {
		name string
		args []string
	}{
		{"no urls", []string{"--log-file", logFile}},
		{"no valid urls", []string{"--log-file", logFile, "not a url", "ftp//broken"}},
		{"bad top", []string{"--log-file", logFile, "--top", "0", "https://example.com"}},
		{"bad mode", []string{"--log-file", logFile, "--mode", "everything", "https://example.com"}},
		{"missing file", []string{"--log-file", logFile, "--file", filepath.Join(dir, "nope.txt")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runApp(t, tt.args...)
			assert.Equal(t, 1, exitCode(t, err))
		})
	}
}

func TestExtractAction_UnwritableOutput(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(page))
	}))
	defer server.Close()

	dir := t.TempDir()
	_, err := runApp(t,
		"--delay", "0s",
		"--log-file", filepath.Join(dir, "run.log"),
		"--output", filepath.Join(dir, "missing", "out.csv"),
		server.URL,
	)
	assert.Equal(t, 1, exitCode(t, err))
}
