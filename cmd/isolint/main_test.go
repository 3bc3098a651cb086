package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const notification = `<?xml version="1.0" encoding="UTF-8"?>
<Document xmlns="urn:iso:std:iso:20022:tech:xsd:admi.004.001.02">
  <SysEvtNtfctn>
    <EvtInf>
      <EvtCd>%s</EvtCd>
      <EvtTm>2026-03-02T16:00:00</EvtTm>
    </EvtInf>
  </SysEvtNtfctn>
</Document>`

func writeDocument(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func runCLI(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := runWithArgs(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestValidXMLDocument(t *testing.T) {
	path := writeDocument(t, "ok.xml", strings.Replace(notification, "%s", "LWSU", 1))

	code, stdout, stderr := runCLI("-complete", "-exclusive-choices", path)
	assert.Equal(t, 0, code, stderr)
	assert.Equal(t, path+" validates\n", stdout)
	assert.Empty(t, stderr)
}

func TestInvalidXMLDocument(t *testing.T) {
	path := writeDocument(t, "bad.xml", strings.Replace(notification, "%s", "LW-U", 1))

	code, stdout, stderr := runCLI(path)
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "[1005 PatternMismatch]")
	assert.Contains(t, stderr, "at /SysEvtNtfctn/EvtInf/EvtCd")
	assert.True(t, strings.HasSuffix(stderr, path+" fails to validate\n"))
}

func TestSampleCancellationRequest(t *testing.T) {
	path := filepath.Join("..", "..", "camt", "testdata", "camt.056.001.11.xml")

	code, stdout, stderr := runCLI("-complete", path)
	assert.Equal(t, 0, code, stderr)
	assert.Equal(t, path+" validates\n", stdout)
}

func TestExplicitMessageOverridesDetection(t *testing.T) {
	path := writeDocument(t, "ok.xml", strings.Replace(notification, "%s", "LWSU", 1))

	code, _, stderr := runCLI("-message", "camt.056.001.11", path)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "error decoding")
}

func TestUnknownNamespace(t *testing.T) {
	path := writeDocument(t, "other.xml", `<Document xmlns="urn:example"><X/></Document>`)

	code, _, stderr := runCLI(path)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, `unsupported namespace "urn:example"`)
}

func TestRootMustBeDocument(t *testing.T) {
	path := writeDocument(t, "other.xml", `<AppHdr/>`)

	code, _, stderr := runCLI(path)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "root element is AppHdr, expected Document")
}

func TestJSONDocument(t *testing.T) {
	path := writeDocument(t, "ok.json", `{"SysEvtNtfctn":{"EvtInf":{"EvtCd":"CLSD","EvtParam":["RTGS"]}}}`)

	code, stdout, stderr := runCLI("-format", "json", "-message", "admi.004.001.02", path)
	assert.Equal(t, 0, code, stderr)
	assert.Equal(t, path+" validates\n", stdout)

	bad := writeDocument(t, "bad.json", `{"SysEvtNtfctn":{"EvtInf":{"EvtCd":"CLOSED"}}}`)
	code, _, stderr = runCLI("-format", "json", "-message", "admi.004.001.02", bad)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "[1002 TooLong]")
}

func TestUnknownCodeIsReportedAsViolation(t *testing.T) {
	path := writeDocument(t, "code.json", `{"PtyQry":{"MsgHdr":{"MsgId":"Q1"},"SchCrit":{"LckSts":{"Sts":"XXXX"}}}}`)

	code, _, stderr := runCLI("-format", "json", "-message", "reda.015.001.01", path)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "[1004 InvalidCode]")
}

func TestList(t *testing.T) {
	code, stdout, _ := runCLI("-list")
	assert.Equal(t, 0, code)
	for _, id := range []string{"acmt.005.001.06", "admi.004.001.02", "auth.084.001.02", "camt.056.001.11", "reda.015.001.01"} {
		assert.Contains(t, stdout, id+"\turn:iso:std:iso:20022:tech:xsd:"+id+"\n")
	}
}

func TestUsageErrors(t *testing.T) {
	path := writeDocument(t, "ok.json", `{}`)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "no document", args: nil, want: "exactly one document argument is required"},
		{name: "two documents", args: []string{"a.xml", "b.xml"}, want: "exactly one document argument is required"},
		{name: "json without message", args: []string{"-format", "json", path}, want: "-message is required for json documents"},
		{name: "unknown format", args: []string{"-format", "yaml", path}, want: `unknown format "yaml"`},
		{name: "choices without complete", args: []string{"-exclusive-choices", path}, want: "-exclusive-choices requires -complete"},
		{name: "unknown flag", args: []string{"-schema", "x.xsd", path}, want: "flag provided but not defined"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := runCLI(tt.args...)
			assert.Equal(t, 2, code)
			assert.Empty(t, stdout)
			assert.Contains(t, stderr, tt.want)
		})
	}
}

func TestUnsupportedMessage(t *testing.T) {
	path := writeDocument(t, "ok.xml", strings.Replace(notification, "%s", "LWSU", 1))

	code, _, stderr := runCLI("-message", "pacs.008.001.08", path)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, `unsupported message "pacs.008.001.08"`)
}

func TestMissingFile(t *testing.T) {
	code, _, stderr := runCLI(filepath.Join(t.TempDir(), "absent.xml"))
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "error reading document")
}

func TestVerboseLogsToStderr(t *testing.T) {
	logger, err := newLogger(true)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(-1))

	quiet, err := newLogger(false)
	require.NoError(t, err)
	assert.False(t, quiet.Core().Enabled(-1))
}
