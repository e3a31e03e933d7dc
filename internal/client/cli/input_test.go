package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetSimpleText_ReadsLine(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("emilys\n"))

	got, err := GetSimpleText(reader, "Masukkan username", &out)
	require.NoError(t, err)
	require.Equal(t, "emilys", got)
	require.Contains(t, out.String(), "Masukkan username")
	require.Contains(t, out.String(), "> ")
}

func TestGetSimpleText_TrimsWhitespace(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("  emilys  \n"))

	got, err := GetSimpleText(reader, "p", &out)
	require.NoError(t, err)
	require.Equal(t, "emilys", got)
}

func TestGetSimpleText_PartialLineAtEOF(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("emilys"))

	got, err := GetSimpleText(reader, "p", &out)
	require.NoError(t, err)
	require.Equal(t, "emilys", got)
}

func TestGetSimpleText_EmptyEOF(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader(""))

	_, err := GetSimpleText(reader, "p", &out)
	require.Error(t, err)
}

func TestGetPassword_UsesSeam(t *testing.T) {
	orig := readPassword
	readPassword = func(fd int) ([]byte, error) {
		return []byte("emilyspass"), nil
	}
	t.Cleanup(func() { readPassword = orig })

	var out bytes.Buffer
	pw, err := GetPassword(&out)
	require.NoError(t, err)
	require.Equal(t, []byte("emilyspass"), pw)
	require.Contains(t, out.String(), "Masukkan password")
}
