package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/aisb-selection/aisb/internal/auth"
)

func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { adminOpts.password = "" })

	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestHashPassword_FromStdin(t *testing.T) {
	out, err := runCLI(t, "s3cret-pass\n", "hash-password")
	require.NoError(t, err)

	hash := strings.TrimSpace(out)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("s3cret-pass")))
}

func TestHashPassword_FromFlag(t *testing.T) {
	out, err := runCLI(t, "", "hash-password", "--password", "another-pass")
	require.NoError(t, err)

	hash := strings.TrimSpace(out)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("another-pass")))
}

func TestHashPassword_TooShort(t *testing.T) {
	_, err := runCLI(t, "short\n", "hash-password")
	assert.ErrorIs(t, err, auth.ErrPasswordTooShort)
}

func TestReadPassword(t *testing.T) {
	t.Cleanup(func() { adminOpts.password = "" })

	pw, err := readPassword(strings.NewReader("line-one\r\nline-two\n"))
	require.NoError(t, err)
	assert.Equal(t, "line-one", pw)

	pw, err = readPassword(strings.NewReader("no-newline"))
	require.NoError(t, err)
	assert.Equal(t, "no-newline", pw)

	adminOpts.password = "from-flag"
	pw, err = readPassword(strings.NewReader("ignored\n"))
	require.NoError(t, err)
	assert.Equal(t, "from-flag", pw)
}
