package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFeed(t *testing.T, rows ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "transactions.csv")
	content := strings.Join(rows, "\n") + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRunFeed(t *testing.T) {
	t.Run("replays a mixed feed", func(t *testing.T) {
		path := writeFeed(t,
			"type,client,tx,amount",
			"deposit,1,1,1.0",
			"deposit,2,2,2.0",
			"deposit,1,3,2.0",
			"withdrawal,1,4,1.5",
			"withdrawal,2,5,3.0",
		)

		var out bytes.Buffer
		require.NoError(t, runFeed(path, &out, zerolog.Nop()))

		want := strings.Join([]string{
			"client,available,held,total,locked",
			"1,1.5000,0.0000,1.5000,false",
			"2,2.0000,0.0000,2.0000,false",
		}, "\n") + "\n"
		assert.Equal(t, want, out.String())
	})

	t.Run("dispute lifecycle shows in the snapshot", func(t *testing.T) {
		path := writeFeed(t,
			"type,client,tx,amount",
			"deposit,1,1,5.0",
			"dispute,1,1,",
			"chargeback,1,1,",
			"deposit,1,2,10.0",
			"deposit,2,3,7.0",
			"dispute,2,3,",
		)

		var out bytes.Buffer
		require.NoError(t, runFeed(path, &out, zerolog.Nop()))

		want := strings.Join([]string{
			"client,available,held,total,locked",
			"1,0.0000,0.0000,0.0000,true",
			"2,0.0000,7.0000,7.0000,true",
		}, "\n") + "\n"
		assert.Equal(t, want, out.String())
	})

	t.Run("skips undecodable but well-formed rows", func(t *testing.T) {
		path := writeFeed(t,
			"type,client,tx,amount",
			"transfer,1,1,5.0",
			"deposit,1,2,",
			"deposit,1,3,-4.0",
			"deposit,1,4,4.0",
		)

		var out bytes.Buffer
		require.NoError(t, runFeed(path, &out, zerolog.Nop()))
		assert.Contains(t, out.String(), "1,4.0000,0.0000,4.0000,false")
	})

	t.Run("whitespace around fields is tolerated", func(t *testing.T) {
		path := writeFeed(t,
			"type, client, tx, amount",
			"deposit, 1, 1, 5.0",
			"withdrawal, 1, 2, 1.0",
		)

		var out bytes.Buffer
		require.NoError(t, runFeed(path, &out, zerolog.Nop()))
		assert.Contains(t, out.String(), "1,4.0000,0.0000,4.0000,false")
	})

	t.Run("empty feed produces only the header", func(t *testing.T) {
		path := writeFeed(t, "type,client,tx,amount")

		var out bytes.Buffer
		require.NoError(t, runFeed(path, &out, zerolog.Nop()))
		assert.Equal(t, "client,available,held,total,locked\n", out.String())
	})

	t.Run("missing file aborts the run", func(t *testing.T) {
		var out bytes.Buffer
		err := runFeed(filepath.Join(t.TempDir(), "nope.csv"), &out, zerolog.Nop())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "open feed")
		assert.Zero(t, out.Len(), "no output may precede a fatal error")
	})

	t.Run("structurally malformed row aborts the run", func(t *testing.T) {
		path := writeFeed(t,
			"type,client,tx,amount",
			"deposit,1,1,5.0",
			"deposit,not-a-client,2,5.0",
		)

		var out bytes.Buffer
		err := runFeed(path, &out, zerolog.Nop())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode feed")
		assert.Zero(t, out.Len(), "no output may precede a fatal error")
	})

	t.Run("malformed row aborts even with an unknown kind", func(t *testing.T) {
		path := writeFeed(t,
			"type,client,tx,amount",
			"deposit,1,1,5.0",
			"transfer,not-a-client,2,5.0",
		)

		var out bytes.Buffer
		err := runFeed(path, &out, zerolog.Nop())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode feed")
		assert.Zero(t, out.Len(), "no output may precede a fatal error")
	})
}

func TestRootCmd(t *testing.T) {
	t.Run("rejects a missing argument", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		rootCmd.SetOut(&stdout)
		rootCmd.SetErr(&stderr)
		rootCmd.SetArgs([]string{})

		err := rootCmd.Execute()
		require.Error(t, err)
		assert.Contains(t, stderr.String(), "accepts 1 arg(s)")
	})

	t.Run("rejects extra arguments", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		rootCmd.SetOut(&stdout)
		rootCmd.SetErr(&stderr)
		rootCmd.SetArgs([]string{"a.csv", "b.csv"})

		err := rootCmd.Execute()
		require.Error(t, err)
	})

	t.Run("runs end to end", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "error")
		path := writeFeed(t,
			"type,client,tx,amount",
			"deposit,1,1,5.0",
			"dispute,1,1,",
			"resolve,1,1,",
		)

		var stdout, stderr bytes.Buffer
		rootCmd.SetOut(&stdout)
		rootCmd.SetErr(&stderr)
		rootCmd.SetArgs([]string{path})

		require.NoError(t, rootCmd.Execute())
		assert.Contains(t, stdout.String(), "1,5.0000,0.0000,5.0000,false")
	})
}
