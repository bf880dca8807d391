// SPDX-License-Identifier: BSD-3-Clause

package komplete

import (
	"bytes"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandRun(t *testing.T) {
	shells := []string{"bash", "zsh", "fish"}
	for _, shell := range shells {
		t.Run(shell, func(t *testing.T) {
			var stdout bytes.Buffer

			parser, err := kong.New(&struct{}{}, kong.Name("test"), kong.Writers(&stdout, &bytes.Buffer{}))
			require.NoError(t, err)

			err = (&Command{Shell: shell}).Run(&kong.Context{Kong: parser})
			require.NoError(t, err)
			assert.NotEmpty(t, stdout.String())
			assert.Contains(t, stdout.String(), "test")
		})
	}

	t.Run("unknown", func(t *testing.T) {
		var stdout bytes.Buffer

		parser, err := kong.New(&struct{}{}, kong.Name("test"), kong.Writers(&stdout, &bytes.Buffer{}))
		require.NoError(t, err)

		err = (&Command{Shell: "unknown"}).Run(&kong.Context{Kong: parser})
		require.Error(t, err)
		assert.ErrorContains(t, err, "unsupported shell")
		assert.Empty(t, stdout.String())
	})
}
