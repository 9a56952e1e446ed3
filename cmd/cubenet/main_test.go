package main

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cubenet/internal/fixtures"
	"github.com/katalvlaran/cubenet/portal"
)

func TestRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.txt")
	require.NoError(t, os.WriteFile(path, []byte(fixtures.Sample), 0o600))
	require.NoError(t, flag.Set("input", path))

	cases := []struct {
		method  string
		portals bool
		want    int
	}{
		{"affine", true, fixtures.SampleCubePassword},
		{"color", false, fixtures.SampleCubePassword},
		{"flat", false, fixtures.SampleFlatPassword},
	}
	for _, tc := range cases {
		t.Run(tc.method, func(t *testing.T) {
			require.NoError(t, flag.Set("method", tc.method))
			require.NoError(t, flag.Set("portals", strconv.FormatBool(tc.portals)))

			var out bytes.Buffer
			require.NoError(t, run(&out))
			lines := strings.Split(strings.TrimSpace(out.String()), "\n")
			assert.Equal(t, strconv.Itoa(tc.want), lines[len(lines)-1])
			if tc.portals {
				assert.Len(t, lines, portal.Count+1)
			}
		})
	}

	require.NoError(t, flag.Set("method", "origami"))
	require.Error(t, run(&bytes.Buffer{}))
	require.NoError(t, flag.Set("method", "affine"))
}
