package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testNetwork = `
lines:
  - name: Line 2
    color: green
    sections:
      - { up: GANGNAM, down: SEONLEUNG, distance: 3 }
      - { up: SEONLEUNG, down: JAMSIL, distance: 7 }
  - name: Line 8
    sections:
      - { up: GANGNAM, down: JANGJI, distance: 10 }
      - { up: JANGJI, down: JAMSIL, distance: 5 }
      - { up: JAMSIL, down: BOKJEONG, distance: 2 }
      - { up: BOKJEONG, down: SUSEO, distance: 4 }
`

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

// run executes the root command with args and returns what it wrote to stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRoute_Text(t *testing.T) {
	path := writeFile(t, "network.yaml", testNetwork)

	out, err := run(t, "route", "-n", path, "--from", "GANGNAM", "--to", "SUSEO")

	require.NoError(t, err)
	assert.Equal(t, "GANGNAM -> SEONLEUNG -> JAMSIL -> BOKJEONG -> SUSEO\ndistance: 16 km\nfare: 1450\n", out)
}

func TestRoute_JSON(t *testing.T) {
	path := writeFile(t, "network.yaml", testNetwork)

	out, err := run(t, "route", "-n", path, "--from", "GANGNAM", "--to", "JAMSIL", "-o", "json")

	require.NoError(t, err)
	var got routeOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, routeOutput{Stations: []string{"GANGNAM", "SEONLEUNG", "JAMSIL"}, Distance: 10, Fare: 1250}, got)
}

func TestRoute_FareOverride(t *testing.T) {
	path := writeFile(t, "network.yaml", testNetwork)
	fares := writeFile(t, "fares.yaml", "base_fare: 2000\nbase_distance: 100\n")

	out, err := run(t, "route", "-n", path, "--fares", fares, "--from", "GANGNAM", "--to", "SUSEO")

	require.NoError(t, err)
	assert.Contains(t, out, "fare: 2000\n")
}

func TestRoute_Errors(t *testing.T) {
	path := writeFile(t, "network.yaml", testNetwork)

	tests := []struct {
		name string
		args []string
	}{
		{"unknown station", []string{"route", "-n", path, "--from", "GANGNAM", "--to", "NOWHERE"}},
		{"bad format", []string{"route", "-n", path, "--from", "GANGNAM", "--to", "SUSEO", "-o", "xml"}},
		{"missing network flag", []string{"route", "--from", "GANGNAM", "--to", "SUSEO"}},
		{"missing file", []string{"route", "-n", filepath.Join(t.TempDir(), "nope.yaml"), "--from", "A", "--to", "B"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := run(t, tc.args...)
			assert.Error(t, err)
		})
	}
}

func TestRoute_Unreachable(t *testing.T) {
	const disjoint = `
lines:
  - name: A
    sections:
      - { up: X, down: Y, distance: 1 }
  - name: B
    sections:
      - { up: P, down: Q, distance: 1 }
`
	path := writeFile(t, "network.yaml", disjoint)

	_, err := run(t, "route", "-n", path, "--from", "X", "--to", "Q")

	assert.Error(t, err)
}

func TestValidate_OK(t *testing.T) {
	path := writeFile(t, "network.yaml", testNetwork)

	out, err := run(t, "validate", "-n", path)

	require.NoError(t, err)
	assert.Equal(t, "Line 2: 3 stations, 10 km\nLine 8: 5 stations, 21 km\nOK\n", out)
}

func TestValidate_BrokenLine(t *testing.T) {
	path := writeFile(t, "network.yaml", `
lines:
  - name: L
    sections:
      - { up: A, down: B, distance: 3 }
      - { up: A, down: C, distance: 5 }
`)

	out, err := run(t, "validate", "-n", path)

	assert.Error(t, err)
	assert.NotContains(t, out, "OK")
}

func TestStations(t *testing.T) {
	path := writeFile(t, "network.yaml", testNetwork)

	all, err := run(t, "stations", "-n", path)
	require.NoError(t, err)
	assert.Equal(t, "BOKJEONG\nGANGNAM\nJAMSIL\nJANGJI\nSEONLEUNG\nSUSEO\n", all)

	line, err := run(t, "stations", "-n", path, "-l", "Line 8")
	require.NoError(t, err)
	assert.Equal(t, "GANGNAM\nJANGJI\nJAMSIL\nBOKJEONG\nSUSEO\n", line)

	_, err = run(t, "stations", "-n", path, "-l", "Line 9")
	assert.Error(t, err)
}

func TestFare(t *testing.T) {
	tests := []struct {
		distance string
		want     string
	}{
		{"0", "1250\n"},
		{"10", "1250\n"},
		{"11", "1350\n"},
		{"50", "2050\n"},
		{"58", "2150\n"},
	}
	for _, tc := range tests {
		t.Run(tc.distance, func(t *testing.T) {
			out, err := run(t, "fare", tc.distance)
			require.NoError(t, err)
			assert.Equal(t, tc.want, out)
		})
	}

	_, err := run(t, "fare", "ten")
	assert.Error(t, err)
}
