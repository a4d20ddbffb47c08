package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProgressBar(t *testing.T) {
	require.Equal(t, "░░░░░   0%", ProgressBar(0, 0, 5))
	require.Equal(t, "██░░░  50%", ProgressBar(1, 2, 5))
	require.Equal(t, "█████ 100%", ProgressBar(3, 3, 2))
}

func TestPanelStringAlignsWideRunes(t *testing.T) {
	SetTheme("mono")
	defer SetTheme("classic")

	out := PanelString([]string{"Список дел", "ok"})
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	require.Equal(t, "+------------+", lines[0])
	require.Equal(t, "| Список дел |", lines[1])
	require.Equal(t, "| ok         |", lines[2])
}

func TestColorHelpers(t *testing.T) {
	var out, errOut bytes.Buffer
	SetOutput(&out, &errOut)
	defer SetOutput(nil, nil)

	SetColorForcing(true, false)
	require.Equal(t, fgRed+"x"+reset, C(fgRed, "x"))
	SetColorForcing(false, true)
	require.Equal(t, "x", C(fgRed, "x"))
	SetColorForcing(false, false)

	OK("added")
	Fail("nope")
	require.Equal(t, "✔ added\n", out.String())
	require.Equal(t, "✖ nope\n", errOut.String())
}

func TestValidTheme(t *testing.T) {
	require.NoError(t, ValidTheme(""))
	require.NoError(t, ValidTheme("Neon"))
	require.Error(t, ValidTheme("solarized"))
}
