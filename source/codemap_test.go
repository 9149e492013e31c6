package source

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const testSource = `scope Cheating {
	int x := 42;
	bool guilty := TRUE;
}
`

func TestCodeMapAdd(t *testing.T) {
	require := require.New(t)

	loader := NewMemLoader()
	loader.Add("cheating.yh", testSource)

	cm := NewCodeMap(loader)
	require.NoError(cm.Add("cheating.yh"))
	// adding twice is fine
	require.NoError(cm.Add("cheating.yh"))

	src := cm.Source("cheating.yh")
	require.NotNil(src)
	require.Equal(testSource, src.Text)

	require.Error(cm.Add("missing.yh"))
	require.Nil(cm.Source("missing.yh"))
}

func TestRegion(t *testing.T) {
	require := require.New(t)
	src := NewSource("cheating.yh", testSource)

	// "int x := 42;" spans offsets 18 to 30
	require.Equal([]string{"\tint x := 42;"}, src.Region(18, 30))

	// a region across two lines returns both
	require.Equal(
		[]string{"\tint x := 42;", "\tbool guilty := TRUE;"},
		src.Region(18, 35),
	)

	// out of range end is clamped
	require.Equal([]string{"}"}, src.Region(55, 1000))
}

func TestRegionNoTrailingNewline(t *testing.T) {
	src := NewSource("test.yh", "int x;")
	require.Equal(t, []string{"int x;"}, src.Region(0, 6))
}

func TestPositionMultibyteRunes(t *testing.T) {
	require := require.New(t)
	src := NewSource("test.yh", "// détourné\nint x := y;\n")

	// "y" is rune 21, tenth rune of the second line
	pos := src.Position(21)
	require.Equal(2, pos.Line)
	require.Equal(10, pos.Column)

	require.Equal([]string{"int x := y;"}, src.Region(21, 22))
}
