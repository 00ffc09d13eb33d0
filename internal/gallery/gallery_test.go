package gallery

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLayout(t *testing.T) {
	for _, raw := range []string{"grid", "masonry", "carousel", "list", "GRID", " masonry ", ""} {
		_, err := ParseLayout(raw)
		require.NoError(t, err, "layout %q", raw)
	}
	_, err := ParseLayout("mosaic")
	require.Error(t, err)
}

func TestRenderIncludesEveryEntry(t *testing.T) {
	images := Catalog()
	for _, layout := range []Layout{LayoutGrid, LayoutMasonry, LayoutCarousel, LayoutList} {
		out := Render(images, layout)
		for _, img := range images {
			require.Contains(t, out, img.Title, "layout %s", layout)
		}
	}
}

func TestListLayoutShowsURLs(t *testing.T) {
	out := Render(Catalog(), LayoutList)
	require.Contains(t, out, "https://")
}

func TestGridRowsOfThree(t *testing.T) {
	out := renderGrid(Catalog()[:6])
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
}
