// Package gallery holds the decorative image catalog and its terminal
// renderings.
package gallery

import (
	"fmt"
	"strings"
)

// Image is one catalog entry.
type Image struct {
	Title string
	URL   string
}

// Catalog returns the curated demo set shown in the gallery view.
func Catalog() []Image {
	return []Image{
		{Title: "Aurora", URL: "https://ste.digital/demos/codepen/1.jpg"},
		{Title: "Dunes", URL: "https://ste.digital/demos/codepen/2.jpg"},
		{Title: "Tide", URL: "https://ste.digital/demos/codepen/3.jpg"},
		{Title: "Canopy", URL: "https://ste.digital/demos/codepen/4.jpg"},
		{Title: "Ridge", URL: "https://ste.digital/demos/codepen/5.jpg"},
		{Title: "Ember", URL: "https://ste.digital/demos/codepen/6.jpg"},
		{Title: "Drift", URL: "https://ste.digital/demos/codepen/1.jpg"},
		{Title: "Haze", URL: "https://ste.digital/demos/codepen/2.jpg"},
	}
}

// Layout selects how the catalog is arranged.
type Layout string

const (
	LayoutGrid     Layout = "grid"
	LayoutMasonry  Layout = "masonry"
	LayoutCarousel Layout = "carousel"
	LayoutList     Layout = "list"
)

// ParseLayout validates a layout name.
func ParseLayout(raw string) (Layout, error) {
	switch Layout(strings.ToLower(strings.TrimSpace(raw))) {
	case LayoutGrid, "":
		return LayoutGrid, nil
	case LayoutMasonry:
		return LayoutMasonry, nil
	case LayoutCarousel:
		return LayoutCarousel, nil
	case LayoutList:
		return LayoutList, nil
	}
	return "", fmt.Errorf("unknown layout: %q (expected grid, masonry, carousel, or list)", raw)
}

// Render arranges the catalog as text for the chosen layout.
func Render(images []Image, layout Layout) string {
	switch layout {
	case LayoutMasonry:
		return renderMasonry(images)
	case LayoutCarousel:
		return renderCarousel(images)
	case LayoutList:
		return renderList(images)
	default:
		return renderGrid(images)
	}
}

// renderGrid lays entries out in even rows of three.
func renderGrid(images []Image) string {
	var b strings.Builder
	for i, img := range images {
		fmt.Fprintf(&b, "[%d] %-10s", i+1, img.Title)
		if (i+1)%3 == 0 {
			b.WriteString("\n")
		}
	}
	if len(images)%3 != 0 {
		b.WriteString("\n")
	}
	return b.String()
}

// renderMasonry staggers alternating columns.
func renderMasonry(images []Image) string {
	var b strings.Builder
	for i, img := range images {
		indent := strings.Repeat("  ", i%2)
		fmt.Fprintf(&b, "%s[%d] %s\n", indent, i+1, img.Title)
	}
	return b.String()
}

// renderCarousel shows one entry per frame with position markers.
func renderCarousel(images []Image) string {
	var b strings.Builder
	for i, img := range images {
		fmt.Fprintf(&b, "<-- [%d/%d] %s -->\n", i+1, len(images), img.Title)
	}
	return b.String()
}

// renderList is one line per entry with the URL.
func renderList(images []Image) string {
	var b strings.Builder
	for i, img := range images {
		fmt.Fprintf(&b, "[%d] %-10s %s\n", i+1, img.Title, img.URL)
	}
	return b.String()
}
