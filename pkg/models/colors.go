package models

import (
	"hash/fnv"
	"strings"
)

// CategoryColorPalette provides a curated set of colors for phases
// These colors are chosen for good contrast and accessibility
var CategoryColorPalette = []string{
	"#e74c3c", // red
	"#3498db", // blue
	"#2ecc71", // green
	"#f39c12", // orange
	"#9b59b6", // purple
	"#1abc9c", // turquoise
	"#e67e22", // dark orange
	"#16a085", // dark turquoise
	"#f1c40f", // yellow
	"#2980b9", // belize hole
}

// CategoryColor returns the stored color for a category, or derives a
// consistent one from the category name
func CategoryColor(name string, storedColor string) string {
	if storedColor != "" {
		return storedColor
	}

	h := fnv.New32a()
	h.Write([]byte(strings.ToLower(name)))
	hash := h.Sum32()

	return CategoryColorPalette[int(hash)%len(CategoryColorPalette)]
}
