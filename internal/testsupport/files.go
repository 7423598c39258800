package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"vangogh/internal/config"
)

// PaintingsCSV is a small paintings file in the layout pandas writes: an
// unnamed index column followed by the data columns. Three genres appear
// three, two, and one times.
const PaintingsCSV = `,Name,Genre,Style,Year,Colors
0,Starry Night,landscape,Post-Impressionism,1889,"('blue', 'yellow')"
1,Wheatfield with Crows,landscape,Post-Impressionism,1890,"('yellow', 'green')"
2,Olive Trees,landscape,Post-Impressionism,1889,"('green', 'blue')"
3,Sunflowers,still life,Post-Impressionism,1888,"('yellow', 'brown')"
4,Irises,still life,Post-Impressionism,1889,"('blue', 'green')"
5,The Potato Eaters,genre painting,Realism,1885,"('brown', 'black')"
`

// HexCSV pairs with PaintingsCSV row for row.
const HexCSV = `Name,Colors
Starry Night,"('#0000ff', '#ffff00')"
Wheatfield with Crows,"('#ffff00', '#008000')"
Olive Trees,"('#008000', '#0000ff')"
Sunflowers,"('#ffff00', '#8b4513')"
Irises,"('#0000ff', '#008000')"
The Potato Eaters,"('#8b4513', '#000000')"
`

// WriteFixtures writes PaintingsCSV and HexCSV to the configured locations.
func WriteFixtures(t testing.TB, cfg *config.Config) {
	t.Helper()
	WriteText(t, cfg.Paths.PaintingsCSV, PaintingsCSV)
	WriteText(t, cfg.Paths.HexCSV, HexCSV)
}

// WriteText writes content to path, creating parent directories.
func WriteText(t testing.TB, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// ReadText returns the content of path or fails the test.
func ReadText(t testing.TB, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}
