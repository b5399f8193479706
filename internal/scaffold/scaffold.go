package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jorge-barreto/linedoc/internal/ux"
)

var settingsTemplate = `# linedoc settings — flags override these values.
dir: src
work: docs
start: '//#'
path: PERSON.INVOICE.ITEM
ext: .go
`

// Init writes an example .linedoc.yaml into targetDir. Refuses to
// overwrite an existing one.
func Init(targetDir string) error {
	path := filepath.Join(targetDir, ".linedoc.yaml")
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf(".linedoc.yaml already exists in %s", targetDir)
	}

	if err := os.WriteFile(path, []byte(settingsTemplate), 0644); err != nil {
		return fmt.Errorf("writing .linedoc.yaml: %w", err)
	}

	fmt.Printf("\n%s%s✓ Wrote .linedoc.yaml%s\n\n", ux.Bold, ux.Green, ux.Reset)
	fmt.Printf("  Next steps:\n")
	fmt.Printf("    1. Edit %s.linedoc.yaml%s for your tree and marker\n", ux.Cyan, ux.Reset)
	fmt.Printf("    2. Run %slinedoc check%s to preview what would be written\n", ux.Cyan, ux.Reset)
	fmt.Printf("    3. Run %slinedoc extract%s to build the document tree\n\n", ux.Cyan, ux.Reset)

	return nil
}
