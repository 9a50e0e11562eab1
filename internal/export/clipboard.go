package export

import (
	"time"

	"github.com/atotto/clipboard"
)

// CopiedNotice is how long the TUI shows the "copied" acknowledgment
// before reverting.
const CopiedNotice = 2 * time.Second

// CopyToClipboard writes the generated text verbatim. A denied or missing
// clipboard is a soft failure surfaced as a status notice, never a
// lifecycle error.
func CopyToClipboard(text string) error {
	return clipboard.WriteAll(text)
}
