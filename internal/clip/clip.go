// Package clip puts text on the system clipboard.
package clip

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// Copy places text on the clipboard.
func Copy(text string) error {
	if text == "" {
		return fmt.Errorf("nothing to copy")
	}
	return clipboard.WriteAll(text)
}
