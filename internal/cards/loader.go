package cards

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/youruser/flashcards/internal/sheet"
)

// Load decodes a spreadsheet held in memory and extracts its cards. name is
// only used to pick the decoder. Decode failures wrap ErrUnreadableInput; a
// readable sheet without a single usable row returns ErrNoUsableRows. A
// cancelled or expired ctx is returned as is.
func Load(ctx context.Context, name string, data []byte) (Set, error) {
	rows, err := sheet.Decode(ctx, name, data)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %v", ErrUnreadableInput, err)
	}
	set := Extract(rows)
	if len(set) == 0 {
		return nil, fmt.Errorf("%s: %w", filepath.Base(name), ErrNoUsableRows)
	}
	return set, nil
}

// LoadFile reads path and passes its contents to Load.
func LoadFile(ctx context.Context, path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return Load(ctx, path, data)
}
