package catalog

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordsearch/assets"
	"github.com/robalobadob/wordsearch/internal/words"
)

// CustomList is the catalog name for a list loaded from WORDS_FILE.
const CustomList = "custom"

// Seed stores every embedded list, plus the list in wordsFile under
// CustomList when wordsFile is non-empty. Existing lists of the same name
// are replaced.
func (c *Catalog) Seed(ctx context.Context, wordsFile string) error {
	names, err := assets.ListNames()
	if err != nil {
		return fmt.Errorf("list embedded: %w", err)
	}
	for _, name := range names {
		list, err := words.Embedded(name)
		if err != nil {
			return err
		}
		if err := c.Put(ctx, name, list); err != nil {
			return fmt.Errorf("seed %s: %w", name, err)
		}
		log.Info().Str("list", name).Int("words", len(list)).Msg("seeded word list")
	}

	if wordsFile == "" {
		return nil
	}
	list, err := words.ReadFile(wordsFile)
	if err != nil {
		return fmt.Errorf("read %s: %w", wordsFile, err)
	}
	if err := c.Put(ctx, CustomList, list); err != nil {
		return fmt.Errorf("seed %s: %w", CustomList, err)
	}
	log.Info().Str("list", CustomList).Str("file", wordsFile).Int("words", len(list)).Msg("seeded word list")
	return nil
}
