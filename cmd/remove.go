package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:     "remove <entry-id>",
	Aliases: []string{"rm"},
	Short:   "Delete a logged entry by ID (prefix is enough if unique)",
	Args:    cobra.ExactArgs(1),
	RunE:    runRemove,
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

func runRemove(_ *cobra.Command, args []string) error {
	st := openStore()

	id, err := resolveEntryID(args[0])
	if err != nil {
		return err
	}

	removed, err := st.RemoveEntry(id)
	if err != nil {
		return fmt.Errorf("removing entry: %w", err)
	}
	if !removed {
		return fmt.Errorf("no entry with id %s", id)
	}

	fmt.Printf("  Removed entry %s.\n", shortID(id))
	return nil
}

// resolveEntryID expands an ID prefix to the full UUID, erroring when
// the prefix is ambiguous.
func resolveEntryID(prefix string) (string, error) {
	state := openStore().LoadOrDefault()

	var matches []string
	for _, e := range state.Entries {
		if strings.HasPrefix(e.ID, prefix) {
			matches = append(matches, e.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("no entry with id %q (run `sipli today` to list IDs)", prefix)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("id prefix %q matches %d entries, use more characters", prefix, len(matches))
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
