package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/pmpquiz/internal/quiz"
)

var validateCmd = &cobra.Command{
	Use:   "validate [path ...]",
	Short: "Check question files without starting a quiz",
	Long: `Runs every given file (or every .json file in a given folder) through
the loader and reports the question count or the first validation error.`,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := expandArgs(args)
		if err != nil {
			return err
		}
		if len(paths) == 0 {
			return quiz.ErrNoFiles
		}

		failed := false
		for _, path := range paths {
			questions, err := quiz.ParseFile(path)
			if err != nil {
				failed = true
				fmt.Fprintln(os.Stderr, "FAIL:", err)
				continue
			}
			fmt.Printf("ok   %s: %d questions\n", path, len(questions))
		}
		if failed {
			return fmt.Errorf("validation failed")
		}

		// Run the merge too, so cross-file qid collisions are visible.
		set, err := quiz.BuildSet(paths)
		if err != nil {
			return err
		}
		fmt.Printf("merged set: %d questions\n", len(set))
		return nil
	},
}

// expandArgs turns directory arguments into their discovered question
// files, using the recursive walk as fallback like the UI does.
func expandArgs(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("cannot access %s: %w", arg, err)
		}
		if !info.IsDir() {
			paths = append(paths, arg)
			continue
		}
		found, err := quiz.Discover(arg)
		if err != nil {
			return nil, err
		}
		if len(found) == 0 {
			found, err = quiz.DiscoverRecursive(arg)
			if err != nil {
				return nil, err
			}
		}
		paths = append(paths, found...)
	}
	return paths, nil
}
