package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kannan/roxl/internal/rotation"
)

var renderCmd = &cobra.Command{
	Use:   "render [text]",
	Short: "Print the title for a text",
	Long: `Print the title the window would show for a text, offset and truncation.

Without a text argument the configured text is used.

Examples:
  roxl render HELLO --offset 2
  roxl render HELLO --offset 2 --truncate 3
  roxl render "Window Title" --frames 12
  roxl render HELLO --offset 3 --frames 5
  roxl render HELLO --frames 5 --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

var (
	renderOffset   int
	renderTruncate int
	renderFrames   int
	renderJSON     bool
)

func init() {
	renderCmd.Flags().IntVar(&renderOffset, "offset", 0, "rotation offset")
	renderCmd.Flags().IntVar(&renderTruncate, "truncate", rotation.TruncationMax, fmt.Sprintf("maximum title length (%d = whole title)", rotation.TruncationMax))
	renderCmd.Flags().IntVar(&renderFrames, "frames", 0, "print this many successive titles, starting at --offset")
	renderCmd.Flags().BoolVar(&renderJSON, "json", false, "output in JSON format")
}

type renderResult struct {
	Text       string   `json:"text"`
	Offset     int      `json:"offset"`
	Truncation int      `json:"truncation"`
	Titles     []string `json:"titles"`
}

func runRender(cmd *cobra.Command, args []string) error {
	text := cfg.Text
	if len(args) == 1 {
		text = args[0]
	}

	if renderTruncate < 0 || renderTruncate > rotation.TruncationMax {
		return fmt.Errorf("--truncate must be between 0 and %d", rotation.TruncationMax)
	}
	if renderFrames < 0 {
		return fmt.Errorf("--frames cannot be negative")
	}

	result := renderResult{Text: text, Truncation: renderTruncate}
	if renderFrames > 0 {
		_, result.Offset = rotation.Rotate(text, renderOffset)
		result.Titles = rotation.Frames(text, renderOffset, renderTruncate, renderFrames)
	} else {
		title, offset := rotation.Title(text, renderOffset, renderTruncate)
		result.Offset = offset
		result.Titles = []string{title}
	}

	out := cmd.OutOrStdout()
	if renderJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	fmt.Fprintln(out, strings.Join(result.Titles, "\n"))
	return nil
}
