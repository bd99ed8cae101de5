package cmd

import (
	"fmt"
	"strings"

	"github.com/arjunm/dsamaster/internal/pseudocode"
	"github.com/spf13/cobra"
)

var browseCmd = &cobra.Command{
	Use:   "browse [topic]",
	Short: "Print reference pseudocode for a topic",
	Long:  "Without arguments, lists all topics. With a topic name, prints its pseudocode.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			for _, t := range pseudocode.List() {
				fmt.Printf("%-24s %s\n", t.Title, t.Kind)
			}
			return nil
		}

		title := strings.Join(args, " ")
		topic, ok := pseudocode.Get(title)
		if !ok {
			return fmt.Errorf("unknown topic %q (run `dsamaster browse` for the list)", title)
		}
		fmt.Printf("%s (%s)\n\n%s\n", topic.Title, topic.Kind, topic.Code)
		return nil
	},
}
