package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zhouzirui/health-assistant/backend/internal/model/knowledge"
)

func init() {
	cmd := &cobra.Command{
		Use:   "knowledge [category]",
		Short: "Print the knowledge base or one category",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printKnowledge(cmd.OutOrStdout(), knowledge.NewMemoryStore(knowledge.Seed()), args)
		},
	}
	RootCmd.AddCommand(cmd)
}

func printKnowledge(out io.Writer, kb knowledge.Store, args []string) error {
	categories := kb.Categories()
	if len(args) == 1 {
		category, ok := kb.FindCategory(args[0])
		if !ok {
			names := make([]string, 0, len(categories))
			for _, c := range categories {
				names = append(names, c.Name)
			}
			return fmt.Errorf("категория %q не найдена, доступные: %s", args[0], strings.Join(names, ", "))
		}
		categories = []knowledge.Category{category}
	}

	for _, category := range categories {
		fmt.Fprintf(out, "%s\n", strings.ToUpper(category.Name))
		for _, topic := range category.Topics {
			fmt.Fprintf(out, "  • %s: %s\n", topic.Name, topic.Fact)
		}
	}
	return nil
}
