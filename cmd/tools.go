package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/adey/inkwell/internal/writer"
)

var toolHeadStyle = lipgloss.NewStyle().Bold(true)

func newToolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "List writing tools, length buckets and tones",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, t := range writer.Tools {
				def, err := writer.DefinitionFor(t)
				if err != nil {
					return err
				}
				fmt.Printf("%s (%s)\n", toolHeadStyle.Render(def.Label), def.Tool)
				fmt.Printf("  %s\n", def.Description)
				for _, l := range def.Lengths {
					fmt.Printf("  - %s: %s\n", l.ID, l.Hint)
				}
			}
			fmt.Println("\ntones:")
			for _, tn := range writer.Tones {
				fmt.Printf("  - %s\n", tn)
			}
			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(newToolsCmd())
}
