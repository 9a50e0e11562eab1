package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/adey/inkwell/internal/export"
	"github.com/adey/inkwell/internal/machine"
	"github.com/adey/inkwell/internal/writer"
)

// generate is the non-interactive path: one request, result on stdout,
// optional exports. It drives the same machine the TUI does.
func newGenerateCmd() *cobra.Command {
	var (
		toolName string
		toneName string
		lengthID string
		saveTxt  bool
		savePDF  bool
		copyOut  bool
	)

	genCmd := &cobra.Command{
		Use:   "generate [topic]",
		Short: "Generate once and print the result",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			topic := args[0]
			for _, a := range args[1:] {
				topic += " " + a
			}

			tool, err := writer.ResolveTool(toolName)
			if err != nil {
				return err
			}
			tone, err := writer.ResolveTone(toneName)
			if err != nil {
				return err
			}
			if lengthID == "" {
				l, err := writer.DefaultLength(tool)
				if err != nil {
					return err
				}
				lengthID = l.ID
			}

			m := machine.New(newGenerator())
			att, ok := m.Submit(topic, tool, tone, lengthID)
			if !ok {
				return m.State().Err
			}
			res, genErr := att.Do()
			m.Resolve(att.Seq, res, genErr)

			st := m.State()
			if st.Phase == machine.Failure {
				var se *writer.ServiceError
				if errors.As(st.Err, &se) {
					return fmt.Errorf("generation failed: %w", se)
				}
				return st.Err
			}

			fmt.Println(st.Result.Body)
			if len(st.Result.Sources) > 0 {
				fmt.Println()
				for i, s := range st.Result.Sources {
					fmt.Printf("%d. %s\n", i+1, s)
				}
			}
			fmt.Fprintf(os.Stderr, "%d words\n", st.Result.WordCount)

			if copyOut {
				if err := export.CopyToClipboard(st.Result.Body); err != nil {
					fmt.Fprintln(os.Stderr, "clipboard unavailable:", err)
				}
			}
			if saveTxt {
				path, err := export.WriteText(cfg.Export.Dir, topic, st.Result.Body)
				if err != nil {
					return err
				}
				fmt.Fprintln(os.Stderr, "saved", path)
			}
			if savePDF {
				length, _ := writer.LengthByID(tool, lengthID)
				path, err := export.WritePrintable(cfg.Export.Dir, export.Printable{
					Topic:       topic,
					LengthLabel: length.Label,
					Tone:        tone,
					Result:      st.Result,
				}, logger)
				if err != nil {
					return err
				}
				fmt.Fprintln(os.Stderr, "saved", path)
			}
			return nil
		},
	}

	genCmd.Flags().StringVarP(&toolName, "tool", "t", "essay", "writing tool (essay, report, article, summary, explainer, social_post)")
	genCmd.Flags().StringVar(&toneName, "tone", string(writer.ToneAcademic), "tone of voice")
	genCmd.Flags().StringVarP(&lengthID, "length", "l", "", "length bucket (defaults to the tool's first option)")
	genCmd.Flags().BoolVar(&saveTxt, "out", false, "save the result as a .txt file")
	genCmd.Flags().BoolVar(&savePDF, "pdf", false, "save a printable document (or the service's embedded PDF)")
	genCmd.Flags().BoolVar(&copyOut, "copy", false, "copy the result to the clipboard")
	return genCmd
}

func init() {
	rootCmd.AddCommand(newGenerateCmd())
}
