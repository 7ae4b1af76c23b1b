package cmd

import (
	"fmt"

	"github.com/abhisek/gradewise/internal/corpus"
	"github.com/spf13/cobra"
)

var corpusCmd = &cobra.Command{
	Use:   "corpus",
	Short: "Inspect and validate reference-answer corpora",
}

var corpusListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the subjects and topics in the corpus",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := resolveCorpus(cmd)
		if err != nil {
			return err
		}

		for _, subject := range c.Subjects() {
			fmt.Println(subject)
			for _, topic := range c.Topics(subject) {
				fmt.Printf("  %s\n", topic)
			}
		}
		return nil
	},
}

var corpusValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a corpus JSON file against the corpus schema",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := corpus.Load(args[0])
		if err != nil {
			return err
		}

		refs := 0
		for _, subject := range c.Subjects() {
			refs += len(c.References(subject))
		}
		fmt.Printf("%s is valid: %d subjects, %d reference answers\n",
			args[0], len(c.Subjects()), refs)
		return nil
	},
}

func init() {
	corpusCmd.AddCommand(corpusListCmd)
	corpusCmd.AddCommand(corpusValidateCmd)
}
