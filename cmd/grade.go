package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/abhisek/gradewise/internal/app"
	"github.com/abhisek/gradewise/internal/feedback"
	"github.com/spf13/cobra"
)

var gradeCmd = &cobra.Command{
	Use:   "grade",
	Short: "Grade a single student response",
	RunE: func(cmd *cobra.Command, args []string) error {
		student, _ := cmd.Flags().GetString("student")
		question, _ := cmd.Flags().GetString("question")
		subject, _ := cmd.Flags().GetString("subject")
		text, _ := cmd.Flags().GetString("text")
		keywords, _ := cmd.Flags().GetStringSlice("keywords")
		showMatches, _ := cmd.Flags().GetBool("matches")

		c, err := resolveCorpus(cmd)
		if err != nil {
			return err
		}

		provider, err := resolveProvider(cmd)
		if err != nil {
			return err
		}

		a := app.New(provider, c, os.Stdout)
		res, err := a.Grade(cmd.Context(), feedback.StudentResponse{
			StudentID:        student,
			QuestionID:       question,
			Subject:          subject,
			ResponseText:     text,
			Timestamp:        time.Now(),
			ExpectedKeywords: keywords,
		})
		if err != nil {
			return err
		}

		if showMatches && len(res.BestMatches) > 0 {
			fmt.Println("Best-matching references:")
			for _, m := range res.BestMatches {
				fmt.Printf("  - %s\n", m)
			}
		}
		return nil
	},
}

func init() {
	gradeCmd.Flags().StringP("student", "s", "", "Student ID")
	gradeCmd.Flags().StringP("question", "q", "", "Question ID")
	gradeCmd.Flags().String("subject", "", "Subject the response belongs to")
	gradeCmd.Flags().StringP("text", "t", "", "The student's answer text")
	gradeCmd.Flags().StringSlice("keywords", nil, "Expected keywords, comma separated")
	gradeCmd.Flags().Bool("matches", false, "Also print the best-matching reference answers")
	gradeCmd.Flags().Bool("offline", false, "Use the offline lexical embedder instead of an embedding API")

	gradeCmd.MarkFlagRequired("student")
	gradeCmd.MarkFlagRequired("subject")
	gradeCmd.MarkFlagRequired("text")
}
