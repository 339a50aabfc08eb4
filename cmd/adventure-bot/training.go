package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/DarrenJCoxon/educational-adventure-bot/pkg/conversation"
	"github.com/DarrenJCoxon/educational-adventure-bot/pkg/finetune"
)

func NewTrainingCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "training",
		Short: "Commands for preparing fine-tuning training data",
	}

	cmd.AddCommand(newTrainingValidateCommand())
	cmd.AddCommand(newTrainingConvertCommand())

	return cmd
}

func newTrainingValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <training.jsonl>",
		Short: "Check a training file against the upload requirements",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			examples, err := finetune.ReadFile(args[0])
			if err != nil {
				return err
			}

			if err := finetune.Validate(examples); err != nil {
				return err
			}

			fmt.Printf("%s: %d examples, ready for upload\n", args[0], len(examples))
			return nil
		},
	}
}

func newTrainingConvertCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "convert <conversation.json>...",
		Short: "Convert saved transcripts into training examples",
		Long: "Each saved transcript (as written by chat --save) becomes one JSONL " +
			"training example. Existing examples in the output file are kept.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var examples []finetune.Example

			if _, err := os.Stat(output); err == nil {
				examples, err = finetune.ReadFile(output)
				if err != nil {
					return err
				}
			}

			for _, path := range args {
				b, err := os.ReadFile(path)
				if err != nil {
					return errors.Wrapf(err, "could not read transcript %s", path)
				}

				var messages conversation.Conversation
				if err := json.Unmarshal(b, &messages); err != nil {
					return errors.Wrapf(err, "could not parse transcript %s", path)
				}

				example := finetune.FromConversation(messages)
				if err := finetune.ValidateExample(example); err != nil {
					return errors.Wrapf(err, "transcript %s", path)
				}
				examples = append(examples, example)
			}

			if err := finetune.WriteFile(output, examples); err != nil {
				return err
			}

			fmt.Printf("%s: %d examples", output, len(examples))
			if len(examples) < finetune.MinExamples {
				fmt.Printf(" (%d more needed for upload)", finetune.MinExamples-len(examples))
			}
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "training.jsonl", "Output JSONL file")

	return cmd
}
