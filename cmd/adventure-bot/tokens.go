package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/DarrenJCoxon/educational-adventure-bot/pkg/finetune"
	"github.com/DarrenJCoxon/educational-adventure-bot/pkg/tokens"
)

func NewTokensCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens",
		Short: "Commands related to tokens",
	}

	cmd.AddCommand(newTokensCountCommand())

	return cmd
}

func newTokensCountCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "count <training.jsonl>",
		Short: "Estimate the token count of a training file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			model := viper.GetString("model")

			codec, err := tokens.GetCodec(model)
			if err != nil {
				return err
			}

			examples, err := finetune.ReadFile(args[0])
			if err != nil {
				return err
			}

			count, err := tokens.CountExamples(codec, examples)
			if err != nil {
				return err
			}

			fmt.Printf("Examples: %d\n", len(examples))
			fmt.Printf("Total tokens: %d\n", count)
			return nil
		},
	}
}
