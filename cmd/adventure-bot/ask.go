package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/DarrenJCoxon/educational-adventure-bot/pkg/events"
	"github.com/DarrenJCoxon/educational-adventure-bot/pkg/inference/engine"
)

func NewAskCommand() *cobra.Command {
	var subject string
	var printRawEvents bool

	cmd := &cobra.Command{
		Use:   "ask [prompt]...",
		Short: "Run a single adventure round and print the response",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prompt := strings.Join(args, " ")

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			var options []engine.Option
			var router *events.EventRouter

			eg, groupCtx := errgroup.WithContext(ctx)

			if printRawEvents {
				var err error
				router, err = events.NewEventRouter()
				if err != nil {
					return err
				}
				defer func() {
					_ = router.Close()
				}()

				router.AddHandler("raw-events", "chat", router.DumpRawEvents)
				options = append(options, engine.WithSink(events.NewWatermillSink(router.Publisher, "chat")))

				eg.Go(func() error {
					err := router.Run(groupCtx)
					if err != nil && !errors.Is(err, context.Canceled) {
						return err
					}
					return nil
				})
				<-router.Running()
			}

			s, err := newSession(subject, options...)
			if err != nil {
				return err
			}

			response, err := s.SubmitUserMessage(groupCtx, prompt)
			if err != nil {
				return err
			}

			fmt.Println(response)

			if router != nil {
				// drain in-flight event handlers before stopping the router
				// goroutine, so the final event still gets printed
				_ = router.Close()
			}
			cancel()
			return eg.Wait()
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "Subject the adventure should teach")
	cmd.Flags().BoolVar(&printRawEvents, "print-raw-events", false, "Dump completion events as JSON")

	return cmd
}
