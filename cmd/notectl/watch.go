package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"algo-notes-be/internal/config"
	"algo-notes-be/pkg/events"
	pktNats "algo-notes-be/pkg/nats"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var watchDurable string

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Stream QUESTION_ADDED events from NATS",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		if cfg.Events.NatsURL == "" {
			return fmt.Errorf("NATS_URL is not set")
		}

		sub, err := pktNats.NewSubscriber(cfg.Events.NatsURL)
		if err != nil {
			return err
		}
		defer sub.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		subject := pktNats.Subject(events.TypeQuestionAdded)
		err = sub.Subscribe(ctx, subject, watchDurable, func(ctx context.Context, event events.Event) error {
			p := event.Payload()
			fmt.Printf("%s %s / %s  %s %v\n",
				event.Timestamp().Format("15:04:05"),
				p["topic"], p["sub_topic"],
				color.GreenString("%v", p["question_id"]), p["title"])
			return nil
		})
		if err != nil {
			return err
		}

		color.Cyan("Watching %s (Ctrl+C to stop)", subject)
		<-ctx.Done()
		return nil
	},
}

func init() {
	watchCmd.Flags().StringVar(&watchDurable, "durable", "", "Durable consumer name; empty only shows new events")
}
