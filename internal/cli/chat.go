package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ugochukwu16henry/foundationprototype/internal/engine"
	"github.com/ugochukwu16henry/foundationprototype/internal/service/assistant"
	chatService "github.com/ugochukwu16henry/foundationprototype/internal/service/chat"
)

var chatDelay time.Duration

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Run an interactive chat session on stdin",
	RunE:  runChat,
}

func init() {
	chatCmd.Flags().DurationVar(&chatDelay, "delay", 0, "typing delay before each reply")
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, _ []string) error {
	e, err := loadEngine()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	svc := assistant.NewService(e, chatService.NewService(), assistant.Config{
		TypingDelay: chatDelay,
		Greeting:    engine.Greeting,
	})

	session, err := svc.Start(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "bot> %s\n", engine.Greeting)

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(out, "you> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		reply, err := svc.Send(ctx, session.ID, scanner.Text())
		switch {
		case errors.Is(err, assistant.ErrEmptyMessage):
			continue
		case errors.Is(err, context.Canceled):
			return nil
		case err != nil:
			return err
		}
		fmt.Fprintf(out, "bot> %s\n", reply.Bot.Content)
	}
}
