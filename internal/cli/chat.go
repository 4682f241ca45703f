package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zhouzirui/health-assistant/backend/internal/model/chat"
	"github.com/zhouzirui/health-assistant/backend/internal/render"
	"github.com/zhouzirui/health-assistant/backend/internal/service/assistant"
	"github.com/zhouzirui/health-assistant/backend/internal/service/session"
)

func init() {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Interactive chat (type /exit to quit)",
		RunE:  runChat,
	}
	RootCmd.AddCommand(cmd)
}

func runChat(cmd *cobra.Command, _ []string) error {
	a, err := bootstrap(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	if !a.Assistant.ModelEnabled() {
		fmt.Fprintln(cmd.ErrOrStderr(), "модель не настроена: доступны только команды")
	}
	return chatLoop(cmd, a.Sessions, a.Assistant, cmd.InOrStdin(), cmd.OutOrStdout())
}

// chatLoop reads one message per line until EOF or /exit.
func chatLoop(cmd *cobra.Command, sessions *session.Manager, svc *assistant.Service, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	fmt.Fprint(out, "> ")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			fmt.Fprint(out, "> ")
			continue
		case "/exit", "/quit":
			return nil
		}

		var result assistant.Result
		err := sessions.Update(cmd.Context(), sessionID, func(state *chat.State) error {
			var err error
			result, err = svc.Handle(cmd.Context(), state, line)
			return err
		})
		switch {
		case err == nil:
			fmt.Fprintf(out, "[%s] %s\n\n> ", result.Timestamp, render.Text(result.Reply))
		case errors.Is(err, assistant.ErrModelUnavailable):
			fmt.Fprint(out, "Ошибка: языковая модель не настроена\n\n> ")
		default:
			fmt.Fprintf(out, "Ошибка: %v\n\n> ", err)
		}
	}
	fmt.Fprintln(out)
	return scanner.Err()
}
