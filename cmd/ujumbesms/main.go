package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Behyna/ujumbesms/internal/config"
	"github.com/Behyna/ujumbesms/internal/logger"
	"github.com/Behyna/ujumbesms/pkg/ujumbesms"
	"go.uber.org/zap"
)

const usage = `usage: ujumbesms [flags] <command> [args]

commands:
  send <numbers> <message> <sender>    send one message bag
  bags <sender> <numbers:message>...   send several bags in one request
  balance                              show the account credit balance
  history [number]                     show delivered and failed messages, optionally for one number
`

var errUsage = errors.New("invalid arguments")

func main() {
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	timeout := flag.Duration("timeout", 0, "request timeout, overrides ujumbe.timeout")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *timeout > 0 {
		cfg.Ujumbe = cfg.Ujumbe.WithTimeout(*timeout)
	}

	log, err := logger.New(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	client, err := ujumbesms.NewClient(cfg.Ujumbe)
	if err != nil {
		log.Fatal("invalid gateway configuration", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, client, flag.Args(), os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			flag.Usage()
			os.Exit(2)
		}
		fields := []zap.Field{zap.Error(err)}
		if apiErr, ok := ujumbesms.AsAPIError(err); ok {
			fields = append(fields, zap.String("status", apiErr.Status), zap.String("body", apiErr.Body))
		}
		log.Error("command failed", fields...)
		os.Exit(1)
	}
}

func run(ctx context.Context, client *ujumbesms.Client, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	switch cmd, rest := args[0], args[1:]; cmd {
	case "send":
		if len(rest) != 3 {
			return fmt.Errorf("%w: send takes <numbers> <message> <sender>", errUsage)
		}
		response, err := client.SendSingleMessage(ctx, rest[0], rest[1], rest[2])
		if err != nil {
			return err
		}
		return printSection(out, "Single message response", response)

	case "bags":
		request, err := parseBags(rest)
		if err != nil {
			return err
		}
		response, err := client.SendMessages(ctx, request)
		if err != nil {
			return err
		}
		return printSection(out, "Multiple message response", response)

	case "balance":
		response, err := client.Balance(ctx)
		if err != nil {
			return err
		}
		return printSection(out, "Credit balance inquiry", response)

	case "history":
		if len(rest) > 1 {
			return fmt.Errorf("%w: history takes at most one number", errUsage)
		}
		response, err := client.MessagesHistory(ctx)
		if err != nil {
			return err
		}
		if err := printSection(out, "Messages history (DELIVERED)", response.Delivered()); err != nil {
			return err
		}
		if err := printSection(out, "Messages history (FAILED)", response.Failed()); err != nil {
			return err
		}
		if len(rest) == 1 {
			return printSection(out, "Messages history (SENT TO "+rest[0]+")", response.ByNumber(rest[0]))
		}
		return nil

	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

// parseBags reads "<sender> <numbers:message>..." into one request.
func parseBags(args []string) (ujumbesms.MessageRequest, error) {
	request := ujumbesms.NewMessageRequest()
	if len(args) < 2 {
		return request, fmt.Errorf("%w: bags takes <sender> and at least one <numbers:message>", errUsage)
	}

	sender := args[0]
	for _, arg := range args[1:] {
		numbers, message, ok := strings.Cut(arg, ":")
		if !ok || numbers == "" || message == "" {
			return request, fmt.Errorf("%w: bag %q is not <numbers:message>", errUsage, arg)
		}
		request.AddMessageBag(numbers, message, sender)
	}

	return request, nil
}

func printSection(out io.Writer, title string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "%s:\n%s\n", title, data)
	return err
}
