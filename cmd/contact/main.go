// Command contact submits the portfolio contact form from a terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio-backend/pkg/contactform"
	"portfolio-backend/pkg/validation"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

func main() {
	endpoint := flag.String("endpoint", "http://localhost:8080/api/contact", "contact endpoint URL")
	timeout := flag.Duration("timeout", 30*time.Second, "request timeout")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *endpoint, *timeout); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			fmt.Fprintln(os.Stderr, "aborted")
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, endpoint string, timeout time.Duration) error {
	form := contactform.New(endpoint,
		contactform.WithHTTPClient(&http.Client{Timeout: timeout}),
		// the process exits right after printing, so there is nothing to dismiss
		contactform.WithDisplayWindow(0),
	)
	defer form.Close()

	var fields contactform.Fields
	questions := []*survey.Question{
		{
			Name:     "name",
			Prompt:   &survey.Input{Message: "Name:"},
			Validate: fieldValidator("name"),
		},
		{
			Name:     "email",
			Prompt:   &survey.Input{Message: "Email:"},
			Validate: fieldValidator("email"),
		},
		{
			Name:     "message",
			Prompt:   &survey.Multiline{Message: "Message:"},
			Validate: fieldValidator("message"),
		},
	}
	if err := survey.Ask(questions, &fields); err != nil {
		return err
	}
	form.SetFields(fields)

	state, err := form.Submit(ctx)
	if err != nil {
		return err
	}
	return report(state)
}

// fieldValidator adapts the shared rule for one field to a survey validator
func fieldValidator(field string) survey.Validator {
	return func(ans interface{}) error {
		value, _ := ans.(string)
		if msg := validation.ValidateContactField(field, value); msg != "" {
			return errors.New(msg)
		}
		return nil
	}
}

func report(state contactform.State) error {
	for field, msg := range state.Errors {
		fmt.Fprintf(os.Stderr, "  %s: %s\n", field, msg)
	}
	switch state.Status {
	case contactform.StatusSucceeded:
		fmt.Println(state.Message)
		return nil
	case contactform.StatusFailed:
		return errors.New(state.Message)
	default:
		return errors.New("submission was not sent")
	}
}
