// Command sign prints the timestamp and signature headers a sender attaches
// to a webhook, for exercising the receiver by hand:
//
//	sign -key secret -query 'id=1&status=delivered' -body '{"id":"1"}'
//
// With -url the request is signed and POSTed to the receiver instead.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"webhook-verifier/internal/service"
	"webhook-verifier/pkg/logger"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	if err := run(os.Args[1:], os.Stdout, time.Now); err != nil {
		fmt.Fprintf(os.Stderr, "sign: %v\n", err)
		os.Exit(2)
	}
}

func run(args []string, out io.Writer, now func() time.Time) error {
	fs := flag.NewFlagSet("sign", flag.ContinueOnError)
	fs.SetOutput(out)

	key := fs.String("key", os.Getenv("WHV_WEBHOOK_SIGNING_KEY"), "signing key (default $WHV_WEBHOOK_SIGNING_KEY)")
	timestamp := fs.String("timestamp", "", "timestamp to sign (default: now, seconds since epoch); not allowed with -url")
	query := fs.String("query", "", "raw query string, e.g. 'id=1&status=delivered'")
	body := fs.String("body", "", "request body")
	bodyFile := fs.String("body-file", "", "read the request body from this file instead of -body")
	target := fs.String("url", "", "deliver the signed request to this URL instead of printing headers")
	retries := fs.Int("retries", 0, "extra delivery attempts with -url")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *key == "" {
		return errors.New("a signing key is required (-key or WHV_WEBHOOK_SIGNING_KEY)")
	}
	if *retries < 0 {
		return errors.New("-retries must not be negative")
	}
	if *target != "" && *timestamp != "" {
		return errors.New("-timestamp cannot be used with -url: every delivery attempt is signed with the current time")
	}

	payload := []byte(*body)
	if *bodyFile != "" {
		b, err := os.ReadFile(*bodyFile)
		if err != nil {
			return fmt.Errorf("reading body file: %w", err)
		}
		payload = b
	}

	if *target != "" {
		return send(*target, *query, payload, []byte(*key), *retries, out)
	}

	q, err := url.ParseQuery(*query)
	if err != nil {
		return fmt.Errorf("parsing query: %w", err)
	}

	ts := *timestamp
	if ts == "" {
		ts = strconv.FormatInt(now().Unix(), 10)
	}

	v := service.NewRequestValidator(service.Options{})
	signature, err := v.Sign(ts, q, payload, []byte(*key))
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s: %s\n", v.TimestampHeader(), ts)
	fmt.Fprintf(out, "%s: %s\n", v.SignatureHeader(), signature)
	return nil
}

func send(target, rawQuery string, body, key []byte, retries int, out io.Writer) error {
	u, err := url.Parse(target)
	if err != nil {
		return fmt.Errorf("parsing url: %w", err)
	}
	if rawQuery != "" {
		if u.RawQuery != "" {
			u.RawQuery += "&"
		}
		u.RawQuery += rawQuery
	}

	intervals := make([]time.Duration, 0, retries)
	for i := 0; i < retries; i++ {
		intervals = append(intervals, time.Second)
	}

	log := logger.New("warn", true)
	sender := service.NewWebhookSender(service.NewRequestValidator(service.Options{}),
		&http.Client{Timeout: 10 * time.Second}, intervals, log)

	status, err := sender.Send(context.Background(), u.String(), body, key)
	if status != 0 {
		fmt.Fprintf(out, "%d %s\n", status, http.StatusText(status))
	}
	return err
}
