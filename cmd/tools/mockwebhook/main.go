package main

import (
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
)

func main() {
	target := flag.String("url", "http://localhost:8080/webhooks/chat", "Webhook URL")
	from := flag.String("from", "whatsapp:+919999999999", "Sender address")
	txn := flag.String("txn", "T1", "Transaction ID to embed in the message body")
	body := flag.String("body", "", "Raw message body (overrides -txn)")
	flag.Parse()

	text := *body
	if text == "" {
		text = fmt.Sprintf("Hi, please send my receipt.\nTransaction ID: %s\nThanks!", *txn)
	}

	form := url.Values{}
	form.Set("From", *from)
	form.Set("Body", text)

	fmt.Printf("Sending to %s...\n", *target)
	resp, err := http.Post(*target, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error sending request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	fmt.Printf("Status: %d\n", resp.StatusCode)
	fmt.Printf("Response: %s\n", string(respBody))

	if resp.StatusCode != http.StatusOK {
		os.Exit(1)
	}
}
