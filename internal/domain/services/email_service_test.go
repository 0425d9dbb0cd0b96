package services

import (
	"bufio"
	"fmt"
	"net"
	"strings"
	"testing"
	"time"

	"esweb-http-service/internal/infrastructure/config"
)

// serveRelay speaks just enough SMTP to accept one plaintext delivery. It
// never advertises STARTTLS or AUTH. The DATA payload is sent on the channel.
func serveRelay(ln net.Listener, data chan<- string) {
	conn, err := ln.Accept()
	if err != nil {
		return
	}
	defer conn.Close()

	write := func(s string) { fmt.Fprintf(conn, "%s\r\n", s) }
	write("220 relay.test ESMTP")

	r := bufio.NewReader(conn)
	var body strings.Builder
	inData := false
	for {
		line, err := r.ReadString('\n')
		if err != nil {
			return
		}
		line = strings.TrimRight(line, "\r\n")

		if inData {
			if line == "." {
				inData = false
				data <- body.String()
				write("250 OK")
				continue
			}
			body.WriteString(line + "\n")
			continue
		}

		switch {
		case strings.HasPrefix(line, "EHLO"), strings.HasPrefix(line, "HELO"):
			write("250-relay.test")
			write("250 8BITMIME")
		case strings.HasPrefix(line, "MAIL"), strings.HasPrefix(line, "RCPT"):
			write("250 OK")
		case line == "DATA":
			write("354 End data with <CR><LF>.<CR><LF>")
			inData = true
		case line == "QUIT":
			write("221 Bye")
			return
		default:
			write("250 OK")
		}
	}
}

func startRelay(t *testing.T) (*config.Config, chan string) {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to listen: %v", err)
	}
	t.Cleanup(func() { ln.Close() })

	data := make(chan string, 1)
	go serveRelay(ln, data)

	cfg := &config.Config{
		MailServer:   "127.0.0.1",
		MailPort:     ln.Addr().(*net.TCPAddr).Port,
		MailFrom:     "noreply@example.com",
		MailFromName: "E&S Decorations",
	}
	return cfg, data
}

func TestEmailService_SendReplyOverPlainRelay(t *testing.T) {
	cfg, data := startRelay(t)
	svc := NewEmailService(cfg)

	err := svc.SendReply("ana@example.com", "Reply to Your Inquiry", "Thanks for reaching out", "<p>Thanks for reaching out</p>")
	if err != nil {
		t.Fatalf("SendReply failed: %v", err)
	}

	select {
	case message := <-data:
		for _, want := range []string{
			"Subject: Reply to Your Inquiry",
			"To: ana@example.com",
			"multipart/alternative",
			"text/plain; charset=UTF-8",
			"text/html; charset=UTF-8",
			"Thanks for reaching out",
		} {
			if !strings.Contains(message, want) {
				t.Errorf("expected the message to contain %q", want)
			}
		}
	case <-time.After(2 * time.Second):
		t.Fatal("relay never received the message")
	}
}

func TestEmailService_StartTLSRequiredButUnavailable(t *testing.T) {
	cfg, data := startRelay(t)
	cfg.MailStartTLS = true
	svc := NewEmailService(cfg)

	err := svc.SendReply("ana@example.com", "Reply to Your Inquiry", "Thanks", "<p>Thanks</p>")
	if err == nil {
		t.Fatal("expected the send to fail when the relay cannot upgrade the connection")
	}

	select {
	case <-data:
		t.Error("expected no mail content to reach a relay that cannot upgrade")
	default:
	}
}

func TestEmailService_UnconfiguredRelay(t *testing.T) {
	svc := NewEmailService(&config.Config{})

	if err := svc.SendReply("ana@example.com", "Reply to Your Inquiry", "Thanks", ""); err == nil {
		t.Error("expected an error when no relay is configured")
	}
}
