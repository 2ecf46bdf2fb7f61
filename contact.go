package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/mail"
	"net/smtp"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/eisachaudhary/portfolio/internal/config"
)

const (
	contactSuccess = "Thank you for your message! I'll get back to you soon."
	contactFailure = "Sorry, there was an error sending your message. Please try again later."
	contactLimited = "Too many messages from your connection. Please try again in a minute."

	maxNameLen    = 200
	maxMessageLen = 5000
)

var (
	errMissingField      = errors.New("please fill in your name, email and message")
	errInvalidEmail      = errors.New("please enter a valid email address")
	errTooLong           = errors.New("your message is too long")
	errSMTPNotConfigured = errors.New("SMTP credentials not configured")
)

type contactMessage struct {
	Name    string
	Email   string
	Message string
}

func (m contactMessage) validate() error {
	if m.Name == "" || m.Email == "" || m.Message == "" {
		return errMissingField
	}
	if len(m.Name) > maxNameLen || len(m.Message) > maxMessageLen {
		return errTooLong
	}
	addr, err := mail.ParseAddress(m.Email)
	if err != nil || addr.Address != m.Email {
		return errInvalidEmail
	}
	return nil
}

// Mailer delivers contact form submissions.
type Mailer interface {
	Send(m contactMessage) error
}

type smtpMailer struct {
	cfg config.SMTP
	log *slog.Logger
}

func newSMTPMailer(cfg config.SMTP, log *slog.Logger) *smtpMailer {
	return &smtpMailer{cfg: cfg, log: log}
}

func (s *smtpMailer) Send(m contactMessage) error {
	if s.cfg.User == "" || s.cfg.Pass == "" {
		return errSMTPNotConfigured
	}

	subject := fmt.Sprintf("Portfolio Contact: %s", m.Name)
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, m.Name, m.Email, m.Message)

	msg := []byte("To: " + s.cfg.To + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + s.cfg.User + "\r\n" +
		"Reply-To: " + m.Email + "\r\n" +
		"\r\n" +
		body + "\r\n")

	auth := smtp.PlainAuth("", s.cfg.User, s.cfg.Pass, s.cfg.Host)
	if err := smtp.SendMail(s.cfg.Host+":"+s.cfg.Port, auth, s.cfg.User, []string{s.cfg.To}, msg); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	s.log.Info("contact.sent", "to", s.cfg.To)
	return nil
}

// clientLimiter hands out one token bucket per client key.
type clientLimiter struct {
	mu      sync.Mutex
	limit   rate.Limit
	burst   int
	clients map[string]*rate.Limiter
}

// maxTrackedClients bounds the limiter map; it is reset when full.
const maxTrackedClients = 10000

func newClientLimiter(perMinute int) *clientLimiter {
	return &clientLimiter{
		limit:   rate.Every(time.Minute / time.Duration(perMinute)),
		burst:   perMinute,
		clients: make(map[string]*rate.Limiter),
	}
}

func (l *clientLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	lim, ok := l.clients[key]
	if !ok {
		if len(l.clients) >= maxTrackedClients {
			l.clients = make(map[string]*rate.Limiter)
		}
		lim = rate.NewLimiter(l.limit, l.burst)
		l.clients[key] = lim
	}
	return lim.Allow()
}

func (s *server) contactForm(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", contactMessage{})
}

// contact always answers 200 so HTMX swaps the success or error fragment in.
func (s *server) contact(c *gin.Context) {
	m := contactMessage{
		Name:    strings.TrimSpace(c.PostForm("fullName")),
		Email:   strings.TrimSpace(c.PostForm("email")),
		Message: strings.TrimSpace(c.PostForm("message")),
	}

	if err := m.validate(); err != nil {
		c.HTML(http.StatusOK, "contact-error.html", gin.H{"Error": err.Error()})
		return
	}

	client := hashIP(c.ClientIP(), s.salt)
	if !s.limiter.Allow(client) {
		s.log.Warn("contact.rate_limited", "client", client)
		c.HTML(http.StatusOK, "contact-error.html", gin.H{"Error": contactLimited})
		return
	}

	if err := s.mailer.Send(m); err != nil {
		s.log.Error("contact.send", "client", client, "err", err)
		c.HTML(http.StatusOK, "contact-error.html", gin.H{"Error": contactFailure})
		return
	}

	c.HTML(http.StatusOK, "contact-success.html", gin.H{"Success": contactSuccess})
}
