package services

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"net"
	"net/smtp"
	"strconv"
	"time"
)

type IMailService interface {
	SendMailToNotifyUser(to, subject, body, ctaText, ctaURL string) error
	SendMailToResetPassword(email, token string) error
}

// SMTPConfig holds SMTP and branding config.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
	UseSSL   bool // SMTPS 465; otherwise STARTTLS

	AppName    string
	AppBaseURL string
}

type smtpMailService struct {
	cfg     SMTPConfig
	htmlTpl *template.Template
}

const mailHTMLTemplate = `<!DOCTYPE html>
<html>
<body style="font-family:Arial,sans-serif;background:#f6f6f6;padding:24px">
  <div style="max-width:520px;margin:auto;background:#fff;border-radius:8px;padding:32px">
    <h2 style="margin-top:0">{{.AppName}}</h2>
    <p>{{.Body}}</p>
    {{if .CTAURL}}<p style="text-align:center;margin:32px 0">
      <a href="{{.CTAURL}}" style="background:#2563eb;color:#fff;padding:12px 24px;border-radius:6px;text-decoration:none">{{.CTAText}}</a>
    </p>{{end}}
    <p style="color:#888;font-size:12px">&copy; {{.Year}} {{.AppName}}</p>
  </div>
</body>
</html>`

func NewSMTPMailService(cfg SMTPConfig) (IMailService, error) {
	if cfg.Host == "" || cfg.From == "" {
		return nil, fmt.Errorf("missing SMTP configuration")
	}

	return &smtpMailService{
		cfg:     cfg,
		htmlTpl: template.Must(template.New("mail").Parse(mailHTMLTemplate)),
	}, nil
}

type mailData struct {
	AppName string
	Body    string
	CTAText string
	CTAURL  string
	Year    int
}

func (s *smtpMailService) SendMailToNotifyUser(to, subject, body, ctaText, ctaURL string) error {
	return s.send(to, subject, mailData{
		AppName: s.cfg.AppName,
		Body:    body,
		CTAText: ctaText,
		CTAURL:  ctaURL,
		Year:    time.Now().Year(),
	})
}

func (s *smtpMailService) SendMailToResetPassword(email, token string) error {
	resetURL := fmt.Sprintf("%s/update-password?token=%s", s.cfg.AppBaseURL, token)
	return s.send(email, "Reset your password", mailData{
		AppName: s.cfg.AppName,
		Body:    "We received a request to reset your password. The link below is valid for 30 minutes and can be used once.",
		CTAText: "Reset password",
		CTAURL:  resetURL,
		Year:    time.Now().Year(),
	})
}

func (s *smtpMailService) send(to, subject string, data mailData) error {
	var html bytes.Buffer
	if err := s.htmlTpl.Execute(&html, data); err != nil {
		return fmt.Errorf("render mail: %w", err)
	}

	var msg bytes.Buffer
	fmt.Fprintf(&msg, "From: %s <%s>\r\n", s.cfg.FromName, s.cfg.From)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n\r\n")
	msg.Write(html.Bytes())

	addr := net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port))
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	if s.cfg.UseSSL {
		return s.sendSMTPS(addr, auth, to, msg.Bytes())
	}
	return smtp.SendMail(addr, auth, s.cfg.From, []string{to}, msg.Bytes())
}

// sendSMTPS dials an implicit-TLS (port 465) endpoint; smtp.SendMail only
// speaks STARTTLS.
func (s *smtpMailService) sendSMTPS(addr string, auth smtp.Auth, to string, msg []byte) error {
	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: s.cfg.Host})
	if err != nil {
		return err
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return err
	}
	defer client.Quit()

	if err := client.Auth(auth); err != nil {
		return err
	}
	if err := client.Mail(s.cfg.From); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}

	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	return w.Close()
}
