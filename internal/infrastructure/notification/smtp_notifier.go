package notification

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"time"

	"nishad_gateway/internal/domain/entities"
	"nishad_gateway/internal/infrastructure/report"
	"nishad_gateway/internal/usecase/interfaces"

	gomail "github.com/wneessen/go-mail"
)

const subjectNewLeadFmt = "New KSA calculator lead: %s (%s)"

var newLeadTemplate = template.Must(template.New("new_lead").Parse(`<!doctype html>
<html><body style="font-family:Arial,sans-serif;color:#1f2933">
<h2 style="color:#0b6a67">New KSA expansion estimate</h2>
<p>{{.FullName}} requested an estimate from the cost calculator.</p>
<table cellpadding="4" style="border-collapse:collapse">
<tr><td><b>Email</b></td><td>{{.Email}}</td></tr>
<tr><td><b>Mobile</b></td><td>{{.Mobile}}</td></tr>
<tr><td><b>Investor type</b></td><td>{{.InvestorType}}</td></tr>
<tr><td><b>Activity</b></td><td>{{.Activity}}</td></tr>
<tr><td><b>City</b></td><td>{{.City}}</td></tr>
<tr><td><b>Timeline</b></td><td>{{.Timeline}}</td></tr>
<tr><td><b>Visas</b></td><td>{{.Visas}}</td></tr>
<tr><td><b>Estimate</b></td><td>{{.Range}}</td></tr>
<tr><td><b>Recommended setup</b></td><td>{{.RecommendedSetup}}</td></tr>
<tr><td><b>Report ID</b></td><td>{{.ReportID}}</td></tr>
</table>
</body></html>`))

type newLeadEmailData struct {
	FullName         string
	Email            string
	Mobile           string
	InvestorType     string
	Activity         string
	City             string
	Timeline         string
	Visas            int
	Range            string
	RecommendedSetup string
	ReportID         string
}

// SMTPLeadNotifier emails the sales inbox whenever a calculator lead is captured.
type SMTPLeadNotifier struct {
	host      string
	port      int
	username  string
	password  string
	fromName  string
	fromEmail string
	to        string
}

var (
	_ interfaces.ILeadNotifier = (*SMTPLeadNotifier)(nil)
	_ interfaces.ILeadNotifier = NoopLeadNotifier{}
)

func NewSMTPLeadNotifier(host string, port int, username, password, fromEmail, fromName, to string) *SMTPLeadNotifier {
	return &SMTPLeadNotifier{
		host:      host,
		port:      port,
		username:  username,
		password:  password,
		fromName:  fromName,
		fromEmail: fromEmail,
		to:        to,
	}
}

func (s *SMTPLeadNotifier) NotifyNewLead(ctx context.Context, lead entities.Lead) error {
	msg, err := buildNewLeadMessage(s.fromName, s.fromEmail, s.to, lead)
	if err != nil {
		return err
	}

	opts := []gomail.Option{
		gomail.WithPort(s.port),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
		gomail.WithTimeout(15 * time.Second),
	}
	if s.username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(s.username),
			gomail.WithPassword(s.password),
		)
	}

	client, err := gomail.NewClient(s.host, opts...)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}

	log.Printf("[lead][notifier] email sent lead_id=%s to=%s", lead.ID, s.to)
	return nil
}

func buildNewLeadMessage(fromName, fromEmail, to string, lead entities.Lead) (*gomail.Msg, error) {
	var body bytes.Buffer
	err := newLeadTemplate.Execute(&body, newLeadEmailData{
		FullName:         lead.FullName,
		Email:            lead.Email,
		Mobile:           lead.Mobile,
		InvestorType:     lead.InvestorType,
		Activity:         lead.Activity,
		City:             lead.City,
		Timeline:         lead.Timeline,
		Visas:            lead.Visas,
		Range:            fmt.Sprintf("%s - %s", report.FormatSAR(lead.Estimate.Min), report.FormatSAR(lead.Estimate.Max)),
		RecommendedSetup: lead.Estimate.RecommendedSetup,
		ReportID:         lead.Estimate.ReportID,
	})
	if err != nil {
		return nil, fmt.Errorf("render lead email: %w", err)
	}

	msg := gomail.NewMsg()
	if err := msg.FromFormat(fromName, fromEmail); err != nil {
		return nil, fmt.Errorf("smtp from: %w", err)
	}
	if err := msg.To(to); err != nil {
		return nil, fmt.Errorf("smtp to: %w", err)
	}
	if lead.Email != "" {
		if err := msg.ReplyTo(lead.Email); err != nil {
			log.Printf("[lead][notifier] ignoring invalid reply-to lead_id=%s err=%v", lead.ID, err)
		}
	}
	msg.Subject(fmt.Sprintf(subjectNewLeadFmt, lead.FullName, lead.Estimate.ReportID))
	msg.SetBodyString(gomail.TypeTextHTML, body.String())
	return msg, nil
}

// NoopLeadNotifier is used when SMTP is not configured.
type NoopLeadNotifier struct{}

func (NoopLeadNotifier) NotifyNewLead(_ context.Context, lead entities.Lead) error {
	log.Printf("[lead][notifier] email disabled, skipping lead_id=%s", lead.ID)
	return nil
}
