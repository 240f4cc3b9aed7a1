// Package email renders the two notification emails sent for an accepted
// contact submission: the alert to the site owner and the acknowledgment
// back to the submitter.
package email

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/Xalpha19/chaitravm/internal/core/domain"
)

var ownerAlertTmpl = template.Must(template.New("owner_alert").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #333; border-bottom: 2px solid #007bff; padding-bottom: 10px;">
    New Contact Form Submission
  </h2>

  <div style="background: #f8f9fa; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h3 style="color: #007bff; margin-top: 0;">Contact Information</h3>
    <p><strong>Name:</strong> {{.FirstName}} {{.LastName}}</p>
    <p><strong>Email:</strong> <a href="mailto:{{.Email}}">{{.Email}}</a></p>
    {{if .Company}}<p><strong>Company:</strong> {{.Company}}</p>{{end}}
    <p><strong>Subject:</strong> {{.Subject}}</p>
  </div>

  <div style="background: #fff; padding: 20px; border: 1px solid #dee2e6; border-radius: 8px;">
    <h3 style="color: #007bff; margin-top: 0;">Message</h3>
    <p style="white-space: pre-wrap; line-height: 1.6;">{{.Message}}</p>
  </div>

  <div style="margin-top: 20px; padding: 15px; background: #e9ecef; border-radius: 8px; font-size: 12px; color: #6c757d;">
    <p><strong>Submission Details:</strong></p>
    <p>IP Address: {{.SourceIP}}</p>
    <p>User Agent: {{.UserAgent}}</p>
    <p>Submitted: {{.SubmittedAt}}</p>
    <p>Security Verified: Turnstile Verified</p>
  </div>
</div>
`))

var acknowledgmentTmpl = template.Must(template.New("acknowledgment").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #007bff; border-bottom: 2px solid #007bff; padding-bottom: 10px;">
    Thank You for Your Message
  </h2>

  <p>Hello {{.FirstName}},</p>

  <p>Thank you for reaching out! I have successfully received your message and will review it carefully.</p>

  <div style="background: #f8f9fa; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h3 style="color: #007bff; margin-top: 0;">Your Message Summary</h3>
    <p><strong>Subject:</strong> {{.Subject}}</p>
    <p><strong>Submitted:</strong> {{.SubmittedAt}}</p>
  </div>

  <p><strong>What happens next?</strong></p>
  <ul style="line-height: 1.6;">
    <li>I typically respond to messages within 24-48 hours</li>
    <li>For urgent security matters, I'll prioritize accordingly</li>
    <li>You'll receive a response directly to this email address</li>
  </ul>

  <p>If you have any additional questions or need to add more information to your inquiry, please feel free to reply to this email.</p>

  <p>Best regards,<br>
  <strong>Chaitra</strong><br>
  Cybersecurity Professional</p>

  <div style="margin-top: 30px; padding: 15px; background: #e9ecef; border-radius: 8px; font-size: 12px; color: #6c757d;">
    <p>This is an automated confirmation email. Your message was securely transmitted and verified.</p>
  </div>
</div>
`))

type templateData struct {
	FirstName   string
	LastName    string
	Email       string
	Company     string
	Subject     string
	Message     string
	SourceIP    string
	UserAgent   string
	SubmittedAt string
}

func data(sub *domain.ContactSubmission) templateData {
	return templateData{
		FirstName:   sub.FirstName,
		LastName:    sub.LastName,
		Email:       sub.Email,
		Company:     sub.Company,
		Subject:     sub.Subject,
		Message:     sub.Message,
		SourceIP:    sub.SourceIP,
		UserAgent:   sub.UserAgent,
		SubmittedAt: sub.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// OwnerAlert builds the alert email sent to the site owner. It contains all
// submitted fields plus the audit metadata recorded with the submission.
func OwnerAlert(sub *domain.ContactSubmission, ownerEmail, fromAddress string) (domain.EmailMessage, error) {
	var body bytes.Buffer
	if err := ownerAlertTmpl.Execute(&body, data(sub)); err != nil {
		return domain.EmailMessage{}, fmt.Errorf("failed to render owner alert: %w", err)
	}

	return domain.EmailMessage{
		From:    "Contact Form <" + fromAddress + ">",
		To:      []string{ownerEmail},
		Subject: "New Contact Form Submission: " + sub.Subject,
		HTML:    body.String(),
	}, nil
}

// Acknowledgment builds the confirmation email sent back to the submitter.
func Acknowledgment(sub *domain.ContactSubmission, fromAddress string) (domain.EmailMessage, error) {
	var body bytes.Buffer
	if err := acknowledgmentTmpl.Execute(&body, data(sub)); err != nil {
		return domain.EmailMessage{}, fmt.Errorf("failed to render acknowledgment: %w", err)
	}

	return domain.EmailMessage{
		From:    "Chaitra <" + fromAddress + ">",
		To:      []string{sub.Email},
		Subject: "Thank you for contacting me - Message received",
		HTML:    body.String(),
	}, nil
}
