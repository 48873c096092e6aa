package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"
	"time"

	"formaplus/config"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEmail sends an HTML email. SendGrid is used when an API key is
// configured, plain SMTP otherwise.
func SendEmail(to []string, subject string, htmlBody string) error {
	if config.AppConfig.SendGridApiKey != "" {
		return sendViaSendGrid(to, subject, htmlBody)
	}
	return sendViaSMTP(to, subject, htmlBody)
}

func sendViaSendGrid(to []string, subject string, htmlBody string) error {
	from := sgmail.NewEmail("Formaplus", config.AppConfig.EmailSender)

	p := sgmail.NewPersonalization()
	p.Subject = subject
	for _, addr := range to {
		p.AddTos(sgmail.NewEmail("", addr))
	}

	m := sgmail.NewV3Mail()
	m.SetFrom(from)
	m.AddPersonalizations(p)
	m.AddContent(sgmail.NewContent("text/html", htmlBody))

	client := sendgrid.NewSendClient(config.AppConfig.SendGridApiKey)
	resp, err := client.Send(m)
	if err != nil {
		log.Printf("Error sending email via SendGrid: %v", err)
		return err
	}
	if resp.StatusCode >= 400 {
		log.Printf("SendGrid rejected email, status %d: %s", resp.StatusCode, resp.Body)
		return fmt.Errorf("sendgrid: status %d", resp.StatusCode)
	}
	return nil
}

func sendViaSMTP(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: Formaplus <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	if err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg)); err != nil {
		log.Printf("Error sending email: %v", err)
		return err
	}
	return nil
}

// getEmailTemplate wraps body content in the shared HTML layout
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1F3A5F; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1F3A5F; line-height: 1.6; }
			.content h2 { color: #1F3A5F; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.btn { display: inline-block; padding: 12px 24px; background-color: #3FA796; color: #FFFFFF; text-decoration: none; border-radius: 4px; font-weight: bold; margin-top: 20px; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #3FA796; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>Formaplus</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; %d Formaplus. All rights reserved.
			</div>
		</div>
	</body>
	</html>`, title, bodyContent, time.Now().Year())
}

// SendOTPEmail sends the verification code used at signup and password reset
func SendOTPEmail(otp, email string) error {
	body := fmt.Sprintf(`
		<p>Your One Time Password (OTP) is:</p>
		<h1 style="text-align: center; color: #3FA796; font-size: 40px; margin: 20px 0;">%s</h1>
		<p style="font-size: 14px; color: #999999;">Do not share this OTP with anyone. It expires in 10 minutes.</p>
	`, otp)
	return SendEmail([]string{email}, "Your Formaplus verification code", getEmailTemplate("Email Verification", body))
}

// SendEnrollmentEmail confirms a course enrollment to the learner
func SendEnrollmentEmail(email, userName, courseTitle string) error {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>You are now enrolled in <strong>%s</strong>.</p>
		<div class="info-box">Head to your dashboard to start learning. Your progress is tracked automatically as you complete resources.</div>
	`, userName, courseTitle)
	return SendEmail([]string{email}, "Enrollment confirmed - "+courseTitle, getEmailTemplate("Enrollment Confirmed", body))
}

// SendPaymentReceiptEmail confirms a completed payment
func SendPaymentReceiptEmail(email, userName, reference string, amount float64, paidAt time.Time) error {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>We received your payment of <strong>%.2f</strong> on %s.</p>
		<div class="info-box">Payment reference: <strong>%s</strong></div>
		<p>Keep this reference for your records.</p>
	`, userName, amount, paidAt.Format("02 Jan 2006"), reference)
	return SendEmail([]string{email}, "Payment receipt - "+reference, getEmailTemplate("Payment Received", body))
}

// SendCertificateEmail notifies the learner that a certificate was issued
func SendCertificateEmail(email, userName, courseTitle, certificateURL string) error {
	body := fmt.Sprintf(`
		<p>Congratulations %s!</p>
		<p>You completed enough of <strong>%s</strong> to earn your certificate.</p>
		<a class="btn" href="%s">Download your certificate</a>
	`, userName, courseTitle, certificateURL)
	return SendEmail([]string{email}, "Your certificate for "+courseTitle, getEmailTemplate("Certificate Issued", body))
}
