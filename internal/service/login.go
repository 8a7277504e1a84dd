package service

import (
	"crypto/subtle"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"

	"boxdrop/internal/apierr"
	"boxdrop/internal/auth"
)

// Notifier delivers an issued OTP to a contact out of band (SMS,
// email). The OTP itself never travels in the HTTP response.
type Notifier interface {
	SendOTP(contact, otp string) error
}

// LogNotifier writes OTPs to the process log. It stands in for a real
// delivery channel in development.
type LogNotifier struct{}

func (LogNotifier) SendOTP(contact, otp string) error {
	log.Printf("otp for %s: %s", contact, otp)
	return nil
}

// LoginService implements the broker OTP login and the admin credential
// login, both ending in an opaque session token.
type LoginService struct {
	otp      *auth.OTPIssuer
	tokens   *auth.TokenIssuer
	notifier Notifier

	adminUser string
	adminHash string // bcrypt hash of the admin password
}

func NewLoginService(otp *auth.OTPIssuer, tokens *auth.TokenIssuer, notifier Notifier, adminUser, adminHash string) *LoginService {
	return &LoginService{
		otp:       otp,
		tokens:    tokens,
		notifier:  notifier,
		adminUser: adminUser,
		adminHash: adminHash,
	}
}

// RequestOTP issues an OTP for contact, hands it to the notifier and
// returns the envelope the client must present back on verification.
func (s *LoginService) RequestOTP(contact string) (string, error) {
	otp, envelope, err := s.otp.Issue(contact)
	if err != nil {
		return "", fmt.Errorf("issue otp: %w", err)
	}
	if err := s.notifier.SendOTP(contact, otp); err != nil {
		return "", fmt.Errorf("deliver otp: %w", err)
	}
	return envelope, nil
}

// VerifyOTP checks the presented OTP and mints a session token on
// success.
func (s *LoginService) VerifyOTP(contact, otp, envelope string) (string, error) {
	if err := s.otp.Verify(contact, otp, envelope); err != nil {
		return "", err
	}
	sessionID, err := auth.NewSessionID()
	if err != nil {
		return "", fmt.Errorf("new session id: %w", err)
	}
	return s.tokens.Issue(sessionID)
}

// AdminLogin checks the configured admin credentials and mints a
// session token on success. Both checks always run, so a bad username
// costs the same as a bad password.
func (s *LoginService) AdminLogin(username, password string) (string, error) {
	if s.adminUser == "" || s.adminHash == "" {
		return "", apierr.Unauthenticated("admin login is not configured")
	}
	userOK := subtle.ConstantTimeCompare([]byte(s.adminUser), []byte(username)) == 1
	passErr := bcrypt.CompareHashAndPassword([]byte(s.adminHash), []byte(password))
	if !userOK || passErr != nil {
		return "", apierr.Unauthenticated("incorrect username or password")
	}
	sessionID, err := auth.NewSessionID()
	if err != nil {
		return "", fmt.Errorf("new session id: %w", err)
	}
	return s.tokens.Issue(sessionID)
}
