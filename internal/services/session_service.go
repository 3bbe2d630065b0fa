package services

import (
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// SessionStore abstracts the pieces of state the login flows touch: the
// application lookup and the single persisted session value.
type SessionStore interface {
	FindApplicationByEmail(email string) (*Application, error)
	GetSession() (Session, error)
	SetSession(sess Session) error
	ClearSession() error
	AddAudit(entry AuditEntry)
}

type TokenSigner func(role, email string, ttl time.Duration) (string, error)

// SessionService implements the demo-grade identity boundary. A student is
// whoever enters a parent email that matches an application; staff complete a
// fixed credential check plus a numeric code step where any digits pass.
// None of this is real authentication and it guards no sensitive data.
type SessionService struct {
	store      SessionStore
	now        func() time.Time
	signToken  TokenSigner
	tokenTTL   time.Duration
	staffEmail string
	staffHash  []byte
	codeLength int
}

type AuthResult struct {
	Token string
	Role  string
	Email string
}

const (
	RoleStaff   = "staff"
	RoleStudent = "student"
)

func NewSessionService(store SessionStore, signer TokenSigner, staffEmail, staffPassword string) *SessionService {
	hash, err := bcrypt.GenerateFromPassword([]byte(staffPassword), bcrypt.DefaultCost)
	if err != nil {
		hash = nil
	}
	return &SessionService{
		store:      store,
		now:        func() time.Time { return time.Now().UTC() },
		signToken:  signer,
		tokenTTL:   12 * time.Hour,
		staffEmail: strings.ToLower(strings.TrimSpace(staffEmail)),
		staffHash:  hash,
		codeLength: 6,
	}
}

// StaffLogin checks the fixed demo credential. Success only clears the first
// gate; the caller must still pass VerifyStaffCode to obtain a token.
func (s *SessionService) StaffLogin(email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || strings.TrimSpace(password) == "" {
		return NewInvalidError("email/password required")
	}
	if email != s.staffEmail || s.staffHash == nil {
		return NewUnauthorizedError("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword(s.staffHash, []byte(password)); err != nil {
		return NewUnauthorizedError("invalid credentials")
	}
	return nil
}

// VerifyStaffCode completes the staff login. The code is a demo stand-in for
// a second factor: it must be the right length and all digits, nothing more.
func (s *SessionService) VerifyStaffCode(email, code string) (*AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email != s.staffEmail {
		return nil, NewUnauthorizedError("invalid credentials")
	}
	code = strings.TrimSpace(code)
	if len(code) != s.codeLength || !allDigits(code) {
		return nil, NewUnauthorizedError("invalid code")
	}
	return s.establish(RoleStaff, email)
}

// StudentLogin resolves a portal identity from a parent email. The PIN field
// exists on the form but is not checked against anything.
func (s *SessionService) StudentLogin(email, pin string) (*AuthResult, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, NewInvalidError("email required")
	}
	_ = pin
	app, err := s.store.FindApplicationByEmail(email)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, NewUnauthorizedError("no application for that email")
	}
	return s.establish(RoleStudent, app.ParentEmail)
}

func (s *SessionService) establish(role, email string) (*AuthResult, error) {
	if s.signToken == nil {
		return nil, NewInvalidError("token signer not configured")
	}
	token, err := s.signToken(role, email, s.tokenTTL)
	if err != nil {
		return nil, err
	}
	sess := Session{UserType: role}
	if role == RoleStudent {
		sess.ActiveEmail = email
	}
	if err := s.store.SetSession(sess); err != nil {
		return nil, err
	}
	s.store.AddAudit(AuditEntry{Time: s.now(), Actor: email, Action: "login", Note: role})
	return &AuthResult{Token: token, Role: role, Email: email}, nil
}

// Logout clears the persisted session value.
func (s *SessionService) Logout(actor string) error {
	if err := s.store.ClearSession(); err != nil {
		return err
	}
	s.store.AddAudit(AuditEntry{Time: s.now(), Actor: actor, Action: "logout"})
	return nil
}

// Current returns the rehydrated session state.
func (s *SessionService) Current() (Session, error) {
	return s.store.GetSession()
}

func (s *SessionService) TokenTTL() time.Duration {
	return s.tokenTTL
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
