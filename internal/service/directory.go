package service

import (
	"crypto/tls"
	"fmt"
	"strings"
	"time"

	"institute-portal-backend/internal/config"
	apperrors "institute-portal-backend/internal/errors"

	"github.com/go-ldap/ldap/v3"
)

// minDirectoryTerm keeps prefix searches from walking the whole tree
const minDirectoryTerm = 3

// DirectoryPerson is the subset of directory attributes shown when
// provisioning an account
type DirectoryPerson struct {
	DN          string `json:"dn"`
	DisplayName string `json:"display_name"`
	GivenName   string `json:"given_name"`
	Surname     string `json:"surname"`
	Mail        string `json:"mail"`
	Mobile      string `json:"mobile"`
	Department  string `json:"department"`
	Title       string `json:"title"`
}

var directoryAttributes = []string{"displayName", "givenName", "sn", "mail", "mobile", "department", "title"}

// ldapClient is the part of *ldap.Conn the directory search uses
type ldapClient interface {
	Bind(username, password string) error
	Search(searchRequest *ldap.SearchRequest) (*ldap.SearchResult, error)
	SetTimeout(d time.Duration)
	Close() error
}

// dialLDAP opens the TLS connection; replaced in tests
var dialLDAP = func(network, addr string, cfg *tls.Config) (ldapClient, error) {
	return ldap.DialTLS(network, addr, cfg)
}

// DirectoryService searches the institutional LDAP directory
type DirectoryService struct {
	cfg *config.Config
}

// NewDirectoryService creates a new directory service
func NewDirectoryService(cfg *config.Config) *DirectoryService {
	return &DirectoryService{cfg: cfg}
}

// Enabled reports whether a directory host is configured
func (s *DirectoryService) Enabled() bool {
	return s.cfg.LDAPEnabled()
}

// Search finds people whose cn starts with term
func (s *DirectoryService) Search(term string) ([]DirectoryPerson, error) {
	if !s.Enabled() {
		return nil, apperrors.ErrDirectoryDisabled
	}
	term = strings.TrimSpace(term)
	if len([]rune(term)) < minDirectoryTerm {
		return nil, apperrors.NewValidationError("q", fmt.Sprintf("must have at least %d characters", minDirectoryTerm))
	}

	addr := s.cfg.LDAPHost + ":" + s.cfg.LDAPPort
	l, err := dialLDAP("tcp", addr, &tls.Config{
		ServerName:         s.cfg.LDAPHost,
		InsecureSkipVerify: s.cfg.LDAPInsecureSkipVerify, //nolint:gosec // opt-in for internal CAs
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to directory: %w", err)
	}
	defer l.Close()

	if s.cfg.LDAPTimeoutSec > 0 {
		l.SetTimeout(time.Duration(s.cfg.LDAPTimeoutSec) * time.Second)
	}
	if err := l.Bind(s.cfg.LDAPBindDN, s.cfg.LDAPBindPW); err != nil {
		return nil, fmt.Errorf("failed to bind to directory: %w", err)
	}

	req := ldap.NewSearchRequest(
		s.cfg.LDAPBaseDN,
		ldap.ScopeWholeSubtree,
		ldap.NeverDerefAliases,
		50,
		s.cfg.LDAPTimeoutSec,
		false,
		"(&(objectClass=person)(cn="+ldap.EscapeFilter(term)+"*))",
		directoryAttributes,
		nil,
	)
	res, err := l.Search(req)
	if err != nil && !ldap.IsErrorWithCode(err, ldap.LDAPResultSizeLimitExceeded) {
		return nil, fmt.Errorf("directory search failed: %w", err)
	}
	if res == nil {
		return []DirectoryPerson{}, nil
	}

	out := make([]DirectoryPerson, 0, len(res.Entries))
	for _, e := range res.Entries {
		out = append(out, DirectoryPerson{
			DN:          e.DN,
			DisplayName: e.GetAttributeValue("displayName"),
			GivenName:   e.GetAttributeValue("givenName"),
			Surname:     e.GetAttributeValue("sn"),
			Mail:        strings.ToLower(e.GetAttributeValue("mail")),
			Mobile:      e.GetAttributeValue("mobile"),
			Department:  e.GetAttributeValue("department"),
			Title:       e.GetAttributeValue("title"),
		})
	}
	return out, nil
}
