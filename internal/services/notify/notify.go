// Package notify shows desktop notifications, asking the user for permission
// the first time one is needed.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// Permission is the user's answer to the notification prompt
type Permission string

const (
	PermissionDefault Permission = "default"
	PermissionGranted Permission = "granted"
	PermissionDenied  Permission = "denied"
)

// ParsePermission parses a stored permission. Empty means default.
func ParsePermission(s string) (Permission, error) {
	switch Permission(s) {
	case "", PermissionDefault:
		return PermissionDefault, nil
	case PermissionGranted:
		return PermissionGranted, nil
	case PermissionDenied:
		return PermissionDenied, nil
	}
	return PermissionDefault, fmt.Errorf("unknown notification permission %q", s)
}

// Prompter asks the user whether notifications may be shown
type Prompter interface {
	RequestPermission(ctx context.Context) (Permission, error)
}

// Service sends notifications once permission is granted
type Service struct {
	sender       Sender
	prompter     Prompter
	logger       *slog.Logger
	onPermission func(Permission)

	mu         sync.Mutex
	permission Permission
	prompting  bool
}

// Option configures a Service
type Option func(*Service)

// WithPermission seeds the stored permission
func WithPermission(p Permission) Option {
	return func(s *Service) {
		s.permission = p
	}
}

// WithOnPermission registers a callback invoked when the user answers a prompt
func WithOnPermission(fn func(Permission)) Option {
	return func(s *Service) {
		s.onPermission = fn
	}
}

// NewService creates a notification service
func NewService(sender Sender, prompter Prompter, logger *slog.Logger, opts ...Option) *Service {
	s := &Service{
		sender:     sender,
		prompter:   prompter,
		logger:     logger,
		permission: PermissionDefault,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Permission returns the current permission
func (s *Service) Permission() Permission {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.permission
}

// Notify shows a notification. Without a stored answer the user is prompted
// once; calls arriving while that prompt is open are dropped. It blocks while
// the prompt is open, so callers on the UI goroutine should run it in a command.
func (s *Service) Notify(ctx context.Context, title, body string) {
	if s.sender == nil || !s.sender.Supported() {
		s.logger.Debug("notifications unsupported")
		return
	}

	s.mu.Lock()
	switch s.permission {
	case PermissionDenied:
		s.mu.Unlock()
		s.logger.Debug("notification suppressed, permission denied")
		return
	case PermissionGranted:
		s.mu.Unlock()
		s.send(ctx, title, body)
		return
	}
	if s.prompting || s.prompter == nil {
		s.mu.Unlock()
		s.logger.Debug("notification dropped, permission pending")
		return
	}
	s.prompting = true
	s.mu.Unlock()

	perm, err := s.prompter.RequestPermission(ctx)

	s.mu.Lock()
	s.prompting = false
	if err != nil {
		s.mu.Unlock()
		s.logger.Warn("notification permission request failed", "error", err)
		return
	}
	s.permission = perm
	s.mu.Unlock()

	s.logger.Info("notification permission answered", "permission", perm)
	if s.onPermission != nil {
		s.onPermission(perm)
	}

	if perm == PermissionGranted {
		s.send(ctx, title, body)
	}
}

func (s *Service) send(ctx context.Context, title, body string) {
	if err := s.sender.Send(ctx, title, body); err != nil {
		s.logger.Warn("notification failed", "title", title, "error", err)
		return
	}
	s.logger.Debug("notification sent", "title", title)
}
