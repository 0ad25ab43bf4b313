// Package markdown renders notification markdown into sanitized HTML for
// email delivery.
package markdown

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Service converts markdown to HTML and sanitizes the output.
type Service interface {
	ToHTML(markdown string) (string, error)
	Sanitize(htmlContent string) string
	ToHTMLSanitized(markdown string) (string, error)
}

type serviceImpl struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// NewService creates a markdown service with GFM extensions and a UGC
// sanitization policy.
func NewService() Service {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Linkify,
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
		),
	)

	return &serviceImpl{
		md:     md,
		policy: bluemonday.UGCPolicy(),
	}
}

func (s *serviceImpl) ToHTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := s.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown to HTML: %w", err)
	}
	return buf.String(), nil
}

func (s *serviceImpl) Sanitize(htmlContent string) string {
	return s.policy.Sanitize(htmlContent)
}

func (s *serviceImpl) ToHTMLSanitized(markdown string) (string, error) {
	out, err := s.ToHTML(markdown)
	if err != nil {
		return "", err
	}
	return s.Sanitize(out), nil
}
