package email

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/istpublications/intake-backend/internal/domain"
)

func ptr(s string) *string { return &s }

// DefaultTemplates is the starter catalogue installed by SeedTemplates.
func DefaultTemplates() []domain.EmailTemplate {
	return []domain.EmailTemplate{
		{
			Name:    "submission_confirmation",
			Type:    domain.EmailTypeSubmissionConfirmation,
			Subject: "Paper Submission Confirmed - IST Publications #{submission_number}",
			BodyHTML: `<html><body>
<h1>Thank you for your submission</h1>
<p>Dear {author_name},</p>
<p>Your paper has been received by IST Publications.</p>
<p><strong>Submission number:</strong> {submission_number}<br>
<strong>Title:</strong> {article_title}<br>
<strong>Submitted on:</strong> {submission_date}</p>
<p>The editorial board will review it and keep you updated by email.</p>
<p><a href="{portal_url}">Track your submission</a></p>
<p>Questions? Write to {support_email}.</p>
</body></html>`,
			BodyText: ptr(`Dear {author_name},

Your paper has been received by IST Publications.

Submission number: {submission_number}
Title: {article_title}
Submitted on: {submission_date}

Track your submission: {portal_url}
Questions? Write to {support_email}.`),
			Variables: map[string]string{
				"author_name":       "Name of the author",
				"submission_number": "Submission identifier",
				"article_title":     "Title of the article",
				"submission_date":   "Date of submission",
				"portal_url":        "Link to the submission portal",
				"support_email":     "Support address",
			},
		},
		{
			Name:    "admin_notification",
			Type:    domain.EmailTypeAdminNotification,
			Subject: "New Paper Submission - {article_title} by {author_name}",
			BodyHTML: `<html><body>
<h1>New paper submission</h1>
<p><strong>Submission number:</strong> {submission_number}<br>
<strong>Author:</strong> {author_name} &lt;{author_email}&gt;<br>
<strong>Title:</strong> {article_title}<br>
<strong>Category:</strong> {category}<br>
<strong>Submitted:</strong> {timestamp}</p>
<p><a href="{dashboard_url}">Review submission</a></p>
</body></html>`,
			Variables: map[string]string{
				"submission_number": "Submission identifier",
				"article_title":     "Title of the article",
				"author_name":       "Name of the author",
				"author_email":      "Author email address",
				"category":          "Research category",
				"dashboard_url":     "Admin dashboard link",
				"timestamp":         "Submission time",
			},
		},
		{
			Name:    "review_update",
			Type:    domain.EmailTypeReviewUpdate,
			Subject: "Review Update for Submission #{submission_number}",
			BodyHTML: `<html><body>
<h1>Review update</h1>
<p>The status of <em>{article_title}</em> ({submission_number}) is now <strong>{review_status}</strong>.</p>
<p>Reviewer comments: {reviewer_comments}</p>
<p><a href="{portal_url}">View full feedback</a></p>
<p>Questions? Write to {support_email}.</p>
</body></html>`,
			Variables: map[string]string{
				"submission_number": "Submission identifier",
				"article_title":     "Title of the article",
				"review_status":     "Current review status",
				"reviewer_comments": "Comments from reviewers",
				"portal_url":        "Link to view full feedback",
				"support_email":     "Support address",
			},
		},
		{
			Name:    "acceptance",
			Type:    domain.EmailTypeAcceptance,
			Subject: "Congratulations! Your Paper Has Been Accepted - #{submission_number}",
			BodyHTML: `<html><body>
<h1>Your paper has been accepted</h1>
<p>Dear {author_name},</p>
<p>{congratulations_message}</p>
<p><strong>Submission number:</strong> {submission_number}<br>
<strong>Title:</strong> {article_title}</p>
<p><a href="{next_steps_url}">View next steps</a></p>
<p>Questions? Write to {support_email}.</p>
</body></html>`,
			Variables: map[string]string{
				"author_name":             "Name of the author",
				"submission_number":       "Submission identifier",
				"article_title":           "Title of the article",
				"congratulations_message": "Congratulation message",
				"next_steps_url":          "Link to next steps",
				"support_email":           "Support address",
			},
		},
		{
			Name:    "rejection",
			Type:    domain.EmailTypeRejection,
			Subject: "Decision on Your Submission #{submission_number}",
			BodyHTML: `<html><body>
<h1>Decision on your submission</h1>
<p>Dear {author_name},</p>
<p>After careful review we are unable to accept <em>{article_title}</em> ({submission_number}).</p>
<p>Reason: {rejection_reason}</p>
<p>{resubmit_info}</p>
<p>Questions? Write to {support_email}.</p>
</body></html>`,
			Variables: map[string]string{
				"author_name":       "Name of the author",
				"submission_number": "Submission identifier",
				"article_title":     "Title of the article",
				"rejection_reason":  "Reason for rejection",
				"resubmit_info":     "Resubmission information",
				"support_email":     "Support address",
			},
		},
		{
			Name:    "contact_reply",
			Type:    domain.EmailTypeContactReply,
			Subject: "Re: {subject_line}",
			BodyHTML: `<html><body>
<p>Dear {name},</p>
<p>{reply_message}</p>
<p>If you need anything else, reply through <a href="{contact_url}">our contact page</a> or write to {support_email}.</p>
</body></html>`,
			Variables: map[string]string{
				"name":          "Name of the sender",
				"subject_line":  "Original subject",
				"reply_message": "Reply text",
				"support_email": "Support address",
				"contact_url":   "Link to the contact page",
			},
		},
	}
}

// SeedTemplates upserts the default catalogue by name and returns how many
// templates were written.
func (s *Service) SeedTemplates(ctx context.Context) (int, error) {
	now := s.now()
	n := 0
	for _, t := range DefaultTemplates() {
		t.ID = uuid.New()
		t.IsActive = true
		t.CreatedAt = now
		t.UpdatedAt = now
		if _, err := s.templates.UpsertByName(ctx, &t); err != nil {
			return n, fmt.Errorf("seed template %s: %w", t.Name, err)
		}
		n++
	}
	s.log.InfoContext(ctx, "email templates seeded", "count", n)
	return n, nil
}

// ListTemplates returns every stored template, oldest first.
func (s *Service) ListTemplates(ctx context.Context) ([]domain.EmailTemplate, error) {
	ts, err := s.templates.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	return ts, nil
}
