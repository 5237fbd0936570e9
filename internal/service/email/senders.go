package email

import (
	"context"
	"fmt"
	"time"

	"github.com/istpublications/intake-backend/internal/domain"
)

// The convenience senders below return an error for a missing template and
// for a template that references a variable they do not supply; neither
// case writes a log entry. Transport failures still come back as FAILED
// entries.

const (
	defaultReviewerComments = "N/A"
	defaultRejectionReason  = "Does not meet our current criteria"
	acceptanceMessage       = "We are pleased to inform you that your paper has been accepted!"
	resubmitInfo            = "You are welcome to resubmit an improved version in the future."
)

// SendSubmissionConfirmation mails the author after finalization.
func (s *Service) SendSubmissionConfirmation(ctx context.Context, sub *domain.Submission) (*domain.EmailLog, error) {
	submitted := sub.UpdatedAt
	if sub.SubmittedAt != nil {
		submitted = *sub.SubmittedAt
	}

	return s.sendFor(ctx, sub, domain.EmailTypeSubmissionConfirmation, sub.AuthorEmail, map[string]string{
		"author_name":       sub.AuthorName,
		"submission_number": sub.ID,
		"article_title":     sub.Title(),
		"submission_date":   submitted.Format("January 02, 2006"),
		"portal_url":        s.portalURL(sub.ID),
		"support_email":     s.cfg.AdminAddress,
	})
}

// SendAdminNotification tells the editorial office about a new submission.
func (s *Service) SendAdminNotification(ctx context.Context, sub *domain.Submission) (*domain.EmailLog, error) {
	category := ""
	if sub.Metadata != nil {
		category = sub.Metadata.Category.Label()
	}

	return s.sendFor(ctx, sub, domain.EmailTypeAdminNotification, s.cfg.AdminAddress, map[string]string{
		"submission_number": sub.ID,
		"article_title":     sub.Title(),
		"author_name":       sub.AuthorName,
		"author_email":      sub.AuthorEmail,
		"category":          category,
		"dashboard_url":     s.cfg.BackendURL + "/admin/submissions/" + sub.ID,
		"timestamp":         s.now().Format(time.DateTime),
	})
}

// SendReviewUpdate reports a review status change to the author.
func (s *Service) SendReviewUpdate(ctx context.Context, sub *domain.Submission, status, comments string) (*domain.EmailLog, error) {
	if comments == "" {
		comments = defaultReviewerComments
	}

	return s.sendFor(ctx, sub, domain.EmailTypeReviewUpdate, sub.AuthorEmail, map[string]string{
		"submission_number": sub.ID,
		"article_title":     sub.Title(),
		"review_status":     status,
		"reviewer_comments": comments,
		"portal_url":        s.portalURL(sub.ID),
		"support_email":     s.cfg.AdminAddress,
	})
}

// SendAcceptance tells the author the paper was accepted.
func (s *Service) SendAcceptance(ctx context.Context, sub *domain.Submission) (*domain.EmailLog, error) {
	return s.sendFor(ctx, sub, domain.EmailTypeAcceptance, sub.AuthorEmail, map[string]string{
		"author_name":             sub.AuthorName,
		"submission_number":       sub.ID,
		"article_title":           sub.Title(),
		"congratulations_message": acceptanceMessage,
		"next_steps_url":          s.cfg.FrontendURL + "/accepted/" + sub.ID,
		"support_email":           s.cfg.AdminAddress,
	})
}

// SendRejection tells the author the paper was declined.
func (s *Service) SendRejection(ctx context.Context, sub *domain.Submission, reason string) (*domain.EmailLog, error) {
	if reason == "" {
		reason = defaultRejectionReason
	}

	return s.sendFor(ctx, sub, domain.EmailTypeRejection, sub.AuthorEmail, map[string]string{
		"author_name":       sub.AuthorName,
		"submission_number": sub.ID,
		"article_title":     sub.Title(),
		"rejection_reason":  reason,
		"resubmit_info":     resubmitInfo,
		"support_email":     s.cfg.AdminAddress,
	})
}

// SendContactReply answers a contact-form message. The entry is not tied to
// a submission.
func (s *Service) SendContactReply(ctx context.Context, msg *domain.ContactMessage, subjectLine, reply string) (*domain.EmailLog, error) {
	entry, err := s.send(ctx, SendInput{
		To:   msg.Email,
		Type: domain.EmailTypeContactReply,
		Context: map[string]string{
			"name":          msg.Name,
			"subject_line":  subjectLine,
			"reply_message": reply,
			"support_email": s.cfg.AdminAddress,
			"contact_url":   s.cfg.FrontendURL + "/contact",
		},
	}, true)
	if err != nil {
		return nil, fmt.Errorf("send contact reply: %w", err)
	}
	return entry, nil
}

func (s *Service) sendFor(ctx context.Context, sub *domain.Submission, t domain.EmailType, to string, vars map[string]string) (*domain.EmailLog, error) {
	id := sub.ID
	entry, err := s.send(ctx, SendInput{
		To:           to,
		Type:         t,
		Context:      vars,
		SubmissionID: &id,
	}, true)
	if err != nil {
		return nil, fmt.Errorf("send %s for %s: %w", t, sub.ID, err)
	}
	return entry, nil
}

func (s *Service) portalURL(id string) string {
	return s.cfg.FrontendURL + "/submission/" + id
}
