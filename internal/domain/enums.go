package domain

// SubmissionStatus is the lifecycle status of a submission.
type SubmissionStatus string

const (
	SubmissionStatusDraft     SubmissionStatus = "DRAFT"
	SubmissionStatusSubmitted SubmissionStatus = "SUBMITTED"
)

func (s SubmissionStatus) String() string { return string(s) }

func (s SubmissionStatus) IsValid() bool {
	switch s {
	case SubmissionStatusDraft, SubmissionStatusSubmitted:
		return true
	}
	return false
}

// Category is the subject area of an article.
type Category string

const (
	CategoryAI           Category = "ai"
	CategoryArchitecture Category = "architecture"
	CategoryBasic        Category = "basic"
	CategoryBiomedical   Category = "biomedical"
	CategoryBusiness     Category = "business"
	CategoryCS           Category = "cs"
	CategoryData         Category = "data"
	CategoryEconomics    Category = "economics"
	CategoryEngineering  Category = "engineering"
	CategoryManagement   Category = "management"
)

func (c Category) String() string { return string(c) }

func (c Category) IsValid() bool {
	switch c {
	case CategoryAI, CategoryArchitecture, CategoryBasic, CategoryBiomedical, CategoryBusiness,
		CategoryCS, CategoryData, CategoryEconomics, CategoryEngineering, CategoryManagement:
		return true
	}
	return false
}

// Label returns the human-readable category name used in notifications.
func (c Category) Label() string {
	switch c {
	case CategoryAI:
		return "Artificial Intelligence and Machine Learning (AI/ML)"
	case CategoryArchitecture:
		return "Architecture and Architectural Design"
	case CategoryBasic:
		return "Basic Sciences & Mathematics"
	case CategoryBiomedical:
		return "Biomedical Sciences and Bioengineering"
	case CategoryBusiness:
		return "Business Sciences"
	case CategoryCS:
		return "Computer Science"
	case CategoryData:
		return "Data Sciences"
	case CategoryEconomics:
		return "Economics"
	case CategoryEngineering:
		return "Engineering and Technology"
	case CategoryManagement:
		return "Management"
	}
	return string(c)
}

// FileType is an accepted manuscript format.
type FileType string

const (
	FileTypePDF  FileType = "pdf"
	FileTypeDOCX FileType = "docx"
	FileTypeRTF  FileType = "rtf"
)

func (f FileType) String() string { return string(f) }

func (f FileType) IsValid() bool {
	switch f {
	case FileTypePDF, FileTypeDOCX, FileTypeRTF:
		return true
	}
	return false
}

// ReviewerPrefix is the honorific of a suggested reviewer.
type ReviewerPrefix string

const (
	ReviewerPrefixDr   ReviewerPrefix = "Dr"
	ReviewerPrefixProf ReviewerPrefix = "Prof"
	ReviewerPrefixMr   ReviewerPrefix = "Mr"
	ReviewerPrefixMs   ReviewerPrefix = "Ms"
)

func (p ReviewerPrefix) String() string { return string(p) }

func (p ReviewerPrefix) IsValid() bool {
	switch p {
	case ReviewerPrefixDr, ReviewerPrefixProf, ReviewerPrefixMr, ReviewerPrefixMs:
		return true
	}
	return false
}

// SubmissionAction identifies an entry in the submission event trail.
type SubmissionAction string

const (
	SubmissionActionCreated   SubmissionAction = "CREATED"
	SubmissionActionStepSaved SubmissionAction = "STEP_SAVED"
	SubmissionActionSubmitted SubmissionAction = "SUBMITTED"
)

func (a SubmissionAction) String() string { return string(a) }

// EmailType is the closed set of template categories.
type EmailType string

const (
	EmailTypeSubmissionConfirmation EmailType = "SUBMISSION_CONFIRMATION"
	EmailTypeAdminNotification      EmailType = "ADMIN_NOTIFICATION"
	EmailTypeReviewUpdate           EmailType = "REVIEW_UPDATE"
	EmailTypeAcceptance             EmailType = "ACCEPTANCE"
	EmailTypeRejection              EmailType = "REJECTION"
	EmailTypePaymentReminder        EmailType = "PAYMENT_REMINDER"
	EmailTypeContactReply           EmailType = "CONTACT_REPLY"
	EmailTypeWelcome                EmailType = "WELCOME"
)

func (t EmailType) String() string { return string(t) }

func (t EmailType) IsValid() bool {
	switch t {
	case EmailTypeSubmissionConfirmation, EmailTypeAdminNotification, EmailTypeReviewUpdate,
		EmailTypeAcceptance, EmailTypeRejection, EmailTypePaymentReminder,
		EmailTypeContactReply, EmailTypeWelcome:
		return true
	}
	return false
}

// EmailStatus is the delivery status of an email log entry.
type EmailStatus string

const (
	EmailStatusPending  EmailStatus = "PENDING"
	EmailStatusSent     EmailStatus = "SENT"
	EmailStatusFailed   EmailStatus = "FAILED"
	EmailStatusBounced  EmailStatus = "BOUNCED"
	EmailStatusOpened   EmailStatus = "OPENED"
	EmailStatusClicked  EmailStatus = "CLICKED"
	EmailStatusRetrying EmailStatus = "RETRYING"
)

func (s EmailStatus) String() string { return string(s) }

func (s EmailStatus) IsValid() bool {
	switch s {
	case EmailStatusPending, EmailStatusSent, EmailStatusFailed, EmailStatusBounced,
		EmailStatusOpened, EmailStatusClicked, EmailStatusRetrying:
		return true
	}
	return false
}

// ContactSubject is the reason given on the contact form.
type ContactSubject string

const (
	ContactSubjectPaperSubmission ContactSubject = "paper_submission"
	ContactSubjectGeneralInquiry  ContactSubject = "general_inquiry"
	ContactSubjectBuyJournal      ContactSubject = "buy_journal"
)

func (s ContactSubject) String() string { return string(s) }

func (s ContactSubject) IsValid() bool {
	switch s {
	case ContactSubjectPaperSubmission, ContactSubjectGeneralInquiry, ContactSubjectBuyJournal:
		return true
	}
	return false
}
