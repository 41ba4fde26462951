package outreach

import "hireflow/models"

// DefaultTemplateID is the template preselected when a session opens.
const DefaultTemplateID = "standard-invite"

// templateCatalog is the fixed, ordered template catalog. Adding a template
// means adding an entry here with its own required fields; the engine needs
// no code change.
var templateCatalog = []models.EmailTemplate{
	{
		ID:             "standard-invite",
		Name:           "Standard Interview Invitation",
		SubjectPattern: "Interview Invitation: {{jobTitle}} Position",
		BodyPattern: `Dear {{candidateName}},

I hope this email finds you well. Thank you for your application for the {{jobTitle}} position.

We were impressed with your background and qualifications, and we would like to invite you to an interview to discuss your application further. Your skills and experience appear to be a strong match for our requirements ({{matchScore}}% match with our criteria).

We have scheduled your interview for {{interviewDate}}. Please confirm if this time works for you, or let us know your availability for an alternative slot.

I look forward to speaking with you soon.

Best regards,
Recruitment Team`,
		RequiredFields: []string{
			models.FieldCandidateName,
			models.FieldJobTitle,
			models.FieldMatchScore,
			models.FieldInterviewDate,
		},
		RequiresSlot: true,
	},
	{
		ID:             "technical-assessment",
		Name:           "Technical Assessment Invitation",
		SubjectPattern: "Technical Assessment for {{jobTitle}} Role",
		BodyPattern: `Dear {{candidateName}},

Thank you for applying to the {{jobTitle}} position. We've reviewed your application and are impressed with your qualifications.

As the next step in our hiring process, we would like to invite you to complete a technical assessment to better evaluate your technical skills relevant to this role. Your profile shows a strong match ({{matchScore}}%) with our requirements.

The assessment will take approximately 90 minutes and will focus on practical problems similar to what you might encounter in this position. You'll receive a separate email with instructions and access to the assessment platform.

Please complete the assessment by {{assessmentDeadline}}. If you have any questions or need accommodations, don't hesitate to reach out.

Best regards,
Technical Hiring Team`,
		RequiredFields: []string{
			models.FieldCandidateName,
			models.FieldJobTitle,
			models.FieldMatchScore,
			models.FieldAssessmentDeadline,
		},
		RequiresSlot: false,
	},
	{
		ID:             "follow-up",
		Name:           "Interview Follow-up",
		SubjectPattern: "Next Steps: {{jobTitle}} Position",
		BodyPattern: `Dear {{candidateName}},

Thank you for taking the time to interview for the {{jobTitle}} position. We appreciate your interest in joining our team.

We were impressed with your experience and the skills you've demonstrated throughout our selection process. Your profile shows a strong match ({{matchScore}}%) with what we're looking for.

I'm happy to inform you that we would like to move forward with your application. We have scheduled a final interview with our department director for {{interviewDate}}. Please confirm if this time works for you.

Looking forward to speaking with you again soon.

Best regards,
Recruitment Team`,
		RequiredFields: []string{
			models.FieldCandidateName,
			models.FieldJobTitle,
			models.FieldMatchScore,
			models.FieldInterviewDate,
		},
		RequiresSlot: true,
	},
	{
		ID:             "offer",
		Name:           "Job Offer",
		SubjectPattern: "Job Offer: {{jobTitle}}",
		BodyPattern: `Dear {{candidateName}},

I am delighted to offer you the position of {{jobTitle}}. Your impressive background, skills, and interview performance ({{matchScore}}% match score) have convinced us that you would be a valuable addition to our team.

Attached to this email, you will find the formal offer letter with details regarding:
- Compensation and benefits package
- Start date and onboarding process
- Additional employment terms and conditions

To accept this offer, please sign the attached documents and return them to us by {{offerDeadline}}. Once we receive your acceptance, our HR team will contact you with next steps for the onboarding process.

If you have any questions about the offer or need any clarification, please don't hesitate to contact me directly.

Congratulations again! We are excited about the possibility of you joining us and look forward to your positive response.

Best regards,
Recruitment Team`,
		RequiredFields: []string{
			models.FieldCandidateName,
			models.FieldJobTitle,
			models.FieldMatchScore,
			models.FieldOfferDeadline,
		},
		RequiresSlot: false,
	},
}

var templatesByID = func() map[string]*models.EmailTemplate {
	m := make(map[string]*models.EmailTemplate, len(templateCatalog))
	for i := range templateCatalog {
		m[templateCatalog[i].ID] = &templateCatalog[i]
	}
	return m
}()

// ListTemplates returns catalog metadata in fixed order.
func ListTemplates() []models.TemplateInfo {
	infos := make([]models.TemplateInfo, 0, len(templateCatalog))
	for _, tpl := range templateCatalog {
		infos = append(infos, models.TemplateInfo{
			ID:           tpl.ID,
			Name:         tpl.Name,
			RequiresSlot: tpl.RequiresSlot,
		})
	}
	return infos
}

// TemplateByID looks a template up in the catalog.
func TemplateByID(id string) (*models.EmailTemplate, error) {
	tpl, ok := templatesByID[id]
	if !ok {
		return nil, newError(CodeUnknownTemplate, "template %q is not in the catalog", id)
	}
	return tpl, nil
}
