package outreach

import (
	"strconv"
	"strings"

	"hireflow/models"
)

// Render substitutes the recognized placeholder tokens in the template's
// subject and body patterns with the corresponding context fields. It is
// deterministic and side-effect free: rendering the same template with the
// same context twice yields byte-identical output.
func Render(templateID string, ctx models.RenderContext) (models.RenderedEmail, error) {
	tpl, err := TemplateByID(templateID)
	if err != nil {
		return models.RenderedEmail{}, err
	}
	fields := contextFields(ctx)
	return models.RenderedEmail{
		Subject: substitute(tpl.SubjectPattern, fields),
		Body:    substitute(tpl.BodyPattern, fields),
	}, nil
}

// contextFields flattens the render context into token values. Slot-derived
// fields resolve to empty strings when no slot is chosen.
func contextFields(ctx models.RenderContext) map[string]string {
	fields := map[string]string{
		models.FieldCandidateName:      ctx.CandidateName,
		models.FieldJobTitle:           ctx.JobTitle,
		models.FieldMatchScore:         strconv.Itoa(ctx.MatchScore),
		models.FieldInterviewDate:      "",
		models.FieldAssessmentDeadline: "",
		models.FieldOfferDeadline:      "",
	}
	if ctx.Slot != nil {
		fields[models.FieldInterviewDate] = ctx.Slot.Formatted()
		fields[models.FieldAssessmentDeadline] = ctx.Slot.AssessmentDeadline()
		fields[models.FieldOfferDeadline] = ctx.Slot.OfferDeadline()
	}
	return fields
}

// substitute replaces {{token}} occurrences in a single left-to-right pass,
// so a replacement value can never be re-scanned as another token.
// Unresolved tokens become empty strings rather than staying literal.
func substitute(pattern string, fields map[string]string) string {
	var b strings.Builder
	for {
		open := strings.Index(pattern, "{{")
		if open < 0 {
			b.WriteString(pattern)
			return b.String()
		}
		end := strings.Index(pattern[open:], "}}")
		if end < 0 {
			b.WriteString(pattern)
			return b.String()
		}
		b.WriteString(pattern[:open])
		token := pattern[open+2 : open+end]
		b.WriteString(fields[token])
		pattern = pattern[open+end+2:]
	}
}
