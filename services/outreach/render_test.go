package outreach

import (
	"strings"
	"testing"
	"time"

	"hireflow/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderCtx(slot *models.Slot) models.RenderContext {
	return models.RenderContext{
		CandidateName: "Amina Okafor",
		JobTitle:      "Backend Engineer",
		MatchScore:    87,
		Slot:          slot,
	}
}

func TestRenderStandardInvite(t *testing.T) {
	slot := &models.Slot{StartTime: time.Date(2026, time.January, 12, 9, 0, 0, 0, time.UTC)}
	out, err := Render("standard-invite", renderCtx(slot))
	require.NoError(t, err)

	assert.Equal(t, "Interview Invitation: Backend Engineer Position", out.Subject)
	assert.Contains(t, out.Body, "Dear Amina Okafor,")
	assert.Contains(t, out.Body, "87% match")
	assert.Contains(t, out.Body, "Monday, January 12, 2026, at 9:00 AM")
	assert.NotContains(t, out.Body, "{{")
	assert.NotContains(t, out.Subject, "{{")
}

func TestRenderDeadlineTemplates(t *testing.T) {
	slot := &models.Slot{StartTime: time.Date(2026, time.January, 12, 9, 0, 0, 0, time.UTC)}

	assessment, err := Render("technical-assessment", renderCtx(slot))
	require.NoError(t, err)
	assert.Contains(t, assessment.Body, "Saturday, January 17, 2026") // slot + 5 days

	offer, err := Render("offer", renderCtx(slot))
	require.NoError(t, err)
	assert.Contains(t, offer.Body, "Monday, January 19, 2026") // slot + 7 days
}

func TestRenderWithoutSlotLeavesDatesEmpty(t *testing.T) {
	out, err := Render("offer", renderCtx(nil))
	require.NoError(t, err)
	assert.Contains(t, out.Body, "return them to us by .")
	assert.NotContains(t, out.Body, "{{")
}

func TestRenderDeterministic(t *testing.T) {
	slot := &models.Slot{StartTime: time.Date(2026, time.January, 14, 14, 0, 0, 0, time.UTC)}
	ctx := renderCtx(slot)

	first, err := Render("follow-up", ctx)
	require.NoError(t, err)
	second, err := Render("follow-up", ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRenderUnknownTemplate(t *testing.T) {
	_, err := Render("cold-call", renderCtx(nil))
	require.Error(t, err)
	assert.True(t, HasCode(err, CodeUnknownTemplate))
}

func TestRenderAllCatalogTemplatesResolveFully(t *testing.T) {
	slot := &models.Slot{StartTime: time.Date(2026, time.January, 13, 10, 0, 0, 0, time.UTC)}
	for _, info := range ListTemplates() {
		out, err := Render(info.ID, renderCtx(slot))
		require.NoError(t, err, info.ID)
		assert.False(t, strings.Contains(out.Subject, "{{"), info.ID)
		assert.False(t, strings.Contains(out.Body, "{{"), info.ID)
	}
}

func TestSubstituteSinglePass(t *testing.T) {
	// A replacement value containing token syntax must not be re-expanded.
	fields := map[string]string{"candidateName": "{{jobTitle}}", "jobTitle": "Engineer"}
	got := substitute("Hello {{candidateName}}", fields)
	assert.Equal(t, "Hello {{jobTitle}}", got)
}

func TestSubstituteUnknownTokenBecomesEmpty(t *testing.T) {
	got := substitute("before {{mystery}} after", map[string]string{})
	assert.Equal(t, "before  after", got)
}

func TestSubstituteUnterminatedBracesLeftAlone(t *testing.T) {
	got := substitute("dangling {{token", map[string]string{"token": "x"})
	assert.Equal(t, "dangling {{token", got)
}
