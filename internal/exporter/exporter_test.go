package exporter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderText(t *testing.T) {
	resume := map[string]interface{}{
		"personal_info": map[string]interface{}{
			"name":  "Ada Lovelace",
			"email": "ada@example.com",
			"phone": "+91 12345 67890",
		},
		"summary": "Backend engineer focused on distributed systems.",
		"work_experience": []interface{}{
			map[string]interface{}{
				"role":     "Software Engineer",
				"company":  "Acme",
				"duration": "2021-2024",
				"description": []interface{}{
					"Built the billing pipeline.",
					"Cut p99 latency by 40%.",
				},
			},
		},
		"raw_text": "should never be rendered",
	}

	out, err := RenderText(resume)
	require.NoError(t, err)

	assert.Contains(t, out, "ADA LOVELACE")
	assert.Contains(t, out, "ada@example.com | +91 12345 67890")
	assert.Contains(t, out, "SUMMARY")
	assert.Contains(t, out, "WORK EXPERIENCE")
	assert.Contains(t, out, "Software Engineer | Acme | 2021-2024")
	assert.Contains(t, out, "- Built the billing pipeline.")
	assert.NotContains(t, out, "should never be rendered")

	// Summary renders before work experience.
	assert.Less(t, strings.Index(out, "SUMMARY"), strings.Index(out, "WORK EXPERIENCE"))
}

func TestRenderText_CustomSectionsAppended(t *testing.T) {
	resume := map[string]interface{}{
		"summary":      "Engineer.",
		"achievements": []interface{}{"Won a hackathon."},
	}

	out, err := RenderText(resume)
	require.NoError(t, err)
	assert.Contains(t, out, "ACHIEVEMENTS")
	assert.Contains(t, out, "- Won a hackathon.")
}

func TestRenderText_Empty(t *testing.T) {
	_, err := RenderText(map[string]interface{}{})
	assert.ErrorIs(t, err, ErrEmptyResume)

	// Nothing renderable after filtering.
	_, err = RenderText(map[string]interface{}{"raw_text": "only raw text"})
	assert.ErrorIs(t, err, ErrEmptyResume)
}

func TestRenderText_SkillsMap(t *testing.T) {
	resume := map[string]interface{}{
		"skills": map[string]interface{}{
			"languages": []interface{}{"Go", "Python"},
		},
	}

	out, err := RenderText(resume)
	require.NoError(t, err)
	assert.Contains(t, out, "SKILLS")
	assert.Contains(t, out, "Languages: Go, Python")
}
