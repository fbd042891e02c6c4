package providers

import (
	"testing"

	"google.golang.org/genai"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IqraS-gif/ai-career-coach-backend/pkg/models"
)

func TestBuildContents_ChatReplaysHistoryInOrder(t *testing.T) {
	req := models.GenerationRequest{
		Prompt: "newest question",
		History: []models.Turn{
			{Role: models.RoleUser, Content: "first"},
			{Role: models.RoleAssistant, Content: "second"},
			{Role: models.RoleUser, Content: "third"},
		},
		Chat: true,
	}

	contents := buildContents(req)
	require.Len(t, contents, 4)

	assert.Equal(t, string(genai.RoleUser), string(contents[0].Role))
	assert.Equal(t, string(genai.RoleModel), string(contents[1].Role))
	assert.Equal(t, string(genai.RoleUser), string(contents[2].Role))
	assert.Equal(t, string(genai.RoleUser), string(contents[3].Role))

	assert.Equal(t, "first", contents[0].Parts[0].Text)
	assert.Equal(t, "second", contents[1].Parts[0].Text)
	assert.Equal(t, "newest question", contents[3].Parts[0].Text)
}

func TestBuildContents_NonChatIgnoresHistory(t *testing.T) {
	req := models.GenerationRequest{
		Prompt:  "one-shot prompt",
		History: []models.Turn{{Role: models.RoleUser, Content: "stale"}},
	}

	contents := buildContents(req)
	require.Len(t, contents, 1)
	assert.Equal(t, string(genai.RoleUser), string(contents[0].Role))
	assert.Equal(t, "one-shot prompt", contents[0].Parts[0].Text)
}
