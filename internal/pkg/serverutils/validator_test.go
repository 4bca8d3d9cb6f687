package serverutils

import (
	"errors"
	"testing"

	"copilot-be/internal/dto"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCreateSessionRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     dto.CreateSessionRequest
		wantErr bool
	}{
		{name: "resume mode", req: dto.CreateSessionRequest{Mode: "resume"}},
		{name: "interview mode", req: dto.CreateSessionRequest{Mode: "interview"}},
		{name: "jobs mode", req: dto.CreateSessionRequest{Mode: "jobs"}},
		{name: "missing mode", req: dto.CreateSessionRequest{}, wantErr: true},
		{name: "unsupported mode", req: dto.CreateSessionRequest{Mode: "coverletter"}, wantErr: true},
		{name: "uppercase mode", req: dto.CreateSessionRequest{Mode: "Resume"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequest(&tt.req)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			var fiberErr *fiber.Error
			require.True(t, errors.As(err, &fiberErr))
			assert.Equal(t, fiber.StatusBadRequest, fiberErr.Code)
		})
	}
}

func TestValidateChatRequest(t *testing.T) {
	hello := "hello"
	empty := ""

	assert.NoError(t, ValidateRequest(&dto.ChatRequest{Content: &hello}))
	assert.NoError(t, ValidateRequest(&dto.ChatRequest{Content: &empty}),
		"empty content is a valid prompt")
	assert.Error(t, ValidateRequest(&dto.ChatRequest{}), "missing content key is rejected")
}
