package credential

import (
	"context"
	"strings"
	"testing"

	"voyago/services/completion"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestIsValid(t *testing.T) {
	long := strings.Repeat("a1B2", 8) // 32 chars

	cases := []struct {
		value string
		want  bool
	}{
		{"pplx-" + long, true},
		{"pk-" + long, true},
		{"pplx-" + strings.Repeat("x", 24), true},
		{"pplx-" + strings.Repeat("x", 23), false}, // below minimum length
		{"sk-" + long, false},                      // wrong prefix
		{"pplx-" + long + "!", false},              // illegal character
		{" pplx-" + long, false},                   // leading space
		{"", false},
		{"pplx-", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, IsValid(tc.value), "value %q", tc.value)
	}
}

func TestStoreRejectsInvalidFormatWithoutTouchingCache(t *testing.T) {
	// Cache is nil: reaching it would panic, proving invalid input is
	// rejected before any storage access.
	svc := &DefaultCredentialService{Logger: zap.NewNop()}

	err := svc.Store(context.Background(), "s1", "not-a-key")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestStoreTrimsWhitespaceBeforeValidation(t *testing.T) {
	svc := &DefaultCredentialService{Logger: zap.NewNop()}

	// Whitespace-only input trims to empty and fails format validation.
	err := svc.Store(context.Background(), "s1", "   \n")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestResolvePrefersCentralKey(t *testing.T) {
	svc := &DefaultCredentialService{
		CentralKey: "pplx-centralcentralcentral00",
		Logger:     zap.NewNop(),
	}

	got, err := svc.Resolve(context.Background(), "any-session")
	require.NoError(t, err)
	assert.Equal(t, "pplx-centralcentralcentral00", got)
	assert.True(t, svc.Present(context.Background(), "any-session"))
}

type probeClient struct {
	gotKey  string
	gotSpec completion.PromptSpec
	err     error
}

func (p *probeClient) Complete(ctx context.Context, apiKey string, spec completion.PromptSpec) (string, error) {
	p.gotKey = apiKey
	p.gotSpec = spec
	if p.err != nil {
		return "", p.err
	}
	return "OK", nil
}

func TestProbePassesKeyThrough(t *testing.T) {
	client := &probeClient{}
	svc := &DefaultCredentialService{Completion: client, Logger: zap.NewNop()}

	err := svc.Probe(context.Background(), "pplx-probeprobeprobeprobe0")
	require.NoError(t, err)
	assert.Equal(t, "pplx-probeprobeprobeprobe0", client.gotKey)
	assert.Equal(t, 5, client.gotSpec.MaxTokens)
}

func TestProbeSurfacesUpstreamError(t *testing.T) {
	client := &probeClient{err: completion.ErrCredentialInvalid}
	svc := &DefaultCredentialService{Completion: client, Logger: zap.NewNop()}

	err := svc.Probe(context.Background(), "pplx-probeprobeprobeprobe0")
	assert.ErrorIs(t, err, completion.ErrCredentialInvalid)
}
