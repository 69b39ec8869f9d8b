package search

import (
	"context"
	"encoding/json"
	"errors"

	"voyago/services/completion"

	"go.uber.org/zap"
)

// domainSpec parameterizes the shared fetch pipeline for one entity type:
// how to prompt for it, how to coerce one loose record into the typed form,
// and how to fabricate records when the completion cannot be used.
type domainSpec[R any] struct {
	name       string
	count      int
	prompt     completion.PromptSpec
	normalize  func(rec map[string]interface{}, idx int) R
	synthesize func(count int) []R
}

// runPipeline executes credential resolution, the completion call, extraction
// and normalization for one fetch. Transport failures propagate; extraction
// and shape failures degrade to the synthetic generator.
func runPipeline[R any](ctx context.Context, s *DefaultSearchService, sessionID string, spec domainSpec[R]) (*Result[R], error) {
	apiKey, err := s.Credentials.Resolve(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	text, err := s.Completion.Complete(ctx, apiKey, spec.prompt)
	if err != nil {
		return nil, err
	}

	records, err := decodeRecordList(text)
	if err != nil {
		s.Logger.Info("falling back to synthetic records",
			zap.String("domain", spec.name),
			zap.Error(err))
		return &Result[R]{
			Records: spec.synthesize(spec.count),
			Source:  SourceSynthetic,
			Notice:  syntheticNotice,
		}, nil
	}

	out := make([]R, 0, len(records))
	for i, rec := range records {
		out = append(out, spec.normalize(rec, i))
	}
	return &Result[R]{Records: out, Source: SourceLive}, nil
}

// decodeRecordList runs staged extraction and requires a non-empty array of
// objects.
func decodeRecordList(text string) ([]map[string]interface{}, error) {
	raw, err := completion.Extract(text)
	if err != nil {
		return nil, err
	}
	var records []map[string]interface{}
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, errors.Join(ErrInvalidDomainData, err)
	}
	if len(records) == 0 {
		return nil, ErrInvalidDomainData
	}
	return records, nil
}
