package tally

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/podium"
	"github.com/agentstation/podium/cmd/application"
	"github.com/agentstation/podium/pkg/summary"
	"github.com/agentstation/podium/pkg/validation"
)

type fakePipeline struct {
	result *podium.Result
	err    error
}

func (f *fakePipeline) Run(context.Context) (*podium.Result, error) {
	return f.result, f.err
}

func (f *fakePipeline) Validate(context.Context) (*validation.Report, error) {
	return &validation.Report{}, nil
}

func TestTallyCommand(t *testing.T) {
	rows := []summary.Row{
		{Edition: "2020 Summer Olympics", EditionID: "61", Country: "France", NOC: "FRA", Athletes: 2, Silver: 1},
		{Edition: "2024 Summer Olympics", EditionID: "63", Country: "France", NOC: "FRA", Athletes: 4, Gold: 2},
	}
	mock := &application.Mock{
		PipelineFunc: func(...podium.Option) (podium.Pipeline, error) {
			return &fakePipeline{result: &podium.Result{Tally: rows}}, nil
		},
		OutputFormatFunc: func() string { return "json" },
	}

	var buf bytes.Buffer
	cmd := NewCommand(mock)
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--edition-id", "63"})
	require.NoError(t, cmd.ExecuteContext(context.Background()))

	var got []summary.Row
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, rows[1:], got)
}

func TestTallyCommandPipelineError(t *testing.T) {
	mock := &application.Mock{
		PipelineFunc: func(...podium.Option) (podium.Pipeline, error) {
			return &fakePipeline{err: assert.AnError}, nil
		},
	}
	cmd := NewCommand(mock)
	cmd.SetArgs([]string{})
	cmd.SetOut(&bytes.Buffer{})
	assert.ErrorIs(t, cmd.ExecuteContext(context.Background()), assert.AnError)
}

func TestFilter(t *testing.T) {
	rows := []summary.Row{{EditionID: "1"}, {EditionID: "2"}, {EditionID: "1"}}
	assert.Len(t, filter(rows, "1"), 2)
	assert.Len(t, filter(rows, ""), 3)
	assert.Empty(t, filter(rows, "9"))
}
