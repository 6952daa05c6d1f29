package ui

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForcedApprover_ApprovesAfterCountdown(t *testing.T) {
	var output bytes.Buffer
	sleepCalls := 0

	approver := &ForcedApprover{
		output:    &output,
		countdown: 3 * time.Second,
		sleepFn:   func(time.Duration) { sleepCalls++ },
	}

	approved, err := approver.RequestApproval(context.Background(), "sqlite:out.db#sales")
	require.NoError(t, err)
	assert.True(t, approved)
	assert.Equal(t, 3, sleepCalls)
	assert.Contains(t, output.String(), "sqlite:out.db#sales")
}

func TestForcedApprover_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	approver := &ForcedApprover{output: &bytes.Buffer{}, countdown: 3 * time.Second, sleepFn: func(time.Duration) {}}
	approved, err := approver.RequestApproval(ctx, "sales")

	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, approved)
}

func TestInteractiveApprover(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "matching name", input: "sales\n", want: true},
		{name: "matching name without newline", input: "sales", want: true},
		{name: "wrong name", input: "orders\n", want: false},
		{name: "full target is not the table name", input: "sqlite:out.db#sales\n", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var output bytes.Buffer
			approver := &InteractiveApprover{input: strings.NewReader(tt.input), output: &output}

			approved, err := approver.RequestApproval(context.Background(), "sqlite:out.db#sales")
			require.NoError(t, err)
			assert.Equal(t, tt.want, approved)
			assert.Contains(t, output.String(), "type the table name 'sales'")
		})
	}
}

func TestInteractiveApprover_EmptyInput(t *testing.T) {
	approver := &InteractiveApprover{input: strings.NewReader(""), output: &bytes.Buffer{}}

	approved, err := approver.RequestApproval(context.Background(), "sales")
	require.Error(t, err)
	assert.False(t, approved)
}
