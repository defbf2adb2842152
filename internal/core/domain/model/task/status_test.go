package task_test

import (
	"testing"

	"fleetplan/internal/core/domain/model/task"
	"fleetplan/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	require.NoError(t, task.Unplanned.Validate())
	require.NoError(t, task.Planned.Validate())
	require.ErrorIs(t, task.Unknown.Validate(), errs.ErrValueIsInvalid)
	require.Error(t, task.Status(42).Validate())
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Unplanned", task.Unplanned.String())
	assert.Equal(t, "Planned", task.Planned.String())
	assert.Equal(t, "Unknown", task.Status(42).String())
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		value   string
		want    task.Status
		wantErr bool
	}{
		{value: "Unplanned", want: task.Unplanned},
		{value: "Planned", want: task.Planned},
		{value: "Unknown", want: task.Unknown, wantErr: true},
		{value: "planned", want: task.Unknown, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := task.ParseStatus(tt.value)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatus_Plan(t *testing.T) {
	next, err := task.Unplanned.Plan()
	require.NoError(t, err)
	assert.Equal(t, task.Planned, next)

	_, err = task.Planned.Plan()
	require.Error(t, err)

	_, err = task.Unknown.Plan()
	require.Error(t, err)
}
