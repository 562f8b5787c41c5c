package ticket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "bureau/internal/domain/ticket/valueobjects"
)

func openSegment(t *testing.T, id uint, startedAt time.Time) *TimeSegment {
	t.Helper()
	segment, err := ReconstructTimeSegment(id, 1, startedAt, nil)
	require.NoError(t, err)
	return segment
}

func closedSegment(t *testing.T, id uint, startedAt, endedAt time.Time) *TimeSegment {
	t.Helper()
	segment, err := ReconstructTimeSegment(id, 1, startedAt, &endedAt)
	require.NoError(t, err)
	return segment
}

func TestPlanTimer_EnterInProgress(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name      string
		segments  []*TimeSegment
		wantStart bool
	}{
		{
			name:      "no segments starts a timer",
			segments:  nil,
			wantStart: true,
		},
		{
			name: "only closed segments starts a timer",
			segments: []*TimeSegment{
				closedSegment(t, 1, now.Add(-2*time.Hour), now.Add(-1*time.Hour)),
			},
			wantStart: true,
		},
		{
			name: "open segment already running is a no-op",
			segments: []*TimeSegment{
				openSegment(t, 1, now.Add(-time.Hour)),
			},
			wantStart: false,
		},
		{
			name: "open segment among closed ones is a no-op",
			segments: []*TimeSegment{
				closedSegment(t, 1, now.Add(-3*time.Hour), now.Add(-2*time.Hour)),
				openSegment(t, 2, now.Add(-time.Hour)),
			},
			wantStart: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := PlanTimer(tt.segments, vo.RoleInProgress)

			assert.Equal(t, tt.wantStart, plan.Start)
			assert.Empty(t, plan.CloseIDs)
			assert.Equal(t, !tt.wantStart, plan.IsNoop())
		})
	}
}

func TestPlanTimer_EnterDone(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name         string
		segments     []*TimeSegment
		wantCloseIDs []uint
	}{
		{
			name:         "no open segment is a no-op",
			segments:     []*TimeSegment{closedSegment(t, 1, now.Add(-2*time.Hour), now.Add(-time.Hour))},
			wantCloseIDs: nil,
		},
		{
			name:         "single open segment is closed",
			segments:     []*TimeSegment{openSegment(t, 3, now.Add(-time.Hour))},
			wantCloseIDs: []uint{3},
		},
		{
			name: "every open segment is closed",
			segments: []*TimeSegment{
				openSegment(t, 1, now.Add(-2*time.Hour)),
				closedSegment(t, 2, now.Add(-4*time.Hour), now.Add(-3*time.Hour)),
				openSegment(t, 5, now.Add(-time.Hour)),
			},
			wantCloseIDs: []uint{1, 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := PlanTimer(tt.segments, vo.RoleDone)

			assert.False(t, plan.Start)
			assert.Equal(t, tt.wantCloseIDs, plan.CloseIDs)
		})
	}
}

func TestPlanTimer_OtherColumnsHaveNoTimerEffect(t *testing.T) {
	now := time.Now().UTC()
	segments := []*TimeSegment{openSegment(t, 1, now.Add(-time.Hour))}

	for _, role := range []vo.ColumnRole{vo.RoleBacklog, vo.RoleCustom} {
		plan := PlanTimer(segments, role)
		assert.True(t, plan.IsNoop(), "role %s must not touch timers", role)
	}
}

func TestPlanTimer_EnterInProgressTwice(t *testing.T) {
	// First entry starts a segment, second entry sees it open and does nothing.
	plan := PlanTimer(nil, vo.RoleInProgress)
	require.True(t, plan.Start)

	started, err := NewTimeSegment(1, time.Now().UTC())
	require.NoError(t, err)
	require.NoError(t, started.SetID(1))

	plan = PlanTimer([]*TimeSegment{started}, vo.RoleInProgress)
	assert.True(t, plan.IsNoop())
}

func TestTimeSegment_CloseIsOneWay(t *testing.T) {
	now := time.Now().UTC()
	segment := openSegment(t, 1, now.Add(-time.Hour))

	require.NoError(t, segment.Close(now))
	require.NotNil(t, segment.EndedAt())
	assert.True(t, segment.EndedAt().After(segment.StartedAt()))

	err := segment.Close(now.Add(time.Minute))
	assert.Error(t, err)
}

func TestTimeSegment_CloseBeforeStartRejected(t *testing.T) {
	now := time.Now().UTC()
	segment := openSegment(t, 1, now)

	err := segment.Close(now.Add(-time.Minute))
	assert.Error(t, err)
}

func TestOpenSegments(t *testing.T) {
	now := time.Now().UTC()
	segments := []*TimeSegment{
		closedSegment(t, 1, now.Add(-3*time.Hour), now.Add(-2*time.Hour)),
		openSegment(t, 2, now.Add(-time.Hour)),
	}

	open := OpenSegments(segments)
	require.Len(t, open, 1)
	assert.Equal(t, uint(2), open[0].ID())
}
