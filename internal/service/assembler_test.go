package service

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahmednasr/triage-assist/server/internal/models"
	"github.com/ahmednasr/triage-assist/server/internal/repository"
)

func makeTickets(n int, minutes ...int) []models.Ticket {
	tickets := make([]models.Ticket, n)
	for i := range tickets {
		tickets[i] = models.Ticket{
			ID:         fmt.Sprintf("t-%d", i),
			Summary:    "printer jam",
			Resolution: fmt.Sprintf("Fix number %d", i),
			Success:    true,
		}
		if i < len(minutes) {
			tickets[i].MinutesToResolve = minutes[i]
		}
	}
	return tickets
}

func TestAssemble_NoMatches(t *testing.T) {
	res := Assemble("zzz-nomatch", nil, nil)

	assert.Equal(t, "zzz-nomatch", res.Query)
	assert.Equal(t, NoRunbookGuidance, res.CompressedGuidance)
	assert.NotNil(t, res.SimilarTickets)
	assert.Empty(t, res.SimilarTickets)
	assert.Nil(t, res.AvgMinutesToResolve)
	assert.Equal(t, FallbackConfidence, res.Confidence)
	assert.Equal(t, GenericEscalationAction, res.RecommendedAction)
}

func TestAssemble_FallbackStrings(t *testing.T) {
	assert.Equal(t, "No matching runbook found. Escalate to tier-2.", NoRunbookGuidance)
	assert.Equal(t, "Collect logs, check endpoint policy, and open incident for review.", GenericEscalationAction)
	assert.Equal(t, 0.42, FallbackConfidence)
}

func TestAssemble_Guidance(t *testing.T) {
	t.Run("first guide wins", func(t *testing.T) {
		guides := []models.Guide{
			{ID: "a", Body: "First   Body"},
			{ID: "b", Body: "Second body"},
		}
		res := Assemble("q", guides, nil)
		assert.Equal(t, "first body", res.CompressedGuidance)
	})

	t.Run("long body is compressed to 180", func(t *testing.T) {
		guides := []models.Guide{{ID: "a", Body: strings.Repeat("x", 300)}}
		res := Assemble("q", guides, nil)
		assert.Equal(t, strings.Repeat("x", GuidanceMaxLength)+"…", res.CompressedGuidance)
	})

	t.Run("guides without tickets keep ticket fallbacks", func(t *testing.T) {
		res := Assemble("q", []models.Guide{{Body: "b"}}, nil)
		assert.Equal(t, FallbackConfidence, res.Confidence)
		assert.Equal(t, GenericEscalationAction, res.RecommendedAction)
		assert.Nil(t, res.AvgMinutesToResolve)
	})
}

func TestAssemble_SimilarTicketsArePrefix(t *testing.T) {
	for n := 0; n <= 6; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			tickets := makeTickets(n)
			res := Assemble("q", nil, tickets)

			assert.LessOrEqual(t, len(res.SimilarTickets), 3)
			assert.LessOrEqual(t, len(res.SimilarTickets), len(tickets))
			assert.Equal(t, tickets[:len(res.SimilarTickets)], res.SimilarTickets)
		})
	}
}

func TestAssemble_SimilarTicketsAreNotCompressed(t *testing.T) {
	long := strings.Repeat("Long Resolution ", 20)
	tickets := []models.Ticket{{ID: "t-1", Resolution: long}}
	res := Assemble("q", nil, tickets)

	require.Len(t, res.SimilarTickets, 1)
	assert.Equal(t, long, res.SimilarTickets[0].Resolution)
	assert.Equal(t, utf8.RuneCountInString(res.RecommendedAction), ActionMaxLength+1)
}

func TestAssemble_AverageUsesAllSuccessfulMatches(t *testing.T) {
	tickets := makeTickets(5, 10, 20, 30, 40, 100)
	res := Assemble("q", nil, tickets)

	require.Len(t, res.SimilarTickets, 3)
	require.NotNil(t, res.AvgMinutesToResolve)
	// (10+20+30+40+100)/5, not (10+20+30)/3
	assert.Equal(t, 40, *res.AvgMinutesToResolve)
}

func TestAssemble_AverageSkipsFailures(t *testing.T) {
	t.Run("mixed", func(t *testing.T) {
		tickets := makeTickets(3, 10, 500, 21)
		tickets[1].Success = false
		res := Assemble("q", nil, tickets)
		require.NotNil(t, res.AvgMinutesToResolve)
		assert.Equal(t, 16, *res.AvgMinutesToResolve) // 15.5 rounds up
	})

	t.Run("all failed", func(t *testing.T) {
		tickets := makeTickets(2, 10, 20)
		tickets[0].Success = false
		tickets[1].Success = false
		res := Assemble("q", nil, tickets)
		assert.Nil(t, res.AvgMinutesToResolve)
		assert.InDelta(t, 0.7, res.Confidence, 1e-9)
	})
}

func TestAssemble_Confidence(t *testing.T) {
	assert.Equal(t, FallbackConfidence, Assemble("q", nil, nil).Confidence)

	for n := 1; n <= 10; n++ {
		want := 0.5 + 0.1*float64(n)
		if want > 0.95 {
			want = 0.95
		}
		res := Assemble("q", nil, makeTickets(n))
		assert.InDelta(t, want, res.Confidence, 1e-9, "n=%d", n)
	}
}

func TestAssemble_RecommendedAction(t *testing.T) {
	tickets := []models.Ticket{
		{ID: "t-1", Resolution: "  Rollback   KB-774. "},
		{ID: "t-2", Resolution: "other"},
	}
	res := Assemble("q", nil, tickets)
	assert.Equal(t, "rollback kb-774.", res.RecommendedAction)
}

func TestAssemble_SeededScenarios(t *testing.T) {
	snap := seededSnapshot()

	t.Run("vpn", func(t *testing.T) {
		guides, tickets := Search(snap, "vpn")
		res := Assemble("vpn", guides, tickets)

		body := Normalize(repository.DefaultGuides()[0].Body)
		assert.True(t, strings.HasPrefix(body, strings.TrimSuffix(res.CompressedGuidance, "…")))
		assert.Equal(t, GuidanceMaxLength+1, utf8.RuneCountInString(res.CompressedGuidance))

		assert.Equal(t, []string{"t-1121", "t-1188"}, ticketIDs(res.SimilarTickets))
		require.NotNil(t, res.AvgMinutesToResolve)
		assert.Equal(t, 41, *res.AvgMinutesToResolve)
		assert.InDelta(t, 0.7, res.Confidence, 1e-9)
		assert.Equal(t, "rollback kb-774, restart tunnel service, refresh certs.", res.RecommendedAction)
	})

	t.Run("no match", func(t *testing.T) {
		guides, tickets := Search(snap, "zzz-nomatch")
		res := Assemble("zzz-nomatch", guides, tickets)
		assert.Equal(t, NoRunbookGuidance, res.CompressedGuidance)
		assert.Empty(t, res.SimilarTickets)
		assert.Nil(t, res.AvgMinutesToResolve)
		assert.Equal(t, FallbackConfidence, res.Confidence)
		assert.Equal(t, GenericEscalationAction, res.RecommendedAction)
	})
}
