package engine

import (
	"reflect"
	"testing"

	"github.com/ledgerlight/runway/internal/model"
)

// resultWith builds a classified result directly so single rules can be
// exercised in isolation, independent of Compute.
func resultWith(runway model.Runway, burnLabel, riskLabel string) model.Result {
	return model.Result{
		Runway:      runway,
		Burn:        model.Burn{Status: model.Status{Label: burnLabel}},
		InvoiceRisk: model.Status{Label: riskLabel},
	}
}

func TestInsightRulesInIsolation(t *testing.T) {
	th := DefaultThresholds

	cases := []struct {
		name string
		res  model.Result
		want []string
	}{
		{
			name: "runway critical only",
			res:  resultWith(model.FiniteRunway(1), model.BurnSurplus, model.RiskLow),
			want: []string{msgRunwayCritical},
		},
		{
			name: "runway watch only",
			res:  resultWith(model.FiniteRunway(4.5), model.BurnSurplus, model.RiskLow),
			want: []string{msgRunwayWatch},
		},
		{
			name: "watch lower boundary inclusive",
			res:  resultWith(model.FiniteRunway(3), model.BurnSurplus, model.RiskLow),
			want: []string{msgRunwayWatch},
		},
		{
			name: "watch upper boundary exclusive",
			res:  resultWith(model.FiniteRunway(6), model.BurnSurplus, model.RiskLow),
			want: []string{msgStable},
		},
		{
			name: "unbounded runway",
			res:  resultWith(model.UnboundedRunway(), model.BurnSurplus, model.RiskLow),
			want: []string{msgNoBurn},
		},
		{
			name: "deficit only",
			res:  resultWith(model.FiniteRunway(10), model.BurnDeficit, model.RiskLow),
			want: []string{msgDeficit},
		},
		{
			name: "high risk only",
			res:  resultWith(model.FiniteRunway(10), model.BurnSurplus, model.RiskHigh),
			want: []string{msgChaseOverdue},
		},
		{
			name: "medium risk only",
			res:  resultWith(model.FiniteRunway(10), model.BurnSurplus, model.RiskMedium),
			want: []string{msgFollowUp},
		},
		{
			name: "nothing fires",
			res:  resultWith(model.FiniteRunway(10), model.BurnSurplus, model.RiskLow),
			want: []string{msgStable},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := buildInsights(tc.res, th)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("insights = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestInsightOrderPreserved(t *testing.T) {
	// Worst case fires three rules; order must follow the rule list.
	res := resultWith(model.FiniteRunway(0.5), model.BurnDeficit, model.RiskHigh)
	want := []string{msgRunwayCritical, msgDeficit, msgChaseOverdue}
	got := buildInsights(res, DefaultThresholds)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("insights = %q, want %q", got, want)
	}
}

func TestRunwayRulesMutuallyExclusive(t *testing.T) {
	for _, months := range []float64{0, 2.99, 3, 5.99, 6, 100} {
		res := resultWith(model.FiniteRunway(months), model.BurnSurplus, model.RiskLow)
		got := buildInsights(res, DefaultThresholds)
		runwayMsgs := 0
		for _, msg := range got {
			if msg == msgRunwayCritical || msg == msgRunwayWatch || msg == msgNoBurn {
				runwayMsgs++
			}
		}
		if runwayMsgs > 1 {
			t.Fatalf("months=%v: %d runway messages fired, want at most 1", months, runwayMsgs)
		}
	}
}
