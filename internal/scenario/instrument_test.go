package scenario_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/okian/scorehook/internal/domain/model"
	"github.com/okian/scorehook/internal/domain/scoring"
	"github.com/okian/scorehook/internal/scenario"
	"github.com/okian/scorehook/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/smartystreets/goconvey/convey"
)

type fakeRecorder struct {
	invoked   map[string]int
	failures  map[string]int
	latencies int
	scores    []int
}

func newFakeRecorder() *fakeRecorder {
	return &fakeRecorder{invoked: map[string]int{}, failures: map[string]int{}}
}

func (f *fakeRecorder) StepInvoked(function string)        { f.invoked[function]++ }
func (f *fakeRecorder) StepFailed(function, reason string) { f.failures[function+"/"+reason]++ }
func (f *fakeRecorder) StepLatency(string, float64)        { f.latencies++ }
func (f *fakeRecorder) RecordGenerated(score int)          { f.scores = append(f.scores, score) }

func TestInstrument(t *testing.T) {
	convey.Convey("Given an instrumented score step", t, func() {
		rec := newFakeRecorder()
		step := scenario.Instrument(scenario.CreateRandomScore, scenario.ScoreStep(fixedGenerator()), rec)

		convey.Convey("When it succeeds", func() {
			vu := model.NewContext()
			calls := 0
			err := step(vu, scenario.NopEvents{}, func() { calls++ })

			convey.Convey("Then the call, latency and score should be recorded", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(calls, convey.ShouldEqual, 1)
				convey.So(rec.invoked[scenario.CreateRandomScore], convey.ShouldEqual, 1)
				convey.So(rec.latencies, convey.ShouldEqual, 1)
				convey.So(rec.scores, convey.ShouldResemble, []int{61})
				convey.So(rec.failures, convey.ShouldBeEmpty)
			})
		})

		convey.Convey("When the context has no vars", func() {
			err := step(&model.Context{}, scenario.NopEvents{}, func() {})

			convey.Convey("Then the failure should be classified and the error returned as is", func() {
				convey.So(errors.Is(err, scoring.ErrStructuralAccess), convey.ShouldBeTrue)
				convey.So(rec.failures[scenario.CreateRandomScore+"/structural_access"], convey.ShouldEqual, 1)
				convey.So(rec.scores, convey.ShouldBeEmpty)
			})
		})
	})

	convey.Convey("Given a step failing for another reason", t, func() {
		rec := newFakeRecorder()
		boom := errors.New("boom")
		step := scenario.Instrument("broken", func(*model.Context, scenario.Events, scenario.Done) error { return boom }, rec)

		convey.Convey("Then it should be counted as a generic error", func() {
			convey.So(step(model.NewContext(), nil, func() {}), convey.ShouldEqual, boom)
			convey.So(rec.failures["broken/error"], convey.ShouldEqual, 1)
		})
	})

	convey.Convey("Given a registry instrumented with a real metrics manager", t, func() {
		registry := prometheus.NewRegistry()
		manager := metrics.NewManager(metrics.WithPrometheusRegistry(registry))
		reg := scenario.Default(fixedGenerator())
		reg.InstrumentAll(manager)

		convey.Convey("When invoking the step", func() {
			convey.So(reg.Invoke(scenario.CreateRandomScore, model.NewContext(), nil), convey.ShouldBeNil)
			convey.So(reg.Invoke(scenario.CreateRandomScore, model.NewContext(), nil), convey.ShouldBeNil)

			convey.Convey("Then the registry should expose the counters", func() {
				expected := `
# HELP scorehook_scenario_records_generated_total Total number of score records written into virtual-user contexts
# TYPE scorehook_scenario_records_generated_total counter
scorehook_scenario_records_generated_total 2
`
				err := testutil.GatherAndCompare(registry, strings.NewReader(expected), "scorehook_scenario_records_generated_total")
				convey.So(err, convey.ShouldBeNil)
			})
		})
	})
}
