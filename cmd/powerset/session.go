package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/geange/powerset"
	"github.com/geange/powerset/internal/logging"
	"github.com/geange/powerset/internal/metrics"
	"github.com/geange/powerset/nfafile"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
)

// session carries what every subcommand derives from the persistent flags.
type session struct {
	logger   *slog.Logger
	registry *prometheus.Registry
	metrics  bool
	opts     []powerset.Option
}

func newSession(cmd *cobra.Command) (*session, error) {
	flags := cmd.Flags()
	maxStates, _ := flags.GetInt("max-states")
	acceptanceName, _ := flags.GetString("acceptance")
	levelName, _ := flags.GetString("log-level")
	withMetrics, _ := flags.GetBool("metrics")

	var acceptance powerset.Acceptance
	switch acceptanceName {
	case "substring":
		acceptance = powerset.SubstringAcceptance
	case "membership":
		acceptance = powerset.MembershipAcceptance
	default:
		return nil, fmt.Errorf("unknown acceptance rule %q", acceptanceName)
	}

	s := &session{
		logger:   logging.New(logging.ParseLevel(levelName)),
		registry: prometheus.NewRegistry(),
		metrics:  withMetrics,
	}
	recorder, err := metrics.New(s.registry)
	if err != nil {
		return nil, err
	}
	s.opts = []powerset.Option{
		powerset.WithMaxStates(maxStates),
		powerset.WithAcceptance(acceptance),
		powerset.WithLogger(s.logger),
		powerset.WithObserver(recorder),
	}
	return s, nil
}

// compile loads the definition named by args (or the sample) and runs the pipeline.
func (s *session) compile(args []string) (*powerset.Automaton, error) {
	def := powerset.SampleDefinition()
	if len(args) > 0 {
		var err error
		if def, err = nfafile.Load(args[0]); err != nil {
			s.logger.Error("failed to load automaton", "path", args[0], "error", err)
			return nil, err
		}
	}
	a, err := powerset.Compile(def, s.opts...)
	if err != nil {
		s.logger.Error("failed to determinize", "error", err)
		return nil, err
	}
	return a, nil
}

// flushMetrics writes the collected metrics in the text exposition format when
// --metrics is set.
func (s *session) flushMetrics(w io.Writer) error {
	if !s.metrics {
		return nil
	}
	families, err := s.registry.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
