package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mhx/gpsdo-config/freqparse"
	"github.com/mhx/gpsdo-config/solver"
)

// Process exit codes, part of the tool's contract for shell pipelines.
const (
	exitOK         = 0
	exitNoSolution = 1
	exitInputError = 2
)

const longHelp = `Compute divider settings for the Si53xx PLL of a GPSDO module.

If only one frequency is specified, both outputs will be set to the
same frequency. Frequencies are processed exactly as rational numbers
internally, and can also be specified as such. An integral part can be
separated from a fraction by either a single space or an underscore.
Suffixes 'M' and 'k' are supported for MHz and kHz.

--all and --best can be really slow as there may be millions of
possible solutions. By default, the tool looks for a "good" solution,
which shouldn't be significantly slower than --any. The quality of a
solution is measured purely by the phase detector comparison frequency
(f3), which directly impacts jitter/phase noise. --best always searches
for the solution with the highest possible f3; the default behaviour
accepts any f3 higher than 50% of the maximum value.

Output for --json and --cmdline is written exclusively to stdout,
suitable for processing by other commands. All other output goes to
stderr.

Hardware limits default to the Si53xx-RM Table 26 VCO/f3 ranges and the
ublox MAX-M8 GPS reference ceiling; override them with --config (YAML
keys vco_lo, vco_hi, f3_lo, f3_hi, gps_hi) or GPSDO_* environment
variables.

Examples:
  gpsdo-config 1000
  gpsdo-config 10M 96k
  gpsdo-config 1000.31 2345.61 --best
  gpsdo-config 10_1/7k 500/9k --all --verbose
  lb-gps-linux /dev/hidraw3 $(gpsdo-config 10M 120M --cmdline)

Exit status:
  0: successful completion
  1: could not find any solution for the specified frequencies
  2: input processing error`

// cliOptions collects the flag state for one invocation.
type cliOptions struct {
	findAny  bool
	findBest bool
	findAll  bool
	verbose  bool
	cmdline  bool
	jsonOut  bool
	config   string
}

// run wires the cobra command and maps its outcome to an exit code.
// It is the testable entry point: all I/O goes through the writers.
func run(args []string, stdout, stderr io.Writer) int {
	log := logrus.New()
	log.SetOutput(stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	code := exitOK
	cmd := newRootCmd(&code, stdout, stderr, log)
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		log.Error(err)

		return exitInputError
	}

	return code
}

func newRootCmd(code *int, stdout, stderr io.Writer, log *logrus.Logger) *cobra.Command {
	opts := &cliOptions{}

	cmd := &cobra.Command{
		Use:           "gpsdo-config f1 [f2]",
		Short:         "exact PLL frequency plans for GPSDO modules",
		Long:          longHelp,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			return solve(args, opts, code, stdout, stderr, log)
		},
	}

	cmd.SetOut(stderr)
	cmd.SetErr(stderr)

	cmd.Flags().BoolVar(&opts.findAll, "all", false, "find all possible solutions")
	cmd.Flags().BoolVar(&opts.findAny, "any", false, "find any possible solution")
	cmd.Flags().BoolVar(&opts.findBest, "best", false, "find best possible solution")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "print more information")
	cmd.Flags().BoolVar(&opts.cmdline, "cmdline", false, "print command line config")
	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "print solutions as json objects")
	cmd.Flags().StringVar(&opts.config, "config", "", "hardware limits YAML file")

	cmd.MarkFlagsMutuallyExclusive("all", "any", "best")
	cmd.MarkFlagsMutuallyExclusive("cmdline", "json")

	return cmd
}

// solve parses the frequencies, loads the limits, runs the search and
// renders the result.
func solve(args []string, opts *cliOptions, code *int, stdout, stderr io.Writer, log *logrus.Logger) error {
	f1, err := freqparse.Parse(args[0])
	if err != nil {
		return fmt.Errorf("frequency %q: %w", args[0], err)
	}

	f2 := f1
	if len(args) == 2 {
		if f2, err = freqparse.Parse(args[1]); err != nil {
			return fmt.Errorf("frequency %q: %w", args[1], err)
		}
	}

	limits, err := loadLimits(opts.config)
	if err != nil {
		return err
	}

	mode := solver.Good
	switch {
	case opts.findAll:
		mode = solver.All
	case opts.findAny:
		mode = solver.Any
	case opts.findBest:
		mode = solver.Best
	}

	sols, err := solver.Solve(f1, f2, limits, mode)
	if err != nil {
		return err
	}

	if len(sols) == 0 {
		log.Error("no solutions found")
		*code = exitNoSolution

		return nil
	}

	if opts.verbose || opts.findAll {
		log.Infof("found %d solution(s)", len(sols))
	}

	for _, s := range sols {
		if opts.verbose || (!opts.cmdline && !opts.jsonOut) {
			writeSolution(stderr, s, opts.verbose)
		}
		if opts.cmdline {
			fmt.Fprintf(stdout, "--gps %d --n31 %d --n2_ls %d --n2_hs %d --n1_hs %d --nc1_ls %d --nc2_ls %d\n",
				s.FGPS, s.N31, s.N2LS, s.N2HS, s.N1HS, s.NC1LS, s.NC2LS)
		}
		if opts.jsonOut {
			buf, mErr := json.Marshal(s)
			if mErr != nil {
				return mErr
			}
			fmt.Fprintln(stdout, string(buf))
		}
	}

	return nil
}

// writeSolution renders one tuple for humans; verbose appends the
// derived frequencies.
func writeSolution(w io.Writer, s solver.Solution, verbose bool) {
	if verbose {
		fmt.Fprintf(w, "%s [f3 = %g, fOSC = %g, f1 = %g, f2 = %g]\n",
			s, s.F3().Float64(), s.FOSC().Float64(),
			s.Output1().Float64(), s.Output2().Float64())

		return
	}

	fmt.Fprintln(w, s)
}

// loadLimits layers an optional YAML file and GPSDO_* environment
// variables over the hardware defaults.
func loadLimits(configFile string) (solver.Limits, error) {
	def := solver.DefaultLimits()

	v := viper.New()
	v.SetDefault("vco_lo", def.VCOLo)
	v.SetDefault("vco_hi", def.VCOHi)
	v.SetDefault("f3_lo", def.F3Lo)
	v.SetDefault("f3_hi", def.F3Hi)
	v.SetDefault("gps_hi", def.GPSHi)
	v.SetEnvPrefix("GPSDO")
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return solver.Limits{}, err
		}
	}

	return solver.Limits{
		VCOLo: v.GetInt64("vco_lo"),
		VCOHi: v.GetInt64("vco_hi"),
		F3Lo:  v.GetInt64("f3_lo"),
		F3Hi:  v.GetInt64("f3_hi"),
		GPSHi: v.GetInt64("gps_hi"),
	}, nil
}
