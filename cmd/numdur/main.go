package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	coreport "github.com/amirhossein-jamali/numduration/internal/domain/port/core"
	"github.com/amirhossein-jamali/numduration/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/numduration/internal/domain/usecase/conversion"
	"github.com/amirhossein-jamali/numduration/internal/infrastructure/adapter/logger"
	timeProvider "github.com/amirhossein-jamali/numduration/internal/infrastructure/adapter/time"
)

func main() {
	if err := root(timeProvider.NewRealTimeProvider()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app holds what the subcommands share. The use case is built in the root's
// PersistentPreRun, once the verbose flag is known.
type app struct {
	clock   coreport.TimeProvider
	verbose bool
	svc     usecase.ConversionUseCase
}

// root returns the root cobra command.
func root(clock coreport.TimeProvider) (cmd *cobra.Command) {
	a := &app{clock: clock}
	cmd = &cobra.Command{
		Use:           "numdur",
		Short:         "Converts integer counts of time units to durations",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log := logger.NewNoopLogger()
			if a.verbose {
				log = logger.NewWriterLogger(cmd.ErrOrStderr(), coreport.LogLevelDebug)
			}
			a.svc = conversion.NewService(a.clock, log)
		},
	}
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log conversions to stderr")
	cmd.AddCommand(convert(a))
	cmd.AddCommand(units(a))
	cmd.AddCommand(shift(a))
	return
}

// convert returns the convert cobra command.
func convert(a *app) (cmd *cobra.Command) {
	var ns bool
	cmd = &cobra.Command{
		Use:   "convert <value> <unit>",
		Short: "Prints value units as a duration",
		Example: `  numdur convert 36 hours     # 36h0m0s
  numdur convert --ns -- -1 s  # -1000000000`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			var r *usecase.ConvertResult
			if r, err = a.svc.Convert(cmd.Context(), usecase.ConvertRequest{
				Value: args[0],
				Unit:  args[1],
			}); err != nil {
				return
			}
			if ns {
				fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatInt(r.Nanoseconds, 10))
				return
			}
			fmt.Fprintln(cmd.OutOrStdout(), r.Duration)
			return
		},
	}
	cmd.Flags().BoolVar(&ns, "ns", false, "print integer nanoseconds")
	return
}

// units returns the units cobra command.
func units(a *app) (cmd *cobra.Command) {
	return &cobra.Command{
		Use:   "units",
		Short: "Lists the supported units and their size in nanoseconds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeUnits(cmd.OutOrStdout(), a.svc.Units(cmd.Context()))
		},
	}
}

func writeUnits(out io.Writer, infos []usecase.UnitInfo) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Unit\tNanoseconds")
	fmt.Fprintln(w, "----\t-----------")
	for _, u := range infos {
		fmt.Fprintf(w, "%s\t%d\n", u.Name, u.Nanoseconds)
	}
	return w.Flush()
}

// shift returns the shift cobra command.
func shift(a *app) (cmd *cobra.Command) {
	var from string
	cmd = &cobra.Command{
		Use:   "shift <value> <unit>",
		Short: "Prints the instant value units after now, or after --from",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			req := usecase.ShiftRequest{Value: args[0], Unit: args[1]}
			if from != "" {
				var t time.Time
				if t, err = time.Parse(time.RFC3339, from); err != nil {
					return fmt.Errorf("invalid --from: %w", err)
				}
				req.From = &t
			}
			var r *usecase.ShiftResult
			if r, err = a.svc.Shift(cmd.Context(), req); err != nil {
				return
			}
			fmt.Fprintln(cmd.OutOrStdout(), r.To.Format(time.RFC3339Nano))
			return
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "RFC 3339 instant to shift instead of now")
	return
}
