package cmd

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/fitlog/internal/sweep"
	"github.com/fitlog/internal/tracker"

	"github.com/spf13/cobra"
)

var flagSweepInterval time.Duration

var daemonCmd = &cobra.Command{
	Use:   "daemon",
	Short: "Run the retention sweeper in the foreground",
	Long: "Run the retention sweeper in the foreground until interrupted. " +
		"Sweeps once at startup and then every interval, and rolls the daily totals over at midnight.",
	Args: cobra.NoArgs,
	RunE: runDaemon,
}

func init() {
	daemonCmd.Flags().DurationVar(&flagSweepInterval, "interval", sweep.DefaultInterval, "Time between sweeps")
	rootCmd.AddCommand(daemonCmd)
}

func runDaemon(_ *cobra.Command, _ []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	svc := tracker.New(st)
	if reset, err := svc.ResetDaily(nil); err != nil {
		return err
	} else if reset {
		log.Printf("fitlog daemon: rolled daily totals over")
	}

	sw := sweep.New(st)
	if flagSweepInterval > 0 {
		sw.SetInterval(flagSweepInterval)
	}

	done := make(chan error, 1)
	go func() { done <- sw.Run(ctx) }()

	// The reset only needs to fire once after midnight; an hourly check
	// is cheap and keeps the clock handling simple.
	resetTicker := time.NewTicker(time.Hour)
	defer resetTicker.Stop()

	log.Printf("fitlog daemon: started (sweep every %s)", sw.Interval())
	for {
		select {
		case <-ctx.Done():
			log.Printf("fitlog daemon: shutting down")
			<-done
			return nil
		case <-resetTicker.C:
			if reset, err := svc.ResetDaily(nil); err != nil {
				log.Printf("fitlog daemon: daily reset error: %v", err)
			} else if reset {
				log.Printf("fitlog daemon: rolled daily totals over")
			}
		}
	}
}
