// Command galactic-compass shows an observer's motion through the cosmos,
// from Earth's rotation up to the CMB dipole frame.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/flazor/galactic-compass/internal/astro"
	"github.com/flazor/galactic-compass/internal/catalog"
	"github.com/flazor/galactic-compass/internal/ephem"
	"github.com/flazor/galactic-compass/internal/logging"
	"github.com/flazor/galactic-compass/internal/snapshot"
	"github.com/flazor/galactic-compass/internal/state"
	"github.com/flazor/galactic-compass/internal/ui"
)

// CLI flags for headless mode
var (
	summaryMode   bool
	watchInterval time.Duration
	snapshotPath  string
)

const (
	defaultRefresh = 1 * time.Second
	minRefresh     = 250 * time.Millisecond
	maxRefresh     = 5 * time.Minute
)

// Greenwich observatory, used when no observer location is given.
const (
	defaultLat = 51.4769
	defaultLon = -0.0005
)

func main() {
	lat := flag.Float64("lat", defaultLat, "Observer latitude in degrees (-90..90)")
	lon := flag.Float64("lon", defaultLon, "Observer longitude in degrees (-180..180, east positive)")
	atTime := flag.String("time", "", "Fixed instant in RFC 3339 (default: now, ticking)")
	maxLevel := flag.Int("max-level", catalog.MaxLevel, fmt.Sprintf("Deepest motion level to include (1..%d)", catalog.MaxLevel))
	refresh := flag.Duration("refresh", defaultRefresh, "Recompute interval (e.g., 1s, 500ms)")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.BoolVar(&summaryMode, "summary", false, "Print text summary instead of TUI")
	flag.DurationVar(&watchInterval, "watch", 0, "Repeat output at interval (e.g., 30s)")
	flag.StringVar(&snapshotPath, "snapshot-path", "", "Export JSON snapshot to file (use - for stdout)")
	flag.Parse()

	if *refresh < minRefresh {
		*refresh = minRefresh
	} else if *refresh > maxRefresh {
		*refresh = maxRefresh
	}

	logger := logging.New(logging.ParseLevel(*logLevel))

	obs := astro.Observer{LatDeg: *lat, LonDeg: *lon}

	var fixedAt time.Time
	if *atTime != "" {
		t, err := time.Parse(time.RFC3339, *atTime)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid -time value %q: %v\n", *atTime, err)
			os.Exit(1)
		}
		fixedAt = t
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	stateCfg := state.DefaultConfig()
	stateCfg.RefreshInterval = *refresh
	stateMgr := state.NewManager(stateCfg)

	calc := calculator{
		obs:      obs,
		fixedAt:  fixedAt,
		maxLevel: *maxLevel,
		eph:      ephem.Meeus{},
	}

	// Headless mode: explicit flags, or stdout is not a terminal.
	headless := summaryMode || snapshotPath != "" ||
		!term.IsTerminal(int(os.Stdout.Fd()))
	if headless {
		if !summaryMode && snapshotPath == "" {
			summaryMode = true
		}
		runHeadless(ctx, calc, logger)
		return
	}

	model := ui.New(stateMgr)
	p := tea.NewProgram(model, tea.WithAltScreen())

	go runComputeLoop(ctx, calc, stateMgr, p, logger)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// calculator bundles the fixed computation inputs.
type calculator struct {
	obs      astro.Observer
	fixedAt  time.Time
	maxLevel int
	eph      ephem.Provider
}

// instant returns the fixed instant if one was given, otherwise now.
func (c calculator) instant() time.Time {
	if !c.fixedAt.IsZero() {
		return c.fixedAt
	}
	return time.Now().UTC()
}

func (c calculator) compute() (*snapshot.Snapshot, error) {
	return snapshot.Compute(c.obs, c.instant(), c.maxLevel, c.eph)
}

func runComputeLoop(ctx context.Context, calc calculator, stateMgr *state.Manager, p *tea.Program, logger *logging.Logger) {
	doCompute(calc, stateMgr, p, logger)

	ticker := time.NewTicker(stateMgr.RefreshInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Debug("Compute loop shutting down")
			return
		case <-ticker.C:
			doCompute(calc, stateMgr, p, logger)
		}
	}
}

func doCompute(calc calculator, stateMgr *state.Manager, p *tea.Program, logger *logging.Logger) {
	snap, err := calc.compute()
	if err != nil {
		logger.Error("Compute failed: %v", err)
		stateMgr.Update(nil, err)
		p.Send(ui.ErrorMsg{Error: err})
		return
	}

	if snap.Resultant != nil {
		logger.Debug("Computed %d vectors, resultant %.1f km/s",
			len(snap.Vectors), snap.Resultant.MagnitudeKmS)
	}

	stateMgr.Update(snap, nil)
	p.Send(ui.DataUpdateMsg{View: stateMgr.View()})
}

// runHeadless handles summary and JSON export without starting the TUI.
func runHeadless(ctx context.Context, calc calculator, logger *logging.Logger) {
	outputOnce := func() error {
		snap, err := calc.compute()
		if err != nil {
			return err
		}

		if snapshotPath != "" {
			export := snapshot.BuildExport(snap)
			if snapshotPath == "-" {
				if err := export.WriteJSON(os.Stdout); err != nil {
					return fmt.Errorf("write JSON to stdout: %w", err)
				}
			} else {
				f, err := os.Create(snapshotPath)
				if err != nil {
					return fmt.Errorf("create snapshot file: %w", err)
				}
				defer f.Close()
				if err := export.WriteJSON(f); err != nil {
					return fmt.Errorf("write JSON to file: %w", err)
				}
				logger.Info("Snapshot written to %s", snapshotPath)
			}
		}

		if summaryMode {
			snapshot.WriteSummary(os.Stdout, snap)
		}
		return nil
	}

	if watchInterval == 0 {
		if err := outputOnce(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := outputOnce(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}

	ticker := time.NewTicker(watchInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fmt.Println()
			if err := outputOnce(); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
		}
	}
}
