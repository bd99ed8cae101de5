package cmd

import (
	"fmt"

	"github.com/arjunm/dsamaster/internal/app"
	"github.com/arjunm/dsamaster/internal/catalog"
	"github.com/arjunm/dsamaster/internal/progress"
	"github.com/arjunm/dsamaster/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	questions, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	tracker, err := progress.NewTracker(st.StatsRepo())
	if err != nil {
		return fmt.Errorf("load stats: %w", err)
	}

	return app.Run(app.Options{
		Questions: questions,
		Tracker:   tracker,
		Events:    st.EventRepo(),
	})
}
